package notify

import (
	"github.com/dmitrymomot/notifykit/pkg/async"
)

// Authorize requests notification permission from the platform. The future
// resolves empty when permission is granted. It rejects with the platform's
// error when one is supplied (regardless of the granted flag), or with
// ErrAuthorizationFailed when the platform reports "not granted" without
// an error of its own. A failed future is terminal; there are no retries.
func (s *Service) Authorize(opts AuthorizationOptions) *async.Future[struct{}] {
	p, f := async.New[struct{}]()
	s.center.RequestAuthorization(opts, func(granted bool, err error) {
		switch {
		case err != nil:
			p.Reject(err)
		case !granted:
			p.Reject(ErrAuthorizationFailed)
		default:
			p.Resolve(struct{}{})
		}
	})
	return f
}

// Pending resolves with every request scheduled but not yet delivered, in
// the platform's order.
func (s *Service) Pending() *async.Future[[]Request] {
	p, f := async.New[[]Request]()
	s.center.PendingRequests(func(reqs []Request) {
		p.Resolve(reqs)
	})
	return f
}

// PendingByID resolves with the subsequence of pending requests whose
// identifier equals the resolved text of id. Matching is exact and
// case-sensitive; order is preserved. No match yields an empty slice, not
// an error.
func (s *Service) PendingByID(id TextLike) *async.Future[[]Request] {
	want := textOf(id)
	p, f := async.New[[]Request]()
	s.center.PendingRequests(func(reqs []Request) {
		matched := make([]Request, 0)
		for _, req := range reqs {
			if req.ID == want {
				matched = append(matched, req)
			}
		}
		p.Resolve(matched)
	})
	return f
}

// Delivered resolves with every notification still present in the
// platform's notification list, unfiltered.
func (s *Service) Delivered() *async.Future[[]Delivered] {
	p, f := async.New[[]Delivered]()
	s.center.DeliveredNotifications(func(notifs []Delivered) {
		p.Resolve(notifs)
	})
	return f
}

// DeliveredByID resolves with the delivered notifications whose request
// identifier equals the resolved text of id, preserving order. No match
// yields an empty slice.
func (s *Service) DeliveredByID(id TextLike) *async.Future[[]Delivered] {
	want := textOf(id)
	p, f := async.New[[]Delivered]()
	s.center.DeliveredNotifications(func(notifs []Delivered) {
		matched := make([]Delivered, 0)
		for _, n := range notifs {
			if n.Request.ID == want {
				matched = append(matched, n)
			}
		}
		p.Resolve(matched)
	})
	return f
}

// Settings resolves with the platform's current notification settings,
// untransformed.
func (s *Service) Settings() *async.Future[Settings] {
	p, f := async.New[Settings]()
	s.center.NotificationSettings(func(settings Settings) {
		p.Resolve(settings)
	})
	return f
}

// Categories resolves with the platform's registered action categories.
func (s *Service) Categories() *async.Future[[]Category] {
	p, f := async.New[[]Category]()
	s.center.NotificationCategories(func(cats []Category) {
		p.Resolve(cats)
	})
	return f
}

// RemovePending resolves each identifier and forwards the batch to the
// platform's removal call. Fire-and-forget: no result, no failure.
func (s *Service) RemovePending(ids ...TextLike) {
	s.center.RemovePendingRequests(resolveIDs(ids))
}

// RemoveDelivered resolves each identifier and forwards the batch to the
// platform's removal call. Fire-and-forget.
func (s *Service) RemoveDelivered(ids ...TextLike) {
	s.center.RemoveDeliveredNotifications(resolveIDs(ids))
}

func resolveIDs(ids []TextLike) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, textOf(id))
	}
	return out
}
