package notify

import (
	"sync"
	"time"
)

// MemoryCenter is an in-process implementation of Center suitable for
// development and testing. It stores pending requests and delivered
// notifications in memory and lets tests drive the delegate through the
// Simulate methods. All callbacks are invoked synchronously on the calling
// goroutine.
type MemoryCenter struct {
	pending    []Request
	delivered  []Delivered
	categories []Category
	settings   Settings
	delegate   Delegate

	grantAuthorization bool
	authorizationErr   error
	addErr             error

	mu sync.Mutex
}

// NewMemoryCenter creates a memory center that grants authorization and
// accepts every request by default.
func NewMemoryCenter() *MemoryCenter {
	return &MemoryCenter{
		grantAuthorization: true,
		settings: Settings{
			AuthorizationStatus: AuthorizationStatusAuthorized,
			AlertsEnabled:       true,
			SoundsEnabled:       true,
			BadgesEnabled:       true,
		},
	}
}

// FailAuthorization makes subsequent authorization requests report the
// given outcome. A nil err with granted=false simulates a plain denial.
func (c *MemoryCenter) FailAuthorization(granted bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.grantAuthorization = granted
	c.authorizationErr = err
}

// FailAdd makes subsequent Add calls report the given platform error.
func (c *MemoryCenter) FailAdd(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.addErr = err
}

// SetSettings replaces the settings reported by NotificationSettings.
func (c *MemoryCenter) SetSettings(s Settings) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.settings = s
}

func (c *MemoryCenter) RequestAuthorization(opts AuthorizationOptions, fn func(granted bool, err error)) {
	c.mu.Lock()
	granted, err := c.grantAuthorization, c.authorizationErr
	c.mu.Unlock()
	fn(granted, err)
}

func (c *MemoryCenter) Add(req Request, fn func(err error)) {
	c.mu.Lock()
	if c.addErr != nil {
		err := c.addErr
		c.mu.Unlock()
		fn(err)
		return
	}

	// Re-adding an identifier replaces the scheduled request, matching
	// platform behavior.
	for i, existing := range c.pending {
		if existing.ID == req.ID {
			c.pending[i] = req
			c.mu.Unlock()
			fn(nil)
			return
		}
	}

	c.pending = append(c.pending, req)
	c.mu.Unlock()
	fn(nil)
}

func (c *MemoryCenter) PendingRequests(fn func(reqs []Request)) {
	c.mu.Lock()
	reqs := make([]Request, len(c.pending))
	copy(reqs, c.pending)
	c.mu.Unlock()
	fn(reqs)
}

func (c *MemoryCenter) DeliveredNotifications(fn func(notifs []Delivered)) {
	c.mu.Lock()
	notifs := make([]Delivered, len(c.delivered))
	copy(notifs, c.delivered)
	c.mu.Unlock()
	fn(notifs)
}

func (c *MemoryCenter) RemovePendingRequests(ids []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = removeByID(c.pending, ids, func(r Request) string { return r.ID })
}

func (c *MemoryCenter) RemoveDeliveredNotifications(ids []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.delivered = removeByID(c.delivered, ids, func(d Delivered) string { return d.Request.ID })
}

func (c *MemoryCenter) SetNotificationCategories(cats []Category) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.categories = make([]Category, len(cats))
	copy(c.categories, cats)
}

func (c *MemoryCenter) NotificationCategories(fn func(cats []Category)) {
	c.mu.Lock()
	cats := make([]Category, len(c.categories))
	copy(cats, c.categories)
	c.mu.Unlock()
	fn(cats)
}

func (c *MemoryCenter) NotificationSettings(fn func(s Settings)) {
	c.mu.Lock()
	settings := c.settings
	c.mu.Unlock()
	fn(settings)
}

func (c *MemoryCenter) SetDelegate(d Delegate) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.delegate = d
}

// SimulateDeliver moves the pending request with the given identifier to
// the delivered list and, when a delegate is registered, runs its
// WillPresent callback. It reports whether such a pending request existed.
func (c *MemoryCenter) SimulateDeliver(id string) bool {
	c.mu.Lock()
	var found *Request
	for i, req := range c.pending {
		if req.ID == id {
			found = &c.pending[i]
			break
		}
	}
	if found == nil {
		c.mu.Unlock()
		return false
	}

	notif := Delivered{Request: *found, Date: time.Now()}
	c.pending = removeByID(c.pending, []string{id}, func(r Request) string { return r.ID })
	c.delivered = append(c.delivered, notif)
	delegate := c.delegate
	c.mu.Unlock()

	if delegate != nil {
		delegate.WillPresent(notif, func(PresentationOptions) {})
	}
	return true
}

// SimulateResponse invokes the delegate's DidReceive with a response built
// from the delivered notification matching id and the given action. It
// reports whether a delegate was registered and the notification existed.
func (c *MemoryCenter) SimulateResponse(id, actionID string) bool {
	c.mu.Lock()
	var notif *Delivered
	for i, d := range c.delivered {
		if d.Request.ID == id {
			notif = &c.delivered[i]
			break
		}
	}
	delegate := c.delegate
	c.mu.Unlock()

	if notif == nil || delegate == nil {
		return false
	}

	acked := false
	delegate.DidReceive(Response{ActionID: actionID, Notification: *notif}, func() {
		acked = true
	})
	return acked
}

func removeByID[T any](items []T, ids []string, idOf func(T) string) []T {
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	kept := items[:0]
	for _, item := range items {
		if _, ok := drop[idOf(item)]; !ok {
			kept = append(kept, item)
		}
	}
	return kept
}
