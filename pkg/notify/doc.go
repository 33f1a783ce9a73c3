// Package notify is a thin, promise-style facade over a platform's local
// notification center.
//
// The platform center is an opaque, callback-based collaborator behind the
// Center interface: its permission model, delivery pipeline and persistence
// of scheduled requests are not this package's concern. The Service adapts
// each callback operation into a single-resolution future (pkg/async),
// offers one canonical Add operation with optional fields in place of an
// overload family, and republishes user responses on a topic bus (pkg/bus)
// so application code can react without holding the facade.
//
// # Construction
//
// Service takes its dependencies explicitly; there are no package-level
// singletons. One instance per process is the intended shape: it
// registers itself as the platform delegate in New and is never
// unregistered.
//
//	hub := bus.NewHub()
//	svc, err := notify.New(notify.NewBeeepCenter(),
//	    notify.WithBus(hub),
//	    notify.WithVibrator(notify.BeeepVibrator{}),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if _, err := svc.Authorize(notify.AuthorizationDefault).Await(ctx); err != nil {
//	    // Permission denied: platform error, or ErrAuthorizationFailed
//	    // when the platform declined without one.
//	}
//
// # Scheduling
//
//	_, err = svc.Add(notify.AddRequest{
//	    Identifier: notify.Text("reminder.standup"),
//	    Title:      notify.Text("Stand-up"),
//	    Body:       notify.Text("Daily stand-up in 5 minutes"),
//	    Style:      &notify.StyleDefaultSoundAndVibrate,
//	}).Await(ctx)
//
// Without a trigger the request is delivered after a short default delay
// (100ms), near-immediate rather than synchronous. When the style asks for
// vibration, a one-shot vibration is armed before submission is attempted
// and fires after the default delay plus an offset (1s), independent of
// whether the platform accepts the request. It cannot be retracted.
//
// # Responses
//
// When the user interacts with a delivered notification, the facade
// acknowledges the platform synchronously and then republishes the
// Response on the bus under the request identifier, or under the string
// found in the notification's UserInfo at UserInfoPostNameKey, letting
// each notification choose where its response lands:
//
//	sub, _ := hub.Subscribe(ctx, "reminder.standup")
//	for msg := range sub.Messages() {
//	    if resp, ok := svc.ResponseFromEvent(msg.Payload); ok {
//	        handle(resp)
//	    }
//	}
//
// Publication is best effort: no subscribers means the event is dropped.
//
// # Testing
//
// MemoryCenter implements Center in memory with SimulateDeliver and
// SimulateResponse hooks for driving the delegate from tests.
package notify
