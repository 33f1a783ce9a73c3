package notify_test

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/notifykit/pkg/bus"
	"github.com/dmitrymomot/notifykit/pkg/notify"
)

func Example() {
	ctx := context.Background()

	hub := bus.NewHub()
	defer hub.Close()

	center := notify.NewMemoryCenter()
	svc, err := notify.New(center, notify.WithBus(hub))
	if err != nil {
		fmt.Println(err)
		return
	}

	if _, err := svc.Authorize(notify.AuthorizationDefault).Await(ctx); err != nil {
		fmt.Println(err)
		return
	}

	// React to responses for this notification elsewhere in the process.
	sub, err := hub.Subscribe(ctx, "coffee.break")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer sub.Close()

	if _, err := svc.Add(notify.AddRequest{
		Identifier: notify.Text("coffee.break"),
		Title:      notify.Text("Coffee"),
		Body:       notify.Text("Time for a break"),
		Style:      &notify.StyleDefaultSound,
	}).Await(ctx); err != nil {
		fmt.Println(err)
		return
	}

	// In production the platform drives delivery and user interaction;
	// the memory center simulates both.
	center.SimulateDeliver("coffee.break")
	center.SimulateResponse("coffee.break", notify.DefaultActionID)

	msg := <-sub.Messages()
	if resp, ok := svc.ResponseFromEvent(msg.Payload); ok {
		fmt.Println(resp.Notification.Request.ID)
	}

	// Output: coffee.break
}
