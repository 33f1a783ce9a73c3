// Package bus provides a process-wide, topic-keyed publish/subscribe bus
// with at-most-once delivery semantics.
//
// The in-memory Hub is the default transport: posting to a topic delivers
// the message to every current subscriber whose buffer has room, drops it
// for subscribers that are behind, and silently discards it when nobody is
// listening. There is no buffering beyond each subscription's channel, no
// replay, and no acknowledgment.
//
// Basic usage:
//
//	hub := bus.NewHub()
//	defer hub.Close()
//
//	sub, err := hub.Subscribe(ctx, "orders.paid")
//	if err != nil {
//	    return err
//	}
//	defer sub.Close()
//
//	go func() {
//	    for msg := range sub.Messages() {
//	        handle(msg.Payload)
//	    }
//	}()
//
//	hub.Post(ctx, "orders.paid", map[string]any{"order_id": "o-42"})
//
// Subscriptions are automatically closed when the context passed to
// Subscribe is cancelled.
//
// # Redis adapter
//
// RedisHub offers the same Publisher surface over Redis PUB/SUB for
// multi-process topologies. Payloads travel as JSON, so only
// JSON-serializable values survive the round trip; delivery semantics are
// otherwise identical to the in-memory hub.
package bus
