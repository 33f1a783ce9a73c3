package bus

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Message is the envelope delivered to subscribers of a topic.
type Message struct {
	// ID uniquely identifies the message within the process.
	ID string
	// Topic is the key the message was posted under.
	Topic string
	// Payload carries arbitrary application data.
	Payload map[string]any
	// Timestamp records when the message was posted.
	Timestamp time.Time
}

// Publisher is the write side of a topic bus. Posting to a topic with no
// subscribers is not an error; the message is simply dropped.
type Publisher interface {
	Post(ctx context.Context, topic string, payload map[string]any) error
}

// newMessageID produces the unique envelope identifier shared by the
// in-memory and Redis hubs.
func newMessageID() string {
	return uuid.New().String()
}

// subscribeConfig holds per-subscription settings applied via Option.
type subscribeConfig struct {
	bufferSize int
}

// Option configures a subscription.
type Option func(*subscribeConfig)

// WithBufferSize overrides the hub's default channel buffer for one
// subscription. Values below 1 are ignored.
func WithBufferSize(n int) Option {
	return func(c *subscribeConfig) {
		if n >= 1 {
			c.bufferSize = n
		}
	}
}
