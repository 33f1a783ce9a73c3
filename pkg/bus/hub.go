package bus

import (
	"context"
	"sync"
	"time"
)

const defaultBufferSize = 16

// Hub is an in-process, topic-keyed publish/subscribe bus. Delivery is
// at-most-once: messages posted to topics without subscribers are dropped,
// and a subscriber whose buffer is full misses the message rather than
// blocking the publisher. All methods are safe for concurrent use.
type Hub struct {
	bufferSize int
	topics     map[string]map[string]*Subscription
	mu         sync.RWMutex
	closed     bool
	done       chan struct{}
	wg         sync.WaitGroup
}

// Subscription receives messages for a single topic.
type Subscription struct {
	id        string
	topic     string
	messages  chan Message
	hub       *Hub
	closeOnce sync.Once
}

// HubOption configures a Hub.
type HubOption func(*Hub)

// WithDefaultBufferSize sets the channel buffer applied to subscriptions
// that do not override it. Values below 1 are ignored.
func WithDefaultBufferSize(n int) HubOption {
	return func(h *Hub) {
		if n >= 1 {
			h.bufferSize = n
		}
	}
}

// NewHub creates an in-memory hub.
func NewHub(opts ...HubOption) *Hub {
	h := &Hub{
		bufferSize: defaultBufferSize,
		topics:     make(map[string]map[string]*Subscription),
		done:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Subscribe registers a new subscription for the given topic. The
// subscription is automatically closed when ctx is cancelled.
func (h *Hub) Subscribe(ctx context.Context, topic string, opts ...Option) (*Subscription, error) {
	cfg := subscribeConfig{bufferSize: h.bufferSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil, ErrHubClosed
	}

	sub := &Subscription{
		id:       newMessageID(),
		topic:    topic,
		messages: make(chan Message, cfg.bufferSize),
		hub:      h,
	}

	subs, ok := h.topics[topic]
	if !ok {
		subs = make(map[string]*Subscription)
		h.topics[topic] = subs
	}
	subs[sub.id] = sub
	h.mu.Unlock()

	if ctx.Done() != nil {
		h.wg.Add(1)
		go func() {
			defer h.wg.Done()
			select {
			case <-ctx.Done():
				_ = sub.Close()
			case <-h.done:
				// Hub shutdown closes the subscription itself.
			}
		}()
	}

	return sub, nil
}

// Post publishes a payload under the given topic. It never blocks on slow
// subscribers: a full buffer means that subscriber misses the message.
// Posting to a topic with no subscribers returns nil.
func (h *Hub) Post(ctx context.Context, topic string, payload map[string]any) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	msg := Message{
		ID:        newMessageID(),
		Topic:     topic,
		Payload:   payload,
		Timestamp: time.Now(),
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return ErrHubClosed
	}

	for _, sub := range h.topics[topic] {
		select {
		case sub.messages <- msg:
		default:
			// Slow consumer: drop the message for this subscriber.
		}
	}

	return nil
}

// SubscriberCount returns the number of active subscriptions for a topic.
func (h *Hub) SubscriberCount(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[topic])
}

// Topics returns the names of all topics with at least one subscriber.
func (h *Hub) Topics() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	names := make([]string, 0, len(h.topics))
	for name, subs := range h.topics {
		if len(subs) > 0 {
			names = append(names, name)
		}
	}
	return names
}

// Close shuts down the hub and closes every subscription. It is safe to
// call multiple times.
func (h *Hub) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	close(h.done)

	all := make([]*Subscription, 0)
	for _, subs := range h.topics {
		for _, sub := range subs {
			all = append(all, sub)
		}
	}
	clear(h.topics)
	h.mu.Unlock()

	for _, sub := range all {
		_ = sub.Close()
	}

	h.wg.Wait()
	return nil
}

func (h *Hub) unsubscribe(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	subs, ok := h.topics[sub.topic]
	if !ok {
		return
	}
	delete(subs, sub.id)
	if len(subs) == 0 {
		delete(h.topics, sub.topic)
	}
}

// Messages returns the channel on which the subscription receives messages.
// The channel is closed when the subscription closes.
func (s *Subscription) Messages() <-chan Message {
	return s.messages
}

// Topic returns the subscribed topic name.
func (s *Subscription) Topic() string {
	return s.topic
}

// ID returns the unique subscription identifier.
func (s *Subscription) ID() string {
	return s.id
}

// Close unregisters the subscription and closes its message channel.
// It is idempotent.
func (s *Subscription) Close() error {
	s.closeOnce.Do(func() {
		s.hub.unsubscribe(s)
		close(s.messages)
	})
	return nil
}
