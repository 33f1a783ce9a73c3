package bus

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig configures the Redis-backed bus adapter.
type RedisConfig struct {
	ConnectionURL  string        `env:"BUS_REDIS_URL" envDefault:"redis://localhost:6379/0"` // Format "redis://:password@localhost:6379/0"
	ConnectTimeout time.Duration `env:"BUS_REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
	ChannelPrefix  string        `env:"BUS_REDIS_CHANNEL_PREFIX" envDefault:"notifykit:"` // Prepended to every topic to namespace channels.
}

// RedisHub publishes and subscribes over Redis PUB/SUB, giving the same
// at-most-once, no-replay semantics as the in-memory Hub but across
// processes. Payloads are JSON-encoded for transport, so values that are
// not JSON-serializable cannot cross the wire.
type RedisHub struct {
	client *redis.Client
	prefix string
}

// redisEnvelope is the wire form of a Message.
type redisEnvelope struct {
	ID        string         `json:"id"`
	Topic     string         `json:"topic"`
	Payload   map[string]any `json:"payload,omitempty"`
	Timestamp time.Time      `json:"ts"`
}

// NewRedisHub connects to Redis using the given configuration and returns
// a hub bound to that connection.
func NewRedisHub(ctx context.Context, cfg RedisConfig) (*RedisHub, error) {
	opt, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrRedisConnect, err)
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Join(ErrRedisConnect, err)
	}

	return &RedisHub{client: client, prefix: cfg.ChannelPrefix}, nil
}

// NewRedisHubWithClient wraps an existing client, e.g. one shared with
// other application components.
func NewRedisHubWithClient(client *redis.Client, prefix string) *RedisHub {
	return &RedisHub{client: client, prefix: prefix}
}

// Post publishes a payload under the given topic. Topics without
// subscribers drop the message, matching the in-memory hub.
func (h *RedisHub) Post(ctx context.Context, topic string, payload map[string]any) error {
	env := redisEnvelope{
		ID:        newMessageID(),
		Topic:     topic,
		Payload:   payload,
		Timestamp: time.Now(),
	}

	data, err := json.Marshal(env)
	if err != nil {
		return errors.Join(ErrEncodePayload, err)
	}

	return h.client.Publish(ctx, h.prefix+topic, data).Err()
}

// Subscribe opens a Redis subscription for the topic. The returned
// subscription is closed when ctx is cancelled or Close is called.
func (h *RedisHub) Subscribe(ctx context.Context, topic string) (*RedisSubscription, error) {
	ps := h.client.Subscribe(ctx, h.prefix+topic)

	// Wait for the subscription to be confirmed so messages posted right
	// after Subscribe returns are not lost.
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, err
	}

	sub := &RedisSubscription{
		topic:    topic,
		pubsub:   ps,
		messages: make(chan Message, defaultBufferSize),
	}

	go sub.run(ctx)

	return sub, nil
}

// Close releases the underlying Redis client.
func (h *RedisHub) Close() error {
	return h.client.Close()
}

// RedisSubscription receives messages for a single topic over Redis.
type RedisSubscription struct {
	topic    string
	pubsub   *redis.PubSub
	messages chan Message
}

func (s *RedisSubscription) run(ctx context.Context) {
	defer close(s.messages)

	ch := s.pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			_ = s.pubsub.Close()
			return
		case raw, ok := <-ch:
			if !ok {
				return
			}

			var env redisEnvelope
			if err := json.Unmarshal([]byte(raw.Payload), &env); err != nil {
				// Malformed messages are dropped; the bus offers no
				// delivery guarantee to fall back on.
				continue
			}

			msg := Message{
				ID:        env.ID,
				Topic:     env.Topic,
				Payload:   env.Payload,
				Timestamp: env.Timestamp,
			}

			select {
			case s.messages <- msg:
			default:
				// Slow consumer: drop, same as the in-memory hub.
			}
		}
	}
}

// Messages returns the channel on which the subscription receives messages.
func (s *RedisSubscription) Messages() <-chan Message {
	return s.messages
}

// Topic returns the subscribed topic name.
func (s *RedisSubscription) Topic() string {
	return s.topic
}

// Close terminates the Redis subscription.
func (s *RedisSubscription) Close() error {
	return s.pubsub.Close()
}
