package bus_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notifykit/pkg/bus"
)

func receiveOne(t *testing.T, sub *bus.Subscription) bus.Message {
	t.Helper()
	select {
	case msg, ok := <-sub.Messages():
		require.True(t, ok, "subscription channel closed unexpectedly")
		return msg
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
		return bus.Message{}
	}
}

func TestHub_PostDeliversToAllSubscribers(t *testing.T) {
	t.Parallel()

	hub := bus.NewHub()
	defer hub.Close()

	ctx := context.Background()

	first, err := hub.Subscribe(ctx, "alerts")
	require.NoError(t, err)
	second, err := hub.Subscribe(ctx, "alerts")
	require.NoError(t, err)
	other, err := hub.Subscribe(ctx, "unrelated")
	require.NoError(t, err)

	payload := map[string]any{"severity": "high"}
	require.NoError(t, hub.Post(ctx, "alerts", payload))

	for _, sub := range []*bus.Subscription{first, second} {
		msg := receiveOne(t, sub)
		assert.Equal(t, "alerts", msg.Topic)
		assert.Equal(t, payload, msg.Payload)
		assert.NotEmpty(t, msg.ID)
		assert.False(t, msg.Timestamp.IsZero())
	}

	select {
	case msg := <-other.Messages():
		t.Fatalf("unrelated topic received message %v", msg)
	default:
	}
}

func TestHub_PostWithoutSubscribersIsNotAnError(t *testing.T) {
	t.Parallel()

	hub := bus.NewHub()
	defer hub.Close()

	assert.NoError(t, hub.Post(context.Background(), "nobody.home", map[string]any{"k": "v"}))
}

func TestHub_SlowConsumerDropsMessages(t *testing.T) {
	t.Parallel()

	hub := bus.NewHub()
	defer hub.Close()

	ctx := context.Background()
	sub, err := hub.Subscribe(ctx, "fast", bus.WithBufferSize(1))
	require.NoError(t, err)

	require.NoError(t, hub.Post(ctx, "fast", map[string]any{"n": 1}))
	// Buffer is full now; this one must be dropped without blocking.
	require.NoError(t, hub.Post(ctx, "fast", map[string]any{"n": 2}))

	msg := receiveOne(t, sub)
	assert.Equal(t, map[string]any{"n": 1}, msg.Payload)

	select {
	case extra := <-sub.Messages():
		t.Fatalf("expected second message to be dropped, got %v", extra)
	default:
	}
}

func TestHub_ContextCancellationUnsubscribes(t *testing.T) {
	t.Parallel()

	hub := bus.NewHub()
	defer hub.Close()

	ctx, cancel := context.WithCancel(context.Background())
	sub, err := hub.Subscribe(ctx, "ephemeral")
	require.NoError(t, err)

	cancel()

	require.Eventually(t, func() bool {
		return hub.SubscriberCount("ephemeral") == 0
	}, time.Second, 10*time.Millisecond)

	// Channel is closed after unsubscribe.
	_, ok := <-sub.Messages()
	assert.False(t, ok)
}

func TestHub_SubscriptionClose(t *testing.T) {
	t.Parallel()

	hub := bus.NewHub()
	defer hub.Close()

	ctx := context.Background()
	sub, err := hub.Subscribe(ctx, "topic")
	require.NoError(t, err)
	assert.Equal(t, 1, hub.SubscriberCount("topic"))

	require.NoError(t, sub.Close())
	require.NoError(t, sub.Close()) // idempotent
	assert.Equal(t, 0, hub.SubscriberCount("topic"))
	assert.Empty(t, hub.Topics())
}

func TestHub_Close(t *testing.T) {
	t.Parallel()

	hub := bus.NewHub()

	ctx := context.Background()
	sub, err := hub.Subscribe(ctx, "topic")
	require.NoError(t, err)

	require.NoError(t, hub.Close())
	require.NoError(t, hub.Close()) // idempotent

	_, ok := <-sub.Messages()
	assert.False(t, ok)

	_, err = hub.Subscribe(ctx, "topic")
	assert.ErrorIs(t, err, bus.ErrHubClosed)

	err = hub.Post(ctx, "topic", nil)
	assert.ErrorIs(t, err, bus.ErrHubClosed)
}

func TestHub_CloseWithLiveContextSubscription(t *testing.T) {
	t.Parallel()

	hub := bus.NewHub()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, err := hub.Subscribe(ctx, "topic")
	require.NoError(t, err)

	// Close must not wait for the subscriber's context to be cancelled.
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = hub.Close()
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("hub close blocked on live subscriber context")
	}
}

func TestHub_Topics(t *testing.T) {
	t.Parallel()

	hub := bus.NewHub()
	defer hub.Close()

	ctx := context.Background()
	_, err := hub.Subscribe(ctx, "a")
	require.NoError(t, err)
	_, err = hub.Subscribe(ctx, "b")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"a", "b"}, hub.Topics())
}
