package notify_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notifykit/pkg/bus"
	"github.com/dmitrymomot/notifykit/pkg/notify"
)

// capturingPublisher records every Post and whether the platform
// acknowledgement had already happened when the post arrived.
type capturingPublisher struct {
	mu    sync.Mutex
	posts []capturedPost
	done  chan struct{}

	ackedRef *bool
}

type capturedPost struct {
	topic       string
	payload     map[string]any
	ackedAtPost bool
}

func newCapturingPublisher(ackedRef *bool) *capturingPublisher {
	return &capturingPublisher{done: make(chan struct{}, 8), ackedRef: ackedRef}
}

func (p *capturingPublisher) Post(ctx context.Context, topic string, payload map[string]any) error {
	p.mu.Lock()
	acked := p.ackedRef != nil && *p.ackedRef
	p.posts = append(p.posts, capturedPost{topic: topic, payload: payload, ackedAtPost: acked})
	p.mu.Unlock()
	p.done <- struct{}{}
	return nil
}

func (p *capturingPublisher) wait(t *testing.T) capturedPost {
	t.Helper()
	select {
	case <-p.done:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for publication")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.posts[len(p.posts)-1]
}

func responseFor(id string, userInfo map[string]any) notify.Response {
	return notify.Response{
		ActionID: notify.DefaultActionID,
		Notification: notify.Delivered{
			Request: notify.Request{
				ID: id,
				Content: notify.Content{
					Title:    "T",
					Body:     "B",
					UserInfo: userInfo,
				},
			},
			Date: time.Now(),
		},
	}
}

func TestDidReceive_TopicIsRequestIDByDefault(t *testing.T) {
	t.Parallel()

	acked := false
	pub := newCapturingPublisher(&acked)
	svc, err := notify.New(notify.NewMemoryCenter(), notify.WithBus(pub))
	require.NoError(t, err)

	resp := responseFor("morning.alarm", nil)
	svc.DidReceive(resp, func() { acked = true })

	post := pub.wait(t)
	assert.Equal(t, "morning.alarm", post.topic)

	got, ok := svc.ResponseFromEvent(post.payload)
	require.True(t, ok)
	assert.Equal(t, resp, got)
}

func TestDidReceive_PostNameOverridesTopic(t *testing.T) {
	t.Parallel()

	acked := false
	pub := newCapturingPublisher(&acked)
	svc, err := notify.New(notify.NewMemoryCenter(), notify.WithBus(pub))
	require.NoError(t, err)

	resp := responseFor("morning.alarm", map[string]any{
		notify.UserInfoPostNameKey: "custom.topic",
	})
	svc.DidReceive(resp, func() { acked = true })

	post := pub.wait(t)
	assert.Equal(t, "custom.topic", post.topic)
}

func TestDidReceive_EmptyPostNameIsIgnored(t *testing.T) {
	t.Parallel()

	acked := false
	pub := newCapturingPublisher(&acked)
	svc, err := notify.New(notify.NewMemoryCenter(), notify.WithBus(pub))
	require.NoError(t, err)

	resp := responseFor("fallback.topic", map[string]any{
		notify.UserInfoPostNameKey: "",
	})
	svc.DidReceive(resp, func() { acked = true })

	post := pub.wait(t)
	assert.Equal(t, "fallback.topic", post.topic)
}

func TestDidReceive_AcknowledgesBeforePublication(t *testing.T) {
	t.Parallel()

	acked := false
	pub := newCapturingPublisher(&acked)
	svc, err := notify.New(notify.NewMemoryCenter(), notify.WithBus(pub))
	require.NoError(t, err)

	svc.DidReceive(responseFor("any", nil), func() { acked = true })

	// The acknowledgement callback runs synchronously inside DidReceive.
	assert.True(t, acked)

	post := pub.wait(t)
	assert.True(t, post.ackedAtPost, "publication must not precede acknowledgement")
}

func TestDidReceive_NoBusStillAcknowledges(t *testing.T) {
	t.Parallel()

	svc, err := notify.New(notify.NewMemoryCenter())
	require.NoError(t, err)

	acked := false
	svc.DidReceive(responseFor("any", nil), func() { acked = true })
	assert.True(t, acked)
}

func TestDidReceive_EndToEndOverHub(t *testing.T) {
	t.Parallel()

	hub := bus.NewHub()
	defer hub.Close()

	center := notify.NewMemoryCenter()
	svc, err := notify.New(center, notify.WithBus(hub))
	require.NoError(t, err)

	sub, err := hub.Subscribe(context.Background(), "evening.walk")
	require.NoError(t, err)

	_, err = svc.Add(notify.AddRequest{
		Identifier: notify.Text("evening.walk"),
		Title:      notify.Text("Walk"),
		Body:       notify.Text("Time for a walk"),
	}).Await(context.Background())
	require.NoError(t, err)

	require.True(t, center.SimulateDeliver("evening.walk"))
	require.True(t, center.SimulateResponse("evening.walk", notify.DefaultActionID))

	select {
	case msg := <-sub.Messages():
		resp, ok := svc.ResponseFromEvent(msg.Payload)
		require.True(t, ok)
		assert.Equal(t, "evening.walk", resp.Notification.Request.ID)
		assert.Equal(t, notify.DefaultActionID, resp.ActionID)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for republished response")
	}
}

func TestWillPresent_AlwaysGrantsAll(t *testing.T) {
	t.Parallel()

	svc, err := notify.New(notify.NewMemoryCenter())
	require.NoError(t, err)

	// Vibrating style on the content must not change foreground
	// presentation; the vibrate branch is intentionally dead.
	notif := notify.Delivered{
		Request: notify.Request{
			ID: "fg",
			Content: notify.Content{
				Title:    "T",
				Body:     "B",
				Sound:    notify.DefaultSoundName,
				UserInfo: map[string]any{notify.UserInfoVibrateKey: true},
			},
		},
		Date: time.Now(),
	}

	var got notify.PresentationOptions
	svc.WillPresent(notif, func(opts notify.PresentationOptions) { got = opts })

	assert.Equal(t, notify.PresentAll, got)
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type failingPublisher struct{ err error }

func (p failingPublisher) Post(context.Context, string, map[string]any) error { return p.err }

func TestDidReceive_PublishFailureLogged(t *testing.T) {
	t.Parallel()

	var out syncBuffer
	log := slog.New(slog.NewTextHandler(&out, nil))

	svc, err := notify.New(notify.NewMemoryCenter(),
		notify.WithBus(failingPublisher{err: errors.New("hub closed")}),
		notify.WithLogger(log),
	)
	require.NoError(t, err)

	acked := false
	svc.DidReceive(responseFor("morning.brew", nil), func() { acked = true })
	assert.True(t, acked)

	assert.Eventually(t, func() bool {
		line := out.String()
		return strings.Contains(line, "failed to republish notification response") &&
			strings.Contains(line, "component=notify") &&
			strings.Contains(line, "topic=morning.brew")
	}, time.Second, 10*time.Millisecond)
}
