package notify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/notifykit/pkg/notify"
)

// reminderID is a user-defined TextLike carrying structure beyond a name.
type reminderID struct {
	kind string
	seq  int
}

func (r reminderID) Text() string {
	if r.seq == 0 {
		return r.kind
	}
	return r.kind + ".primary"
}

func TestText_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    notify.TextLike
	}{
		{"plain text", notify.Text("morning.alarm")},
		{"empty text", notify.Text("")},
		{"custom value", reminderID{kind: "standup", seq: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// Resolution is identity-preserving under generic equality.
			assert.True(t, notify.Equal(tt.v, notify.Text(tt.v.Text())))
			assert.True(t, notify.EqualText(tt.v, tt.v.Text()))
		})
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()

	assert.True(t, notify.Equal(notify.Text("a"), notify.Text("a")))
	assert.False(t, notify.Equal(notify.Text("a"), notify.Text("A")))
	assert.True(t, notify.Equal(reminderID{kind: "standup", seq: 1}, notify.Text("standup.primary")))
	assert.False(t, notify.Equal(reminderID{kind: "standup"}, notify.Text("standup.primary")))

	// Nil resolves to the empty string.
	assert.True(t, notify.Equal(nil, notify.Text("")))
	assert.True(t, notify.Equal(nil, nil))
	assert.False(t, notify.Equal(nil, notify.Text("x")))
}

func TestEqualText(t *testing.T) {
	t.Parallel()

	assert.True(t, notify.EqualText(notify.Text("topic"), "topic"))
	assert.False(t, notify.EqualText(notify.Text("topic"), "Topic"))
	assert.True(t, notify.EqualText(nil, ""))
}
