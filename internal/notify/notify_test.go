package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeSender struct {
	available bool
	sent      []Notification
}

func (s *fakeSender) Send(n Notification) error {
	s.sent = append(s.sent, n)
	return nil
}

func (s *fakeSender) Available() bool {
	return s.available
}

func TestNotifier_SkipsInCI(t *testing.T) {
	t.Setenv("CI", "true")

	sender := &fakeSender{available: true}
	n := NewNotifierWithSender(sender)
	n.Notify("cursorlog", "Cursor 0.48.1 released")

	assert.Empty(t, sender.sent)
}

func TestNotifier_SkipsWhenToolUnavailable(t *testing.T) {
	t.Setenv("CI", "")

	sender := &fakeSender{available: false}
	n := NewNotifierWithSender(sender)
	n.Notify("cursorlog", "Cursor 0.48.1 released")

	assert.Empty(t, sender.sent)
}

func TestNoopSender(t *testing.T) {
	t.Parallel()

	var s noopSender
	assert.False(t, s.Available())
	assert.NoError(t, s.Send(Notification{Title: "t", Message: "m"}))
}
