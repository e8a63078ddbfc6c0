package notify

import (
	"context"
	"errors"
	"portfolio/models"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChannel struct {
	name  string
	err   error
	delay time.Duration

	mu    sync.Mutex
	calls []Message
}

func (s *stubChannel) Name() string { return s.name }

func (s *stubChannel) Send(ctx context.Context, msg Message) error {
	s.mu.Lock()
	s.calls = append(s.calls, msg)
	s.mu.Unlock()

	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return s.err
}

func (s *stubChannel) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

type panicChannel struct{}

func (panicChannel) Name() string { return "panicky" }

func (panicChannel) Send(context.Context, Message) error { panic("boom") }

func testContact() models.ContactMessage {
	return models.ContactMessage{
		ID:        uuid.New(),
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Phone:     "+44 20 7946 0000",
		Subject:   "consultation",
		Message:   "Hello there,\nI would like to talk.",
		CreatedAt: time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC),
	}
}

func newTestDispatcher(t *testing.T, timeout time.Duration, channels ...Channel) *Dispatcher {
	t.Helper()
	renderer, err := NewRenderer("Portfolio")
	require.NoError(t, err)
	return NewDispatcher(renderer, timeout, channels...)
}

func TestNotify_FirstSuccessStops(t *testing.T) {
	a := &stubChannel{name: "a", err: errors.New("a down")}
	b := &stubChannel{name: "b"}
	c := &stubChannel{name: "c"}

	d := newTestDispatcher(t, time.Second, a, b, c)
	result := d.Notify(context.Background(), testContact())

	assert.True(t, result.Delivered)
	assert.Equal(t, "b", result.Channel)
	assert.Empty(t, result.LastError)
	assert.Equal(t, 1, a.callCount())
	assert.Equal(t, 1, b.callCount())
	assert.Equal(t, 0, c.callCount(), "channels after the first success must not be tried")
}

func TestNotify_AllFailReportsLastError(t *testing.T) {
	a := &stubChannel{name: "a", err: errors.New("first failure")}
	b := &stubChannel{name: "b", err: errors.New("second failure")}
	c := &stubChannel{name: "c", err: errors.New("third failure")}

	d := newTestDispatcher(t, time.Second, a, b, c)
	result := d.Notify(context.Background(), testContact())

	assert.False(t, result.Delivered)
	assert.Empty(t, result.Channel)
	assert.Equal(t, "c: third failure", result.LastError)
	assert.NotContains(t, result.LastError, "first failure")
	for _, ch := range []*stubChannel{a, b, c} {
		assert.Equal(t, 1, ch.callCount(), "channel %s must be tried exactly once", ch.name)
	}
}

func TestNotify_NoChannels(t *testing.T) {
	d := newTestDispatcher(t, time.Second)
	result := d.Notify(context.Background(), testContact())

	assert.False(t, result.Delivered)
	assert.Equal(t, "no notification channels configured", result.LastError)
}

func TestNotify_TimeoutMovesToNextChannel(t *testing.T) {
	slow := &stubChannel{name: "slow", delay: time.Second}
	fast := &stubChannel{name: "fast"}

	d := newTestDispatcher(t, 20*time.Millisecond, slow, fast)

	start := time.Now()
	result := d.Notify(context.Background(), testContact())

	assert.True(t, result.Delivered)
	assert.Equal(t, "fast", result.Channel)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestNotify_PanicIsAFailure(t *testing.T) {
	next := &stubChannel{name: "next"}

	d := newTestDispatcher(t, time.Second, panicChannel{}, next)
	result := d.Notify(context.Background(), testContact())

	assert.True(t, result.Delivered)
	assert.Equal(t, "next", result.Channel)
}

func TestNotify_RendersOnceForAllChannels(t *testing.T) {
	a := &stubChannel{name: "a", err: errors.New("down")}
	b := &stubChannel{name: "b", err: errors.New("down")}

	d := newTestDispatcher(t, time.Second, a, b)
	d.Notify(context.Background(), testContact())

	require.Len(t, a.calls, 1)
	require.Len(t, b.calls, 1)
	assert.Equal(t, a.calls[0], b.calls[0])
}

func TestDispatcher_Channels(t *testing.T) {
	d := newTestDispatcher(t, 0, &stubChannel{name: "x"}, &stubChannel{name: "y"})
	assert.Equal(t, []string{"x", "y"}, d.Channels())
	assert.Equal(t, DefaultTimeout, d.timeout)
}
