// Package notify delivers new contact messages to the site owner through an
// ordered chain of channels, stopping at the first that accepts the message.
package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"portfolio/models"
	"time"
)

// DefaultTimeout bounds a single channel attempt when none is configured.
const DefaultTimeout = 8 * time.Second

var errNoChannels = errors.New("no notification channels configured")

// Message is a rendered notification for one contact message.
type Message struct {
	Contact models.ContactMessage
	Subject string
	Text    string
	HTML    string
}

// Channel is one external delivery mechanism.
type Channel interface {
	Name() string
	// Send makes a single delivery attempt. It must not retry.
	Send(ctx context.Context, msg Message) error
}

// Result reports the outcome of a dispatch. LastError is only set when no
// channel delivered and carries the error of the last channel tried.
type Result struct {
	Delivered bool   `json:"delivered"`
	Channel   string `json:"channelUsed,omitempty"`
	LastError string `json:"lastError,omitempty"`
}

// Dispatcher tries its channels in order. It is safe for concurrent use.
type Dispatcher struct {
	renderer *Renderer
	channels []Channel
	timeout  time.Duration
}

// NewDispatcher returns a Dispatcher trying channels in the given order.
func NewDispatcher(renderer *Renderer, timeout time.Duration, channels ...Channel) *Dispatcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Dispatcher{
		renderer: renderer,
		channels: channels,
		timeout:  timeout,
	}
}

// Channels returns the channel names in attempt order.
func (d *Dispatcher) Channels() []string {
	names := make([]string, len(d.channels))
	for i, ch := range d.channels {
		names[i] = ch.Name()
	}
	return names
}

// Notify renders msg once and offers it to each channel in turn.
// It never returns an error; failures are reported in the Result.
func (d *Dispatcher) Notify(ctx context.Context, msg models.ContactMessage) Result {
	if len(d.channels) == 0 {
		slog.Warn("notification skipped", "id", msg.ID, "error", errNoChannels)
		return Result{LastError: errNoChannels.Error()}
	}

	rendered, err := d.renderer.Render(msg)
	if err != nil {
		slog.Error("failed to render notification", "id", msg.ID, "error", err)
		return Result{LastError: err.Error()}
	}

	var lastErr error
	for _, ch := range d.channels {
		start := time.Now()
		err := d.attempt(ctx, ch, rendered)
		if err == nil {
			slog.Info("notification delivered",
				"id", msg.ID,
				"channel", ch.Name(),
				"duration_ms", time.Since(start).Milliseconds(),
			)
			return Result{Delivered: true, Channel: ch.Name()}
		}

		lastErr = fmt.Errorf("%s: %w", ch.Name(), err)
		slog.Warn("notification channel failed",
			"id", msg.ID,
			"channel", ch.Name(),
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err,
		)
	}

	slog.Error("all notification channels failed", "id", msg.ID, "error", lastErr)
	return Result{LastError: lastErr.Error()}
}

func (d *Dispatcher) attempt(ctx context.Context, ch Channel, msg Message) (err error) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return ch.Send(ctx, msg)
}
