// Package lock serializes one-off startup work, such as seeding, across
// server instances sharing a database.
package lock

import (
	"context"
	"fmt"
	"time"
)

// Locker is a non-blocking mutual exclusion primitive.
// A Locker is owned by one goroutine; use separate instances to contend.
type Locker interface {
	// Acquire tries to take the lock and reports whether it did.
	Acquire(ctx context.Context) (bool, error)
	// Release gives the lock up if this instance still holds it.
	Release(ctx context.Context) error
}

// DefaultPollInterval is how often Wait retries a held lock.
const DefaultPollInterval = 200 * time.Millisecond

// Wait polls l until it is acquired or ctx is done.
func Wait(ctx context.Context, l Locker, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		ok, err := l.Acquire(ctx)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("wait for lock: %w", ctx.Err())
		case <-ticker.C:
		}
	}
}

// Noop is a Locker for single-process deployments. It always succeeds.
type Noop struct{}

func (Noop) Acquire(context.Context) (bool, error) { return true, nil }

func (Noop) Release(context.Context) error { return nil }
