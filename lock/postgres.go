package lock

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PGAdvisoryLock is a Locker on a session-scoped Postgres advisory lock.
// Advisory locks belong to the session that took them, so the lock pins a
// pool connection from Acquire until Release.
type PGAdvisoryLock struct {
	pool *pgxpool.Pool
	id   int64

	mu   sync.Mutex
	conn *pgxpool.Conn
}

// NewPGAdvisory derives a stable lock id from key.
func NewPGAdvisory(pool *pgxpool.Pool, key string) *PGAdvisoryLock {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key))
	return &PGAdvisoryLock{pool: pool, id: int64(h.Sum64())}
}

func (l *PGAdvisoryLock) Acquire(ctx context.Context) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.conn != nil {
		return false, errors.New("advisory lock already held by this instance")
	}

	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return false, fmt.Errorf("acquire connection for advisory lock: %w", err)
	}

	var ok bool
	if err := conn.QueryRow(ctx, "SELECT pg_try_advisory_lock($1)", l.id).Scan(&ok); err != nil {
		conn.Release()
		return false, fmt.Errorf("try advisory lock: %w", err)
	}
	if !ok {
		conn.Release()
		return false, nil
	}

	l.conn = conn
	return true, nil
}

func (l *PGAdvisoryLock) Release(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.conn == nil {
		return nil
	}
	defer func() {
		l.conn.Release()
		l.conn = nil
	}()

	if _, err := l.conn.Exec(ctx, "SELECT pg_advisory_unlock($1)", l.id); err != nil {
		// Closing the session drops the lock; the pool discards the dead connection.
		_ = l.conn.Conn().Close(ctx)
		return fmt.Errorf("advisory unlock: %w", err)
	}
	return nil
}
