package lock

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPGAdvisoryLock(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	first := NewPGAdvisory(pool, "portfolio:test-lock")
	second := NewPGAdvisory(pool, "portfolio:test-lock")

	ok, err := first.Acquire(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = second.Acquire(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "a second session must not take a held advisory lock")

	require.NoError(t, first.Release(ctx))

	ok, err = second.Acquire(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, second.Release(ctx))

	// Releasing an unheld lock is a no-op.
	assert.NoError(t, first.Release(ctx))
}
