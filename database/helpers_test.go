package database

import (
	"context"
	"fmt"
	"path/filepath"
	"portfolio/models"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testDB *DB

// GetTestDB returns the shared Postgres test database, skipping the test
// when none was configured.
func GetTestDB(t *testing.T) *DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	if testDB == nil {
		t.Skip("TEST_DATABASE_URL not set")
	}
	return testDB
}

// SetupTestDB connects to dbURL and applies the embedded migrations.
// Called once from TestMain.
func SetupTestDB(dbURL string) (*DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := Connect(ctx, dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to test database: %w", err)
	}

	if _, err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// CleanupTestDB truncates all tables for a fresh test state.
func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	_, err := db.Pool.Exec(context.Background(), "TRUNCATE TABLE contact_messages, projects")
	require.NoError(t, err)
}

// TeardownTestDB closes the test database connection. Safe with a nil DB.
func TeardownTestDB(db *DB) {
	if db != nil {
		db.Close()
	}
}

// newTestSQLite opens a fresh SQLite store in a temp dir with a controllable clock.
func newTestSQLite(t *testing.T) (*SQLiteStore, *fakeClock) {
	t.Helper()

	store, err := OpenSQLite(filepath.Join(t.TempDir(), "portfolio.db"))
	require.NoError(t, err)
	t.Cleanup(store.Close)

	clock := &fakeClock{now: time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)}
	store.now = clock.Now
	return store, clock
}

type fakeClock struct {
	mu   sync.Mutex
	now  time.Time
	real bool
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.real {
		return time.Now()
	}
	return c.now
}

// UseRealTime makes the clock follow the wall clock from now on.
func (c *fakeClock) UseRealTime() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.real = true
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func validSubmission(first string) models.ContactSubmission {
	return models.ContactSubmission{
		FirstName: first,
		LastName:  "Doe",
		Email:     first + "@example.com",
		Subject:   "consultation",
		Message:   "I would like to discuss a project.",
	}
}
