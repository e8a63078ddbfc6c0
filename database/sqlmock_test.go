package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*SQLiteStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return newSQLiteStore(db, time.Now), mock
}

func assertStorageError(t *testing.T, err error, op string) {
	t.Helper()
	require.Error(t, err)
	var serr *StorageError
	require.True(t, errors.As(err, &serr), "want *StorageError, got %T", err)
	assert.Equal(t, op, serr.Op)
}

func TestSQLiteStore_StorageErrors(t *testing.T) {
	boom := errors.New("disk I/O error")

	t.Run("ListProjects", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectQuery("SELECT .* FROM projects").WillReturnError(boom)

		projects, err := store.ListProjects(context.Background())
		assert.Nil(t, projects)
		assertStorageError(t, err, "list projects")
		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ListProjects bad tags", func(t *testing.T) {
		store, mock := newMockStore(t)
		rows := sqlmock.NewRows(projectColumns).
			AddRow("7f9c1f2e-9b5c-4c47-9a51-3f6f0f1c1a10", "t", "d", "c", "not json", "x",
				"s", "gem", "b", "i", "cc")
		mock.ExpectQuery("SELECT .* FROM projects").WillReturnRows(rows)

		_, err := store.ListProjects(context.Background())
		assertStorageError(t, err, "list projects")
	})

	t.Run("CountProjects", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectQuery("SELECT COUNT").WillReturnError(boom)

		_, err := store.CountProjects(context.Background())
		assertStorageError(t, err, "count projects")
	})

	t.Run("InsertProjects rolls back", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT COALESCE").WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(0))
		mock.ExpectExec("INSERT INTO projects").WillReturnError(boom)
		mock.ExpectRollback()

		err := store.InsertProjects(context.Background(), DefaultProjects())
		assertStorageError(t, err, "insert projects")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CreateContactMessage", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectExec("INSERT INTO contact_messages").WillReturnError(boom)

		msg, err := store.CreateContactMessage(context.Background(), validSubmission("jane"))
		assert.Nil(t, msg)
		assertStorageError(t, err, "create contact message")
	})

	t.Run("ListContactMessages", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectQuery("SELECT .* FROM contact_messages").WillReturnError(boom)

		messages, err := store.ListContactMessages(context.Background())
		assert.Nil(t, messages)
		assertStorageError(t, err, "list contact messages")
	})

	t.Run("Ping", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		t.Cleanup(func() { _ = db.Close() })
		store := newSQLiteStore(db, time.Now)

		mock.ExpectPing().WillReturnError(boom)
		assertStorageError(t, store.Ping(context.Background()), "ping")
	})
}

func TestStorageError_Message(t *testing.T) {
	err := &StorageError{Op: "list projects", Err: errors.New("connection refused")}
	assert.Equal(t, "storage: list projects: connection refused", err.Error())
}
