package database

import (
	"context"
	"fmt"
	"portfolio/models"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var messageColumns = []string{
	"id", "first_name", "last_name", "email", "phone", "subject", "message", "created_at",
}

func (db *DB) CreateContactMessage(ctx context.Context, sub models.ContactSubmission) (*models.ContactMessage, error) {
	msg := newContactMessage(sub, db.now())

	query, args, err := psql.Insert(tableMessages).
		Columns(messageColumns...).
		Values(
			msg.ID, msg.FirstName, msg.LastName, msg.Email,
			sq.Expr("NULLIF(?, '')", msg.Phone),
			msg.Subject, msg.Message, msg.CreatedAt,
		).
		ToSql()
	if err != nil {
		return nil, &StorageError{Op: "create contact message", Err: err}
	}

	if _, err := db.Pool.Exec(ctx, query, args...); err != nil {
		return nil, &StorageError{Op: "create contact message", Err: err}
	}
	return msg, nil
}

func (db *DB) ListContactMessages(ctx context.Context) ([]models.ContactMessage, error) {
	query, args, err := psql.Select(
		"id", "first_name", "last_name", "email", "COALESCE(phone, '')",
		"subject", "message", "created_at",
	).
		From(tableMessages).
		OrderBy("created_at DESC", "seq DESC").
		ToSql()
	if err != nil {
		return nil, &StorageError{Op: "list contact messages", Err: err}
	}

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, &StorageError{Op: "list contact messages", Err: err}
	}
	defer rows.Close()

	messages := []models.ContactMessage{}
	for rows.Next() {
		var m models.ContactMessage
		if err := rows.Scan(&m.ID, &m.FirstName, &m.LastName, &m.Email, &m.Phone,
			&m.Subject, &m.Message, &m.CreatedAt); err != nil {
			return nil, &StorageError{Op: "list contact messages", Err: fmt.Errorf("failed to scan message: %w", err)}
		}
		m.CreatedAt = m.CreatedAt.UTC()
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "list contact messages", Err: err}
	}
	return messages, nil
}

// newContactMessage assigns identity and creation time to a validated submission.
func newContactMessage(sub models.ContactSubmission, now time.Time) *models.ContactMessage {
	return &models.ContactMessage{
		ID:        uuid.New(),
		FirstName: sub.FirstName,
		LastName:  sub.LastName,
		Email:     sub.Email,
		Phone:     sub.Phone,
		Subject:   sub.Subject,
		Message:   sub.Message,
		CreatedAt: ceilMillisecond(now.UTC()),
	}
}

// ceilMillisecond rounds t up to millisecond precision, the coarsest any
// backend stores, so a stored timestamp never precedes the moment it records.
func ceilMillisecond(t time.Time) time.Time {
	r := t.Truncate(time.Millisecond)
	if r.Before(t) {
		return r.Add(time.Millisecond)
	}
	return r
}
