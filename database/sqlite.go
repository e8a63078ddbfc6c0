package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"portfolio/database/migrations"
	"portfolio/models"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLiteStore is the single-file Store used for small deployments and tests.
type SQLiteStore struct {
	db      *sql.DB
	builder sq.StatementBuilderType
	now     func() time.Time
}

var _ Store = (*SQLiteStore)(nil)

// OpenSQLite opens (creating if needed) the database at path and applies
// the embedded migrations.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, errors.New("sqlite path is required")
	}

	dsn := path + "?" + url.Values{
		"_pragma": []string{"busy_timeout(5000)", "foreign_keys(ON)", "journal_mode(WAL)"},
	}.Encode()

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// One writer avoids SQLITE_BUSY under concurrent inserts.
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite %s: %w", path, err)
	}
	if err := applySQLiteMigrations(ctx, db, migrations.SQLite()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate sqlite %s: %w", path, err)
	}

	slog.Info("database connection established", "driver", "sqlite", "path", path)
	return newSQLiteStore(db, time.Now), nil
}

func newSQLiteStore(db *sql.DB, now func() time.Time) *SQLiteStore {
	return &SQLiteStore{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
		now:     now,
	}
}

func (s *SQLiteStore) ListProjects(ctx context.Context) ([]models.Project, error) {
	query, args, err := s.builder.Select(projectColumns...).
		From(tableProjects).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, &StorageError{Op: "list projects", Err: err}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &StorageError{Op: "list projects", Err: err}
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		var (
			p    models.Project
			tags string
			icon string
		)
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Category, &tags, &p.Details,
			&p.Subject, &icon, &p.BgColor, &p.IconColor, &p.CategoryColor); err != nil {
			return nil, &StorageError{Op: "list projects", Err: fmt.Errorf("failed to scan project: %w", err)}
		}
		if err := json.Unmarshal([]byte(tags), &p.Tags); err != nil {
			return nil, &StorageError{Op: "list projects", Err: fmt.Errorf("decode tags of %s: %w", p.ID, err)}
		}
		p.Tags = tagsOrEmpty(p.Tags)
		p.Icon = models.Icon(icon)
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "list projects", Err: err}
	}
	return projects, nil
}

func (s *SQLiteStore) CountProjects(ctx context.Context) (int, error) {
	query, args, err := s.builder.Select("COUNT(*)").From(tableProjects).ToSql()
	if err != nil {
		return 0, &StorageError{Op: "count projects", Err: err}
	}

	var count int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, &StorageError{Op: "count projects", Err: err}
	}
	return count, nil
}

func (s *SQLiteStore) InsertProjects(ctx context.Context, projects []models.Project) error {
	if len(projects) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return &StorageError{Op: "insert projects", Err: err}
	}
	defer func() {
		_ = tx.Rollback()
	}()

	maxQuery, maxArgs, err := s.builder.Select("COALESCE(MAX(position), 0)").From(tableProjects).ToSql()
	if err != nil {
		return &StorageError{Op: "insert projects", Err: err}
	}
	var base int
	if err := tx.QueryRowContext(ctx, maxQuery, maxArgs...).Scan(&base); err != nil {
		return &StorageError{Op: "insert projects", Err: err}
	}

	insert := s.builder.Insert(tableProjects).Columns(append([]string{"position"}, projectColumns...)...)
	for i, p := range projects {
		id := p.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		tags, err := json.Marshal(tagsOrEmpty(p.Tags))
		if err != nil {
			return &StorageError{Op: "insert projects", Err: err}
		}
		insert = insert.Values(
			base+i+1,
			id.String(), p.Title, p.Description, p.Category, string(tags), p.Details,
			p.Subject, string(p.Icon), p.BgColor, p.IconColor, p.CategoryColor,
		)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return &StorageError{Op: "insert projects", Err: err}
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return &StorageError{Op: "insert projects", Err: err}
	}
	if err := tx.Commit(); err != nil {
		return &StorageError{Op: "insert projects", Err: err}
	}

	slog.Info("projects inserted", "count", len(projects))
	return nil
}

func (s *SQLiteStore) CreateContactMessage(ctx context.Context, sub models.ContactSubmission) (*models.ContactMessage, error) {
	msg := newContactMessage(sub, s.now())

	var phone any
	if msg.Phone != "" {
		phone = msg.Phone
	}

	query, args, err := s.builder.Insert(tableMessages).
		Columns(messageColumns...).
		Values(
			msg.ID.String(), msg.FirstName, msg.LastName, msg.Email, phone,
			msg.Subject, msg.Message, msg.CreatedAt.UnixMilli(),
		).
		ToSql()
	if err != nil {
		return nil, &StorageError{Op: "create contact message", Err: err}
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return nil, &StorageError{Op: "create contact message", Err: err}
	}
	return msg, nil
}

func (s *SQLiteStore) ListContactMessages(ctx context.Context) ([]models.ContactMessage, error) {
	query, args, err := s.builder.Select(
		"id", "first_name", "last_name", "email", "COALESCE(phone, '')",
		"subject", "message", "created_at",
	).
		From(tableMessages).
		OrderBy("created_at DESC", "rowid DESC").
		ToSql()
	if err != nil {
		return nil, &StorageError{Op: "list contact messages", Err: err}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &StorageError{Op: "list contact messages", Err: err}
	}
	defer rows.Close()

	messages := []models.ContactMessage{}
	for rows.Next() {
		var (
			m       models.ContactMessage
			created int64
		)
		if err := rows.Scan(&m.ID, &m.FirstName, &m.LastName, &m.Email, &m.Phone,
			&m.Subject, &m.Message, &created); err != nil {
			return nil, &StorageError{Op: "list contact messages", Err: fmt.Errorf("failed to scan message: %w", err)}
		}
		m.CreatedAt = time.UnixMilli(created).UTC()
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "list contact messages", Err: err}
	}
	return messages, nil
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return &StorageError{Op: "ping", Err: err}
	}
	return nil
}

func (s *SQLiteStore) Close() {
	if err := s.db.Close(); err != nil {
		slog.Warn("failed to close sqlite", "error", err)
		return
	}
	slog.Info("database connection closed", "driver", "sqlite")
}
