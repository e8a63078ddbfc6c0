package database

import (
	"context"
	"fmt"
	"log/slog"
	"portfolio/models"

	"github.com/google/uuid"
)

var projectColumns = []string{
	"id", "title", "description", "category", "tags", "details",
	"subject", "icon", "bg_color", "icon_color", "category_color",
}

func (db *DB) ListProjects(ctx context.Context) ([]models.Project, error) {
	query, args, err := psql.Select(projectColumns...).
		From(tableProjects).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, &StorageError{Op: "list projects", Err: err}
	}

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, &StorageError{Op: "list projects", Err: err}
	}
	defer rows.Close()

	projects, err := scanProjects(rows)
	if err != nil {
		return nil, &StorageError{Op: "list projects", Err: err}
	}
	return projects, nil
}

func (db *DB) CountProjects(ctx context.Context) (int, error) {
	query, args, err := psql.Select("COUNT(*)").From(tableProjects).ToSql()
	if err != nil {
		return 0, &StorageError{Op: "count projects", Err: err}
	}

	var count int
	if err := db.Pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, &StorageError{Op: "count projects", Err: err}
	}
	return count, nil
}

func (db *DB) InsertProjects(ctx context.Context, projects []models.Project) error {
	if len(projects) == 0 {
		return nil
	}

	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return &StorageError{Op: "insert projects", Err: err}
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	// Positions continue after the current maximum so catalog order is stable.
	maxQuery, maxArgs, err := psql.Select("COALESCE(MAX(position), 0)").From(tableProjects).ToSql()
	if err != nil {
		return &StorageError{Op: "insert projects", Err: err}
	}
	var base int
	if err := tx.QueryRow(ctx, maxQuery, maxArgs...).Scan(&base); err != nil {
		return &StorageError{Op: "insert projects", Err: err}
	}

	insert := psql.Insert(tableProjects).Columns(append([]string{"position"}, projectColumns...)...)
	for i, p := range projects {
		id := p.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		insert = insert.Values(
			base+i+1,
			id, p.Title, p.Description, p.Category, tagsOrEmpty(p.Tags), p.Details,
			p.Subject, string(p.Icon), p.BgColor, p.IconColor, p.CategoryColor,
		)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return &StorageError{Op: "insert projects", Err: err}
	}
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return &StorageError{Op: "insert projects", Err: err}
	}

	if err := tx.Commit(ctx); err != nil {
		return &StorageError{Op: "insert projects", Err: err}
	}

	slog.Info("projects inserted", "count", len(projects))
	return nil
}

// Helper functions

func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

type rowScanner interface {
	Scan(dest ...any) error
}

type rowsScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanProject(row rowScanner) (*models.Project, error) {
	var project models.Project
	var icon string
	err := row.Scan(
		&project.ID,
		&project.Title,
		&project.Description,
		&project.Category,
		&project.Tags,
		&project.Details,
		&project.Subject,
		&icon,
		&project.BgColor,
		&project.IconColor,
		&project.CategoryColor,
	)
	if err != nil {
		return nil, err
	}
	project.Icon = models.Icon(icon)
	return &project, nil
}

func scanProjects(rows rowsScanner) ([]models.Project, error) {
	projects := []models.Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating projects: %w", err)
	}

	return projects, nil
}
