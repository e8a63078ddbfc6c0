// Package database persists portfolio projects and contact messages.
package database

import (
	"context"
	"fmt"
	"portfolio/config"
	"portfolio/models"
)

// Store is the content store behind the API.
// Projects are read-mostly and written once by the seeder; contact messages
// are append-only.
type Store interface {
	// ListProjects returns every project in catalog order.
	ListProjects(ctx context.Context) ([]models.Project, error)
	// CountProjects returns the number of stored projects.
	CountProjects(ctx context.Context) (int, error)
	// InsertProjects stores projects atomically, appending them
	// to the catalog order.
	InsertProjects(ctx context.Context, projects []models.Project) error
	// CreateContactMessage assigns an id and creation time and stores the message.
	CreateContactMessage(ctx context.Context, sub models.ContactSubmission) (*models.ContactMessage, error)
	// ListContactMessages returns every message, newest first.
	ListContactMessages(ctx context.Context) ([]models.ContactMessage, error)
	Ping(ctx context.Context) error
	Close()
}

// StorageError wraps any failure of the underlying database.
// Callers should log it and answer with a generic message.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Open connects to the backend selected by cfg.Driver.
func Open(ctx context.Context, cfg config.DatabaseConfig) (Store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		db, err := Connect(ctx, cfg.URL)
		if err != nil {
			return nil, err
		}
		return db, nil
	case config.DriverSQLite:
		store, err := OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}
