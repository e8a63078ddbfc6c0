package database

import (
	"context"
	"fmt"
	"log/slog"
	"portfolio/lock"
	"portfolio/models"
)

// SeedProjectsIfEmpty stores defaults when the catalog is empty and reports
// how many projects it inserted. The check and the insert run under locker,
// so concurrent instances seed at most once.
func SeedProjectsIfEmpty(ctx context.Context, store Store, locker lock.Locker, defaults []models.Project) (int, error) {
	if locker == nil {
		locker = lock.Noop{}
	}

	if err := lock.Wait(ctx, locker, lock.DefaultPollInterval); err != nil {
		return 0, fmt.Errorf("seed projects: %w", err)
	}
	defer func() {
		// Release must run even when ctx has been cancelled.
		if err := locker.Release(context.WithoutCancel(ctx)); err != nil {
			slog.Warn("failed to release seed lock", "error", err)
		}
	}()

	count, err := store.CountProjects(ctx)
	if err != nil {
		return 0, fmt.Errorf("seed projects: %w", err)
	}
	if count > 0 {
		slog.Info("project catalog already seeded", "count", count)
		return 0, nil
	}

	if err := store.InsertProjects(ctx, defaults); err != nil {
		return 0, fmt.Errorf("seed projects: %w", err)
	}
	return len(defaults), nil
}
