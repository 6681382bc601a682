// Copyright (c) ZKAi-DEV
// SPDX-License-Identifier: BUSL-1.1

package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/fokusdb"
)

// RetentionDays is how many days a task document is kept after its date.
const RetentionDays = 7

const sweepConcurrency = 8

// SweepExpired deletes the task documents of userID dated more than
// RetentionDays before today in the location of m. Failed deletes are logged and skipped. It
// returns the dates that were deleted.
func (m *Manager) SweepExpired(ctx context.Context, userID string) ([]string, error) {
	ids, err := m.store.List(ctx, userID, fokusdb.CollectionTasks)
	if err != nil {
		return nil, fmt.Errorf("tasks: listing task documents: %w", err)
	}

	now := m.now().In(m.loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var (
		mu      sync.Mutex
		deleted []string
		grp     errgroup.Group
	)
	grp.SetLimit(sweepConcurrency)
	for _, id := range ids {
		date, err := time.Parse(time.DateOnly, id)
		if err != nil {
			continue
		}
		if ageDays(today, date) <= RetentionDays {
			continue
		}
		grp.Go(func() error {
			if err := m.store.Delete(ctx, taskRef(userID, id)); err != nil {
				slog.WarnContext(ctx, "tasks: deleting expired document", "user", userID, "date", id, "error", err)
				return nil
			}
			mu.Lock()
			deleted = append(deleted, id)
			mu.Unlock()
			return nil
		})
	}
	_ = grp.Wait()

	slices.Sort(deleted)
	if len(deleted) > 0 {
		slog.InfoContext(ctx, "tasks: swept expired documents", "user", userID, "count", len(deleted))
	}
	return deleted, nil
}

// SweepAll runs SweepExpired for every user of the store.
func (m *Manager) SweepAll(ctx context.Context) error {
	users, err := m.store.Users(ctx)
	if err != nil {
		return fmt.Errorf("tasks: listing users: %w", err)
	}
	for _, u := range users {
		if _, err := m.SweepExpired(ctx, u); err != nil {
			slog.WarnContext(ctx, "tasks: sweeping user", "user", u, "error", err)
		}
	}
	return nil
}

// ageDays is the number of whole calendar days from date to today.
func ageDays(today, date time.Time) int {
	return int(today.Sub(date).Hours() / 24)
}
