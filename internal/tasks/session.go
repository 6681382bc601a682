// Copyright (c) ZKAi-DEV
// SPDX-License-Identifier: BUSL-1.1

package tasks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/fokusdb"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/i18n"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/llm"
)

var (
	// ErrStaleContext is returned when a request carries the token of a
	// session context that has since been replaced.
	ErrStaleContext = errors.New("tasks: session context changed")

	// ErrInvalidDate is returned when a date is not formatted YYYY-MM-DD.
	ErrInvalidDate = errors.New("tasks: invalid date")

	// ErrLoading is returned when the rows of the selected date are still
	// being loaded.
	ErrLoading = errors.New("tasks: date still loading")
)

// Snapshot is the visible state of a session.
type Snapshot struct {
	// Token identifies the session context the rows belong to.
	Token string `json:"token"`

	// Date is the selected date.
	Date string `json:"date"`

	// Rows are the rows of the selected date.
	Rows []fokusdb.TaskRow `json:"rows"`
}

// Session owns the rows of the selected date of one user. Every successful
// mutation is written back to the store. Mutations name the token of the
// context they were made against so late requests can't touch a newer date.
type Session struct {
	mgr      *Manager
	userID   string
	locale   i18n.Locale
	settings *llm.Settings

	mu      sync.Mutex
	date    string
	token   string
	loading bool
	rows    []fokusdb.TaskRow
}

func newSession(mgr *Manager, userID string, locale i18n.Locale, settings *llm.Settings) *Session {
	return &Session{
		mgr:      mgr,
		userID:   userID,
		locale:   locale,
		settings: settings,
	}
}

// Select makes date the active date and loads its rows.
func (s *Session) Select(ctx context.Context, date string) (Snapshot, error) {
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	s.mu.Lock()
	token := uuid.NewString()
	s.token = token
	s.date = date
	s.loading = true
	s.mu.Unlock()

	rows := s.mgr.LoadForDate(ctx, s.userID, date, s.locale)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token != token {
		return Snapshot{}, ErrStaleContext
	}
	s.rows = rows
	s.loading = false
	return s.snapshotLocked(), nil
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Current returns the current state once the selected date has loaded.
func (s *Session) Current() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loading {
		return Snapshot{}, ErrLoading
	}
	return s.snapshotLocked(), nil
}

func (s *Session) AddRow(ctx context.Context, token string) (Snapshot, error) {
	return s.mutate(ctx, token, func(rows []fokusdb.TaskRow) ([]fokusdb.TaskRow, error) {
		return AddRow(rows, s.date, s.locale.Weekday(s.date)), nil
	})
}

func (s *Session) RemoveRow(ctx context.Context, token string, index int) (Snapshot, error) {
	return s.mutate(ctx, token, func(rows []fokusdb.TaskRow) ([]fokusdb.TaskRow, error) {
		return RemoveRow(rows, index)
	})
}

func (s *Session) EditRow(ctx context.Context, token string, index int, field Field, value string) (Snapshot, error) {
	return s.mutate(ctx, token, func(rows []fokusdb.TaskRow) ([]fokusdb.TaskRow, error) {
		return EditRow(rows, index, field, value, s.date, s.locale.Weekday(s.date))
	})
}

// Generate replaces the rows with generated challenges. The session is not
// locked while waiting for the generation service. A result that arrives
// after the context changed is dropped.
func (s *Session) Generate(ctx context.Context, token string) (Snapshot, error) {
	s.mu.Lock()
	if err := s.checkLocked(token); err != nil {
		s.mu.Unlock()
		return Snapshot{}, err
	}
	date := s.date
	s.mu.Unlock()

	rows, err := s.mgr.GenerateChallenges(ctx, date, s.settings.APIKey(), s.locale)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkLocked(token); err != nil {
		slog.InfoContext(ctx, "tasks: dropping challenges for stale context", "user", s.userID, "date", date)
		return Snapshot{}, err
	}
	if err != nil {
		return s.snapshotLocked(), err
	}
	s.rows = rows
	s.saveLocked(ctx)
	return s.snapshotLocked(), nil
}

func (s *Session) mutate(ctx context.Context, token string, fn func([]fokusdb.TaskRow) ([]fokusdb.TaskRow, error)) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkLocked(token); err != nil {
		return Snapshot{}, err
	}
	rows, err := fn(s.rows)
	if err != nil {
		return s.snapshotLocked(), err
	}
	s.rows = rows
	s.saveLocked(ctx)
	return s.snapshotLocked(), nil
}

func (s *Session) checkLocked(token string) error {
	if s.token == "" || token != s.token || s.loading {
		return ErrStaleContext
	}
	return nil
}

// saveLocked persists the rows unless a load is in progress. Save failures are
// logged; the in-memory rows stay authoritative until the next load.
func (s *Session) saveLocked(ctx context.Context) {
	if s.loading {
		return
	}
	if err := s.mgr.SaveForDate(ctx, s.userID, s.date, s.rows); err != nil {
		slog.WarnContext(ctx, "tasks: saving rows", "user", s.userID, "date", s.date, "error", err)
	}
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		Token: s.token,
		Date:  s.date,
		Rows:  slices.Clone(s.rows),
	}
}
