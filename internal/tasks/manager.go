// Copyright (c) ZKAi-DEV
// SPDX-License-Identifier: BUSL-1.1

// Package tasks keeps the daily challenge rows of a user in sync with the
// per-date documents of the store.
package tasks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/docstore"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/fokusdb"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/i18n"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/llm"
)

var (
	// ErrWrongDate is returned when saving rows that belong to another date.
	ErrWrongDate = errors.New("tasks: rows do not belong to the date")

	// ErrNoChallenges is returned when generated text has no usable lines.
	ErrNoChallenges = errors.New("tasks: no challenges in generated text")
)

func NewManager(store docstore.Store, gen llm.Service) *Manager {
	return &Manager{
		store: store,
		gen:   gen,
		now:   time.Now,
		loc:   time.Local,
	}
}

// Manager implements the stateless operations on per-date task documents.
type Manager struct {
	store docstore.Store
	gen   llm.Service
	now   func() time.Time
	// loc decides which calendar day is today.
	loc *time.Location
}

// SetLocation sets the zone whose calendar decides the age of task documents.
// The default is the local zone of the process.
func (m *Manager) SetLocation(loc *time.Location) {
	m.loc = loc
}

func taskRef(userID, date string) docstore.Ref {
	return docstore.Ref{UserID: userID, Collection: fokusdb.CollectionTasks, DocID: date}
}

// LoadForDate returns the non-empty rows stored for date, or a single blank
// row when there are none. Store errors are logged and also yield the blank
// row.
func (m *Manager) LoadForDate(ctx context.Context, userID, date string, locale i18n.Locale) []fokusdb.TaskRow {
	blank := []fokusdb.TaskRow{blankRow(date, locale.Weekday(date))}

	var doc fokusdb.TaskDocument
	found, err := m.store.Get(ctx, taskRef(userID, date), &doc)
	if err != nil {
		slog.WarnContext(ctx, "tasks: loading rows, using blank row", "user", userID, "date", date, "error", err)
		return blank
	}
	if !found {
		return blank
	}
	rows := nonEmpty(doc.Rows)
	if len(rows) == 0 {
		return blank
	}
	return rows
}

// SaveForDate overwrites the document of date with rows. Rows for another date
// are refused so a stale list never lands in the wrong document.
func (m *Manager) SaveForDate(ctx context.Context, userID, date string, rows []fokusdb.TaskRow) error {
	if len(rows) > 0 && rows[0].Date != date {
		return fmt.Errorf("%w: have %s, want %s", ErrWrongDate, rows[0].Date, date)
	}
	if rows == nil {
		rows = []fokusdb.TaskRow{}
	}
	if err := m.store.Set(ctx, taskRef(userID, date), fokusdb.TaskDocument{Rows: rows}); err != nil {
		return fmt.Errorf("tasks: saving rows: %w", err)
	}
	return nil
}

// GenerateChallenges asks the generation service for the challenges of date
// and returns them as rows. Callers keep their rows on error.
func (m *Manager) GenerateChallenges(ctx context.Context, date, apiKey string, locale i18n.Locale) ([]fokusdb.TaskRow, error) {
	if apiKey == "" {
		return nil, llm.ErrNoAPIKey
	}
	text, err := m.gen.Prompt(ctx, apiKey, llm.ChallengePrompt(locale, date))
	if err != nil {
		return nil, fmt.Errorf("tasks: generating challenges: %w", err)
	}
	challenges := ParseChallenges(text)
	if len(challenges) == 0 {
		return nil, ErrNoChallenges
	}
	day := locale.Weekday(date)
	rows := make([]fokusdb.TaskRow, len(challenges))
	for i, c := range challenges {
		rows[i] = fokusdb.TaskRow{Task: c, Day: day, Date: date}
	}
	return rows, nil
}
