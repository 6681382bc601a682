// Copyright (c) ZKAi-DEV
// SPDX-License-Identifier: BUSL-1.1

package tasks

import (
	"context"
	"log/slog"
	"sync"

	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/i18n"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/llm"
)

func NewSessions(mgr *Manager, settings *llm.SettingsRegistry) *Sessions {
	return &Sessions{
		mgr:      mgr,
		settings: settings,
		byUser:   map[string]*Session{},
	}
}

// Sessions keeps one Session per signed-in user. Creating a user's session is
// the session start and kicks off the retention sweep for that user.
type Sessions struct {
	mgr      *Manager
	settings *llm.SettingsRegistry

	mu     sync.Mutex
	byUser map[string]*Session

	sweeps sync.WaitGroup
}

// Get returns the session of userID, starting one if needed. The locale of
// the new session comes from ctx.
func (r *Sessions) Get(ctx context.Context, userID string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.byUser[userID]; ok {
		return s
	}
	s := newSession(r.mgr, userID, i18n.LocaleFromContext(ctx), r.settings.For(userID))
	r.byUser[userID] = s

	sweepCtx := context.WithoutCancel(ctx)
	r.sweeps.Add(1)
	go func() {
		defer r.sweeps.Done()
		if _, err := r.mgr.SweepExpired(sweepCtx, userID); err != nil {
			slog.WarnContext(sweepCtx, "tasks: retention sweep on session start", "user", userID, "error", err)
		}
	}()
	return s
}

// Drop ends the session of userID.
func (r *Sessions) Drop(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byUser, userID)
}

// Wait blocks until sweeps started by Get have finished.
func (r *Sessions) Wait() {
	r.sweeps.Wait()
}
