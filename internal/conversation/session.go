// Copyright (c) ZKAi-DEV
// SPDX-License-Identifier: BUSL-1.1

package conversation

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"

	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/fokusdb"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/llm"
)

// ErrStaleContext is returned when the session was reset while a reply was
// being generated.
var ErrStaleContext = errors.New("conversation: session reset")

// Session is the transcript of one signed-in user.
type Session struct {
	mgr      *Manager
	userID   string
	settings *llm.Settings

	// sendMu serializes turns so each one builds on the previous reply.
	sendMu sync.Mutex

	mu       sync.Mutex
	loaded   bool
	messages []fokusdb.ChatMessage
	gen      uint64
}

func newSession(mgr *Manager, userID string, settings *llm.Settings) *Session {
	return &Session{
		mgr:      mgr,
		userID:   userID,
		settings: settings,
	}
}

// History returns the transcript, loading it from the store on first use.
func (s *Session) History(ctx context.Context) ([]fokusdb.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loadLocked(ctx); err != nil {
		return nil, err
	}
	return slices.Clone(s.messages), nil
}

// Send runs one turn and persists the resulting transcript.
func (s *Session) Send(ctx context.Context, text string) ([]fokusdb.ChatMessage, error) {
	s.sendMu.Lock()
	defer s.sendMu.Unlock()

	s.mu.Lock()
	if err := s.loadLocked(ctx); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	prior := slices.Clone(s.messages)
	gen := s.gen
	s.mu.Unlock()

	messages := s.mgr.SendMessage(ctx, prior, text, s.settings.APIKey())
	if len(messages) == len(prior) {
		return prior, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		return nil, ErrStaleContext
	}
	s.messages = messages
	if err := s.mgr.SaveHistory(ctx, s.userID, messages); err != nil {
		slog.WarnContext(ctx, "conversation: saving history", "user", s.userID, "error", err)
	}
	return slices.Clone(messages), nil
}

// Reset forgets the in-memory transcript. Replies still in flight are dropped.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.loaded = false
	s.messages = nil
}

func (s *Session) loadLocked(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	messages, err := s.mgr.LoadHistory(ctx, s.userID)
	if err != nil {
		return err
	}
	s.messages = messages
	s.loaded = true
	return nil
}

func NewSessions(mgr *Manager, settings *llm.SettingsRegistry) *Sessions {
	return &Sessions{
		mgr:      mgr,
		settings: settings,
		byUser:   map[string]*Session{},
	}
}

// Sessions keeps one Session per signed-in user.
type Sessions struct {
	mgr      *Manager
	settings *llm.SettingsRegistry

	mu     sync.Mutex
	byUser map[string]*Session
}

func (r *Sessions) Get(userID string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.byUser[userID]
	if !ok {
		s = newSession(r.mgr, userID, r.settings.For(userID))
		r.byUser[userID] = s
	}
	return s
}

// Drop resets and forgets the session of userID.
func (r *Sessions) Drop(userID string) {
	r.mu.Lock()
	s, ok := r.byUser[userID]
	delete(r.byUser, userID)
	r.mu.Unlock()
	if ok {
		s.Reset()
	}
}
