// Copyright (c) ZKAi-DEV
// SPDX-License-Identifier: BUSL-1.1

// Package conversation keeps the AI chat transcript of a user.
package conversation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/docstore"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/fokusdb"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/llm"
)

const (
	// FallbackFailed replaces the reply when the generation service could not
	// be reached.
	FallbackFailed = "Gagal menghubungi AI."

	// FallbackEmpty replaces the reply when the service answered without text.
	FallbackEmpty = "AI tidak bisa membalas."
)

func NewManager(store docstore.Store, gen llm.Service) *Manager {
	return &Manager{
		store: store,
		gen:   gen,
	}
}

type Manager struct {
	store docstore.Store
	gen   llm.Service
}

func historyRef(userID string) docstore.Ref {
	return docstore.Ref{UserID: userID, Collection: fokusdb.CollectionChatHistory, DocID: fokusdb.DocChatHistory}
}

// LoadHistory returns the stored transcript of userID, empty if there is none.
func (m *Manager) LoadHistory(ctx context.Context, userID string) ([]fokusdb.ChatMessage, error) {
	var history fokusdb.ChatHistory
	found, err := m.store.Get(ctx, historyRef(userID), &history)
	if err != nil {
		return nil, fmt.Errorf("conversation: loading history: %w", err)
	}
	if !found || history.Messages == nil {
		return []fokusdb.ChatMessage{}, nil
	}
	return history.Messages, nil
}

// SaveHistory overwrites the stored transcript. Nothing is written without a
// user or for an empty transcript.
func (m *Manager) SaveHistory(ctx context.Context, userID string, messages []fokusdb.ChatMessage) error {
	if userID == "" || len(messages) == 0 {
		return nil
	}
	if err := m.store.Set(ctx, historyRef(userID), fokusdb.ChatHistory{Messages: messages}); err != nil {
		return fmt.Errorf("conversation: saving history: %w", err)
	}
	return nil
}

// SendMessage appends userText and the assistant reply to a copy of messages.
// The whole transcript is sent. Blank text, a missing key or a cancelled ctx
// returns messages unchanged. Generation failures become a fixed fallback
// reply.
func (m *Manager) SendMessage(ctx context.Context, messages []fokusdb.ChatMessage, userText, apiKey string) []fokusdb.ChatMessage {
	if strings.TrimSpace(userText) == "" || strings.TrimSpace(apiKey) == "" {
		return messages
	}

	out := make([]fokusdb.ChatMessage, 0, len(messages)+2)
	out = append(out, messages...)
	out = append(out, fokusdb.ChatMessage{Role: fokusdb.ChatRoleUser, Content: userText})

	reply, err := m.gen.Chat(ctx, apiKey, out)
	switch {
	case errors.Is(err, context.Canceled):
		// The caller went away, no turn took place.
		return messages
	case errors.Is(err, llm.ErrEmptyResponse):
		reply = FallbackEmpty
	case err != nil:
		slog.WarnContext(ctx, "conversation: calling generation service", "error", err)
		reply = FallbackFailed
	}
	return append(out, fokusdb.ChatMessage{Role: fokusdb.ChatRoleAssistant, Content: reply})
}
