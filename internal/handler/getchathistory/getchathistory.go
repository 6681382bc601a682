// Copyright (c) ZKAi-DEV
// SPDX-License-Identifier: BUSL-1.1

package getchathistory

import (
	"context"
	"fmt"

	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/auth"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/conversation"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/fokusdb"
)

type Request struct{}

type Response struct {
	Messages []fokusdb.ChatMessage `json:"messages"`
}

func NewHandler(sessions *conversation.Sessions) *Handler {
	return &Handler{
		sessions: sessions,
	}
}

type Handler struct {
	sessions *conversation.Sessions
}

func (h *Handler) GetChatHistory(ctx context.Context, _ *Request) (*Response, error) {
	messages, err := h.sessions.Get(auth.UserID(ctx)).History(ctx)
	if err != nil {
		return nil, fmt.Errorf("getchathistory: %w", err)
	}
	return &Response{
		Messages: messages,
	}, nil
}
