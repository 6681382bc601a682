// Copyright (c) ZKAi-DEV
// SPDX-License-Identifier: BUSL-1.1

package sendmessage

import (
	"context"
	"fmt"

	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/auth"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/conversation"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/fokusdb"
)

type Request struct {
	Text string `json:"text"`
}

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

// SendMessage runs one chat turn and returns the whole transcript. Blank text
// or a missing API key leaves the transcript unchanged.
func (h *Handler) SendMessage(ctx context.Context, req *Request) (*Response, error) {
	messages, err := h.sessions.Get(auth.UserID(ctx)).Send(ctx, req.Text)
	if err != nil {
		return nil, fmt.Errorf("sendmessage: %w", err)
	}
	return &Response{
		Messages: messages,
	}, nil
}
