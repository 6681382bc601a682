// Copyright (c) ZKAi-DEV
// SPDX-License-Identifier: BUSL-1.1

package removerow

import (
	"context"

	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/auth"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/tasks"
)

type Request struct {
	Token string `json:"token"`
	Index int    `json:"index"`
}

func NewHandler(sessions *tasks.Sessions) *Handler {
	return &Handler{
		sessions: sessions,
	}
}

type Handler struct {
	sessions *tasks.Sessions
}

func (h *Handler) RemoveRow(ctx context.Context, req *Request) (*tasks.Snapshot, error) {
	snap, err := h.sessions.Get(ctx, auth.UserID(ctx)).RemoveRow(ctx, req.Token, req.Index)
	if err != nil {
		return nil, err
	}
	return &snap, nil
}
