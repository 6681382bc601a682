// Copyright (c) ZKAi-DEV
// SPDX-License-Identifier: BUSL-1.1

package addrow

import (
	"context"

	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/auth"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/tasks"
)

type Request struct {
	Token string `json:"token"`
}

func NewHandler(sessions *tasks.Sessions) *Handler {
	return &Handler{
		sessions: sessions,
	}
}

type Handler struct {
	sessions *tasks.Sessions
}

func (h *Handler) AddRow(ctx context.Context, req *Request) (*tasks.Snapshot, error) {
	snap, err := h.sessions.Get(ctx, auth.UserID(ctx)).AddRow(ctx, req.Token)
	if err != nil {
		return nil, err
	}
	return &snap, nil
}
