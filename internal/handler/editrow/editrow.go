// Copyright (c) ZKAi-DEV
// SPDX-License-Identifier: BUSL-1.1

package editrow

import (
	"context"

	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/auth"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/tasks"
)

type Request struct {
	Token string      `json:"token"`
	Index int         `json:"index"`
	Field tasks.Field `json:"field"`
	Value string      `json:"value"`
}

func NewHandler(sessions *tasks.Sessions) *Handler {
	return &Handler{
		sessions: sessions,
	}
}

type Handler struct {
	sessions *tasks.Sessions
}

func (h *Handler) EditRow(ctx context.Context, req *Request) (*tasks.Snapshot, error) {
	snap, err := h.sessions.Get(ctx, auth.UserID(ctx)).EditRow(ctx, req.Token, req.Index, req.Field, req.Value)
	if err != nil {
		return nil, err
	}
	return &snap, nil
}
