// Copyright (c) ZKAi-DEV
// SPDX-License-Identifier: BUSL-1.1

package startsession

import (
	"context"
	"time"

	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/auth"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/tasks"
)

type Request struct {
	// Date to select, YYYY-MM-DD. Defaults to today.
	Date string `json:"date"`
}

func NewHandler(sessions *tasks.Sessions) *Handler {
	return &Handler{
		sessions: sessions,
		now:      time.Now,
	}
}

type Handler struct {
	sessions *tasks.Sessions
	now      func() time.Time
}

func (h *Handler) StartSession(ctx context.Context, req *Request) (*tasks.Snapshot, error) {
	date := req.Date
	if date == "" {
		date = h.now().Format(time.DateOnly)
	}
	snap, err := h.sessions.Get(ctx, auth.UserID(ctx)).Select(ctx, date)
	if err != nil {
		return nil, err
	}
	return &snap, nil
}
