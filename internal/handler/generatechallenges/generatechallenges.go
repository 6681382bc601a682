// Copyright (c) ZKAi-DEV
// SPDX-License-Identifier: BUSL-1.1

package generatechallenges

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/api"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/auth"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/llm"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/tasks"
)

const (
	// MsgNoAPIKey is shown when the user has no generation key yet.
	MsgNoAPIKey = "Masukkan Gemini API Key di chat AI dulu!"
	// MsgFailed is shown when the service fails or yields no challenge.
	MsgFailed = "Gagal generate challenge dari AI."
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

func (h *Handler) GenerateChallenges(ctx context.Context, req *Request) (*tasks.Snapshot, error) {
	snap, err := h.sessions.Get(ctx, auth.UserID(ctx)).Generate(ctx, req.Token)
	switch {
	case err == nil:
		return &snap, nil
	case errors.Is(err, tasks.ErrStaleContext):
		return nil, err
	case errors.Is(err, llm.ErrNoAPIKey):
		return nil, api.WithMessage(http.StatusBadRequest, MsgNoAPIKey, err)
	default:
		return nil, api.WithMessage(http.StatusBadGateway, MsgFailed, fmt.Errorf("generatechallenges: %w", err))
	}
}
