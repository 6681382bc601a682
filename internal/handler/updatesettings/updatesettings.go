// Copyright (c) ZKAi-DEV
// SPDX-License-Identifier: BUSL-1.1

package updatesettings

import (
	"context"
	"strings"

	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/auth"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/llm"
)

type Request struct {
	// APIKey is the generation service key of the user. Empty clears it.
	APIKey string `json:"apiKey"`
}

type Response struct {
	HasAPIKey bool `json:"hasApiKey"`
}

func NewHandler(settings *llm.SettingsRegistry) *Handler {
	return &Handler{
		settings: settings,
	}
}

type Handler struct {
	settings *llm.SettingsRegistry
}

func (h *Handler) UpdateSettings(ctx context.Context, req *Request) (*Response, error) {
	s := h.settings.For(auth.UserID(ctx))
	s.Update(strings.TrimSpace(req.APIKey))
	return &Response{HasAPIKey: s.APIKey() != ""}, nil
}
