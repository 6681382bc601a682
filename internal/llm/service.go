// Copyright (c) ZKAi-DEV
// SPDX-License-Identifier: BUSL-1.1

// Package llm talks to the remote text generation service.
package llm

import (
	"context"
	"errors"

	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/fokusdb"
)

var (
	// ErrNoAPIKey is returned when a request is attempted without an API key.
	ErrNoAPIKey = errors.New("llm: no api key configured")

	// ErrEmptyResponse is returned when the service answered without any text.
	ErrEmptyResponse = errors.New("llm: empty response")
)

// Service generates text. Both calls are stateless, the whole conversation is
// sent on every Chat.
type Service interface {
	// Prompt sends a single prompt without a role.
	Prompt(ctx context.Context, apiKey string, prompt string) (string, error)

	// Chat sends the transcript and returns the next assistant message.
	Chat(ctx context.Context, apiKey string, messages []fokusdb.ChatMessage) (string, error)
}
