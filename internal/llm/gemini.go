// Copyright (c) ZKAi-DEV
// SPDX-License-Identifier: BUSL-1.1

package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"google.golang.org/genai"

	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/fokusdb"
)

const (
	DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com"
	DefaultGeminiModel   = "gemini-2.0-flash"
)

// NewGemini returns a Service calling the generateContent REST endpoint. The
// request is issued manually since the API key is per user and passed as a
// query parameter.
func NewGemini(client *http.Client, baseURL string, model string) *Gemini {
	if client == nil {
		client = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultGeminiBaseURL
	}
	if model == "" {
		model = DefaultGeminiModel
	}
	return &Gemini{
		client:  client,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		model:   model,
	}
}

type Gemini struct {
	client  *http.Client
	baseURL string
	model   string
}

type generateContentRequest struct {
	Contents []*genai.Content `json:"contents"`
}

type candidate struct {
	Content *genai.Content `json:"content"`
}

type generateContentResponse struct {
	Candidates []candidate `json:"candidates"`
}

func (g *Gemini) Prompt(ctx context.Context, apiKey string, prompt string) (string, error) {
	return g.generate(ctx, apiKey, []*genai.Content{
		{Parts: []*genai.Part{genai.NewPartFromText(prompt)}},
	})
}

func (g *Gemini) Chat(ctx context.Context, apiKey string, messages []fokusdb.ChatMessage) (string, error) {
	content := make([]*genai.Content, len(messages))
	for i, msg := range messages {
		role := genai.Role(genai.RoleUser)
		if msg.Role == fokusdb.ChatRoleAssistant {
			role = genai.RoleModel
		}
		content[i] = genai.NewContentFromText(msg.Content, role)
	}
	return g.generate(ctx, apiKey, content)
}

func (g *Gemini) generate(ctx context.Context, apiKey string, content []*genai.Content) (string, error) {
	if apiKey == "" {
		return "", ErrNoAPIKey
	}

	body, err := json.Marshal(generateContentRequest{Contents: content})
	if err != nil {
		return "", fmt.Errorf("llm: marshalling gemini request: %w", err)
	}

	u := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", g.baseURL, g.model, url.QueryEscape(apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("llm: creating gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("llm: sending gemini request: %w", err)
	}
	defer func() {
		_ = res.Body.Close()
	}()
	if res.StatusCode != http.StatusOK {
		msg, err := io.ReadAll(res.Body)
		if err != nil {
			return "", fmt.Errorf("llm: reading gemini error body: %w", err)
		}
		return "", fmt.Errorf("llm: gemini request failed with status %d: %s", res.StatusCode, msg) //nolint:err113
	}

	var gcr generateContentResponse
	if err := json.NewDecoder(res.Body).Decode(&gcr); err != nil {
		return "", fmt.Errorf("llm: decoding gemini response: %w", err)
	}
	if len(gcr.Candidates) == 0 || gcr.Candidates[0].Content == nil ||
		len(gcr.Candidates[0].Content.Parts) == 0 || gcr.Candidates[0].Content.Parts[0].Text == "" {
		return "", ErrEmptyResponse
	}
	return gcr.Candidates[0].Content.Parts[0].Text, nil
}
