// Copyright (c) ZKAi-DEV
// SPDX-License-Identifier: BUSL-1.1

package llm

import (
	"context"
	"fmt"
	"net/http"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/fokusdb"
)

const DefaultOpenAIModel = "gpt-4o-mini"

// NewOpenAI returns a Service backed by OpenAI chat completions.
func NewOpenAI(client *http.Client, baseURL string, model string) *OpenAI {
	if client == nil {
		client = http.DefaultClient
	}
	if model == "" {
		model = DefaultOpenAIModel
	}
	return &OpenAI{
		client:  client,
		baseURL: baseURL,
		model:   model,
	}
}

type OpenAI struct {
	client  *http.Client
	baseURL string
	model   string
}

func (o *OpenAI) Prompt(ctx context.Context, apiKey string, prompt string) (string, error) {
	return o.Chat(ctx, apiKey, []fokusdb.ChatMessage{
		{Role: fokusdb.ChatRoleUser, Content: prompt},
	})
}

func (o *OpenAI) Chat(ctx context.Context, apiKey string, messages []fokusdb.ChatMessage) (string, error) {
	if apiKey == "" {
		return "", ErrNoAPIKey
	}

	// Keys differ per user, so a client is built per call.
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(o.client),
		option.WithMaxRetries(0),
	}
	if o.baseURL != "" {
		opts = append(opts, option.WithBaseURL(o.baseURL))
	}
	oai := openai.NewClient(opts...)

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(o.model),
		Messages: make([]openai.ChatCompletionMessageParamUnion, len(messages)),
	}
	for i, msg := range messages {
		if msg.Role == fokusdb.ChatRoleAssistant {
			params.Messages[i] = openai.AssistantMessage(msg.Content)
		} else {
			params.Messages[i] = openai.UserMessage(msg.Content)
		}
	}

	res, err := oai.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("llm: calling openai chat completions: %w", err)
	}
	if len(res.Choices) == 0 || res.Choices[0].Message.Content == "" {
		return "", ErrEmptyResponse
	}
	return res.Choices[0].Message.Content, nil
}
