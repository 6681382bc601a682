// Copyright (c) ZKAi-DEV
// SPDX-License-Identifier: BUSL-1.1

package fokusdb

type ChatRole string

const (
	// ChatRoleUser represents a user message.
	ChatRoleUser ChatRole = "user"
	// ChatRoleAssistant represents an assistant message.
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage represents a message in a chat conversation.
type ChatMessage struct {
	// Role is the role of the message sender.
	Role ChatRole `firestore:"role" json:"role"`

	// Content is the text content of the message.
	Content string `firestore:"content" json:"content"`
}

// ChatHistory is the whole transcript of a user, stored as a single document.
type ChatHistory struct {
	// Messages is the list of messages in the chat, oldest first.
	Messages []ChatMessage `firestore:"messages" json:"messages"`
}
