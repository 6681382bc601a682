// Copyright (c) ZKAi-DEV
// SPDX-License-Identifier: BUSL-1.1

package fokusdb

const (
	// CollectionUsers is the root collection, one document per user ID.
	CollectionUsers = "users"

	// CollectionTasks holds one TaskDocument per date under a user.
	CollectionTasks = "tasks"

	// CollectionChatHistory holds the ChatHistory of a user.
	CollectionChatHistory = "chatHistory"

	// DocChatHistory is the ID of the only document in CollectionChatHistory.
	DocChatHistory = "history"
)
