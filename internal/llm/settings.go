// Copyright (c) ZKAi-DEV
// SPDX-License-Identifier: BUSL-1.1

package llm

import (
	"sync"
)

// Settings is the generation configuration of one user. It is handed to the
// session managers when they are created and changed only through Update.
type Settings struct {
	mu     sync.RWMutex
	apiKey string
}

// NewSettings returns Settings holding apiKey.
func NewSettings(apiKey string) *Settings {
	return &Settings{apiKey: apiKey}
}

// APIKey returns the current API key, or "" when none is set.
func (s *Settings) APIKey() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.apiKey
}

// Update replaces the API key.
func (s *Settings) Update(apiKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apiKey = apiKey
}

// NewSettingsRegistry returns a registry whose new entries start with
// defaultKey, which may be empty.
func NewSettingsRegistry(defaultKey string) *SettingsRegistry {
	return &SettingsRegistry{
		defaultKey: defaultKey,
		byUser:     map[string]*Settings{},
	}
}

// SettingsRegistry holds the Settings of signed-in users.
type SettingsRegistry struct {
	defaultKey string

	mu     sync.Mutex
	byUser map[string]*Settings
}

// For returns the Settings of userID, creating them on first use.
func (r *SettingsRegistry) For(userID string) *Settings {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.byUser[userID]
	if !ok {
		s = NewSettings(r.defaultKey)
		r.byUser[userID] = s
	}
	return s
}

// Drop forgets the Settings of userID.
func (r *SettingsRegistry) Drop(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byUser, userID)
}
