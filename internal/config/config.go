// Copyright (c) ZKAi-DEV
// SPDX-License-Identifier: BUSL-1.1

package config

import (
	"github.com/curioswitch/go-curiostack/config"
)

// Generation configures the text generation service.
type Generation struct {
	// Provider is gemini or openai.
	Provider string `koanf:"provider"`

	// Model overrides the default model of the provider.
	Model string `koanf:"model"`

	// BaseURL overrides the API endpoint of the provider, e.g. for a proxy.
	BaseURL string `koanf:"baseurl"`

	// APIKey is used for users that have not set their own key. Leave empty to
	// require a key per user.
	APIKey string `koanf:"apikey"`
}

// Identity configures email and password sign-in.
type Identity struct {
	// APIKey is the web API key of the Firebase project.
	APIKey string `koanf:"apikey"`
}

// Retention configures the background deletion of old task documents.
type Retention struct {
	// Schedule is a cron expression for sweeping all users. Empty disables the
	// scheduled sweep, sessions still sweep their own user on start.
	Schedule string `koanf:"schedule"`

	// TimeZone is the IANA zone whose calendar decides the age of a document.
	// Empty uses the local zone of the server.
	TimeZone string `koanf:"timezone"`
}

// Export configures archived task exports.
type Export struct {
	// Bucket receives archived exports. Defaults to {project}-exports.
	Bucket string `koanf:"bucket"`
}

type Config struct {
	config.Common

	Generation Generation `koanf:"generation"`
	Identity   Identity   `koanf:"identity"`
	Retention  Retention  `koanf:"retention"`
	Export     Export     `koanf:"export"`
}
