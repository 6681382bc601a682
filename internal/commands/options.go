// Copyright (c) ZKAi-DEV
// SPDX-License-Identifier: BUSL-1.1

package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	firebase "firebase.google.com/go/v4"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/docstore"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/llm"
)

// Options are the settings shared by all commands. Flags win over
// FOKUS_* environment variables, which win over .fokusctl.yaml.
type Options struct {
	Project  string
	Provider string
	Model    string
	BaseURL  string
	APIKey   string

	// store and gen replace the remote services in tests.
	store docstore.Store
	gen   llm.Service
}

func AddOptionFlags(cmd *cobra.Command, o *Options) {
	cmd.PersistentFlags().StringVar(&o.Project, "project", "",
		"Google Cloud project holding the Firestore database.")
	cmd.PersistentFlags().StringVar(&o.Provider, "provider", "gemini",
		"Text generation provider, gemini or openai.")
	cmd.PersistentFlags().StringVar(&o.Model, "model", "",
		"Model of the generation provider, empty for the default.")
	cmd.PersistentFlags().StringVar(&o.BaseURL, "base-url", "",
		"Endpoint of the generation provider, empty for the default.")
	cmd.PersistentFlags().StringVar(&o.APIKey, "api-key", "",
		"API key of the generation provider.")
}

// Load fills unset options from the environment and config file.
func (o *Options) Load(cmd *cobra.Command) error {
	v := viper.New()
	v.SetConfigName(".fokusctl") // .yaml is implicit
	v.SetEnvPrefix("FOKUS")
	v.AutomaticEnv()
	if override := os.Getenv("FOKUS_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("commands: reading config file: %w", err)
		}
	}

	for _, name := range []string{"project", "provider", "model", "base-url", "api-key"} {
		if err := v.BindPFlag(name, cmd.Flags().Lookup(name)); err != nil {
			return fmt.Errorf("commands: binding flag %s: %w", name, err)
		}
	}
	_ = v.BindEnv("base-url", "FOKUS_BASE_URL")
	_ = v.BindEnv("api-key", "FOKUS_API_KEY")

	o.Project = v.GetString("project")
	o.Provider = v.GetString("provider")
	o.Model = v.GetString("model")
	o.BaseURL = v.GetString("base-url")
	o.APIKey = v.GetString("api-key")
	return nil
}

// Store connects to Firestore. The returned function closes the client.
func (o *Options) Store(ctx context.Context) (docstore.Store, func(), error) {
	if o.store != nil {
		return o.store, func() {}, nil
	}
	if o.Project == "" {
		return nil, nil, errors.New("commands: --project is required")
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: o.Project})
	if err != nil {
		return nil, nil, fmt.Errorf("commands: create firebase app: %w", err)
	}
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("commands: create firestore client: %w", err)
	}
	return docstore.NewFirestore(client), func() { _ = client.Close() }, nil
}

func (o *Options) Generator() (llm.Service, error) {
	if o.gen != nil {
		return o.gen, nil
	}
	switch o.Provider {
	case "", "gemini":
		return llm.NewGemini(http.DefaultClient, o.BaseURL, o.Model), nil
	case "openai":
		return llm.NewOpenAI(http.DefaultClient, o.BaseURL, o.Model), nil
	}
	return nil, fmt.Errorf("commands: unknown provider %q", o.Provider)
}
