// Copyright (c) ZKAi-DEV
// SPDX-License-Identifier: BUSL-1.1

// Package commands implements fokusctl, the admin command line of the
// service.
package commands

import (
	"github.com/spf13/cobra"
)

func New() *cobra.Command {
	return newCommand(&Options{})
}

func newCommand(o *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fokusctl",
		Short: "Administer Fokus Lebih Baik task and chat documents.",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return o.Load(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}
	AddOptionFlags(cmd, o)

	AddCommands(cmd, o)
	return cmd
}

func AddCommands(topLevel *cobra.Command, o *Options) {
	addSweep(topLevel, o)
	addExport(topLevel, o)
	addChat(topLevel, o)
}
