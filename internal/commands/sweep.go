// Copyright (c) ZKAi-DEV
// SPDX-License-Identifier: BUSL-1.1

package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/tasks"
)

func addSweep(topLevel *cobra.Command, o *Options) {
	var userID string
	var all bool
	var timeZone string

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Delete task documents older than seven days.",
		Example: `
fokusctl sweep --user 3fUx9c
fokusctl sweep --all
`,
		Args: cobra.NoArgs,
		PreRunE: func(*cobra.Command, []string) error {
			if all == (userID != "") {
				return errors.New("exactly one of --user or --all is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, closeStore, err := o.Store(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			mgr := tasks.NewManager(store, nil)
			if timeZone != "" {
				loc, err := time.LoadLocation(timeZone)
				if err != nil {
					return fmt.Errorf("commands: loading time zone: %w", err)
				}
				mgr.SetLocation(loc)
			}
			if all {
				return mgr.SweepAll(ctx)
			}

			deleted, err := mgr.SweepExpired(ctx, userID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			faint := color.New(color.Faint)
			for _, d := range deleted {
				_, _ = faint.Fprintf(out, "deleted %s\n", d)
			}
			_, _ = fmt.Fprintf(out, "%d document(s) deleted\n", len(deleted))
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "Sweep the documents of one user.")
	cmd.Flags().BoolVar(&all, "all", false, "Sweep the documents of every user.")
	cmd.Flags().StringVar(&timeZone, "time-zone", "",
		"IANA zone whose calendar decides today, empty for the local zone.")

	topLevel.AddCommand(cmd)
}
