// Copyright (c) ZKAi-DEV
// SPDX-License-Identifier: BUSL-1.1

package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/i18n"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/tasks"
)

func addExport(topLevel *cobra.Command, o *Options) {
	var userID, date, lang string
	var write bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the tasks of a user and date as tab separated text.",
		Example: `
fokusctl export --user 3fUx9c --date 2024-01-01
fokusctl export --user 3fUx9c --write
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if userID == "" {
				return fmt.Errorf("--user is required")
			}
			if date == "" {
				date = time.Now().Format(time.DateOnly)
			}
			if _, err := time.Parse(time.DateOnly, date); err != nil {
				return fmt.Errorf("%w: %q", tasks.ErrInvalidDate, date)
			}

			ctx := cmd.Context()
			store, closeStore, err := o.Store(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			rows := tasks.NewManager(store, nil).LoadForDate(ctx, userID, date, i18n.Match(lang))
			text := tasks.Export(rows)
			if !write {
				_, err := fmt.Fprint(cmd.OutOrStdout(), text)
				return err
			}
			name := tasks.ExportFilename(date)
			if err := os.WriteFile(name, []byte(text), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", name, err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", name)
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "User owning the tasks.")
	cmd.Flags().StringVar(&date, "date", "", "Date to export, YYYY-MM-DD. Defaults to today.")
	cmd.Flags().StringVar(&lang, "lang", "id", "Language of weekday names for dates without rows.")
	cmd.Flags().BoolVar(&write, "write", false, "Write the export to its download file name instead of stdout.")

	topLevel.AddCommand(cmd)
}
