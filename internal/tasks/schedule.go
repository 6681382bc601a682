// Copyright (c) ZKAi-DEV
// SPDX-License-Identifier: BUSL-1.1

package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/robfig/cron/v3"
)

var scheduleParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// ScheduleSweeps runs SweepAll on the cron expression expr, which may be a
// five field expression or a descriptor like @daily, until ctx is done. An
// empty expression schedules nothing.
func (m *Manager) ScheduleSweeps(ctx context.Context, expr string) error {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil
	}
	sched, err := scheduleParser.Parse(expr)
	if err != nil {
		return fmt.Errorf("tasks: parsing sweep schedule %q: %w", expr, err)
	}

	c := cron.New(cron.WithParser(scheduleParser))
	c.Schedule(sched, cron.FuncJob(func() {
		if err := m.SweepAll(ctx); err != nil {
			slog.ErrorContext(ctx, "tasks: scheduled retention sweep", "error", err)
		}
	}))
	c.Start()
	go func() {
		<-ctx.Done()
		<-c.Stop().Done()
	}()
	return nil
}
