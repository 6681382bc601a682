// Copyright (c) ZKAi-DEV
// SPDX-License-Identifier: BUSL-1.1

package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/conversation"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/fokusdb"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/llm"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/voice"
)

func addChat(topLevel *cobra.Command, o *Options) {
	var userID string
	var loop bool

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Chat with the assistant as a user, one line per turn.",
		Long: `Chat with the assistant as a user. The transcript is stored like
one from the app. Without --loop a single line is sent. With --loop every line
is sent until an empty line or end of input.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if userID == "" {
				return errors.New("--user is required")
			}
			ctx := cmd.Context()
			store, closeStore, err := o.Store(ctx)
			if err != nil {
				return err
			}
			defer closeStore()
			gen, err := o.Generator()
			if err != nil {
				return err
			}

			sessions := conversation.NewSessions(conversation.NewManager(store, gen), llm.NewSettingsRegistry(o.APIKey))
			return runChat(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), sessions.Get(userID), loop)
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "User to chat as.")
	cmd.Flags().BoolVar(&loop, "loop", false, "Keep listening after each reply.")

	topLevel.AddCommand(cmd)
}

func runChat(ctx context.Context, in io.Reader, out io.Writer, s *conversation.Session, loop bool) error {
	history, err := s.History(ctx)
	if err != nil {
		return err
	}
	spk := &terminalSpeaker{out: out}
	for _, m := range history {
		if err := spk.print(m); err != nil {
			return err
		}
	}

	rec := newLineRecognizer(in)
	defer rec.Close()

	seen := len(history)
	l := voice.New(rec, spk, func(ctx context.Context, text string) (string, error) {
		messages, err := s.Send(ctx, text)
		if err != nil {
			return "", err
		}
		if len(messages) == seen {
			_, _ = color.New(color.Faint).Fprintln(out, "(no reply, is an API key set?)")
			return "", nil
		}
		seen = len(messages)
		return messages[len(messages)-1].Content, nil
	})
	if loop {
		return l.Start(ctx)
	}
	return l.ListenOnce(ctx)
}

// lineRecognizer treats each input line as a final transcript. Blank lines
// and end of input end listening without a result.
type lineRecognizer struct {
	lines chan string
	errs  chan error
	once  sync.Once
	in    *bufio.Scanner

	done      chan struct{}
	closeOnce sync.Once
	// exited is closed when the scanning goroutine returns.
	exited chan struct{}
}

func newLineRecognizer(in io.Reader) *lineRecognizer {
	return &lineRecognizer{
		lines:  make(chan string),
		errs:   make(chan error, 1),
		in:     bufio.NewScanner(in),
		done:   make(chan struct{}),
		exited: make(chan struct{}),
	}
}

// Close stops handing out lines. A scan blocked on reading input returns once
// the read does.
func (r *lineRecognizer) Close() {
	r.closeOnce.Do(func() {
		close(r.done)
	})
}

func (r *lineRecognizer) Listen(ctx context.Context) (string, error) {
	r.once.Do(func() {
		go r.scan()
	})
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-r.lines:
		if !ok {
			select {
			case err := <-r.errs:
				return "", err
			default:
				return "", nil
			}
		}
		return strings.TrimSpace(line), nil
	}
}

func (r *lineRecognizer) scan() {
	defer close(r.exited)
	defer close(r.lines)
	for r.in.Scan() {
		select {
		case r.lines <- r.in.Text():
		case <-r.done:
			return
		}
	}
	if err := r.in.Err(); err != nil {
		r.errs <- err
	}
}

type terminalSpeaker struct {
	out io.Writer
}

func (s *terminalSpeaker) Speak(_ context.Context, text string) error {
	return s.print(fokusdb.ChatMessage{Role: fokusdb.ChatRoleAssistant, Content: text})
}

var (
	userColor      = color.New(color.FgHiCyan, color.Bold)
	assistantColor = color.New(color.FgHiYellow, color.Bold)
)

func (s *terminalSpeaker) print(m fokusdb.ChatMessage) error {
	label := userColor.Sprint("kamu")
	if m.Role == fokusdb.ChatRoleAssistant {
		label = assistantColor.Sprint("AI")
	}
	_, err := fmt.Fprintf(s.out, "%s: %s\n", label, m.Content)
	return err
}
