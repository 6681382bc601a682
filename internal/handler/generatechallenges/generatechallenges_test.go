package generatechallenges

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/api"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/auth"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/docstore"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/fokusdb"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/llm"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/tasks"
)

type fakeGen struct {
	text string
	err  error
}

func (f *fakeGen) Prompt(context.Context, string, string) (string, error) {
	return f.text, f.err
}

func (f *fakeGen) Chat(context.Context, string, []fokusdb.ChatMessage) (string, error) {
	return f.text, f.err
}

func TestGenerateChallenges(t *testing.T) {
	tests := []struct {
		name   string
		gen    *fakeGen
		key    string
		status int
		msg    string
		rows   int
	}{
		{name: "ok", gen: &fakeGen{text: "1. Read\n2. Walk"}, key: "k", rows: 2},
		{name: "no key", gen: &fakeGen{text: "1. Read"}, status: http.StatusBadRequest, msg: MsgNoAPIKey},
		{name: "service down", gen: &fakeGen{err: errors.New("connection refused")}, key: "k", status: http.StatusBadGateway, msg: MsgFailed},
		{name: "nothing parsed", gen: &fakeGen{text: "\n\n"}, key: "k", status: http.StatusBadGateway, msg: MsgFailed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := auth.WithUserID(context.Background(), "u1")
			settings := llm.NewSettingsRegistry(tc.key)
			sessions := tasks.NewSessions(tasks.NewManager(docstore.NewMemory(), tc.gen), settings)
			s := sessions.Get(ctx, "u1")
			sessions.Wait()
			snap, err := s.Select(ctx, "2024-01-01")
			if err != nil {
				t.Fatal(err)
			}

			res, err := NewHandler(sessions).GenerateChallenges(ctx, &Request{Token: snap.Token})
			if tc.status != 0 {
				if status, msg := api.Status(err); status != tc.status || msg != tc.msg {
					t.Errorf("Status() = %d %q, want %d %q (error %v)", status, msg, tc.status, tc.msg, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if len(res.Rows) != tc.rows {
				t.Errorf("rows = %v", res.Rows)
			}
		})
	}
}
