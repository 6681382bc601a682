package editrow

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/api"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/auth"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/docstore"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/fokusdb"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/llm"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/tasks"
)

type noGen struct{}

func (noGen) Prompt(context.Context, string, string) (string, error) {
	return "", errors.New("unused")
}

func (noGen) Chat(context.Context, string, []fokusdb.ChatMessage) (string, error) {
	return "", errors.New("unused")
}

func TestEditRow(t *testing.T) {
	ctx := auth.WithUserID(context.Background(), "u1")
	sessions := tasks.NewSessions(tasks.NewManager(docstore.NewMemory(), noGen{}), llm.NewSettingsRegistry(""))
	s := sessions.Get(ctx, "u1")
	sessions.Wait()

	first, err := s.Select(ctx, "2024-01-01")
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.Select(ctx, "2024-01-02")
	if err != nil {
		t.Fatal(err)
	}

	h := NewHandler(sessions)

	_, err = h.EditRow(ctx, &Request{Token: first.Token, Index: 0, Field: tasks.FieldTask, Value: "Run"})
	if status, _ := api.Status(err); status != http.StatusConflict {
		t.Errorf("stale token status = %d, error %v", status, err)
	}

	_, err = h.EditRow(ctx, &Request{Token: second.Token, Index: 3, Field: tasks.FieldTask, Value: "Run"})
	if status, _ := api.Status(err); status != http.StatusBadRequest {
		t.Errorf("bad index status = %d, error %v", status, err)
	}

	res, err := h.EditRow(ctx, &Request{Token: second.Token, Index: 0, Field: tasks.FieldTask, Value: "Run"})
	if err != nil {
		t.Fatal(err)
	}
	want := []fokusdb.TaskRow{{Task: "Run", Day: "Selasa", Date: "2024-01-02"}}
	if diff := cmp.Diff(want, res.Rows); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
