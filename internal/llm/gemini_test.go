package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/fokusdb"
)

type recordedRequest struct {
	Path string
	Key  string
	Body map[string]any
}

func newGeminiServer(t *testing.T, status int, response string) (*httptest.Server, *recordedRequest) {
	t.Helper()
	rec := &recordedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.Path = r.URL.Path
		rec.Key = r.URL.Query().Get("key")
		b, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(b, &rec.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, response)
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

const okResponse = `{"candidates":[{"content":{"role":"model","parts":[{"text":"Halo!"}]}}]}`

func TestGeminiPrompt(t *testing.T) {
	srv, rec := newGeminiServer(t, http.StatusOK, okResponse)
	g := NewGemini(srv.Client(), srv.URL, "")

	got, err := g.Prompt(context.Background(), "secret", "Buatkan challenge")
	if err != nil {
		t.Fatal(err)
	}
	if got != "Halo!" {
		t.Errorf("Prompt = %q, want %q", got, "Halo!")
	}
	if rec.Path != "/v1beta/models/gemini-2.0-flash:generateContent" {
		t.Errorf("path = %q", rec.Path)
	}
	if rec.Key != "secret" {
		t.Errorf("key = %q, want %q", rec.Key, "secret")
	}
	want := map[string]any{
		"contents": []any{
			map[string]any{"parts": []any{map[string]any{"text": "Buatkan challenge"}}},
		},
	}
	if diff := cmp.Diff(want, rec.Body); diff != "" {
		t.Errorf("request body mismatch (-want +got):\n%s", diff)
	}
}

func TestGeminiChatMapsRoles(t *testing.T) {
	srv, rec := newGeminiServer(t, http.StatusOK, okResponse)
	g := NewGemini(srv.Client(), srv.URL, "gemini-test")

	_, err := g.Chat(context.Background(), "secret", []fokusdb.ChatMessage{
		{Role: fokusdb.ChatRoleUser, Content: "Hai"},
		{Role: fokusdb.ChatRoleAssistant, Content: "Halo"},
		{Role: fokusdb.ChatRoleUser, Content: "Semangat?"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if rec.Path != "/v1beta/models/gemini-test:generateContent" {
		t.Errorf("path = %q", rec.Path)
	}
	want := map[string]any{
		"contents": []any{
			map[string]any{"role": "user", "parts": []any{map[string]any{"text": "Hai"}}},
			map[string]any{"role": "model", "parts": []any{map[string]any{"text": "Halo"}}},
			map[string]any{"role": "user", "parts": []any{map[string]any{"text": "Semangat?"}}},
		},
	}
	if diff := cmp.Diff(want, rec.Body); diff != "" {
		t.Errorf("request body mismatch (-want +got):\n%s", diff)
	}
}

func TestGeminiErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		response string
		key      string
		wantErr  error
	}{
		{name: "no key", status: http.StatusOK, response: okResponse, key: "", wantErr: ErrNoAPIKey},
		{name: "no candidates", status: http.StatusOK, response: `{"candidates":[]}`, key: "k", wantErr: ErrEmptyResponse},
		{name: "empty text", status: http.StatusOK, response: `{"candidates":[{"content":{"parts":[{"text":""}]}}]}`, key: "k", wantErr: ErrEmptyResponse},
		{name: "bad status", status: http.StatusBadRequest, response: `{"error":{"message":"API key not valid"}}`, key: "k"},
		{name: "bad json", status: http.StatusOK, response: `{`, key: "k"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv, _ := newGeminiServer(t, tc.status, tc.response)
			g := NewGemini(srv.Client(), srv.URL, "")
			_, err := g.Prompt(context.Background(), tc.key, "p")
			if err == nil {
				t.Fatal("expected error")
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Errorf("error = %v, want %v", err, tc.wantErr)
			}
			if tc.wantErr == nil && errors.Is(err, ErrEmptyResponse) {
				t.Errorf("transport error reported as empty response: %v", err)
			}
		})
	}
}

func TestGeminiTransportFailure(t *testing.T) {
	srv, _ := newGeminiServer(t, http.StatusOK, okResponse)
	srv.Close()
	g := NewGemini(srv.Client(), srv.URL, "")
	if _, err := g.Prompt(context.Background(), "k", "p"); err == nil {
		t.Fatal("expected error from closed server")
	}
}
