package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/identity"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/llm"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/tasks"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"stale", fmt.Errorf("editing: %w", tasks.ErrStaleContext), http.StatusConflict, "editing: " + tasks.ErrStaleContext.Error()},
		{"invalid row", tasks.ErrInvalidRow, http.StatusBadRequest, tasks.ErrInvalidRow.Error()},
		{"no key", llm.ErrNoAPIKey, http.StatusBadRequest, llm.ErrNoAPIKey.Error()},
		{"identity", &identity.Error{Message: "EMAIL_EXISTS"}, http.StatusUnauthorized, "EMAIL_EXISTS"},
		{"gateway", BadGateway(errors.New("dial tcp: refused")), http.StatusBadGateway, "Bad Gateway"},
		{"bad request", BadRequest(errors.New("missing date")), http.StatusBadRequest, "missing date"},
		{"loading", tasks.ErrLoading, http.StatusConflict, tasks.ErrLoading.Error()},
		{"message", WithMessage(http.StatusBadGateway, "Gagal.", errors.New("dial tcp: refused")), http.StatusBadGateway, "Gagal."},
		{"internal", errors.New("boom"), http.StatusInternalServerError, "Internal Server Error"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			status, msg := Status(tc.err)
			if status != tc.status || msg != tc.msg {
				t.Errorf("Status() = %d %q, want %d %q", status, msg, tc.status, tc.msg)
			}
		})
	}
}

type echoRequest struct {
	Text string `json:"text"`
}

type echoResponse struct {
	Text string `json:"text"`
}

type pageRequest struct {
	Page int
}

func (r *pageRequest) DecodeQuery(q url.Values) error {
	if p := q.Get("page"); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil {
			return err
		}
		r.Page = n
	}
	return nil
}

type pageResponse struct {
	Page     int `json:"page"`
	download bool
}

func (r *pageResponse) File() *File {
	if !r.download {
		return nil
	}
	return &File{Name: "page.txt", ContentType: "text/plain", Data: []byte(strconv.Itoa(r.Page))}
}

func newTestRouter() chi.Router {
	r := chi.NewRouter()
	Handle(r, http.MethodPost, "/echo", func(_ context.Context, req *echoRequest) (*echoResponse, error) {
		if req.Text == "" {
			return nil, BadRequest(errors.New("empty text"))
		}
		return &echoResponse{Text: req.Text}, nil
	})
	Handle(r, http.MethodGet, "/page", func(_ context.Context, req *pageRequest) (*pageResponse, error) {
		return &pageResponse{Page: req.Page, download: req.Page > 1}, nil
	})
	return r
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		target      string
		body        string
		status      int
		contentType string
		response    string
	}{
		{"json", http.MethodPost, "/echo", `{"text":"hi"}`, http.StatusOK, "application/json", `{"text":"hi"}` + "\n"},
		{"handler error", http.MethodPost, "/echo", `{}`, http.StatusBadRequest, "application/json", `{"error":"empty text"}` + "\n"},
		{"malformed", http.MethodPost, "/echo", `{`, http.StatusBadRequest, "application/json", `{"error":"invalid JSON"}` + "\n"},
		{"query", http.MethodGet, "/page?page=1", "", http.StatusOK, "application/json", `{"page":1}` + "\n"},
		{"bad query", http.MethodGet, "/page?page=x", "", http.StatusBadRequest, "application/json", ""},
		{"file", http.MethodGet, "/page?page=3", "", http.StatusOK, "text/plain", "3"},
	}
	r := newTestRouter()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.target, strings.NewReader(tc.body)))

			if rec.Code != tc.status {
				t.Errorf("status = %d, want %d", rec.Code, tc.status)
			}
			if ct := rec.Header().Get("Content-Type"); ct != tc.contentType {
				t.Errorf("content type = %q, want %q", ct, tc.contentType)
			}
			if tc.response != "" && rec.Body.String() != tc.response {
				t.Errorf("body = %q, want %q", rec.Body.String(), tc.response)
			}
		})
	}
}

func TestHandleAttachmentName(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/page?page=2", nil))
	if got := rec.Header().Get("Content-Disposition"); got != "attachment; filename=page.txt" {
		t.Errorf("Content-Disposition = %q", got)
	}
}
