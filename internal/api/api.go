// Copyright (c) ZKAi-DEV
// SPDX-License-Identifier: BUSL-1.1

// Package api serves operation handlers as JSON endpoints.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

// QueryDecoder is implemented by requests of GET endpoints, which are read
// from the query string instead of the body.
type QueryDecoder interface {
	DecodeQuery(q url.Values) error
}

// File is a response served as a download instead of JSON.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// FileResponse is implemented by responses that may be a download. A nil
// File means the response is encoded as JSON.
type FileResponse interface {
	File() *File
}

// Handle registers h for method and path on r.
func Handle[Req, Res any](r chi.Router, method, path string, h func(context.Context, *Req) (*Res, error)) {
	r.MethodFunc(method, path, func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()

		in := new(Req)
		if err := decode(req, in); err != nil {
			writeError(ctx, w, BadRequest(err))
			return
		}

		out, err := h(ctx, in)
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		if fr, ok := any(out).(FileResponse); ok {
			if f := fr.File(); f != nil {
				writeFile(w, f)
				return
			}
		}
		writeJSON(w, http.StatusOK, out)
	})
}

func decode(req *http.Request, in any) error {
	if qd, ok := in.(QueryDecoder); ok {
		return qd.DecodeQuery(req.URL.Query())
	}
	if req.Method == http.MethodGet {
		return nil
	}
	body, err := io.ReadAll(io.LimitReader(req.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("reading body: %w", err)
	}
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, in); err != nil {
		return errors.New("invalid JSON")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeFile(w http.ResponseWriter, f *File) {
	w.Header().Set("Content-Type", f.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": f.Name}))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(f.Data)
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status, msg := Status(err)
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(ctx, "api: handler failed", "status", status, "error", err)
	}
	writeJSON(w, status, map[string]string{"error": msg})
}
