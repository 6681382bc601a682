// Copyright (c) ZKAi-DEV
// SPDX-License-Identifier: BUSL-1.1

package exporttasks

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strconv"
	"time"

	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/api"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/auth"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/file"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/fokusdb"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/i18n"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/tasks"
)

const contentType = "text/plain; charset=utf-8"

type Request struct {
	// Date exports the stored rows of a date instead of the selected one.
	Date string

	// Archive stores the export in the bucket and returns its URL.
	Archive bool
}

func (r *Request) DecodeQuery(q url.Values) error {
	r.Date = q.Get("date")
	if a := q.Get("archive"); a != "" {
		v, err := strconv.ParseBool(a)
		if err != nil {
			return fmt.Errorf("exporttasks: invalid archive flag %q", a)
		}
		r.Archive = v
	}
	return nil
}

type Response struct {
	URL string `json:"url"`

	file *api.File
}

func (r *Response) File() *api.File {
	return r.file
}

// NewHandler returns a Handler. archive may be nil when exports can't be
// archived.
func NewHandler(sessions *tasks.Sessions, mgr *tasks.Manager, archive file.Writer) *Handler {
	return &Handler{
		sessions: sessions,
		mgr:      mgr,
		archive:  archive,
	}
}

type Handler struct {
	sessions *tasks.Sessions
	mgr      *tasks.Manager
	archive  file.Writer
}

func (h *Handler) ExportTasks(ctx context.Context, req *Request) (*Response, error) {
	userID := auth.UserID(ctx)

	var date string
	var rows []fokusdb.TaskRow
	if req.Date != "" {
		if _, err := time.Parse(time.DateOnly, req.Date); err != nil {
			return nil, fmt.Errorf("%w: %q", tasks.ErrInvalidDate, req.Date)
		}
		date = req.Date
		rows = h.mgr.LoadForDate(ctx, userID, date, i18n.LocaleFromContext(ctx))
	} else {
		snap, err := h.sessions.Get(ctx, userID).Current()
		if err != nil {
			return nil, err
		}
		if snap.Date == "" {
			return nil, api.BadRequest(errors.New("no date selected"))
		}
		date = snap.Date
		rows = snap.Rows
	}

	name := tasks.ExportFilename(date)
	data := []byte(tasks.Export(rows))

	if !req.Archive {
		return &Response{
			file: &api.File{Name: name, ContentType: contentType, Data: data},
		}, nil
	}
	if h.archive == nil {
		return nil, api.BadRequest(errors.New("archiving is not configured"))
	}
	u, err := h.archive.WriteFile(ctx, path.Join("exports", userID, name), contentType, data)
	if err != nil {
		return nil, fmt.Errorf("exporttasks: archiving export: %w", err)
	}
	return &Response{URL: u}, nil
}
