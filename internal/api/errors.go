// Copyright (c) ZKAi-DEV
// SPDX-License-Identifier: BUSL-1.1

package api

import (
	"errors"
	"net/http"

	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/conversation"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/identity"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/llm"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/tasks"
)

type statusError struct {
	status int
	// msg, when set, replaces the error text shown to the client.
	msg string
	err error
}

func (e *statusError) Error() string {
	return e.err.Error()
}

func (e *statusError) Unwrap() error {
	return e.err
}

// BadRequest marks err as a problem with the request.
func BadRequest(err error) error {
	return &statusError{status: http.StatusBadRequest, err: err}
}

// BadGateway marks err as a failure of a remote service.
func BadGateway(err error) error {
	return &statusError{status: http.StatusBadGateway, err: err}
}

// WithMessage marks err with status and the message shown to the client.
func WithMessage(status int, msg string, err error) error {
	return &statusError{status: status, msg: msg, err: err}
}

// Status maps err to an HTTP status and the message shown to the client.
func Status(err error) (int, string) {
	var idErr *identity.Error
	if errors.As(err, &idErr) {
		return http.StatusUnauthorized, idErr.Message
	}

	var sErr *statusError
	if errors.As(err, &sErr) {
		if sErr.msg != "" {
			return sErr.status, sErr.msg
		}
		if sErr.status >= http.StatusInternalServerError {
			return sErr.status, http.StatusText(sErr.status)
		}
		return sErr.status, sErr.Error()
	}

	switch {
	case errors.Is(err, tasks.ErrStaleContext),
		errors.Is(err, tasks.ErrLoading),
		errors.Is(err, conversation.ErrStaleContext):
		return http.StatusConflict, err.Error()
	case errors.Is(err, tasks.ErrInvalidDate),
		errors.Is(err, tasks.ErrInvalidRow),
		errors.Is(err, tasks.ErrWrongDate),
		errors.Is(err, llm.ErrNoAPIKey):
		return http.StatusBadRequest, err.Error()
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}
