// Copyright (c) ZKAi-DEV
// SPDX-License-Identifier: BUSL-1.1

package signin

import (
	"context"
	"errors"
	"strings"

	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/api"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/identity"
)

type Authenticator interface {
	SignIn(ctx context.Context, email, password string) (*identity.User, error)
}

type Request struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewHandler(auth Authenticator) *Handler {
	return &Handler{
		auth: auth,
	}
}

type Handler struct {
	auth Authenticator
}

func (h *Handler) SignIn(ctx context.Context, req *Request) (*identity.User, error) {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, api.BadRequest(errors.New("email and password are required"))
	}
	return h.auth.SignIn(ctx, strings.TrimSpace(req.Email), req.Password)
}
