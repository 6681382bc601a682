// Copyright (c) ZKAi-DEV
// SPDX-License-Identifier: BUSL-1.1

package register

import (
	"context"
	"errors"
	"strings"

	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/api"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/identity"
)

type Registrar interface {
	Register(ctx context.Context, email, password string) (*identity.User, error)
}

type Request struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewHandler(reg Registrar) *Handler {
	return &Handler{
		reg: reg,
	}
}

type Handler struct {
	reg Registrar
}

func (h *Handler) Register(ctx context.Context, req *Request) (*identity.User, error) {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, api.BadRequest(errors.New("email and password are required"))
	}
	return h.reg.Register(ctx, strings.TrimSpace(req.Email), req.Password)
}
