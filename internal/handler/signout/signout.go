// Copyright (c) ZKAi-DEV
// SPDX-License-Identifier: BUSL-1.1

package signout

import (
	"context"
	"fmt"

	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/auth"
)

type SignerOut interface {
	SignOut(ctx context.Context, userID string) error
}

type Request struct{}

type Response struct{}

func NewHandler(identity SignerOut) *Handler {
	return &Handler{
		identity: identity,
	}
}

type Handler struct {
	identity SignerOut
}

// SignOut revokes the tokens of the caller. Sessions are released by the
// sign-out event.
func (h *Handler) SignOut(ctx context.Context, _ *Request) (*Response, error) {
	if err := h.identity.SignOut(ctx, auth.UserID(ctx)); err != nil {
		return nil, fmt.Errorf("signout: %w", err)
	}
	return &Response{}, nil
}
