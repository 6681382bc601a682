// Copyright (c) ZKAi-DEV
// SPDX-License-Identifier: BUSL-1.1

// Package identity signs users in and out with email and password.
package identity

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

// Error is a failure reported by the identity provider. Message is the
// provider's text, shown to the user unchanged.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Event is published on every sign-in state transition. SignedIn is false
// after a sign-out.
type Event struct {
	UserID   string
	SignedIn bool
}

// User is a signed-in user with the ID token the client sends back on API
// calls.
type User struct {
	UserID       string `json:"userId"`
	Email        string `json:"email"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
}

// Revoker invalidates the refresh tokens of a user. Satisfied by the Firebase
// Admin SDK auth client.
type Revoker interface {
	RevokeRefreshTokens(ctx context.Context, uid string) error
}

// NewProvider returns a Provider calling the Identity Toolkit API with the web
// API key. Extra options are passed to the API client.
func NewProvider(ctx context.Context, apiKey string, revoker Revoker, opts ...option.ClientOption) (*Provider, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	svc, err := identitytoolkit.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("identity: creating identity toolkit client: %w", err)
	}
	return &Provider{
		svc:     svc,
		revoker: revoker,
		subs:    map[int]func(Event){},
	}, nil
}

type Provider struct {
	svc     *identitytoolkit.Service
	revoker Revoker

	mu     sync.Mutex
	nextID int
	subs   map[int]func(Event)
}

func (p *Provider) SignIn(ctx context.Context, email, password string) (*User, error) {
	res, err := p.svc.Relyingparty.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return nil, providerError("signing in", err)
	}
	u := &User{
		UserID:       res.LocalId,
		Email:        res.Email,
		IDToken:      res.IdToken,
		RefreshToken: res.RefreshToken,
		ExpiresIn:    res.ExpiresIn,
	}
	p.publish(Event{UserID: u.UserID, SignedIn: true})
	return u, nil
}

func (p *Provider) Register(ctx context.Context, email, password string) (*User, error) {
	res, err := p.svc.Relyingparty.SignupNewUser(&identitytoolkit.IdentitytoolkitRelyingpartySignupNewUserRequest{
		Email:    email,
		Password: password,
	}).Context(ctx).Do()
	if err != nil {
		return nil, providerError("registering", err)
	}
	u := &User{
		UserID:       res.LocalId,
		Email:        res.Email,
		IDToken:      res.IdToken,
		RefreshToken: res.RefreshToken,
		ExpiresIn:    res.ExpiresIn,
	}
	p.publish(Event{UserID: u.UserID, SignedIn: true})
	return u, nil
}

// SignOut revokes the refresh tokens of userID. Subscribers are notified even
// when revocation fails so in-process state is always released.
func (p *Provider) SignOut(ctx context.Context, userID string) error {
	defer p.publish(Event{UserID: userID})
	if p.revoker == nil {
		return nil
	}
	if err := p.revoker.RevokeRefreshTokens(ctx, userID); err != nil {
		return fmt.Errorf("identity: revoking refresh tokens: %w", err)
	}
	return nil
}

// Subscribe registers fn for every state transition and returns a function
// removing it.
func (p *Provider) Subscribe(fn func(Event)) func() {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := p.nextID
	p.nextID++
	p.subs[id] = fn
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.subs, id)
	}
}

func (p *Provider) publish(e Event) {
	p.mu.Lock()
	subs := make([]func(Event), 0, len(p.subs))
	for _, fn := range p.subs {
		subs = append(subs, fn)
	}
	p.mu.Unlock()
	for _, fn := range subs {
		fn(e)
	}
}

func providerError(action string, err error) error {
	var gErr *googleapi.Error
	if errors.As(err, &gErr) && gErr.Message != "" {
		return &Error{Message: gErr.Message}
	}
	return fmt.Errorf("identity: %s: %w", action, err)
}
