package signin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/api"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/identity"
)

type fakeAuth struct{}

func (fakeAuth) SignIn(_ context.Context, email, password string) (*identity.User, error) {
	if password != "secret" {
		return nil, &identity.Error{Message: "INVALID_LOGIN_CREDENTIALS"}
	}
	return &identity.User{UserID: "u1", Email: email, IDToken: "tok"}, nil
}

func TestSignIn(t *testing.T) {
	r := chi.NewRouter()
	api.Handle(r, http.MethodPost, "/auth/signin", NewHandler(fakeAuth{}).SignIn)

	tests := []struct {
		name   string
		body   string
		status int
		want   string
	}{
		{"ok", `{"email":" a@b.c ","password":"secret"}`, http.StatusOK, `"idToken":"tok"`},
		{"wrong password", `{"email":"a@b.c","password":"nope"}`, http.StatusUnauthorized, `{"error":"INVALID_LOGIN_CREDENTIALS"}`},
		{"missing email", `{"password":"secret"}`, http.StatusBadRequest, `{"error":"email and password are required"}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/signin", strings.NewReader(tc.body)))
			if rec.Code != tc.status {
				t.Errorf("status = %d, want %d", rec.Code, tc.status)
			}
			if !strings.Contains(rec.Body.String(), tc.want) {
				t.Errorf("body = %s, want %s", rec.Body.String(), tc.want)
			}
		})
	}
}
