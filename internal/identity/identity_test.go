package identity

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/api/option"
)

type fakeRevoker struct {
	uids []string
	err  error
}

func (f *fakeRevoker) RevokeRefreshTokens(_ context.Context, uid string) error {
	f.uids = append(f.uids, uid)
	return f.err
}

func newTestProvider(t *testing.T, handler http.HandlerFunc, revoker Revoker) *Provider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	p, err := NewProvider(context.Background(), "web-key", revoker,
		option.WithEndpoint(srv.URL+"/"),
	)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestSignIn(t *testing.T) {
	var gotReq map[string]any
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "verifyPassword") {
			http.NotFound(w, r)
			return
		}
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"localId":"u1","email":"a@b.c","idToken":"id","refreshToken":"rt","expiresIn":"3600"}`))
	}, nil)

	var events []Event
	unsubscribe := p.Subscribe(func(e Event) { events = append(events, e) })

	u, err := p.SignIn(context.Background(), "a@b.c", "secret")
	if err != nil {
		t.Fatal(err)
	}
	want := &User{UserID: "u1", Email: "a@b.c", IDToken: "id", RefreshToken: "rt", ExpiresIn: "3600"}
	if diff := cmp.Diff(want, u); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if gotReq["email"] != "a@b.c" || gotReq["password"] != "secret" || gotReq["returnSecureToken"] != true {
		t.Errorf("request = %v", gotReq)
	}

	unsubscribe()
	if err := p.SignOut(context.Background(), "u1"); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]Event{{UserID: "u1", SignedIn: true}}, events); diff != "" {
		t.Errorf("events (-want +got):\n%s", diff)
	}
}

func TestSignInProviderError(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"INVALID_PASSWORD","errors":[{"message":"INVALID_PASSWORD","domain":"global","reason":"invalid"}]}}`))
	}, nil)

	_, err := p.SignIn(context.Background(), "a@b.c", "wrong")
	var idErr *Error
	if !errors.As(err, &idErr) {
		t.Fatalf("SignIn() error = %v, want *Error", err)
	}
	if idErr.Error() != "INVALID_PASSWORD" {
		t.Errorf("message = %q", idErr.Error())
	}
}

func TestRegister(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "signupNewUser") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"localId":"u2","email":"new@b.c","idToken":"id2"}`))
	}, nil)

	u, err := p.Register(context.Background(), "new@b.c", "secret")
	if err != nil {
		t.Fatal(err)
	}
	if u.UserID != "u2" || u.IDToken != "id2" {
		t.Errorf("Register() = %+v", u)
	}
}

func TestSignOutNotifiesOnRevokeFailure(t *testing.T) {
	revoker := &fakeRevoker{err: errors.New("unavailable")}
	p := newTestProvider(t, http.NotFound, revoker)

	var events []Event
	p.Subscribe(func(e Event) { events = append(events, e) })

	if err := p.SignOut(context.Background(), "u1"); !errors.Is(err, revoker.err) {
		t.Errorf("SignOut() error = %v", err)
	}
	if diff := cmp.Diff([]string{"u1"}, revoker.uids); diff != "" {
		t.Errorf("revoked (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Event{{UserID: "u1"}}, events); diff != "" {
		t.Errorf("events (-want +got):\n%s", diff)
	}
}
