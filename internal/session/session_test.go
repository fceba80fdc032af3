package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lnrs-platform/adminconsole/internal/api"
)

type memTokens struct {
	value string
}

func (m *memTokens) Load() (string, error) { return m.value, nil }
func (m *memTokens) Save(t string) error   { m.value = t; return nil }
func (m *memTokens) Clear() error          { m.value = ""; return nil }

type fakeAuth struct {
	token string
	err   error
	calls int
}

func (f *fakeAuth) Login(_ context.Context, _, _ string) (string, error) {
	f.calls++
	return f.token, f.err
}

func TestLoginSuccessPersistsAndNotifies(t *testing.T) {
	mem := &memTokens{}
	s := NewStore(mem)
	var transitions []State
	s.Subscribe(func(st State) { transitions = append(transitions, st) })

	auth := &fakeAuth{token: "tok-abc"}
	if err := s.Login(context.Background(), auth, "a@x.io", "pw"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.State() != LoggedIn || s.Token() != "tok-abc" {
		t.Fatalf("expected a logged-in store holding the token")
	}
	if mem.value != "tok-abc" {
		t.Fatalf("token not persisted")
	}
	if len(transitions) != 1 || transitions[0] != LoggedIn {
		t.Fatalf("expected one LoggedIn notification, got %v", transitions)
	}
}

func TestLoginRejectionIsInvalidCredentials(t *testing.T) {
	for _, code := range []int{400, 401} {
		s := NewStore(&memTokens{})
		auth := &fakeAuth{err: &api.StatusError{Code: code, Message: "nope"}}
		err := s.Login(context.Background(), auth, "a@x.io", "wrong")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("code %d: expected ErrInvalidCredentials, got %v", code, err)
		}
		if s.State() != LoggedOut {
			t.Fatalf("code %d: store must stay LoggedOut", code)
		}
	}
}

func TestLoginTransportFailurePassesThrough(t *testing.T) {
	s := NewStore(&memTokens{})
	auth := &fakeAuth{err: &api.TransportError{URL: "http://x", Err: errors.New("refused")}}
	err := s.Login(context.Background(), auth, "a@x.io", "pw")
	if errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("a transport failure is not an invalid credential")
	}
	var te *api.TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected the transport error unchanged, got %v", err)
	}
}

func TestRestoreIsOptimistic(t *testing.T) {
	mem := &memTokens{value: "persisted-tok"}
	s := NewStore(mem)
	auth := &fakeAuth{}
	var transitions []State
	s.Subscribe(func(st State) { transitions = append(transitions, st) })

	ok, err := s.Restore()
	if err != nil || !ok {
		t.Fatalf("restore failed: %v, %v", ok, err)
	}
	if s.State() != LoggedIn || s.Token() != "persisted-tok" {
		t.Fatalf("expected a restored session")
	}
	if auth.calls != 0 {
		t.Fatalf("restore must not talk to the backend")
	}
	if len(transitions) != 1 || transitions[0] != LoggedIn {
		t.Fatalf("expected one LoggedIn notification, got %v", transitions)
	}
}

func TestRestoreWithoutPersistedToken(t *testing.T) {
	s := NewStore(&memTokens{})
	ok, err := s.Restore()
	if err != nil || ok {
		t.Fatalf("expected a quiet no-op, got %v, %v", ok, err)
	}
	if s.State() != LoggedOut {
		t.Fatalf("store must stay LoggedOut")
	}
}

func TestTeardownClearsAndNotifies(t *testing.T) {
	for name, teardown := range map[string]func(*Store) error{
		"logout":      (*Store).Logout,
		"forceLogout": (*Store).ForceLogout,
	} {
		mem := &memTokens{}
		s := NewStore(mem)
		if err := s.Login(context.Background(), &fakeAuth{token: "tok"}, "a@x.io", "pw"); err != nil {
			t.Fatalf("%s: seed login: %v", name, err)
		}
		var last State = LoggedIn
		s.Subscribe(func(st State) { last = st })

		if err := teardown(s); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if s.State() != LoggedOut || s.Token() != "" {
			t.Fatalf("%s: session not cleared", name)
		}
		if mem.value != "" {
			t.Fatalf("%s: persisted token not removed", name)
		}
		if last != LoggedOut {
			t.Fatalf("%s: subscribers not told about the teardown", name)
		}
	}
}

func TestExpiryPeeksJWT(t *testing.T) {
	exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"exp": exp.Unix(),
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	mem := &memTokens{value: tok}
	s := NewStore(mem)
	if _, err := s.Restore(); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if got := s.Expiry(); !got.Equal(exp) {
		t.Fatalf("expiry: got %v want %v", got, exp)
	}
}

func TestExpiryOnOpaqueToken(t *testing.T) {
	s := NewStore(&memTokens{value: "not-a-jwt"})
	if _, err := s.Restore(); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if !s.Expiry().IsZero() {
		t.Fatalf("an opaque token has no expiry")
	}
}
