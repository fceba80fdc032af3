// Package session holds the console's authenticated-identity context: a
// bearer token, its persisted copy, and the teardown fan-out that keeps
// session-scoped caches from outliving the session.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lnrs-platform/adminconsole/internal/api"
)

type State int

const (
	LoggedOut State = iota
	LoggedIn
)

func (s State) String() string {
	if s == LoggedIn {
		return "logged-in"
	}
	return "logged-out"
}

// ErrInvalidCredentials is reported when the backend refuses a login.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Authenticator is the one backend call the store needs; *api.Client
// satisfies it.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// TokenStore persists the bearer token across process restarts.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// Store is the session state machine. It doubles as the api.TokenSource
// for the HTTP client, so every outgoing call reads the current token.
type Store struct {
	mu      sync.Mutex
	token   string
	persist TokenStore
	subs    []func(State)
}

func NewStore(persist TokenStore) *Store {
	return &Store{persist: persist}
}

// Subscribe registers a listener for state transitions. Session-scoped
// caches register their Reset here; teardown owns their invalidation.
func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token != "" {
		return LoggedIn
	}
	return LoggedOut
}

func (s *Store) LoggedIn() bool { return s.State() == LoggedIn }

// Token implements api.TokenSource.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Login exchanges credentials for a token and persists it. A 400/401 from
// the backend is reported as ErrInvalidCredentials; transport failures
// pass through unchanged. The store stays LoggedOut on any failure.
func (s *Store) Login(ctx context.Context, auth Authenticator, email, password string) error {
	tok, err := auth.Login(ctx, email, password)
	if err != nil {
		var se *api.StatusError
		if errors.As(err, &se) && (se.Code == 400 || se.Code == 401) {
			return ErrInvalidCredentials
		}
		return err
	}
	if tok == "" {
		return errors.New("login response carried no token")
	}

	s.mu.Lock()
	s.token = tok
	err = s.persist.Save(tok)
	subs := s.listeners()
	s.mu.Unlock()

	notify(subs, LoggedIn)
	return err
}

// Restore reads the persisted token and, when one exists, transitions to
// LoggedIn without a server round trip. The restore is optimistic: the
// first authenticated call that fails with a 401 demotes the session.
func (s *Store) Restore() (bool, error) {
	tok, err := s.persist.Load()
	if err != nil || tok == "" {
		return false, err
	}
	s.mu.Lock()
	s.token = tok
	subs := s.listeners()
	s.mu.Unlock()

	notify(subs, LoggedIn)
	return true, nil
}

// Logout clears the session on the user's request.
func (s *Store) Logout() error { return s.teardown() }

// ForceLogout clears the session after an authorization failure. Dependent
// caches hear about it through the subscriber list like any other teardown.
func (s *Store) ForceLogout() error { return s.teardown() }

func (s *Store) teardown() error {
	s.mu.Lock()
	s.token = ""
	err := s.persist.Clear()
	subs := s.listeners()
	s.mu.Unlock()

	notify(subs, LoggedOut)
	return err
}

// Expiry peeks the token's exp claim without verifying the signature.
// Informational only; the zero time means absent or not a JWT.
func (s *Store) Expiry() time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.Token(), claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

func (s *Store) listeners() []func(State) {
	out := make([]func(State), len(s.subs))
	copy(out, s.subs)
	return out
}

func notify(subs []func(State), st State) {
	for _, fn := range subs {
		fn(st)
	}
}
