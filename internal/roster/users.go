// Package roster holds the session-scoped user and submission lists the
// console fetches once per login.
package roster

import (
	"context"
	"sync"

	"github.com/lnrs-platform/adminconsole/internal/catalog"
	"github.com/lnrs-platform/adminconsole/internal/exam"
)

// UserBackend is the slice of the REST surface the user list needs.
type UserBackend interface {
	ListUsers(ctx context.Context) ([]exam.User, error)
	Register(ctx context.Context, name, email, password string, role exam.Role) (exam.User, error)
	DeleteUser(ctx context.Context, id string) error
}

type Users struct {
	backend UserBackend

	mu    sync.Mutex
	users []exam.User
}

func NewUsers(backend UserBackend) *Users {
	return &Users{backend: backend}
}

func (s *Users) Load(ctx context.Context) ([]exam.User, error) {
	users, err := s.backend.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.users = users
	s.mu.Unlock()
	return users, nil
}

// Add registers a new account and appends the server's echo to the list.
// The role defaults to user unless explicitly admin.
func (s *Users) Add(ctx context.Context, name, email, password string, role exam.Role) (exam.User, error) {
	if role != exam.RoleAdmin {
		role = exam.RoleUser
	}
	u, err := s.backend.Register(ctx, name, email, password, role)
	if err != nil {
		return exam.User{}, err
	}
	s.mu.Lock()
	s.users = append(s.users, u)
	s.mu.Unlock()
	return u, nil
}

// Delete guards the destructive call behind confirmation, like the catalog.
func (s *Users) Delete(ctx context.Context, id string, confirm catalog.Confirmer) (bool, error) {
	if !confirm.Confirm("Are you sure you want to delete this user?") {
		return false, nil
	}
	if err := s.backend.DeleteUser(ctx, id); err != nil {
		return false, err
	}
	s.mu.Lock()
	kept := s.users[:0]
	for _, u := range s.users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	s.users = kept
	s.mu.Unlock()
	return true, nil
}

func (s *Users) Reset() {
	s.mu.Lock()
	s.users = nil
	s.mu.Unlock()
}

func (s *Users) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

func (s *Users) Snapshot() []exam.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]exam.User, len(s.users))
	copy(out, s.users)
	return out
}
