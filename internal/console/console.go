// Package console wires the client, session and the session-scoped stores
// together and owns the forced-logout cascade.
package console

import (
	"context"
	"fmt"

	"github.com/lnrs-platform/adminconsole/internal/api"
	"github.com/lnrs-platform/adminconsole/internal/catalog"
	"github.com/lnrs-platform/adminconsole/internal/config"
	"github.com/lnrs-platform/adminconsole/internal/roster"
	"github.com/lnrs-platform/adminconsole/internal/session"
)

type Console struct {
	Session     *session.Store
	Client      *api.Client
	Catalog     *catalog.Store
	Users       *roster.Users
	Submissions *roster.Submissions
}

func New(cfg config.Config, tokens session.TokenStore) *Console {
	sess := session.NewStore(tokens)
	client := api.New(cfg.APIBaseURL, sess, cfg.HTTPTimeout)
	cat := catalog.NewStore(client, cfg.PageSize)
	users := roster.NewUsers(client)
	subs := roster.NewSubmissions(client)

	// The caches are session-scoped; teardown invalidates all of them in
	// one place instead of ad hoc at call sites.
	sess.Subscribe(func(st session.State) {
		if st == session.LoggedOut {
			cat.Reset()
			users.Reset()
			subs.Reset()
		}
	})

	return &Console{
		Session:     sess,
		Client:      client,
		Catalog:     cat,
		Users:       users,
		Submissions: subs,
	}
}

// Guard inspects an operation's error. A 401 tears the whole session down
// (token, persisted copy, every cache) and is reported as an expired
// session; anything else passes through untouched.
func (c *Console) Guard(err error) error {
	if err == nil {
		return nil
	}
	if api.Unauthorized(err) {
		_ = c.Session.ForceLogout()
		return fmt.Errorf("session expired, please log in again: %w", err)
	}
	return err
}

// Login authenticates and, like the original console, primes all three
// session-scoped lists.
func (c *Console) Login(ctx context.Context, email, password string) error {
	if err := c.Session.Login(ctx, c.Client, email, password); err != nil {
		return err
	}
	return c.RefreshAll(ctx)
}

// RefreshAll reloads questions, users and submissions.
func (c *Console) RefreshAll(ctx context.Context) error {
	if _, err := c.Catalog.LoadAll(ctx); err != nil {
		return c.Guard(err)
	}
	if _, err := c.Users.Load(ctx); err != nil {
		return c.Guard(err)
	}
	if _, err := c.Submissions.Load(ctx); err != nil {
		return c.Guard(err)
	}
	return nil
}
