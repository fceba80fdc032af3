package session

import (
	"context"
	"path/filepath"
	"testing"
)

func openTempStateFile(t *testing.T) (*StateFile, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state.db")
	f, err := OpenStateFile(context.Background(), path)
	if err != nil {
		t.Fatalf("open state file: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f, path
}

func TestStateFileRoundTrip(t *testing.T) {
	f, _ := openTempStateFile(t)

	if tok, err := f.Load(); err != nil || tok != "" {
		t.Fatalf("fresh file should hold no token, got %q, %v", tok, err)
	}
	if err := f.Save("tok-1"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if tok, _ := f.Load(); tok != "tok-1" {
		t.Fatalf("load after save: got %q", tok)
	}
	// saving again overwrites the single well-known key
	if err := f.Save("tok-2"); err != nil {
		t.Fatalf("second save: %v", err)
	}
	if tok, _ := f.Load(); tok != "tok-2" {
		t.Fatalf("load after overwrite: got %q", tok)
	}
	if err := f.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if tok, _ := f.Load(); tok != "" {
		t.Fatalf("load after clear: got %q", tok)
	}
}

func TestStateFileSurvivesReopen(t *testing.T) {
	f, path := openTempStateFile(t)
	if err := f.Save("survives"); err != nil {
		t.Fatalf("save: %v", err)
	}
	f.Close()

	g, err := OpenStateFile(context.Background(), path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer g.Close()
	if tok, _ := g.Load(); tok != "survives" {
		t.Fatalf("token lost across reopen: got %q", tok)
	}
}

func TestStoreOverSQLite(t *testing.T) {
	f, _ := openTempStateFile(t)
	s := NewStore(f)
	if err := s.Login(context.Background(), &fakeAuth{token: "tok-sql"}, "a@x.io", "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}

	// a second store over the same file models a process restart
	restarted := NewStore(f)
	ok, err := restarted.Restore()
	if err != nil || !ok {
		t.Fatalf("restore after restart: %v, %v", ok, err)
	}
	if restarted.Token() != "tok-sql" {
		t.Fatalf("got %q", restarted.Token())
	}

	if err := restarted.ForceLogout(); err != nil {
		t.Fatalf("forced logout: %v", err)
	}
	if tok, _ := f.Load(); tok != "" {
		t.Fatalf("persisted token should be gone, got %q", tok)
	}
}
