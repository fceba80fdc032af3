package session

import (
	"context"
	"database/sql"

	_ "modernc.org/sqlite" // driver: sqlite
)

// tokenKey is the single well-known key the bearer token lives under.
const tokenKey = "auth_token"

// StateFile is the sqlite-backed TokenStore. The schema is a one-table
// key/value store, ensured on open.
type StateFile struct {
	db *sql.DB
}

func OpenStateFile(ctx context.Context, path string) (*StateFile, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?cache=shared&mode=rwc&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, err
	}
	return &StateFile{db: db}, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS state (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`

func (f *StateFile) Load() (string, error) {
	var v string
	err := f.db.QueryRow(`SELECT value FROM state WHERE key=$1`, tokenKey).Scan(&v)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return v, err
}

func (f *StateFile) Save(token string) error {
	_, err := f.db.Exec(`
		INSERT INTO state (key, value) VALUES ($1,$2)
		ON CONFLICT (key) DO UPDATE SET value=excluded.value`,
		tokenKey, token)
	return err
}

func (f *StateFile) Clear() error {
	_, err := f.db.Exec(`DELETE FROM state WHERE key=$1`, tokenKey)
	return err
}

func (f *StateFile) Close() error { return f.db.Close() }
