// Package cache persists API responses with their HTTP cache metadata.
//
// The client package only supplies (etag, max_age, body) tuples; this
// store owns freshness tracking, persistence and eviction.
package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Error is the storage error category. Callers receive it unchanged so
// they can tell cache failures apart from API failures.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("cache: %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Entry is one cached response.
type Entry struct {
	ETag      string
	Body      string
	MaxAge    time.Duration
	FetchedAt time.Time
}

// Fresh reports whether the entry may still be served without
// re-validation.
func (e *Entry) Fresh(now time.Time) bool {
	return now.Before(e.FetchedAt.Add(e.MaxAge))
}

// Store is a SQLite-backed response cache keyed by request identity.
type Store struct {
	db *sql.DB
}

// Open opens or creates the cache database at path. Use ":memory:" for
// an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &Error{Op: "open", Err: err}
	}

	// A single connection keeps in-memory databases coherent and is
	// plenty for a CLI's access pattern.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA busy_timeout = 10000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA journal_mode = WAL",
		"PRAGMA temp_store = MEMORY",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, &Error{Op: "pragma", Err: err}
		}
	}

	schema := `
		CREATE TABLE IF NOT EXISTS responses (
			key TEXT PRIMARY KEY,
			etag TEXT NOT NULL DEFAULT '',
			body TEXT NOT NULL,
			max_age INTEGER NOT NULL,
			fetched_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_fetched_at ON responses(fetched_at);
	`

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, &Error{Op: "migrate", Err: err}
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Get returns the entry stored under key, if any.
func (s *Store) Get(ctx context.Context, key string) (*Entry, bool, error) {
	query := `SELECT etag, body, max_age, fetched_at FROM responses WHERE key = ?`

	var (
		entry     Entry
		maxAge    int64
		fetchedAt int64
	)
	err := s.db.QueryRowContext(ctx, query, key).Scan(&entry.ETag, &entry.Body, &maxAge, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, &Error{Op: "get", Err: err}
	}

	entry.MaxAge = time.Duration(maxAge) * time.Second
	entry.FetchedAt = time.Unix(fetchedAt, 0)
	return &entry, true, nil
}

// Put stores or replaces the entry under key.
func (s *Store) Put(ctx context.Context, key string, entry Entry) error {
	query := `
		INSERT INTO responses (key, etag, body, max_age, fetched_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			etag = excluded.etag,
			body = excluded.body,
			max_age = excluded.max_age,
			fetched_at = excluded.fetched_at
	`

	_, err := s.db.ExecContext(ctx, query,
		key,
		entry.ETag,
		entry.Body,
		int64(entry.MaxAge.Seconds()),
		entry.FetchedAt.Unix(),
	)
	if err != nil {
		return &Error{Op: "put", Err: err}
	}
	return nil
}

// Touch restarts the freshness window of an existing entry after a 304
// re-validation, keeping its body and etag.
func (s *Store) Touch(ctx context.Context, key string, maxAge time.Duration, at time.Time) error {
	query := `UPDATE responses SET max_age = ?, fetched_at = ? WHERE key = ?`

	result, err := s.db.ExecContext(ctx, query, int64(maxAge.Seconds()), at.Unix(), key)
	if err != nil {
		return &Error{Op: "touch", Err: err}
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return &Error{Op: "touch", Err: fmt.Errorf("no entry for key %q", key)}
	}
	return nil
}

// Delete removes the entry under key, if present.
func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM responses WHERE key = ?`, key); err != nil {
		return &Error{Op: "delete", Err: err}
	}
	return nil
}

// Purge evicts every entry whose freshness window expired before now
// and returns the number removed. Expired entries still hold usable
// ETags, so Purge is meant for explicit housekeeping, not every run.
func (s *Store) Purge(ctx context.Context, now time.Time) (int64, error) {
	query := `DELETE FROM responses WHERE fetched_at + max_age < ?`

	result, err := s.db.ExecContext(ctx, query, now.Unix())
	if err != nil {
		return 0, &Error{Op: "purge", Err: err}
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, &Error{Op: "purge", Err: err}
	}
	return n, nil
}
