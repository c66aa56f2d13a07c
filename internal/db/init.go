package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// Uniqueness of (account_id, name) and (talk_list_id, name) is enforced
// here rather than by application pre-checks, so two concurrent creates
// with the same name cannot race past each other.
const schema = `
CREATE TABLE IF NOT EXISTS accounts (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    password_hash BYTEA NOT NULL
);

CREATE TABLE IF NOT EXISTS talk_lists (
    id TEXT PRIMARY KEY,
    account_id TEXT NOT NULL REFERENCES accounts(id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    slug TEXT NOT NULL,
    UNIQUE (account_id, name)
);

CREATE INDEX IF NOT EXISTS talk_lists_account_slug ON talk_lists (account_id, slug);

CREATE TABLE IF NOT EXISTS talks (
    id TEXT PRIMARY KEY,
    talk_list_id TEXT NOT NULL REFERENCES talk_lists(id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    slug TEXT NOT NULL,
    at TIMESTAMPTZ NOT NULL,
    room TEXT NOT NULL,
    host TEXT NOT NULL,
    talk_rating INTEGER NOT NULL DEFAULT 0,
    speaker_rating INTEGER NOT NULL DEFAULT 0,
    notes TEXT NOT NULL DEFAULT '',
    notes_html TEXT NOT NULL DEFAULT '',
    UNIQUE (talk_list_id, name)
);

CREATE INDEX IF NOT EXISTS talks_list_order ON talks (talk_list_id, at, room);
`

func InitPostgres(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return db, nil
}
