// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Polls and drafts are stored as whole JSON documents; the schema stays the
// same on sqlite and postgres.
const schema = `
-- Polls
CREATE TABLE IF NOT EXISTS poll (
    id TEXT PRIMARY KEY,
    payload TEXT NOT NULL,
    updated_at TIMESTAMP
);

-- Wizard drafts
CREATE TABLE IF NOT EXISTS draft (
    id TEXT PRIMARY KEY,
    payload TEXT NOT NULL,
    updated_at TIMESTAMP
);
`
