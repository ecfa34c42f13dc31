package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// Append-only history of completed sessions. Rows are only ever
	// inserted on completion; abandoned sessions never reach this table.
	`CREATE TABLE IF NOT EXISTS focus_sessions (
		id               TEXT PRIMARY KEY,
		category         TEXT NOT NULL
		                 CHECK(category IN ('focus','creative','chore','learning','rest')),
		duration_minutes INTEGER NOT NULL CHECK(duration_minutes > 0),
		intention        TEXT NOT NULL DEFAULT '',
		ai_motivation    TEXT,
		completed_at     TEXT,
		created_at       TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_focus_sessions_completed ON focus_sessions(completed_at)`,
	`CREATE INDEX IF NOT EXISTS idx_focus_sessions_category ON focus_sessions(category)`,

	`CREATE TABLE IF NOT EXISTS prefs (
		id                   TEXT PRIMARY KEY DEFAULT 'default',
		default_category     TEXT NOT NULL DEFAULT 'focus'
		                     CHECK(default_category IN ('focus','creative','chore','learning','rest')),
		default_duration_min INTEGER NOT NULL DEFAULT 25 CHECK(default_duration_min > 0),
		sound_enabled        INTEGER NOT NULL DEFAULT 1
	)`,

	// Seed default prefs
	`INSERT OR IGNORE INTO prefs (id) VALUES ('default')`,
}
