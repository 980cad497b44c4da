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
	`CREATE TABLE IF NOT EXISTS goals (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		name       TEXT NOT NULL,
		goal_type  TEXT NOT NULL CHECK(goal_type IN ('time','count','boolean')),
		is_active  INTEGER NOT NULL DEFAULT 1,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS goal_revisions (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		goal_id      INTEGER NOT NULL REFERENCES goals(id) ON DELETE CASCADE,
		target_value INTEGER NOT NULL,
		valid_from   TEXT NOT NULL,
		valid_to     TEXT,
		created_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_goal_revisions_goal_from
		ON goal_revisions(goal_id, valid_from)`,

	`CREATE TABLE IF NOT EXISTS focus_sessions (
		id               INTEGER PRIMARY KEY AUTOINCREMENT,
		goal_id          INTEGER REFERENCES goals(id) ON DELETE SET NULL,
		duration_seconds INTEGER NOT NULL,
		paused_seconds   INTEGER NOT NULL DEFAULT 0,
		status           TEXT NOT NULL
		                 CHECK(status IN ('running','paused','completed','canceled')),
		started_at       TEXT NOT NULL,
		ended_at         TEXT
	)`,

	`CREATE INDEX IF NOT EXISTS idx_focus_sessions_status
		ON focus_sessions(status, started_at)`,

	`CREATE TABLE IF NOT EXISTS goal_logs (
		id               INTEGER PRIMARY KEY AUTOINCREMENT,
		goal_id          INTEGER NOT NULL REFERENCES goals(id) ON DELETE CASCADE,
		focus_session_id INTEGER REFERENCES focus_sessions(id) ON DELETE SET NULL,
		date             TEXT NOT NULL,
		value            INTEGER NOT NULL,
		source           TEXT NOT NULL,
		created_at       TEXT NOT NULL,
		UNIQUE(goal_id, date, focus_session_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_goal_logs_date ON goal_logs(date)`,

	`CREATE INDEX IF NOT EXISTS idx_goal_logs_goal_date ON goal_logs(goal_id, date)`,
}
