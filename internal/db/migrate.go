package db

import (
	"database/sql"
	"fmt"
)

// All contains the ordered list of migrations to apply.
var All = []string{
	`CREATE TABLE projects (
		id         INTEGER PRIMARY KEY,
		name       TEXT NOT NULL,
		file_path  TEXT UNIQUE NOT NULL,
		created_at DATETIME NOT NULL DEFAULT (datetime('now')),
		updated_at DATETIME NOT NULL DEFAULT (datetime('now'))
	)`,
	`CREATE TABLE scenarios (
		id         INTEGER PRIMARY KEY,
		project_id INTEGER NOT NULL REFERENCES projects(id),
		name       TEXT NOT NULL,
		step_count INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL DEFAULT (datetime('now')),
		updated_at DATETIME NOT NULL DEFAULT (datetime('now')),
		UNIQUE (project_id, name)
	)`,
	`CREATE TABLE actionwords (
		id              INTEGER PRIMARY KEY,
		project_id      INTEGER NOT NULL REFERENCES projects(id),
		name            TEXT NOT NULL,
		parameter_count INTEGER NOT NULL DEFAULT 0,
		created_at      DATETIME NOT NULL DEFAULT (datetime('now')),
		updated_at      DATETIME NOT NULL DEFAULT (datetime('now')),
		UNIQUE (project_id, name)
	)`,
}

func Migrate(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL)`)
	if err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM schema_version`).Scan(&count); err != nil {
		return fmt.Errorf("checking schema_version: %w", err)
	}
	if count == 0 {
		if _, err := db.Exec(`INSERT INTO schema_version (version) VALUES (0)`); err != nil {
			return fmt.Errorf("initializing schema version: %w", err)
		}
	}

	var current int
	if err := db.QueryRow(`SELECT version FROM schema_version`).Scan(&current); err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}

	for i := current; i < len(All); i++ {
		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("beginning migration %d: %w", i+1, err)
		}

		if _, err := tx.Exec(All[i]); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}

		if _, err := tx.Exec(`UPDATE schema_version SET version = ?`, i+1); err != nil {
			tx.Rollback()
			return fmt.Errorf("updating schema version to %d: %w", i+1, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("committing migration %d: %w", i+1, err)
		}
	}

	return nil
}
