package storage

import (
	"database/sql"
	"fmt"
)

const currentSchemaVersion = 1

// initializeSchema creates all tables, idempotently
func (db *DB) initializeSchema() error {
	return db.WithTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER NOT NULL
			)`); err != nil {
			return fmt.Errorf("failed to create schema_version table: %w", err)
		}

		if _, err := tx.Exec(`
			CREATE TABLE IF NOT EXISTS builds (
				id TEXT PRIMARY KEY,
				vendor TEXT NOT NULL,
				files INTEGER NOT NULL,
				modules INTEGER NOT NULL,
				declarations INTEGER NOT NULL,
				duration_ms INTEGER NOT NULL,
				built_at TIMESTAMP NOT NULL
			)`); err != nil {
			return fmt.Errorf("failed to create builds table: %w", err)
		}

		if _, err := tx.Exec(`
			CREATE INDEX IF NOT EXISTS idx_builds_vendor_built_at
			ON builds(vendor, built_at DESC)`); err != nil {
			return fmt.Errorf("failed to create builds index: %w", err)
		}

		var version int
		err := tx.QueryRow(`SELECT version FROM schema_version LIMIT 1`).Scan(&version)
		if err == sql.ErrNoRows {
			_, err = tx.Exec(`INSERT INTO schema_version (version) VALUES (?)`, currentSchemaVersion)
		}
		if err != nil {
			return fmt.Errorf("failed to set schema version: %w", err)
		}

		return nil
	})
}
