package storage

import (
	"database/sql"
	"fmt"

	"arkval/internal/sdk"
)

// RecordBuild inserts one completed build. Implements sdk.BuildRecorder.
func (db *DB) RecordBuild(record sdk.BuildRecord) error {
	return db.WithTx(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO builds (id, vendor, files, modules, declarations, duration_ms, built_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			record.ID, record.Vendor, record.Files, record.Modules,
			record.Declarations, record.DurationMs, record.BuiltAt)
		if err != nil {
			return fmt.Errorf("failed to insert build record: %w", err)
		}
		return nil
	})
}

// LatestBuilds returns the most recent build per vendor
func (db *DB) LatestBuilds() ([]sdk.BuildRecord, error) {
	rows, err := db.conn.Query(`
		SELECT id, vendor, files, modules, declarations, duration_ms, built_at
		FROM builds b
		WHERE built_at = (SELECT MAX(built_at) FROM builds WHERE vendor = b.vendor)
		ORDER BY vendor`)
	if err != nil {
		return nil, fmt.Errorf("failed to query builds: %w", err)
	}
	defer rows.Close()

	var records []sdk.BuildRecord
	for rows.Next() {
		var r sdk.BuildRecord
		if err := rows.Scan(&r.ID, &r.Vendor, &r.Files, &r.Modules,
			&r.Declarations, &r.DurationMs, &r.BuiltAt); err != nil {
			return nil, fmt.Errorf("failed to scan build record: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// BuildHistory returns up to limit builds for a vendor, newest first
func (db *DB) BuildHistory(vendor string, limit int) ([]sdk.BuildRecord, error) {
	rows, err := db.conn.Query(`
		SELECT id, vendor, files, modules, declarations, duration_ms, built_at
		FROM builds
		WHERE vendor = ?
		ORDER BY built_at DESC
		LIMIT ?`, vendor, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query build history: %w", err)
	}
	defer rows.Close()

	var records []sdk.BuildRecord
	for rows.Next() {
		var r sdk.BuildRecord
		if err := rows.Scan(&r.ID, &r.Vendor, &r.Files, &r.Modules,
			&r.Declarations, &r.DurationMs, &r.BuiltAt); err != nil {
			return nil, fmt.Errorf("failed to scan build record: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
