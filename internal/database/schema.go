// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package database

import (
	"context"
	"fmt"
)

// Garments keep the full validated attribute set as JSON in spec; the
// scalar columns exist for filtering and inspection. seq preserves insertion
// order so a wardrobe snapshot is enumerated the same way on every read.
var tableStatements = []string{
	`CREATE SEQUENCE IF NOT EXISTS garment_seq START 1`,
	`CREATE TABLE IF NOT EXISTS garments (
		user_id       TEXT NOT NULL,
		id            TEXT NOT NULL,
		seq           BIGINT NOT NULL DEFAULT nextval('garment_seq'),
		category      TEXT NOT NULL,
		primary_color TEXT NOT NULL,
		formality     INTEGER NOT NULL,
		spec          TEXT NOT NULL,
		created_at    TIMESTAMP NOT NULL,
		updated_at    TIMESTAMP NOT NULL,
		PRIMARY KEY (user_id, id)
	)`,
	`CREATE TABLE IF NOT EXISTS user_profiles (
		user_id    TEXT PRIMARY KEY,
		skin_tone  TEXT,
		updated_at TIMESTAMP NOT NULL
	)`,
}

var indexStatements = []string{
	`CREATE INDEX IF NOT EXISTS idx_garments_user ON garments(user_id)`,
}

func (db *DB) createTables(ctx context.Context) error {
	for _, stmt := range tableStatements {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create tables: %w", err)
		}
	}
	return nil
}

func (db *DB) createIndexes(ctx context.Context) error {
	for _, stmt := range indexStatements {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}
	return nil
}
