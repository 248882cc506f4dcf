// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/stylist/internal/logging"
	"github.com/tomtom215/stylist/internal/metrics"
	"github.com/tomtom215/stylist/internal/wardrobe"
)

const garmentsTable = "garments"

// UpsertGarment inserts g or replaces the stored attributes of the garment
// with the same user and ID. The original insertion order is kept.
//
//nolint:gocritic // hugeParam: Garment is immutable and passed by value throughout
func (db *DB) UpsertGarment(ctx context.Context, g wardrobe.Garment) (err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("UPSERT", garmentsTable, time.Since(start), err) }()

	if g.IsZero() {
		return fmt.Errorf("%w: zero garment", wardrobe.ErrInvalidGarment)
	}
	if g.UserID() == "" {
		return fmt.Errorf("%w: %s: user id is required", wardrobe.ErrInvalidGarment, g.ID())
	}

	spec, err := json.Marshal(g.Spec())
	if err != nil {
		return fmt.Errorf("failed to encode garment %s: %w", g.ID(), err)
	}

	now := db.now().UTC()
	_, err = db.conn.ExecContext(ctx, `
		INSERT INTO garments (user_id, id, category, primary_color, formality, spec, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, id) DO UPDATE SET
			category = excluded.category,
			primary_color = excluded.primary_color,
			formality = excluded.formality,
			spec = excluded.spec,
			updated_at = excluded.updated_at`,
		g.UserID(), g.ID(), string(g.Category()), string(g.PrimaryColor().Family), g.Formality(), string(spec), now, now)
	if err != nil {
		return fmt.Errorf("failed to upsert garment %s: %w", g.ID(), err)
	}
	return nil
}

// FetchWardrobe returns the user's garments in insertion order.
//
// Rows that no longer pass garment validation are logged and skipped, so a
// garment without a category or color never reaches the engine.
func (db *DB) FetchWardrobe(ctx context.Context, userID string) (garments []wardrobe.Garment, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("SELECT", garmentsTable, time.Since(start), err) }()

	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, spec FROM garments WHERE user_id = ? ORDER BY seq`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query wardrobe: %w", err)
	}
	defer closeWithLog(rows, "wardrobe rows")

	garments = make([]wardrobe.Garment, 0)
	for rows.Next() {
		var id, raw string
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan garment row: %w", err)
		}

		g, decodeErr := decodeGarment(raw)
		if decodeErr != nil {
			logging.Warn().Str("user_id", userID).Str("garment_id", id).Err(decodeErr).Msg("Skipping invalid stored garment")
			continue
		}
		garments = append(garments, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate wardrobe: %w", err)
	}
	return garments, nil
}

// GetGarment returns one garment or ErrNotFound.
func (db *DB) GetGarment(ctx context.Context, userID, garmentID string) (wardrobe.Garment, error) {
	start := time.Now()

	var raw string
	err := db.conn.QueryRowContext(ctx,
		`SELECT spec FROM garments WHERE user_id = ? AND id = ?`, userID, garmentID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		metrics.RecordDBQuery("SELECT", garmentsTable, time.Since(start), nil)
		return wardrobe.Garment{}, fmt.Errorf("garment %s: %w", garmentID, ErrNotFound)
	}
	metrics.RecordDBQuery("SELECT", garmentsTable, time.Since(start), err)
	if err != nil {
		return wardrobe.Garment{}, fmt.Errorf("failed to query garment %s: %w", garmentID, err)
	}
	return decodeGarment(raw)
}

// DeleteGarment removes one garment. Deleting a missing garment returns
// ErrNotFound.
func (db *DB) DeleteGarment(ctx context.Context, userID, garmentID string) (err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("DELETE", garmentsTable, time.Since(start), err) }()

	res, err := db.conn.ExecContext(ctx,
		`DELETE FROM garments WHERE user_id = ? AND id = ?`, userID, garmentID)
	if err != nil {
		return fmt.Errorf("failed to delete garment %s: %w", garmentID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("garment %s: %w", garmentID, ErrNotFound)
	}
	return nil
}

// CountGarments returns the number of stored garments for a user.
func (db *DB) CountGarments(ctx context.Context, userID string) (int, error) {
	var n int
	if err := db.conn.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM garments WHERE user_id = ?`, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count garments: %w", err)
	}
	return n, nil
}

func decodeGarment(raw string) (wardrobe.Garment, error) {
	var spec wardrobe.GarmentSpec
	if err := json.Unmarshal([]byte(raw), &spec); err != nil {
		return wardrobe.Garment{}, fmt.Errorf("failed to decode garment: %w", err)
	}
	return wardrobe.NewGarment(spec)
}
