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

const profilesTable = "user_profiles"

// UpsertProfile stores the user's skin tone and style preferences.
//
//nolint:gocritic // hugeParam: profile is copied once per write
func (db *DB) UpsertProfile(ctx context.Context, p wardrobe.UserProfile) (err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("UPSERT", profilesTable, time.Since(start), err) }()

	if p.UserID == "" {
		return fmt.Errorf("user id is required")
	}

	var skinTone, skinSample, prefs sql.NullString
	if p.SkinTone != "" {
		skinTone = sql.NullString{String: string(p.SkinTone), Valid: true}
	}
	if p.SkinSample != nil {
		skinSample = sql.NullString{String: p.SkinSample.Hex(), Valid: true}
	}
	if len(p.StylePreferences) > 0 {
		encoded, encErr := json.Marshal(p.StylePreferences)
		if encErr != nil {
			return fmt.Errorf("failed to encode style preferences: %w", encErr)
		}
		prefs = sql.NullString{String: string(encoded), Valid: true}
	}

	_, err = db.conn.ExecContext(ctx, `
		INSERT INTO user_profiles (user_id, skin_tone, skin_sample, style_preferences, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			skin_tone = excluded.skin_tone,
			skin_sample = excluded.skin_sample,
			style_preferences = excluded.style_preferences,
			updated_at = excluded.updated_at`,
		p.UserID, skinTone, skinSample, prefs, db.now().UTC())
	if err != nil {
		return fmt.Errorf("failed to upsert profile %s: %w", p.UserID, err)
	}
	return nil
}

// FetchUserProfile returns the stored profile, or nil when the user has none.
//
// Unreadable columns are dropped with a warning rather than failing the
// request; the engine then falls back to the next skin tone source.
func (db *DB) FetchUserProfile(ctx context.Context, userID string) (*wardrobe.UserProfile, error) {
	start := time.Now()

	var skinTone, skinSample, prefs sql.NullString
	err := db.conn.QueryRowContext(ctx,
		`SELECT skin_tone, skin_sample, style_preferences FROM user_profiles WHERE user_id = ?`, userID).
		Scan(&skinTone, &skinSample, &prefs)
	if errors.Is(err, sql.ErrNoRows) {
		metrics.RecordDBQuery("SELECT", profilesTable, time.Since(start), nil)
		return nil, nil
	}
	metrics.RecordDBQuery("SELECT", profilesTable, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query profile %s: %w", userID, err)
	}

	log := logging.With().Str("user_id", userID).Logger()
	profile := &wardrobe.UserProfile{UserID: userID}

	if skinTone.Valid {
		u, parseErr := wardrobe.ParseUndertone(skinTone.String)
		if parseErr != nil {
			log.Warn().Err(parseErr).Msg("Ignoring stored skin tone")
		} else {
			profile.SkinTone = u
		}
	}
	if skinSample.Valid {
		rgb, parseErr := wardrobe.ParseHex(skinSample.String)
		if parseErr != nil {
			log.Warn().Err(parseErr).Msg("Ignoring stored skin sample")
		} else {
			profile.SkinSample = &rgb
		}
	}
	if prefs.Valid {
		var styles []wardrobe.Style
		if decodeErr := json.Unmarshal([]byte(prefs.String), &styles); decodeErr != nil {
			log.Warn().Err(decodeErr).Msg("Ignoring stored style preferences")
		} else {
			profile.StylePreferences = styles
		}
	}

	return profile, nil
}
