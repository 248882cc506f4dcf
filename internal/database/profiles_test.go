// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package database

import (
	"context"
	"slices"
	"testing"

	"github.com/tomtom215/stylist/internal/wardrobe"
)

func TestFetchUserProfile_Missing(t *testing.T) {
	db := setupTestDB(t)

	p, err := db.FetchUserProfile(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("FetchUserProfile() error = %v", err)
	}
	if p != nil {
		t.Errorf("FetchUserProfile() = %+v, want nil", p)
	}
}

func TestUpsertProfile_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	sample := wardrobe.RGB{R: 224, G: 188, B: 160}
	in := wardrobe.UserProfile{
		UserID:           "u1",
		SkinTone:         wardrobe.UndertoneWarm,
		SkinSample:       &sample,
		StylePreferences: []wardrobe.Style{wardrobe.StyleSmartCasual, wardrobe.StyleFormal},
	}
	if err := db.UpsertProfile(ctx, in); err != nil {
		t.Fatalf("UpsertProfile() error = %v", err)
	}

	got, err := db.FetchUserProfile(ctx, "u1")
	if err != nil {
		t.Fatalf("FetchUserProfile() error = %v", err)
	}
	if got == nil {
		t.Fatal("FetchUserProfile() = nil")
	}
	if got.SkinTone != wardrobe.UndertoneWarm {
		t.Errorf("SkinTone = %q, want warm", got.SkinTone)
	}
	if got.SkinSample == nil || *got.SkinSample != sample {
		t.Errorf("SkinSample = %v, want %v", got.SkinSample, sample)
	}
	if !slices.Equal(got.StylePreferences, in.StylePreferences) {
		t.Errorf("StylePreferences = %v", got.StylePreferences)
	}

	// A later write replaces every field, including clearing the sample.
	if err := db.UpsertProfile(ctx, wardrobe.UserProfile{UserID: "u1", SkinTone: wardrobe.UndertoneCool}); err != nil {
		t.Fatalf("UpsertProfile(update) error = %v", err)
	}
	got, err = db.FetchUserProfile(ctx, "u1")
	if err != nil {
		t.Fatalf("FetchUserProfile() error = %v", err)
	}
	if got.SkinTone != wardrobe.UndertoneCool || got.SkinSample != nil || len(got.StylePreferences) != 0 {
		t.Errorf("updated profile = %+v", got)
	}
}

func TestUpsertProfile_RequiresUser(t *testing.T) {
	db := setupTestDB(t)
	if err := db.UpsertProfile(context.Background(), wardrobe.UserProfile{SkinTone: wardrobe.UndertoneCool}); err == nil {
		t.Error("UpsertProfile() without user expected error")
	}
}

func TestFetchUserProfile_IgnoresCorruptColumns(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO user_profiles (user_id, skin_tone, skin_sample, style_preferences, updated_at)
		 VALUES ('u1', 'olive', 'not-a-hex', '[', ?)`, db.now().UTC())
	if err != nil {
		t.Fatalf("raw insert error = %v", err)
	}

	got, err := db.FetchUserProfile(ctx, "u1")
	if err != nil {
		t.Fatalf("FetchUserProfile() error = %v", err)
	}
	if got == nil || got.SkinTone != "" || got.SkinSample != nil || got.StylePreferences != nil {
		t.Errorf("FetchUserProfile() = %+v, want empty profile for u1", got)
	}
}
