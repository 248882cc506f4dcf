// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package database

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/stylist/internal/recommend"
	"github.com/tomtom215/stylist/internal/wardrobe"
)

func TestEngineWithDuckDB(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	for _, g := range []wardrobe.Garment{
		simpleGarment(t, "u1", "shirt", wardrobe.CategoryTop, wardrobe.ColorBlue),
		simpleGarment(t, "u1", "jeans", wardrobe.CategoryBottom, wardrobe.ColorNavy),
		simpleGarment(t, "u1", "sneakers", wardrobe.CategoryShoes, wardrobe.ColorWhite),
	} {
		if err := db.UpsertGarment(ctx, g); err != nil {
			t.Fatalf("UpsertGarment(%s) error = %v", g.ID(), err)
		}
	}
	if err := db.UpsertProfile(ctx, wardrobe.UserProfile{UserID: "u1", SkinTone: wardrobe.UndertoneCool}); err != nil {
		t.Fatalf("UpsertProfile() error = %v", err)
	}

	engine, err := recommend.NewEngine(recommend.DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	engine.SetDataProvider(NewBreakerProvider(db, testBreakerConfig("test-engine")))

	res, err := engine.Recommend(ctx, recommend.Request{UserID: "u1", Occasion: wardrobe.OccasionCasual})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if !res.Success || len(res.Recommendations) == 0 {
		t.Fatalf("Recommend() = %+v, want at least one outfit", res)
	}
	if res.UserAnalysis == nil || res.UserAnalysis.Undertone != wardrobe.UndertoneCool {
		t.Errorf("UserAnalysis = %+v, want stored cool undertone", res.UserAnalysis)
	}
	if res.UserAnalysis.WardrobeSize != 3 {
		t.Errorf("WardrobeSize = %d, want 3", res.UserAnalysis.WardrobeSize)
	}

	top := res.Recommendations[0]
	ids := make(map[string]bool, len(top.Items))
	for _, it := range top.Items {
		ids[it.ID] = true
	}
	if !ids["shirt"] || !ids["jeans"] {
		t.Errorf("top outfit items = %+v, want shirt and jeans", top.Items)
	}

	empty, err := engine.Recommend(ctx, recommend.Request{UserID: "u2", Occasion: wardrobe.OccasionCasual})
	if err != nil {
		t.Fatalf("Recommend(empty) error = %v", err)
	}
	if empty.Success || len(empty.Recommendations) != 0 {
		t.Errorf("Recommend(empty) = %+v, want unsuccessful empty result", empty)
	}
}
