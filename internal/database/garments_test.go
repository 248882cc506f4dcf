// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package database

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/tomtom215/stylist/internal/wardrobe"
)

func wardrobeIDs(gs []wardrobe.Garment) []string {
	ids := make([]string, len(gs))
	for i, g := range gs {
		ids[i] = g.ID()
	}
	return ids
}

func TestFetchWardrobe_Empty(t *testing.T) {
	db := setupTestDB(t)

	got, err := db.FetchWardrobe(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("FetchWardrobe() error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("FetchWardrobe() = %v, want empty non-nil slice", got)
	}
}

func TestUpsertGarment_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	original := mustGarment(t, wardrobe.GarmentSpec{
		ID:              "blazer",
		UserID:          "u1",
		Name:            "Navy blazer",
		Category:        wardrobe.CategoryOuterwear,
		Subcategory:     "Blazer",
		PrimaryColor:    wardrobe.Color{Family: wardrobe.ColorNavy, Hex: "#1f2a44"},
		SecondaryColors: []wardrobe.ColorFamily{wardrobe.ColorGold},
		Pattern:         wardrobe.PatternPinstripe,
		Material:        "wool",
		Styles:          []wardrobe.Style{wardrobe.StyleFormal, wardrobe.StyleBusinessCasual},
		Occasions:       []wardrobe.Occasion{wardrobe.OccasionWork},
		Seasons:         []wardrobe.Season{wardrobe.SeasonAutumn, wardrobe.SeasonWinter},
		ImageURL:        "https://img.example/blazer.jpg",
	})
	if err := db.UpsertGarment(ctx, original); err != nil {
		t.Fatalf("UpsertGarment() error = %v", err)
	}

	got, err := db.GetGarment(ctx, "u1", "blazer")
	if err != nil {
		t.Fatalf("GetGarment() error = %v", err)
	}

	if got.Name() != "Navy blazer" || got.Subcategory() != "blazer" || got.Material() != "wool" {
		t.Errorf("scalar fields = %q/%q/%q", got.Name(), got.Subcategory(), got.Material())
	}
	if got.PrimaryColor() != original.PrimaryColor() {
		t.Errorf("PrimaryColor = %+v, want %+v", got.PrimaryColor(), original.PrimaryColor())
	}
	if got.Pattern() != wardrobe.PatternPinstripe || got.Formality() != original.Formality() {
		t.Errorf("pattern/formality = %s/%d", got.Pattern(), got.Formality())
	}
	if !slices.Equal(got.Styles(), original.Styles()) || !slices.Equal(got.Seasons(), original.Seasons()) {
		t.Errorf("styles/seasons = %v/%v", got.Styles(), got.Seasons())
	}
	if got.ImageURL() != original.ImageURL() || got.UserID() != "u1" {
		t.Errorf("image/user = %q/%q", got.ImageURL(), got.UserID())
	}
}

func TestUpsertGarment_UpdateKeepsOrder(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	for _, g := range []wardrobe.Garment{
		simpleGarment(t, "u1", "shirt", wardrobe.CategoryTop, wardrobe.ColorBlue),
		simpleGarment(t, "u1", "jeans", wardrobe.CategoryBottom, wardrobe.ColorNavy),
		simpleGarment(t, "u1", "sneakers", wardrobe.CategoryShoes, wardrobe.ColorWhite),
		simpleGarment(t, "u2", "dress", wardrobe.CategoryDress, wardrobe.ColorRed),
	} {
		if err := db.UpsertGarment(ctx, g); err != nil {
			t.Fatalf("UpsertGarment(%s) error = %v", g.ID(), err)
		}
	}

	// Recolor the first garment; it must stay first.
	db.now = func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }
	if err := db.UpsertGarment(ctx, simpleGarment(t, "u1", "shirt", wardrobe.CategoryTop, wardrobe.ColorGreen)); err != nil {
		t.Fatalf("UpsertGarment(update) error = %v", err)
	}

	got, err := db.FetchWardrobe(ctx, "u1")
	if err != nil {
		t.Fatalf("FetchWardrobe() error = %v", err)
	}
	if ids := wardrobeIDs(got); !slices.Equal(ids, []string{"shirt", "jeans", "sneakers"}) {
		t.Errorf("FetchWardrobe() ids = %v", ids)
	}
	if got[0].PrimaryColor().Family != wardrobe.ColorGreen {
		t.Errorf("updated color = %s, want green", got[0].PrimaryColor().Family)
	}

	n, err := db.CountGarments(ctx, "u1")
	if err != nil || n != 3 {
		t.Errorf("CountGarments() = %d, %v; want 3", n, err)
	}
}

func TestUpsertGarment_Rejects(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	if err := db.UpsertGarment(ctx, wardrobe.Garment{}); !errors.Is(err, wardrobe.ErrInvalidGarment) {
		t.Errorf("zero garment error = %v, want ErrInvalidGarment", err)
	}

	orphan := simpleGarment(t, "", "orphan", wardrobe.CategoryTop, wardrobe.ColorBlue)
	if err := db.UpsertGarment(ctx, orphan); !errors.Is(err, wardrobe.ErrInvalidGarment) {
		t.Errorf("garment without user error = %v, want ErrInvalidGarment", err)
	}
}

func TestFetchWardrobe_SkipsInvalidRows(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	if err := db.UpsertGarment(ctx, simpleGarment(t, "u1", "shirt", wardrobe.CategoryTop, wardrobe.ColorBlue)); err != nil {
		t.Fatalf("UpsertGarment() error = %v", err)
	}

	now := time.Now().UTC()
	bad := []struct{ id, spec string }{
		{"no-category", `{"id":"no-category","primary_color":{"family":"blue"}}`},
		{"no-color", `{"id":"no-color","category":"bottom"}`},
		{"not-json", `{`},
	}
	for _, b := range bad {
		_, err := db.conn.ExecContext(ctx,
			`INSERT INTO garments (user_id, id, category, primary_color, formality, spec, created_at, updated_at)
			 VALUES ('u1', ?, '', '', 3, ?, ?, ?)`, b.id, b.spec, now, now)
		if err != nil {
			t.Fatalf("raw insert %s error = %v", b.id, err)
		}
	}

	got, err := db.FetchWardrobe(ctx, "u1")
	if err != nil {
		t.Fatalf("FetchWardrobe() error = %v", err)
	}
	if ids := wardrobeIDs(got); !slices.Equal(ids, []string{"shirt"}) {
		t.Errorf("FetchWardrobe() ids = %v, want [shirt]", ids)
	}
}

func TestGetAndDeleteGarment(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	if _, err := db.GetGarment(ctx, "u1", "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetGarment(missing) error = %v, want ErrNotFound", err)
	}

	if err := db.UpsertGarment(ctx, simpleGarment(t, "u1", "shirt", wardrobe.CategoryTop, wardrobe.ColorBlue)); err != nil {
		t.Fatalf("UpsertGarment() error = %v", err)
	}
	// Same garment ID under another user is a different row.
	if err := db.DeleteGarment(ctx, "u2", "shirt"); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteGarment(other user) error = %v, want ErrNotFound", err)
	}
	if err := db.DeleteGarment(ctx, "u1", "shirt"); err != nil {
		t.Fatalf("DeleteGarment() error = %v", err)
	}
	if err := db.DeleteGarment(ctx, "u1", "shirt"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second DeleteGarment() error = %v, want ErrNotFound", err)
	}
}

func TestFetchWardrobe_CancelledContext(t *testing.T) {
	db := setupTestDB(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := db.FetchWardrobe(ctx, "u1"); err == nil {
		t.Error("FetchWardrobe() with cancelled context expected error")
	}
}
