// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package scoring

import (
	"testing"

	"github.com/tomtom215/stylist/internal/wardrobe"
)

func TestPatternScore(t *testing.T) {
	tests := []struct {
		a, b wardrobe.Pattern
		want float64
	}{
		{wardrobe.PatternSolid, wardrobe.PatternSolid, 1.0},
		{wardrobe.PatternSolid, wardrobe.PatternFloral, 0.8},
		{wardrobe.PatternPlaid, wardrobe.PatternSolid, 0.8},
		{wardrobe.PatternDots, wardrobe.PatternPinstripe, 0.6},
		{wardrobe.PatternSmallChecks, wardrobe.PatternDots, 0.6},
		{wardrobe.PatternDots, wardrobe.PatternDots, 0.2},
		{wardrobe.PatternFloral, wardrobe.PatternPlaid, 0.2},
		{wardrobe.PatternDots, wardrobe.PatternAnimalPrint, 0.2},
	}
	for _, tt := range tests {
		if got := PatternScore(tt.a, tt.b); got != tt.want {
			t.Errorf("PatternScore(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestStyleScore(t *testing.T) {
	s := func(v ...wardrobe.Style) []wardrobe.Style { return v }
	tests := []struct {
		name string
		a, b []wardrobe.Style
		want float64
	}{
		{"shared", s(wardrobe.StyleCasual, wardrobe.StyleSporty), s(wardrobe.StyleSporty), 1.0},
		{"compatible", s(wardrobe.StyleCasual), s(wardrobe.StyleStreetwear), 0.9},
		{"compatible from other side", s(wardrobe.StyleStreetwear), s(wardrobe.StyleCasual), 0.9},
		{"formal and smart casual", s(wardrobe.StyleFormal), s(wardrobe.StyleSmartCasual), 0.9},
		{"mismatch", s(wardrobe.StyleCasual), s(wardrobe.StyleFormal), 0.3},
		{"sporty and formal", s(wardrobe.StyleSporty), s(wardrobe.StyleFormal), 0.3},
		{"empty", nil, s(wardrobe.StyleCasual), 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StyleScore(tt.a, tt.b); got != tt.want {
				t.Errorf("StyleScore() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTargetFormality(t *testing.T) {
	want := map[wardrobe.Occasion]int{
		wardrobe.OccasionCasual:         2,
		wardrobe.OccasionFormal:         5,
		wardrobe.OccasionBusinessCasual: 5,
		wardrobe.OccasionSmartCasual:    2,
		wardrobe.OccasionWork:           4,
		wardrobe.OccasionDate:           3,
		wardrobe.OccasionParty:          3,
		wardrobe.OccasionWeekend:        2,
		"gala":                          3,
	}
	for o, w := range want {
		if got := TargetFormality(o); got != w {
			t.Errorf("TargetFormality(%s) = %d, want %d", o, got, w)
		}
	}
}

func TestFormalityScore(t *testing.T) {
	garment := func(f int) wardrobe.Garment {
		g, err := wardrobe.NewGarment(wardrobe.GarmentSpec{
			ID: "g", Category: wardrobe.CategoryTop,
			PrimaryColor: wardrobe.Color{Family: wardrobe.ColorWhite}, Formality: f,
		})
		if err != nil {
			t.Fatalf("NewGarment() error = %v", err)
		}
		return g
	}

	tests := []struct {
		a, b     int
		occasion wardrobe.Occasion
		want     float64
	}{
		{5, 5, wardrobe.OccasionFormal, 1},
		{2, 5, wardrobe.OccasionCasual, 0.5},
		{1, 6, wardrobe.OccasionCasual, 1 - 2.5/3},
		{6, 6, wardrobe.OccasionCasual, 0},
		{3, 4, wardrobe.OccasionWork, 1 - 0.5/3},
	}
	for _, tt := range tests {
		if got := FormalityScore(garment(tt.a), garment(tt.b), tt.occasion); !approx(got, tt.want) {
			t.Errorf("FormalityScore(%d, %d, %s) = %v, want %v", tt.a, tt.b, tt.occasion, got, tt.want)
		}
	}
}
