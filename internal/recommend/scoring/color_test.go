// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package scoring

import (
	"testing"

	"github.com/tomtom215/stylist/internal/wardrobe"
)

func TestGarmentColorScore_AlwaysABucketScore(t *testing.T) {
	s := NewColorScorer(nil)
	allowed := map[float64]bool{0.95: true, 0.8: true, 0.6: true, 0.2: true}

	for _, profile := range allProfiles() {
		for r := 0; r <= 255; r += 51 {
			for g := 0; g <= 255; g += 51 {
				for b := 0; b <= 255; b += 51 {
					c := wardrobe.Color{Hex: wardrobe.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}.Hex()}
					if got := s.GarmentColorScore(c, profile); !allowed[got] {
						t.Fatalf("GarmentColorScore(%s, %s/%s) = %v", c.Hex, profile.Undertone, profile.Depth, got)
					}
				}
			}
		}
	}
}

func TestGarmentColorScore_NoRGB(t *testing.T) {
	s := NewColorScorer(nil)
	got := s.GarmentColorScore(wardrobe.Color{Family: wardrobe.ColorMulticolor}, wardrobe.NeutralProfile())
	if got != DefaultColorScore {
		t.Errorf("multicolor score = %v, want %v", got, DefaultColorScore)
	}
}

func TestClassifyHarmony(t *testing.T) {
	tests := []struct {
		a, b wardrobe.ColorFamily
		want HarmonyType
	}{
		{wardrobe.ColorBlack, wardrobe.ColorRed, HarmonyNeutral},
		{wardrobe.ColorPink, wardrobe.ColorNavy, HarmonyNeutral},
		{wardrobe.ColorRed, wardrobe.ColorGreen, HarmonyComplementary},
		{wardrobe.ColorTeal, wardrobe.ColorCoral, HarmonyComplementary},
		{wardrobe.ColorPurple, wardrobe.ColorYellow, HarmonyComplementary},
		{wardrobe.ColorBlue, wardrobe.ColorGreen, HarmonyAnalogous},
		{wardrobe.ColorLavender, wardrobe.ColorTurquoise, HarmonyAnalogous},
		{wardrobe.ColorRed, wardrobe.ColorBurgundy, HarmonyMonochromatic},
		{wardrobe.ColorRed, wardrobe.ColorPurple, HarmonyContrast},
		{wardrobe.ColorMulticolor, wardrobe.ColorRed, HarmonyUnknown},
	}

	for _, tt := range tests {
		if got := ClassifyHarmony(tt.a, tt.b); got != tt.want {
			t.Errorf("ClassifyHarmony(%s, %s) = %q, want %q", tt.a, tt.b, got, tt.want)
		}
		if got := ClassifyHarmony(tt.b, tt.a); got != tt.want {
			t.Errorf("ClassifyHarmony(%s, %s) = %q, want %q (symmetry)", tt.b, tt.a, got, tt.want)
		}
	}
}

func TestItemHarmony_NeutralAnchor(t *testing.T) {
	families := []wardrobe.ColorFamily{
		wardrobe.ColorRed, wardrobe.ColorGreen, wardrobe.ColorPurple, wardrobe.ColorCoral,
		wardrobe.ColorMulticolor, wardrobe.ColorBlack,
	}
	for _, f := range families {
		a := mustGarment(t, "a", wardrobe.CategoryTop, wardrobe.Color{Family: f}, wardrobe.StyleCasual)
		b := mustGarment(t, "b", wardrobe.CategoryBottom, wardrobe.Color{Family: wardrobe.ColorBeige}, wardrobe.StyleCasual)
		if got := ItemHarmony(a, b); got < 0.9 {
			t.Errorf("ItemHarmony(%s, beige) = %v, want >= 0.9", f, got)
		}
	}
}

func TestPairColorScore(t *testing.T) {
	s := NewColorScorer(nil)
	top := mustGarment(t, "top", wardrobe.CategoryTop, wardrobe.Color{Family: wardrobe.ColorBlue}, wardrobe.StyleCasual)
	jeans := mustGarment(t, "jeans", wardrobe.CategoryBottom, wardrobe.Color{Family: wardrobe.ColorNavy}, wardrobe.StyleCasual)

	// Blue and navy both land on deep-navy (excellent) for neutral/medium.
	got := s.PairColorScore(top, jeans, wardrobe.NeutralProfile())
	if !approx(got, 0.6*0.95+0.4*0.9) {
		t.Errorf("PairColorScore() = %v, want 0.93", got)
	}
}
