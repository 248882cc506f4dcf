// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package recommend

import (
	"math"

	"github.com/tomtom215/stylist/internal/recommend/scoring"
	"github.com/tomtom215/stylist/internal/wardrobe"
)

const maxStylingTips = 3

var undertoneAdvice = map[wardrobe.Undertone]string{
	wardrobe.UndertoneCool:    "These cool tones complement your skin undertone beautifully",
	wardrobe.UndertoneWarm:    "These warm colors enhance your natural glow",
	wardrobe.UndertoneNeutral: "This balanced palette works perfectly with your neutral undertone",
}

// round2 rounds to two decimals for presentation.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// StylingTips returns up to three tips for an outfit worn in rc.
//
//nolint:gocritic // hugeParam: rc passed by value for immutability
func StylingTips(items []wardrobe.Garment, rc Context) []string {
	tips := make([]string, 0, 5)

	switch rc.Occasion {
	case wardrobe.OccasionFormal:
		tips = append(tips,
			"Ensure all items are wrinkle-free and well-fitted",
			"Consider adding a statement accessory for sophistication")
	case wardrobe.OccasionCasual:
		tips = append(tips,
			"Feel free to mix textures for visual interest",
			"Roll up sleeves or cuffs for a relaxed look")
	}

	switch rc.Weather {
	case wardrobe.WeatherCold:
		tips = append(tips, "Layer pieces for warmth and style versatility")
	case wardrobe.WeatherHot:
		tips = append(tips, "Choose breathable fabrics and lighter colors")
	}

	patterned := false
	for _, g := range items {
		if !g.Pattern().IsSolid() {
			patterned = true
			break
		}
	}
	if patterned {
		tips = append(tips, "Keep accessories minimal to let patterns stand out")
	} else {
		tips = append(tips, "Add visual interest with textured accessories")
	}

	if len(tips) > maxStylingTips {
		tips = tips[:maxStylingTips]
	}
	return tips
}

// Compatibility labels for the mean palette score of an outfit.
const (
	CompatibilityHigh   = "high"
	CompatibilityMedium = "medium"
	CompatibilityLow    = "low"
)

// CoordinateColors explains the outfit's colors for the wearer.
func CoordinateColors(o *Outfit, colors *scoring.ColorScorer, skin wardrobe.SkinToneProfile) ColorCoordination {
	palette := make([]string, 0, len(o.Items))
	var sum float64
	for _, g := range o.Items {
		palette = append(palette, g.PrimaryColor().Name())
		sum += colors.GarmentColorScore(g.PrimaryColor(), skin)
	}

	compat := CompatibilityLow
	if len(o.Items) > 0 {
		switch mean := sum / float64(len(o.Items)); {
		case mean >= 0.8:
			compat = CompatibilityHigh
		case mean >= 0.6:
			compat = CompatibilityMedium
		}
	}

	harmony := scoring.HarmonyUnknown
	if len(o.Items) >= 2 {
		harmony = scoring.ClassifyHarmony(o.Items[0].PrimaryColor().Family, o.Items[1].PrimaryColor().Family)
	}

	advice, ok := undertoneAdvice[skin.Undertone]
	if !ok {
		advice = undertoneAdvice[wardrobe.UndertoneNeutral]
	}

	return ColorCoordination{
		PrimaryPalette:        palette,
		SkinToneCompatibility: compat,
		HarmonyType:           harmony,
		StylingAdvice:         []string{advice},
	}
}

func summarize(g wardrobe.Garment) ItemSummary {
	return ItemSummary{
		ID:          g.ID(),
		Name:        g.Name(),
		Category:    g.Category(),
		Subcategory: g.Subcategory(),
		Color:       g.PrimaryColor().Name(),
		Pattern:     g.Pattern(),
		Style:       g.PrimaryStyle(),
		ImageURL:    g.ImageURL(),
	}
}

// FormatOutfit converts a ranked outfit into its response form.
//
//nolint:gocritic // hugeParam: rc passed by value for immutability
func FormatOutfit(o *Outfit, rc Context, colors *scoring.ColorScorer) Recommendation {
	items := make([]ItemSummary, len(o.Items))
	for i, g := range o.Items {
		items[i] = summarize(g)
	}

	bd := o.Pair.Breakdown
	return Recommendation{
		OutfitID:            o.ID,
		Rank:                o.Rank,
		ConfidenceScore:     round2(o.Score),
		RecommendationLevel: o.Level,
		Items:               items,
		StylingAnalysis: StylingAnalysis{
			FormalityScore:            round2(bd.Formality),
			ColorHarmonyScore:         round2(bd.Color),
			StyleCoherenceScore:       round2(bd.Style),
			PatternCompatibilityScore: round2(bd.Pattern),
		},
		StylingTips:       StylingTips(o.Items, rc),
		ColorCoordination: CoordinateColors(o, colors, rc.SkinTone),
	}
}
