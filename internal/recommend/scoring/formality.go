// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package scoring

import (
	"math"

	"github.com/tomtom215/stylist/internal/wardrobe"
)

var occasionFormality = map[wardrobe.Occasion]int{
	wardrobe.OccasionCasual:         2,
	wardrobe.OccasionFormal:         5,
	wardrobe.OccasionBusinessCasual: 5,
	wardrobe.OccasionSmartCasual:    2,
	wardrobe.OccasionWork:           4,
	wardrobe.OccasionDate:           3,
	wardrobe.OccasionParty:          3,
	wardrobe.OccasionWeekend:        2,
}

// TargetFormality returns the formality level an occasion calls for.
func TargetFormality(o wardrobe.Occasion) int {
	if f, ok := occasionFormality[o]; ok {
		return f
	}
	return wardrobe.DefaultFormality
}

// FormalityScore scores how close two garments sit to the occasion's target
// formality. 1 means both match exactly; three levels off on average scores 0.
func FormalityScore(a, b wardrobe.Garment, o wardrobe.Occasion) float64 {
	target := float64(TargetFormality(o))
	diff := (math.Abs(float64(a.Formality())-target) + math.Abs(float64(b.Formality())-target)) / 2
	return math.Max(0, 1-diff/3)
}
