// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

// Package scoring implements the garment compatibility scorers and the
// pairing engine that combines them.
//
// # Scorers
//
// Each scorer is a pure function of its inputs:
//
//   - AnalyzeSkinTone: RGB sample to undertone, depth and confidence
//   - Palette / ColorScorer: garment color against a skin-tone palette, and
//     color harmony between two garments
//   - FormalityScore: two garments against the occasion's target formality
//   - PatternScore: two pattern classifications
//   - StyleScore: two style keyword sets
//
// # Pairing
//
// PairingEngine.ScorePairing weights the four component scores into a single
// CompatibilityScore:
//
//	overall = 0.4*formality + 0.25*color + 0.2*style + 0.15*pattern
//
// Two garments of the same category never pair, except accessories. The
// rejection is reported through CompatibilityScore.Reason rather than an
// error.
//
// # Palette Lookup
//
// Garment colors are scored by nearest-neighbor search over every entry of the
// wearer's (undertone, depth) table, not only the best bucket. A garment close
// to an "avoid" swatch therefore scores 0.2 even when an "excellent" swatch is
// only slightly further away. Tests pin this behavior.
//
// # Thread Safety
//
// Palettes and engines are immutable after construction and safe for
// concurrent use by any number of recommendation requests.
package scoring
