// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

// Package wardrobe defines the garment data model consumed by the
// recommendation engine.
//
// Every garment attribute that the scorers compare (category, color family,
// pattern, style, occasion, season, fit) is a typed enum. Garments are built
// only through NewGarment, which validates the enums and derives the
// formality level, so the scoring path never has to re-check strings.
//
// # Ingestion
//
// Classifier output arrives as free text (see RawGarment). Classify maps it
// onto the enums exactly once:
//
//	spec, err := wardrobe.Classify(raw)
//	if err != nil {
//	    return err
//	}
//	garment, err := wardrobe.NewGarment(spec)
//
// Keyword matching lives here and nowhere else. Scorers consume the result.
//
// # Immutability
//
// Garment fields are unexported and exposed through accessors that return
// copies of any slices, so a Garment can be shared freely between goroutines
// for the duration of a recommendation request.
package wardrobe
