// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package wardrobe

// SkinToneProfile is the classified skin tone of a wearer.
type SkinToneProfile struct {
	Undertone  Undertone `json:"undertone"`
	Depth      Depth     `json:"depth"`
	Confidence float64   `json:"confidence"`
	SourceRGB  *RGB      `json:"source_rgb,omitempty"`
}

// NeutralProfile is used when nothing is known about the wearer.
func NeutralProfile() SkinToneProfile {
	return SkinToneProfile{Undertone: UndertoneNeutral, Depth: DepthMedium, Confidence: 0.5}
}

// UserProfile is the stored styling profile of a user.
//
// Either SkinSample or SkinTone may be set. When both are present the sample
// takes precedence since it also carries depth.
type UserProfile struct {
	UserID           string    `json:"user_id"`
	SkinTone         Undertone `json:"skin_tone,omitempty"`
	SkinSample       *RGB      `json:"skin_sample,omitempty"`
	StylePreferences []Style   `json:"style_preferences,omitempty"`
}
