// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package wardrobe

import (
	"math"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{"#FF7F50", RGB{255, 127, 80}, false},
		{"ff7f50", RGB{255, 127, 80}, false},
		{"#fff", RGB{255, 255, 255}, false},
		{" #000080 ", RGB{0, 0, 128}, false},
		{"#12345", RGB{}, true},
		{"#GGGGGG", RGB{}, true},
		{"", RGB{}, true},
	}

	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRGB_HexAndDistance(t *testing.T) {
	c := RGB{R: 0x19, G: 0x19, B: 0x70}
	if c.Hex() != "#191970" {
		t.Errorf("Hex() = %q", c.Hex())
	}

	d := RGB{}.Distance(RGB{R: 3, G: 4})
	if math.Abs(d-5) > 1e-9 {
		t.Errorf("Distance() = %v, want 5", d)
	}
}

func TestColorFamily_Properties(t *testing.T) {
	for _, f := range []ColorFamily{ColorBlack, ColorWhite, ColorGray, ColorBeige, ColorNavy, ColorBrown, ColorTan, ColorCream} {
		if !f.IsNeutral() {
			t.Errorf("%q should be neutral", f)
		}
	}
	if ColorBlue.IsNeutral() {
		t.Error("blue should not be neutral")
	}
	if _, ok := ColorMulticolor.ReferenceRGB(); ok {
		t.Error("multicolor should have no reference swatch")
	}
	if !ColorMulticolor.Valid() {
		t.Error("multicolor should be valid")
	}
	if ColorUnknown.Valid() {
		t.Error("unknown should not be valid")
	}
}

func TestColor_RGBFallback(t *testing.T) {
	c := Color{Family: ColorNavy}
	rgb, ok := c.RGB()
	if !ok || rgb != (RGB{0, 0, 128}) {
		t.Errorf("RGB() = %v, %v, want navy reference", rgb, ok)
	}

	c = Color{Family: ColorNavy, Hex: "#191970"}
	rgb, _ = c.RGB()
	if rgb != (RGB{0x19, 0x19, 0x70}) {
		t.Errorf("RGB() = %v, want hex swatch", rgb)
	}

	if _, ok := (Color{Family: ColorMulticolor}).RGB(); ok {
		t.Error("multicolor without hex should have no RGB")
	}
}

func TestParseColorFamily(t *testing.T) {
	if f, err := ParseColorFamily("Grey"); err != nil || f != ColorGray {
		t.Errorf("ParseColorFamily(Grey) = %q, %v", f, err)
	}
	if _, err := ParseColorFamily(""); err == nil {
		t.Error("expected error for empty family")
	}
	if _, err := ParseColorFamily("chartreuse"); err == nil {
		t.Error("expected error for unknown family")
	}
}

func TestNearestFamily(t *testing.T) {
	tests := []struct {
		in   RGB
		want ColorFamily
	}{
		{RGB{0, 0, 0}, ColorBlack},
		{RGB{10, 10, 120}, ColorNavy},
		{RGB{250, 250, 250}, ColorWhite},
		{RGB{255, 126, 81}, ColorCoral},
	}
	for _, tt := range tests {
		if got := NearestFamily(tt.in); got != tt.want {
			t.Errorf("NearestFamily(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
