// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package wardrobe

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RGB is an 8-bit per channel color sample.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Hex returns the color as an upper-case "#RRGGBB" string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Distance returns the Euclidean distance between two colors in RGB space.
func (c RGB) Distance(o RGB) float64 {
	dr := float64(c.R) - float64(o.R)
	dg := float64(c.G) - float64(o.G)
	db := float64(c.B) - float64(o.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// ParseHex parses "#RRGGBB", "RRGGBB" or the short "#RGB" form.
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("%w: hex color %q", ErrUnknownValue, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: hex color %q", ErrUnknownValue, s)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// MustHex is ParseHex for package-level tables. It panics on malformed input.
func MustHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ColorFamily is the named color group a garment color belongs to.
type ColorFamily string

const (
	ColorUnknown    ColorFamily = ""
	ColorBlack      ColorFamily = "black"
	ColorWhite      ColorFamily = "white"
	ColorGray       ColorFamily = "gray"
	ColorBeige      ColorFamily = "beige"
	ColorNavy       ColorFamily = "navy"
	ColorBrown      ColorFamily = "brown"
	ColorTan        ColorFamily = "tan"
	ColorCream      ColorFamily = "cream"
	ColorRed        ColorFamily = "red"
	ColorPink       ColorFamily = "pink"
	ColorBurgundy   ColorFamily = "burgundy"
	ColorCrimson    ColorFamily = "crimson"
	ColorBlue       ColorFamily = "blue"
	ColorTeal       ColorFamily = "teal"
	ColorTurquoise  ColorFamily = "turquoise"
	ColorGreen      ColorFamily = "green"
	ColorOlive      ColorFamily = "olive"
	ColorForest     ColorFamily = "forest"
	ColorMint       ColorFamily = "mint"
	ColorYellow     ColorFamily = "yellow"
	ColorGold       ColorFamily = "gold"
	ColorIvory      ColorFamily = "ivory"
	ColorPurple     ColorFamily = "purple"
	ColorLavender   ColorFamily = "lavender"
	ColorViolet     ColorFamily = "violet"
	ColorPlum       ColorFamily = "plum"
	ColorOrange     ColorFamily = "orange"
	ColorCoral      ColorFamily = "coral"
	ColorPeach      ColorFamily = "peach"
	ColorSalmon     ColorFamily = "salmon"
	ColorMulticolor ColorFamily = "multicolor"
)

// familyRGB holds the reference swatch for each family. Multicolor has none.
var familyRGB = map[ColorFamily]RGB{
	ColorBlack:     MustHex("#000000"),
	ColorWhite:     MustHex("#FFFFFF"),
	ColorGray:      MustHex("#808080"),
	ColorBeige:     MustHex("#F5F5DC"),
	ColorNavy:      MustHex("#000080"),
	ColorBrown:     MustHex("#8B4513"),
	ColorTan:       MustHex("#D2B48C"),
	ColorCream:     MustHex("#FFFDD0"),
	ColorRed:       MustHex("#FF0000"),
	ColorPink:      MustHex("#FFC0CB"),
	ColorBurgundy:  MustHex("#800020"),
	ColorCrimson:   MustHex("#DC143C"),
	ColorBlue:      MustHex("#0000FF"),
	ColorTeal:      MustHex("#008080"),
	ColorTurquoise: MustHex("#40E0D0"),
	ColorGreen:     MustHex("#008000"),
	ColorOlive:     MustHex("#808000"),
	ColorForest:    MustHex("#228B22"),
	ColorMint:      MustHex("#98FF98"),
	ColorYellow:    MustHex("#FFFF00"),
	ColorGold:      MustHex("#FFD700"),
	ColorIvory:     MustHex("#FFFFF0"),
	ColorPurple:    MustHex("#800080"),
	ColorLavender:  MustHex("#E6E6FA"),
	ColorViolet:    MustHex("#EE82EE"),
	ColorPlum:      MustHex("#8E4585"),
	ColorOrange:    MustHex("#FFA500"),
	ColorCoral:     MustHex("#FF7F50"),
	ColorPeach:     MustHex("#FFCBA4"),
	ColorSalmon:    MustHex("#FA8072"),
}

var neutralFamilies = enumSet(ColorBlack, ColorWhite, ColorGray, ColorBeige, ColorNavy, ColorBrown, ColorTan, ColorCream)

// Valid reports whether f is a known color family.
func (f ColorFamily) Valid() bool {
	if f == ColorMulticolor {
		return true
	}
	_, ok := familyRGB[f]
	return ok
}

// IsNeutral reports whether the family anchors any palette.
func (f ColorFamily) IsNeutral() bool {
	_, ok := neutralFamilies[f]
	return ok
}

// ReferenceRGB returns the family swatch, if the family has one.
func (f ColorFamily) ReferenceRGB() (RGB, bool) {
	c, ok := familyRGB[f]
	return c, ok
}

// ParseColorFamily parses a canonical color family name. "grey" is accepted.
func ParseColorFamily(s string) (ColorFamily, error) {
	v := ColorFamily(strings.ToLower(strings.TrimSpace(s)))
	if v == "grey" {
		return ColorGray, nil
	}
	if !v.Valid() || v == ColorUnknown {
		return ColorUnknown, fmt.Errorf("%w: color family %q", ErrUnknownValue, s)
	}
	return v, nil
}

// familyOrder fixes iteration order for NearestFamily so ties resolve the
// same way on every call.
var familyOrder = []ColorFamily{
	ColorBlack, ColorWhite, ColorGray, ColorBeige, ColorNavy, ColorBrown, ColorTan, ColorCream,
	ColorRed, ColorPink, ColorBurgundy, ColorCrimson, ColorBlue, ColorTeal, ColorTurquoise,
	ColorGreen, ColorOlive, ColorForest, ColorMint, ColorYellow, ColorGold, ColorIvory,
	ColorPurple, ColorLavender, ColorViolet, ColorPlum, ColorOrange, ColorCoral, ColorPeach, ColorSalmon,
}

// NearestFamily returns the family whose reference swatch is closest to c.
func NearestFamily(c RGB) ColorFamily {
	best := ColorUnknown
	bestDist := math.Inf(1)
	for _, f := range familyOrder {
		if d := c.Distance(familyRGB[f]); d < bestDist {
			best, bestDist = f, d
		}
	}
	return best
}

// Color is a garment color: a family plus an optional exact swatch.
type Color struct {
	Family ColorFamily `json:"family"`
	Hex    string      `json:"hex,omitempty"`
}

// IsZero reports whether no color information is present.
func (c Color) IsZero() bool {
	return c.Family == ColorUnknown && c.Hex == ""
}

// RGB returns the exact swatch when a hex is present, otherwise the family
// reference. ok is false when neither is available.
func (c Color) RGB() (RGB, bool) {
	if c.Hex != "" {
		if rgb, err := ParseHex(c.Hex); err == nil {
			return rgb, true
		}
	}
	return c.Family.ReferenceRGB()
}

// Name returns the family name, or the hex when the family is unknown.
func (c Color) Name() string {
	if c.Family != ColorUnknown {
		return string(c.Family)
	}
	return c.Hex
}
