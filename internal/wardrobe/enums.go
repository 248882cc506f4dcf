// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package wardrobe

import (
	"fmt"
	"strings"
)

// Category is the garment slot an item fills in an outfit.
type Category string

const (
	CategoryTop       Category = "top"
	CategoryBottom    Category = "bottom"
	CategoryDress     Category = "dress"
	CategoryShoes     Category = "shoes"
	CategoryAccessory Category = "accessory"
	CategoryOuterwear Category = "outerwear"
)

var categories = enumSet(CategoryTop, CategoryBottom, CategoryDress, CategoryShoes, CategoryAccessory, CategoryOuterwear)

// Valid reports whether c is a known category.
func (c Category) Valid() bool { _, ok := categories[c]; return ok }

// ParseCategory parses a canonical category name.
func ParseCategory(s string) (Category, error) { return parseEnum("category", s, categories) }

// Pattern is the print or weave classification of a garment.
type Pattern string

const (
	PatternSolid       Pattern = "solid"
	PatternStripes     Pattern = "stripes"
	PatternFloral      Pattern = "floral"
	PatternGeometric   Pattern = "geometric"
	PatternPlaid       Pattern = "plaid"
	PatternDots        Pattern = "dots"
	PatternSmallChecks Pattern = "small_checks"
	PatternPinstripe   Pattern = "pinstripe"
	PatternAnimalPrint Pattern = "animal_print"
	PatternGraphic     Pattern = "graphic"
	PatternAbstract    Pattern = "abstract"
)

var patterns = enumSet(PatternSolid, PatternStripes, PatternFloral, PatternGeometric, PatternPlaid,
	PatternDots, PatternSmallChecks, PatternPinstripe, PatternAnimalPrint, PatternGraphic, PatternAbstract)

// Valid reports whether p is a known pattern.
func (p Pattern) Valid() bool { _, ok := patterns[p]; return ok }

// IsSolid reports whether the pattern is a plain solid.
func (p Pattern) IsSolid() bool { return p == PatternSolid }

// ParsePattern parses a canonical pattern name.
func ParsePattern(s string) (Pattern, error) { return parseEnum("pattern", s, patterns) }

// Style is a dress-code style keyword.
type Style string

const (
	StyleCasual         Style = "casual"
	StyleSmartCasual    Style = "smart_casual"
	StyleBusinessCasual Style = "business_casual"
	StyleFormal         Style = "formal"
	StyleStreetwear     Style = "streetwear"
	StyleSporty         Style = "sporty"
)

var styles = enumSet(StyleCasual, StyleSmartCasual, StyleBusinessCasual, StyleFormal, StyleStreetwear, StyleSporty)

// Valid reports whether s is a known style.
func (s Style) Valid() bool { _, ok := styles[s]; return ok }

// ParseStyle parses a canonical style name.
func ParseStyle(s string) (Style, error) { return parseEnum("style", s, styles) }

// Occasion is the event an outfit is being assembled for.
type Occasion string

const (
	OccasionCasual         Occasion = "casual"
	OccasionFormal         Occasion = "formal"
	OccasionBusinessCasual Occasion = "business_casual"
	OccasionSmartCasual    Occasion = "smart_casual"
	OccasionWork           Occasion = "work"
	OccasionDate           Occasion = "date"
	OccasionParty          Occasion = "party"
	OccasionWeekend        Occasion = "weekend"
)

var occasions = enumSet(OccasionCasual, OccasionFormal, OccasionBusinessCasual, OccasionSmartCasual,
	OccasionWork, OccasionDate, OccasionParty, OccasionWeekend)

// Valid reports whether o is a known occasion.
func (o Occasion) Valid() bool { _, ok := occasions[o]; return ok }

// ParseOccasion parses a canonical occasion name.
func ParseOccasion(s string) (Occasion, error) { return parseEnum("occasion", s, occasions) }

// Weather is the coarse weather condition for the day.
type Weather string

const (
	WeatherHot   Weather = "hot"
	WeatherWarm  Weather = "warm"
	WeatherMild  Weather = "mild"
	WeatherCool  Weather = "cool"
	WeatherCold  Weather = "cold"
	WeatherRainy Weather = "rainy"
	WeatherSunny Weather = "sunny"
)

var weathers = enumSet(WeatherHot, WeatherWarm, WeatherMild, WeatherCool, WeatherCold, WeatherRainy, WeatherSunny)

// Valid reports whether w is a known weather condition.
func (w Weather) Valid() bool { _, ok := weathers[w]; return ok }

// ParseWeather parses a canonical weather name.
func ParseWeather(s string) (Weather, error) { return parseEnum("weather", s, weathers) }

// Season is a calendar season.
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	SeasonWinter Season = "winter"
)

// AllSeasons lists every season in calendar order.
var AllSeasons = []Season{SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter}

var seasons = enumSet(AllSeasons...)

// Valid reports whether s is a known season.
func (s Season) Valid() bool { _, ok := seasons[s]; return ok }

// ParseSeason parses a canonical season name. "fall" is accepted for autumn.
func ParseSeason(s string) (Season, error) {
	if strings.EqualFold(strings.TrimSpace(s), "fall") {
		return SeasonAutumn, nil
	}
	return parseEnum("season", s, seasons)
}

// Fit is the cut of a garment.
type Fit string

const (
	FitUnknown  Fit = ""
	FitSkinny   Fit = "skinny"
	FitSlim     Fit = "slim"
	FitRegular  Fit = "regular"
	FitRelaxed  Fit = "relaxed"
	FitOversize Fit = "oversized"
)

var fits = enumSet(FitSkinny, FitSlim, FitRegular, FitRelaxed, FitOversize)

// Valid reports whether f is a known fit. FitUnknown is valid.
func (f Fit) Valid() bool {
	if f == FitUnknown {
		return true
	}
	_, ok := fits[f]
	return ok
}

// Undertone is the color cast of a skin sample.
type Undertone string

const (
	UndertoneWarm    Undertone = "warm"
	UndertoneCool    Undertone = "cool"
	UndertoneNeutral Undertone = "neutral"
)

var undertones = enumSet(UndertoneWarm, UndertoneCool, UndertoneNeutral)

// Valid reports whether u is a known undertone.
func (u Undertone) Valid() bool { _, ok := undertones[u]; return ok }

// ParseUndertone parses a canonical undertone name.
func ParseUndertone(s string) (Undertone, error) { return parseEnum("undertone", s, undertones) }

// Depth is the lightness bucket of a skin sample.
type Depth string

const (
	DepthLight  Depth = "light"
	DepthMedium Depth = "medium"
	DepthDeep   Depth = "deep"
)

var depths = enumSet(DepthLight, DepthMedium, DepthDeep)

// Valid reports whether d is a known depth.
func (d Depth) Valid() bool { _, ok := depths[d]; return ok }

// ParseDepth parses a canonical depth name.
func ParseDepth(s string) (Depth, error) { return parseEnum("depth", s, depths) }

func enumSet[T ~string](values ...T) map[T]struct{} {
	set := make(map[T]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func parseEnum[T ~string](kind, s string, valid map[T]struct{}) (T, error) {
	v := T(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := valid[v]; !ok {
		return "", fmt.Errorf("%w: %s %q", ErrUnknownValue, kind, s)
	}
	return v, nil
}
