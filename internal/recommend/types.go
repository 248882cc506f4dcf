// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package recommend

import (
	"context"
	"errors"
	"time"

	"github.com/tomtom215/stylist/internal/recommend/scoring"
	"github.com/tomtom215/stylist/internal/wardrobe"
)

// Sentinel errors returned by the engine.
var (
	// ErrGenerationFailed wraps any failure to fetch the wardrobe snapshot or
	// to finish generation.
	ErrGenerationFailed = errors.New("recommendation generation failed")

	// ErrInvalidConfig is returned for an invalid Config.
	ErrInvalidConfig = errors.New("invalid recommend config")

	// ErrNoDataProvider is returned when Recommend is called before
	// SetDataProvider.
	ErrNoDataProvider = errors.New("data provider not set")

	// ErrGarmentNotFound is returned by BestPairings when the target garment
	// is not in the user's wardrobe.
	ErrGarmentNotFound = errors.New("garment not found in wardrobe")
)

// NoWardrobeMessage is the error text of the empty-wardrobe result.
const NoWardrobeMessage = "No wardrobe items found for user"

// TimeOfDay buckets the request clock hour.
type TimeOfDay string

const (
	TimeMorning   TimeOfDay = "morning"
	TimeAfternoon TimeOfDay = "afternoon"
	TimeEvening   TimeOfDay = "evening"
	TimeNight     TimeOfDay = "night"
)

// Context is the read-only configuration threaded through one recommendation.
type Context struct {
	Occasion   wardrobe.Occasion        `json:"occasion"`
	Weather    wardrobe.Weather         `json:"weather"`
	Season     wardrobe.Season          `json:"season"`
	TimeOfDay  TimeOfDay                `json:"time_of_day"`
	SkinTone   wardrobe.SkinToneProfile `json:"skin_tone"`
	MaxResults int                      `json:"max_results"`
}

// Request is a recommendation request for one user.
type Request struct {
	// RequestID is used for log correlation. Generated when empty.
	RequestID string

	// UserID owns the wardrobe.
	UserID string

	// Occasion defaults to casual.
	Occasion wardrobe.Occasion

	// Weather defaults to mild.
	Weather wardrobe.Weather

	// SkinTone overrides the stored undertone when set.
	SkinTone wardrobe.Undertone

	// SkinSample overrides any stored skin information when set.
	SkinSample *wardrobe.RGB

	// MaxResults defaults to Config.Limits.DefaultResults and is capped at
	// Config.Limits.MaxResults.
	MaxResults int

	// ItemID keeps only outfits containing that garment.
	ItemID string
}

// Outfit is a candidate or ranked outfit.
type Outfit struct {
	// ID is "outfit_{rank}" once ranked.
	ID string

	// Rank is 1-based once ranked, 0 for candidates.
	Rank int

	// Items holds top, bottom and then the optional shoes and accessory.
	Items []wardrobe.Garment

	// Score is the aggregate outfit score.
	Score float64

	// Level is the recommendation level of Score.
	Level scoring.Level

	// Pair is the top/bottom compatibility score.
	Pair scoring.CompatibilityScore

	// ShoeScore and AccessoryScore are the averaged scores of the attached
	// items, zero when absent.
	ShoeScore      float64
	AccessoryScore float64

	// index is the enumeration position, top-major then bottom-minor.
	index int
}

// Index returns the enumeration position of the candidate.
func (o *Outfit) Index() int { return o.index }

// Contains reports whether the outfit includes garment id.
func (o *Outfit) Contains(id string) bool {
	for _, g := range o.Items {
		if g.ID() == id {
			return true
		}
	}
	return false
}

// ItemIDs returns the garment IDs in outfit order.
func (o *Outfit) ItemIDs() []string {
	ids := make([]string, len(o.Items))
	for i, g := range o.Items {
		ids[i] = g.ID()
	}
	return ids
}

// DataProvider fetches the wardrobe snapshot. It is implemented by the
// database layer.
type DataProvider interface {
	// FetchWardrobe returns the user's garments. Garments without a category
	// or color never reach the engine.
	FetchWardrobe(ctx context.Context, userID string) ([]wardrobe.Garment, error)

	// FetchUserProfile returns the stored profile, or nil when the user has
	// none.
	FetchUserProfile(ctx context.Context, userID string) (*wardrobe.UserProfile, error)
}

// ResultCache stores formatted results keyed by request. Implementations
// must be safe for concurrent use.
type ResultCache interface {
	Get(key string) (*Result, bool)
	Set(key string, r *Result, ttl time.Duration)
	// DeletePrefix removes every key beginning with prefix.
	DeletePrefix(prefix string) int
}

// Reranker reorders ranked candidates before truncation.
type Reranker interface {
	// Name returns the reranker name for logging.
	Name() string

	// Rerank returns at most k outfits from the score-sorted input.
	Rerank(ctx context.Context, outfits []Outfit, k int) []Outfit
}

// Result is the formatted recommendation payload.
type Result struct {
	Success         bool             `json:"success"`
	Error           string           `json:"error,omitempty"`
	Recommendations []Recommendation `json:"recommendations"`
	RequestContext  *RequestContext  `json:"request_context,omitempty"`
	UserAnalysis    *UserAnalysis    `json:"user_analysis,omitempty"`
	Metadata        ResultMetadata   `json:"metadata"`
}

// Recommendation is one ranked outfit.
type Recommendation struct {
	OutfitID            string            `json:"outfit_id"`
	Rank                int               `json:"rank"`
	ConfidenceScore     float64           `json:"confidence_score"`
	RecommendationLevel scoring.Level     `json:"recommendation_level"`
	Items               []ItemSummary     `json:"items"`
	StylingAnalysis     StylingAnalysis   `json:"styling_analysis"`
	StylingTips         []string          `json:"styling_tips"`
	ColorCoordination   ColorCoordination `json:"color_coordination"`
}

// ItemSummary describes one garment of a recommended outfit.
type ItemSummary struct {
	ID          string            `json:"id"`
	Name        string            `json:"name,omitempty"`
	Category    wardrobe.Category `json:"category"`
	Subcategory string            `json:"subcategory,omitempty"`
	Color       string            `json:"color"`
	Pattern     wardrobe.Pattern  `json:"pattern"`
	Style       wardrobe.Style    `json:"style"`
	ImageURL    string            `json:"image_url,omitempty"`
}

// StylingAnalysis mirrors the pairing breakdown, rounded to two decimals.
type StylingAnalysis struct {
	FormalityScore            float64 `json:"formality_score"`
	ColorHarmonyScore         float64 `json:"color_harmony_score"`
	StyleCoherenceScore       float64 `json:"style_coherence_score"`
	PatternCompatibilityScore float64 `json:"pattern_compatibility_score"`
}

// ColorCoordination explains the color choices of an outfit.
type ColorCoordination struct {
	PrimaryPalette        []string            `json:"primary_palette"`
	SkinToneCompatibility string              `json:"skin_tone_compatibility"`
	HarmonyType           scoring.HarmonyType `json:"harmony_type"`
	StylingAdvice         []string            `json:"styling_advice"`
}

// RequestContext echoes the resolved context.
type RequestContext struct {
	Occasion   wardrobe.Occasion `json:"occasion"`
	Weather    wardrobe.Weather  `json:"weather"`
	Season     wardrobe.Season   `json:"season"`
	TimeOfDay  TimeOfDay         `json:"time_of_day"`
	MaxResults int               `json:"max_recommendations"`
	ItemID     string            `json:"item_id,omitempty"`
}

// UserAnalysis describes the resolved wearer profile.
type UserAnalysis struct {
	SkinTone          wardrobe.Undertone `json:"skin_tone"`
	Undertone         wardrobe.Undertone `json:"undertone"`
	Depth             wardrobe.Depth     `json:"depth"`
	Confidence        float64            `json:"confidence"`
	WardrobeSize      int                `json:"wardrobe_size"`
	RecommendedColors []string           `json:"recommended_colors"`
}

// ResultMetadata carries generation details.
type ResultMetadata struct {
	RequestID           string    `json:"request_id,omitempty"`
	GeneratedAt         time.Time `json:"generated_at"`
	APIVersion          string    `json:"api_version"`
	AlgorithmVersion    string    `json:"algorithm_version"`
	CacheHit            bool      `json:"cache_hit"`
	CandidatesEvaluated int       `json:"candidates_evaluated"`
	LatencyMS           int64     `json:"latency_ms"`
}

// Metrics contains engine counters.
type Metrics struct {
	RequestCount       int64 `json:"request_count"`
	CacheHits          int64 `json:"cache_hits"`
	CacheMisses        int64 `json:"cache_misses"`
	ErrorCount         int64 `json:"error_count"`
	EmptyWardrobeCount int64 `json:"empty_wardrobe_count"`
	CandidatesTotal    int64 `json:"candidates_total"`
}
