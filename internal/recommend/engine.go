// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package recommend

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/stylist/internal/recommend/scoring"
	"github.com/tomtom215/stylist/internal/wardrobe"
)

// Note: This package has no dependencies on other internal packages besides
// the domain model. DataProvider and ResultCache let the database and cache
// layers plug in without circular imports.

// recommendedColorCount is the number of excellent palette colors reported in
// the user analysis.
const recommendedColorCount = 5

// APIVersion is reported in result metadata.
const APIVersion = "v1"

// Engine orchestrates fetching, generation, ranking and formatting.
// It is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger

	pairing   *scoring.PairingEngine
	generator *Generator

	rerankers []Reranker
	rrMu      sync.RWMutex

	dataProvider DataProvider
	cache        ResultCache

	// generations holds a *atomic.Uint64 per user, bumped on invalidation.
	// A result is cached only if its user's generation did not move while
	// it was being built.
	generations sync.Map

	// now is the clock used for season and time of day.
	now func() time.Time

	requestCount    atomic.Int64
	cacheHits       atomic.Int64
	cacheMisses     atomic.Int64
	errorCount      atomic.Int64
	emptyCount      atomic.Int64
	candidatesTotal atomic.Int64
}

// NewEngine creates a new recommendation engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pairing, err := scoring.NewPairingEngine(scoring.DefaultPalette(), cfg.Weights, cfg.Thresholds)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return &Engine{
		config:    cfg,
		logger:    logger.With().Str("component", "recommend").Logger(),
		pairing:   pairing,
		generator: NewGenerator(pairing, cfg.Generation),
		rerankers: make([]Reranker, 0),
		now:       time.Now,
	}, nil
}

// SetDataProvider sets the wardrobe source.
func (e *Engine) SetDataProvider(dp DataProvider) {
	e.dataProvider = dp
}

// SetCache sets the result cache. Caching is skipped when unset or when
// Config.Cache.Enabled is false.
func (e *Engine) SetCache(c ResultCache) {
	e.cache = c
}

// SetClock overrides the clock used to derive season and time of day.
func (e *Engine) SetClock(now func() time.Time) {
	e.now = now
}

// RegisterReranker adds a reranker to the post-processing pipeline.
func (e *Engine) RegisterReranker(rr Reranker) {
	e.rrMu.Lock()
	defer e.rrMu.Unlock()

	e.rerankers = append(e.rerankers, rr)
	e.logger.Info().
		Str("reranker", rr.Name()).
		Msg("registered reranker")
}

// Pairing returns the pairing engine used for scoring.
func (e *Engine) Pairing() *scoring.PairingEngine {
	return e.pairing
}

// Recommend generates ranked outfit recommendations for a user.
//
// An empty wardrobe is reported as an unsuccessful Result, not an error.
// Fetch and generation failures are returned wrapped in ErrGenerationFailed.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()
	e.requestCount.Add(1)

	req = e.prepareRequest(req)
	logger := e.createRequestLogger(req)
	logger.Debug().Msg("processing recommendation request")

	if e.dataProvider == nil {
		e.errorCount.Add(1)
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, ErrNoDataProvider)
	}

	ctx, cancel := context.WithTimeout(ctx, e.config.Limits.RequestTimeout)
	defer cancel()

	now := e.now()
	key := e.cacheKey(req, now)
	if res := e.tryGetCachedResult(key, start, logger); res != nil {
		return res, nil
	}
	gen := e.generation(req.UserID).Load()

	items, err := e.dataProvider.FetchWardrobe(ctx, req.UserID)
	if err != nil {
		e.errorCount.Add(1)
		return nil, fmt.Errorf("%w: fetch wardrobe: %w", ErrGenerationFailed, err)
	}

	if len(items) == 0 {
		e.emptyCount.Add(1)
		logger.Debug().Msg("empty wardrobe")
		return e.emptyWardrobeResult(req, start), nil
	}

	profile, err := e.dataProvider.FetchUserProfile(ctx, req.UserID)
	if err != nil {
		e.errorCount.Add(1)
		return nil, fmt.Errorf("%w: fetch profile: %w", ErrGenerationFailed, err)
	}

	rc := Context{
		Occasion:   req.Occasion,
		Weather:    req.Weather,
		Season:     SeasonAt(now),
		TimeOfDay:  TimeOfDayAt(now),
		SkinTone:   ResolveSkinTone(req, profile),
		MaxResults: req.MaxResults,
	}

	candidates, evaluated, err := e.generator.Generate(ctx, items, rc)
	if err != nil {
		e.errorCount.Add(1)
		return nil, fmt.Errorf("%w: generate: %w", ErrGenerationFailed, err)
	}
	e.candidatesTotal.Add(int64(evaluated))

	ranked := NewRanker(e.getRerankers()...).Rank(ctx, candidates, rc.MaxResults, req.ItemID)

	res := e.buildResult(req, rc, ranked, len(items), evaluated, start)
	e.cacheResult(req.UserID, gen, key, res)

	logger.Debug().
		Int("wardrobe_size", len(items)).
		Int("pairs_evaluated", evaluated).
		Int("candidates", len(candidates)).
		Int("returned", len(ranked)).
		Int64("latency_ms", res.Metadata.LatencyMS).
		Msg("recommendation complete")

	return res, nil
}

// prepareRequest applies defaults and generates a request ID if needed.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) prepareRequest(req Request) Request {
	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}
	if req.Occasion == "" {
		req.Occasion = wardrobe.OccasionCasual
	}
	if req.Weather == "" {
		req.Weather = wardrobe.WeatherMild
	}
	if req.MaxResults <= 0 {
		req.MaxResults = e.config.Limits.DefaultResults
	}
	if req.MaxResults > e.config.Limits.MaxResults {
		req.MaxResults = e.config.Limits.MaxResults
	}
	return req
}

// createRequestLogger creates a logger with request context.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) createRequestLogger(req Request) zerolog.Logger {
	return e.logger.With().
		Str("request_id", req.RequestID).
		Str("user_id", req.UserID).
		Str("occasion", string(req.Occasion)).
		Logger()
}

func (e *Engine) getRerankers() []Reranker {
	e.rrMu.RLock()
	defer e.rrMu.RUnlock()
	return e.rerankers
}

//nolint:gocritic // hugeParam: req and rc passed by value for immutability
func (e *Engine) buildResult(req Request, rc Context, ranked []Outfit, wardrobeSize, evaluated int, start time.Time) *Result {
	colors := e.pairing.Colors()
	recs := make([]Recommendation, len(ranked))
	for i := range ranked {
		recs[i] = FormatOutfit(&ranked[i], rc, colors)
	}

	recommended := colors.Palette().Recommended(rc.SkinTone, scoring.BucketExcellent, recommendedColorCount)
	if recommended == nil {
		recommended = []string{}
	}

	return &Result{
		Success:         true,
		Recommendations: recs,
		RequestContext: &RequestContext{
			Occasion:   rc.Occasion,
			Weather:    rc.Weather,
			Season:     rc.Season,
			TimeOfDay:  rc.TimeOfDay,
			MaxResults: rc.MaxResults,
			ItemID:     req.ItemID,
		},
		UserAnalysis: &UserAnalysis{
			SkinTone:          rc.SkinTone.Undertone,
			Undertone:         rc.SkinTone.Undertone,
			Depth:             rc.SkinTone.Depth,
			Confidence:        round2(rc.SkinTone.Confidence),
			WardrobeSize:      wardrobeSize,
			RecommendedColors: recommended,
		},
		Metadata: e.buildMetadata(req, evaluated, start),
	}
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) buildMetadata(req Request, evaluated int, start time.Time) ResultMetadata {
	return ResultMetadata{
		RequestID:           req.RequestID,
		GeneratedAt:         e.now().UTC(),
		APIVersion:          APIVersion,
		AlgorithmVersion:    AlgorithmVersion,
		CandidatesEvaluated: evaluated,
		LatencyMS:           time.Since(start).Milliseconds(),
	}
}

// emptyWardrobeResult is returned without invoking the generator.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) emptyWardrobeResult(req Request, start time.Time) *Result {
	return &Result{
		Success:         false,
		Error:           NoWardrobeMessage,
		Recommendations: []Recommendation{},
		Metadata:        e.buildMetadata(req, 0, start),
	}
}

// cacheKey identifies a request. Keys start with the user prefix so a
// wardrobe change can drop every entry of that user.
//
//nolint:gocritic // hugeParam: req passed by value for simplicity
func (e *Engine) cacheKey(req Request, now time.Time) string {
	sample := ""
	if req.SkinSample != nil {
		sample = req.SkinSample.Hex()
	}
	return fmt.Sprintf("%s%s|%s|%s|%s|%d|%s|%s|%s",
		userPrefix(req.UserID), req.Occasion, req.Weather, req.SkinTone, sample,
		req.MaxResults, req.ItemID, SeasonAt(now), TimeOfDayAt(now))
}

func userPrefix(userID string) string {
	return "rec:" + strings.ReplaceAll(userID, "|", "_") + "|"
}

// tryGetCachedResult returns a copy of a cached result marked as a hit.
func (e *Engine) tryGetCachedResult(key string, start time.Time, logger zerolog.Logger) *Result {
	if !e.config.Cache.Enabled || e.cache == nil {
		return nil
	}

	cached, ok := e.cache.Get(key)
	if !ok {
		e.cacheMisses.Add(1)
		return nil
	}

	e.cacheHits.Add(1)
	res := *cached
	res.Metadata.CacheHit = true
	res.Metadata.LatencyMS = time.Since(start).Milliseconds()
	logger.Debug().Msg("cache hit")
	return &res
}

// cacheResult stores res unless the user was invalidated after gen was read.
func (e *Engine) cacheResult(userID string, gen uint64, key string, res *Result) {
	if !e.config.Cache.Enabled || e.cache == nil {
		return
	}
	if e.generation(userID).Load() != gen {
		e.logger.Debug().Str("user_id", userID).Msg("wardrobe changed during request, result not cached")
		return
	}
	e.cache.Set(key, res, e.config.Cache.TTL)
}

func (e *Engine) generation(userID string) *atomic.Uint64 {
	if g, ok := e.generations.Load(userID); ok {
		return g.(*atomic.Uint64)
	}
	g, _ := e.generations.LoadOrStore(userID, new(atomic.Uint64))
	return g.(*atomic.Uint64)
}

// InvalidateUser drops every cached result of a user and stops in-flight
// requests from caching results built before the call. It returns the
// number of entries removed.
func (e *Engine) InvalidateUser(userID string) int {
	e.generation(userID).Add(1)
	if e.cache == nil {
		return 0
	}
	n := e.cache.DeletePrefix(userPrefix(userID))
	if n > 0 {
		e.logger.Debug().
			Str("user_id", userID).
			Int("entries", n).
			Msg("invalidated cached recommendations")
	}
	return n
}

// ScorePairing scores two garments outside of a recommendation request.
//
//nolint:gocritic // hugeParam: garments are immutable values
func (e *Engine) ScorePairing(a, b wardrobe.Garment, occasion wardrobe.Occasion, skin wardrobe.SkinToneProfile) scoring.CompatibilityScore {
	return e.pairing.ScorePairing(a, b, occasion, skin)
}

// PairingsRequest asks for the best partners of one wardrobe garment.
type PairingsRequest struct {
	UserID     string
	GarmentID  string
	Occasion   wardrobe.Occasion
	SkinTone   wardrobe.Undertone
	SkinSample *wardrobe.RGB
	MaxResults int
}

// PairingMatch is one partner garment with its score against the target.
type PairingMatch struct {
	Item  ItemSummary                `json:"item"`
	Score scoring.CompatibilityScore `json:"compatibility_score"`
}

// PairingsResult lists the best partners of a garment.
type PairingsResult struct {
	Target   ItemSummary              `json:"target"`
	Occasion wardrobe.Occasion        `json:"occasion"`
	SkinTone wardrobe.SkinToneProfile `json:"skin_tone"`
	Pairings []PairingMatch           `json:"pairings"`
}

// BestPairings ranks the user's garments that can be worn with GarmentID.
// Results are not cached. A target missing from the wardrobe yields
// ErrGarmentNotFound.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) BestPairings(ctx context.Context, req PairingsRequest) (*PairingsResult, error) {
	if e.dataProvider == nil {
		return nil, ErrNoDataProvider
	}
	if req.Occasion == "" {
		req.Occasion = wardrobe.OccasionCasual
	}
	if req.MaxResults <= 0 || req.MaxResults > scoring.DefaultBestPairings {
		req.MaxResults = scoring.DefaultBestPairings
	}

	ctx, cancel := context.WithTimeout(ctx, e.config.Limits.RequestTimeout)
	defer cancel()

	items, err := e.dataProvider.FetchWardrobe(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("fetch wardrobe: %w", err)
	}
	idx := -1
	for i := range items {
		if items[i].ID() == req.GarmentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrGarmentNotFound, req.GarmentID)
	}
	target := items[idx]

	profile, err := e.dataProvider.FetchUserProfile(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}
	skin := ResolveSkinTone(Request{SkinTone: req.SkinTone, SkinSample: req.SkinSample}, profile)

	partners := e.pairing.BestPairings(target, items, req.Occasion, skin, req.MaxResults)
	res := &PairingsResult{
		Target:   summarize(target),
		Occasion: req.Occasion,
		SkinTone: skin,
		Pairings: make([]PairingMatch, len(partners)),
	}
	for i := range partners {
		res.Pairings[i] = PairingMatch{Item: summarize(partners[i].Item), Score: partners[i].Score}
	}

	e.logger.Debug().
		Str("user_id", req.UserID).
		Str("garment_id", req.GarmentID).
		Int("wardrobe_size", len(items)).
		Int("returned", len(partners)).
		Msg("best pairings computed")

	return res, nil
}

// ValidateOutfit checks a user-assembled outfit.
func (e *Engine) ValidateOutfit(items []wardrobe.Garment, occasion wardrobe.Occasion, skin wardrobe.SkinToneProfile) scoring.OutfitValidation {
	return e.pairing.ValidateOutfit(items, occasion, skin)
}

// SkinToneAnalysis is a classified skin sample with its palette.
type SkinToneAnalysis struct {
	Profile   wardrobe.SkinToneProfile `json:"profile"`
	Excellent []string                 `json:"excellent"`
	Good      []string                 `json:"good"`
	Fair      []string                 `json:"fair"`
	Avoid     []string                 `json:"avoid"`
}

// AnalyzeSkinTone classifies a sample and lists its palette buckets.
func (e *Engine) AnalyzeSkinTone(c wardrobe.RGB) SkinToneAnalysis {
	profile := scoring.AnalyzeSkinTone(c)
	p := e.pairing.Colors().Palette()
	return SkinToneAnalysis{
		Profile:   profile,
		Excellent: p.Recommended(profile, scoring.BucketExcellent, 0),
		Good:      p.Recommended(profile, scoring.BucketGood, 0),
		Fair:      p.Recommended(profile, scoring.BucketFair, 0),
		Avoid:     p.Recommended(profile, scoring.BucketAvoid, 0),
	}
}

// GetMetrics returns the current engine counters.
func (e *Engine) GetMetrics() Metrics {
	return Metrics{
		RequestCount:       e.requestCount.Load(),
		CacheHits:          e.cacheHits.Load(),
		CacheMisses:        e.cacheMisses.Load(),
		ErrorCount:         e.errorCount.Load(),
		EmptyWardrobeCount: e.emptyCount.Load(),
		CandidatesTotal:    e.candidatesTotal.Load(),
	}
}

// GetConfig returns a copy of the current configuration.
func (e *Engine) GetConfig() *Config {
	return e.config.Clone()
}
