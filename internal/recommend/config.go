// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package recommend

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/stylist/internal/recommend/scoring"
)

// AlgorithmVersion identifies the scoring rules in result metadata.
const AlgorithmVersion = "rules-1.0"

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Weights defines the contribution of each pairing component.
	// Weights must sum to 1.0.
	Weights scoring.Weights `json:"weights"`

	// Thresholds maps overall scores to recommendation levels.
	Thresholds scoring.Thresholds `json:"thresholds"`

	// Generation contains outfit enumeration parameters.
	Generation GenerationConfig `json:"generation"`

	// Diversity contains parameters for diversity reranking.
	Diversity DiversityConfig `json:"diversity"`

	// Limits contains operational limits.
	Limits LimitsConfig `json:"limits"`

	// Cache contains result caching parameters.
	Cache CacheConfig `json:"cache"`
}

// GenerationConfig contains outfit enumeration parameters.
type GenerationConfig struct {
	// MinPairScore is the exclusive lower bound for keeping a top/bottom pair.
	// Default: 0.3.
	MinPairScore float64 `json:"min_pair_score"`

	// AccessoryThreshold is the exclusive lower bound for attaching an
	// accessory.
	// Default: 0.5.
	AccessoryThreshold float64 `json:"accessory_threshold"`

	// Workers is the number of goroutines scoring top/bottom pairs.
	// 1 scores sequentially.
	// Default: 4.
	Workers int `json:"workers"`
}

// DiversityConfig contains parameters for diversity reranking.
//
// With Enabled set, results are ordered by MMR selection and are no longer
// non-increasing by score; a lower-scored outfit may rank above a near
// duplicate of the one before it. Leave it off to keep score order.
type DiversityConfig struct {
	// Enabled registers the garment-overlap MMR reranker.
	// Default: false.
	Enabled bool `json:"enabled"`

	// MMRLambda balances score vs. garment diversity.
	// 1.0 = pure score, 0.0 = pure diversity.
	// Default: 0.7.
	MMRLambda float64 `json:"mmr_lambda"`
}

// LimitsConfig contains operational limits.
type LimitsConfig struct {
	// DefaultResults is the number of outfits returned when a request does
	// not say.
	// Default: 5.
	DefaultResults int `json:"default_results"`

	// MaxResults is the maximum allowed result count.
	// Default: 10.
	MaxResults int `json:"max_results"`

	// RequestTimeout bounds one recommendation request.
	// Default: 10s.
	RequestTimeout time.Duration `json:"request_timeout"`
}

// CacheConfig contains result caching parameters.
type CacheConfig struct {
	// Enabled controls whether caching is active.
	// Default: true.
	Enabled bool `json:"enabled"`

	// TTL is the cache entry time-to-live.
	// Default: 5m.
	TTL time.Duration `json:"ttl"`
}

// DefaultConfig returns a Config with production defaults.
func DefaultConfig() *Config {
	return &Config{
		Weights:    scoring.DefaultWeights(),
		Thresholds: scoring.DefaultThresholds(),
		Generation: GenerationConfig{
			MinPairScore:       0.3,
			AccessoryThreshold: 0.5,
			Workers:            4,
		},
		Diversity: DiversityConfig{
			Enabled:   false,
			MMRLambda: 0.7,
		},
		Limits: LimitsConfig{
			DefaultResults: 5,
			MaxResults:     10,
			RequestTimeout: 10 * time.Second,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     5 * time.Minute,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if err := c.Weights.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Thresholds.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if c.Generation.MinPairScore < 0 || c.Generation.MinPairScore >= 1 {
		return fmt.Errorf("%w: generation.min_pair_score must be in [0, 1), got %f", ErrInvalidConfig, c.Generation.MinPairScore)
	}
	if c.Generation.AccessoryThreshold < 0 || c.Generation.AccessoryThreshold >= 1 {
		return fmt.Errorf("%w: generation.accessory_threshold must be in [0, 1), got %f", ErrInvalidConfig, c.Generation.AccessoryThreshold)
	}
	if c.Generation.Workers < 1 {
		return fmt.Errorf("%w: generation.workers must be positive, got %d", ErrInvalidConfig, c.Generation.Workers)
	}

	if c.Diversity.MMRLambda < 0 || c.Diversity.MMRLambda > 1 {
		return fmt.Errorf("%w: diversity.mmr_lambda must be in [0, 1], got %f", ErrInvalidConfig, c.Diversity.MMRLambda)
	}

	if c.Limits.DefaultResults < 1 {
		return fmt.Errorf("%w: limits.default_results must be positive, got %d", ErrInvalidConfig, c.Limits.DefaultResults)
	}
	if c.Limits.MaxResults < c.Limits.DefaultResults {
		return fmt.Errorf("%w: limits.max_results must be >= limits.default_results, got %d < %d",
			ErrInvalidConfig, c.Limits.MaxResults, c.Limits.DefaultResults)
	}
	if c.Limits.RequestTimeout <= 0 {
		return fmt.Errorf("%w: limits.request_timeout must be positive, got %v", ErrInvalidConfig, c.Limits.RequestTimeout)
	}

	if c.Cache.Enabled && c.Cache.TTL <= 0 {
		return fmt.Errorf("%w: cache.ttl must be positive when caching is enabled, got %v", ErrInvalidConfig, c.Cache.TTL)
	}

	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	// All nested structs contain only value types.
	clone := *c
	return &clone
}

// MarshalJSON renders durations as strings.
func (c *Config) MarshalJSON() ([]byte, error) {
	type Alias Config
	type limitsJSON struct {
		DefaultResults int    `json:"default_results"`
		MaxResults     int    `json:"max_results"`
		RequestTimeout string `json:"request_timeout"`
	}
	type cacheJSON struct {
		Enabled bool   `json:"enabled"`
		TTL     string `json:"ttl"`
	}
	return json.Marshal(&struct {
		*Alias
		Limits limitsJSON `json:"limits"`
		Cache  cacheJSON  `json:"cache"`
	}{
		Alias: (*Alias)(c),
		Limits: limitsJSON{
			DefaultResults: c.Limits.DefaultResults,
			MaxResults:     c.Limits.MaxResults,
			RequestTimeout: c.Limits.RequestTimeout.String(),
		},
		Cache: cacheJSON{
			Enabled: c.Cache.Enabled,
			TTL:     c.Cache.TTL.String(),
		},
	})
}
