// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package main

import (
	"context"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"

	"github.com/tomtom215/stylist/internal/cache"
	"github.com/tomtom215/stylist/internal/config"
	"github.com/tomtom215/stylist/internal/recommend"
	"github.com/tomtom215/stylist/internal/recommend/reranking"
	"github.com/tomtom215/stylist/internal/recommend/scoring"
	"github.com/tomtom215/stylist/internal/recommend/storage"
	"github.com/tomtom215/stylist/internal/supervisor/services"
)

// buildEngineConfig maps application config onto the engine config. Pairing
// thresholds are not exposed and keep their defaults.
func buildEngineConfig(cfg *config.Config) *recommend.Config {
	rc := cfg.Recommend
	ec := recommend.DefaultConfig()

	ec.Weights = scoring.Weights{
		Formality: rc.WeightFormality,
		Color:     rc.WeightColor,
		Style:     rc.WeightStyle,
		Pattern:   rc.WeightPattern,
	}
	ec.Generation = recommend.GenerationConfig{
		MinPairScore:       rc.MinPairScore,
		AccessoryThreshold: rc.AccessoryThreshold,
		Workers:            rc.Workers,
	}
	ec.Diversity = recommend.DiversityConfig{
		Enabled:   rc.DiversityEnabled,
		MMRLambda: rc.DiversityLambda,
	}
	ec.Limits = recommend.LimitsConfig{
		DefaultResults: rc.DefaultResults,
		MaxResults:     rc.MaxResults,
		RequestTimeout: rc.RequestTimeout,
	}
	ec.Cache = recommend.CacheConfig{
		Enabled: rc.CacheEnabled,
		TTL:     rc.CacheTTL,
	}
	return ec
}

// initEngine creates the engine and registers the MMR reranker when enabled.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initEngine(cfg *config.Config, logger zerolog.Logger) (*recommend.Engine, error) {
	ec := buildEngineConfig(cfg)
	engine, err := recommend.NewEngine(ec, logger)
	if err != nil {
		return nil, fmt.Errorf("create recommendation engine: %w", err)
	}

	if ec.Diversity.Enabled {
		engine.RegisterReranker(reranking.NewMMR(ec.Diversity.MMRLambda))
		logger.Info().Float64("lambda", ec.Diversity.MMRLambda).Msg("MMR diversity reranker enabled")
	}
	return engine, nil
}

// resultCache is the configured cache with its maintenance task and an
// optional closer for the badger store.
type resultCache struct {
	cache       recommend.ResultCache
	maintenance services.MaintenanceTask
	close       func() error
}

// initResultCache opens the backend selected by cfg.Cache. It returns nil
// when result caching is disabled.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initResultCache(cfg *config.Config, logger zerolog.Logger) (*resultCache, error) {
	if !cfg.Recommend.CacheEnabled {
		logger.Info().Msg("Result cache disabled")
		return nil, nil
	}

	switch cfg.Cache.Backend {
	case config.CacheBackendBadger:
		db, err := storage.Open(storage.Options{
			Dir:         cfg.Cache.Dir,
			SyncWrites:  cfg.Cache.SyncWrites,
			Compression: true,
		}, logger)
		if err != nil {
			return nil, err
		}
		bc := storage.NewBadgerCache(db, logger)
		ratio := cfg.Cache.GCRatio
		return &resultCache{
			cache: bc,
			maintenance: services.MaintenanceFunc(func(context.Context) error {
				return bc.CollectGarbage(ratio)
			}),
			close: badgerCloser(db),
		}, nil

	default:
		lru := cache.NewLRU[*recommend.Result](cfg.Cache.Capacity, cfg.Recommend.CacheTTL).Named("results")
		return &resultCache{
			cache: lru,
			maintenance: services.MaintenanceFunc(func(context.Context) error {
				if n := lru.CleanupExpired(); n > 0 {
					logger.Debug().Int("removed", n).Msg("Expired cached results removed")
				}
				return nil
			}),
			close: func() error { return nil },
		}, nil
	}
}

func badgerCloser(db *badger.DB) func() error {
	return func() error {
		if err := db.Close(); err != nil {
			return fmt.Errorf("close result cache store: %w", err)
		}
		return nil
	}
}
