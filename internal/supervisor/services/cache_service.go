// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// MaintenanceTask is one sweep of a result cache: expiring LRU entries or
// collecting the badger value log.
type MaintenanceTask interface {
	Maintain(ctx context.Context) error
}

// MaintenanceFunc adapts a function to MaintenanceTask.
type MaintenanceFunc func(ctx context.Context) error

// Maintain calls f.
func (f MaintenanceFunc) Maintain(ctx context.Context) error { return f(ctx) }

// CacheMaintenanceConfig holds configuration for the maintenance service.
type CacheMaintenanceConfig struct {
	// Interval between sweeps. Default: 5m
	Interval time.Duration

	// Timeout bounds a single sweep. Default: Interval
	Timeout time.Duration
}

// CacheMaintenanceService runs a MaintenanceTask on a ticker. Sweep errors
// are logged and do not stop the service, so a transient badger error does
// not cost a supervisor restart.
type CacheMaintenanceService struct {
	task   MaintenanceTask
	config CacheMaintenanceConfig
	logger zerolog.Logger
	name   string
}

// NewCacheMaintenanceService creates a maintenance service for task.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCacheMaintenanceService(task MaintenanceTask, cfg CacheMaintenanceConfig, logger zerolog.Logger) *CacheMaintenanceService {
	if cfg.Interval <= 0 {
		cfg.Interval = 5 * time.Minute
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = cfg.Interval
	}
	return &CacheMaintenanceService{
		task:   task,
		config: cfg,
		logger: logger.With().Str("service", "cache-maintenance").Logger(),
		name:   "cache-maintenance",
	}
}

// Serve implements suture.Service.
func (s *CacheMaintenanceService) Serve(ctx context.Context) error {
	s.logger.Info().Dur("interval", s.config.Interval).Msg("cache maintenance starting")

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("cache maintenance shutting down")
			return ctx.Err()

		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *CacheMaintenanceService) sweep(ctx context.Context) {
	sweepCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	start := time.Now()
	if err := s.task.Maintain(sweepCtx); err != nil {
		s.logger.Warn().Err(err).Msg("cache maintenance failed")
		return
	}
	s.logger.Debug().Dur("duration", time.Since(start)).Msg("cache maintenance complete")
}

// String returns the service name for logging.
func (s *CacheMaintenanceService) String() string {
	return s.name
}
