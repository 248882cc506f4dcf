// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/stylist/internal/api"
	"github.com/tomtom215/stylist/internal/config"
	"github.com/tomtom215/stylist/internal/database"
	"github.com/tomtom215/stylist/internal/ingest"
	"github.com/tomtom215/stylist/internal/logging"
	"github.com/tomtom215/stylist/internal/metrics"
	"github.com/tomtom215/stylist/internal/middleware"
	"github.com/tomtom215/stylist/internal/supervisor"
	"github.com/tomtom215/stylist/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const (
	// perfWindow is the number of recent requests kept for latency percentiles.
	perfWindow = 1000

	// slowRequestThreshold logs requests slower than this at warn level.
	slowRequestThreshold = time.Second
)

func main() {
	if err := run(); err != nil {
		logging.Error().Err(err).Msg("Server exited with error")
		os.Exit(1)
	}
}

//nolint:gocyclo // Sequential initialization of every layer
func run() error {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	logger := logging.Logger()
	metrics.SetAppInfo(version)

	logger.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("db_path", cfg.Database.Path).
		Bool("nats_enabled", cfg.NATS.Enabled).
		Msg("Starting Stylist")

	db, err := database.New(&cfg.Database)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	engine, err := initEngine(cfg, logger)
	if err != nil {
		return err
	}
	engine.SetDataProvider(database.NewBreakerProvider(db, database.BreakerConfig{
		Name:        "wardrobe",
		MaxFailures: cfg.Database.BreakerMaxFailures,
		Timeout:     cfg.Database.BreakerTimeout,
	}))

	results, err := initResultCache(cfg, logger)
	if err != nil {
		return fmt.Errorf("initialize result cache: %w", err)
	}
	if results != nil {
		defer func() {
			if err := results.close(); err != nil {
				logging.Error().Err(err).Msg("Error closing result cache")
			}
		}()
		engine.SetCache(results.cache)
		logger.Info().
			Str("backend", cfg.Cache.Backend).
			Dur("ttl", cfg.Recommend.CacheTTL).
			Msg("Result cache enabled")
	}

	applier := ingest.NewApplier(db, engine)
	ingestSvc := ingest.NewService(&cfg.NATS, applier)

	perfMon := middleware.NewPerformanceMonitor(perfWindow, slowRequestThreshold)
	handler := api.NewHandler(api.Dependencies{
		Engine:  engine,
		Writer:  applier,
		Store:   db,
		Ingest:  ingestSvc,
		PerfMon: perfMon,
		Version: version,
	})

	if cfg.Security.RateLimitDisabled {
		logger.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}
	chiMW := api.NewChiMiddleware(api.ChiMiddlewareConfigFrom(cfg.Security))
	router := api.NewRouter(handler, chiMW, perfMon, cfg.Server.Timeout)

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      cfg.Server.Timeout + 5*time.Second,
		IdleTimeout:       120 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLoggerFor("supervisor"), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	if results != nil {
		tree.AddDataService(services.NewCacheMaintenanceService(results.maintenance, services.CacheMaintenanceConfig{
			Interval: cfg.Cache.MaintenanceInterval,
		}, logging.WithComponent("cache")))
	}
	tree.AddMessagingService(ingestSvc)
	tree.AddAPIService(services.NewHTTPServerService(srv, cfg.Server.ShutdownTimeout, logging.WithComponent("api")))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info().Str("addr", srv.Addr).Str("ingest_backend", ingestSvc.Backend()).Msg("Supervisor tree starting")

	err = tree.Serve(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("supervisor tree: %w", err)
	}

	if report, rerr := tree.UnstoppedServiceReport(); rerr == nil && len(report) > 0 {
		for _, u := range report {
			logger.Warn().Str("service", u.Name).Msg("Service did not stop within shutdown timeout")
		}
	}

	logger.Info().Msg("Server stopped")
	return nil
}
