// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

/*
Package services provides suture.Service wrappers for Stylist components.

Each wrapper translates a component's lifecycle into suture's context-aware
Serve pattern and implements fmt.Stringer so supervisor events name it.

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server with graceful shutdown
  - Closes lingering connections once the drain timeout passes
  - http.ErrServerClosed is treated as a clean stop

Cache Maintenance (CacheMaintenanceService):
  - Runs a MaintenanceTask on a fixed interval
  - Sweep failures are logged, never returned

The ingestion router is supervised directly: ingest.Service already
implements Serve and String.

# Usage

	tree.AddDataService(services.NewCacheMaintenanceService(
	    services.MaintenanceFunc(func(ctx context.Context) error {
	        lru.CleanupExpired()
	        return nil
	    }),
	    services.CacheMaintenanceConfig{Interval: cfg.Cache.MaintenanceInterval},
	    logging.Logger(),
	))
	tree.AddMessagingService(ingestService)
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logging.WithComponent("api")))
*/
package services
