// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

/*
Package main is the entry point for the Stylist server.

Stylist scores how well garments go together and recommends complete outfits
from a user's wardrobe for an occasion, the weather and the user's skin tone.

# Application Architecture

Long-running components run under a Suture v4 supervisor tree:

	RootSupervisor ("stylist")
	├── DataSupervisor ("data-layer")
	│   └── Cache maintenance (expiry sweep or badger value-log GC)
	├── MessagingSupervisor ("messaging-layer")
	│   └── Ingestion router (gochannel, or NATS JetStream when enabled)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Component initialization order:

 1. Configuration: Koanf v2 with defaults, config.yaml and environment variables
 2. Logging: zerolog, bridged to slog for the supervisor
 3. Database: DuckDB wardrobe store behind a circuit breaker
 4. Engine: scoring weights, generation limits, MMR reranker
 5. Result cache: in-memory LRU or BadgerDB
 6. Ingestion: Watermill router applying garment and profile upserts
 7. HTTP: chi router with CORS, rate limiting and Prometheus metrics

# Configuration

Common environment variables:

	HTTP_PORT=8080
	DUCKDB_PATH=/data/stylist.duckdb
	LOG_LEVEL=info
	CACHE_BACKEND=memory
	NATS_ENABLED=false

See internal/config for the full list.

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains in-flight
requests for up to SHUTDOWN_TIMEOUT, the ingestion router closes, then the
result cache and the database are closed.

# Example Usage

	export DUCKDB_PATH=/data/stylist.duckdb
	export RECOMMEND_DIVERSITY_ENABLED=true
	./stylist
*/
package main
