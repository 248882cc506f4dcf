// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

/*
Package config provides centralized configuration management for Stylist.

# Configuration Sources

Configuration is layered with Koanf v2, later layers overriding earlier ones:
  - Built-in defaults (defaultConfig)
  - Optional YAML file: CONFIG_PATH, ./config.yaml or /etc/stylist/config.yaml
  - Environment variables with an explicit name mapping

Unmapped environment variables are ignored.

# Sections

  - server: HTTP listener (HTTP_PORT, HTTP_HOST, HTTP_TIMEOUT, ENVIRONMENT)
  - logging: zerolog (LOG_LEVEL, LOG_FORMAT, LOG_CALLER)
  - database: DuckDB wardrobe store (DUCKDB_PATH, DUCKDB_MAX_MEMORY, DUCKDB_THREADS)
  - cache: result cache backend (CACHE_BACKEND=memory|badger, CACHE_DIR)
  - nats: ingestion messaging (NATS_ENABLED, NATS_URL, NATS_EMBEDDED)
  - recommend: scoring weights, limits and caching (RECOMMEND_*)
  - security: CORS and rate limits (CORS_ORIGINS, RATE_LIMIT_REQUESTS)

Comma-separated variables such as CORS_ORIGINS are split into slices.

# Example YAML

	server:
	  port: 8080
	database:
	  path: /data/stylist.duckdb
	cache:
	  backend: badger
	  dir: /data/cache
	recommend:
	  diversity_enabled: true
	  diversity_lambda: 0.7

# Validation

Load returns an error naming the offending variable when a value is out of
range, for example a cache backend other than memory or badger, or recommend
weights that do not sum to 1.0.
*/
package config
