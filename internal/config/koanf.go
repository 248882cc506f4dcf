// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/stylist/config.yaml",
	"/etc/stylist/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 15 * time.Second,
			Environment:     "development",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Database: DatabaseConfig{
			Path:                   "/data/stylist.duckdb",
			MaxMemory:              "1GB",
			Threads:                0,
			PreserveInsertionOrder: true,
			BreakerMaxFailures:     5,
			BreakerTimeout:         30 * time.Second,
		},
		Cache: CacheConfig{
			Backend:             CacheBackendMemory,
			Capacity:            10000,
			Dir:                 "/data/cache",
			SyncWrites:          false,
			MaintenanceInterval: 5 * time.Minute,
			GCRatio:             0.5,
		},
		NATS: NATSConfig{
			Enabled:                    false,
			URL:                        "nats://127.0.0.1:4222",
			EmbeddedServer:             true,
			StoreDir:                   "/data/nats/jetstream",
			MaxMemory:                  256 << 20, // 256MB
			MaxStore:                   1 << 30,   // 1GB
			DurableName:                "stylist-ingest",
			QueueGroup:                 "stylist-ingest",
			SubscribersCount:           2,
			GarmentTopic:               "wardrobe.garment.classified",
			ProfileTopic:               "wardrobe.profile.updated",
			RouterRetryCount:           3,
			RouterRetryInitialInterval: 100 * time.Millisecond,
			RouterThrottlePerSecond:    100,
			RouterPoisonQueueEnabled:   true,
			RouterPoisonQueueTopic:     "wardrobe.poison",
			RouterCloseTimeout:         30 * time.Second,
		},
		Recommend: RecommendConfig{
			WeightFormality:    0.40,
			WeightColor:        0.25,
			WeightStyle:        0.20,
			WeightPattern:      0.15,
			MinPairScore:       0.3,
			AccessoryThreshold: 0.5,
			Workers:            4,
			DiversityEnabled:   false,
			DiversityLambda:    0.7,
			DefaultResults:     5,
			MaxResults:         10,
			RequestTimeout:     10 * time.Second,
			CacheEnabled:       true,
			CacheTTL:           5 * time.Minute,
		},
		Security: SecurityConfig{
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
			TrustedProxies:    []string{},
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults
//  2. Config File (if one exists)
//  3. Environment Variables
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Environment variables. HTTP_PORT -> server.port
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
	"security.trusted_proxies",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars come in as strings, but the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}

		strVal, ok := val.(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps environment variable names (lowercased) to koanf paths.
var envMappings = map[string]string{
	// Server
	"http_port":        "server.port",
	"http_host":        "server.host",
	"http_timeout":     "server.timeout",
	"shutdown_timeout": "server.shutdown_timeout",
	"environment":      "server.environment",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Database
	"duckdb_path":                  "database.path",
	"duckdb_max_memory":            "database.max_memory",
	"duckdb_threads":               "database.threads",
	"duckdb_breaker_max_failures":  "database.breaker_max_failures",
	"duckdb_breaker_timeout":       "database.breaker_timeout",
	"duckdb_preserve_insert_order": "database.preserve_insertion_order",

	// Cache
	"cache_backend":              "cache.backend",
	"cache_capacity":             "cache.capacity",
	"cache_dir":                  "cache.dir",
	"cache_sync_writes":          "cache.sync_writes",
	"cache_maintenance_interval": "cache.maintenance_interval",
	"cache_gc_ratio":             "cache.gc_ratio",

	// NATS
	"nats_enabled":               "nats.enabled",
	"nats_url":                   "nats.url",
	"nats_embedded":              "nats.embedded_server",
	"nats_store_dir":             "nats.store_dir",
	"nats_max_memory":            "nats.max_memory",
	"nats_max_store":             "nats.max_store",
	"nats_durable_name":          "nats.durable_name",
	"nats_queue_group":           "nats.queue_group",
	"nats_subscribers":           "nats.subscribers_count",
	"nats_garment_topic":         "nats.garment_topic",
	"nats_profile_topic":         "nats.profile_topic",
	"nats_router_retry_count":    "nats.router_retry_count",
	"nats_router_retry_interval": "nats.router_retry_initial_interval",
	"nats_router_throttle":       "nats.router_throttle_per_second",
	"nats_router_poison_enabled": "nats.router_poison_queue_enabled",
	"nats_router_poison_topic":   "nats.router_poison_queue_topic",
	"nats_router_close_timeout":  "nats.router_close_timeout",

	// Recommendation engine
	"recommend_weight_formality":    "recommend.weight_formality",
	"recommend_weight_color":        "recommend.weight_color",
	"recommend_weight_style":        "recommend.weight_style",
	"recommend_weight_pattern":      "recommend.weight_pattern",
	"recommend_min_pair_score":      "recommend.min_pair_score",
	"recommend_accessory_threshold": "recommend.accessory_threshold",
	"recommend_workers":             "recommend.workers",
	"recommend_diversity_enabled":   "recommend.diversity_enabled",
	"recommend_diversity_lambda":    "recommend.diversity_lambda",
	"recommend_default_results":     "recommend.default_results",
	"recommend_max_results":         "recommend.max_results",
	"recommend_request_timeout":     "recommend.request_timeout",
	"recommend_cache_enabled":       "recommend.cache_enabled",
	"recommend_cache_ttl":           "recommend.cache_ttl",

	// Security
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"cors_origins":        "security.cors_origins",
	"trusted_proxies":     "security.trusted_proxies",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - DUCKDB_PATH -> database.path
//   - CACHE_BACKEND -> cache.backend
//
// Unmapped variables return "" and are skipped.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
