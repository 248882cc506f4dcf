// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package config

import (
	"time"
)

// Config holds all application configuration loaded from defaults, an
// optional YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in defaults for every setting
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any mapped setting
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	db, err := database.New(&cfg.Database)
//
// Config is immutable after Load() and safe for concurrent reads.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
	Database  DatabaseConfig  `koanf:"database"`
	Cache     CacheConfig     `koanf:"cache"`
	NATS      NATSConfig      `koanf:"nats"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // development, staging, production
}

// LoggingConfig holds logging settings for zerolog.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// DatabaseConfig holds DuckDB settings for the wardrobe store
type DatabaseConfig struct {
	// Path is the DuckDB file. ":memory:" opens a private in-memory database.
	Path                   string `koanf:"path"`
	MaxMemory              string `koanf:"max_memory"`
	Threads                int    `koanf:"threads"` // 0 = NumCPU
	PreserveInsertionOrder bool   `koanf:"preserve_insertion_order"`

	// Breaker settings guard wardrobe reads.
	BreakerMaxFailures uint32        `koanf:"breaker_max_failures"`
	BreakerTimeout     time.Duration `koanf:"breaker_timeout"`
}

// Cache backends.
const (
	CacheBackendMemory = "memory"
	CacheBackendBadger = "badger"
)

// CacheConfig selects and tunes the recommendation result cache.
//
// Environment Variables:
//   - CACHE_BACKEND: memory or badger (default: memory)
//   - CACHE_CAPACITY: max entries for the memory backend (default: 10000)
//   - CACHE_DIR: badger directory (required for badger)
//   - CACHE_MAINTENANCE_INTERVAL: expiry sweep and value-log GC interval (default: 5m)
type CacheConfig struct {
	Backend             string        `koanf:"backend"`
	Capacity            int           `koanf:"capacity"`
	Dir                 string        `koanf:"dir"`
	SyncWrites          bool          `koanf:"sync_writes"`
	MaintenanceInterval time.Duration `koanf:"maintenance_interval"`
	GCRatio             float64       `koanf:"gc_ratio"`
}

// NATSConfig holds ingestion messaging settings.
//
// When Enabled is false the ingestion router runs on an in-process
// gochannel pub/sub, which is enough for the HTTP upsert path and tests.
//
// Example - embedded server for a single node:
//
//	cfg := NATSConfig{
//	    Enabled:        true,
//	    URL:            "nats://127.0.0.1:4222",
//	    EmbeddedServer: true,
//	    StoreDir:       "/data/nats",
//	}
type NATSConfig struct {
	// Enabled controls whether ingestion reads from NATS JetStream.
	Enabled bool `koanf:"enabled"`

	// URL is the NATS server connection URL.
	URL string `koanf:"url"`

	// EmbeddedServer runs a nats-server inside the process.
	EmbeddedServer bool `koanf:"embedded_server"`

	// StoreDir is the JetStream storage directory for the embedded server.
	StoreDir string `koanf:"store_dir"`

	// MaxMemory and MaxStore bound JetStream resources in bytes.
	MaxMemory int64 `koanf:"max_memory"`
	MaxStore  int64 `koanf:"max_store"`

	// DurableName is the JetStream durable consumer prefix.
	DurableName string `koanf:"durable_name"`

	// QueueGroup load-balances subscribers across replicas.
	QueueGroup string `koanf:"queue_group"`

	// SubscribersCount is the number of concurrent subscribers per topic.
	SubscribersCount int `koanf:"subscribers_count"`

	// GarmentTopic carries classified garments.
	GarmentTopic string `koanf:"garment_topic"`

	// ProfileTopic carries user profile updates.
	ProfileTopic string `koanf:"profile_topic"`

	// Router middleware settings
	RouterRetryCount           int           `koanf:"router_retry_count"`
	RouterRetryInitialInterval time.Duration `koanf:"router_retry_initial_interval"`
	RouterThrottlePerSecond    int           `koanf:"router_throttle_per_second"`
	RouterPoisonQueueEnabled   bool          `koanf:"router_poison_queue_enabled"`
	RouterPoisonQueueTopic     string        `koanf:"router_poison_queue_topic"`
	RouterCloseTimeout         time.Duration `koanf:"router_close_timeout"`
}

// RecommendConfig holds recommendation engine settings. It is mapped into
// recommend.Config at startup.
type RecommendConfig struct {
	// Pairing weights. Must sum to 1.0.
	WeightFormality float64 `koanf:"weight_formality"`
	WeightColor     float64 `koanf:"weight_color"`
	WeightStyle     float64 `koanf:"weight_style"`
	WeightPattern   float64 `koanf:"weight_pattern"`

	// MinPairScore is the exclusive lower bound for keeping a top/bottom pair.
	MinPairScore float64 `koanf:"min_pair_score"`

	// AccessoryThreshold is the exclusive lower bound for attaching an accessory.
	AccessoryThreshold float64 `koanf:"accessory_threshold"`

	// Workers is the number of goroutines scoring pairs.
	Workers int `koanf:"workers"`

	// DiversityEnabled registers the MMR reranker. Results then follow MMR
	// selection order instead of descending score.
	DiversityEnabled bool `koanf:"diversity_enabled"`

	// DiversityLambda controls the score vs. variety tradeoff (0-1).
	DiversityLambda float64 `koanf:"diversity_lambda"`

	DefaultResults int           `koanf:"default_results"`
	MaxResults     int           `koanf:"max_results"`
	RequestTimeout time.Duration `koanf:"request_timeout"`

	CacheEnabled bool          `koanf:"cache_enabled"`
	CacheTTL     time.Duration `koanf:"cache_ttl"`
}

// SecurityConfig holds HTTP boundary protection settings
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
	TrustedProxies    []string      `koanf:"trusted_proxies"`
}

// Load reads configuration using Koanf with layered sources.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// IsProduction returns true if the application is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
