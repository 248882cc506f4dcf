// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package config

import (
	"fmt"
	"math"
	"net/url"
	"time"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateServer,
		c.validateLogging,
		c.validateDatabase,
		c.validateCache,
		c.validateNATS,
		c.validateRecommend,
		c.validateSecurity,
	}
	for _, validate := range validators {
		if err := validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

func (c *Config) validateLogging() error {
	if c.Logging.Level != "" && !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

func (c *Config) validateDatabase() error {
	if c.Database.Path == "" {
		return fmt.Errorf("DUCKDB_PATH is required")
	}
	if c.Database.Threads < 0 {
		return fmt.Errorf("DUCKDB_THREADS must not be negative")
	}
	if c.Database.BreakerMaxFailures == 0 {
		return fmt.Errorf("DUCKDB_BREAKER_MAX_FAILURES must be positive")
	}
	if c.Database.BreakerTimeout <= 0 {
		return fmt.Errorf("DUCKDB_BREAKER_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateCache() error {
	switch c.Cache.Backend {
	case CacheBackendMemory:
		if c.Cache.Capacity < 1 {
			return fmt.Errorf("CACHE_CAPACITY must be positive")
		}
	case CacheBackendBadger:
		if c.Cache.Dir == "" {
			return fmt.Errorf("CACHE_DIR is required when CACHE_BACKEND=badger")
		}
		if c.Cache.GCRatio <= 0 || c.Cache.GCRatio >= 1 {
			return fmt.Errorf("CACHE_GC_RATIO must be in (0, 1)")
		}
	default:
		return fmt.Errorf("CACHE_BACKEND must be one of: %s, %s", CacheBackendMemory, CacheBackendBadger)
	}
	if c.Cache.MaintenanceInterval <= 0 {
		return fmt.Errorf("CACHE_MAINTENANCE_INTERVAL must be positive")
	}
	return nil
}

// NATS limit constants
const (
	natsMinMemory      = 16 * 1024 * 1024 // 16MB
	natsMaxSubscribers = 32
)

func (c *Config) validateNATS() error {
	if !c.NATS.Enabled {
		return nil
	}
	if err := validateNATSURL(c.NATS.URL); err != nil {
		return fmt.Errorf("NATS_URL is invalid: %w", err)
	}
	if c.NATS.EmbeddedServer && c.NATS.MaxMemory < natsMinMemory {
		return fmt.Errorf("NATS_MAX_MEMORY must be at least 16MB (16777216 bytes)")
	}
	if c.NATS.SubscribersCount < 1 || c.NATS.SubscribersCount > natsMaxSubscribers {
		return fmt.Errorf("NATS_SUBSCRIBERS must be between 1 and %d", natsMaxSubscribers)
	}
	if c.NATS.GarmentTopic == "" || c.NATS.ProfileTopic == "" {
		return fmt.Errorf("NATS_GARMENT_TOPIC and NATS_PROFILE_TOPIC are required")
	}
	if c.NATS.RouterPoisonQueueEnabled && c.NATS.RouterPoisonQueueTopic == "" {
		return fmt.Errorf("NATS_ROUTER_POISON_TOPIC is required when the poison queue is enabled")
	}
	return nil
}

// validateNATSURL accepts nats://, tls://, ws:// and wss:// URLs with a host.
func validateNATSURL(rawURL string) error {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("failed to parse URL: %w", err)
	}

	validSchemes := map[string]bool{"nats": true, "tls": true, "ws": true, "wss": true}
	if !validSchemes[parsedURL.Scheme] {
		return fmt.Errorf("scheme must be nats, tls, ws, or wss, got: %s", parsedURL.Scheme)
	}
	if parsedURL.Host == "" {
		return fmt.Errorf("host is required (e.g., localhost:4222)")
	}
	return nil
}

const weightSumTolerance = 1e-6

func (c *Config) validateRecommend() error {
	r := c.Recommend
	sum := r.WeightFormality + r.WeightColor + r.WeightStyle + r.WeightPattern
	if math.Abs(sum-1) > weightSumTolerance {
		return fmt.Errorf("recommend weights must sum to 1.0, got %.4f", sum)
	}
	if r.DiversityLambda < 0 || r.DiversityLambda > 1 {
		return fmt.Errorf("RECOMMEND_DIVERSITY_LAMBDA must be between 0 and 1")
	}
	if r.DefaultResults < 1 || r.MaxResults < r.DefaultResults {
		return fmt.Errorf("RECOMMEND_MAX_RESULTS must be >= RECOMMEND_DEFAULT_RESULTS >= 1")
	}
	if r.RequestTimeout <= 0 {
		return fmt.Errorf("RECOMMEND_REQUEST_TIMEOUT must be positive")
	}
	return nil
}

// Rate limit constants
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

func (c *Config) validateSecurity() error {
	if c.IsProduction() && c.hasWildcardCORS() {
		return fmt.Errorf("CORS_ORIGINS=* (wildcard) is not allowed in production. " +
			"Set specific origins: CORS_ORIGINS=https://yourdomain.com")
	}
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

func (c *Config) hasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}
