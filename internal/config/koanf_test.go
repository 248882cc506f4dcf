// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Path != "/data/stylist.duckdb" {
		t.Errorf("Database.Path = %q, want /data/stylist.duckdb", cfg.Database.Path)
	}
	if cfg.Cache.Backend != CacheBackendMemory {
		t.Errorf("Cache.Backend = %q, want memory", cfg.Cache.Backend)
	}
	if cfg.NATS.Enabled {
		t.Error("NATS.Enabled should be false by default")
	}
	if cfg.NATS.GarmentTopic != "wardrobe.garment.classified" {
		t.Errorf("NATS.GarmentTopic = %q", cfg.NATS.GarmentTopic)
	}
	if cfg.Recommend.DefaultResults != 5 || cfg.Recommend.MaxResults != 10 {
		t.Errorf("Recommend results = %d/%d, want 5/10", cfg.Recommend.DefaultResults, cfg.Recommend.MaxResults)
	}
	if cfg.Recommend.RequestTimeout != 10*time.Second {
		t.Errorf("Recommend.RequestTimeout = %v, want 10s", cfg.Recommend.RequestTimeout)
	}
	if cfg.Recommend.DiversityEnabled {
		t.Error("Recommend.DiversityEnabled should be false by default")
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"HTTP_PORT", "server.port"},
		{"DUCKDB_PATH", "database.path"},
		{"CACHE_BACKEND", "cache.backend"},
		{"NATS_EMBEDDED", "nats.embedded_server"},
		{"RECOMMEND_DIVERSITY_LAMBDA", "recommend.diversity_lambda"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"log_level", "logging.level"},
		{"HOME", ""},
		{"PATH", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if result := envTransformFunc(tt.input); result != tt.expected {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

// chdirTemp moves the test into an empty directory so no stray config.yaml is found.
func chdirTemp(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(origDir); err != nil {
			t.Errorf("Failed to restore working directory: %v", err)
		}
	})
	return tmpDir
}

func TestFindConfigFile(t *testing.T) {
	tmpDir := chdirTemp(t)

	t.Run("no config file exists", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "")
		if result := findConfigFile(); result != "" {
			t.Errorf("findConfigFile() = %q, want empty string", result)
		}
	})

	t.Run("config.yaml exists", func(t *testing.T) {
		configPath := filepath.Join(tmpDir, "config.yaml")
		if err := os.WriteFile(configPath, []byte("server:\n  port: 9000\n"), 0o600); err != nil {
			t.Fatalf("Failed to create config file: %v", err)
		}
		defer os.Remove(configPath)

		t.Setenv(ConfigPathEnvVar, "")
		if result := findConfigFile(); result != "config.yaml" {
			t.Errorf("findConfigFile() = %q, want config.yaml", result)
		}
	})

	t.Run("CONFIG_PATH env var takes precedence", func(t *testing.T) {
		customPath := filepath.Join(tmpDir, "custom.yaml")
		if err := os.WriteFile(customPath, []byte("server:\n  port: 9000\n"), 0o600); err != nil {
			t.Fatalf("Failed to create custom config file: %v", err)
		}

		t.Setenv(ConfigPathEnvVar, customPath)
		if result := findConfigFile(); result != customPath {
			t.Errorf("findConfigFile() = %q, want %q", result, customPath)
		}
	})

	t.Run("CONFIG_PATH with non-existent file", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "/non/existent/config.yaml")
		if result := findConfigFile(); result != "" {
			t.Errorf("findConfigFile() = %q, want empty string", result)
		}
	})
}

func TestLoadWithKoanfEnvVars(t *testing.T) {
	chdirTemp(t)
	t.Setenv(ConfigPathEnvVar, "")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CACHE_BACKEND", "badger")
	t.Setenv("CACHE_DIR", "/tmp/stylist-cache")
	t.Setenv("RECOMMEND_DIVERSITY_ENABLED", "true")
	t.Setenv("RECOMMEND_REQUEST_TIMEOUT", "3s")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Cache.Backend != CacheBackendBadger || cfg.Cache.Dir != "/tmp/stylist-cache" {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
	if !cfg.Recommend.DiversityEnabled {
		t.Error("Recommend.DiversityEnabled = false, want true")
	}
	if cfg.Recommend.RequestTimeout != 3*time.Second {
		t.Errorf("Recommend.RequestTimeout = %v, want 3s", cfg.Recommend.RequestTimeout)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[1] != "https://b.example" {
		t.Errorf("Security.CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
}

func TestLoadWithKoanfConfigFile(t *testing.T) {
	tmpDir := chdirTemp(t)
	configPath := filepath.Join(tmpDir, "stylist.yaml")
	content := `
server:
  port: 7000
database:
  path: /srv/wardrobe.duckdb
recommend:
  weight_formality: 0.25
  weight_color: 0.25
  weight_style: 0.25
  weight_pattern: 0.25
`
	if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, configPath)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 7000 {
		t.Errorf("Server.Port = %d, want 7000", cfg.Server.Port)
	}
	if cfg.Database.Path != "/srv/wardrobe.duckdb" {
		t.Errorf("Database.Path = %q", cfg.Database.Path)
	}
	if cfg.Recommend.WeightStyle != 0.25 {
		t.Errorf("Recommend.WeightStyle = %v, want 0.25", cfg.Recommend.WeightStyle)
	}
	// Unset values keep their defaults.
	if cfg.Cache.Backend != CacheBackendMemory {
		t.Errorf("Cache.Backend = %q, want memory", cfg.Cache.Backend)
	}
}

func TestLoadWithKoanfEnvOverridesFile(t *testing.T) {
	tmpDir := chdirTemp(t)
	configPath := filepath.Join(tmpDir, "stylist.yaml")
	if err := os.WriteFile(configPath, []byte("server:\n  port: 7000\n"), 0o600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, configPath)
	t.Setenv("HTTP_PORT", "7100")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 7100 {
		t.Errorf("Server.Port = %d, want 7100 (env beats file)", cfg.Server.Port)
	}
}

func TestLoadWithKoanfValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad port", map[string]string{"HTTP_PORT": "70000"}},
		{"unknown cache backend", map[string]string{"CACHE_BACKEND": "redis"}},
		{"weights do not sum to one", map[string]string{"RECOMMEND_WEIGHT_COLOR": "0.9"}},
		{"bad log level", map[string]string{"LOG_LEVEL": "loud"}},
		{"nats bad scheme", map[string]string{"NATS_ENABLED": "true", "NATS_URL": "http://localhost:4222"}},
		{"wildcard cors in production", map[string]string{"ENVIRONMENT": "production"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdirTemp(t)
			t.Setenv(ConfigPathEnvVar, "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := LoadWithKoanf(); err == nil {
				t.Error("LoadWithKoanf() expected validation error, got nil")
			}
		})
	}
}
