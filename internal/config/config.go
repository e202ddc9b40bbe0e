// TagForge - Trending Hashtag Aggregation and Recommendation Engine
// Copyright 2026 Alex M. (tagforge)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tagforge/tagforge

// Package config loads and validates TagForge configuration using Koanf v2
// with layered sources: struct defaults, an optional YAML file, and
// environment variable overrides (highest priority).
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

// DefaultConfigPaths lists the paths where config files are searched in
// order of priority. The first file found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/tagforge/config.yaml",
	"/etc/tagforge/config.yml",
}

// ConfigPathEnvVar is the environment variable that overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// Config is the root configuration for the TagForge service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Cache     CacheConfig     `koanf:"cache"`
	Providers ProvidersConfig `koanf:"providers"`
	AI        AIConfig        `koanf:"ai"`
	API       APIConfig       `koanf:"api"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host        string        `koanf:"host"`
	Port        int           `koanf:"port"`
	Timeout     time.Duration `koanf:"timeout"`     // read/write timeout
	Environment string        `koanf:"environment"` // development or production
}

// CacheConfig holds trending-result cache settings.
type CacheConfig struct {
	// TTL is how long a cached provider result stays fresh.
	// Entries older than TTL are treated as absent on read.
	TTL time.Duration `koanf:"ttl"`

	// JanitorInterval is how often physically expired entries are swept.
	// Zero disables the background janitor; reads check staleness either way.
	JanitorInterval time.Duration `koanf:"janitor_interval"`
}

// ProvidersConfig holds trending source provider settings.
type ProvidersConfig struct {
	// ScrapeEnabled toggles the web-scrape provider. When false only the
	// structured-API and curated providers run.
	ScrapeEnabled bool `koanf:"scrape_enabled"`

	// FetchTimeout bounds a single provider invocation, including all of
	// its HTTP round trips.
	FetchTimeout time.Duration `koanf:"fetch_timeout"`

	// RequestsPerSecond limits outbound scrape requests across all hosts.
	RequestsPerSecond float64 `koanf:"requests_per_second"`

	// UserAgent is sent on scrape requests.
	UserAgent string `koanf:"user_agent"`

	// HashtagifyEnabled and RitetagEnabled toggle the structured-API providers.
	HashtagifyEnabled bool `koanf:"hashtagify_enabled"`
	RitetagEnabled    bool `koanf:"ritetag_enabled"`
}

// AIConfig holds settings for the AI suggestion collaborator.
type AIConfig struct {
	APIKey    string        `koanf:"api_key"`
	Model     string        `koanf:"model"`
	MaxTokens int           `koanf:"max_tokens"`
	Timeout   time.Duration `koanf:"timeout"`
}

// APIConfig holds API surface settings.
type APIConfig struct {
	CORSOrigins       []string `koanf:"cors_origins"`
	RateLimitDisabled bool     `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// defaultConfig returns a Config with all default values.
// Defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        8490,
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		Cache: CacheConfig{
			TTL:             time.Hour,
			JanitorInterval: 10 * time.Minute,
		},
		Providers: ProvidersConfig{
			ScrapeEnabled:     true,
			FetchTimeout:      10 * time.Second,
			RequestsPerSecond: 1.0,
			UserAgent:         "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			HashtagifyEnabled: true,
			RitetagEnabled:    true,
		},
		AI: AIConfig{
			APIKey:    "",
			Model:     "claude-sonnet-4-20250514",
			MaxTokens: 1024,
			Timeout:   30 * time.Second,
		},
		API: APIConfig{
			CORSOrigins:       []string{"*"},
			RateLimitDisabled: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Load loads configuration using Koanf v2 with layered sources:
//  1. Defaults: built-in sensible defaults
//  2. Config file: optional YAML file (if one exists)
//  3. Environment variables: override any setting
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

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

// Sanitized returns a copy of the configuration safe for startup logging.
// Secrets are redacted rather than removed so their presence stays visible.
func (c *Config) Sanitized() Config {
	out := *c
	if out.AI.APIKey != "" {
		out.AI.APIKey = "[REDACTED]"
	}
	return out
}

// findConfigFile searches for a config file, checking CONFIG_PATH first and
// then the default paths. Returns empty string when none exists.
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

// sliceConfigPaths defines which config paths are parsed as comma-separated
// slices when supplied via environment variables.
var sliceConfigPaths = []string{
	"api.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for
// known slice fields. Env vars come in as strings; YAML lists pass through.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}
		if _, ok := val.([]interface{}); ok {
			continue
		}
		if _, ok := val.([]string); ok {
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

// envTransformFunc maps environment variable names to koanf config paths.
// Unmapped variables are skipped so random environment noise cannot leak
// into the configuration.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - CACHE_TTL -> cache.ttl
//   - ANTHROPIC_API_KEY -> ai.api_key
func envTransformFunc(key string) string {
	key = strings.ToLower(key)

	envMappings := map[string]string{
		// Server mappings
		"http_port":    "server.port",
		"http_host":    "server.host",
		"http_timeout": "server.timeout",
		"environment":  "server.environment",

		// Cache mappings
		"cache_ttl":              "cache.ttl",
		"cache_janitor_interval": "cache.janitor_interval",

		// Provider mappings
		"scrape_enabled":         "providers.scrape_enabled",
		"provider_fetch_timeout": "providers.fetch_timeout",
		"scrape_rps":             "providers.requests_per_second",
		"scrape_user_agent":      "providers.user_agent",
		"hashtagify_enabled":     "providers.hashtagify_enabled",
		"ritetag_enabled":        "providers.ritetag_enabled",

		// AI mappings
		"anthropic_api_key": "ai.api_key",
		"ai_model":          "ai.model",
		"ai_max_tokens":     "ai.max_tokens",
		"ai_timeout":        "ai.timeout",

		// API mappings
		"cors_origins":       "api.cors_origins",
		"disable_rate_limit": "api.rate_limit_disabled",

		// Logging mappings
		"log_level":  "logging.level",
		"log_format": "logging.format",
		"log_caller": "logging.caller",
	}

	if mapped, ok := envMappings[key]; ok {
		return mapped
	}

	return ""
}
