// TagForge - Trending Hashtag Aggregation and Recommendation Engine
// Copyright 2026 Alex M. (tagforge)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tagforge/tagforge

package config

import (
	"fmt"
	"strings"
)

// Validate checks the configuration for invalid or inconsistent values.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateCache(); err != nil {
		return err
	}

	if err := c.validateProviders(); err != nil {
		return err
	}

	if err := c.validateAI(); err != nil {
		return err
	}

	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}

	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}

	switch c.Server.Environment {
	case "development", "production":
		return nil
	default:
		return fmt.Errorf("ENVIRONMENT must be 'development' or 'production', got %q", c.Server.Environment)
	}
}

func (c *Config) validateCache() error {
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive")
	}

	if c.Cache.JanitorInterval < 0 {
		return fmt.Errorf("CACHE_JANITOR_INTERVAL must be zero or positive")
	}

	return nil
}

func (c *Config) validateProviders() error {
	if c.Providers.FetchTimeout <= 0 {
		return fmt.Errorf("PROVIDER_FETCH_TIMEOUT must be positive")
	}

	if c.Providers.RequestsPerSecond <= 0 {
		return fmt.Errorf("SCRAPE_RPS must be positive")
	}

	if c.Providers.ScrapeEnabled && strings.TrimSpace(c.Providers.UserAgent) == "" {
		return fmt.Errorf("SCRAPE_USER_AGENT must not be empty when scraping is enabled")
	}

	return nil
}

// validateAI checks AI collaborator settings. A missing API key is allowed:
// the service starts degraded and generate requests report the failure.
func (c *Config) validateAI() error {
	if c.AI.Model == "" {
		return fmt.Errorf("AI_MODEL must not be empty")
	}

	if c.AI.MaxTokens < 1 {
		return fmt.Errorf("AI_MAX_TOKENS must be at least 1")
	}

	if c.AI.Timeout <= 0 {
		return fmt.Errorf("AI_TIMEOUT must be positive")
	}

	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "disabled":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error, fatal, got %q", c.Logging.Level)
	}

	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
		return nil
	default:
		return fmt.Errorf("LOG_FORMAT must be 'json' or 'console', got %q", c.Logging.Format)
	}
}
