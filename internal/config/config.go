// What to Watch - Deterministic Movie Deck Recommendations
// Copyright 2026 GlenTheReb
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/GlenTheReb/what-to-watch

// Package config loads layered service configuration: struct defaults,
// then an optional YAML file, then environment variables, highest
// priority last.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config is the root service configuration.
type Config struct {
	Server ServerConfig `koanf:"server"`
	TMDB   TMDBConfig   `koanf:"tmdb"`
	HTTP   HTTPConfig   `koanf:"http"`
	Log    LogConfig    `koanf:"log"`
}

// ServerConfig holds the listener settings.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `koanf:"addr" validate:"required"`

	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

// TMDBConfig holds the catalog upstream settings.
type TMDBConfig struct {
	// BaseURL is the API root.
	BaseURL string `koanf:"base_url" validate:"required,url"`

	// ImageBaseURL prefixes poster paths on outgoing cards.
	ImageBaseURL string `koanf:"image_base_url" validate:"required,url"`

	// APIToken is the TMDB v4 read access token. Required to start.
	APIToken string `koanf:"api_token" validate:"required"`

	// RequestsPerSecond and Burst tune the client rate limiter.
	RequestsPerSecond float64 `koanf:"requests_per_second" validate:"gt=0"`
	Burst             int     `koanf:"burst" validate:"gt=0"`

	// BreakerFailureThreshold trips the circuit breaker after this many
	// consecutive failures; BreakerTimeout is the open-state duration.
	BreakerFailureThreshold uint32        `koanf:"breaker_failure_threshold" validate:"gt=0"`
	BreakerTimeout          time.Duration `koanf:"breaker_timeout" validate:"gt=0"`
}

// HTTPConfig holds API-surface settings.
type HTTPConfig struct {
	// CORSAllowedOrigins lists origins allowed by the CORS middleware.
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`

	// RateLimitPerMinute caps requests per client IP per minute.
	RateLimitPerMinute int `koanf:"rate_limit_per_minute" validate:"gt=0"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
}

// defaultConfig returns the defaults applied before file and env layers.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		TMDB: TMDBConfig{
			BaseURL:                 "https://api.themoviedb.org/3",
			ImageBaseURL:            "https://image.tmdb.org/t/p/w342",
			APIToken:                "",
			RequestsPerSecond:       4,
			Burst:                   8,
			BreakerFailureThreshold: 5,
			BreakerTimeout:          30 * time.Second,
		},
		HTTP: HTTPConfig{
			CORSAllowedOrigins: []string{"*"},
			RateLimitPerMinute: 60,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Validate checks the configuration with struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
