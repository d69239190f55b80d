// What to Watch - Deterministic Movie Deck Recommendations
// Copyright 2026 GlenTheReb
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/GlenTheReb/what-to-watch

// Package main is the entry point for the What to Watch server.
//
// What to Watch serves swipeable ten-card movie decks built from a
// free-text preference query, a handful of TMDB discover slices, and
// per-session kept/passed feedback. Decks are deterministic: the same
// session, UTC day, and reroll index always produce the same deck.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: environment variables and optional config.yaml (Koanf v2)
//  2. Slice cache: in-memory TTL cache over TMDB discover responses
//  3. TMDB client: rate-limited, circuit-broken catalog client
//  4. Recommendation engine: the deterministic deck pipeline
//  5. HTTP server: Chi router with /api/v1/deck, /healthz, /metrics
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins): environment variables (WTW_ prefix), config.yaml,
// built-in defaults. WTW_TMDB_API_TOKEN is the only required setting.
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM: it stops
// accepting new connections and waits for in-flight requests up to the
// configured shutdown timeout.
//
// # Example Usage
//
//	export WTW_TMDB_API_TOKEN=your-tmdb-v4-read-token
//	./what-to-watch
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/GlenTheReb/what-to-watch/internal/api"
	"github.com/GlenTheReb/what-to-watch/internal/cache"
	"github.com/GlenTheReb/what-to-watch/internal/config"
	"github.com/GlenTheReb/what-to-watch/internal/logging"
	"github.com/GlenTheReb/what-to-watch/internal/recommend"
	"github.com/GlenTheReb/what-to-watch/internal/tmdb"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	logging.Info().
		Str("addr", cfg.Server.Addr).
		Str("tmdb_base_url", cfg.TMDB.BaseURL).
		Msg("Starting What to Watch")

	sliceCache := cache.New()
	defer sliceCache.Close()

	client := tmdb.NewClient(tmdb.Options{
		BaseURL:           cfg.TMDB.BaseURL,
		APIToken:          cfg.TMDB.APIToken,
		RequestsPerSecond: cfg.TMDB.RequestsPerSecond,
		Burst:             cfg.TMDB.Burst,
		Breaker: tmdb.BreakerOptions{
			FailureThreshold: cfg.TMDB.BreakerFailureThreshold,
			Timeout:          cfg.TMDB.BreakerTimeout,
		},
	}, logging.Logger())

	source := tmdb.NewCachedSource(client, sliceCache)
	engine := recommend.NewEngine(source, cfg.TMDB.ImageBaseURL, logging.Logger())

	router := api.NewRouter(api.NewHandler(engine), api.RouterConfig{
		CORSAllowedOrigins: cfg.HTTP.CORSAllowedOrigins,
		RateLimitPerMinute: cfg.HTTP.RateLimitPerMinute,
	})

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Serve in the background so the main goroutine can wait on signals
	serveErr := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", cfg.Server.Addr).Msg("HTTP server listening")
		serveErr <- server.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("HTTP server error")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("Graceful shutdown failed")
	}

	logging.Info().Msg("Application stopped gracefully")
}
