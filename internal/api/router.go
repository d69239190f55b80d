// What to Watch - Deterministic Movie Deck Recommendations
// Copyright 2026 GlenTheReb
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/GlenTheReb/what-to-watch

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/GlenTheReb/what-to-watch/internal/middleware"
)

// RouterConfig holds the knobs the router needs from configuration.
type RouterConfig struct {
	// CORSAllowedOrigins lists origins allowed to call the API.
	// Empty means no cross-origin callers.
	CORSAllowedOrigins []string

	// RateLimitPerMinute caps requests per client IP per minute.
	RateLimitPerMinute int
}

// Router wires handlers and middleware into an http.Handler.
type Router struct {
	handler *Handler
	config  RouterConfig
}

// NewRouter creates a Router around the given handler.
func NewRouter(handler *Handler, config RouterConfig) *Router {
	return &Router{handler: handler, config: config}
}

// chiMiddleware adapts http.HandlerFunc middleware to Chi's
// func(http.Handler) http.Handler so it works with r.Use().
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// Setup configures all HTTP routes.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order
	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: router.config.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-Session-ID", "X-Request-ID"},
		MaxAge:         86400,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(httprate.LimitByRealIP(router.config.RateLimitPerMinute, time.Minute))
		r.Use(chiMiddleware(middleware.PrometheusMetrics))

		r.Post("/deck", router.handler.Deck)
	})

	// Liveness probe, no rate limit so orchestrators can poll freely
	r.Get("/healthz", router.handler.Health)

	r.Handle("/metrics", promhttp.Handler())

	return r
}
