// What to Watch - Deterministic Movie Deck Recommendations
// Copyright 2026 GlenTheReb
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/GlenTheReb/what-to-watch

// Package middleware provides HTTP middleware shared across routes:
// request ID propagation and Prometheus instrumentation.
//
// Middleware here uses the http.HandlerFunc wrapping style; the api
// package adapts it to Chi's func(http.Handler) http.Handler where
// needed.
package middleware
