// What to Watch - Deterministic Movie Deck Recommendations
// Copyright 2026 GlenTheReb
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/GlenTheReb/what-to-watch

// Package api provides HTTP routing and handlers using the Chi router.
//
// The surface is small: POST /api/v1/deck builds a ten-card deck,
// GET /healthz answers liveness probes, and /metrics exposes
// Prometheus collectors. All responses use the models.APIResponse
// envelope.
package api
