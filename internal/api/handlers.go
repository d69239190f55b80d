// What to Watch - Deterministic Movie Deck Recommendations
// Copyright 2026 GlenTheReb
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/GlenTheReb/what-to-watch

package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/GlenTheReb/what-to-watch/internal/logging"
	"github.com/GlenTheReb/what-to-watch/internal/metrics"
	"github.com/GlenTheReb/what-to-watch/internal/middleware"
	"github.com/GlenTheReb/what-to-watch/internal/models"
	"github.com/GlenTheReb/what-to-watch/internal/recommend"
)

// maxBodyBytes caps the deck request body. Feedback tops out at 200 IDs
// per list, so well-formed bodies stay far below this.
const maxBodyBytes = 64 * 1024

// DeckBuilder builds one deck per request. Satisfied by *recommend.Engine.
type DeckBuilder interface {
	BuildDeck(ctx context.Context, req recommend.Request) (*recommend.Deck, error)
}

// Handler holds the HTTP handlers for the deck API.
type Handler struct {
	builder DeckBuilder
}

// NewHandler creates a Handler around the given deck builder.
func NewHandler(builder DeckBuilder) *Handler {
	return &Handler{builder: builder}
}

// Deck handles POST /api/v1/deck.
//
// The body is decoded leniently: a missing, empty, or malformed body
// falls back to the zero request, which still produces a valid deck
// for an empty query. The session ID comes from the X-Session-ID
// header first, then the body, then a generated UUID.
func (h *Handler) Deck(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var body models.DeckRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&body); err != nil {
		l := logging.Ctx(r.Context())
		l.Debug().Err(err).Msg("Deck request body unreadable, using defaults")
		body = models.DeckRequest{}
	}

	sessionID := r.Header.Get("X-Session-ID")
	if sessionID == "" {
		sessionID = body.SessionID
	}
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	reroll := body.Reroll
	if reroll < 0 {
		reroll = 0
	}

	req := recommend.Request{
		Query:     body.Query,
		SessionID: sessionID,
		Day:       time.Now().UTC().Format("2006-01-02"),
		Reroll:    reroll,
		Feedback: recommend.Feedback{
			Kept:   parseIDList(body.KeptIDs),
			Passed: parseIDList(body.PassedIDs),
		},
		RequestID: middleware.GetRequestID(r.Context()),
	}

	deck, err := h.builder.BuildDeck(r.Context(), req)
	if err != nil {
		if errors.Is(err, recommend.ErrUpstream) {
			metrics.RecordDeck("upstream_error", 0, time.Since(start))
			respondError(w, http.StatusBadGateway, models.ErrCodeUpstream,
				"movie catalog unavailable", err)
			return
		}
		metrics.RecordDeck("error", 0, time.Since(start))
		respondError(w, http.StatusInternalServerError, models.ErrCodeInternal,
			"failed to build deck", err)
		return
	}

	elapsed := time.Since(start)
	metrics.RecordDeck("success", len(deck.Cards), elapsed)

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   deck,
		Metadata: models.Metadata{
			Timestamp:   time.Now().UTC(),
			QueryTimeMS: elapsed.Milliseconds(),
		},
	})
}

// Health handles GET /healthz. Liveness only: it reports that the
// process is serving, not that the upstream catalog is reachable.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   map[string]string{"status": "healthy"},
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
		},
	})
}
