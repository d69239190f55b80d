// What to Watch - Deterministic Movie Deck Recommendations
// Copyright 2026 GlenTheReb
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/GlenTheReb/what-to-watch

package recommend

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Note: this package imports no other internal packages. The Source
// interface keeps the catalog adapter decoupled and the pipeline pure.

// ErrUpstream wraps any Candidate Source failure. One failed slice fails
// the whole request; there is no partial degradation and no internal
// retry. Retry and timeout policy belongs to the source.
var ErrUpstream = errors.New("candidate source fetch failed")

// Engine runs the deck pipeline. It holds no per-request state and is
// safe for concurrent use.
type Engine struct {
	source     Source
	logger     zerolog.Logger
	posterBase string
}

// NewEngine creates an engine over the given candidate source. posterBase
// prefixes catalog-relative poster paths into absolute URLs on outgoing
// cards.
func NewEngine(source Source, posterBase string, logger zerolog.Logger) *Engine {
	return &Engine{
		source:     source,
		posterBase: strings.TrimSuffix(posterBase, "/"),
		logger:     logger.With().Str("component", "recommend").Logger(),
	}
}

// BuildDeck runs one request through the pipeline. Cancellation is
// caller-driven via ctx; the engine sets no timeouts of its own.
func (e *Engine) BuildDeck(ctx context.Context, req Request) (*Deck, error) {
	start := time.Now()
	req.Feedback = req.Feedback.truncate()

	intent := ExtractIntent(req.Query)
	logger := e.logger.With().
		Str("request_id", req.RequestID).
		Str("mode", intent.Mode()).
		Int("reroll", req.Reroll).
		Logger()

	plan := BuildSlicePlan(intent, req.Day)
	slices, err := e.fetchSlices(ctx, plan)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	pool := MergeSlices(slices)
	weights := BuildGenreWeights(pool, req.Feedback)
	eligible := FilterPool(pool, intent, req.Feedback.SeenSet())

	ranked := rankCandidates(eligible, intent, weights)

	shuffled := make([]ScoredCandidate, len(ranked))
	copy(shuffled, ranked)
	shuffleBuckets(shuffled, SeedFor(req.SessionID, req.Day, req.Reroll))

	cards := AssembleDeck(shuffled, ranked, intent)
	for i := range cards {
		cards[i].PosterURL = e.posterURL(cards[i].PosterURL)
	}

	deck := &Deck{
		Interpretation: Interpretation{
			Mode:   intent.Mode(),
			Intent: intent,
		},
		Cards:              cards,
		TotalCandidates:    len(pool),
		EligibleCandidates: len(eligible),
		LatencyMS:          time.Since(start).Milliseconds(),
	}

	logger.Debug().
		Int("slices", len(plan)).
		Int("pool", len(pool)).
		Int("eligible", len(eligible)).
		Int("cards", len(cards)).
		Int64("latency_ms", deck.LatencyMS).
		Msg("deck assembled")

	return deck, nil
}

// fetchSlices issues every slice query concurrently and joins. The first
// error cancels the remaining fetches and fails the request.
func (e *Engine) fetchSlices(ctx context.Context, plan []SliceQuery) ([][]Candidate, error) {
	results := make([][]Candidate, len(plan))

	g, gctx := errgroup.WithContext(ctx)
	for i, q := range plan {
		g.Go(func() error {
			candidates, err := e.source.Fetch(gctx, q)
			if err != nil {
				return fmt.Errorf("slice %s page %d: %w", q.Kind, q.Page, err)
			}
			results[i] = candidates
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (e *Engine) posterURL(path string) string {
	if path == "" || strings.HasPrefix(path, "http") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return e.posterBase + path
}
