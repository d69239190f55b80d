// What to Watch - Deterministic Movie Deck Recommendations
// Copyright 2026 GlenTheReb
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/GlenTheReb/what-to-watch

package recommend

import (
	"context"
	"strconv"
)

// TMDB genre tag IDs used by intent filters and score bonuses.
const (
	GenreAnimation = 16
	GenreComedy    = 35
	GenreHorror    = 27
	GenreMystery   = 9648
)

// Candidate is one catalog item eligible for ranking in a request.
// Immutable once fetched; the pipeline never mutates candidate fields.
type Candidate struct {
	// ID is the unique catalog key (TMDB movie ID).
	ID int `json:"id"`

	// Title is the display title.
	Title string `json:"title"`

	// ReleaseDate is the catalog release date in YYYY-MM-DD form.
	// May be empty for unreleased or poorly tagged items.
	ReleaseDate string `json:"release_date"`

	// GenreIDs is the set of catalog genre tags.
	GenreIDs []int `json:"genre_ids"`

	// VoteAverage is the mean user rating on a 0-10 scale.
	VoteAverage float64 `json:"vote_average"`

	// VoteCount is the number of ratings behind VoteAverage.
	VoteCount int `json:"vote_count"`

	// Popularity is the catalog's rolling popularity metric (>= 0).
	Popularity float64 `json:"popularity"`

	// Overview is the synopsis text.
	Overview string `json:"overview"`

	// PosterPath is the catalog-relative poster reference. Empty means
	// the item has no poster and is dropped by the hygiene filters.
	PosterPath string `json:"poster_path"`
}

// Year returns the release year, or zero when the date is absent or
// malformed.
func (c Candidate) Year() int {
	if len(c.ReleaseDate) < 4 {
		return 0
	}
	y, err := strconv.Atoi(c.ReleaseDate[:4])
	if err != nil {
		return 0
	}
	return y
}

// HasGenre reports whether the candidate carries the given genre tag.
func (c Candidate) HasGenre(genreID int) bool {
	for _, g := range c.GenreIDs {
		if g == genreID {
			return true
		}
	}
	return false
}

// ScoredCandidate pairs a candidate with its rank score. It exists only
// during ranking and never leaves the pipeline.
type ScoredCandidate struct {
	Candidate Candidate
	Score     float64
}

// Feedback carries the session's accumulated binary feedback. Both slices
// are caller-owned and most-recent-last; the engine re-truncates them to
// MaxFeedback defensively.
type Feedback struct {
	// Kept lists IDs of cards the user kept.
	Kept []int `json:"kept"`

	// Passed lists IDs of cards the user passed on.
	Passed []int `json:"passed"`
}

// MaxFeedback caps how much history either feedback list may carry.
const MaxFeedback = 200

// truncate keeps the most recent MaxFeedback entries of each list.
func (f Feedback) truncate() Feedback {
	if len(f.Kept) > MaxFeedback {
		f.Kept = f.Kept[len(f.Kept)-MaxFeedback:]
	}
	if len(f.Passed) > MaxFeedback {
		f.Passed = f.Passed[len(f.Passed)-MaxFeedback:]
	}
	return f
}

// SeenSet returns the union of kept and passed IDs.
func (f Feedback) SeenSet() map[int]struct{} {
	seen := make(map[int]struct{}, len(f.Kept)+len(f.Passed))
	for _, id := range f.Kept {
		seen[id] = struct{}{}
	}
	for _, id := range f.Passed {
		seen[id] = struct{}{}
	}
	return seen
}

// Card is one entry of the final deck.
type Card struct {
	// ID is the catalog key of the recommended item.
	ID int `json:"id"`

	// Title is the display title.
	Title string `json:"title"`

	// ReleaseYear is the release year, zero when unknown.
	ReleaseYear int `json:"release_year"`

	// Kind is the result category. Only "movie" is populated today.
	Kind string `json:"kind"`

	// Reason is a short human-readable label for why the card was picked.
	Reason string `json:"reason"`

	// PosterURL is the absolute poster image URL.
	PosterURL string `json:"poster_url"`
}

// Request is one logical deck request after the caller-facing layer has
// applied its defaulting rules.
type Request struct {
	// Query is the free-text preference query. Empty is valid.
	Query string

	// SessionID is the opaque caller-supplied stable session string.
	SessionID string

	// Day is the UTC calendar day (YYYY-MM-DD) the request falls on.
	// Supplied by the caller-facing layer so the pipeline stays pure.
	Day string

	// Reroll is the nonnegative reroll index for this query.
	Reroll int

	// Feedback is the session's kept/passed history.
	Feedback Feedback

	// RequestID is an opaque tracing identifier.
	RequestID string
}

// Interpretation echoes how the query text was understood, for
// observability.
type Interpretation struct {
	// Mode is a short derived label: "underrated", "bad_movie",
	// "genre:<name>", "trippy" or "default".
	Mode string `json:"mode"`

	// Intent is the full extracted signature.
	Intent Intent `json:"intent"`
}

// Deck is the ordered response for one request, at most DeckSize cards.
type Deck struct {
	// Interpretation echoes the extracted signature and mode.
	Interpretation Interpretation `json:"interpretation"`

	// Cards is the final ordered card list.
	Cards []Card `json:"cards"`

	// TotalCandidates is the size of the merged pool before filtering.
	TotalCandidates int `json:"total_candidates"`

	// EligibleCandidates is the pool size after hygiene and hard filters.
	EligibleCandidates int `json:"eligible_candidates"`

	// LatencyMS is the total pipeline latency in milliseconds.
	LatencyMS int64 `json:"latency_ms"`
}

// Source abstracts the external catalog. One call resolves one slice.
// Failures must propagate as errors; the pipeline performs no retries
// and no partial degradation.
type Source interface {
	Fetch(ctx context.Context, q SliceQuery) ([]Candidate, error)
}
