// What to Watch - Deterministic Movie Deck Recommendations
// Copyright 2026 GlenTheReb
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/GlenTheReb/what-to-watch

package recommend

// Hygiene filter thresholds.
const (
	// minVoteCount is the vote-count floor for regular requests.
	minVoteCount = 200

	// minVoteCountUnderrated is the relaxed floor when underrated
	// intent is set.
	minVoteCountUnderrated = 50

	// maxPopularityUnderrated caps popularity for underrated requests
	// so genuinely obscure items win.
	maxPopularityUnderrated = 60.0

	// minGenrePool is the smallest pool the single-genre hard filter may
	// leave behind. Below it the genre filter is discarded and the
	// unfiltered pool is reinstated, preventing empty decks at rare
	// genre/era intersections.
	minGenrePool = 25
)

// MergeSlices merges catalog slices into one pool, deduplicating by ID.
// Duplicate entries overwrite field-wise (last write wins; duplicates are
// source-identical so this is harmless) while keeping first-seen order,
// which makes the pool order deterministic for a fixed slice plan.
func MergeSlices(slices [][]Candidate) []Candidate {
	pool := make([]Candidate, 0, 128)
	index := make(map[int]int, 128)

	for _, slice := range slices {
		for _, c := range slice {
			if at, ok := index[c.ID]; ok {
				pool[at] = c
				continue
			}
			index[c.ID] = len(pool)
			pool = append(pool, c)
		}
	}

	return pool
}

// FilterPool applies the hygiene and hard filters, in order: poster
// presence, vote-count floor, popularity cap (underrated only), and
// seen-ID exclusion. When the intent names exactly one genre the matching
// tag is additionally required, unless that would shrink the pool below
// minGenrePool, in which case the genre filter is reverted.
func FilterPool(pool []Candidate, intent Intent, seen map[int]struct{}) []Candidate {
	voteFloor := minVoteCount
	if intent.Underrated {
		voteFloor = minVoteCountUnderrated
	}

	eligible := make([]Candidate, 0, len(pool))
	for _, c := range pool {
		if c.PosterPath == "" {
			continue
		}
		if c.VoteCount < voteFloor {
			continue
		}
		if intent.Underrated && c.Popularity > maxPopularityUnderrated {
			continue
		}
		if _, ok := seen[c.ID]; ok {
			continue
		}
		eligible = append(eligible, c)
	}

	genreID, ok := intent.SingleGenre()
	if !ok {
		return eligible
	}

	tagged := make([]Candidate, 0, len(eligible))
	for _, c := range eligible {
		if c.HasGenre(genreID) {
			tagged = append(tagged, c)
		}
	}
	if len(tagged) < minGenrePool {
		return eligible
	}
	return tagged
}
