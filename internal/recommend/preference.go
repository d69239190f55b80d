// What to Watch - Deterministic Movie Deck Recommendations
// Copyright 2026 GlenTheReb
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/GlenTheReb/what-to-watch

package recommend

// GenreWeights holds per-genre like and pass occurrence counts derived
// from session feedback. Counts are raw, with no decay or normalization,
// and are scoped to genres present in the current slice union: feedback
// on items outside today's pool contributes nothing.
type GenreWeights struct {
	Likes  map[int]int
	Passes map[int]int
}

// BuildGenreWeights counts feedback occurrences per genre tag over the
// merged pre-filter pool. The pre-filter pool is required: kept and
// passed items are excluded later by the seen-ID filter, so counting any
// later would always see empty history.
func BuildGenreWeights(pool []Candidate, fb Feedback) GenreWeights {
	kept := make(map[int]struct{}, len(fb.Kept))
	for _, id := range fb.Kept {
		kept[id] = struct{}{}
	}
	passed := make(map[int]struct{}, len(fb.Passed))
	for _, id := range fb.Passed {
		passed[id] = struct{}{}
	}

	w := GenreWeights{
		Likes:  make(map[int]int),
		Passes: make(map[int]int),
	}

	for _, c := range pool {
		if _, ok := kept[c.ID]; ok {
			for _, g := range c.GenreIDs {
				w.Likes[g]++
			}
		}
		if _, ok := passed[c.ID]; ok {
			for _, g := range c.GenreIDs {
				w.Passes[g]++
			}
		}
	}

	return w
}
