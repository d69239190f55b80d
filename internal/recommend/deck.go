// What to Watch - Deterministic Movie Deck Recommendations
// Copyright 2026 GlenTheReb
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/GlenTheReb/what-to-watch

package recommend

// Deck assembly parameters.
const (
	// DeckSize is the output ceiling.
	DeckSize = 10

	// topPicks and midPicks are how many post-shuffle entries each
	// bucket contributes before the rank-order top-up.
	topPicks = 6
	midPicks = 4
)

// Reason labels, in precedence order (first match wins).
const (
	reasonUnderrated = "Hidden gem"
	reasonBadMovie   = "So bad it's good"
	reasonTrippy     = "Delightfully weird"
	reasonComedy     = "Laughs incoming"
	reasonHorror     = "Scares ahead"
	reasonMystery    = "A case to crack"
	reasonDefault    = "Curated pick"
)

// AssembleDeck builds the final card list from the post-shuffle ranking:
// the first topPicks entries of the top bucket plus the first midPicks of
// the mid bucket, topped up in rank order (skipping already-chosen IDs)
// until DeckSize or pool exhaustion. Fewer than DeckSize cards only when
// the whole eligible pool is smaller.
//
// ranked must already be bucket-shuffled; its pre-shuffle rank order is
// not recoverable here, so the rank-order top-up list is passed
// separately.
func AssembleDeck(shuffled, rankOrder []ScoredCandidate, intent Intent) []Card {
	chosen := make([]Candidate, 0, DeckSize)
	chosenIDs := make(map[int]struct{}, DeckSize)

	take := func(s []ScoredCandidate, n int) {
		for i := 0; i < n && i < len(s); i++ {
			c := s[i].Candidate
			if _, dup := chosenIDs[c.ID]; dup {
				continue
			}
			chosenIDs[c.ID] = struct{}{}
			chosen = append(chosen, c)
		}
	}

	top := topBucketEnd
	if top > len(shuffled) {
		top = len(shuffled)
	}
	mid := midBucketEnd
	if mid > len(shuffled) {
		mid = len(shuffled)
	}

	take(shuffled[:top], topPicks)
	if mid > top {
		take(shuffled[top:mid], midPicks)
	}

	// Top up from the full rank-ordered list.
	for _, sc := range rankOrder {
		if len(chosen) >= DeckSize {
			break
		}
		if _, dup := chosenIDs[sc.Candidate.ID]; dup {
			continue
		}
		chosenIDs[sc.Candidate.ID] = struct{}{}
		chosen = append(chosen, sc.Candidate)
	}

	if len(chosen) > DeckSize {
		chosen = chosen[:DeckSize]
	}

	cards := make([]Card, 0, len(chosen))
	for _, c := range chosen {
		cards = append(cards, Card{
			ID:          c.ID,
			Title:       c.Title,
			ReleaseYear: c.Year(),
			Kind:        "movie",
			Reason:      reasonFor(c, intent),
			PosterURL:   c.PosterPath,
		})
	}
	return cards
}

// reasonFor picks the card's reason label. Precedence:
// underrated > badMovie > trippy > comedy > horror > mystery > default.
func reasonFor(c Candidate, intent Intent) string {
	switch {
	case intent.Underrated:
		return reasonUnderrated
	case intent.BadMovie:
		return reasonBadMovie
	case intent.Trippy && overviewIsTrippy(c.Overview):
		return reasonTrippy
	case intent.Comedy && c.HasGenre(GenreComedy):
		return reasonComedy
	case intent.Horror && c.HasGenre(GenreHorror):
		return reasonHorror
	case intent.Mystery && c.HasGenre(GenreMystery):
		return reasonMystery
	default:
		return reasonDefault
	}
}
