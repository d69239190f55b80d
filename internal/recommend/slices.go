// What to Watch - Deterministic Movie Deck Recommendations
// Copyright 2026 GlenTheReb
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/GlenTheReb/what-to-watch

package recommend

// SliceKind classifies a catalog query for cache TTL selection and
// metrics labeling.
type SliceKind int

const (
	// SliceBroad is a broad popularity or top-rated query with no era
	// or genre parameters.
	SliceBroad SliceKind = iota
	// SliceEra is a parametrized era/genre discover query.
	SliceEra
	// SliceTrending is a daily trending query.
	SliceTrending
)

// String returns the metrics label for the slice kind.
func (k SliceKind) String() string {
	switch k {
	case SliceBroad:
		return "broad"
	case SliceEra:
		return "era"
	case SliceTrending:
		return "trending"
	default:
		return "unknown"
	}
}

// Catalog sort orders understood by the Candidate Source.
const (
	SortPopularityDesc  = "popularity.desc"
	SortVoteAverageDesc = "vote_average.desc"
)

// SliceQuery is one parametrized catalog query. The exact field tuple is
// the read-through cache key, so every field must be value-comparable.
type SliceQuery struct {
	// Kind selects the cache TTL class and the metrics label.
	Kind SliceKind

	// Page is the 1-based result page.
	Page int

	// SortBy is the catalog sort order.
	SortBy string

	// VoteCountFloor is the minimum vote count requested upstream.
	VoteCountFloor int

	// VoteAverageFloor is the minimum vote average requested upstream
	// (0 = unbounded).
	VoteAverageFloor float64

	// VoteAverageCeil caps the vote average upstream (0 = unbounded).
	// Used by the bad-movie slice to surface low-rated items.
	VoteAverageCeil float64

	// GenreID narrows the slice to one genre tag (0 = none).
	GenreID int

	// ReleaseFrom and ReleaseTo bound the release-date window
	// (YYYY-MM-DD, empty = unbounded).
	ReleaseFrom string
	ReleaseTo   string
}

// Era windows for the default slice plan. The modern era is closed with
// the request day so cache keys stay stable within a calendar day.
const (
	classicEraFrom = "1975-01-01"
	classicEraTo   = "1999-12-31"
	modernEraFrom  = "2000-01-01"
)

// discoverPages is how many pages each parametrized discover tuple pulls.
const discoverPages = 2

// Vote-count floors requested upstream. These mirror the hygiene filters
// so most fetched candidates survive filtering.
const (
	defaultVoteFloor    = 200
	underratedVoteFloor = 50
)

// badMovieVoteCeil caps vote average for the bad-movie slice.
const badMovieVoteCeil = 5.0

// underratedAvgFloor keeps vote-average-sorted underrated slices from
// degenerating into tiny-sample perfect scores.
const underratedAvgFloor = 6.0

// BuildSlicePlan maps an intent signature to the set of catalog queries
// to fetch for one request. today is the request's UTC calendar day and
// closes the modern era window.
//
// Two eras by two pages form the discover backbone. Underrated intent
// swaps the sort to vote average and lowers the vote floor so obscure
// items can surface; bad-movie intent adds a low-rated slice. A
// single-genre intent adds genre-narrowed slices alongside the plain
// ones, keeping enough breadth for the aggregator's genre-filter revert.
func BuildSlicePlan(intent Intent, today string) []SliceQuery {
	sortBy := SortPopularityDesc
	voteFloor := defaultVoteFloor
	avgFloor := 0.0
	if intent.Underrated {
		sortBy = SortVoteAverageDesc
		voteFloor = underratedVoteFloor
		avgFloor = underratedAvgFloor
	}

	eras := [][2]string{
		{classicEraFrom, classicEraTo},
		{modernEraFrom, today},
	}

	plan := make([]SliceQuery, 0, 12)

	// Broad anchor slice plus daily trending for variety.
	plan = append(plan,
		SliceQuery{Kind: SliceBroad, Page: 1, SortBy: sortBy, VoteCountFloor: voteFloor, VoteAverageFloor: avgFloor},
		SliceQuery{Kind: SliceTrending, Page: 1},
	)

	genreID, hasGenre := intent.SingleGenre()

	for _, era := range eras {
		for page := 1; page <= discoverPages; page++ {
			plan = append(plan, SliceQuery{
				Kind:             SliceEra,
				Page:             page,
				SortBy:           sortBy,
				VoteCountFloor:   voteFloor,
				VoteAverageFloor: avgFloor,
				ReleaseFrom:      era[0],
				ReleaseTo:        era[1],
			})
			if hasGenre {
				plan = append(plan, SliceQuery{
					Kind:             SliceEra,
					Page:             page,
					SortBy:           sortBy,
					VoteCountFloor:   voteFloor,
					VoteAverageFloor: avgFloor,
					GenreID:          genreID,
					ReleaseFrom:      era[0],
					ReleaseTo:        era[1],
				})
			}
		}
	}

	if intent.BadMovie {
		plan = append(plan, SliceQuery{
			Kind:            SliceBroad,
			Page:            1,
			SortBy:          SortPopularityDesc,
			VoteCountFloor:  defaultVoteFloor,
			VoteAverageCeil: badMovieVoteCeil,
		})
	}

	return plan
}
