// What to Watch - Deterministic Movie Deck Recommendations
// Copyright 2026 GlenTheReb
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/GlenTheReb/what-to-watch

package recommend

import (
	"math"
	"sort"
	"strings"
)

// Fixed scoring design parameters. Tuning these changes ranking for every
// user, so they live here rather than in runtime config.
const (
	weightVoteAverage = 2.0
	weightVoteCount   = 3.0

	bonusComedy  = 18.0
	bonusHorror  = 18.0
	bonusMystery = 14.0
	bonusAnime   = 10.0

	underratedBase       = 30.0
	underratedPopularity = 10.0

	badMovieVoteAverage = 2.0
	badMoviePopularity  = 2.0

	bonusTrippy = 6.0

	weightLike = 2.0
	weightPass = 1.0
)

// trippyOverviewTerms trigger the trippy overview bonus.
var trippyOverviewTerms = []string{"surreal", "psychedelic", "strange"}

// Score computes the rank score for one candidate. Pure and additive with
// no normalization; higher ranks first. Ties are intentionally left to
// the shuffler.
func Score(c Candidate, intent Intent, w GenreWeights) float64 {
	score := weightVoteAverage*c.VoteAverage +
		weightVoteCount*math.Log10(float64(c.VoteCount)+1)

	if intent.Comedy && c.HasGenre(GenreComedy) {
		score += bonusComedy
	}
	if intent.Horror && c.HasGenre(GenreHorror) {
		score += bonusHorror
	}
	if intent.Mystery && c.HasGenre(GenreMystery) {
		score += bonusMystery
	}
	if intent.Anime && c.HasGenre(GenreAnimation) {
		score += bonusAnime
	}

	if intent.Underrated {
		score += math.Max(0, underratedBase-underratedPopularity*math.Log10(c.Popularity+1))
	}
	if intent.BadMovie {
		score += -badMovieVoteAverage*c.VoteAverage + badMoviePopularity*math.Log10(c.Popularity+1)
	}

	if intent.Trippy && overviewIsTrippy(c.Overview) {
		score += bonusTrippy
	}

	for _, g := range c.GenreIDs {
		score += weightLike*float64(w.Likes[g]) - weightPass*float64(w.Passes[g])
	}

	return score
}

func overviewIsTrippy(overview string) bool {
	text := strings.ToLower(overview)
	for _, term := range trippyOverviewTerms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

// rankCandidates scores the eligible pool and sorts it descending by
// score. The sort is stable over the deterministic pool order so equal
// scores keep a reproducible relative order for the shuffler to break.
func rankCandidates(pool []Candidate, intent Intent, w GenreWeights) []ScoredCandidate {
	ranked := make([]ScoredCandidate, 0, len(pool))
	for _, c := range pool {
		ranked = append(ranked, ScoredCandidate{Candidate: c, Score: Score(c, intent, w)})
	}
	stableSortByScoreDesc(ranked)
	return ranked
}

func stableSortByScoreDesc(ranked []ScoredCandidate) {
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
}
