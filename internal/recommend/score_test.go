// What to Watch - Deterministic Movie Deck Recommendations
// Copyright 2026 GlenTheReb
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/GlenTheReb/what-to-watch

package recommend

import (
	"math"
	"testing"
)

const scoreEpsilon = 1e-9

func emptyWeights() GenreWeights {
	return GenreWeights{Likes: map[int]int{}, Passes: map[int]int{}}
}

func TestScoreBaseTerms(t *testing.T) {
	c := makeCandidate(1)
	c.VoteAverage = 8.0
	c.VoteCount = 999

	want := 2*8.0 + 3*math.Log10(1000)
	got := Score(c, Intent{}, emptyWeights())

	if math.Abs(got-want) > scoreEpsilon {
		t.Errorf("Score = %f, want %f", got, want)
	}
}

func TestScoreGenreBonuses(t *testing.T) {
	tests := []struct {
		name   string
		intent Intent
		genre  int
		bonus  float64
	}{
		{"comedy", Intent{Comedy: true}, GenreComedy, 18},
		{"horror", Intent{Horror: true}, GenreHorror, 18},
		{"mystery", Intent{Mystery: true}, GenreMystery, 14},
		{"anime", Intent{Anime: true}, GenreAnimation, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tagged := makeCandidate(1, tt.genre)
			plain := makeCandidate(2)

			diff := Score(tagged, tt.intent, emptyWeights()) - Score(plain, tt.intent, emptyWeights())
			if math.Abs(diff-tt.bonus) > scoreEpsilon {
				t.Errorf("bonus = %f, want %f", diff, tt.bonus)
			}
		})
	}
}

func TestScoreGenreBonusRequiresIntent(t *testing.T) {
	tagged := makeCandidate(1, GenreHorror)
	plain := makeCandidate(2)

	diff := Score(tagged, Intent{}, emptyWeights()) - Score(plain, Intent{}, emptyWeights())
	if math.Abs(diff) > scoreEpsilon {
		t.Errorf("genre bonus applied without intent: diff = %f", diff)
	}
}

func TestScoreUnderratedTerm(t *testing.T) {
	obscure := makeCandidate(1)
	obscure.Popularity = 9 // log10(10) = 1 -> bonus 20

	got := Score(obscure, Intent{Underrated: true}, emptyWeights())
	want := Score(obscure, Intent{}, emptyWeights()) + 20.0

	if math.Abs(got-want) > scoreEpsilon {
		t.Errorf("underrated score = %f, want %f", got, want)
	}
}

func TestScoreUnderratedTermFloorsAtZero(t *testing.T) {
	famous := makeCandidate(1)
	famous.Popularity = 9999 // log10 term exceeds the base, clamps to 0

	got := Score(famous, Intent{Underrated: true}, emptyWeights())
	want := Score(famous, Intent{}, emptyWeights())

	if math.Abs(got-want) > scoreEpsilon {
		t.Errorf("underrated term went negative: got %f, want %f", got, want)
	}
}

func TestScoreBadMovieTerm(t *testing.T) {
	c := makeCandidate(1)
	c.VoteAverage = 4.0
	c.Popularity = 99 // log10(100) = 2

	got := Score(c, Intent{BadMovie: true}, emptyWeights())
	want := Score(c, Intent{}, emptyWeights()) - 2*4.0 + 2*2.0

	if math.Abs(got-want) > scoreEpsilon {
		t.Errorf("bad movie score = %f, want %f", got, want)
	}
}

func TestScoreTrippyOverviewBonus(t *testing.T) {
	trippy := makeCandidate(1)
	trippy.Overview = "A Surreal journey through dream logic."
	plain := makeCandidate(2)
	plain.Overview = "A straightforward heist."

	intent := Intent{Trippy: true}
	diff := Score(trippy, intent, emptyWeights()) - Score(plain, intent, emptyWeights())

	if math.Abs(diff-6.0) > scoreEpsilon {
		t.Errorf("trippy bonus = %f, want 6", diff)
	}
}

func TestScorePreferenceShaping(t *testing.T) {
	// Three prior keeps and zero passes on a genre add exactly +6 to any
	// candidate tagged with it.
	w := GenreWeights{
		Likes:  map[int]int{GenreHorror: 3},
		Passes: map[int]int{},
	}

	tagged := makeCandidate(1, GenreHorror)
	plain := makeCandidate(2)

	diff := Score(tagged, Intent{}, w) - Score(plain, Intent{}, w)
	if math.Abs(diff-6.0) > scoreEpsilon {
		t.Errorf("preference delta = %f, want +6", diff)
	}
}

func TestScorePassPenalty(t *testing.T) {
	w := GenreWeights{
		Likes:  map[int]int{},
		Passes: map[int]int{GenreComedy: 2},
	}

	tagged := makeCandidate(1, GenreComedy)
	plain := makeCandidate(2)

	diff := Score(tagged, Intent{}, w) - Score(plain, Intent{}, w)
	if math.Abs(diff+2.0) > scoreEpsilon {
		t.Errorf("pass penalty delta = %f, want -2", diff)
	}
}

func TestRankCandidatesSortsDescending(t *testing.T) {
	low := makeCandidate(1)
	low.VoteAverage = 5
	high := makeCandidate(2)
	high.VoteAverage = 9

	ranked := rankCandidates([]Candidate{low, high}, Intent{}, emptyWeights())

	if ranked[0].Candidate.ID != 2 {
		t.Errorf("ranked[0].ID = %d, want 2", ranked[0].Candidate.ID)
	}
	if ranked[0].Score < ranked[1].Score {
		t.Errorf("ranking not descending: %f < %f", ranked[0].Score, ranked[1].Score)
	}
}

func TestRankCandidatesStableOnTies(t *testing.T) {
	// Identical candidates tie exactly; stable sort must keep pool order.
	a := makeCandidate(1)
	b := makeCandidate(2)
	c := makeCandidate(3)

	ranked := rankCandidates([]Candidate{a, b, c}, Intent{}, emptyWeights())

	for i, wantID := range []int{1, 2, 3} {
		if ranked[i].Candidate.ID != wantID {
			t.Errorf("ranked[%d].ID = %d, want %d", i, ranked[i].Candidate.ID, wantID)
		}
	}
}
