// What to Watch - Deterministic Movie Deck Recommendations
// Copyright 2026 GlenTheReb
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/GlenTheReb/what-to-watch

package recommend

import "strings"

// Intent is the fixed boolean signature derived from query text. Any
// number of flags may be set; the zero value means no signal.
type Intent struct {
	Anime      bool `json:"anime"`
	Comedy     bool `json:"comedy"`
	Horror     bool `json:"horror"`
	Mystery    bool `json:"mystery"`
	Trippy     bool `json:"trippy"`
	Underrated bool `json:"underrated"`
	BadMovie   bool `json:"bad_movie"`
}

// intentLexicon maps each flag to the substrings that trigger it.
var intentLexicon = struct {
	anime, comedy, horror, mystery, trippy, underrated, badMovie []string
}{
	anime:      []string{"anime", "shonen", "isekai", "slice of life"},
	comedy:     []string{"comedy", "funny", "humour", "humor", "laugh", "satire"},
	horror:     []string{"horror", "scary", "slasher", "haunting", "ghost", "demon"},
	mystery:    []string{"mystery", "detective", "whodunit", "investigation", "case"},
	trippy:     []string{"trippy", "psychedelic", "surreal", "mind-bending", "mind bending", "weird", "acid"},
	underrated: []string{"underrated", "hidden gem", "hidden gems", "gem", "gems", "under the radar"},
	badMovie:   []string{"bad movie", "so bad", "trash", "terrible", "awful", "guilty pleasure"},
}

// ExtractIntent lower-cases the query and tests substring membership per
// flag. Total function: empty text yields the zero signature.
func ExtractIntent(query string) Intent {
	text := strings.ToLower(query)
	return Intent{
		Anime:      containsAny(text, intentLexicon.anime),
		Comedy:     containsAny(text, intentLexicon.comedy),
		Horror:     containsAny(text, intentLexicon.horror),
		Mystery:    containsAny(text, intentLexicon.mystery),
		Trippy:     containsAny(text, intentLexicon.trippy),
		Underrated: containsAny(text, intentLexicon.underrated),
		BadMovie:   containsAny(text, intentLexicon.badMovie),
	}
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

// SingleGenre returns the genre tag to hard-filter on when exactly one of
// the four genre flags is set and neither underrated nor badMovie is set.
func (i Intent) SingleGenre() (genreID int, ok bool) {
	if i.Underrated || i.BadMovie {
		return 0, false
	}

	set := 0
	if i.Anime {
		set++
		genreID = GenreAnimation
	}
	if i.Comedy {
		set++
		genreID = GenreComedy
	}
	if i.Horror {
		set++
		genreID = GenreHorror
	}
	if i.Mystery {
		set++
		genreID = GenreMystery
	}

	if set != 1 {
		return 0, false
	}
	return genreID, true
}

// Mode derives a short interpretation label for observability. Precedence
// mirrors the reason-label ordering of the deck assembler.
func (i Intent) Mode() string {
	switch {
	case i.Underrated:
		return "underrated"
	case i.BadMovie:
		return "bad_movie"
	case i.Anime:
		return "genre:animation"
	case i.Comedy:
		return "genre:comedy"
	case i.Horror:
		return "genre:horror"
	case i.Mystery:
		return "genre:mystery"
	case i.Trippy:
		return "trippy"
	default:
		return "default"
	}
}
