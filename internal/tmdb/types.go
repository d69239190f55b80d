// What to Watch - Deterministic Movie Deck Recommendations
// Copyright 2026 GlenTheReb
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/GlenTheReb/what-to-watch

package tmdb

import "github.com/GlenTheReb/what-to-watch/internal/recommend"

// pageResponse is the envelope TMDB wraps around discover and trending
// results.
type pageResponse struct {
	Page         int         `json:"page"`
	Results      []movieJSON `json:"results"`
	TotalPages   int         `json:"total_pages"`
	TotalResults int         `json:"total_results"`
}

// movieJSON is one movie entry as TMDB serializes it.
type movieJSON struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	ReleaseDate string  `json:"release_date"`
	GenreIDs    []int   `json:"genre_ids"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int     `json:"vote_count"`
	Popularity  float64 `json:"popularity"`
	Overview    string  `json:"overview"`
	PosterPath  string  `json:"poster_path"`
}

func (m movieJSON) toCandidate() recommend.Candidate {
	return recommend.Candidate{
		ID:          m.ID,
		Title:       m.Title,
		ReleaseDate: m.ReleaseDate,
		GenreIDs:    m.GenreIDs,
		VoteAverage: m.VoteAverage,
		VoteCount:   m.VoteCount,
		Popularity:  m.Popularity,
		Overview:    m.Overview,
		PosterPath:  m.PosterPath,
	}
}
