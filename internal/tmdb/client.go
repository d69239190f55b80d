// What to Watch - Deterministic Movie Deck Recommendations
// Copyright 2026 GlenTheReb
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/GlenTheReb/what-to-watch

// Package tmdb implements the Candidate Source contract over the TMDB
// HTTP API: parametrized discover and trending queries returning bounded
// candidate lists. The client carries a token-bucket rate limiter and a
// circuit breaker; it performs no retries and no fallback, so every
// failure propagates to the pipeline as a hard error.
package tmdb

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/GlenTheReb/what-to-watch/internal/metrics"
	"github.com/GlenTheReb/what-to-watch/internal/recommend"
)

// DefaultBaseURL is the production TMDB API root.
const DefaultBaseURL = "https://api.themoviedb.org/3"

// Options configures the client.
type Options struct {
	// BaseURL is the API root. Defaults to DefaultBaseURL.
	BaseURL string

	// APIToken is the TMDB v4 read access token, sent as a bearer token.
	APIToken string

	// RequestsPerSecond and Burst configure the client-side rate
	// limiter. TMDB allows roughly 40 requests per 10 seconds.
	RequestsPerSecond float64
	Burst             int

	// Breaker tunes the upstream circuit breaker.
	Breaker BreakerOptions

	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client
}

// BreakerOptions tunes the circuit breaker wrapped around every call.
type BreakerOptions struct {
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold uint32
}

// Client talks to the TMDB API. Safe for concurrent use.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker[[]recommend.Candidate]
	logger     zerolog.Logger
}

// NewClient creates a TMDB client.
func NewClient(opts Options, logger zerolog.Logger) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.RequestsPerSecond <= 0 {
		opts.RequestsPerSecond = 4
	}
	if opts.Burst <= 0 {
		opts.Burst = 8
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	if opts.Breaker.MaxRequests == 0 {
		opts.Breaker.MaxRequests = 3
	}
	if opts.Breaker.Timeout == 0 {
		opts.Breaker.Timeout = 30 * time.Second
	}
	if opts.Breaker.FailureThreshold == 0 {
		opts.Breaker.FailureThreshold = 5
	}

	settings := gobreaker.Settings{
		Name:        "tmdb",
		MaxRequests: opts.Breaker.MaxRequests,
		Interval:    opts.Breaker.Interval,
		Timeout:     opts.Breaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= opts.Breaker.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.BreakerState.Set(float64(to))
			logger.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state change")
		},
	}

	return &Client{
		baseURL:    opts.BaseURL,
		token:      opts.APIToken,
		httpClient: opts.HTTPClient,
		limiter:    rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), opts.Burst),
		breaker:    gobreaker.NewCircuitBreaker[[]recommend.Candidate](settings),
		logger:     logger.With().Str("component", "tmdb").Logger(),
	}
}

// Fetch resolves one slice query. Implements recommend.Source.
func (c *Client) Fetch(ctx context.Context, q recommend.SliceQuery) ([]recommend.Candidate, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	start := time.Now()
	candidates, err := c.breaker.Execute(func() ([]recommend.Candidate, error) {
		return c.fetch(ctx, q)
	})
	metrics.RecordUpstream(q.Kind.String(), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return candidates, nil
}

func (c *Client) fetch(ctx context.Context, q recommend.SliceQuery) ([]recommend.Candidate, error) {
	endpoint, params := c.buildQuery(q)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tmdb returned status %d", resp.StatusCode)
	}

	var page pageResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	candidates := make([]recommend.Candidate, 0, len(page.Results))
	for _, m := range page.Results {
		candidates = append(candidates, m.toCandidate())
	}
	return candidates, nil
}

// buildQuery maps a slice query onto a TMDB endpoint and parameters.
func (c *Client) buildQuery(q recommend.SliceQuery) (string, url.Values) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("include_adult", "false")
	params.Set("language", "en-US")

	if q.Kind == recommend.SliceTrending {
		return c.baseURL + "/trending/movie/day", params
	}

	params.Set("sort_by", q.SortBy)
	if q.VoteCountFloor > 0 {
		params.Set("vote_count.gte", strconv.Itoa(q.VoteCountFloor))
	}
	if q.VoteAverageFloor > 0 {
		params.Set("vote_average.gte", formatFloat(q.VoteAverageFloor))
	}
	if q.VoteAverageCeil > 0 {
		params.Set("vote_average.lte", formatFloat(q.VoteAverageCeil))
	}
	if q.GenreID > 0 {
		params.Set("with_genres", strconv.Itoa(q.GenreID))
	}
	if q.ReleaseFrom != "" {
		params.Set("primary_release_date.gte", q.ReleaseFrom)
	}
	if q.ReleaseTo != "" {
		params.Set("primary_release_date.lte", q.ReleaseTo)
	}
	return c.baseURL + "/discover/movie", params
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
