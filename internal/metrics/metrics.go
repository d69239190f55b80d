// What to Watch - Deterministic Movie Deck Recommendations
// Copyright 2026 GlenTheReb
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/GlenTheReb/what-to-watch

// Package metrics exposes Prometheus collectors for the deck pipeline,
// the catalog upstream and the slice cache. Collectors are registered via
// promauto and served at /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	HTTPActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_requests",
			Help: "Current number of in-flight HTTP requests",
		},
	)

	// Deck pipeline metrics.
	DeckRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deck_requests_total",
			Help: "Total number of deck requests by outcome",
		},
		[]string{"outcome"}, // "success", "upstream_error"
	)

	DeckRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "deck_request_duration_seconds",
			Help:    "End-to-end deck pipeline latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	DeckCardsReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "deck_cards_returned",
			Help:    "Cards returned per deck (10 unless the pool ran dry)",
			Buckets: []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		},
	)

	// Catalog upstream metrics.
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_requests_total",
			Help: "Total catalog slice fetches by kind",
		},
		[]string{"kind"}, // "broad", "era", "trending"
	)

	UpstreamErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_errors_total",
			Help: "Failed catalog slice fetches by kind",
		},
		[]string{"kind"},
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_request_duration_seconds",
			Help:    "Catalog fetch latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"kind"},
	)

	// Circuit breaker state: 0=closed, 1=open, 2=half-open.
	BreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_breaker_state",
			Help: "Catalog circuit breaker state (0=closed, 1=open, 2=half-open)",
		},
	)

	// Slice cache metrics.
	CacheHitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Cache hits by cache type",
		},
		[]string{"cache_type"},
	)

	CacheMissesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Cache misses by cache type",
		},
		[]string{"cache_type"},
	)
)

// RecordHTTPRequest records one completed HTTP request.
func RecordHTTPRequest(method, endpoint string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(start bool) {
	if start {
		HTTPActiveRequests.Inc()
	} else {
		HTTPActiveRequests.Dec()
	}
}

// RecordDeck records one completed deck request.
func RecordDeck(outcome string, cards int, duration time.Duration) {
	DeckRequestsTotal.WithLabelValues(outcome).Inc()
	if outcome == "success" {
		DeckCardsReturned.Observe(float64(cards))
		DeckRequestDuration.Observe(duration.Seconds())
	}
}

// RecordUpstream records one catalog fetch.
func RecordUpstream(kind string, duration time.Duration, err error) {
	UpstreamRequestsTotal.WithLabelValues(kind).Inc()
	UpstreamRequestDuration.WithLabelValues(kind).Observe(duration.Seconds())
	if err != nil {
		UpstreamErrorsTotal.WithLabelValues(kind).Inc()
	}
}
