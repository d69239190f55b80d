// What to Watch - Deterministic Movie Deck Recommendations
// Copyright 2026 GlenTheReb
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/GlenTheReb/what-to-watch

package tmdb

import (
	"context"
	"time"

	"github.com/GlenTheReb/what-to-watch/internal/cache"
	"github.com/GlenTheReb/what-to-watch/internal/metrics"
	"github.com/GlenTheReb/what-to-watch/internal/recommend"
)

// TTL classes matched to each query type's real-world volatility:
// trending churns daily, broad popularity shifts slowly, and era slices
// are near-static.
const (
	TTLBroad    = 6 * time.Hour
	TTLTrending = 2 * time.Hour
	TTLEra      = 12 * time.Hour
)

const cacheType = "slices"

// CachedSource is a read-through cache in front of a candidate source,
// keyed by the exact slice-parameter tuple. Concurrent misses for the
// same key may both fetch and both write; the write is an idempotent
// overwrite so no locking is needed beyond the cache's own.
type CachedSource struct {
	inner recommend.Source
	cache *cache.Cache
}

// NewCachedSource wraps inner with the slice cache.
func NewCachedSource(inner recommend.Source, c *cache.Cache) *CachedSource {
	return &CachedSource{inner: inner, cache: c}
}

// Fetch implements recommend.Source.
func (s *CachedSource) Fetch(ctx context.Context, q recommend.SliceQuery) ([]recommend.Candidate, error) {
	key := cache.GenerateKey("slice", q)

	if hit, ok := s.cache.Get(key); ok {
		if candidates, ok := hit.([]recommend.Candidate); ok {
			metrics.CacheHitsTotal.WithLabelValues(cacheType).Inc()
			return candidates, nil
		}
	}
	metrics.CacheMissesTotal.WithLabelValues(cacheType).Inc()

	candidates, err := s.inner.Fetch(ctx, q)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, candidates, ttlFor(q.Kind))
	return candidates, nil
}

func ttlFor(kind recommend.SliceKind) time.Duration {
	switch kind {
	case recommend.SliceTrending:
		return TTLTrending
	case recommend.SliceEra:
		return TTLEra
	default:
		return TTLBroad
	}
}
