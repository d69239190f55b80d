// What to Watch - Deterministic Movie Deck Recommendations
// Copyright 2026 GlenTheReb
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/GlenTheReb/what-to-watch

package tmdb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlenTheReb/what-to-watch/internal/cache"
	"github.com/GlenTheReb/what-to-watch/internal/recommend"
)

type countingSource struct {
	calls int
	err   error
}

func (s *countingSource) Fetch(ctx context.Context, q recommend.SliceQuery) ([]recommend.Candidate, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return []recommend.Candidate{{ID: q.Page, Title: "cached movie"}}, nil
}

func TestCachedSourceReadThrough(t *testing.T) {
	inner := &countingSource{}
	src := NewCachedSource(inner, cache.New())

	q := recommend.SliceQuery{Kind: recommend.SliceEra, Page: 1, SortBy: recommend.SortPopularityDesc}

	first, err := src.Fetch(context.Background(), q)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	second, err := src.Fetch(context.Background(), q)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	if inner.calls != 1 {
		t.Errorf("inner calls = %d, want 1 (second fetch served from cache)", inner.calls)
	}
	if len(first) != 1 || len(second) != 1 || first[0].ID != second[0].ID {
		t.Errorf("cached result differs: %v vs %v", first, second)
	}
}

func TestCachedSourceDistinctTuplesDistinctKeys(t *testing.T) {
	inner := &countingSource{}
	src := NewCachedSource(inner, cache.New())

	a := recommend.SliceQuery{Kind: recommend.SliceEra, Page: 1}
	b := recommend.SliceQuery{Kind: recommend.SliceEra, Page: 2}

	if _, err := src.Fetch(context.Background(), a); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if _, err := src.Fetch(context.Background(), b); err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	if inner.calls != 2 {
		t.Errorf("inner calls = %d, want 2 (different tuples must not collide)", inner.calls)
	}
}

func TestCachedSourceErrorNotCached(t *testing.T) {
	inner := &countingSource{err: errors.New("down")}
	src := NewCachedSource(inner, cache.New())

	q := recommend.SliceQuery{Kind: recommend.SliceBroad, Page: 1}

	if _, err := src.Fetch(context.Background(), q); err == nil {
		t.Fatal("expected error")
	}

	inner.err = nil
	if _, err := src.Fetch(context.Background(), q); err != nil {
		t.Fatalf("Fetch after recovery: %v", err)
	}
	if inner.calls != 2 {
		t.Errorf("inner calls = %d, want 2 (errors must not be cached)", inner.calls)
	}
}

func TestTTLByKind(t *testing.T) {
	tests := []struct {
		kind recommend.SliceKind
		want time.Duration
	}{
		{recommend.SliceTrending, TTLTrending},
		{recommend.SliceEra, TTLEra},
		{recommend.SliceBroad, TTLBroad},
	}
	for _, tt := range tests {
		if got := ttlFor(tt.kind); got != tt.want {
			t.Errorf("ttlFor(%s) = %v, want %v", tt.kind, got, tt.want)
		}
	}
}
