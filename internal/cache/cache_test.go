// What to Watch - Deterministic Movie Deck Recommendations
// Copyright 2026 GlenTheReb
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/GlenTheReb/what-to-watch

package cache

import (
	"sync"
	"testing"
	"time"
)

func TestCacheSetGet(t *testing.T) {
	c := New()
	c.Set("key", "value", time.Minute)

	got, ok := c.Get("key")
	if !ok {
		t.Fatal("expected hit")
	}
	if got.(string) != "value" {
		t.Errorf("got %v, want value", got)
	}
}

func TestCacheMiss(t *testing.T) {
	c := New()

	if _, ok := c.Get("absent"); ok {
		t.Error("expected miss for absent key")
	}
	stats := c.GetStats()
	if stats.Misses != 1 {
		t.Errorf("Misses = %d, want 1", stats.Misses)
	}
}

func TestCacheExpiry(t *testing.T) {
	c := New()
	c.Set("key", "value", -time.Second) // already expired

	if _, ok := c.Get("key"); ok {
		t.Error("expected expired entry to miss")
	}
	stats := c.GetStats()
	if stats.Evictions != 1 {
		t.Errorf("Evictions = %d, want 1", stats.Evictions)
	}
}

func TestCacheOverwriteIsIdempotent(t *testing.T) {
	c := New()
	c.Set("key", "old", time.Minute)
	c.Set("key", "new", time.Minute)

	got, ok := c.Get("key")
	if !ok || got.(string) != "new" {
		t.Errorf("got (%v, %v), want new", got, ok)
	}
}

func TestCacheDeleteAndClear(t *testing.T) {
	c := New()
	c.Set("a", 1, time.Minute)
	c.Set("b", 2, time.Minute)

	c.Delete("a")
	if _, ok := c.Get("a"); ok {
		t.Error("deleted key still present")
	}

	c.Clear()
	if _, ok := c.Get("b"); ok {
		t.Error("cleared key still present")
	}
	if total := c.GetStats().TotalKeys; total != 0 {
		t.Errorf("TotalKeys = %d, want 0", total)
	}
}

func TestCacheHitRate(t *testing.T) {
	c := New()
	c.Set("key", "value", time.Minute)

	c.Get("key")    // hit
	c.Get("absent") // miss

	if rate := c.HitRate(); rate != 50.0 {
		t.Errorf("HitRate = %f, want 50", rate)
	}
}

func TestCacheConcurrentAccess(t *testing.T) {
	c := New()
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Set("shared", j, time.Minute)
				c.Get("shared")
			}
		}()
	}
	wg.Wait()

	if _, ok := c.Get("shared"); !ok {
		t.Error("expected shared key to survive concurrent writes")
	}
}

func TestGenerateKeyStability(t *testing.T) {
	type params struct {
		Page int
		Sort string
	}

	a := GenerateKey("discover", params{Page: 1, Sort: "popularity.desc"})
	b := GenerateKey("discover", params{Page: 1, Sort: "popularity.desc"})
	if a != b {
		t.Errorf("identical tuples produced different keys: %q vs %q", a, b)
	}

	c := GenerateKey("discover", params{Page: 2, Sort: "popularity.desc"})
	if a == c {
		t.Error("different tuples collided")
	}
}

func TestCacheCloseStopsSweepButKeepsServing(t *testing.T) {
	c := New()
	c.Set("key", "value", time.Minute)
	c.Close()

	if got, ok := c.Get("key"); !ok || got != "value" {
		t.Error("expected cache to keep serving after Close")
	}
}
