// What to Watch - Deterministic Movie Deck Recommendations
// Copyright 2026 GlenTheReb
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/GlenTheReb/what-to-watch

package recommend

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

// Rank bucket boundaries. The top bucket covers ranked[0:60), the mid
// bucket ranked[60:220); both clamp to the pool size.
const (
	topBucketEnd = 60
	midBucketEnd = 220
)

// SeedFor derives the request seed from the session ID, the UTC calendar
// day and the reroll index. FNV-1a 32-bit over "session:day:reroll" mixes
// well enough and is stable across platforms and Go versions.
func SeedFor(sessionID, day string, reroll int) int64 {
	h := fnv.New32a()
	fmt.Fprintf(h, "%s:%s:%d", sessionID, day, reroll)
	return int64(h.Sum32())
}

// shuffleBuckets reorders the two rank buckets in place with a generator
// seeded from seed. The top bucket is shuffled before the mid bucket with
// the same generator instance, consuming its state sequentially. That
// order is part of the determinism contract; swapping it changes every
// deck.
func shuffleBuckets(ranked []ScoredCandidate, seed int64) {
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // seeded math/rand is the point: reproducible shuffling

	top := topBucketEnd
	if top > len(ranked) {
		top = len(ranked)
	}
	mid := midBucketEnd
	if mid > len(ranked) {
		mid = len(ranked)
	}

	fisherYates(rng, ranked[:top])
	if mid > top {
		fisherYates(rng, ranked[top:mid])
	}
}

// fisherYates is a uniform in-place shuffle. Written out rather than
// using rand.Shuffle so the exact draw sequence is pinned in this
// package, keeping independently built binaries cross-compatible.
func fisherYates(rng *rand.Rand, s []ScoredCandidate) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
