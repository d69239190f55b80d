// What to Watch - Deterministic Movie Deck Recommendations
// Copyright 2026 GlenTheReb
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/GlenTheReb/what-to-watch

// Package recommend implements the candidate-ranking and preference-learning
// pipeline that turns a free-text query plus session feedback into a
// reproducible deck of ten recommendation cards.
//
// The pipeline is a pure function of its inputs: query text, kept/passed
// feedback, the (sessionID, day, reroll) seed triple, and the candidate
// slices returned by the Source. No state survives a request, which keeps
// the engine trivially safe for concurrent use and unit-testable without
// an external store.
//
// Stages, in order:
//
//  1. ExtractIntent derives a boolean signature from the query text.
//  2. BuildSlicePlan maps the signature to a set of parametrized catalog
//     queries (eras, pages, sort orders, vote thresholds).
//  3. The engine fans the slice fetches out concurrently and joins; any
//     single failure fails the whole request.
//  4. MergeSlices dedups by ID, FilterPool applies hygiene and hard filters.
//  5. BuildGenreWeights counts like/pass occurrences per genre over the
//     merged pre-filter pool.
//  6. Score ranks each candidate; ranking is additive and unnormalized.
//  7. shuffleBuckets reorders two rank buckets with a seeded generator.
//  8. AssembleDeck picks, tops up, caps at ten and labels reasons.
//
// Determinism contract: identical (sessionID, day, reroll) plus identical
// candidate pool and feedback yield a bit-identical deck. The top bucket is
// always shuffled before the mid bucket with the same generator instance;
// swapping that order silently breaks cross-version reproducibility.
package recommend
