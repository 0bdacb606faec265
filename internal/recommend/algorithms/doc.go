// MusicMatch - Content-Based Track Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicmatch

// Package algorithms implements the numeric core of the recommender.
//
// The pipeline is split into three independent steps that each operate on
// plain slices indexed like the catalog:
//
//   - Normalize scales every feature column into [0, 1] (min-max)
//   - NewSimilarityMatrix precomputes pairwise cosine similarity
//   - TopN ranks every other track against a query position
//
// # Determinism
//
// Every function here is pure. Identical input produces identical output, and
// ranking ties are broken by ascending catalog position so results never
// depend on sort stability or map iteration order.
//
// # Thread Safety
//
// A SimilarityMatrix is immutable after construction and safe for concurrent
// readers without locking.
package algorithms
