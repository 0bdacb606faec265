// MusicMatch - Content-Based Track Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicmatch

// Package catalog builds the immutable track catalog the recommender operates over.
//
// # Ingestion
//
// A Dataset is a schema (column names) plus rows of raw text values. Build
// validates the schema once, then applies the per-row policy:
//
//   - Rows with a null or empty track_name, artist_name or track_popularity are dropped
//   - Rows repeating an existing (track_name, artist_name) pair are dropped (first wins)
//   - Missing optional numeric values become 0
//   - Malformed genre values become an empty genre set
//
// None of the per-row conditions surface as errors. The only fatal condition
// is a schema missing one of the required columns, reported as a *DataError.
//
// # Index Stability
//
// Track positions are assigned once during Build and never change. The
// similarity matrix, the query resolver and the ranker all address tracks by
// this position.
//
// # Thread Safety
//
// A Catalog is never mutated after Build and is safe for concurrent readers.
package catalog
