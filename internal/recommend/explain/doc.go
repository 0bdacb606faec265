// MusicMatch - Content-Based Track Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicmatch

// Package explain annotates recommendations with a short justification.
//
// An Explainer evaluates an ordered list of independent rules against the
// query track and one candidate:
//
//  1. same_artist: "Same artist: <artist>" (exclusive, stops evaluation)
//  2. shared_genre: "Shares genre: a, b"
//  3. popularity: "More popular hit" or "Hidden gem"
//
// Matching non-exclusive reasons are joined with " • ". When no rule
// matches, the fallback reason "Statistical match (Sound & Vibe)" is used.
//
// Rules only read track fields fixed at ingestion, so an Explainer is safe
// for concurrent use.
package explain
