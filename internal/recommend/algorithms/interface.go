// MusicMatch - Content-Based Track Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicmatch

package algorithms

// Scorer provides a pairwise score between two catalog positions.
// SimilarityMatrix is the production implementation.
type Scorer interface {
	// Score returns the similarity of positions i and j.
	Score(i, j int) float64

	// Len returns the number of positions.
	Len() int
}

// Scored is a ranked candidate position.
type Scored struct {
	// Index is the catalog position of the candidate.
	Index int `json:"index"`

	// Score is the similarity to the query, in [0, 1].
	Score float64 `json:"score"`
}
