// MusicMatch - Content-Based Track Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicmatch

package recommend

import (
	"github.com/tomtom215/musicmatch/internal/catalog"
)

// Recommendation is one ranked similar track.
type Recommendation struct {
	// Name is the track title.
	Name string `json:"name"`

	// Artist is the performing artist.
	Artist string `json:"artist"`

	// Score is the similarity as a percentage with one decimal.
	Score float64 `json:"score"`

	// Reason explains why the track was recommended.
	Reason string `json:"reason"`
}

// Result is the outcome of one Recommend call.
type Result struct {
	// Query is a copy of the resolved catalog track, nil when nothing matched.
	Query *catalog.Track `json:"query"`

	// MatchScore is the fuzzy score (0-100) of the resolved track.
	MatchScore int `json:"match_score"`

	// Items are ordered by descending similarity.
	Items []Recommendation `json:"items"`
}

// Found reports whether the query resolved to a catalog track.
func (r *Result) Found() bool {
	return r.Query != nil
}

// clone copies Items and Query so cached results and catalog tracks are
// never shared with callers.
func (r *Result) clone() Result {
	out := *r
	if r.Query != nil {
		out.Query = r.Query.Clone()
	}
	out.Items = make([]Recommendation, len(r.Items))
	copy(out.Items, r.Items)
	return out
}

// Stats reports the engine's build summary and request counters.
type Stats struct {
	// Catalog holds the ingestion summary.
	Catalog catalog.BuildStats `json:"catalog"`

	// BuildDurationMS is how long New took to build the model.
	BuildDurationMS int64 `json:"build_duration_ms"`

	// RequestCount is the total number of Recommend calls.
	RequestCount int64 `json:"request_count"`

	// NotFoundCount counts queries that resolved to no track.
	NotFoundCount int64 `json:"not_found_count"`

	// CacheHits is the number of cache hits.
	CacheHits int64 `json:"cache_hits"`

	// CacheMisses is the number of cache misses.
	CacheMisses int64 `json:"cache_misses"`

	// CacheSize is the number of cached results.
	CacheSize int `json:"cache_size"`
}
