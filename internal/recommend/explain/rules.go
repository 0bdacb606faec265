// MusicMatch - Content-Based Track Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicmatch

package explain

import (
	"strings"

	"github.com/tomtom215/musicmatch/internal/catalog"
)

// Rule produces at most one reason for a (query, candidate) pair.
type Rule interface {
	// Name identifies the rule in logs and configuration.
	Name() string

	// Exclusive rules end evaluation when they match.
	Exclusive() bool

	// Reason returns the reason text and whether the rule matched.
	Reason(query, candidate *catalog.Track) (string, bool)
}

// SameArtist matches candidates by the query's artist.
type SameArtist struct{}

// Name implements Rule.
func (SameArtist) Name() string { return "same_artist" }

// Exclusive implements Rule.
func (SameArtist) Exclusive() bool { return true }

// Reason implements Rule.
func (SameArtist) Reason(query, candidate *catalog.Track) (string, bool) {
	if query.Artist != candidate.Artist {
		return "", false
	}
	return "Same artist: " + candidate.Artist, true
}

// SharedGenre lists genres of the query that the candidate also carries,
// in the query's genre order.
type SharedGenre struct {
	// Max caps how many genres are listed.
	Max int
}

// Name implements Rule.
func (SharedGenre) Name() string { return "shared_genre" }

// Exclusive implements Rule.
func (SharedGenre) Exclusive() bool { return false }

// Reason implements Rule.
func (r SharedGenre) Reason(query, candidate *catalog.Track) (string, bool) {
	limit := r.Max
	if limit <= 0 {
		limit = DefaultMaxSharedGenres
	}

	shared := make([]string, 0, limit)
	for _, g := range query.Genres {
		if candidate.HasGenre(g) {
			shared = append(shared, g)
			if len(shared) == limit {
				break
			}
		}
	}
	if len(shared) == 0 {
		return "", false
	}
	return "Shares genre: " + strings.Join(shared, ", "), true
}

// Popularity reasons.
const (
	ReasonMorePopular = "More popular hit"
	ReasonHiddenGem   = "Hidden gem"
)

// Popularity contrasts the candidate's popularity with the query's.
type Popularity struct {
	// Delta is the strict difference needed to report a contrast.
	Delta float64
}

// Name implements Rule.
func (Popularity) Name() string { return "popularity" }

// Exclusive implements Rule.
func (Popularity) Exclusive() bool { return false }

// Reason implements Rule.
func (r Popularity) Reason(query, candidate *catalog.Track) (string, bool) {
	diff := candidate.Popularity - query.Popularity
	switch {
	case diff > r.Delta:
		return ReasonMorePopular, true
	case diff < -r.Delta:
		return ReasonHiddenGem, true
	default:
		return "", false
	}
}
