// MusicMatch - Content-Based Track Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicmatch

package catalog

// Column names understood by Build.
const (
	ColumnTrackName        = "track_name"
	ColumnArtistName       = "artist_name"
	ColumnTrackPopularity  = "track_popularity"
	ColumnArtistGenres     = "artist_genres"
	ColumnArtistPopularity = "artist_popularity"
	ColumnArtistFollowers  = "artist_followers"
	ColumnExplicit         = "explicit"
)

// RequiredColumns must all be present in the dataset schema.
var RequiredColumns = []string{
	ColumnTrackName,
	ColumnArtistName,
	ColumnTrackPopularity,
	ColumnArtistGenres,
}

// FeatureColumns is the fixed order of numeric features. Columns absent from
// the schema are skipped; track_popularity is required so at least one
// feature is always present.
var FeatureColumns = []string{
	ColumnTrackPopularity,
	ColumnArtistPopularity,
	ColumnArtistFollowers,
	ColumnExplicit,
}

// Track is one catalog entry. Values are fixed at ingestion.
type Track struct {
	// Name is the track title.
	Name string `json:"name"`

	// Artist is the performing artist.
	Artist string `json:"artist"`

	// Genres holds the distinct genre tags of the artist in source order.
	Genres []string `json:"genres"`

	// Popularity is the raw track_popularity value.
	Popularity float64 `json:"popularity"`

	// Features is the raw numeric vector, ordered like Catalog.Features().
	Features []float64 `json:"features"`
}

// Key returns the identity key of the track.
func (t *Track) Key() Key {
	return Key{Name: t.Name, Artist: t.Artist}
}

// SearchKey is the text the query resolver matches against.
func (t *Track) SearchKey() string {
	return t.Name + " " + t.Artist
}

// Clone returns a deep copy of the track.
func (t *Track) Clone() *Track {
	out := *t
	out.Genres = append([]string(nil), t.Genres...)
	out.Features = append([]float64(nil), t.Features...)
	return &out
}

// HasGenre reports whether the track carries the genre tag.
func (t *Track) HasGenre(genre string) bool {
	for _, g := range t.Genres {
		if g == genre {
			return true
		}
	}
	return false
}

// Key is the (name, artist) identity of a track.
type Key struct {
	Name   string
	Artist string
}
