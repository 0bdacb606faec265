// MusicMatch - Content-Based Track Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicmatch

package catalog

// Row is one raw dataset record keyed by column name. An absent key means null.
type Row map[string]string

// Dataset is the tabular input to Build.
type Dataset struct {
	// Columns is the dataset schema. It is checked even when Rows is empty.
	Columns []string

	// Rows holds the raw records in source order.
	Rows []Row
}

// BuildStats summarizes what ingestion kept and dropped.
type BuildStats struct {
	// RowsRead is the number of input rows.
	RowsRead int `json:"rows_read"`

	// DroppedMissing counts rows rejected for a null required field.
	DroppedMissing int `json:"dropped_missing"`

	// DroppedDuplicate counts rows repeating an earlier identity key.
	DroppedDuplicate int `json:"dropped_duplicate"`

	// Tracks is the number of tracks kept.
	Tracks int `json:"tracks"`

	// Features lists the numeric feature columns in use.
	Features []string `json:"features"`
}

// Catalog is the ordered, deduplicated track collection.
type Catalog struct {
	tracks   []Track
	features []string
	index    map[Key]int
	stats    BuildStats
}

// Build validates the schema and ingests every row of ds.
// It fails only with a *DataError.
func Build(ds Dataset) (*Catalog, error) {
	schema := make(map[string]struct{}, len(ds.Columns))
	for _, col := range ds.Columns {
		schema[col] = struct{}{}
	}

	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := schema[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &DataError{Kind: KindMissingColumns, Columns: missing}
	}

	features := make([]string, 0, len(FeatureColumns))
	for _, col := range FeatureColumns {
		if _, ok := schema[col]; ok {
			features = append(features, col)
		}
	}

	c := &Catalog{
		tracks:   make([]Track, 0, len(ds.Rows)),
		features: features,
		index:    make(map[Key]int, len(ds.Rows)),
	}
	c.stats.RowsRead = len(ds.Rows)

	for _, row := range ds.Rows {
		track, ok := c.parseRow(row)
		if !ok {
			c.stats.DroppedMissing++
			continue
		}

		key := track.Key()
		if _, dup := c.index[key]; dup {
			c.stats.DroppedDuplicate++
			continue
		}

		c.index[key] = len(c.tracks)
		c.tracks = append(c.tracks, track)
	}

	if len(c.tracks) == 0 {
		return nil, &DataError{Kind: KindEmpty}
	}

	c.stats.Tracks = len(c.tracks)
	c.stats.Features = append([]string(nil), features...)
	return c, nil
}

// parseRow converts a raw row, reporting false when a required field is null.
func (c *Catalog) parseRow(row Row) (Track, bool) {
	name, ok := field(row, ColumnTrackName)
	if !ok {
		return Track{}, false
	}
	artist, ok := field(row, ColumnArtistName)
	if !ok {
		return Track{}, false
	}
	rawPop, ok := field(row, ColumnTrackPopularity)
	if !ok {
		return Track{}, false
	}
	popularity, ok := parseNumber(rawPop)
	if !ok {
		return Track{}, false
	}

	vec := make([]float64, len(c.features))
	for i, col := range c.features {
		if col == ColumnTrackPopularity {
			vec[i] = popularity
			continue
		}
		if raw, present := field(row, col); present {
			vec[i], _ = parseNumber(raw)
		}
	}

	genres := []string{}
	if raw, present := field(row, ColumnArtistGenres); present {
		genres = ParseGenres(raw)
	}

	return Track{
		Name:       name,
		Artist:     artist,
		Genres:     genres,
		Popularity: popularity,
		Features:   vec,
	}, true
}

// Len returns the number of tracks.
func (c *Catalog) Len() int {
	return len(c.tracks)
}

// At returns the track at position i. The returned track must not be modified.
func (c *Catalog) At(i int) *Track {
	return &c.tracks[i]
}

// Lookup returns the position of the track with the given identity key.
func (c *Catalog) Lookup(name, artist string) (int, bool) {
	i, ok := c.index[Key{Name: name, Artist: artist}]
	return i, ok
}

// Features returns the feature column names in vector order.
func (c *Catalog) Features() []string {
	return append([]string(nil), c.features...)
}

// FeatureMatrix returns a copy of the raw feature vectors, one row per track.
func (c *Catalog) FeatureMatrix() [][]float64 {
	m := make([][]float64, len(c.tracks))
	for i := range c.tracks {
		m[i] = append([]float64(nil), c.tracks[i].Features...)
	}
	return m
}

// SearchKeys returns the resolver key of every track in catalog order.
func (c *Catalog) SearchKeys() []string {
	keys := make([]string, len(c.tracks))
	for i := range c.tracks {
		keys[i] = c.tracks[i].SearchKey()
	}
	return keys
}

// Stats returns the ingestion summary.
func (c *Catalog) Stats() BuildStats {
	s := c.stats
	s.Features = append([]string(nil), c.stats.Features...)
	return s
}
