// MusicMatch - Content-Based Track Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicmatch

package catalog

import (
	"errors"
	"reflect"
	"testing"
)

var fullColumns = []string{
	ColumnTrackName, ColumnArtistName, ColumnTrackPopularity, ColumnArtistGenres,
	ColumnArtistPopularity, ColumnArtistFollowers, ColumnExplicit,
}

func row(name, artist, pop, genres string) Row {
	return Row{
		ColumnTrackName:       name,
		ColumnArtistName:      artist,
		ColumnTrackPopularity: pop,
		ColumnArtistGenres:    genres,
	}
}

func TestBuild_MissingColumns(t *testing.T) {
	tests := []struct {
		name        string
		columns     []string
		wantMissing []string
	}{
		{
			name:        "no columns",
			columns:     nil,
			wantMissing: RequiredColumns,
		},
		{
			name:        "missing genres",
			columns:     []string{ColumnTrackName, ColumnArtistName, ColumnTrackPopularity},
			wantMissing: []string{ColumnArtistGenres},
		},
		{
			name:        "missing name and popularity",
			columns:     []string{ColumnArtistName, ColumnArtistGenres, ColumnExplicit},
			wantMissing: []string{ColumnTrackName, ColumnTrackPopularity},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, err := Build(Dataset{Columns: tt.columns, Rows: []Row{row("a", "b", "1", "[]")}})
			if cat != nil {
				t.Fatal("Build() returned a catalog alongside an error")
			}
			if !errors.Is(err, ErrMissingColumns) {
				t.Fatalf("Build() error = %v, want ErrMissingColumns", err)
			}

			var dataErr *DataError
			if !errors.As(err, &dataErr) {
				t.Fatalf("Build() error type = %T, want *DataError", err)
			}
			if dataErr.Kind != KindMissingColumns {
				t.Errorf("Kind = %v, want %v", dataErr.Kind, KindMissingColumns)
			}
			if !reflect.DeepEqual(dataErr.Columns, tt.wantMissing) {
				t.Errorf("Columns = %v, want %v", dataErr.Columns, tt.wantMissing)
			}
		})
	}
}

func TestBuild_DropsRowsWithMissingFields(t *testing.T) {
	ds := Dataset{
		Columns: RequiredColumns,
		Rows: []Row{
			row("Keep", "Artist", "50", "['pop']"),
			row("", "Artist", "50", "['pop']"),
			row("No Artist", "NaN", "50", "['pop']"),
			row("No Pop", "Artist", "", "['pop']"),
			row("Bad Pop", "Artist", "high", "['pop']"),
			{ColumnTrackName: "Absent", ColumnArtistName: "Artist"},
		},
	}

	cat, err := Build(ds)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if cat.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", cat.Len())
	}
	if cat.At(0).Name != "Keep" {
		t.Errorf("At(0).Name = %q, want %q", cat.At(0).Name, "Keep")
	}

	stats := cat.Stats()
	if stats.RowsRead != 6 || stats.DroppedMissing != 5 || stats.DroppedDuplicate != 0 {
		t.Errorf("Stats() = %+v, want 6 read, 5 missing, 0 duplicate", stats)
	}
}

func TestBuild_DuplicatesKeepFirst(t *testing.T) {
	ds := Dataset{
		Columns: RequiredColumns,
		Rows: []Row{
			row("Song", "Artist", "10", "['first']"),
			row("Other", "Artist", "20", "[]"),
			row("Song", "Artist", "90", "['second']"),
			row("Song", "Someone Else", "30", "[]"),
		},
	}

	cat, err := Build(ds)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if cat.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", cat.Len())
	}

	idx, ok := cat.Lookup("Song", "Artist")
	if !ok {
		t.Fatal("Lookup() did not find the duplicated key")
	}
	if idx != 0 {
		t.Errorf("Lookup() index = %d, want 0", idx)
	}
	got := cat.At(idx)
	if got.Popularity != 10 || !reflect.DeepEqual(got.Genres, []string{"first"}) {
		t.Errorf("kept track = %+v, want the first occurrence", got)
	}
	if cat.Stats().DroppedDuplicate != 1 {
		t.Errorf("DroppedDuplicate = %d, want 1", cat.Stats().DroppedDuplicate)
	}
}

func TestBuild_EmptyAfterIngestion(t *testing.T) {
	_, err := Build(Dataset{Columns: RequiredColumns, Rows: []Row{row("", "", "", "")}})
	if !errors.Is(err, ErrEmptyCatalog) {
		t.Fatalf("Build() error = %v, want ErrEmptyCatalog", err)
	}
}

func TestBuild_Features(t *testing.T) {
	t.Run("uses only columns present in schema", func(t *testing.T) {
		cat, err := Build(Dataset{
			Columns: append(append([]string{}, RequiredColumns...), ColumnExplicit),
			Rows: []Row{
				{
					ColumnTrackName:       "A",
					ColumnArtistName:      "B",
					ColumnTrackPopularity: "42",
					ColumnArtistGenres:    "[]",
					ColumnExplicit:        "True",
				},
			},
		})
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}

		wantFeatures := []string{ColumnTrackPopularity, ColumnExplicit}
		if !reflect.DeepEqual(cat.Features(), wantFeatures) {
			t.Errorf("Features() = %v, want %v", cat.Features(), wantFeatures)
		}
		if !reflect.DeepEqual(cat.At(0).Features, []float64{42, 1}) {
			t.Errorf("At(0).Features = %v, want [42 1]", cat.At(0).Features)
		}
	})

	t.Run("missing optional values default to zero", func(t *testing.T) {
		cat, err := Build(Dataset{
			Columns: fullColumns,
			Rows: []Row{
				{
					ColumnTrackName:        "A",
					ColumnArtistName:       "B",
					ColumnTrackPopularity:  "70",
					ColumnArtistGenres:     "['pop']",
					ColumnArtistPopularity: "",
					ColumnArtistFollowers:  "lots",
				},
			},
		})
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		want := []float64{70, 0, 0, 0}
		if !reflect.DeepEqual(cat.At(0).Features, want) {
			t.Errorf("At(0).Features = %v, want %v", cat.At(0).Features, want)
		}
	})

	t.Run("feature matrix is a copy", func(t *testing.T) {
		cat, err := Build(Dataset{Columns: RequiredColumns, Rows: []Row{row("A", "B", "5", "[]")}})
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		m := cat.FeatureMatrix()
		m[0][0] = 99
		if cat.At(0).Features[0] != 5 {
			t.Error("FeatureMatrix() exposed internal state")
		}
	})
}

func TestBuild_NullGenresBecomeEmpty(t *testing.T) {
	cat, err := Build(Dataset{
		Columns: RequiredColumns,
		Rows: []Row{
			row("A", "B", "1", "N/A"),
			{ColumnTrackName: "C", ColumnArtistName: "D", ColumnTrackPopularity: "2"},
		},
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	for i := 0; i < cat.Len(); i++ {
		if g := cat.At(i).Genres; g == nil || len(g) != 0 {
			t.Errorf("At(%d).Genres = %#v, want empty non-nil slice", i, g)
		}
	}
}

func TestCatalog_SearchKeys(t *testing.T) {
	cat, err := Build(Dataset{
		Columns: RequiredColumns,
		Rows: []Row{
			row("  The Hills ", "The Weeknd", "90", "[]"),
			row("Song One", "Artist X", "80", "[]"),
		},
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	want := []string{"The Hills The Weeknd", "Song One Artist X"}
	if got := cat.SearchKeys(); !reflect.DeepEqual(got, want) {
		t.Errorf("SearchKeys() = %v, want %v", got, want)
	}
}

func TestTrack_Clone(t *testing.T) {
	orig := &Track{Name: "A", Artist: "B", Genres: []string{"pop"}, Popularity: 10, Features: []float64{10, 2}}
	c := orig.Clone()
	c.Name = "X"
	c.Genres[0] = "rock"
	c.Features[0] = 99

	if orig.Name != "A" || orig.Genres[0] != "pop" || orig.Features[0] != 10 {
		t.Errorf("Clone shares state with original: %+v", orig)
	}
}
