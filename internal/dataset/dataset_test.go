// MusicMatch - Content-Based Track Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicmatch

package dataset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/musicmatch/internal/catalog"
	"github.com/tomtom215/musicmatch/internal/logging"
)

const sampleCSV = `track_name,artist_name,track_popularity,artist_genres,explicit
Song One,Artist X,80,"['pop', 'dance pop']",False
Song Two,Artist X,75,"['pop']",True
"Comma, Song",Artist Y,,[],False
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestNew(t *testing.T) {
	tests := []struct {
		format   string
		wantName string
		wantErr  bool
	}{
		{format: "", wantName: FormatCSV},
		{format: "csv", wantName: FormatCSV},
		{format: "DuckDB", wantName: FormatDuckDB},
		{format: "xlsx", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			l, err := New(Config{Path: "x.csv", Format: tt.format})
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Fatalf("err = %v, want ErrUnknownFormat", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if l.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", l.Name(), tt.wantName)
			}
		})
	}
}

func TestReadCSV(t *testing.T) {
	ds, err := ReadCSV(context.Background(), strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(ds.Columns) != 5 || ds.Columns[0] != "track_name" {
		t.Fatalf("Columns = %v", ds.Columns)
	}
	if len(ds.Rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(ds.Rows))
	}
	if got := ds.Rows[0]["artist_genres"]; got != "['pop', 'dance pop']" {
		t.Errorf("genres cell = %q", got)
	}
	if got := ds.Rows[2]["track_name"]; got != "Comma, Song" {
		t.Errorf("quoted cell = %q", got)
	}
	if v, ok := ds.Rows[2]["track_popularity"]; !ok || v != "" {
		t.Errorf("empty cell = %q, %v; want present and empty", v, ok)
	}
}

func TestReadCSV_EdgeCases(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCols []string
		wantRows int
	}{
		{name: "empty input", input: "", wantRows: 0},
		{name: "header only", input: "track_name,artist_name\n", wantCols: []string{"track_name", "artist_name"}},
		{name: "byte order mark", input: "\ufefftrack_name, artist_name\nA,B\n", wantCols: []string{"track_name", "artist_name"}, wantRows: 1},
		{name: "short record", input: "a,b,c\n1\n", wantCols: []string{"a", "b", "c"}, wantRows: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := ReadCSV(context.Background(), strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("ReadCSV: %v", err)
			}
			if len(ds.Rows) != tt.wantRows {
				t.Errorf("got %d rows, want %d", len(ds.Rows), tt.wantRows)
			}
			if len(ds.Columns) != len(tt.wantCols) {
				t.Fatalf("Columns = %v, want %v", ds.Columns, tt.wantCols)
			}
			for i := range tt.wantCols {
				if ds.Columns[i] != tt.wantCols[i] {
					t.Errorf("Columns[%d] = %q, want %q", i, ds.Columns[i], tt.wantCols[i])
				}
			}
		})
	}
}

func TestReadCSV_ShortRecordLeavesColumnsAbsent(t *testing.T) {
	ds, err := ReadCSV(context.Background(), strings.NewReader("a,b\n1\n"))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if _, ok := ds.Rows[0]["b"]; ok {
		t.Error("column b should be absent")
	}
}

func TestCSVLoader_BuildsCatalog(t *testing.T) {
	path := writeFile(t, "tracks.csv", sampleCSV)
	ds, err := Load(context.Background(), NewCSVLoader(path), logging.NewTestLogger(nil))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	cat, err := catalog.Build(ds)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if cat.Len() != 2 {
		t.Errorf("catalog has %d tracks, want 2", cat.Len())
	}
	if got := cat.Stats().DroppedMissing; got != 1 {
		t.Errorf("DroppedMissing = %d, want 1", got)
	}
}

func TestCSVLoader_MissingFile(t *testing.T) {
	_, err := NewCSVLoader(filepath.Join(t.TempDir(), "nope.csv")).Load(context.Background())
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want os.ErrNotExist", err)
	}
}

func TestDuckDBLoader_Query(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "data/tracks.csv", want: "SELECT * FROM read_csv_auto('data/tracks.csv', header = true, all_varchar = true)"},
		{path: "data/tracks.PARQUET", want: "SELECT * FROM read_parquet('data/tracks.PARQUET')"},
		{path: "it's.csv", want: "SELECT * FROM read_csv_auto('it''s.csv', header = true, all_varchar = true)"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := NewDuckDBLoader(tt.path).Query(); got != tt.want {
				t.Errorf("Query() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCellString(t *testing.T) {
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	tests := []struct {
		name   string
		in     any
		want   string
		wantOK bool
	}{
		{name: "null", in: nil, wantOK: false},
		{name: "string", in: "pop", want: "pop", wantOK: true},
		{name: "bytes", in: []byte("rock"), want: "rock", wantOK: true},
		{name: "bool", in: true, want: "true", wantOK: true},
		{name: "int64", in: int64(42), want: "42", wantOK: true},
		{name: "int32", in: int32(-7), want: "-7", wantOK: true},
		{name: "float64", in: 12.5, want: "12.5", wantOK: true},
		{name: "time", in: ts, want: "2026-01-02T03:04:05Z", wantOK: true},
		{name: "list", in: []any{"pop", "dance pop"}, want: `["pop","dance pop"]`, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := cellString(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("cellString(%v) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestDuckDBLoader_LoadCSV(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping DuckDB test in short mode")
	}

	path := writeFile(t, "tracks.csv", sampleCSV)
	ds, err := NewDuckDBLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(ds.Rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(ds.Rows))
	}
	if got := ds.Rows[1]["explicit"]; got != "True" {
		t.Errorf("explicit = %q, want True", got)
	}
	if _, ok := ds.Rows[2]["track_popularity"]; ok {
		t.Error("empty popularity should load as NULL")
	}

	cat, err := catalog.Build(ds)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if cat.Len() != 2 {
		t.Errorf("catalog has %d tracks, want 2", cat.Len())
	}
}
