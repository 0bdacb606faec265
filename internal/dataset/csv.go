// MusicMatch - Content-Based Track Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicmatch

package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tomtom215/musicmatch/internal/catalog"
)

// CSVLoader reads a CSV file whose first record is the header.
type CSVLoader struct {
	path string
}

// NewCSVLoader returns a loader for the CSV file at path.
func NewCSVLoader(path string) *CSVLoader {
	return &CSVLoader{path: path}
}

// Name identifies the loader in logs and metrics.
func (l *CSVLoader) Name() string {
	return FormatCSV
}

// Load reads the whole file.
func (l *CSVLoader) Load(ctx context.Context) (catalog.Dataset, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return catalog.Dataset{}, fmt.Errorf("open %s: %w", l.path, err)
	}
	defer f.Close()

	return ReadCSV(ctx, f)
}

// ReadCSV parses CSV from r. Empty cells are kept as empty strings so
// catalog.Build treats them as null. Records shorter than the header leave
// the trailing columns absent.
func ReadCSV(ctx context.Context, r io.Reader) (catalog.Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return catalog.Dataset{}, nil
	}
	if err != nil {
		return catalog.Dataset{}, fmt.Errorf("read header: %w", err)
	}

	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = strings.TrimSpace(h)
	}
	// Spreadsheet exports prepend a UTF-8 byte order mark.
	if len(columns) > 0 {
		columns[0] = strings.TrimPrefix(columns[0], "\ufeff")
	}

	ds := catalog.Dataset{Columns: columns}
	for line := 2; ; line++ {
		if line%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return catalog.Dataset{}, err
			}
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return catalog.Dataset{}, fmt.Errorf("read record %d: %w", line, err)
		}

		row := make(catalog.Row, len(columns))
		for i, col := range columns {
			if i >= len(record) {
				break
			}
			row[col] = record[i]
		}
		ds.Rows = append(ds.Rows, row)
	}
	return ds, nil
}
