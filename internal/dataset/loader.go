// MusicMatch - Content-Based Track Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicmatch

package dataset

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/musicmatch/internal/catalog"
	"github.com/tomtom215/musicmatch/internal/metrics"
)

// Supported loader formats.
const (
	FormatCSV    = "csv"
	FormatDuckDB = "duckdb"
)

// ErrUnknownFormat is returned by New for an unsupported format.
var ErrUnknownFormat = errors.New("unknown dataset format")

// Loader produces the raw dataset for catalog ingestion.
type Loader interface {
	Load(ctx context.Context) (catalog.Dataset, error)
	Name() string
}

// Config selects and configures a loader.
type Config struct {
	// Path is the CSV or Parquet file to read.
	Path string `koanf:"path" validate:"required"`

	// Format picks the loader: csv or duckdb.
	Format string `koanf:"format" validate:"oneof=csv duckdb"`
}

// DefaultConfig returns the loader defaults.
func DefaultConfig() Config {
	return Config{
		Path:   "data/tracks.csv",
		Format: FormatCSV,
	}
}

// New returns the loader for cfg.Format.
func New(cfg Config) (Loader, error) {
	switch strings.ToLower(cfg.Format) {
	case "", FormatCSV:
		return NewCSVLoader(cfg.Path), nil
	case FormatDuckDB:
		return NewDuckDBLoader(cfg.Path), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, cfg.Format)
	}
}

// Load runs l and records load metrics and a summary log line.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func Load(ctx context.Context, l Loader, logger zerolog.Logger) (catalog.Dataset, error) {
	start := time.Now()
	ds, err := l.Load(ctx)
	elapsed := time.Since(start)
	metrics.RecordDatasetLoad(l.Name(), elapsed, len(ds.Rows), err)
	if err != nil {
		return catalog.Dataset{}, fmt.Errorf("load dataset with %s loader: %w", l.Name(), err)
	}

	logger.Info().
		Str("loader", l.Name()).
		Int("rows", len(ds.Rows)).
		Int("columns", len(ds.Columns)).
		Dur("duration", elapsed).
		Msg("Dataset loaded")
	return ds, nil
}
