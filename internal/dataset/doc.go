// MusicMatch - Content-Based Track Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicmatch

// Package dataset reads raw track tables into catalog.Dataset values.
//
// Two loaders are available. CSVLoader streams a CSV file with encoding/csv
// and suits small catalogs with no native dependency. DuckDBLoader runs the
// file through an in-memory DuckDB connection, which reads CSV and Parquet
// with the same code path and handles quoting dialects that trip up strict
// CSV readers.
//
// Loaders only move cells. Validation, deduplication and null handling are
// the job of catalog.Build.
package dataset
