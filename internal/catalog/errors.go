// MusicMatch - Content-Based Track Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicmatch

package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for catalog construction.
var (
	// ErrMissingColumns indicates the dataset schema lacks required columns.
	ErrMissingColumns = errors.New("missing required columns")

	// ErrEmptyCatalog indicates no row survived ingestion.
	ErrEmptyCatalog = errors.New("catalog is empty after ingestion")
)

// DataErrorKind classifies a fatal dataset problem.
type DataErrorKind int

const (
	// KindMissingColumns means required schema fields are absent.
	KindMissingColumns DataErrorKind = iota
	// KindEmpty means every row was rejected by the per-row policy.
	KindEmpty
)

// String returns a human-readable name for the kind.
func (k DataErrorKind) String() string {
	switch k {
	case KindMissingColumns:
		return "missing_columns"
	case KindEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// DataError is the fatal, startup-only dataset error. No partial catalog is
// ever returned alongside it.
type DataError struct {
	Kind    DataErrorKind
	Columns []string
}

// Error implements the error interface.
func (e *DataError) Error() string {
	switch e.Kind {
	case KindMissingColumns:
		return fmt.Sprintf("%s: %s", ErrMissingColumns.Error(), strings.Join(e.Columns, ", "))
	case KindEmpty:
		return ErrEmptyCatalog.Error()
	default:
		return "invalid dataset"
	}
}

// Unwrap allows errors.Is against the sentinel errors.
func (e *DataError) Unwrap() error {
	switch e.Kind {
	case KindMissingColumns:
		return ErrMissingColumns
	case KindEmpty:
		return ErrEmptyCatalog
	default:
		return nil
	}
}
