// MusicMatch - Content-Based Track Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicmatch

package catalog

import (
	"math"
	"strconv"
	"strings"
)

// nullValues are the textual markers treated as a missing value. The set
// matches the defaults used by common dataframe CSV readers so exported
// datasets behave the same here.
var nullValues = map[string]struct{}{
	"":          {},
	"#N/A":      {},
	"#N/A N/A":  {},
	"#NA":       {},
	"-1.#IND":   {},
	"-1.#QNAN":  {},
	"-NaN":      {},
	"-nan":      {},
	"1.#IND":    {},
	"1.#QNAN":   {},
	"<NA>":      {},
	"N/A":       {},
	"NA":        {},
	"NULL":      {},
	"NaN":       {},
	"None":      {},
	"n/a":       {},
	"nan":       {},
	"null":      {},
}

// IsNull reports whether a raw value counts as missing.
func IsNull(v string) bool {
	_, ok := nullValues[strings.TrimSpace(v)]
	return ok
}

// field returns the trimmed value of col, or false when absent or null.
func field(row Row, col string) (string, bool) {
	v, ok := row[col]
	if !ok || IsNull(v) {
		return "", false
	}
	return strings.TrimSpace(v), true
}

// parseNumber converts a raw numeric or boolean value.
func parseNumber(v string) (float64, bool) {
	switch strings.ToLower(v) {
	case "true":
		return 1, true
	case "false":
		return 0, true
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
