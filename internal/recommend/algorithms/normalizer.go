// MusicMatch - Content-Based Track Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicmatch

package algorithms

// Normalize applies per-column min-max scaling to rows and returns a new
// matrix of the same shape. Each value becomes (v-min)/(max-min), clamped to
// [0, 1]. A constant column, including a single-row input, becomes all zeros.
//
// Rows are expected to have equal length; the column count is taken from the
// first row and shorter rows are padded with zeros.
func Normalize(rows [][]float64) [][]float64 {
	out := make([][]float64, len(rows))
	if len(rows) == 0 {
		return out
	}

	cols := len(rows[0])
	mins := make([]float64, cols)
	maxs := make([]float64, cols)
	for c := 0; c < cols; c++ {
		mins[c], maxs[c] = at(rows[0], c), at(rows[0], c)
	}
	for _, row := range rows[1:] {
		for c := 0; c < cols; c++ {
			v := at(row, c)
			if v < mins[c] {
				mins[c] = v
			}
			if v > maxs[c] {
				maxs[c] = v
			}
		}
	}

	for r, row := range rows {
		scaled := make([]float64, cols)
		for c := 0; c < cols; c++ {
			span := maxs[c] - mins[c]
			if span == 0 {
				continue
			}
			scaled[c] = clamp01((at(row, c) - mins[c]) / span)
		}
		out[r] = scaled
	}
	return out
}

func at(row []float64, c int) float64 {
	if c < len(row) {
		return row[c]
	}
	return 0
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
