// MusicMatch - Content-Based Track Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicmatch

package algorithms

import "math"

// SimilarityMatrix is an eagerly computed symmetric matrix of cosine
// similarities between normalized feature vectors.
//
// Invariants:
//
//	Score(i, i) == 1
//	Score(i, j) == Score(j, i)
//	0 <= Score(i, j) <= 1
//
// A zero-magnitude vector scores 0 against every other vector.
type SimilarityMatrix struct {
	n    int
	data []float64 // row-major n*n
}

// NewSimilarityMatrix computes the full matrix for the given vectors.
// Cost is O(N²·F) time and O(N²) memory; only the upper triangle is computed
// and mirrored.
func NewSimilarityMatrix(vectors [][]float64) *SimilarityMatrix {
	n := len(vectors)
	m := &SimilarityMatrix{
		n:    n,
		data: make([]float64, n*n),
	}

	norms := make([]float64, n)
	for i, v := range vectors {
		norms[i] = math.Sqrt(dot(v, v))
	}

	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
		for j := i + 1; j < n; j++ {
			var sim float64
			if norms[i] > 0 && norms[j] > 0 {
				sim = clamp01(dot(vectors[i], vectors[j]) / (norms[i] * norms[j]))
			}
			m.data[i*n+j] = sim
			m.data[j*n+i] = sim
		}
	}
	return m
}

// Score returns the similarity between positions i and j.
func (m *SimilarityMatrix) Score(i, j int) float64 {
	return m.data[i*m.n+j]
}

// Len returns the matrix dimension.
func (m *SimilarityMatrix) Len() int {
	return m.n
}

// Row returns a copy of the similarities of position i to every position.
func (m *SimilarityMatrix) Row(i int) []float64 {
	row := make([]float64, m.n)
	copy(row, m.data[i*m.n:(i+1)*m.n])
	return row
}

func dot(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float64
	for k := 0; k < n; k++ {
		sum += a[k] * b[k]
	}
	return sum
}
