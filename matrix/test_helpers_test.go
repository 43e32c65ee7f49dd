// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for kernels.
//   • Force the generic (non-*Dense) code paths via the hide wrapper.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/markovian/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Kernels then take their At/Set fallback path instead of the *Dense fast path.
type hide struct{ matrix.Matrix }

// weather is the two-state sunny/rainy transition matrix used across tests.
var weather = [][]float64{
	{0.7, 0.3},
	{0.5, 0.5},
}

// mustDense builds a *Dense from rows or fails the test.
func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// requireRowsInDelta compares every cell of m against want within delta.
func requireRowsInDelta(t *testing.T, want [][]float64, m matrix.Matrix, delta float64) {
	t.Helper()
	require.Equal(t, len(want), m.Rows())
	require.Equal(t, len(want[0]), m.Cols())
	for i := range want {
		for j := range want[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.InDelta(t, want[i][j], v, delta, "cell (%d,%d)", i, j)
		}
	}
}
