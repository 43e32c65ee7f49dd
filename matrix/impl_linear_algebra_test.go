// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/markovian/matrix"
)

func TestMul_Succeeds(t *testing.T) {
	// A is 2×3, B is 3×2: A*B = 2×2
	A := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	B := mustDense(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})
	want := [][]float64{{58, 64}, {139, 154}}

	C, err := matrix.Mul(A, B)
	require.NoError(t, err)
	requireRowsInDelta(t, want, C, 0)

	// Fallback path must agree with the fast path.
	C2, err := matrix.Mul(hide{A}, hide{B})
	require.NoError(t, err)
	requireRowsInDelta(t, want, C2, 0)
}

func TestMul_DimensionMismatch(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}})
	b := mustDense(t, [][]float64{{1, 2}})
	_, err := matrix.Mul(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Mul(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestTranspose(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	want := [][]float64{{1, 4}, {2, 5}, {3, 6}}

	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	requireRowsInDelta(t, want, tr, 0)

	tr2, err := matrix.Transpose(hide{m})
	require.NoError(t, err)
	requireRowsInDelta(t, want, tr2, 0)

	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMatVec(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	y, err := matrix.MatVec(m, []float64{1, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{3, 7}, y)

	y, err = matrix.MatVec(hide{m}, []float64{2, 0})
	require.NoError(t, err)
	require.Equal(t, []float64{2, 6}, y)

	_, err = matrix.MatVec(m, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestVecMat_StationaryIsFixedPoint(t *testing.T) {
	P := mustDense(t, weather)

	y, err := matrix.VecMat([]float64{1, 0}, P)
	require.NoError(t, err)
	require.Equal(t, []float64{0.7, 0.3}, y)

	pi := []float64{0.625, 0.375}
	for _, m := range []matrix.Matrix{P, hide{P}} {
		y, err = matrix.VecMat(pi, m)
		require.NoError(t, err)
		require.InDelta(t, 0.625, y[0], 1e-12)
		require.InDelta(t, 0.375, y[1], 1e-12)
	}

	_, err = matrix.VecMat([]float64{1, 0, 0}, P)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestPower(t *testing.T) {
	P := mustDense(t, weather)

	tests := []struct {
		name string
		k    int
		want [][]float64
	}{
		{"zero is identity", 0, [][]float64{{1, 0}, {0, 1}}},
		{"one is P", 1, weather},
		{"square", 2, [][]float64{{0.64, 0.36}, {0.6, 0.4}}},
		{"cube", 3, [][]float64{{0.628, 0.372}, {0.62, 0.38}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := matrix.Power(P, tt.k)
			require.NoError(t, err)
			requireRowsInDelta(t, tt.want, got, 1e-12)

			got, err = matrix.Power(hide{P}, tt.k)
			require.NoError(t, err)
			requireRowsInDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestPower_DoesNotAliasInput(t *testing.T) {
	P := mustDense(t, weather)
	got, err := matrix.Power(P, 1)
	require.NoError(t, err)
	require.NoError(t, got.Set(0, 0, 0))
	v, _ := P.At(0, 0)
	require.Equal(t, 0.7, v)
}

func TestPower_Errors(t *testing.T) {
	P := mustDense(t, weather)
	_, err := matrix.Power(P, -1)
	require.ErrorIs(t, err, matrix.ErrNegativeExponent)

	_, err = matrix.Power(mustDense(t, [][]float64{{1, 2}}), 2)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
