// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// products, transposition, vector products and integer powers. All functions
// perform strict fail-fast validation and return clear errors on dimension
// mismatches.
//
// Notes:
//   - Every kernel allocates a fresh result; inputs are never mutated.
//   - Dense×Dense inputs hit flat-slice fast paths; anything else falls back to At/Set.

package matrix

import "fmt"

// ZeroSum is the initial sum value for products and substitutions.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opVecMat    = "VecMat"
	opPower     = "Power"
	opLU        = "LU"
	opSolve     = "Solve"
	opRowSums   = "RowSums"
	opNormalize = "NormalizeRowSums"
	opAllClose  = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and skip zeros;
//     otherwise use i→j→k with a fixed order.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop orders (i→k→j for fast path, i→j→k for fallback).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c). Skipping zero A[i,k] avoids useless multiplies,
//     which matters for sparse transition matrices.
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, inner, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var i, j, k int
	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		var av float64
		var rowA, rowB, rowR int
		for i = 0; i < aRows; i++ {
			rowA, rowR = i*inner, i*bCols
			for k = 0; k < inner; k++ {
				av = da.data[rowA+k]
				if av == 0 {
					continue
				}
				rowB = k * bCols
				for j = 0; j < bCols; j++ {
					res.data[rowR+j] += av * db.data[rowB+j]
				}
			}
		}

		return res, nil
	}

	// Fallback: generic interface triple-loop (i-j-k).
	var av, bv, acc float64
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			acc = ZeroSum
			for k = 0; k < inner; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				acc += av * bv
			}
			res.data[i*bCols+j] = acc
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Fast-path copies *Dense data via flat indexing; fallback uses At.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		for i = 0; i < rows; i++ {
			base := i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[base+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)
	var i, j int
	if d, ok := m.(*Dense); ok {
		var acc float64
		for i = 0; i < rows; i++ {
			acc = ZeroSum
			base := i * cols
			for j = 0; j < cols; j++ {
				if x[j] != 0 {
					acc += d.data[base+j] * x[j]
				}
			}
			y[i] = acc
		}

		return y, nil
	}

	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// VecMat computes the row-vector product y = x * m.
// This is the natural direction for probability distributions over the rows
// of a transition matrix: y[j] = Σ_i x[i]·m[i,j].
//
// Contract: m non-nil; x non-nil; len(x) == m.Rows().
// Determinism: fixed i→j accumulation order.
// Complexity: Time O(r*c), Space O(c) for y.
func VecMat(x []float64, m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opVecMat, err)
	}
	if err := ValidateVecLen(x, m.Rows()); err != nil {
		return nil, matrixErrorf(opVecMat, err)
	}

	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, cols)
	var i, j int
	if d, ok := m.(*Dense); ok {
		for i = 0; i < rows; i++ {
			xi := x[i]
			if xi == 0 {
				continue
			}
			base := i * cols
			for j = 0; j < cols; j++ {
				y[j] += xi * d.data[base+j]
			}
		}

		return y, nil
	}

	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opVecMat, err)
			}
			y[j] += x[i] * mv
		}
	}

	return y, nil
}

// Power computes m^k for a square matrix and integer k ≥ 0.
// Implementation:
//   - Stage 1: ValidateSquare(m); reject k < 0 with ErrNegativeExponent.
//   - Stage 2: k == 0 → identity; otherwise binary exponentiation over Mul:
//     result *= base whenever the low bit is set, base *= base each round.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrNegativeExponent.
//
// Determinism:
//   - The multiplication schedule depends only on k, never on values.
//
// Complexity:
//   - Time O(n³·log k), Space O(n²).
//
// AI-Hints:
//   - Power(P, 1) returns a copy of P, not P itself; callers may mutate it freely.
func Power(m Matrix, k int) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opPower, err)
	}
	if k < 0 {
		return nil, matrixErrorf(opPower, ErrNegativeExponent)
	}

	n := m.Rows()
	result, err := NewIdentity(n)
	if err != nil {
		return nil, matrixErrorf(opPower, err)
	}
	if k == 0 {
		return result, nil
	}

	var base Matrix = m.Clone()
	var acc Matrix = result
	first := true
	for k > 0 {
		if k&1 == 1 {
			if first {
				// I·base == base; skip one multiplication and keep exact values.
				acc = base.Clone()
				first = false
			} else if acc, err = Mul(acc, base); err != nil {
				return nil, matrixErrorf(opPower, err)
			}
		}
		k >>= 1
		if k > 0 {
			if base, err = Mul(base, base); err != nil {
				return nil, matrixErrorf(opPower, err)
			}
		}
	}

	if d, ok := acc.(*Dense); ok {
		return d, nil
	}
	// acc is always produced by Clone/Mul; the fallback copies through the interface.
	out, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opPower, err)
	}
	var v float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if v, err = acc.At(i, j); err != nil {
				return nil, matrixErrorf(opPower, err)
			}
			out.data[i*n+j] = v
		}
	}

	return out, nil
}
