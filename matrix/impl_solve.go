// SPDX-License-Identifier: MIT
// Package matrix - LU factorization with partial pivoting and linear solves.
//
// Purpose:
//   - Factorize P·A = L·U (L unit lower, U upper, P a row permutation).
//   - Solve A·x = b through one factorization plus two triangular sweeps.
//
// Determinism:
//   - Pivot choice is the first row with the largest |A[i,k]| (ties keep the
//     lower index), so identical inputs always produce identical factors.

package matrix

import "math"

// LU computes a row-pivoted Doolittle factorization P·A = L·U.
// Implementation:
//   - Stage 1: ValidateSquare(m); copy m into a flat working buffer.
//   - Stage 2: For k=0..n-1 pick the pivot row (max |A[i,k]|, i≥k), swap rows,
//     store multipliers in L and eliminate below the pivot.
//
// Inputs:
//   - m: square Matrix (n×n).
//   - opts: WithEpsilon sets the pivot guard (|pivot| ≤ eps → ErrSingular).
//
// Returns:
//   - L: unit lower triangular *Dense.
//   - U: upper triangular *Dense.
//   - perm: perm[i] is the original row placed at row i (P·A row order).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func LU(m Matrix, opts ...Option) (L, U *Dense, perm []int, err error) {
	if err = ValidateSquare(m); err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	o := gatherOptions(opts...)
	n := m.Rows()

	work := make([]float64, n*n)
	if d, ok := m.(*Dense); ok {
		copy(work, d.data)
	} else {
		var v float64
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if v, err = m.At(i, j); err != nil {
					return nil, nil, nil, matrixErrorf(opLU, err)
				}
				work[i*n+j] = v
			}
		}
	}

	if L, err = NewIdentity(n); err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	perm = make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	var i, j, k, p int
	var best, cur, factor float64
	for k = 0; k < n; k++ {
		// Partial pivoting: largest magnitude in column k at or below the diagonal.
		p, best = k, math.Abs(work[k*n+k])
		for i = k + 1; i < n; i++ {
			if cur = math.Abs(work[i*n+k]); cur > best {
				p, best = i, cur
			}
		}
		if best <= o.eps {
			return nil, nil, nil, matrixErrorf(opLU, ErrSingular)
		}
		if p != k {
			swapRows(work, n, p, k, 0)
			// Only the already computed multipliers (columns < k) move with the row.
			for j = 0; j < k; j++ {
				L.data[k*n+j], L.data[p*n+j] = L.data[p*n+j], L.data[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
		}

		pivot := work[k*n+k]
		for i = k + 1; i < n; i++ {
			factor = work[i*n+k] / pivot
			L.data[i*n+k] = factor
			if factor == 0 {
				continue
			}
			for j = k; j < n; j++ {
				work[i*n+j] -= factor * work[k*n+j]
			}
		}
	}

	if U, err = NewDense(n, n); err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			U.data[i*n+j] = work[i*n+j]
		}
	}

	return L, U, perm, nil
}

// Solve returns x such that a·x = b for a square, non-singular a.
// Implementation:
//   - Stage 1: LU(a) with partial pivoting; ValidateVecLen(b, n).
//   - Stage 2: forward substitution L·y = P·b (top-down).
//   - Stage 3: backward substitution U·x = y (bottom-up).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular.
//
// Complexity:
//   - Time O(n³) for the factorization plus O(n²) for the sweeps.
//
// AI-Hints:
//   - Stationary distributions: replace one row of (Pᵗ − I) with ones and solve
//     against e_last; the pivoting here keeps that system well behaved.
func Solve(a Matrix, b []float64, opts ...Option) ([]float64, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := a.Rows()
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	L, U, perm, err := LU(a, opts...)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	var i, k int
	var sum float64
	y := make([]float64, n)
	for i = 0; i < n; i++ {
		sum = ZeroSum
		for k = 0; k < i; k++ {
			sum += L.data[i*n+k] * y[k]
		}
		y[i] = b[perm[i]] - sum
	}

	x := make([]float64, n)
	for i = n - 1; i >= 0; i-- {
		sum = ZeroSum
		for k = i + 1; k < n; k++ {
			sum += U.data[i*n+k] * x[k]
		}
		// Pivots were guarded in LU; a zero here cannot occur.
		x[i] = (y[i] - sum) / U.data[i*n+i]
	}

	return x, nil
}

// swapRows exchanges rows r1 and r2 of a flat n-column buffer from column `from` on.
func swapRows(data []float64, n, r1, r2, from int) {
	a, b := r1*n, r2*n
	for j := from; j < n; j++ {
		data[a+j], data[b+j] = data[b+j], data[a+j]
	}
}
