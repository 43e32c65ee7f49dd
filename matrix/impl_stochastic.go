// SPDX-License-Identifier: MIT
// Package matrix - row-stochastic helpers.
//
// Purpose:
//   - RowSums / NormalizeRowSums for transition-matrix preprocessing.
//   - AllClose for tolerant element-wise comparison of two matrices.
//
// Determinism & Performance:
//   - Fixed i→j loops; Dense fast paths walk the flat buffer.
//   - No hidden allocations beyond the returned Dense/vector.

package matrix

import (
	"fmt"
	"math"
)

// RowSums returns vector r where r[i] = sum_j m[i,j].
// Implementation: MatVec(m, ones(cols)). No custom loops.
// Complexity: O(rc).
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	ones := make([]float64, m.Cols())
	for j := range ones {
		ones[j] = 1.0
	}

	sums, err := MatVec(m, ones)
	if err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}

	return sums, nil
}

// NormalizeRowSums divides every row by its own (signed) sum so that each
// row of the result sums to 1.
// Implementation:
//   - Stage 1: Validate X (non-nil); compute per-row sums via RowSums.
//   - Stage 2: Reject rows whose sum is 0 or non-finite (ErrZeroRowSum, row index in message).
//   - Stage 3: Divide each row by its sum into a fresh Dense.
//
// Behavior highlights:
//   - The divisor is the plain sum, not the L1 norm: a row of negative values
//     with a negative sum becomes non-negative. Range checks belong to the caller.
//   - True division (not multiplication by 1/sum): a cell equal to its row sum
//     becomes exactly 1 and no cell of a non-negative row exceeds 1.
//
// Returns:
//   - *Dense: normalized copy (X is never mutated).
//   - []float64: the original row sums (len = rows).
//
// Errors:
//   - ErrNilMatrix, ErrZeroRowSum.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NormalizeRowSums(X Matrix) (*Dense, []float64, error) {
	sums, err := RowSums(X)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalize, err)
	}

	r, c := X.Rows(), X.Cols()
	for i, s := range sums {
		if s == 0 || isNonFinite(s) {
			return nil, sums, matrixErrorf(opNormalize, fmt.Errorf("row %d sum %g: %w", i, s, ErrZeroRowSum))
		}
	}

	out, err := newDenseWithPolicy(r, c, false)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalize, err)
	}

	var i, j int
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				out.data[base+j] = d.data[base+j] / sums[i]
			}
		}
		out.validateNaNInf = d.validateNaNInf

		return out, sums, nil
	}

	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, nil, matrixErrorf(opNormalize, err)
			}
			out.data[i*c+j] = v / sums[i]
		}
	}
	out.validateNaNInf = DefaultValidateNaNInf

	return out, sums, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected.
//
// Complexity: Time O(r*c), Space O(1).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	r, c := a.Rows(), a.Cols()
	var av, bv float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
