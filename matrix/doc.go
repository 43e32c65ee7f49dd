// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra substrate used by the
// Markov chain core.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and an
//     optional finite-only numeric policy.
//   - Kernels: Mul, Transpose, MatVec, VecMat, Power (exponentiation by
//     squaring), LU with partial pivoting and Solve.
//   - Stochastic helpers: RowSums, NormalizeRowSums, AllClose.
//
// All kernels allocate fresh results and never mutate their inputs. Errors are
// package sentinels (ErrDimensionMismatch, ErrSingular, ...) wrapped with an
// operation tag; match them with errors.Is.
//
// Matrices here are meant for small, dense problems (tens to low hundreds of
// rows), where O(n³) kernels are perfectly interactive.
package matrix
