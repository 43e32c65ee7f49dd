// SPDX-License-Identifier: MIT
// Package markov: stationary distribution.

package markov

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/markovian/matrix"
)

// SteadyState returns the stationary distribution π (π·P = π, Σπ = 1),
// ordered like States(), using the method chosen with WithSteadyMethod.
//
// Errors:
//   - ErrEigenFailed (EigenNearestOne) when the decomposition does not
//     converge, yields a zero vector, or the rescaled vector is not a fixed
//     point of P within stationaryAtol.
//   - matrix.ErrSingular (LinearSolve) when the chain has more than one
//     closed class, i.e. no unique stationary distribution exists.
//
// Determinism:
//   - Both methods are pure functions of P; repeated calls return the same vector.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func (c *Chain) SteadyState() ([]float64, error) {
	var (
		pi  []float64
		err error
	)
	switch c.method {
	case LinearSolve:
		pi, err = c.steadyLinear()
	default:
		pi, err = c.steadyEigen()
	}
	if err != nil {
		return nil, err
	}
	if err = checkStationary(c.p, pi); err != nil {
		return nil, err
	}
	c.logger.Debug("steady state", "method", c.method, "pi", pi)

	return pi, nil
}

// SteadyStateByLabel is SteadyState keyed by state label.
func (c *Chain) SteadyStateByLabel() (map[string]float64, error) {
	pi, err := c.SteadyState()
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(pi))
	for i, p := range pi {
		out[c.states[i]] = p
	}

	return out, nil
}

// steadyEigen decomposes Pᵗ and keeps the eigenvector whose eigenvalue has the
// smallest |λ − 1|; on ties the first one in solver order wins.
func (c *Chain) steadyEigen() ([]float64, error) {
	n := len(c.states)
	data := make([]float64, 0, n*n)
	for _, row := range c.rows {
		data = append(data, row...)
	}

	var eig mat.Eigen
	if ok := eig.Factorize(mat.NewDense(n, n, data).T(), mat.EigenRight); !ok {
		return nil, ErrEigenFailed
	}
	values := eig.Values(nil)
	best, bestDist := 0, cmplx.Abs(values[0]-1)
	for k := 1; k < len(values); k++ {
		if d := cmplx.Abs(values[k] - 1); d < bestDist {
			best, bestDist = k, d
		}
	}

	var vectors mat.CDense
	eig.VectorsTo(&vectors)
	pi := make([]float64, n)
	for i := range pi {
		pi[i] = real(vectors.At(i, best))
	}

	return rescaleAbs(pi)
}

// steadyLinear solves (Pᵗ − I)·π = 0 with its last equation replaced by Σπ = 1.
// The replaced equation is redundant because the columns of Pᵗ − I sum to zero.
func (c *Chain) steadyLinear() ([]float64, error) {
	n := len(c.states)
	a, err := matrix.Transpose(c.p)
	if err != nil {
		return nil, fmt.Errorf("markov: steady state: %w", err)
	}
	var v float64
	for i := 0; i < n-1; i++ {
		if v, err = a.At(i, i); err != nil {
			return nil, fmt.Errorf("markov: steady state: %w", err)
		}
		if err = a.Set(i, i, v-1); err != nil {
			return nil, fmt.Errorf("markov: steady state: %w", err)
		}
	}
	for j := 0; j < n; j++ {
		if err = a.Set(n-1, j, 1); err != nil {
			return nil, fmt.Errorf("markov: steady state: %w", err)
		}
	}
	b := make([]float64, n)
	b[n-1] = 1

	pi, err := matrix.Solve(a, b)
	if err != nil {
		return nil, fmt.Errorf("markov: steady state: %w", err)
	}

	return rescaleAbs(pi)
}

// stationaryAtol bounds |(π·P)_j − π_j| for an accepted stationary vector.
const stationaryAtol = 1e-9

// checkStationary verifies π·P ≈ π element-wise via matrix.AllClose.
func checkStationary(p matrix.Matrix, pi []float64) error {
	x, err := matrix.NewDenseFrom([][]float64{pi})
	if err != nil {
		return fmt.Errorf("markov: steady state: %w", err)
	}
	xp, err := matrix.Mul(x, p)
	if err != nil {
		return fmt.Errorf("markov: steady state: %w", err)
	}
	ok, err := matrix.AllClose(xp, x, 0, stationaryAtol)
	if err != nil {
		return fmt.Errorf("markov: steady state: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: π·P differs from π by more than %g", ErrEigenFailed, stationaryAtol)
	}

	return nil
}

// rescaleAbs replaces v by |v| / Σ|v|. Eigenvectors carry an arbitrary sign
// and scale; round-off can leave tiny negative components in either method.
func rescaleAbs(v []float64) ([]float64, error) {
	var sum float64
	for i := range v {
		v[i] = math.Abs(v[i])
		sum += v[i]
	}
	if sum == 0 || math.IsNaN(sum) || math.IsInf(sum, 0) {
		return nil, ErrEigenFailed
	}
	for i := range v {
		v[i] /= sum
	}

	return v, nil
}
