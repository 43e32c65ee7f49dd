// SPDX-License-Identifier: MIT
// Package markov: k-step transition probabilities and distribution propagation.

package markov

import (
	"fmt"
	"math"

	"github.com/katalvlaran/markovian/matrix"
)

// Forecast returns P^days: entry (i, j) is the probability of being in state j
// exactly days steps after starting in state i. Forecast(0) is the identity.
//
// Errors:
//   - ErrNegativeDays.
//
// Complexity:
//   - Time O(n³·log days), Space O(n²).
func (c *Chain) Forecast(days int) (*matrix.Dense, error) {
	if days < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeDays, days)
	}
	pk, err := matrix.Power(c.p, days)
	if err != nil {
		return nil, fmt.Errorf("markov: forecast: %w", err)
	}

	return pk, nil
}

// Distribution propagates a row distribution: π0·P^steps.
// initial must have length n and non-negative finite entries summing to 1
// within 1e-9.
//
// Errors:
//   - ErrInvalidDistribution, ErrNegativeSteps.
func (c *Chain) Distribution(initial []float64, steps int) ([]float64, error) {
	if err := c.checkDistribution(initial); err != nil {
		return nil, err
	}
	if steps < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeSteps, steps)
	}
	pk, err := matrix.Power(c.p, steps)
	if err != nil {
		return nil, fmt.Errorf("markov: distribution: %w", err)
	}
	out, err := matrix.VecMat(initial, pk)
	if err != nil {
		return nil, fmt.Errorf("markov: distribution: %w", err)
	}

	return out, nil
}

// checkDistribution validates a probability vector over the chain's states.
func (c *Chain) checkDistribution(v []float64) error {
	if len(v) != len(c.states) {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidDistribution, len(v), len(c.states))
	}
	var sum float64
	for i, x := range v {
		if x < 0 || math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%w: entry %d is %g", ErrInvalidDistribution, i, x)
		}
		sum += x
	}
	if math.Abs(sum-1) > distributionTolerance {
		return fmt.Errorf("%w: sums to %g", ErrInvalidDistribution, sum)
	}

	return nil
}

// distributionTolerance bounds |Σπ0 − 1| for user-supplied initial vectors.
const distributionTolerance = 1e-9
