// SPDX-License-Identifier: MIT
// Package markov: trajectory sampling.

package markov

import "fmt"

// Simulate draws a random trajectory of steps transitions starting at initial.
// Implementation:
//   - history[0] = initial; for t = 1..steps the next state is drawn from the
//     categorical distribution in row history[t-1] by inverse-CDF over the row.
//
// Inputs:
//   - initial: starting state index in [0, n).
//   - steps: number of transitions (≥ 0).
//   - opts: WithSeed / WithRand; default is the process-global math/rand source.
//
// Returns:
//   - steps+1 indices, all in [0, n).
//
// Errors:
//   - ErrStateOutOfRange, ErrNegativeSteps.
//
// Complexity:
//   - Time O(steps·n), Space O(steps).
func (c *Chain) Simulate(initial, steps int, opts ...SimulateOption) ([]int, error) {
	if err := c.checkIndex(initial); err != nil {
		return nil, err
	}
	if steps < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeSteps, steps)
	}

	var cfg simConfig
	for _, set := range opts {
		set(&cfg)
	}
	uniform := cfg.uniform()

	history := make([]int, steps+1)
	history[0] = initial
	cur := initial
	for t := 1; t <= steps; t++ {
		cur = c.next(cur, uniform())
		history[t] = cur
	}
	c.logger.Debug("simulated", "initial", c.states[initial], "steps", steps, "final", c.states[cur])

	return history, nil
}

// SimulateLabels is Simulate over labels.
func (c *Chain) SimulateLabels(initial string, steps int, opts ...SimulateOption) ([]string, error) {
	start, err := c.Index(initial)
	if err != nil {
		return nil, err
	}
	history, err := c.Simulate(start, steps, opts...)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(history))
	for i, s := range history {
		out[i] = c.states[s]
	}

	return out, nil
}

// next maps a uniform draw u ∈ [0,1) to a successor of cur.
// Zero-probability cells are never selected. When round-off leaves the row's
// cumulative mass just below u, the last positive cell is returned.
func (c *Chain) next(cur int, u float64) int {
	var acc float64
	last := cur
	for j, p := range c.rows[cur] {
		if p <= 0 {
			continue
		}
		last = j
		acc += p
		if u < acc {
			return j
		}
	}

	return last
}
