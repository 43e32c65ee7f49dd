// SPDX-License-Identifier: MIT
// Package markov: Chain construction and accessors.

package markov

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/markovian/matrix"
)

// Chain is an immutable, validated discrete-time Markov chain.
// Row i of the transition matrix holds the distribution of the next state
// given current state i; every row sums to 1 within the construction tolerance.
type Chain struct {
	states []string       // index → label
	index  map[string]int // label → index
	p      *matrix.Dense  // validated transition matrix
	rows   [][]float64    // row cache for the sampling hot path
	method SteadyMethod
	logger *log.Logger
}

// New validates states and raw, renormalizing rows when needed, and returns a Chain.
// Implementation:
//   - Stage 1: shape. raw must be non-empty, rectangular, square and sized
//     len(states); otherwise *ShapeError.
//   - Stage 2: labels. Empty or duplicate labels fail with ErrInvalidState.
//   - Stage 3: finiteness. NaN/±Inf cells fail with *RangeError.
//   - Stage 4: row sums. A zero row fails with *RangeError wrapping ErrZeroRow.
//     If any |sum − 1| exceeds the tolerance, every row is divided by its own
//     sum and a warning carrying the sums is logged.
//   - Stage 5: range. Any cell outside [0, 1] fails with *RangeError.
//   - Stage 6: log "matrix valid".
//
// Behavior highlights:
//   - raw is copied; the caller keeps ownership.
//   - Rows are divided by their signed sum, so an all-negative row becomes a
//     valid distribution. Mixed-sign rows still fail the range check.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func New(states []string, raw [][]float64, opts ...Option) (*Chain, error) {
	cfg := newChainConfig(opts)

	if err := checkShape(states, raw); err != nil {
		return nil, err
	}
	index, err := indexStates(states)
	if err != nil {
		return nil, err
	}

	// Finiteness is checked here so that the error names the cell.
	p, err := matrix.NewDenseFrom(raw, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, &ShapeError{Rows: len(raw), Cols: len(raw[0]), States: len(states), Row: -1, Reason: err.Error()}
	}
	var i, j int
	for i = range raw {
		for j = range raw[i] {
			if v := raw[i][j]; math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, &RangeError{Row: i, Col: j, Value: v}
			}
		}
	}

	sums, err := matrix.RowSums(p)
	if err != nil {
		return nil, fmt.Errorf("markov: row sums: %w", err)
	}
	renormalize := false
	for i, s := range sums {
		if s == 0 || math.IsInf(s, 0) {
			return nil, &RangeError{Row: i, Col: -1, Value: s, Err: ErrZeroRow}
		}
		if math.Abs(s-1) > cfg.tol {
			renormalize = true
		}
	}
	if renormalize {
		cfg.logger.Warn("rows do not sum to 1, renormalizing", "sums", sums)
		if p, _, err = matrix.NormalizeRowSums(p); err != nil {
			return nil, fmt.Errorf("markov: normalize: %w", err)
		}
	}

	rows := p.ToRows()
	for i = range rows {
		for j = range rows[i] {
			if v := rows[i][j]; v < 0 || v > 1 {
				return nil, &RangeError{Row: i, Col: j, Value: v}
			}
		}
	}

	cfg.logger.Info("matrix valid", "states", len(states))

	labels := make([]string, len(states))
	copy(labels, states)

	return &Chain{
		states: labels,
		index:  index,
		p:      p,
		rows:   rows,
		method: cfg.method,
		logger: cfg.logger,
	}, nil
}

// checkShape reports the first shape violation as a *ShapeError.
func checkShape(states []string, raw [][]float64) error {
	if len(raw) == 0 || len(raw[0]) == 0 {
		return &ShapeError{Rows: len(raw), States: len(states), Row: -1, Reason: "empty matrix"}
	}
	n := len(raw)
	c := len(raw[0])
	for i := 1; i < n; i++ {
		if len(raw[i]) != c {
			return &ShapeError{Rows: n, Cols: len(raw[i]), States: len(states), Row: i, Reason: "ragged rows"}
		}
	}
	if c != n {
		return &ShapeError{Rows: n, Cols: c, States: len(states), Row: -1, Reason: "matrix is not square"}
	}
	if len(states) != n {
		return &ShapeError{Rows: n, Cols: c, States: len(states), Row: -1, Reason: "state count does not match matrix size"}
	}

	return nil
}

// indexStates builds label → index, rejecting empty and duplicate labels.
func indexStates(states []string) (map[string]int, error) {
	index := make(map[string]int, len(states))
	for i, s := range states {
		if s == "" {
			return nil, fmt.Errorf("%w: empty label at position %d", ErrInvalidState, i)
		}
		if prev, dup := index[s]; dup {
			return nil, fmt.Errorf("%w: %q at positions %d and %d", ErrInvalidState, s, prev, i)
		}
		index[s] = i
	}

	return index, nil
}

// Len returns the number of states.
func (c *Chain) Len() int { return len(c.states) }

// States returns a copy of the state labels in index order.
func (c *Chain) States() []string {
	out := make([]string, len(c.states))
	copy(out, c.states)

	return out
}

// Label returns the label of state i.
func (c *Chain) Label(i int) (string, error) {
	if err := c.checkIndex(i); err != nil {
		return "", err
	}

	return c.states[i], nil
}

// Index returns the position of label, or ErrUnknownState.
func (c *Chain) Index(label string) (int, error) {
	i, ok := c.index[label]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownState, label)
	}

	return i, nil
}

// Matrix returns a copy of the validated transition matrix.
func (c *Chain) Matrix() *matrix.Dense {
	return c.p.Clone().(*matrix.Dense)
}

// At returns P[i][j].
func (c *Chain) At(i, j int) (float64, error) {
	if err := c.checkIndex(i); err != nil {
		return 0, err
	}
	if err := c.checkIndex(j); err != nil {
		return 0, err
	}

	return c.rows[i][j], nil
}

func (c *Chain) checkIndex(i int) error {
	if i < 0 || i >= len(c.states) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrStateOutOfRange, i, len(c.states))
	}

	return nil
}
