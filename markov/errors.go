// SPDX-License-Identifier: MIT
// Package markov: sentinel and typed errors.
//
// Every sentinel message is prefixed with "markov: ". Construction failures
// are typed (*ShapeError, *RangeError) so callers can read the offending
// row/column with errors.As, and still match the sentinel with errors.Is.

package markov

import (
	"errors"
	"fmt"
)

var (
	// ErrShape is matched by every *ShapeError.
	ErrShape = errors.New("markov: invalid transition matrix shape")

	// ErrRange is matched by every *RangeError.
	ErrRange = errors.New("markov: transition probability out of range")

	// ErrZeroRow marks a row whose sum is zero (or not finite); such a row
	// cannot be renormalized. Always delivered inside a *RangeError.
	ErrZeroRow = errors.New("markov: row cannot be normalized")

	// ErrInvalidState indicates an empty or duplicate state label.
	ErrInvalidState = errors.New("markov: invalid state label")

	// ErrUnknownState indicates a label that is not part of the chain.
	ErrUnknownState = errors.New("markov: unknown state")

	// ErrStateOutOfRange indicates a state index outside [0, n).
	ErrStateOutOfRange = errors.New("markov: state index out of range")

	// ErrNegativeSteps is returned for a negative number of simulation or propagation steps.
	ErrNegativeSteps = errors.New("markov: steps must be >= 0")

	// ErrNegativeDays is returned by Forecast for a negative horizon.
	ErrNegativeDays = errors.New("markov: days must be >= 0")

	// ErrInvalidDistribution indicates an initial distribution with the wrong
	// length, negative or non-finite entries, or a sum away from 1.
	ErrInvalidDistribution = errors.New("markov: invalid probability distribution")

	// ErrEmptyHistory is returned by Frequencies for an empty trajectory.
	ErrEmptyHistory = errors.New("markov: empty history")

	// ErrEigenFailed indicates that the eigendecomposition did not converge or
	// produced no usable stationary vector.
	ErrEigenFailed = errors.New("markov: eigendecomposition failed")
)

// ShapeError describes a transition matrix that is not n×n for n = len(states).
type ShapeError struct {
	Rows   int    // number of rows supplied
	Cols   int    // length of the offending row (or of row 0)
	States int    // number of state labels supplied
	Row    int    // offending row for ragged input, -1 otherwise
	Reason string // short human-readable cause
}

func (e *ShapeError) Error() string {
	if e.Row >= 0 {
		return fmt.Sprintf("markov: invalid shape: %s (row %d has %d entries, want %d)", e.Reason, e.Row, e.Cols, e.Rows)
	}

	return fmt.Sprintf("markov: invalid shape: %s (%d states, %dx%d matrix)", e.Reason, e.States, e.Rows, e.Cols)
}

// Unwrap lets errors.Is(err, ErrShape) succeed.
func (e *ShapeError) Unwrap() error { return ErrShape }

// RangeError names a cell (or a whole row when Col < 0) that violates the
// probability range.
type RangeError struct {
	Row   int     // offending row
	Col   int     // offending column, -1 for row-level failures
	Value float64 // the offending value (row sum for row-level failures)
	Err   error   // optional cause, e.g. ErrZeroRow
}

func (e *RangeError) Error() string {
	if e.Col < 0 {
		return fmt.Sprintf("markov: row %d sums to %g and cannot be normalized", e.Row, e.Value)
	}

	return fmt.Sprintf("markov: P[%d][%d] = %g is outside [0, 1]", e.Row, e.Col, e.Value)
}

// Unwrap exposes both ErrRange and the optional cause to errors.Is.
func (e *RangeError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrRange, e.Err}
	}

	return []error{ErrRange}
}
