// SPDX-License-Identifier: MIT
// Package chainfile: typed-input parsing.

package chainfile

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseStates splits a comma-separated list and trims each label.
// Empty labels ("a,,b", trailing commas) are rejected.
func ParseStates(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("%w: no states given", ErrInvalidInput)
	}
	parts := strings.Split(s, ",")
	states := make([]string, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, fmt.Errorf("%w: empty state at position %d", ErrInvalidInput, i)
		}
		states[i] = p
	}

	return states, nil
}

// ParseRow parses one matrix row. Cells are separated by commas and/or
// whitespace; row is the 0-based row index used in error messages.
func ParseRow(row int, s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == ';'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: row %d is empty", ErrInvalidInput, row)
	}
	out := make([]float64, len(fields))
	for col, f := range fields {
		v, err := ParseCell(f)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d, column %d: %q", ErrInvalidInput, row, col, f)
		}
		out[col] = v
	}

	return out, nil
}

// ParseRows parses every row with ParseRow.
func ParseRows(rows []string) ([][]float64, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows given", ErrInvalidInput)
	}
	out := make([][]float64, len(rows))
	for i, r := range rows {
		parsed, err := ParseRow(i, r)
		if err != nil {
			return nil, err
		}
		out[i] = parsed
	}

	return out, nil
}

// ParseCell parses a decimal ("0.25", "1e-3") or a fraction ("1/4").
// NaN and ±Inf, spelled out or produced by overflow, are rejected with
// ErrInvalidInput.
func ParseCell(s string) (float64, error) {
	s = strings.TrimSpace(s)
	num, den, isFrac := strings.Cut(s, "/")
	if !isFrac {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, err
		}

		return finite(s, v)
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return 0, err
	}
	d, err := strconv.ParseFloat(strings.TrimSpace(den), 64)
	if err != nil {
		return 0, err
	}
	if d == 0 {
		return 0, fmt.Errorf("%w: zero denominator in %q", ErrInvalidInput, s)
	}

	return finite(s, n/d)
}

func finite(s string, v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q is not a finite number", ErrInvalidInput, s)
	}

	return v, nil
}
