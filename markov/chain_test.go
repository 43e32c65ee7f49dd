// SPDX-License-Identifier: MIT
package markov_test

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/markovian/markov"
)

var (
	weatherStates = []string{"sunny", "rainy"}
	weatherRows   = [][]float64{
		{0.7, 0.3},
		{0.5, 0.5},
	}
)

// mustChain builds a chain or fails the test.
func mustChain(t *testing.T, states []string, rows [][]float64, opts ...markov.Option) *markov.Chain {
	t.Helper()
	c, err := markov.New(states, rows, opts...)
	require.NoError(t, err)

	return c
}

// requireStochastic checks every row sums to 1 and every cell lies in [0, 1].
func requireStochastic(t *testing.T, rows [][]float64) {
	t.Helper()
	for i, row := range rows {
		var sum float64
		for j, v := range row {
			require.GreaterOrEqual(t, v, 0.0, "cell (%d,%d)", i, j)
			require.LessOrEqual(t, v, 1.0, "cell (%d,%d)", i, j)
			sum += v
		}
		require.InDelta(t, 1.0, sum, 1e-9, "row %d", i)
	}
}

func TestNew_Valid(t *testing.T) {
	var buf bytes.Buffer
	c := mustChain(t, weatherStates, weatherRows, markov.WithLogger(log.New(&buf)))

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, weatherStates, c.States())
	assert.Equal(t, weatherRows, c.Matrix().ToRows())
	assert.Contains(t, buf.String(), "matrix valid")
	assert.NotContains(t, buf.String(), "renormalizing")
}

func TestNew_Renormalizes(t *testing.T) {
	var buf bytes.Buffer
	c := mustChain(t, []string{"a", "b", "c"}, [][]float64{
		{2, 2, 0},
		{1, 3, 4},
		{0, 0, 5},
	}, markov.WithLogger(log.New(&buf)))

	rows := c.Matrix().ToRows()
	requireStochastic(t, rows)
	assert.InDeltaSlice(t, []float64{0.5, 0.5, 0}, rows[0], 1e-15)
	assert.InDeltaSlice(t, []float64{0.125, 0.375, 0.5}, rows[1], 1e-15)
	assert.Equal(t, []float64{0, 0, 1}, rows[2])

	out := buf.String()
	assert.Contains(t, out, "renormalizing")
	assert.Contains(t, out, "matrix valid")
}

func TestNew_TolerancePolicy(t *testing.T) {
	rows := [][]float64{{0.7, 0.3 + 1e-6}, {0.5, 0.5}}

	var strict bytes.Buffer
	c := mustChain(t, weatherStates, rows, markov.WithLogger(log.New(&strict)))
	assert.Contains(t, strict.String(), "renormalizing")
	requireStochastic(t, c.Matrix().ToRows())

	var loose bytes.Buffer
	c = mustChain(t, weatherStates, rows, markov.WithLogger(log.New(&loose)), markov.WithTolerance(1e-3))
	assert.NotContains(t, loose.String(), "renormalizing")
	v, err := c.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.3+1e-6, v)
}

func TestNew_NegativeRowIsNormalized(t *testing.T) {
	c := mustChain(t, weatherStates, [][]float64{{-1, -3}, {0.5, 0.5}})
	assert.InDeltaSlice(t, []float64{0.25, 0.75}, c.Matrix().ToRows()[0], 1e-15)
}

func TestNew_ShapeErrors(t *testing.T) {
	tests := []struct {
		name    string
		states  []string
		rows    [][]float64
		wantRow int
	}{
		{"empty", nil, nil, -1},
		{"empty row", []string{"a"}, [][]float64{{}}, -1},
		{"ragged", []string{"a", "b"}, [][]float64{{0.5, 0.5}, {1}}, 1},
		{"not square", []string{"a", "b"}, [][]float64{{0.5, 0.25, 0.25}, {0.5, 0.25, 0.25}}, -1},
		{"size mismatch", []string{"a", "b", "c"}, weatherRows, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := markov.New(tt.states, tt.rows)
			require.ErrorIs(t, err, markov.ErrShape)
			var se *markov.ShapeError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.wantRow, se.Row)
			assert.NotErrorIs(t, err, markov.ErrRange)
		})
	}
}

func TestNew_RangeErrors(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]float64
		row, col int
		zeroRow  bool
	}{
		{"above one", [][]float64{{1.5, -0.5}, {0.5, 0.5}}, 0, 0, false},
		{"below zero after normalization", [][]float64{{0.5, 0.5}, {-1, 3}}, 1, 0, false},
		{"nan", [][]float64{{0.5, 0.5}, {math.NaN(), 0.5}}, 1, 0, false},
		{"inf", [][]float64{{0.5, math.Inf(1)}, {0.5, 0.5}}, 0, 1, false},
		{"zero row", [][]float64{{0.5, 0.5}, {0, 0}}, 1, -1, true},
		{"cancelling row", [][]float64{{1, -1}, {0.5, 0.5}}, 0, -1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := markov.New(weatherStates, tt.rows)
			require.ErrorIs(t, err, markov.ErrRange)
			var re *markov.RangeError
			require.ErrorAs(t, err, &re)
			assert.Equal(t, tt.row, re.Row)
			assert.Equal(t, tt.col, re.Col)
			assert.Equal(t, tt.zeroRow, errors.Is(err, markov.ErrZeroRow))
		})
	}
}

func TestNew_InvalidStates(t *testing.T) {
	_, err := markov.New([]string{"a", "a"}, weatherRows)
	require.ErrorIs(t, err, markov.ErrInvalidState)

	_, err = markov.New([]string{"a", ""}, weatherRows)
	require.ErrorIs(t, err, markov.ErrInvalidState)
}

func TestNew_CopiesInput(t *testing.T) {
	states := []string{"x", "y"}
	rows := [][]float64{{0.7, 0.3}, {0.5, 0.5}}
	c := mustChain(t, states, rows)

	states[0] = "mutated"
	rows[0][0] = 0
	assert.Equal(t, []string{"x", "y"}, c.States())
	v, err := c.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.7, v)

	// Accessors hand out copies too.
	c.States()[1] = "mutated"
	m := c.Matrix()
	require.NoError(t, m.Set(0, 0, 0))
	assert.Equal(t, []string{"x", "y"}, c.States())
	v, _ = c.At(0, 0)
	assert.Equal(t, 0.7, v)
}

func TestChain_Lookups(t *testing.T) {
	c := mustChain(t, weatherStates, weatherRows)

	i, err := c.Index("rainy")
	require.NoError(t, err)
	assert.Equal(t, 1, i)
	_, err = c.Index("foggy")
	require.ErrorIs(t, err, markov.ErrUnknownState)

	label, err := c.Label(0)
	require.NoError(t, err)
	assert.Equal(t, "sunny", label)
	_, err = c.Label(2)
	require.ErrorIs(t, err, markov.ErrStateOutOfRange)

	_, err = c.At(0, -1)
	require.ErrorIs(t, err, markov.ErrStateOutOfRange)
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { markov.WithLogger(nil) })
	assert.Panics(t, func() { markov.WithTolerance(-1) })
	assert.Panics(t, func() { markov.WithTolerance(math.NaN()) })
	assert.Panics(t, func() { markov.WithSteadyMethod(markov.SteadyMethod(7)) })
	assert.Panics(t, func() { markov.WithRand(nil) })
}

func TestParseSteadyMethod(t *testing.T) {
	m, err := markov.ParseSteadyMethod("Linear")
	require.NoError(t, err)
	assert.Equal(t, markov.LinearSolve, m)
	assert.Equal(t, "linear", m.String())

	m, err = markov.ParseSteadyMethod("eigen")
	require.NoError(t, err)
	assert.Equal(t, markov.EigenNearestOne, m)

	_, err = markov.ParseSteadyMethod("power")
	require.Error(t, err)
}
