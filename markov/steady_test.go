// SPDX-License-Identifier: MIT
package markov_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/markovian/markov"
	"github.com/katalvlaran/markovian/matrix"
)

var methods = []markov.SteadyMethod{markov.EigenNearestOne, markov.LinearSolve}

// requireDistribution checks non-negativity and Σ = 1.
func requireDistribution(t *testing.T, pi []float64) {
	t.Helper()
	var sum float64
	for i, p := range pi {
		require.GreaterOrEqual(t, p, 0.0, "component %d", i)
		sum += p
	}
	require.InDelta(t, 1.0, sum, 1e-6)
}

// requireFixedPoint checks π·P = π.
func requireFixedPoint(t *testing.T, c *markov.Chain, pi []float64) {
	t.Helper()
	next, err := matrix.VecMat(pi, c.Matrix())
	require.NoError(t, err)
	require.InDeltaSlice(t, pi, next, 1e-9)
}

func TestSteadyState_Irreducible(t *testing.T) {
	tests := []struct {
		name   string
		states []string
		rows   [][]float64
		want   []float64
	}{
		{"weather", weatherStates, weatherRows, []float64{0.625, 0.375}},
		{
			name:   "land of oz",
			states: []string{"rain", "nice", "snow"},
			rows:   [][]float64{{0.5, 0.25, 0.25}, {0.5, 0, 0.5}, {0.25, 0.25, 0.5}},
			want:   []float64{0.4, 0.2, 0.4},
		},
		{"periodic", []string{"a", "b"}, [][]float64{{0, 1}, {1, 0}}, []float64{0.5, 0.5}},
		{"single", []string{"only"}, [][]float64{{1}}, []float64{1}},
	}
	for _, tt := range tests {
		for _, m := range methods {
			t.Run(tt.name+"/"+m.String(), func(t *testing.T) {
				c := mustChain(t, tt.states, tt.rows, markov.WithSteadyMethod(m))
				pi, err := c.SteadyState()
				require.NoError(t, err)
				requireDistribution(t, pi)
				assert.InDeltaSlice(t, tt.want, pi, 1e-9)
				requireFixedPoint(t, c, pi)
			})
		}
	}
}

func TestSteadyState_MethodsAgree(t *testing.T) {
	rows := [][]float64{
		{0.1, 0.6, 0.3, 0},
		{0.4, 0.2, 0.2, 0.2},
		{0, 0.5, 0.25, 0.25},
		{0.3, 0, 0.3, 0.4},
	}
	states := []string{"s0", "s1", "s2", "s3"}

	eig, err := mustChain(t, states, rows).SteadyState()
	require.NoError(t, err)
	lin, err := mustChain(t, states, rows, markov.WithSteadyMethod(markov.LinearSolve)).SteadyState()
	require.NoError(t, err)
	assert.InDeltaSlice(t, lin, eig, 1e-9)
}

func TestSteadyState_Idempotent(t *testing.T) {
	c := mustChain(t, weatherStates, weatherRows)
	first, err := c.SteadyState()
	require.NoError(t, err)
	second, err := c.SteadyState()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSteadyState_Reducible(t *testing.T) {
	// Two absorbing ends: every mixture of them is stationary.
	states := []string{"left", "middle", "right"}
	rows := [][]float64{{1, 0, 0}, {0.5, 0, 0.5}, {0, 0, 1}}

	pi, err := mustChain(t, states, rows).SteadyState()
	require.NoError(t, err)
	requireDistribution(t, pi)
	assert.InDelta(t, 0.0, pi[1], 1e-12)

	_, err = mustChain(t, states, rows, markov.WithSteadyMethod(markov.LinearSolve)).SteadyState()
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestSteadyStateByLabel(t *testing.T) {
	got, err := mustChain(t, weatherStates, weatherRows).SteadyStateByLabel()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.InDelta(t, 0.625, got["sunny"], 1e-9)
	assert.InDelta(t, 0.375, got["rainy"], 1e-9)
}

func TestSteadyState_SingleClosedClassWithTransient(t *testing.T) {
	// a leaks into the closed pair {b, c}; the stationary vector is unique.
	states := []string{"a", "b", "c"}
	rows := [][]float64{{0.5, 0.5, 0}, {0, 0.5, 0.5}, {0, 0.5, 0.5}}

	for _, m := range methods {
		t.Run(m.String(), func(t *testing.T) {
			c := mustChain(t, states, rows, markov.WithSteadyMethod(m))
			before := c.Matrix().ToRows()

			pi, err := c.SteadyState()
			require.NoError(t, err)
			assert.InDeltaSlice(t, []float64{0, 0.5, 0.5}, pi, 1e-9)
			requireFixedPoint(t, c, pi)
			assert.Equal(t, before, c.Matrix().ToRows(), "steady state must not touch P")
		})
	}
}
