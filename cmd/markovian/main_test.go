// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/markovian/chainfile"
	"github.com/katalvlaran/markovian/markov"
	"github.com/katalvlaran/markovian/report"
)

var weatherFlags = []string{"--states", "sunny,rainy", "--row", "0.7,0.3", "--row", "0.5,0.5"}

func exec(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	argv := append(append([]string{}, args...), "--no-color")
	err = run(context.Background(), argv, &out, &errOut, quartz.NewMock(t))

	return out.String(), errOut.String(), err
}

func TestValidate_Renormalizes(t *testing.T) {
	out, logs, err := exec(t, "validate", "--states", "a,b", "--row", "1 3", "--row", "2 2")
	require.NoError(t, err)
	assert.Contains(t, out, "0.2500")
	assert.Contains(t, out, "0.7500")
	assert.Contains(t, logs, "renormalizing")
}

func TestSteady(t *testing.T) {
	for _, method := range []string{"eigen", "linear"} {
		t.Run(method, func(t *testing.T) {
			out, _, err := exec(t, append([]string{"steady", "--method", method}, weatherFlags...)...)
			require.NoError(t, err)
			assert.Contains(t, out, "0.6250")
			assert.Contains(t, out, "0.3750")
		})
	}
}

func TestSteady_FromFile(t *testing.T) {
	out, _, err := exec(t, "steady", "--file", "../../chainfile/testdata/chains.hcl", "--name", "oz")
	require.NoError(t, err)
	assert.Contains(t, out, "snow")
	assert.Contains(t, out, "0.4000")
	assert.Contains(t, out, "0.2000")
}

func TestForecast(t *testing.T) {
	out, _, err := exec(t, append([]string{"forecast", "--days", "3"}, weatherFlags...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "P^3")
	assert.Contains(t, out, "0.6280")
	assert.Contains(t, out, "0.3800")

	_, _, err = exec(t, append([]string{"forecast", "--days", "0"}, weatherFlags...)...)
	require.Error(t, err)
}

func TestClassify(t *testing.T) {
	out, _, err := exec(t, "classify", "--file", "../../chainfile/testdata/chains.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "{sunny, rainy}")
	assert.Contains(t, out, "closed")
}

func TestSimulate_Export(t *testing.T) {
	simulate := func(path string) []byte {
		t.Helper()
		args := append([]string{"simulate", "--initial", "rainy", "--steps", "40", "--runs", "3",
			"--seed", "9", "--export", path, "--width", "10"}, weatherFlags...)
		out, _, err := exec(t, args...)
		require.NoError(t, err)
		assert.Contains(t, out, "trajectory")
		assert.Contains(t, out, "showing 10 of 41 steps")
		assert.Contains(t, out, "3 run(s) x 40 steps")

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		return data
	}

	dir := t.TempDir()
	data := simulate(filepath.Join(dir, "runs.json"))
	var r report.SimulationReport
	require.NoError(t, json.Unmarshal(data, &r))
	assert.Equal(t, "rainy", r.Initial)
	assert.InDeltaSlice(t, []float64{0.625, 0.375}, r.Theoretical, 1e-9)
	require.Len(t, r.Runs, 3)
	for i, run := range r.Runs {
		assert.Equal(t, int64(9+i), run.Seed)
		require.Len(t, run.History, 41)
		assert.Equal(t, "rainy", run.History[0])
	}

	// Same seeds, same runs.
	assert.JSONEq(t, string(data), string(simulate(filepath.Join(dir, "again.json"))))
}

func TestRunReplicas_Deterministic(t *testing.T) {
	chain, err := markov.New([]string{"sunny", "rainy"}, [][]float64{{0.7, 0.3}, {0.5, 0.5}})
	require.NoError(t, err)

	seeds := []int64{1, 2, 3, 4, 5}
	first, err := runReplicas(context.Background(), chain, 0, 50, seeds)
	require.NoError(t, err)
	second, err := runReplicas(context.Background(), chain, 0, 50, seeds)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	for i, seed := range seeds {
		want, err := chain.Simulate(0, 50, markov.WithSeed(seed))
		require.NoError(t, err)
		assert.Equal(t, want, first[i])
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = runReplicas(ctx, chain, 0, 50, seeds)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSimulate_AbsorbingChain(t *testing.T) {
	// Two closed classes: the steady state is still reported, the run ends absorbed.
	out, _, err := exec(t, "simulate", "--initial", "l", "--steps", "5", "--seed", "1",
		"--states", "l,m,r", "--row", "1,0,0", "--row", "0.5,0,0.5", "--row", "0,0,1")
	require.NoError(t, err)
	assert.Contains(t, out, "1 run(s) x 5 steps")
}

func TestSimulate_Errors(t *testing.T) {
	_, _, err := exec(t, append([]string{"simulate", "--initial", "foggy"}, weatherFlags...)...)
	require.ErrorIs(t, err, markov.ErrUnknownState)

	_, _, err = exec(t, append([]string{"simulate", "--initial", "sunny", "--runs", "0"}, weatherFlags...)...)
	require.Error(t, err)

	_, _, err = exec(t, append([]string{"simulate", "--initial", "sunny", "--steps", "0"}, weatherFlags...)...)
	require.ErrorContains(t, err, "--steps must be >= 1")
}

func TestChainInputErrors(t *testing.T) {
	_, logs, err := exec(t, "validate", "--states", "a,b", "--row", "0.5,x", "--row", "0.5,0.5")
	require.ErrorIs(t, err, chainfile.ErrInvalidInput)
	assert.Contains(t, logs, "row 0, column 1")

	_, _, err = exec(t, "validate", "--states", "a,b", "--row", "NaN,1", "--row", "0.5,0.5")
	require.ErrorIs(t, err, chainfile.ErrInvalidInput)

	_, _, err = exec(t, "validate", "--states", "a,b", "--row", "0.5,0.5")
	require.ErrorIs(t, err, markov.ErrShape)

	_, _, err = exec(t, "validate")
	require.ErrorIs(t, err, errNoChain)

	_, _, err = exec(t, "validate", "--file", "chain.toml")
	require.ErrorIs(t, err, chainfile.ErrUnknownFormat)

	_, _, err = exec(t, "validate", "--file", "../../chainfile/testdata/chains.hcl", "--name", "mars")
	require.ErrorIs(t, err, chainfile.ErrChainNotFound)
}

func TestHelpDoesNotFail(t *testing.T) {
	out, _, err := exec(t, "--help")
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "simulate"), out)
}
