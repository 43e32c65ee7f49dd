// SPDX-License-Identifier: MIT
package dfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/markovian/core"
	"github.com/katalvlaran/markovian/dfs"
)

func graphOf(t *testing.T, vertices []string, edges ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithLoops())
	for _, v := range vertices {
		require.NoError(t, g.AddVertex(v))
	}
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}

	return g
}

func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS(nil, "a")
	require.ErrorIs(t, err, dfs.ErrGraphNil)

	g := graphOf(t, []string{"a"})
	_, err = dfs.DFS(g, "missing")
	require.ErrorIs(t, err, dfs.ErrStartVertexNotFound)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.DFS(g, "a", dfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)

	_, err = dfs.StronglyConnected(nil)
	require.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_PostOrder(t *testing.T) {
	// a → b → c, a → d, with a self-loop on c.
	g := graphOf(t, nil, [2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"a", "d"}, [2]string{"c", "c"})

	res, err := dfs.DFS(g, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "d", "a"}, res.Order)
	assert.Equal(t, map[string]int{"a": 0, "b": 1, "c": 2, "d": 1}, res.Depth)
	assert.Equal(t, map[string]string{"b": "a", "c": "b", "d": "a"}, res.Parent)

	res, err = dfs.DFS(g, "b")
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b"}, res.Order)
	assert.False(t, res.Visited["a"])
}

func TestDFS_FilterAndFullTraversal(t *testing.T) {
	g := graphOf(t, []string{"z"}, [2]string{"a", "b"}, [2]string{"b", "c"})

	res, err := dfs.DFS(g, "a", dfs.WithFilterNeighbor(func(id string) bool { return id != "c" }))
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, res.Order)

	res, err = dfs.DFS(g, "", dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a", "z"}, res.Order)
}

func TestStronglyConnected(t *testing.T) {
	tests := []struct {
		name     string
		vertices []string
		edges    [][2]string
		want     [][]string
	}{
		{
			name:     "isolated vertices",
			vertices: []string{"a", "b"},
			want:     [][]string{{"b"}, {"a"}},
		},
		{
			name:  "one cycle",
			edges: [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}},
			want:  [][]string{{"a", "b", "c"}},
		},
		{
			name: "gambler's ruin",
			// m leaks into two absorbing ends.
			edges: [][2]string{{"l", "l"}, {"m", "l"}, {"m", "r"}, {"r", "r"}},
			want:  [][]string{{"m"}, {"r"}, {"l"}},
		},
		{
			name:  "transient feeds closed pair",
			edges: [][2]string{{"a", "a"}, {"a", "b"}, {"b", "b"}, {"b", "c"}, {"c", "b"}, {"c", "c"}},
			want:  [][]string{{"a"}, {"b", "c"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comps, err := dfs.StronglyConnected(graphOf(t, tt.vertices, tt.edges...))
			require.NoError(t, err)
			assert.Equal(t, tt.want, comps)
		})
	}
}
