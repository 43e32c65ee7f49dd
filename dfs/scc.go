// SPDX-License-Identifier: MIT

package dfs

import (
	"sort"

	"github.com/katalvlaran/markovian/core"
)

// StronglyConnected returns the strongly connected components of g, each
// sorted lexicographically, listed in Kosaraju discovery order (a component
// appears before every component it can reach).
//
// Implementation:
//   - Stage 1: Forest DFS on g; Order is the finish sequence.
//   - Stage 2: Build core.Reverse(g).
//   - Stage 3: For each vertex in reverse finish order that is not yet
//     assigned, DFS on the reversed graph filtered to unassigned vertices;
//     everything it visits is one component.
//
// Only WithContext is meaningful in opts; traversal options are set internally.
//
// Complexity: Time O(V + E), Space O(V + E).
func StronglyConnected(g *core.Graph, opts ...Option) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	with := func(extra ...Option) []Option {
		return append(append(make([]Option, 0, len(opts)+len(extra)), opts...), extra...)
	}

	first, err := DFS(g, "", with(WithFullTraversal())...)
	if err != nil {
		return nil, err
	}

	rev := core.Reverse(g)
	assigned := make(map[string]bool, len(first.Order))
	unassigned := WithFilterNeighbor(func(id string) bool { return !assigned[id] })

	var comps [][]string
	for i := len(first.Order) - 1; i >= 0; i-- {
		root := first.Order[i]
		if assigned[root] {
			continue
		}
		res, err := DFS(rev, root, with(unassigned)...)
		if err != nil {
			return nil, err
		}
		comp := res.Order
		for _, v := range comp {
			assigned[v] = true
		}
		sort.Strings(comp)
		comps = append(comps, comp)
	}

	return comps, nil
}
