// SPDX-License-Identifier: MIT
// Package markov: structural classification of states.
//
// The transition graph (see Graph) has an edge i → j whenever P[i][j] > 0.
// Its strongly connected components are the communicating classes; a class
// with no edge leaving it is closed (recurrent), every other class is
// transient.
//
// Complexity:
//   - Graph construction: O(n²) over the dense matrix.
//   - Kosaraju SCC (dfs.StronglyConnected): O(V + E).
//   - Periods: one BFS per class restricted to the class, O(V + E) overall.

package markov

import (
	"fmt"
	"slices"
	"sort"

	"github.com/katalvlaran/markovian/bfs"
	"github.com/katalvlaran/markovian/core"
	"github.com/katalvlaran/markovian/dfs"
)

// Class is a communicating class of states.
type Class struct {
	States []int // member indices, ascending
	Closed bool  // no probability mass leaves the class
	Period int   // gcd of cycle lengths inside the class; 0 when it has no cycle
}

// Classification summarizes the structure of a chain.
type Classification struct {
	Classes     []Class // ordered by smallest member
	Absorbing   []int   // states with P[i][i] == 1, ascending
	Irreducible bool    // exactly one class containing every state
}

// Closed returns the closed (recurrent) classes. A chain has a unique
// stationary distribution iff exactly one class is closed.
func (k Classification) Closed() []Class {
	var out []Class
	for _, c := range k.Classes {
		if c.Closed {
			out = append(out, c)
		}
	}

	return out
}

// Ergodic reports whether the chain is irreducible and aperiodic, i.e. P^k
// converges to a matrix whose rows all equal the stationary distribution.
func (k Classification) Ergodic() bool {
	return k.Irreducible && k.Classes[0].Period == 1
}

// Graph returns the transition graph: one vertex per state label and an edge
// i → j weighted P[i][j] wherever P[i][j] > 0. Each call builds a fresh graph.
func (c *Chain) Graph() (*core.Graph, error) {
	g := core.NewGraph(core.WithWeighted(), core.WithLoops())
	for _, s := range c.states {
		if err := g.AddVertex(s); err != nil {
			return nil, err
		}
	}
	for i, row := range c.rows {
		for j, p := range row {
			if p <= 0 {
				continue
			}
			if _, err := g.AddEdge(c.states[i], c.states[j], p); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// Classify computes communicating classes, closed classes, absorbing states
// and periods. The result depends only on which cells of P are positive.
func (c *Chain) Classify() (Classification, error) {
	g, err := c.Graph()
	if err != nil {
		return Classification{}, fmt.Errorf("markov: classify: %w", err)
	}
	comps, err := dfs.StronglyConnected(g)
	if err != nil {
		return Classification{}, fmt.Errorf("markov: classify: %w", err)
	}

	classes := make([]Class, 0, len(comps))
	for _, comp := range comps {
		cl, err := c.inspectClass(g, comp)
		if err != nil {
			return Classification{}, fmt.Errorf("markov: classify: %w", err)
		}
		classes = append(classes, cl)
	}
	sort.Slice(classes, func(a, b int) bool { return classes[a].States[0] < classes[b].States[0] })

	var absorbing []int
	for i, row := range c.rows {
		if row[i] == 1 {
			absorbing = append(absorbing, i)
		}
	}

	return Classification{
		Classes:     classes,
		Absorbing:   absorbing,
		Irreducible: len(classes) == 1,
	}, nil
}

// inspectClass resolves the labels of one component to indices and computes
// whether it is closed and its period.
//
// The period is the gcd of depth[u] + 1 − depth[v] over all edges u → v
// inside the class, where depth comes from a BFS rooted at the class's first
// member that never leaves the class.
func (c *Chain) inspectClass(g *core.Graph, labels []string) (Class, error) {
	in := make(map[string]bool, len(labels))
	members := make([]int, len(labels))
	for k, s := range labels {
		in[s] = true
		members[k] = c.index[s]
	}
	slices.Sort(members)

	root := c.states[members[0]]
	res, err := bfs.BFS(g, root, bfs.WithFilterNeighbor(func(_, nbr string) bool { return in[nbr] }))
	if err != nil {
		return Class{}, err
	}

	closed, per := true, 0
	for _, u := range labels {
		nbrs, err := g.NeighborIDs(u)
		if err != nil {
			return Class{}, err
		}
		for _, v := range nbrs {
			if !in[v] {
				closed = false

				continue
			}
			per = gcd(per, res.Depth[u]+1-res.Depth[v])
		}
	}

	return Class{States: members, Closed: closed, Period: per}, nil
}

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
