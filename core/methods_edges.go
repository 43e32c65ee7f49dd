// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge creation & queries.
// Determinism:
//   - Edges() returns edges in insertion order.
// Concurrency:
//   - Edge catalog and adjacency protected by muEdgeAdj.

package core

import (
	"fmt"
	"math"
	"sort"
	"sync/atomic"
)

const edgeIDPrefix = "e"

// AddEdge creates the edge from → to with the given weight and returns its ID.
// Missing endpoints are added first.
//
// Implementation:
//   - Stage 1: Validate endpoints, weight policy and loop policy.
//   - Stage 2: Ensure both vertices exist (idempotent AddVertex).
//   - Stage 3: Under muEdgeAdj write lock, reject a duplicate pair, allocate an
//     atomic ID and register the edge in the catalog and adjacency.
//
// Errors:
//   - ErrEmptyVertexID: if from or to is empty.
//   - ErrBadWeight: NaN/Inf weight, or weight != 0 on an unweighted graph.
//   - ErrLoopNotAllowed: from == to without WithLoops.
//   - ErrMultiEdgeNotAllowed: an edge from → to already exists.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) || (!g.weighted && weight != 0) {
		return "", fmt.Errorf("%w: %v on %s→%s", ErrBadWeight, weight, from, to)
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, dup := g.adjacency[from][to]; dup {
		return "", fmt.Errorf("%w: %s→%s", ErrMultiEdgeNotAllowed, from, to)
	}
	seq := atomic.AddUint64(&g.nextEdgeID, 1)
	e := &Edge{ID: fmt.Sprintf("%s%d", edgeIDPrefix, seq), From: from, To: to, Weight: weight, seq: seq}
	g.edges[e.ID] = e
	g.adjacency[from][to] = e

	return e.ID, nil
}

// HasEdge reports whether the edge from → to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// Edges returns all edges in insertion order.
// Complexity: O(E·logE)
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortBySeq(out)

	return out
}

// EdgeCount returns the number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

func sortBySeq(es []*Edge) {
	sort.Slice(es, func(i, j int) bool { return es[i].seq < es[j].seq })
}
