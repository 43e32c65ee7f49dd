// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating graph views.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.

package core

import "sync/atomic"

// Reverse returns a new Graph with the same vertices, flags and edge IDs, and
// every edge From → To replaced by To → From with the same weight. The input
// graph is not mutated.
//
// Complexity: O(V + E).
func Reverse(g *Graph) *Graph {
	out := NewGraph()
	out.weighted, out.allowLoops = g.weighted, g.allowLoops

	g.muVert.RLock()
	for id := range g.vertices {
		out.vertices[id] = struct{}{}
		out.adjacency[id] = make(map[string]*Edge)
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for eid, e := range g.edges {
		ne := &Edge{ID: eid, From: e.To, To: e.From, Weight: e.Weight, seq: e.seq}
		out.edges[eid] = ne
		out.adjacency[ne.From][ne.To] = ne
	}
	out.nextEdgeID = atomic.LoadUint64(&g.nextEdgeID)

	return out
}
