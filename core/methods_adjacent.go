// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs).
// Determinism:
//   - Neighbors() sorts by insertion order.
//   - NeighborIDs() returns unique IDs sorted lex asc.

package core

import "sort"

// Neighbors returns the outgoing edges of id.
//
// Implementation:
//   - Stage 1: Validate id is non-empty (ErrEmptyVertexID).
//   - Stage 2: Acquire muVert then muEdgeAdj read locks for a consistent snapshot.
//   - Stage 3: Validate vertex existence (ErrVertexNotFound).
//   - Stage 4: Collect adjacency[id] and sort by insertion order.
//
// Returns pointers to live catalog edges; treat them as read-only.
//
// Complexity:
//   - Time O(d log d), Space O(d), d = out-degree of id.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]*Edge, 0, len(g.adjacency[id]))
	for _, e := range g.adjacency[id] {
		out = append(out, e)
	}
	sortBySeq(out)

	return out, nil
}

// NeighborIDs returns the IDs of the vertices id has an edge to, sorted
// lexicographically.
// Complexity: O(d log d)
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(edges))
	for i, e := range edges {
		ids[i] = e.To
	}
	sort.Strings(ids)

	return ids, nil
}
