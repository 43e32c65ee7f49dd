// SPDX-License-Identifier: MIT

// Package core provides a thread-safe, in-memory directed Graph whose edges
// carry a float64 weight. It is the structural view of a transition matrix:
// one vertex per state label and an edge i → j wherever P[i][j] > 0.
//
// The Graph G = (V,E) supports:
//
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Self-loops (WithLoops)
//   - At most one edge per ordered pair (from, to)
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Determinism:
//
//   - Vertices() and NeighborIDs() return IDs sorted lexicographically.
//   - Neighbors() and Edges() return edges sorted by insertion order.
//
// Concurrency:
//
//   - All methods are safe for concurrent use. When both locks are needed
//     they are taken in the order muVert → muEdgeAdj.
//
// Views:
//
//   - Reverse(g) returns a new graph with every edge flipped; the input is not
//     mutated. Strongly connected component search in package dfs relies on it.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrBadWeight           - non-zero weight on an unweighted graph, or a non-finite weight.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - a second edge between the same ordered pair.
package core
