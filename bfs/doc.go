// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph, returning
// hop-count distances, parent links and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Filters individual edges via WithFilterNeighbor.
//   - Honors a MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Edge weights are ignored: depth counts edges, so a weighted transition graph
// can be searched directly. Depths restricted to one communicating class give
// the level structure used to compute a class's period.
//
// Complexity
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex ID not in graph
//   - ErrOptionViolation      invalid option (negative MaxDepth)
//   - ErrNeighbors            neighbor lookup failed
//   - context errors          ctx canceled or past its deadline
package bfs
