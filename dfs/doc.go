// SPDX-License-Identifier: MIT

// Package dfs implements depth-first search on a core.Graph and, on top of
// it, strongly connected component detection.
//
// What:
//
//   - DFS(g, startID, opts...): single-source or forest traversal
//     (WithFullTraversal) recording post-order, depths, parents and visits.
//   - StronglyConnected(g, opts...): Kosaraju's algorithm. One forest DFS on g
//     gives finish order; DFS runs on core.Reverse(g) in reverse finish order,
//     skipping already assigned vertices, peel off one component each.
//
// In a transition graph the strongly connected components are exactly the
// communicating classes of the chain.
//
// Complexity:
//
//   - DFS:               Time O(V+E), Memory O(V)
//   - StronglyConnected: Time O(V+E), Memory O(V+E) for the reversed graph
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex ID not in graph
//   - context.Canceled        DFS canceled via context
package dfs
