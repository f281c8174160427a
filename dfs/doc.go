// SPDX-License-Identifier: MIT

// Package dfs implements depth-first topological sort and cycle search on a
// core.Graph.
//
// What:
//
//   - TopologicalSort: a linear ordering of vertices such that every edge
//     u→v has u before v; returns ErrCycleDetected otherwise.
//   - FindCycle: the edge IDs of one directed cycle, or nil for a DAG.
//
// Why:
//
//   - The free category on a graph is finite exactly when the graph is
//     acyclic; fincat.FreeCat uses TopologicalSort to decide this and to
//     enumerate paths in dependency order.
//
// Key Types & Constants:
//
//   - White, Gray, Black: visitation markers
//   - TopoOption: functional options (cancellation)
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package dfs
