// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Cloning graph instances.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

// Clone returns a deep copy of the graph: vertices, edges and the outgoing index.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	c := NewGraph()
	for id := range g.vertices {
		c.vertices[id] = struct{}{}
		c.out[id] = make(map[string]bool, len(g.out[id]))
	}
	for id, e := range g.edges {
		c.edges[id] = e
		c.out[e.From][id] = true
	}

	return c
}
