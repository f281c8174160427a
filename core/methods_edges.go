// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edge/Edges/OutEdges/EdgeCount.
// Determinism:
//   - Edges() and OutEdges() return edges sorted by Edge.ID asc.

package core

import (
	"fmt"
	"sort"
)

// AddEdge adds the named edge from -> to, creating missing endpoints.
//
// Steps:
//  1. Validate IDs.
//  2. Ensure endpoints via AddVertex (takes muVert, then muEdge).
//  3. Under muEdge, reject a reused ID and register the edge.
//
// Errors:
//   - ErrEmptyEdgeID, ErrEmptyVertexID on empty identifiers.
//   - ErrDuplicateEdge if id is already used.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(id, from, to string) error {
	if id == "" {
		return ErrEmptyEdgeID
	}
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if err := g.AddVertex(from); err != nil {
		return err
	}
	if err := g.AddVertex(to); err != nil {
		return err
	}

	g.muEdge.Lock()
	defer g.muEdge.Unlock()
	if _, exists := g.edges[id]; exists {
		return fmt.Errorf("AddEdge(%q): %w", id, ErrDuplicateEdge)
	}
	g.edges[id] = Edge{ID: id, From: from, To: to}
	g.out[from][id] = true

	return nil
}

// HasEdge reports whether an edge with the given ID exists.
func (g *Graph) HasEdge(id string) bool {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	_, ok := g.edges[id]

	return ok
}

// Edge returns the edge with the given ID.
func (g *Graph) Edge(id string) (Edge, error) {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	e, ok := g.edges[id]
	if !ok {
		return Edge{}, fmt.Errorf("Edge(%q): %w", id, ErrEdgeNotFound)
	}

	return e, nil
}

// Edges returns every edge sorted by ID.
// Complexity: O(E·log E).
func (g *Graph) Edges() []Edge {
	g.muEdge.RLock()
	res := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		res = append(res, e)
	}
	g.muEdge.RUnlock()
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })

	return res
}

// OutEdges returns the edges leaving vertex id, sorted by ID.
//
// Errors:
//   - ErrVertexNotFound if id is not a vertex.
func (g *Graph) OutEdges(id string) ([]Edge, error) {
	if !g.HasVertex(id) {
		return nil, fmt.Errorf("OutEdges(%q): %w", id, ErrVertexNotFound)
	}

	g.muEdge.RLock()
	res := make([]Edge, 0, len(g.out[id]))
	for eid := range g.out[id] {
		res = append(res, g.edges[eid])
	}
	g.muEdge.RUnlock()
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })

	return res, nil
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	return len(g.edges)
}
