// SPDX-License-Identifier: MIT

// Package core provides a thread-safe directed multigraph with named edges,
// the generating data of a finitely presented category.
//
// A Graph G = (V,E) is read as a presentation:
//
//   - every vertex is an object,
//   - every edge e: u→v is a generating morphism named e.ID,
//   - self-loops and parallel edges are always allowed.
//
// Core Methods:
//
//	AddVertex(id string) error           // O(1), idempotent
//	HasVertex(id string) bool            // O(1)
//	AddEdge(id, from, to string) error   // O(1)†, creates missing endpoints
//	HasEdge(id string) bool              // O(1)
//	Edge(id string) (Edge, error)        // O(1)
//	Vertices() []string                  // O(V·log V), sorted
//	Edges() []Edge                       // O(E·log E), sorted by ID
//	OutEdges(id string) ([]Edge, error)  // O(d·log d), sorted by ID
//	VertexCount(), EdgeCount() int       // O(1)
//	Clone() *Graph                       // O(V+E), deep copy
//
// Enumeration is deterministic, so categories built from the same graph
// always list their objects and morphisms in the same order.
package core
