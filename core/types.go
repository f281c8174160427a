// SPDX-License-Identifier: MIT
// Package core defines the generating Graph used to present finite categories:
// vertices become objects and named directed edges become generating morphisms.
//
// All Graph methods are safe for concurrent use. Vertices are guarded by muVert,
// edges and the outgoing index by muEdge; lock order is always muVert -> muEdge.
//
// Errors:
//
//	ErrEmptyVertexID   - vertex ID is the empty string.
//	ErrEmptyEdgeID     - edge ID is the empty string.
//	ErrVertexNotFound  - requested vertex does not exist.
//	ErrEdgeNotFound    - requested edge does not exist.
//	ErrDuplicateEdge   - an edge with the same ID is already present.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrEmptyEdgeID indicates that the provided edge ID is empty.
	ErrEmptyEdgeID = errors.New("core: edge ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrDuplicateEdge indicates an edge ID was reused.
	ErrDuplicateEdge = errors.New("core: duplicate edge ID")
)

// Edge is a named directed edge From -> To.
//
// Edges are values: callers receive copies and cannot mutate the graph through them.
type Edge struct {
	// ID names the edge; it becomes the generator name in a presented category.
	ID string

	// From is the source vertex ID.
	From string

	// To is the target vertex ID.
	To string
}

// Graph is a directed multigraph with named edges.
//
// Self-loops and parallel edges are always permitted: a category presentation
// routinely needs both (endomorphisms, parallel pairs).
type Graph struct {
	muVert sync.RWMutex // guards vertices
	muEdge sync.RWMutex // guards edges and out

	vertices map[string]struct{}        // vertex ID set
	edges    map[string]Edge            // edge ID -> Edge
	out      map[string]map[string]bool // out[from][edgeID]
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices: make(map[string]struct{}),
		edges:    make(map[string]Edge),
		out:      make(map[string]map[string]bool),
	}
}
