// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvcat/core"
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph *core.Graph    // the graph being sorted
	opts  topoOptions    // traversal options (cancellation)
	state map[string]int // visitation state: White, Gray, Black
	stack []string       // edge IDs on the current path (for FindCycle)
	cycle []string       // first cycle found, as edge IDs
	order []string       // recorded post-order sequence
}

// TopologicalSort computes a topological ordering of all vertices in g.
// Ties are broken by the sorted vertex and edge enumeration of core.Graph,
// so the result is deterministic.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - ErrCycleDetected if a directed cycle (including a self-loop) exists.
//   - ctx.Err() if the WithCancelContext context is cancelled.
func TopologicalSort(g *core.Graph, options ...TopoOption) ([]string, error) {
	s, err := run(g, options...)
	if err != nil {
		return nil, err
	}
	if s.cycle != nil {
		return nil, ErrCycleDetected
	}

	// Reverse post-order to produce topological order.
	for i, j := 0, len(s.order)-1; i < j; i, j = i+1, j-1 {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	}

	return s.order, nil
}

// FindCycle returns the edge IDs of one directed cycle in g, in traversal
// order, or nil when g is acyclic.
func FindCycle(g *core.Graph, options ...TopoOption) ([]string, error) {
	s, err := run(g, options...)
	if err != nil {
		return nil, err
	}

	return s.cycle, nil
}

func run(g *core.Graph, options ...TopoOption) (*topoSorter, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}

	verts := g.Vertices()
	s := &topoSorter{
		graph: g,
		opts:  opts,
		state: make(map[string]int, len(verts)),
		order: make([]string, 0, len(verts)),
	}
	for _, v := range verts {
		if s.state[v] != White {
			continue
		}
		if err := s.visit(v); err != nil {
			return nil, err
		}
		if s.cycle != nil {
			break
		}
	}

	return s, nil
}

// visit performs a DFS from id, marking states and recording the first back-edge cycle.
func (t *topoSorter) visit(id string) error {
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	t.state[id] = Gray

	out, err := t.graph.OutEdges(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNeighborFetch, err)
	}
	for _, e := range out {
		switch t.state[e.To] {
		case Gray:
			t.cycle = t.closeCycle(e)
			return nil
		case White:
			t.stack = append(t.stack, e.ID)
			if err = t.visit(e.To); err != nil {
				return err
			}
			if t.cycle != nil {
				return nil
			}
			t.stack = t.stack[:len(t.stack)-1]
		}
	}

	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}

// closeCycle cuts the current edge stack back to the vertex e.To and appends e.
func (t *topoSorter) closeCycle(e core.Edge) []string {
	start := len(t.stack)
	for i := len(t.stack) - 1; i >= 0; i-- {
		se, _ := t.graph.Edge(t.stack[i])
		if se.From == e.To {
			start = i
			break
		}
	}
	cycle := make([]string, 0, len(t.stack)-start+1)
	cycle = append(cycle, t.stack[start:]...)

	return append(cycle, e.ID)
}
