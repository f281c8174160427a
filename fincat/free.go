// SPDX-License-Identifier: MIT

package fincat

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvcat/core"
	"github.com/katalvlaran/lvcat/dfs"
)

// pathSep joins generator names into the name of a composite path.
const pathSep = ";"

// FreeCat returns the free category on the acyclic graph g: objects are the
// vertices, morphisms are the directed paths, composition is concatenation.
// A path e1, e2, ..., en is named "e1;e2;...;en".
//
// Errors:
//   - dfs.ErrGraphNil if g is nil.
//   - dfs.ErrCycleDetected if g has a cycle (the free category would be infinite).
//   - ErrReservedName if an edge ID starts with "id_" or contains ";".
//
// Complexity: O(P²) in the number of paths P, which may be exponential in E.
func FreeCat(name string, g *core.Graph) (*FinCat, error) {
	cycle, err := dfs.FindCycle(g)
	if err != nil {
		return nil, fmt.Errorf("fincat: FreeCat(%s): %w", name, err)
	}
	if cycle != nil {
		return nil, fmt.Errorf("fincat: FreeCat(%s): cycle %s: %w", name, strings.Join(cycle, pathSep), dfs.ErrCycleDetected)
	}
	order, err := dfs.TopologicalSort(g)
	if err != nil {
		return nil, fmt.Errorf("fincat: FreeCat(%s): %w", name, err)
	}
	for _, e := range g.Edges() {
		if strings.HasPrefix(e.ID, identityPrefix) || strings.Contains(e.ID, pathSep) {
			return nil, fmt.Errorf("fincat: FreeCat(%s): edge %q: %w", name, e.ID, ErrReservedName)
		}
	}

	// paths[v] lists the non-empty paths starting at v, built in reverse
	// topological order so every successor is complete before v.
	type path struct {
		name, codom string
	}
	paths := make(map[string][]path, len(order))
	for i := len(order) - 1; i >= 0; i-- {
		v := order[i]
		out, err := g.OutEdges(v)
		if err != nil {
			return nil, fmt.Errorf("fincat: FreeCat(%s): %w", name, err)
		}
		for _, e := range out {
			paths[v] = append(paths[v], path{name: e.ID, codom: e.To})
			for _, rest := range paths[e.To] {
				paths[v] = append(paths[v], path{name: e.ID + pathSep + rest.name, codom: rest.codom})
			}
		}
	}

	b := NewBuilder(name)
	if err = b.AddOb(order...); err != nil {
		return nil, err
	}
	for _, v := range order {
		for _, p := range paths[v] {
			if err = b.AddHom(p.name, v, p.codom); err != nil {
				return nil, err
			}
		}
	}
	for _, v := range order {
		for _, p := range paths[v] {
			for _, q := range paths[p.codom] {
				if err = b.SetComposite(p.name, q.name, p.name+pathSep+q.name); err != nil {
					return nil, err
				}
			}
		}
	}

	return b.Build()
}
