// SPDX-License-Identifier: MIT
// Package: lvcat/shapes
//
// api.go - thin public entry-points for the shapes package.
//
// Design contract:
//   - One orchestrator: Build(name, opts, cons...). Creates the generating
//     graph, resolves the config, runs cons in order, returns its free category.
//   - Determinism: same inputs/options and constructor order ⇒ identical categories.
//   - Safety: never panic; return sentinel errors from constructors.

package shapes

import (
	"fmt"

	"github.com/katalvlaran/lvcat/core"
	"github.com/katalvlaran/lvcat/fincat"
)

// Constructor applies a deterministic mutation to the generating graph using
// the resolved shapeConfig. Constructors validate parameters early and return
// sentinel errors; they never panic.
type Constructor func(g *core.Graph, cfg shapeConfig) error

// Build creates a generating graph, applies all constructors in order and
// returns the free category on the result.
//
// Constructors share one graph, so objects with equal IDs are identified;
// generator IDs must stay distinct (use WithEdgeScheme per call if needed).
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - constructor errors, wrapped as "Build(name): %w".
//   - fincat.FreeCat errors (e.g. a cycle), wrapped the same way.
func Build(name string, opts []Option, cons ...Constructor) (*fincat.FinCat, error) {
	g := core.NewGraph()
	cfg := newShapeConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build(%s): nil constructor at index %d: %w", name, i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("Build(%s): %w", name, err)
		}
	}

	c, err := fincat.FreeCat(name, g)
	if err != nil {
		return nil, fmt.Errorf("Build(%s): %w", name, err)
	}

	return c, nil
}

// Point returns the terminal shape: one object "x", no generators.
func Point() *fincat.FinCat {
	c, err := Build("Point", []Option{WithIDScheme(func(int) string { return "x" })}, Discrete(1))
	if err != nil {
		// Discrete(1) on a fresh graph cannot fail.
		panic(err)
	}

	return c
}
