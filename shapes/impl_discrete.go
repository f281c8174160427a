// SPDX-License-Identifier: MIT
// Package: lvcat/shapes
//
// impl_discrete.go - Discrete(n) and Path(n) constructors.
//
// Contract:
//   - Objects via cfg.idFn in ascending index order (0..n-1).
//   - Path emits generators (i-1) -> i named cfg.edgeFn(i-1), i=1..n-1.

package shapes

import (
	"fmt"

	"github.com/katalvlaran/lvcat/core"
)

const (
	methodDiscrete   = "Discrete"
	methodPath       = "Path"
	minDiscreteNodes = 1
	minPathNodes     = 2
)

// Discrete returns a Constructor for the discrete category on n objects
// (identities only), the shape of an n-fold product or coproduct.
func Discrete(n int) Constructor {
	return func(g *core.Graph, cfg shapeConfig) error {
		if n < minDiscreteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodDiscrete, n, minDiscreteNodes, ErrTooFewObjects)
		}
		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodDiscrete, id, err)
			}
		}

		return nil
	}
}

// Path returns a Constructor for the chain 0 → 1 → ... → n-1.
// Its free category has one morphism i → j for every i ≤ j.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg shapeConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewObjects)
		}
		if err := g.AddVertex(cfg.idFn(0)); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodPath, cfg.idFn(0), err)
		}
		for i := 1; i < n; i++ {
			eid, from, to := cfg.edgeFn(i-1), cfg.idFn(i-1), cfg.idFn(i)
			if err := g.AddEdge(eid, from, to); err != nil {
				return fmt.Errorf("%s: AddEdge(%s, %s, %s): %w", methodPath, eid, from, to, err)
			}
		}

		return nil
	}
}
