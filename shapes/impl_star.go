// SPDX-License-Identifier: MIT
// Package: lvcat/shapes
//
// impl_star.go - Star/Costar constructors and their n=2 cases Span/Cospan.
//
// Contract:
//   - Apex is cfg.centerID; leaves via cfg.idFn(0..n-1).
//   - Leg i is named cfg.edgeFn(i); Star legs leave the apex, Costar legs enter it.

package shapes

import (
	"fmt"

	"github.com/katalvlaran/lvcat/core"
)

const (
	methodStar   = "Star"
	methodCostar = "Costar"
	minStarLegs  = 1
	spanLegs     = 2
)

// Star returns a Constructor for n legs Center → leaf_i (a multi-span).
func Star(n int) Constructor {
	return legs(methodStar, n, true)
}

// Costar returns a Constructor for n legs leaf_i → Center (a multi-cospan).
func Costar(n int) Constructor {
	return legs(methodCostar, n, false)
}

// Span is Star(2): the shape of a pullback's cone, leaf0 ← Center → leaf1.
func Span() Constructor { return Star(spanLegs) }

// Cospan is Costar(2): the shape of a pullback, leaf0 → Center ← leaf1.
func Cospan() Constructor { return Costar(spanLegs) }

func legs(method string, n int, outward bool) Constructor {
	return func(g *core.Graph, cfg shapeConfig) error {
		if n < minStarLegs {
			return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minStarLegs, ErrTooFewObjects)
		}
		if err := g.AddVertex(cfg.centerID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, cfg.centerID, err)
		}
		for i := 0; i < n; i++ {
			eid, from, to := cfg.edgeFn(i), cfg.centerID, cfg.idFn(i)
			if !outward {
				from, to = to, from
			}
			if err := g.AddEdge(eid, from, to); err != nil {
				return fmt.Errorf("%s: AddEdge(%s, %s, %s): %w", method, eid, from, to, err)
			}
		}

		return nil
	}
}
