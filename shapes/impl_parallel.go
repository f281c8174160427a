// SPDX-License-Identifier: MIT
// Package: lvcat/shapes
//
// impl_parallel.go - ParallelPair constructor: 0 ⇉ 1, the shape of an
// equalizer or coequalizer.

package shapes

import (
	"fmt"

	"github.com/katalvlaran/lvcat/core"
)

const methodParallelPair = "ParallelPair"

// ParallelPair returns a Constructor for two generators cfg.edgeFn(0),
// cfg.edgeFn(1) from cfg.idFn(0) to cfg.idFn(1).
func ParallelPair() Constructor {
	return func(g *core.Graph, cfg shapeConfig) error {
		from, to := cfg.idFn(0), cfg.idFn(1)
		for i := 0; i < 2; i++ {
			eid := cfg.edgeFn(i)
			if err := g.AddEdge(eid, from, to); err != nil {
				return fmt.Errorf("%s: AddEdge(%s, %s, %s): %w", methodParallelPair, eid, from, to, err)
			}
		}

		return nil
	}
}
