// SPDX-License-Identifier: MIT
// Package: lvcat/shapes
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn     = DefaultIDFn ("0","1","2",...)
//   • edgeFn   = DefaultEdgeFn ("e1","e2",...)
//   • centerID = "Center"

package shapes

// shapeConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type shapeConfig struct {
	idFn     IDFn   // object ID strategy: index -> ID
	edgeFn   IDFn   // generator ID strategy: index -> ID
	centerID string // apex of Star/Costar
}

// defaultCenterID is the fixed apex ID of Star and Costar shapes.
const defaultCenterID = "Center"

// newShapeConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
func newShapeConfig(opts ...Option) shapeConfig {
	cfg := shapeConfig{
		idFn:     DefaultIDFn,
		edgeFn:   DefaultEdgeFn,
		centerID: defaultCenterID,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
