// SPDX-License-Identifier: MIT
// Package: lvcat/shapes
//
// options.go - functional options for the shapes package.
//
// Contract:
//   • Options are functional (type Option func(*shapeConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.

package shapes

// Option customizes constructors by mutating a shapeConfig before
// construction begins.
type Option func(*shapeConfig)

// WithIDScheme sets the deterministic object ID generator: idx -> string.
// Panics on nil.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("shapes: WithIDScheme(nil)")
	}
	return func(c *shapeConfig) { c.idFn = fn }
}

// WithEdgeScheme sets the deterministic generator ID scheme: idx -> string.
// Panics on nil.
func WithEdgeScheme(fn IDFn) Option {
	if fn == nil {
		panic("shapes: WithEdgeScheme(nil)")
	}
	return func(c *shapeConfig) { c.edgeFn = fn }
}

// WithCenterID renames the apex of Star/Costar shapes. Panics on "".
func WithCenterID(id string) Option {
	if id == "" {
		panic("shapes: WithCenterID(\"\")")
	}
	return func(c *shapeConfig) { c.centerID = id }
}
