// SPDX-License-Identifier: MIT

// Package shapes builds the standard shape categories that index diagrams.
//
// Every shape is the free category on a small generating graph:
//
//	Discrete(n)    n objects, identities only        (products, coproducts)
//	Path(n)        0 → 1 → ... → n-1                 (sequences, towers)
//	Star(n)        Center → leaf_i, i < n            (multi-spans)
//	Costar(n)      leaf_i → Center, i < n            (multi-cospans)
//	Span(), Cospan()  Star(2), Costar(2)             (pushouts, pullbacks)
//	ParallelPair() 0 ⇉ 1                             (equalizers)
//	Point()        the single object "x"
//
// Constructors are combined with Build, which applies them to one graph in
// order and returns fincat.FreeCat of the result:
//
//	J, err := shapes.Build("J", nil, shapes.Path(3))
//
// Object and generator names are configurable with WithIDScheme,
// WithEdgeScheme and WithCenterID. Same inputs always yield the same category.
package shapes
