// SPDX-License-Identifier: MIT

// Package diagram implements diagrams (functors out of finite shape
// categories) and the three variances of morphism between them.
//
// A Diagram[K, Ob, Hom] wraps a fincat.FinFunctor[Ob, Hom]; K is one of the
// marker types ID, Op, Co and fixes what a morphism is:
//
//	ID: F: J → J′  and  ϕ: D ⇒ F;D′
//	Op: F: J′ → J  and  ϕ: F;D ⇒ D′   (maps between limits)
//	Co: F: J → J′  and  ϕ: F;D′ ⇒ D
//
// A DiagramHom stores F, ϕ and the endpoint diagram that ϕ does not name, so
// Dom and Codom are field reads. Compose implements one law per kind by
// whiskering and vertical composition; Id is uniform. Because the kind is a
// type parameter, composing an ID morphism with an Op morphism does not
// compile.
//
// Op and Co are dual: DualOp/DualCo (and the Hom variants) re-tag the same
// data. ID has no dual.
//
// For containers holding several kinds, Erase gives AnyDiagram / AnyHom,
// whose ComposeAny and DualAny check kinds at run time and fail with
// *InvalidCompositionError or *UnsupportedOperationError.
//
// Category[K, Ob, Hom] packages Dom, Codom, Id and Compose as a
// category.Checkable, so category.VerifyLaws and category.ComposeBatch work
// over diagrams unchanged.
//
// Construction (FromObMaps) validates through fincat: missing images,
// non-functorial shape maps and non-natural components are reported there.
// NewHom and Compose do not re-validate.
package diagram
