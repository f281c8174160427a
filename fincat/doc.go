// SPDX-License-Identifier: MIT

// Package fincat provides finite categories, functors out of them, and natural
// transformations between such functors.
//
// What:
//
//   - FinCat: a finite category with string objects and morphisms. Built either
//     from an explicit composition table (Builder) or as the free category on an
//     acyclic core.Graph (FreeCat). Identities are named "id_<object>".
//   - FinFunctor[Ob, Hom]: a functor from a FinCat into any category.Category,
//     determined by its images on objects and generators (NewFunctor);
//     NewShapeFunctor additionally infers generator images that are forced.
//   - FinTransformation[Ob, Hom]: a natural transformation with one component
//     per object; vertical composition and whiskering by a functor.
//
// Composition is diagrammatic throughout: Compose(f, g), ComposeFunctors(F, G)
// and ComposeTransformations(α, β) all mean "first, then second".
//
// Validation happens at construction: NewFunctor checks functoriality against
// the composition table, NewTransformation checks component types and the
// naturality squares on generators. Derived values (composites, whiskerings,
// identities) are correct by construction and are not re-checked.
//
// Every value is immutable after construction and safe for concurrent reads.
//
// Errors: see errors.go. All are sentinels matched with errors.Is.
package fincat
