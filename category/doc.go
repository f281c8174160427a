// SPDX-License-Identifier: MIT

// Package category defines the generic Category abstraction and algorithms
// written once against it.
//
// A Category[Ob, Hom] supplies Dom, Codom, Id and Compose. Composition is in
// diagrammatic order: Compose(f, g) is "f then g" and requires
// Codom(f) = Dom(g). Any implementation can be passed to:
//
//	Sequence(c, fs...)                  // left fold of Compose
//	ComposeBatch(ctx, c, pairs, opts...) // independent compositions in parallel
//	VerifyLaws(ctx, c, homs, opts...)    // identity and associativity checks
//
// VerifyLaws needs equality on objects and morphisms, so it takes a
// Checkable category (Category plus EqualOb/EqualHom).
//
// Parallel work is bounded with errgroup.SetLimit and honours ctx cancellation;
// results are returned in input order regardless of scheduling.
package category
