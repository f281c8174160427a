// SPDX-License-Identifier: MIT
// Package fincat: sentinel error set.
// Every message is prefixed with "fincat: ". Context is attached with
// fmt.Errorf("...: %w", ErrX); callers branch with errors.Is.

package fincat

import "errors"

var (
	// ErrNilCategory indicates that a nil *FinCat or nil codomain category was supplied.
	ErrNilCategory = errors.New("fincat: category is nil")

	// ErrUncomparableCategory indicates a codomain category value that cannot
	// be compared with ==, which functor equality needs.
	ErrUncomparableCategory = errors.New("fincat: codomain category is not comparable")

	// ErrEmptyName indicates an empty object or morphism name.
	ErrEmptyName = errors.New("fincat: empty name")

	// ErrReservedName indicates a morphism name that collides with generated
	// names: the "id_" identity prefix, or ";" in FreeCat generators.
	ErrReservedName = errors.New("fincat: reserved name")

	// ErrDuplicateObject indicates an object was added twice.
	ErrDuplicateObject = errors.New("fincat: duplicate object")

	// ErrDuplicateHom indicates a morphism name was added twice.
	ErrDuplicateHom = errors.New("fincat: duplicate morphism")

	// ErrUnknownObject indicates a reference to an object not in the category.
	ErrUnknownObject = errors.New("fincat: unknown object")

	// ErrUnknownHom indicates a reference to a morphism not in the category.
	ErrUnknownHom = errors.New("fincat: unknown morphism")

	// ErrNotComposable indicates codom(f) != dom(g) for a requested f;g,
	// or a composite whose endpoints disagree with f and g.
	ErrNotComposable = errors.New("fincat: morphisms not composable")

	// ErrConflictingComposite indicates f;g was given two different values.
	ErrConflictingComposite = errors.New("fincat: conflicting composite")

	// ErrIncompleteTable indicates a composable pair without a composite.
	ErrIncompleteTable = errors.New("fincat: composition table incomplete")

	// ErrNotAssociative indicates (f;g);h != f;(g;h) in the composition table.
	ErrNotAssociative = errors.New("fincat: composition not associative")

	// ErrMissingObImage indicates a functor object map that omits an object.
	ErrMissingObImage = errors.New("fincat: missing object image")

	// ErrMissingHomImage indicates a functor morphism map that omits a generator
	// whose image cannot be inferred.
	ErrMissingHomImage = errors.New("fincat: missing morphism image")

	// ErrNotFunctorial indicates a functor that does not respect typing or composition.
	ErrNotFunctorial = errors.New("fincat: mapping is not functorial")

	// ErrFunctorMismatch indicates functors whose domains/codomains do not line up.
	ErrFunctorMismatch = errors.New("fincat: functor domain/codomain mismatch")

	// ErrMissingComponent indicates a transformation without a component at some object.
	ErrMissingComponent = errors.New("fincat: missing component")

	// ErrNotNatural indicates a component of the wrong type or a failed naturality square.
	ErrNotNatural = errors.New("fincat: transformation is not natural")

	// ErrTransformationMismatch indicates vertical composition α;β with codom(α) != dom(β).
	ErrTransformationMismatch = errors.New("fincat: transformations not composable")
)
