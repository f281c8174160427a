// SPDX-License-Identifier: MIT

package diagram

import (
	"fmt"

	"github.com/katalvlaran/lvcat/fincat"
)

// Diagram is a functor D: J → C out of a finite shape category J, tagged
// with the variance K that fixes which morphisms it has.
type Diagram[K Variance, Ob, Hom comparable] struct {
	functor fincat.FinFunctor[Ob, Hom]
}

// New wraps F as a diagram of kind K. No validation beyond what FinFunctor
// already guarantees.
func New[K Variance, Ob, Hom comparable](F fincat.FinFunctor[Ob, Hom]) Diagram[K, Ob, Hom] {
	return Diagram[K, Ob, Hom]{functor: F}
}

// FromFunctor wraps F as an id-kind diagram.
func FromFunctor[Ob, Hom comparable](F fincat.FinFunctor[Ob, Hom]) Diagram[ID, Ob, Hom] {
	return New[ID](F)
}

// Retag reinterprets d as kind K2, keeping the same functor. The caller
// asserts the new kind makes sense; nothing is checked.
func Retag[K2, K1 Variance, Ob, Hom comparable](d Diagram[K1, Ob, Hom]) Diagram[K2, Ob, Hom] {
	return Diagram[K2, Ob, Hom]{functor: d.functor}
}

// Functor returns the underlying functor.
func (d Diagram[K, Ob, Hom]) Functor() fincat.FinFunctor[Ob, Hom] { return d.functor }

// Shape returns the indexing category J.
func (d Diagram[K, Ob, Hom]) Shape() *fincat.FinCat { return d.functor.Dom() }

// Kind returns the variance of d.
func (d Diagram[K, Ob, Hom]) Kind() Kind { return KindOf[K]() }

// Equal reports equal underlying functors; the kind is part of the type.
func (d Diagram[K, Ob, Hom]) Equal(e Diagram[K, Ob, Hom]) bool {
	return d.functor.Equal(e.functor)
}

func (d Diagram[K, Ob, Hom]) String() string {
	return fmt.Sprintf("Diagram{%s}(%v)", d.Kind(), d.functor)
}
