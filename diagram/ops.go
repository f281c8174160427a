// SPDX-License-Identifier: MIT

package diagram

import (
	"fmt"

	"github.com/katalvlaran/lvcat/fincat"
)

// Dom returns the source diagram of f.
//
//	id: domain of ϕ    op: the cached diagram    co: codomain of ϕ
func Dom[K Variance, Ob, Hom comparable](f DiagramHom[K, Ob, Hom]) Diagram[K, Ob, Hom] {
	return New[K](f.hom.dom(KindOf[K]()))
}

// Codom returns the target diagram of f.
//
//	id: the cached diagram    op: codomain of ϕ    co: the cached diagram
func Codom[K Variance, Ob, Hom comparable](f DiagramHom[K, Ob, Hom]) Diagram[K, Ob, Hom] {
	return New[K](f.hom.codom(KindOf[K]()))
}

// Id returns the identity morphism on d: the identity functor on its shape,
// the identity transformation on its functor, and d itself as the cache.
// The representation is the same for every kind.
func Id[K Variance, Ob, Hom comparable](d Diagram[K, Ob, Hom]) DiagramHom[K, Ob, Hom] {
	return DiagramHom[K, Ob, Hom]{hom: identity(d.functor)}
}

// Compose returns f;g (f first). Mixing kinds does not type-check.
//
// Errors from the collaborator (typically fincat.ErrFunctorMismatch or
// fincat.ErrTransformationMismatch when codom(f) is not dom(g)) are returned
// wrapped.
func Compose[K Variance, Ob, Hom comparable](f, g DiagramHom[K, Ob, Hom]) (DiagramHom[K, Ob, Hom], error) {
	kind := KindOf[K]()
	h, err := compose(kind, f.hom, g.hom)
	if err != nil {
		return DiagramHom[K, Ob, Hom]{}, fmt.Errorf("diagram: Compose{%s}: %w", kind, err)
	}

	return DiagramHom[K, Ob, Hom]{hom: h}, nil
}

func (h homData[Ob, Hom]) dom(kind Kind) fincat.FinFunctor[Ob, Hom] {
	switch kind {
	case KindOp:
		return h.precomposed
	case KindCo:
		return h.diagramMap.Codom()
	default:
		return h.diagramMap.Dom()
	}
}

func (h homData[Ob, Hom]) codom(kind Kind) fincat.FinFunctor[Ob, Hom] {
	if kind == KindOp {
		return h.diagramMap.Codom()
	}

	return h.precomposed
}

func identity[Ob, Hom comparable](D fincat.FinFunctor[Ob, Hom]) homData[Ob, Hom] {
	return homData[Ob, Hom]{
		shapeMap:    fincat.IdentityFunctor(D.Dom()),
		diagramMap:  fincat.IdentityTransformation(D),
		precomposed: D,
	}
}

// compose implements the three composition laws:
//
//	id: F = Ff;Fg   ϕ = ϕf ; Ff·ϕg   cache = g's
//	op: F = Fg;Ff   ϕ = Fg·ϕf ; ϕg   cache = f's
//	co: F = Ff;Fg   ϕ = Ff·ϕg ; ϕf   cache = g's
//
// where F·α is whiskering and ";" on transformations is vertical composition.
func compose[Ob, Hom comparable](kind Kind, f, g homData[Ob, Hom]) (homData[Ob, Hom], error) {
	var zero homData[Ob, Hom]

	first, second := f.shapeMap, g.shapeMap
	if kind == KindOp {
		first, second = g.shapeMap, f.shapeMap
	}
	F, err := fincat.ComposeFunctors(first, second)
	if err != nil {
		return zero, err
	}

	var phi fincat.FinTransformation[Ob, Hom]
	switch kind {
	case KindOp:
		w, werr := fincat.Whisker(g.shapeMap, f.diagramMap)
		if werr != nil {
			return zero, werr
		}
		phi, err = fincat.ComposeTransformations(w, g.diagramMap)
	case KindCo:
		w, werr := fincat.Whisker(f.shapeMap, g.diagramMap)
		if werr != nil {
			return zero, werr
		}
		phi, err = fincat.ComposeTransformations(w, f.diagramMap)
	default:
		w, werr := fincat.Whisker(f.shapeMap, g.diagramMap)
		if werr != nil {
			return zero, werr
		}
		phi, err = fincat.ComposeTransformations(f.diagramMap, w)
	}
	if err != nil {
		return zero, err
	}

	cached := g.precomposed
	if kind == KindOp {
		cached = f.precomposed
	}

	return homData[Ob, Hom]{shapeMap: F, diagramMap: phi, precomposed: cached}, nil
}
