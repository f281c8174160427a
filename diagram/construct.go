// SPDX-License-Identifier: MIT

package diagram

import (
	"fmt"

	"github.com/katalvlaran/lvcat/fincat"
)

// ObEntry is the image of one shape object under a morphism of diagrams:
// the target shape object and, optionally, the component morphism.
type ObEntry[Hom comparable] struct {
	Ob       string
	Hom      Hom
	Explicit bool // Hom was given; otherwise the component is an identity
}

// To maps a shape object to ob with an identity component.
func To[Hom comparable](ob string) ObEntry[Hom] {
	return ObEntry[Hom]{Ob: ob}
}

// Via maps a shape object to ob with component h.
func Via[Hom comparable](ob string, h Hom) ObEntry[Hom] {
	return ObEntry[Hom]{Ob: ob, Hom: h, Explicit: true}
}

// FromObMaps builds a morphism d → d2 of kind K from per-object data.
//
// obMaps is keyed by the objects of the shape functor's domain and homMap
// (may be nil) gives generator images; a missing generator image is inferred
// when the target hom-set has one element.
//
//	kind | F        | ϕ          | keys of obMaps | default ϕ_x
//	id   | J → J′   | D ⇒ F;D′   | J              | id of D′(F x)
//	op   | J′ → J   | F;D ⇒ D′   | J′             | id of D′(x)
//	co   | J → J′   | F;D′ ⇒ D   | J              | id of D(x)
//
// Errors from fincat (missing images, non-natural components, ...) are
// returned wrapped.
func FromObMaps[K Variance, Ob, Hom comparable](obMaps map[string]ObEntry[Hom], homMap map[string]string, d, d2 Diagram[K, Ob, Hom]) (DiagramHom[K, Ob, Hom], error) {
	kind := KindOf[K]()
	h, err := fromObMaps(kind, obMaps, homMap, d.functor, d2.functor)
	if err != nil {
		return DiagramHom[K, Ob, Hom]{}, fmt.Errorf("diagram: FromObMaps{%s}: %w", kind, err)
	}

	return DiagramHom[K, Ob, Hom]{hom: h}, nil
}

func fromObMaps[Ob, Hom comparable](kind Kind, obMaps map[string]ObEntry[Hom], homMap map[string]string, D, D2 fincat.FinFunctor[Ob, Hom]) (homData[Ob, Hom], error) {
	var zero homData[Ob, Hom]

	obs := make(map[string]string, len(obMaps))
	for x, e := range obMaps {
		obs[x] = e.Ob
	}

	// src/tgt are the domain and codomain of F; defaults name the functor
	// whose image gives the identity component.
	src, tgt, defaults := D, D2, D2
	switch kind {
	case KindOp:
		src, tgt = D2, D
	case KindCo:
		defaults = D
	}
	F, err := fincat.NewShapeFunctor(src.Dom(), tgt.Dom(), obs, homMap)
	if err != nil {
		return zero, err
	}
	FT, err := fincat.ComposeFunctors(F, tgt)
	if err != nil {
		return zero, err
	}

	C := D.Codom()
	comps := make(map[string]Hom, len(obMaps))
	for x, e := range obMaps {
		if e.Explicit {
			comps[x] = e.Hom
			continue
		}
		key := x
		if kind == KindID {
			key = e.Ob
		}
		y, err := defaults.ObMap(key)
		if err != nil {
			return zero, err
		}
		comps[x] = C.Id(y)
	}

	var phi fincat.FinTransformation[Ob, Hom]
	switch kind {
	case KindOp:
		phi, err = fincat.NewTransformation(FT, D2, comps)
	case KindCo:
		phi, err = fincat.NewTransformation(FT, D, comps)
	default:
		phi, err = fincat.NewTransformation(D, FT, comps)
	}
	if err != nil {
		return zero, err
	}

	cached := D2
	if kind == KindOp {
		cached = D
	}

	return homData[Ob, Hom]{shapeMap: F, diagramMap: phi, precomposed: cached}, nil
}
