// SPDX-License-Identifier: MIT

package diagram

import (
	"fmt"

	"github.com/katalvlaran/lvcat/fincat"
)

// homData is the representation shared by all three kinds. What the fields
// mean depends on the kind:
//
//	kind | shapeMap F | diagramMap ϕ  | precomposed
//	id   | J → J′     | D ⇒ F;D′      | D′
//	op   | J′ → J     | F;D ⇒ D′      | D
//	co   | J → J′     | F;D′ ⇒ D      | D′
type homData[Ob, Hom comparable] struct {
	shapeMap    fincat.FinFunctor[string, string]
	diagramMap  fincat.FinTransformation[Ob, Hom]
	precomposed fincat.FinFunctor[Ob, Hom]
}

func (h homData[Ob, Hom]) equal(o homData[Ob, Hom]) bool {
	return h.shapeMap.Equal(o.shapeMap) &&
		h.diagramMap.Equal(o.diagramMap) &&
		h.precomposed.Equal(o.precomposed)
}

// DiagramHom is a morphism of diagrams of kind K: a shape functor, a natural
// transformation, and the endpoint diagram that the transformation does not
// mention directly (cached so Dom/Codom never recompute a composite functor).
//
// The three fields must satisfy the equations of the kind; nothing checks
// this after construction.
type DiagramHom[K Variance, Ob, Hom comparable] struct {
	hom homData[Ob, Hom]
}

// NewHom assembles a morphism directly from its fields.
func NewHom[K Variance, Ob, Hom comparable](shapeMap fincat.FinFunctor[string, string], diagramMap fincat.FinTransformation[Ob, Hom], precomposed fincat.FinFunctor[Ob, Hom]) DiagramHom[K, Ob, Hom] {
	return DiagramHom[K, Ob, Hom]{hom: homData[Ob, Hom]{
		shapeMap:    shapeMap,
		diagramMap:  diagramMap,
		precomposed: precomposed,
	}}
}

// ShapeMap returns the shape functor F.
func (f DiagramHom[K, Ob, Hom]) ShapeMap() fincat.FinFunctor[string, string] { return f.hom.shapeMap }

// DiagramMap returns the natural transformation ϕ.
func (f DiagramHom[K, Ob, Hom]) DiagramMap() fincat.FinTransformation[Ob, Hom] {
	return f.hom.diagramMap
}

// PrecomposedDiagram returns the cached endpoint functor.
func (f DiagramHom[K, Ob, Hom]) PrecomposedDiagram() fincat.FinFunctor[Ob, Hom] {
	return f.hom.precomposed
}

// Kind returns the variance of f.
func (f DiagramHom[K, Ob, Hom]) Kind() Kind { return KindOf[K]() }

// ObMap returns F(x) and the component ϕ_x. x ranges over the domain of the
// shape functor: J for id and co, J′ for op.
func (f DiagramHom[K, Ob, Hom]) ObMap(x string) (string, Hom, error) {
	var zero Hom
	y, err := f.hom.shapeMap.ObMap(x)
	if err != nil {
		return "", zero, err
	}
	c, err := f.hom.diagramMap.Component(x)
	if err != nil {
		return "", zero, err
	}

	return y, c, nil
}

// HomMap returns F(g) for a morphism g of the shape functor's domain.
func (f DiagramHom[K, Ob, Hom]) HomMap(g string) (string, error) {
	return f.hom.shapeMap.HomMap(g)
}

// Equal reports equal shape maps, diagram maps and cached diagrams. Two
// morphisms that differ only in the cache are different morphisms.
func (f DiagramHom[K, Ob, Hom]) Equal(g DiagramHom[K, Ob, Hom]) bool {
	return f.hom.equal(g.hom)
}

func (f DiagramHom[K, Ob, Hom]) String() string {
	return fmt.Sprintf("DiagramHom{%s}(%v, %v)", f.Kind(), f.hom.shapeMap, f.hom.diagramMap)
}
