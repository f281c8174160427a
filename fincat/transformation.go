// SPDX-License-Identifier: MIT

package fincat

import (
	"fmt"
	"maps"
	"slices"
)

// FinTransformation is a natural transformation α: F ⇒ G between functors
// out of the same finite category, given by one component per object.
type FinTransformation[Ob, Hom comparable] struct {
	dom, codom FinFunctor[Ob, Hom]
	comps      map[string]Hom
}

// NewTransformation builds α: F ⇒ G from its components.
//
// Errors:
//   - ErrFunctorMismatch if F and G differ in domain or codomain category.
//   - ErrMissingComponent / ErrUnknownObject for incomplete or extra components.
//   - ErrNotNatural if a component α_x is not F(x) → G(x), or a square
//     F(f);α_y = α_x;G(f) fails for a generator f: x → y.
func NewTransformation[Ob, Hom comparable](F, G FinFunctor[Ob, Hom], comps map[string]Hom) (FinTransformation[Ob, Hom], error) {
	var zero FinTransformation[Ob, Hom]
	if F.dom == nil || F.dom != G.dom || F.codom != G.codom {
		return zero, fmt.Errorf("fincat: NewTransformation: %w", ErrFunctorMismatch)
	}
	J, C := F.dom, F.codom
	for _, x := range slices.Sorted(maps.Keys(comps)) {
		if !J.HasOb(x) {
			return zero, fmt.Errorf("fincat: NewTransformation: component %q: %w", x, ErrUnknownObject)
		}
	}

	alpha := FinTransformation[Ob, Hom]{dom: F, codom: G, comps: make(map[string]Hom, len(J.obs))}
	for _, x := range J.obs {
		c, ok := comps[x]
		if !ok {
			return zero, fmt.Errorf("fincat: NewTransformation: object %q: %w", x, ErrMissingComponent)
		}
		if C.Dom(c) != F.obs[x] || C.Codom(c) != G.obs[x] {
			return zero, fmt.Errorf("fincat: NewTransformation: component %v at %q is not %v -> %v: %w",
				c, x, F.obs[x], G.obs[x], ErrNotNatural)
		}
		alpha.comps[x] = c
	}
	for _, f := range J.gens {
		x, y := J.Dom(f), J.Codom(f)
		left, err := C.Compose(F.homs[f], alpha.comps[y])
		if err != nil {
			return zero, fmt.Errorf("fincat: NewTransformation: square at %q: %w", f, err)
		}
		right, err := C.Compose(alpha.comps[x], G.homs[f])
		if err != nil {
			return zero, fmt.Errorf("fincat: NewTransformation: square at %q: %w", f, err)
		}
		if left != right {
			return zero, fmt.Errorf("fincat: NewTransformation: square at %q: %v != %v: %w", f, left, right, ErrNotNatural)
		}
	}

	return alpha, nil
}

// IdentityTransformation returns the identity F ⇒ F.
func IdentityTransformation[Ob, Hom comparable](F FinFunctor[Ob, Hom]) FinTransformation[Ob, Hom] {
	alpha := FinTransformation[Ob, Hom]{dom: F, codom: F, comps: make(map[string]Hom, len(F.obs))}
	for x, y := range F.obs {
		alpha.comps[x] = F.codom.Id(y)
	}

	return alpha
}

// ComposeTransformations returns the vertical composite α;β: F ⇒ H with
// components α_x;β_x.
//
// Errors:
//   - ErrTransformationMismatch unless codom(α) equals dom(β).
//   - any composition error from the codomain category, wrapped.
func ComposeTransformations[Ob, Hom comparable](alpha, beta FinTransformation[Ob, Hom]) (FinTransformation[Ob, Hom], error) {
	if !alpha.codom.Equal(beta.dom) {
		return FinTransformation[Ob, Hom]{}, fmt.Errorf("fincat: ComposeTransformations: %v is not %v: %w",
			alpha.codom, beta.dom, ErrTransformationMismatch)
	}
	C := alpha.dom.codom
	res := FinTransformation[Ob, Hom]{dom: alpha.dom, codom: beta.codom, comps: make(map[string]Hom, len(alpha.comps))}
	for _, x := range slices.Sorted(maps.Keys(alpha.comps)) {
		c, err := C.Compose(alpha.comps[x], beta.comps[x])
		if err != nil {
			return FinTransformation[Ob, Hom]{}, fmt.Errorf("fincat: ComposeTransformations at %q: %w", x, err)
		}
		res.comps[x] = c
	}

	return res, nil
}

// Whisker precomposes α: G ⇒ H with the functor F, giving F;α: F;G ⇒ F;H
// with components (F;α)_x = α_{F(x)}.
//
// Errors:
//   - ErrFunctorMismatch unless the codomain of F is the domain of α.
func Whisker[Ob, Hom comparable](F FinFunctor[string, string], alpha FinTransformation[Ob, Hom]) (FinTransformation[Ob, Hom], error) {
	var zero FinTransformation[Ob, Hom]
	dom, err := ComposeFunctors(F, alpha.dom)
	if err != nil {
		return zero, fmt.Errorf("fincat: Whisker: %w", err)
	}
	codom, err := ComposeFunctors(F, alpha.codom)
	if err != nil {
		return zero, fmt.Errorf("fincat: Whisker: %w", err)
	}

	res := FinTransformation[Ob, Hom]{dom: dom, codom: codom, comps: make(map[string]Hom, len(F.obs))}
	for x, y := range F.obs {
		res.comps[x] = alpha.comps[y]
	}

	return res, nil
}

// Dom returns the source functor.
func (a FinTransformation[Ob, Hom]) Dom() FinFunctor[Ob, Hom] { return a.dom }

// Codom returns the target functor.
func (a FinTransformation[Ob, Hom]) Codom() FinFunctor[Ob, Hom] { return a.codom }

// Component returns α_x.
func (a FinTransformation[Ob, Hom]) Component(x string) (Hom, error) {
	c, ok := a.comps[x]
	if !ok {
		return c, fmt.Errorf("fincat: Component(%q): %w", x, ErrUnknownObject)
	}

	return c, nil
}

// Equal reports equal source, target and components.
func (a FinTransformation[Ob, Hom]) Equal(b FinTransformation[Ob, Hom]) bool {
	return a.dom.Equal(b.dom) && a.codom.Equal(b.codom) && maps.Equal(a.comps, b.comps)
}

// String renders the components, e.g. "{x: g, y: id_B}".
func (a FinTransformation[Ob, Hom]) String() string {
	s := "{"
	for i, x := range slices.Sorted(maps.Keys(a.comps)) {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%s: %v", x, a.comps[x])
	}

	return s + "}"
}
