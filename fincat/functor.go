// SPDX-License-Identifier: MIT

package fincat

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/katalvlaran/lvcat/category"
)

// FinFunctor is a functor out of a finite category into any category.
//
// It stores the image of every object and every morphism (identities
// included), so lookups never recompute. Values are immutable; copies share
// the underlying maps.
//
// Equality compares the codomain categories with ==; NewFunctor rejects a
// codomain whose dynamic value is not comparable.
type FinFunctor[Ob, Hom comparable] struct {
	dom   *FinCat
	codom category.Category[Ob, Hom]
	obs   map[string]Ob
	homs  map[string]Hom
}

// obChecker is implemented by codomains that can decide object membership.
type obChecker[Ob any] interface {
	HasOb(x Ob) bool
}

// NewFunctor builds the functor dom → codom given by obMap on objects and
// homMap on generators. Images of composite morphisms are computed from their
// generator words; an explicit image for a non-generator must agree.
//
// Errors:
//   - ErrNilCategory if dom or codom is nil.
//   - ErrUncomparableCategory if codom cannot be compared with ==.
//   - ErrMissingObImage / ErrMissingHomImage for incomplete maps.
//   - ErrUnknownObject / ErrUnknownHom for keys outside dom, and
//     ErrUnknownObject for an image that is not an object of codom, when
//     codom can tell (it has a HasOb method, as *FinCat does).
//   - ErrNotFunctorial if a generator image has the wrong type or the
//     composition table of dom is not preserved.
//   - any composition error from codom, wrapped.
func NewFunctor[Ob, Hom comparable](dom *FinCat, codom category.Category[Ob, Hom], obMap map[string]Ob, homMap map[string]Hom) (FinFunctor[Ob, Hom], error) {
	var zero FinFunctor[Ob, Hom]
	if dom == nil || codom == nil {
		return zero, ErrNilCategory
	}
	if !reflect.ValueOf(codom).Comparable() {
		return zero, fmt.Errorf("fincat: functor on %s: codomain %T: %w", dom.name, codom, ErrUncomparableCategory)
	}
	for _, x := range slices.Sorted(maps.Keys(obMap)) {
		if !dom.HasOb(x) {
			return zero, fmt.Errorf("fincat: functor on %s: object %q: %w", dom.name, x, ErrUnknownObject)
		}
	}
	for _, f := range slices.Sorted(maps.Keys(homMap)) {
		if !dom.HasHom(f) {
			return zero, fmt.Errorf("fincat: functor on %s: morphism %q: %w", dom.name, f, ErrUnknownHom)
		}
	}

	F := FinFunctor[Ob, Hom]{
		dom:   dom,
		codom: codom,
		obs:   make(map[string]Ob, len(dom.obs)),
		homs:  make(map[string]Hom, len(dom.names)),
	}
	for _, x := range dom.obs {
		y, ok := obMap[x]
		if !ok {
			return zero, fmt.Errorf("fincat: functor on %s: object %q: %w", dom.name, x, ErrMissingObImage)
		}
		if oc, isChecker := codom.(obChecker[Ob]); isChecker && !oc.HasOb(y) {
			return zero, fmt.Errorf("fincat: functor on %s: image %v of %q: %w", dom.name, y, x, ErrUnknownObject)
		}
		F.obs[x] = y
		F.homs[IdName(x)] = codom.Id(y)
	}
	for _, gen := range dom.gens {
		img, ok := homMap[gen]
		if !ok {
			return zero, fmt.Errorf("fincat: functor on %s: generator %q: %w", dom.name, gen, ErrMissingHomImage)
		}
		info := dom.homs[gen]
		if codom.Dom(img) != F.obs[info.dom] || codom.Codom(img) != F.obs[info.codom] {
			return zero, fmt.Errorf("fincat: functor on %s: generator %q: image %v has wrong endpoints: %w",
				dom.name, gen, img, ErrNotFunctorial)
		}
		F.homs[gen] = img
	}
	for _, f := range dom.names {
		if _, done := F.homs[f]; done {
			continue
		}
		img, err := F.imageOfWord(dom.homs[f].word)
		if err != nil {
			return zero, fmt.Errorf("fincat: functor on %s: morphism %q: %w", dom.name, f, err)
		}
		F.homs[f] = img
	}
	for _, f := range slices.Sorted(maps.Keys(homMap)) {
		if F.homs[f] != homMap[f] {
			return zero, fmt.Errorf("fincat: functor on %s: morphism %q: given %v, generators give %v: %w",
				dom.name, f, homMap[f], F.homs[f], ErrNotFunctorial)
		}
	}
	for _, e := range dom.table {
		fg, err := codom.Compose(F.homs[e.f], F.homs[e.g])
		if err != nil {
			return zero, fmt.Errorf("fincat: functor on %s: %s;%s: %w", dom.name, e.f, e.g, err)
		}
		if fg != F.homs[e.h] {
			return zero, fmt.Errorf("fincat: functor on %s: F(%s);F(%s) != F(%s): %w", dom.name, e.f, e.g, e.h, ErrNotFunctorial)
		}
	}

	return F, nil
}

// imageOfWord composes the generator images along a non-empty word.
func (F FinFunctor[Ob, Hom]) imageOfWord(word []string) (Hom, error) {
	acc := F.homs[word[0]]
	for _, gen := range word[1:] {
		next, err := F.codom.Compose(acc, F.homs[gen])
		if err != nil {
			return acc, err
		}
		acc = next
	}

	return acc, nil
}

// NewShapeFunctor builds a functor between finite categories. A generator
// missing from homMap is mapped to the unique morphism between the images of
// its endpoints when that hom-set has exactly one element.
func NewShapeFunctor(dom, codom *FinCat, obMap, homMap map[string]string) (FinFunctor[string, string], error) {
	if dom == nil || codom == nil {
		return FinFunctor[string, string]{}, ErrNilCategory
	}
	filled := maps.Clone(homMap)
	if filled == nil {
		filled = make(map[string]string)
	}
	for _, gen := range dom.gens {
		if _, ok := filled[gen]; ok {
			continue
		}
		x, okX := obMap[dom.Dom(gen)]
		y, okY := obMap[dom.Codom(gen)]
		if !okX || !okY {
			continue
		}
		if set := codom.HomSet(x, y); len(set) == 1 {
			filled[gen] = set[0]
		}
	}

	return NewFunctor[string, string](dom, codom, obMap, filled)
}

// IdentityFunctor returns the identity functor on c.
func IdentityFunctor(c *FinCat) FinFunctor[string, string] {
	F := FinFunctor[string, string]{
		dom:   c,
		codom: c,
		obs:   make(map[string]string, len(c.obs)),
		homs:  make(map[string]string, len(c.names)),
	}
	for _, x := range c.obs {
		F.obs[x] = x
	}
	for _, f := range c.names {
		F.homs[f] = f
	}

	return F
}

// ComposeFunctors returns f;g, the functor x ↦ g(f(x)).
//
// Errors:
//   - ErrFunctorMismatch unless the codomain of f is the domain of g.
func ComposeFunctors[Ob, Hom comparable](f FinFunctor[string, string], g FinFunctor[Ob, Hom]) (FinFunctor[Ob, Hom], error) {
	mid, ok := f.codom.(*FinCat)
	if !ok || mid == nil || mid != g.dom {
		return FinFunctor[Ob, Hom]{}, fmt.Errorf("fincat: ComposeFunctors: codomain %v is not domain %v: %w",
			f.codom, g.dom, ErrFunctorMismatch)
	}

	h := FinFunctor[Ob, Hom]{
		dom:   f.dom,
		codom: g.codom,
		obs:   make(map[string]Ob, len(f.obs)),
		homs:  make(map[string]Hom, len(f.homs)),
	}
	for x, y := range f.obs {
		z, ok := g.obs[y]
		if !ok {
			return FinFunctor[Ob, Hom]{}, fmt.Errorf("fincat: ComposeFunctors: object %q of %s: %w", y, mid.name, ErrFunctorMismatch)
		}
		h.obs[x] = z
	}
	for a, b := range f.homs {
		z, ok := g.homs[b]
		if !ok {
			return FinFunctor[Ob, Hom]{}, fmt.Errorf("fincat: ComposeFunctors: morphism %q of %s: %w", b, mid.name, ErrFunctorMismatch)
		}
		h.homs[a] = z
	}

	return h, nil
}

// Dom returns the domain category.
func (F FinFunctor[Ob, Hom]) Dom() *FinCat { return F.dom }

// Codom returns the codomain category.
func (F FinFunctor[Ob, Hom]) Codom() category.Category[Ob, Hom] { return F.codom }

// ObMap returns the image of object x.
func (F FinFunctor[Ob, Hom]) ObMap(x string) (Ob, error) {
	y, ok := F.obs[x]
	if !ok {
		return y, fmt.Errorf("fincat: ObMap(%q): %w", x, ErrUnknownObject)
	}

	return y, nil
}

// HomMap returns the image of morphism f.
func (F FinFunctor[Ob, Hom]) HomMap(f string) (Hom, error) {
	y, ok := F.homs[f]
	if !ok {
		return y, fmt.Errorf("fincat: HomMap(%q): %w", f, ErrUnknownHom)
	}

	return y, nil
}

// Equal reports whether F and G have the same domain, the same codomain and
// the same images everywhere.
func (F FinFunctor[Ob, Hom]) Equal(G FinFunctor[Ob, Hom]) bool {
	return F.dom == G.dom &&
		F.codom == G.codom &&
		maps.Equal(F.obs, G.obs) &&
		maps.Equal(F.homs, G.homs)
}

// String renders the object map, e.g. "{x↦A, y↦B}".
func (F FinFunctor[Ob, Hom]) String() string {
	parts := make([]string, 0, len(F.obs))
	for _, x := range slices.Sorted(maps.Keys(F.obs)) {
		parts = append(parts, fmt.Sprintf("%s↦%v", x, F.obs[x]))
	}

	return "{" + strings.Join(parts, ", ") + "}"
}
