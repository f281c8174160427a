// SPDX-License-Identifier: MIT

package fincat

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Builder assembles a FinCat from objects, morphisms and a composition table.
//
// Composites involving an identity are implicit; every other composable pair
// f;g must be given with SetComposite before Build.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	name string
	obs  map[string]bool
	homs map[string]homInfo
	comp map[[2]string]string
}

// NewBuilder starts an empty category called name.
func NewBuilder(name string) *Builder {
	return &Builder{
		name: name,
		obs:  make(map[string]bool),
		homs: make(map[string]homInfo),
		comp: make(map[[2]string]string),
	}
}

// AddOb adds objects.
//
// Errors:
//   - ErrEmptyName, ErrDuplicateObject.
func (b *Builder) AddOb(xs ...string) error {
	for _, x := range xs {
		if x == "" {
			return fmt.Errorf("fincat: AddOb: %w", ErrEmptyName)
		}
		if b.obs[x] {
			return fmt.Errorf("fincat: AddOb(%q): %w", x, ErrDuplicateObject)
		}
		b.obs[x] = true
	}

	return nil
}

// AddHom adds a non-identity morphism f: dom → codom.
//
// Errors:
//   - ErrEmptyName, ErrReservedName ("id_" prefix), ErrDuplicateHom.
//   - ErrUnknownObject if dom or codom was not added.
func (b *Builder) AddHom(f, dom, codom string) error {
	switch {
	case f == "":
		return fmt.Errorf("fincat: AddHom: %w", ErrEmptyName)
	case strings.HasPrefix(f, identityPrefix):
		return fmt.Errorf("fincat: AddHom(%q): %w", f, ErrReservedName)
	}
	if _, dup := b.homs[f]; dup {
		return fmt.Errorf("fincat: AddHom(%q): %w", f, ErrDuplicateHom)
	}
	for _, x := range []string{dom, codom} {
		if !b.obs[x] {
			return fmt.Errorf("fincat: AddHom(%q): object %q: %w", f, x, ErrUnknownObject)
		}
	}
	b.homs[f] = homInfo{dom: dom, codom: codom}

	return nil
}

// SetComposite records f;g = h. f and g must be non-identity morphisms;
// h may be an identity (for sections and retractions).
//
// Errors:
//   - ErrUnknownHom if f, g or h is unknown.
//   - ErrNotComposable if the endpoints do not line up.
//   - ErrConflictingComposite if f;g was already set to a different h.
func (b *Builder) SetComposite(f, g, h string) error {
	fi, okF := b.homs[f]
	gi, okG := b.homs[g]
	hi, okH := b.lookup(h)
	if !okF || !okG || !okH {
		return fmt.Errorf("fincat: SetComposite(%q, %q, %q): %w", f, g, h, ErrUnknownHom)
	}
	if fi.codom != gi.dom || hi.dom != fi.dom || hi.codom != gi.codom {
		return fmt.Errorf("fincat: SetComposite(%q, %q, %q): %w", f, g, h, ErrNotComposable)
	}
	key := [2]string{f, g}
	if prev, ok := b.comp[key]; ok && prev != h {
		return fmt.Errorf("fincat: SetComposite(%q, %q): %q vs %q: %w", f, g, prev, h, ErrConflictingComposite)
	}
	b.comp[key] = h

	return nil
}

// lookup resolves a morphism name, identities included.
func (b *Builder) lookup(f string) (homInfo, bool) {
	if info, ok := b.homs[f]; ok {
		return info, true
	}
	if x, ok := strings.CutPrefix(f, identityPrefix); ok && b.obs[x] {
		return homInfo{dom: x, codom: x, identity: true}, true
	}

	return homInfo{}, false
}

// Build validates the table and returns the category.
//
// Steps:
//  1. Every composable pair of non-identity morphisms has a composite (ErrIncompleteTable).
//  2. Every composable triple associates (ErrNotAssociative).
//  3. Generators are the morphisms that are not a composite of two other
//     morphisms; every other morphism gets a word over them. Morphisms
//     reachable only through cycles of composites are promoted to generators.
//
// Complexity: O(H³) for the associativity sweep, H = non-identity morphisms.
func (b *Builder) Build() (*FinCat, error) {
	c := &FinCat{
		name:  b.name,
		obs:   slices.Sorted(maps.Keys(b.obs)),
		obSet: maps.Clone(b.obs),
		homs:  make(map[string]homInfo, len(b.homs)+len(b.obs)),
		comp:  maps.Clone(b.comp),
	}
	for _, x := range c.obs {
		c.homs[IdName(x)] = homInfo{dom: x, codom: x, identity: true}
	}
	for f, info := range b.homs {
		c.homs[f] = info
	}
	c.names = slices.Sorted(maps.Keys(c.homs))
	plain := slices.Sorted(maps.Keys(b.homs))

	// 1. Completeness.
	for _, f := range plain {
		for _, g := range plain {
			if b.homs[f].codom != b.homs[g].dom {
				continue
			}
			h, ok := c.comp[[2]string{f, g}]
			if !ok {
				return nil, fmt.Errorf("fincat: %s: %s;%s: %w", b.name, f, g, ErrIncompleteTable)
			}
			c.table = append(c.table, composite{f: f, g: g, h: h})
		}
	}

	// 2. Associativity.
	for _, fg := range c.table {
		for _, h := range plain {
			if c.homs[fg.g].codom != b.homs[h].dom {
				continue
			}
			left, err := c.Compose(fg.h, h)
			if err != nil {
				return nil, err
			}
			gh, err := c.Compose(fg.g, h)
			if err != nil {
				return nil, err
			}
			right, err := c.Compose(fg.f, gh)
			if err != nil {
				return nil, err
			}
			if left != right {
				return nil, fmt.Errorf("fincat: %s: (%s;%s);%s = %s but %s;(%s;%s) = %s: %w",
					b.name, fg.f, fg.g, h, left, fg.f, fg.g, h, right, ErrNotAssociative)
			}
		}
	}

	// 3. Generators and words.
	isComposite := make(map[string]bool, len(c.table))
	for _, e := range c.table {
		if e.f != e.h && e.g != e.h {
			isComposite[e.h] = true
		}
	}
	words := make(map[string][]string, len(plain))
	for _, f := range plain {
		if !isComposite[f] {
			words[f] = []string{f}
			c.gens = append(c.gens, f)
		}
	}
	for len(words) < len(plain) {
		progress := false
		for _, e := range c.table {
			if _, done := words[e.h]; done || c.homs[e.h].identity {
				continue
			}
			wf, okF := words[e.f]
			wg, okG := words[e.g]
			if okF && okG {
				words[e.h] = slices.Concat(wf, wg)
				progress = true
			}
		}
		if progress {
			continue
		}
		for _, f := range plain {
			if _, done := words[f]; !done {
				words[f] = []string{f}
				c.gens = append(c.gens, f)
				break
			}
		}
	}
	slices.Sort(c.gens)
	for f, w := range words {
		info := c.homs[f]
		info.word = w
		c.homs[f] = info
	}

	return c, nil
}
