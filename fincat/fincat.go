// SPDX-License-Identifier: MIT

package fincat

import (
	"fmt"
	"slices"
	"strings"
)

// identityPrefix names identity morphisms: the identity on x is "id_x".
const identityPrefix = "id_"

// IdName returns the name of the identity morphism on object x.
func IdName(x string) string { return identityPrefix + x }

// homInfo is the typing and generator factorization of one morphism.
type homInfo struct {
	dom, codom string
	identity   bool
	word       []string // generator factorization; empty for identities
}

// composite is one entry f;g = h of the composition table.
type composite struct {
	f, g, h string
}

// FinCat is a finite category with string objects and string morphisms.
//
// Every object x carries an identity named IdName(x). All other morphisms
// and their composites are fixed at Build time; a FinCat is immutable and safe
// for concurrent use.
type FinCat struct {
	name  string
	obs   []string             // sorted objects
	obSet map[string]bool      // object membership
	homs  map[string]homInfo   // every morphism, identities included
	names []string             // sorted morphism names, identities included
	gens  []string             // sorted generators
	comp  map[[2]string]string // non-identity composable pairs -> composite
	table []composite          // comp in sorted order
}

// Name returns the category's display name.
func (c *FinCat) Name() string { return c.name }

// String implements fmt.Stringer.
func (c *FinCat) String() string {
	return fmt.Sprintf("%s(%d obs, %d homs)", c.name, len(c.obs), len(c.names))
}

// Obs returns the objects in ascending order.
func (c *FinCat) Obs() []string { return slices.Clone(c.obs) }

// Homs returns every morphism name, identities included, in ascending order.
func (c *FinCat) Homs() []string { return slices.Clone(c.names) }

// Generators returns the generating morphisms in ascending order.
func (c *FinCat) Generators() []string { return slices.Clone(c.gens) }

// HasOb reports whether x is an object.
func (c *FinCat) HasOb(x string) bool { return c.obSet[x] }

// HasHom reports whether f is a morphism.
func (c *FinCat) HasHom(f string) bool {
	_, ok := c.homs[f]
	return ok
}

// IsIdentity reports whether f is an identity morphism.
func (c *FinCat) IsIdentity(f string) bool { return c.homs[f].identity }

// Dom returns the domain of f, or "" if f is unknown.
func (c *FinCat) Dom(f string) string { return c.homs[f].dom }

// Codom returns the codomain of f, or "" if f is unknown.
func (c *FinCat) Codom(f string) string { return c.homs[f].codom }

// Id returns the identity on x. It does not check that x is an object.
func (c *FinCat) Id(x string) string { return IdName(x) }

// Compose returns f;g.
//
// Errors:
//   - ErrUnknownHom if f or g is not a morphism.
//   - ErrNotComposable if codom(f) != dom(g).
func (c *FinCat) Compose(f, g string) (string, error) {
	fi, ok := c.homs[f]
	if !ok {
		return "", fmt.Errorf("fincat: %s: Compose(%q, %q): %w", c.name, f, g, ErrUnknownHom)
	}
	gi, ok := c.homs[g]
	if !ok {
		return "", fmt.Errorf("fincat: %s: Compose(%q, %q): %w", c.name, f, g, ErrUnknownHom)
	}
	if fi.codom != gi.dom {
		return "", fmt.Errorf("fincat: %s: Compose(%q, %q): %s != %s: %w", c.name, f, g, fi.codom, gi.dom, ErrNotComposable)
	}
	switch {
	case fi.identity:
		return g, nil
	case gi.identity:
		return f, nil
	}

	return c.comp[[2]string{f, g}], nil
}

// HomSet returns the morphisms x → y in ascending order.
func (c *FinCat) HomSet(x, y string) []string {
	var res []string
	for _, f := range c.names {
		if info := c.homs[f]; info.dom == x && info.codom == y {
			res = append(res, f)
		}
	}

	return res
}

// Word returns the generator factorization of f; identities factor as the empty word.
func (c *FinCat) Word(f string) ([]string, error) {
	info, ok := c.homs[f]
	if !ok {
		return nil, fmt.Errorf("fincat: %s: Word(%q): %w", c.name, f, ErrUnknownHom)
	}

	return slices.Clone(info.word), nil
}

// EqualOb reports x == y.
func (c *FinCat) EqualOb(x, y string) bool { return x == y }

// EqualHom reports f == g. Morphisms are canonical names, so equality is by name.
func (c *FinCat) EqualHom(f, g string) bool { return f == g }

// Describe renders every non-identity morphism as "f: x -> y", one per line.
func (c *FinCat) Describe() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n  obs: %s\n", c.name, strings.Join(c.obs, ", "))
	for _, f := range c.names {
		info := c.homs[f]
		if info.identity {
			continue
		}
		fmt.Fprintf(&sb, "  %s: %s -> %s\n", f, info.dom, info.codom)
	}

	return sb.String()
}
