// SPDX-License-Identifier: MIT

package diagram

import "github.com/katalvlaran/lvcat/category"

// Category is the category of diagrams of kind K into a category with
// objects Ob and morphisms Hom. The zero value is ready to use.
type Category[K Variance, Ob, Hom comparable] struct{}

var (
	_ category.Checkable[Diagram[ID, string, string], DiagramHom[ID, string, string]] = Category[ID, string, string]{}
	_ category.Checkable[Diagram[Op, string, string], DiagramHom[Op, string, string]] = Category[Op, string, string]{}
	_ category.Checkable[Diagram[Co, string, string], DiagramHom[Co, string, string]] = Category[Co, string, string]{}
)

// Dom returns the source diagram of f.
func (Category[K, Ob, Hom]) Dom(f DiagramHom[K, Ob, Hom]) Diagram[K, Ob, Hom] { return Dom(f) }

// Codom returns the target diagram of f.
func (Category[K, Ob, Hom]) Codom(f DiagramHom[K, Ob, Hom]) Diagram[K, Ob, Hom] { return Codom(f) }

// Id returns the identity on d.
func (Category[K, Ob, Hom]) Id(d Diagram[K, Ob, Hom]) DiagramHom[K, Ob, Hom] { return Id(d) }

// Compose returns f;g.
func (Category[K, Ob, Hom]) Compose(f, g DiagramHom[K, Ob, Hom]) (DiagramHom[K, Ob, Hom], error) {
	return Compose(f, g)
}

// EqualOb compares diagrams structurally.
func (Category[K, Ob, Hom]) EqualOb(x, y Diagram[K, Ob, Hom]) bool { return x.Equal(y) }

// EqualHom compares morphisms structurally, cache included.
func (Category[K, Ob, Hom]) EqualHom(f, g DiagramHom[K, Ob, Hom]) bool { return f.Equal(g) }
