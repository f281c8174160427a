// SPDX-License-Identifier: MIT

package category

import "fmt"

// Category is a category with objects of type Ob and morphisms of type Hom.
//
// Compose(f, g) is diagrammatic composition f;g. Implementations return an
// error when they can detect that f and g are not composable; they are not
// required to detect it.
type Category[Ob, Hom any] interface {
	Dom(f Hom) Ob
	Codom(f Hom) Ob
	Id(x Ob) Hom
	Compose(f, g Hom) (Hom, error)
}

// Checkable is a Category whose objects and morphisms can be compared.
type Checkable[Ob, Hom any] interface {
	Category[Ob, Hom]
	EqualOb(x, y Ob) bool
	EqualHom(f, g Hom) bool
}

// Sequence composes fs left to right: ((f1;f2);f3);...
//
// Errors:
//   - ErrNilCategory if c is nil.
//   - ErrEmptySequence if fs is empty.
//   - the first composition error, wrapped with its position.
func Sequence[Ob, Hom any](c Category[Ob, Hom], fs ...Hom) (Hom, error) {
	var zero Hom
	if c == nil {
		return zero, ErrNilCategory
	}
	if len(fs) == 0 {
		return zero, ErrEmptySequence
	}

	acc := fs[0]
	for i := 1; i < len(fs); i++ {
		next, err := c.Compose(acc, fs[i])
		if err != nil {
			return zero, fmt.Errorf("category: Sequence at %d: %w", i, err)
		}
		acc = next
	}

	return acc, nil
}
