// SPDX-License-Identifier: MIT

package diagram

import "fmt"

// AnyDiagram is a diagram whose kind is only known at run time. Use it where
// values of several kinds share one container; the typed API is preferred
// everywhere else.
type AnyDiagram[Ob, Hom comparable] struct {
	kind Kind
	d    Diagram[ID, Ob, Hom]
}

// AnyHom is a morphism of diagrams whose kind is only known at run time.
type AnyHom[Ob, Hom comparable] struct {
	kind Kind
	hom  homData[Ob, Hom]
}

// Erase forgets the static kind of d.
func Erase[K Variance, Ob, Hom comparable](d Diagram[K, Ob, Hom]) AnyDiagram[Ob, Hom] {
	return AnyDiagram[Ob, Hom]{kind: KindOf[K](), d: Diagram[ID, Ob, Hom]{functor: d.functor}}
}

// EraseHom forgets the static kind of f.
func EraseHom[K Variance, Ob, Hom comparable](f DiagramHom[K, Ob, Hom]) AnyHom[Ob, Hom] {
	return AnyHom[Ob, Hom]{kind: KindOf[K](), hom: f.hom}
}

// Narrow recovers a typed diagram.
//
// Errors:
//   - ErrKindMismatch if d is not of kind K.
func Narrow[K Variance, Ob, Hom comparable](d AnyDiagram[Ob, Hom]) (Diagram[K, Ob, Hom], error) {
	if want := KindOf[K](); d.kind != want {
		return Diagram[K, Ob, Hom]{}, fmt.Errorf("diagram: Narrow to %s, have %s: %w", want, d.kind, ErrKindMismatch)
	}

	return Diagram[K, Ob, Hom]{functor: d.d.functor}, nil
}

// NarrowHom recovers a typed morphism.
//
// Errors:
//   - ErrKindMismatch if f is not of kind K.
func NarrowHom[K Variance, Ob, Hom comparable](f AnyHom[Ob, Hom]) (DiagramHom[K, Ob, Hom], error) {
	if want := KindOf[K](); f.kind != want {
		return DiagramHom[K, Ob, Hom]{}, fmt.Errorf("diagram: NarrowHom to %s, have %s: %w", want, f.kind, ErrKindMismatch)
	}

	return DiagramHom[K, Ob, Hom]{hom: f.hom}, nil
}

// Kind returns the run-time kind of d.
func (d AnyDiagram[Ob, Hom]) Kind() Kind { return d.kind }

// Equal reports same kind and equal functors.
func (d AnyDiagram[Ob, Hom]) Equal(e AnyDiagram[Ob, Hom]) bool {
	return d.kind == e.kind && d.d.Equal(e.d)
}

func (d AnyDiagram[Ob, Hom]) String() string {
	return fmt.Sprintf("Diagram{%s}(%v)", d.kind, d.d.functor)
}

// Kind returns the run-time kind of f.
func (f AnyHom[Ob, Hom]) Kind() Kind { return f.kind }

// Equal reports same kind and equal fields.
func (f AnyHom[Ob, Hom]) Equal(g AnyHom[Ob, Hom]) bool {
	return f.kind == g.kind && f.hom.equal(g.hom)
}

func (f AnyHom[Ob, Hom]) String() string {
	return fmt.Sprintf("DiagramHom{%s}(%v, %v)", f.kind, f.hom.shapeMap, f.hom.diagramMap)
}

// DomAny returns the source diagram of f, of the same kind.
func DomAny[Ob, Hom comparable](f AnyHom[Ob, Hom]) AnyDiagram[Ob, Hom] {
	return AnyDiagram[Ob, Hom]{kind: f.kind, d: Diagram[ID, Ob, Hom]{functor: f.hom.dom(f.kind)}}
}

// CodomAny returns the target diagram of f, of the same kind.
func CodomAny[Ob, Hom comparable](f AnyHom[Ob, Hom]) AnyDiagram[Ob, Hom] {
	return AnyDiagram[Ob, Hom]{kind: f.kind, d: Diagram[ID, Ob, Hom]{functor: f.hom.codom(f.kind)}}
}

// IdAny returns the identity on d, of the same kind.
func IdAny[Ob, Hom comparable](d AnyDiagram[Ob, Hom]) AnyHom[Ob, Hom] {
	return AnyHom[Ob, Hom]{kind: d.kind, hom: identity(d.d.functor)}
}

// ComposeAny returns f;g after checking the kinds at run time.
//
// Errors:
//   - *InvalidCompositionError (matching ErrInvalidComposition) if the
//     kinds differ.
//   - collaborator errors as for Compose.
func ComposeAny[Ob, Hom comparable](f, g AnyHom[Ob, Hom]) (AnyHom[Ob, Hom], error) {
	if f.kind != g.kind {
		return AnyHom[Ob, Hom]{}, &InvalidCompositionError{Left: f.kind, Right: g.kind}
	}
	h, err := compose(f.kind, f.hom, g.hom)
	if err != nil {
		return AnyHom[Ob, Hom]{}, fmt.Errorf("diagram: Compose{%s}: %w", f.kind, err)
	}

	return AnyHom[Ob, Hom]{kind: f.kind, hom: h}, nil
}

// DualAny swaps op and co.
//
// Errors:
//   - *UnsupportedOperationError (matching ErrUnsupportedOperation) for id.
func DualAny[Ob, Hom comparable](d AnyDiagram[Ob, Hom]) (AnyDiagram[Ob, Hom], error) {
	k, err := dualKind(d.kind)
	if err != nil {
		return AnyDiagram[Ob, Hom]{}, err
	}
	d.kind = k

	return d, nil
}

// DualAnyHom swaps op and co on a morphism.
//
// Errors:
//   - *UnsupportedOperationError (matching ErrUnsupportedOperation) for id.
func DualAnyHom[Ob, Hom comparable](f AnyHom[Ob, Hom]) (AnyHom[Ob, Hom], error) {
	k, err := dualKind(f.kind)
	if err != nil {
		return AnyHom[Ob, Hom]{}, err
	}
	f.kind = k

	return f, nil
}

func dualKind(k Kind) (Kind, error) {
	switch k {
	case KindOp:
		return KindCo, nil
	case KindCo:
		return KindOp, nil
	default:
		return k, &UnsupportedOperationError{Op: "dual", Kind: k}
	}
}
