// SPDX-License-Identifier: MIT

package scenario

import (
	"context"

	"github.com/katalvlaran/lvcat/category"
	"github.com/katalvlaran/lvcat/core"
	"github.com/katalvlaran/lvcat/diagram"
	"github.com/katalvlaran/lvcat/fincat"
	"github.com/katalvlaran/lvcat/shapes"
)

type (
	entries = map[string]diagram.ObEntry[string]
	obMap   = map[string]string
)

// Target returns the free category A -a-> B -b-> E.
func Target() (*fincat.FinCat, error) {
	g := core.NewGraph()
	if err := g.AddEdge("a", "A", "B"); err != nil {
		return nil, err
	}
	if err := g.AddEdge("b", "B", "E"); err != nil {
		return nil, err
	}

	return fincat.FreeCat("C", g)
}

// StandardShapes returns the shapes checked by the "shapes" scenario, in a
// fixed order.
func StandardShapes() ([]*fincat.FinCat, error) {
	table := []struct {
		name string
		opts []shapes.Option
		cons shapes.Constructor
	}{
		{"Discrete2", nil, shapes.Discrete(2)},
		{"Path3", nil, shapes.Path(3)},
		{"Path4", nil, shapes.Path(4)},
		{"Span", []shapes.Option{shapes.WithIDScheme(shapes.SymbolIDFn)}, shapes.Span()},
		{"Cospan", []shapes.Option{shapes.WithIDScheme(shapes.SymbolIDFn)}, shapes.Cospan()},
		{"Star3", nil, shapes.Star(3)},
		{"ParallelPair", nil, shapes.ParallelPair()},
	}
	out := []*fincat.FinCat{shapes.Point()}
	for _, s := range table {
		c, err := shapes.Build(s.name, s.opts, s.cons)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	return out, nil
}

func runShapes(ctx context.Context, opts []category.Option) (Outcome, error) {
	var out Outcome
	cats, err := StandardShapes()
	if err != nil {
		return out, err
	}
	for _, c := range cats {
		if err := verify[string, string](ctx, &out, c, c.Homs(), opts); err != nil {
			return Outcome{}, err
		}
	}

	return out, nil
}

// pointShape is the one-object shape {ob}.
func pointShape(ob string) (*fincat.FinCat, error) {
	return shapes.Build("{"+ob+"}", []shapes.Option{
		shapes.WithIDScheme(func(int) string { return ob }),
	}, shapes.Discrete(1))
}

// arrowShape is 0 -e1-> 1.
func arrowShape() (*fincat.FinCat, error) {
	return shapes.Build("Arrow", nil, shapes.Path(2))
}

// constant returns the diagram of kind K sending the single object of {ob}
// to target.
func constant[K diagram.Variance](C *fincat.FinCat, ob, target string) (diagram.Diagram[K, string, string], error) {
	J, err := pointShape(ob)
	if err != nil {
		return diagram.Diagram[K, string, string]{}, err
	}
	F, err := fincat.NewFunctor[string, string](J, C, obMap{ob: target}, nil)
	if err != nil {
		return diagram.Diagram[K, string, string]{}, err
	}

	return diagram.New[K](F), nil
}

// arrow returns the diagram of kind K sending 0 -e1-> 1 to A -a-> B.
func arrow[K diagram.Variance](C *fincat.FinCat) (diagram.Diagram[K, string, string], error) {
	J, err := arrowShape()
	if err != nil {
		return diagram.Diagram[K, string, string]{}, err
	}
	F, err := fincat.NewFunctor[string, string](J, C, obMap{"0": "A", "1": "B"}, obMap{"e1": "a"})
	if err != nil {
		return diagram.Diagram[K, string, string]{}, err
	}

	return diagram.New[K](F), nil
}

// path returns the diagram of kind K sending 0 -e1-> 1 -e2-> 2 to
// A -a-> B -b-> E.
func path[K diagram.Variance](C *fincat.FinCat) (diagram.Diagram[K, string, string], error) {
	J, err := shapes.Build("Path3", nil, shapes.Path(3))
	if err != nil {
		return diagram.Diagram[K, string, string]{}, err
	}
	F, err := fincat.NewFunctor[string, string](J, C, obMap{"0": "A", "1": "B", "2": "E"}, obMap{"e1": "a", "e2": "b"})
	if err != nil {
		return diagram.Diagram[K, string, string]{}, err
	}

	return diagram.New[K](F), nil
}

// closure adds identities on every endpoint and every composite of homs,
// so the law check sees composable triples of non-identity morphisms.
func closure[K diagram.Variance](homs []diagram.DiagramHom[K, string, string]) ([]diagram.DiagramHom[K, string, string], error) {
	var cat diagram.Category[K, string, string]
	out := append([]diagram.DiagramHom[K, string, string](nil), homs...)
	seen := func(f diagram.DiagramHom[K, string, string]) bool {
		for _, g := range out {
			if g.Equal(f) {
				return true
			}
		}
		return false
	}
	for grown := true; grown; {
		grown = false
		n := len(out)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				f, g := out[i], out[j]
				if !cat.EqualOb(cat.Codom(f), cat.Dom(g)) {
					continue
				}
				fg, err := cat.Compose(f, g)
				if err != nil {
					return nil, err
				}
				if !seen(fg) {
					out = append(out, fg)
					grown = true
				}
			}
		}
	}
	for _, f := range homs {
		for _, d := range []diagram.Diagram[K, string, string]{cat.Dom(f), cat.Codom(f)} {
			if id := cat.Id(d); !seen(id) {
				out = append(out, id)
			}
		}
	}

	return out, nil
}

// IDFixture returns id-kind morphisms D1 → D2 → D3 (components a, b),
// D1 → Arrow (identity component) and Arrow → D2 (collapsing the arrow with
// component a at 0), where D1, D2, D3 are {x}↦A, {y}↦B, {z}↦E.
func IDFixture() ([]diagram.DiagramHom[diagram.ID, string, string], error) {
	C, err := Target()
	if err != nil {
		return nil, err
	}
	D1, err := constant[diagram.ID](C, "x", "A")
	if err != nil {
		return nil, err
	}
	D2, err := constant[diagram.ID](C, "y", "B")
	if err != nil {
		return nil, err
	}
	D3, err := constant[diagram.ID](C, "z", "E")
	if err != nil {
		return nil, err
	}
	Arr, err := arrow[diagram.ID](C)
	if err != nil {
		return nil, err
	}

	f, err := diagram.FromObMaps(entries{"x": diagram.Via("y", "a")}, nil, D1, D2)
	if err != nil {
		return nil, err
	}
	g, err := diagram.FromObMaps(entries{"y": diagram.Via("z", "b")}, nil, D2, D3)
	if err != nil {
		return nil, err
	}
	k, err := diagram.FromObMaps(entries{"x": diagram.To[string]("0")}, nil, D1, Arr)
	if err != nil {
		return nil, err
	}
	m, err := diagram.FromObMaps(entries{"0": diagram.Via("y", "a"), "1": diagram.To[string]("y")}, nil, Arr, D2)
	if err != nil {
		return nil, err
	}

	return closure([]diagram.DiagramHom[diagram.ID, string, string]{f, g, k, m})
}

// OpFixture returns op-kind morphisms Path3 → Arrow → {y}↦B → {z}↦E. The
// first restricts the path to its first edge, the second restricts the arrow
// to its target, the third has component b.
func OpFixture() ([]diagram.DiagramHom[diagram.Op, string, string], error) {
	C, err := Target()
	if err != nil {
		return nil, err
	}
	P, err := path[diagram.Op](C)
	if err != nil {
		return nil, err
	}
	Arr, err := arrow[diagram.Op](C)
	if err != nil {
		return nil, err
	}
	Dy, err := constant[diagram.Op](C, "y", "B")
	if err != nil {
		return nil, err
	}
	Dz, err := constant[diagram.Op](C, "z", "E")
	if err != nil {
		return nil, err
	}

	e, err := diagram.FromObMaps(entries{"0": diagram.To[string]("0"), "1": diagram.To[string]("1")}, nil, P, Arr)
	if err != nil {
		return nil, err
	}
	f, err := diagram.FromObMaps(entries{"y": diagram.To[string]("1")}, nil, Arr, Dy)
	if err != nil {
		return nil, err
	}
	g, err := diagram.FromObMaps(entries{"z": diagram.Via("y", "b")}, nil, Dy, Dz)
	if err != nil {
		return nil, err
	}

	return closure([]diagram.DiagramHom[diagram.Op, string, string]{e, f, g})
}

// CoFixture returns co-kind morphisms {x}↦E → {y}↦B → {z}↦A → Arrow with
// components b, a and an identity; the last sends z to the source of the
// arrow.
func CoFixture() ([]diagram.DiagramHom[diagram.Co, string, string], error) {
	C, err := Target()
	if err != nil {
		return nil, err
	}
	Dx, err := constant[diagram.Co](C, "x", "E")
	if err != nil {
		return nil, err
	}
	Dy, err := constant[diagram.Co](C, "y", "B")
	if err != nil {
		return nil, err
	}
	Dz, err := constant[diagram.Co](C, "z", "A")
	if err != nil {
		return nil, err
	}
	Arr, err := arrow[diagram.Co](C)
	if err != nil {
		return nil, err
	}

	f, err := diagram.FromObMaps(entries{"x": diagram.Via("y", "b")}, nil, Dx, Dy)
	if err != nil {
		return nil, err
	}
	g, err := diagram.FromObMaps(entries{"y": diagram.Via("z", "a")}, nil, Dy, Dz)
	if err != nil {
		return nil, err
	}
	h, err := diagram.FromObMaps(entries{"z": diagram.To[string]("0")}, nil, Dz, Arr)
	if err != nil {
		return nil, err
	}

	return closure([]diagram.DiagramHom[diagram.Co, string, string]{f, g, h})
}

func runID(ctx context.Context, opts []category.Option) (Outcome, error) {
	var out Outcome
	homs, err := IDFixture()
	if err != nil {
		return out, err
	}
	err = verify[diagram.Diagram[diagram.ID, string, string]](ctx, &out, diagram.Category[diagram.ID, string, string]{}, homs, opts)

	return out, err
}

func runOp(ctx context.Context, opts []category.Option) (Outcome, error) {
	var out Outcome
	homs, err := OpFixture()
	if err != nil {
		return out, err
	}
	err = verify[diagram.Diagram[diagram.Op, string, string]](ctx, &out, diagram.Category[diagram.Op, string, string]{}, homs, opts)

	return out, err
}

func runCo(ctx context.Context, opts []category.Option) (Outcome, error) {
	var out Outcome
	homs, err := CoFixture()
	if err != nil {
		return out, err
	}
	err = verify[diagram.Diagram[diagram.Co, string, string]](ctx, &out, diagram.Category[diagram.Co, string, string]{}, homs, opts)

	return out, err
}

// runDual checks the laws on the co-kind duals of the op fixture.
func runDual(ctx context.Context, opts []category.Option) (Outcome, error) {
	var out Outcome
	homs, err := OpFixture()
	if err != nil {
		return out, err
	}
	duals := make([]diagram.DiagramHom[diagram.Co, string, string], len(homs))
	for i, f := range homs {
		duals[i] = diagram.DualOpHom(f)
	}
	err = verify[diagram.Diagram[diagram.Co, string, string]](ctx, &out, diagram.Category[diagram.Co, string, string]{}, duals, opts)

	return out, err
}
