package diagram_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcat/core"
	"github.com/katalvlaran/lvcat/diagram"
	"github.com/katalvlaran/lvcat/fincat"
)

// target is the free category A -a-> B -b-> E.
func target(t *testing.T) *fincat.FinCat {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("a", "A", "B"))
	require.NoError(t, g.AddEdge("b", "B", "E"))
	c, err := fincat.FreeCat("C", g)
	require.NoError(t, err)

	return c
}

// point is the one-object shape {ob}.
func point(t *testing.T, ob string) *fincat.FinCat {
	t.Helper()
	b := fincat.NewBuilder("{" + ob + "}")
	require.NoError(t, b.AddOb(ob))
	c, err := b.Build()
	require.NoError(t, err)

	return c
}

// arrowShape is the shape x -u-> y.
func arrowShape(t *testing.T) *fincat.FinCat {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("u", "x", "y"))
	c, err := fincat.FreeCat("Arrow", g)
	require.NoError(t, err)

	return c
}

// pathShape is the shape 0 -e1-> 1 -e2-> 2.
func pathShape(t *testing.T) *fincat.FinCat {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("e1", "0", "1"))
	require.NoError(t, g.AddEdge("e2", "1", "2"))
	c, err := fincat.FreeCat("Path3", g)
	require.NoError(t, err)

	return c
}

// functor builds J → C from an object map and generator images.
func functor(t *testing.T, J, C *fincat.FinCat, obs, homs map[string]string) fincat.FinFunctor[string, string] {
	t.Helper()
	F, err := fincat.NewFunctor[string, string](J, C, obs, homs)
	require.NoError(t, err)

	return F
}

// constant is the diagram of kind K sending the only object of J to ob.
func constant[K diagram.Variance](t *testing.T, J, C *fincat.FinCat, ob string) diagram.Diagram[K, string, string] {
	t.Helper()
	x := J.Obs()[0]

	return diagram.New[K](functor(t, J, C, map[string]string{x: ob}, nil))
}

// arrowDiagram sends x -u-> y to A -a-> B.
func arrowDiagram[K diagram.Variance](t *testing.T, C *fincat.FinCat) diagram.Diagram[K, string, string] {
	t.Helper()

	return diagram.New[K](functor(t, arrowShape(t), C,
		map[string]string{"x": "A", "y": "B"}, map[string]string{"u": "a"}))
}

func component[K diagram.Variance](t *testing.T, f diagram.DiagramHom[K, string, string], x string) string {
	t.Helper()
	_, c, err := f.ObMap(x)
	require.NoError(t, err)

	return c
}
