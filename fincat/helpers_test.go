package fincat_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcat/core"
	"github.com/katalvlaran/lvcat/fincat"
)

// mustFree builds the free category on the edges (id, from, to).
func mustFree(t *testing.T, name string, edges ...[3]string) *fincat.FinCat {
	t.Helper()
	g := core.NewGraph()
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1], e[2]))
	}
	c, err := fincat.FreeCat(name, g)
	require.NoError(t, err)

	return c
}

// mustPoint builds the one-object category {p}.
func mustPoint(t *testing.T) *fincat.FinCat {
	t.Helper()
	b := fincat.NewBuilder("Point")
	require.NoError(t, b.AddOb("p"))
	c, err := b.Build()
	require.NoError(t, err)

	return c
}

// chain is the free category A -f-> B -g-> C.
func chain(t *testing.T) *fincat.FinCat {
	return mustFree(t, "C", [3]string{"f", "A", "B"}, [3]string{"g", "B", "C"})
}
