package fincat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcat/fincat"
)

func TestNewTransformation_Point(t *testing.T) {
	P, C := mustPoint(t), chain(t)
	F, err := fincat.NewFunctor[string, string](P, C, map[string]string{"p": "A"}, nil)
	require.NoError(t, err)
	G, err := fincat.NewFunctor[string, string](P, C, map[string]string{"p": "B"}, nil)
	require.NoError(t, err)

	alpha, err := fincat.NewTransformation(F, G, map[string]string{"p": "f"})
	require.NoError(t, err)
	c, err := alpha.Component("p")
	require.NoError(t, err)
	assert.Equal(t, "f", c)
	assert.True(t, alpha.Dom().Equal(F))
	assert.True(t, alpha.Codom().Equal(G))
	assert.Equal(t, "{p: f}", alpha.String())

	_, err = fincat.NewTransformation(F, G, map[string]string{"p": "g"})
	assert.ErrorIs(t, err, fincat.ErrNotNatural)
	_, err = fincat.NewTransformation(F, G, map[string]string{})
	assert.ErrorIs(t, err, fincat.ErrMissingComponent)
	_, err = fincat.NewTransformation(F, G, map[string]string{"p": "f", "q": "f"})
	assert.ErrorIs(t, err, fincat.ErrUnknownObject)
	_, err = alpha.Component("q")
	assert.ErrorIs(t, err, fincat.ErrUnknownObject)
}

func TestNewTransformation_NaturalitySquare(t *testing.T) {
	J, C := arrow(t), parallel(t)
	obs := map[string]string{"x": "A", "y": "B"}
	S, err := fincat.NewShapeFunctor(J, C, obs, map[string]string{"u": "s"})
	require.NoError(t, err)
	T, err := fincat.NewShapeFunctor(J, C, obs, map[string]string{"u": "t"})
	require.NoError(t, err)
	ids := map[string]string{"x": "id_A", "y": "id_B"}

	_, err = fincat.NewTransformation(S, S, ids)
	assert.NoError(t, err)
	_, err = fincat.NewTransformation(S, T, ids)
	assert.ErrorIs(t, err, fincat.ErrNotNatural)

	// Same shape, different codomain category.
	U, err := fincat.NewShapeFunctor(J, parallel(t), obs, map[string]string{"u": "s"})
	require.NoError(t, err)
	_, err = fincat.NewTransformation(S, U, ids)
	assert.ErrorIs(t, err, fincat.ErrFunctorMismatch)
}

func TestComposeTransformations(t *testing.T) {
	P, C := mustPoint(t), chain(t)
	fn := func(x string) fincat.FinFunctor[string, string] {
		F, err := fincat.NewFunctor[string, string](P, C, map[string]string{"p": x}, nil)
		require.NoError(t, err)
		return F
	}
	A, B, E := fn("A"), fn("B"), fn("C")
	alpha, err := fincat.NewTransformation(A, B, map[string]string{"p": "f"})
	require.NoError(t, err)
	beta, err := fincat.NewTransformation(B, E, map[string]string{"p": "g"})
	require.NoError(t, err)

	ab, err := fincat.ComposeTransformations(alpha, beta)
	require.NoError(t, err)
	c, err := ab.Component("p")
	require.NoError(t, err)
	assert.Equal(t, "f;g", c)
	assert.True(t, ab.Dom().Equal(A))
	assert.True(t, ab.Codom().Equal(E))

	// Identity laws on transformations.
	left, err := fincat.ComposeTransformations(fincat.IdentityTransformation(A), alpha)
	require.NoError(t, err)
	assert.True(t, left.Equal(alpha))
	right, err := fincat.ComposeTransformations(alpha, fincat.IdentityTransformation(B))
	require.NoError(t, err)
	assert.True(t, right.Equal(alpha))

	_, err = fincat.ComposeTransformations(beta, alpha)
	assert.ErrorIs(t, err, fincat.ErrTransformationMismatch)
}

func TestWhisker(t *testing.T) {
	P, J, C := mustPoint(t), arrow(t), chain(t)
	F, err := fincat.NewShapeFunctor(J, C, map[string]string{"x": "A", "y": "B"}, nil)
	require.NoError(t, err)
	G, err := fincat.NewShapeFunctor(J, C, map[string]string{"x": "B", "y": "C"}, nil)
	require.NoError(t, err)
	alpha, err := fincat.NewTransformation(F, G, map[string]string{"x": "f", "y": "g"})
	require.NoError(t, err)

	pick, err := fincat.NewShapeFunctor(P, J, map[string]string{"p": "y"}, nil)
	require.NoError(t, err)
	w, err := fincat.Whisker(pick, alpha)
	require.NoError(t, err)

	c, err := w.Component("p")
	require.NoError(t, err)
	assert.Equal(t, "g", c)
	src, err := w.Dom().ObMap("p")
	require.NoError(t, err)
	assert.Equal(t, "B", src)

	// Whiskering by the identity functor changes nothing.
	same, err := fincat.Whisker(fincat.IdentityFunctor(J), alpha)
	require.NoError(t, err)
	assert.True(t, same.Equal(alpha))

	_, err = fincat.Whisker(F, alpha)
	assert.ErrorIs(t, err, fincat.ErrFunctorMismatch)
}
