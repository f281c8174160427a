package fincat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcat/fincat"
)

// arrow is the free category x -u-> y.
func arrow(t *testing.T) *fincat.FinCat {
	return mustFree(t, "Arrow", [3]string{"u", "x", "y"})
}

// parallel is the free category A =s,t=> B.
func parallel(t *testing.T) *fincat.FinCat {
	return mustFree(t, "Par", [3]string{"s", "A", "B"}, [3]string{"t", "A", "B"})
}

func TestNewFunctor_ExtendsToComposites(t *testing.T) {
	J, C := chain(t), chain(t)
	F, err := fincat.NewFunctor[string, string](J, C,
		map[string]string{"A": "A", "B": "B", "C": "C"},
		map[string]string{"f": "f", "g": "g"},
	)
	require.NoError(t, err)

	img, err := F.HomMap("f;g")
	require.NoError(t, err)
	assert.Equal(t, "f;g", img)
	img, err = F.HomMap("id_B")
	require.NoError(t, err)
	assert.Equal(t, "id_B", img)
	assert.False(t, F.Equal(fincat.IdentityFunctor(J)), "codomain differs from J")
	assert.Equal(t, "{A↦A, B↦B, C↦C}", F.String())
}

func TestNewFunctor_Errors(t *testing.T) {
	J, C := arrow(t), chain(t)
	obs := map[string]string{"x": "A", "y": "C"}

	testCases := []struct {
		name   string
		obs    map[string]string
		homs   map[string]string
		target error
	}{
		{"missing object", map[string]string{"x": "A"}, map[string]string{"u": "f"}, fincat.ErrMissingObImage},
		{"unknown object", map[string]string{"x": "A", "y": "C", "z": "B"}, map[string]string{"u": "f;g"}, fincat.ErrUnknownObject},
		{"image outside codomain", map[string]string{"x": "A", "y": "Q"}, map[string]string{"u": "f"}, fincat.ErrUnknownObject},
		{"missing generator", obs, nil, fincat.ErrMissingHomImage},
		{"unknown morphism", obs, map[string]string{"u": "f;g", "v": "f"}, fincat.ErrUnknownHom},
		{"wrong endpoints", obs, map[string]string{"u": "f"}, fincat.ErrNotFunctorial},
		{"bad identity", obs, map[string]string{"u": "f;g", "id_x": "f"}, fincat.ErrNotFunctorial},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := fincat.NewFunctor[string, string](J, C, tc.obs, tc.homs)
			assert.ErrorIs(t, err, tc.target)
		})
	}

	_, err := fincat.NewFunctor[string, string](nil, C, obs, nil)
	assert.ErrorIs(t, err, fincat.ErrNilCategory)

	_, err = fincat.NewFunctor[string, string](J, tagged{names: map[string]bool{}}, obs, map[string]string{"u": "f;g"})
	assert.ErrorIs(t, err, fincat.ErrUncomparableCategory)
}

// tagged is a category of plain strings whose value holds a map, so it
// cannot be compared with ==.
type tagged struct {
	names map[string]bool
}

func (tagged) Dom(f string) string                 { return f }
func (tagged) Codom(f string) string               { return f }
func (tagged) Id(x string) string                  { return x }
func (tagged) Compose(f, _ string) (string, error) { return f, nil }

func TestNewShapeFunctor_ImageOutsideCodomain(t *testing.T) {
	P, J := mustPoint(t), arrow(t)

	_, err := fincat.NewShapeFunctor(P, J, map[string]string{"p": "nowhere"}, nil)
	require.ErrorIs(t, err, fincat.ErrUnknownObject)
	assert.Contains(t, err.Error(), "nowhere")
}

func TestNewShapeFunctor_Infers(t *testing.T) {
	F, err := fincat.NewShapeFunctor(arrow(t), chain(t), map[string]string{"x": "A", "y": "C"}, nil)
	require.NoError(t, err)
	img, err := F.HomMap("u")
	require.NoError(t, err)
	assert.Equal(t, "f;g", img)

	// Two candidates: s and t; nothing is inferred.
	_, err = fincat.NewShapeFunctor(arrow(t), parallel(t), map[string]string{"x": "A", "y": "B"}, nil)
	assert.ErrorIs(t, err, fincat.ErrMissingHomImage)

	G, err := fincat.NewShapeFunctor(arrow(t), parallel(t), map[string]string{"x": "A", "y": "B"}, map[string]string{"u": "t"})
	require.NoError(t, err)
	img, err = G.HomMap("u")
	require.NoError(t, err)
	assert.Equal(t, "t", img)

	_, err = fincat.NewShapeFunctor(nil, chain(t), nil, nil)
	assert.ErrorIs(t, err, fincat.ErrNilCategory)
}

func TestComposeFunctors(t *testing.T) {
	J, C := arrow(t), chain(t)
	P := mustPoint(t)

	pick, err := fincat.NewShapeFunctor(P, J, map[string]string{"p": "y"}, nil)
	require.NoError(t, err)
	F, err := fincat.NewShapeFunctor(J, C, map[string]string{"x": "A", "y": "B"}, nil)
	require.NoError(t, err)

	PF, err := fincat.ComposeFunctors(pick, F)
	require.NoError(t, err)
	y, err := PF.ObMap("p")
	require.NoError(t, err)
	assert.Equal(t, "B", y)
	assert.Same(t, P, PF.Dom())

	// Identity laws on functors.
	left, err := fincat.ComposeFunctors(fincat.IdentityFunctor(J), F)
	require.NoError(t, err)
	assert.True(t, left.Equal(F))
	right, err := fincat.ComposeFunctors(F, fincat.IdentityFunctor(C))
	require.NoError(t, err)
	assert.True(t, right.Equal(F))

	_, err = fincat.ComposeFunctors(F, F)
	assert.ErrorIs(t, err, fincat.ErrFunctorMismatch)

	_, err = F.ObMap("nope")
	assert.ErrorIs(t, err, fincat.ErrUnknownObject)
	_, err = F.HomMap("nope")
	assert.ErrorIs(t, err, fincat.ErrUnknownHom)
}
