package category_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcat/category"
)

// point is the single object of a one-object category (a monoid).
type point struct{}

// modAdd is the monoid (Z/n, +) seen as a one-object category.
type modAdd struct{ n int }

func (m modAdd) Dom(int) point   { return point{} }
func (m modAdd) Codom(int) point { return point{} }
func (m modAdd) Id(point) int    { return 0 }
func (m modAdd) Compose(f, g int) (int, error) {
	return (f + g) % m.n, nil
}
func (m modAdd) EqualOb(x, y point) bool { return x == y }
func (m modAdd) EqualHom(f, g int) bool  { return f == g }

// subtract pretends subtraction is composition; neither law holds.
type subtract struct{ modAdd }

func (s subtract) Compose(f, g int) (int, error) { return f - g, nil }

var errRefused = errors.New("refused")

// refusing fails every composition.
type refusing struct{ modAdd }

func (refusing) Compose(int, int) (int, error) { return 0, errRefused }

func TestSequence(t *testing.T) {
	c := modAdd{n: 5}

	got, err := category.Sequence[point, int](c, 1, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	got, err = category.Sequence[point, int](c, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	_, err = category.Sequence[point, int](c)
	assert.ErrorIs(t, err, category.ErrEmptySequence)

	_, err = category.Sequence[point, int](nil, 1)
	assert.ErrorIs(t, err, category.ErrNilCategory)

	_, err = category.Sequence[point, int](refusing{}, 1, 2)
	assert.ErrorIs(t, err, errRefused)
}

func TestComposeBatch_PreservesOrder(t *testing.T) {
	c := modAdd{n: 100}
	pairs := make([]category.Pair[int], 50)
	for i := range pairs {
		pairs[i] = category.Pair[int]{First: i, Second: 1}
	}

	out, err := category.ComposeBatch[point, int](context.Background(), c, pairs, category.WithJobs(4))
	require.NoError(t, err)
	for i, h := range out {
		assert.Equal(t, i+1, h)
	}
}

func TestComposeBatch_Error(t *testing.T) {
	pairs := []category.Pair[int]{{First: 1, Second: 2}}
	_, err := category.ComposeBatch[point, int](context.Background(), refusing{}, pairs)
	assert.ErrorIs(t, err, errRefused)

	_, err = category.ComposeBatch[point, int](context.Background(), nil, pairs)
	assert.ErrorIs(t, err, category.ErrNilCategory)
}

func TestVerifyLaws_Monoid(t *testing.T) {
	rep, err := category.VerifyLaws[point, int](context.Background(), modAdd{n: 7}, []int{0, 1, 3, 6}, category.WithJobs(2))
	require.NoError(t, err)
	assert.True(t, rep.OK())
	assert.NoError(t, rep.Err())
	assert.Equal(t, 4, rep.Identity)
	assert.Equal(t, 64, rep.Associativity)
}

func TestVerifyLaws_DetectsViolations(t *testing.T) {
	rep, err := category.VerifyLaws[point, int](context.Background(), subtract{modAdd{n: 7}}, []int{1, 2})
	require.NoError(t, err)
	assert.False(t, rep.OK())

	// 0-f != f for f != 0, so every hom breaks the identity law.
	var identity, assoc int
	for _, v := range rep.Violations {
		switch {
		case errors.Is(v, category.ErrIdentityLaw):
			identity++
		case errors.Is(v, category.ErrAssociativityLaw):
			assoc++
		}
	}
	assert.Equal(t, 2, identity)
	assert.Equal(t, 8, assoc)
	assert.ErrorIs(t, rep.Err(), category.ErrAssociativityLaw)
}

func TestVerifyLaws_CompositionErrorAborts(t *testing.T) {
	_, err := category.VerifyLaws[point, int](context.Background(), refusing{modAdd{n: 3}}, []int{1})
	assert.ErrorIs(t, err, errRefused)
}

func TestVerifyLaws_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := category.VerifyLaws[point, int](ctx, modAdd{n: 3}, []int{1, 2})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWithJobs_Panics(t *testing.T) {
	assert.Panics(t, func() { category.WithJobs(0) })
}
