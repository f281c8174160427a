package diagram_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcat/diagram"
)

func TestDual_Diagrams(t *testing.T) {
	C := target(t)
	d := arrowDiagram[diagram.Op](t, C)

	co := diagram.DualOp(d)
	assert.Equal(t, diagram.KindCo, co.Kind())
	assert.True(t, co.Functor().Equal(d.Functor()))
	assert.True(t, diagram.DualCo(co).Equal(d))
}

func TestDual_Homs(t *testing.T) {
	f, g := opChain(t)

	co := diagram.DualOpHom(f)
	assert.Equal(t, diagram.KindCo, co.Kind())
	assert.True(t, co.ShapeMap().Equal(f.ShapeMap()))
	assert.True(t, co.DiagramMap().Equal(f.DiagramMap()))
	assert.True(t, co.PrecomposedDiagram().Equal(f.PrecomposedDiagram()))
	assert.True(t, diagram.DualCoHom(co).Equal(f))

	// The dual reverses direction.
	assert.True(t, diagram.Dom(co).Functor().Equal(diagram.Codom(f).Functor()))
	assert.True(t, diagram.Codom(co).Functor().Equal(diagram.Dom(f).Functor()))

	// Duals compose in the opposite order.
	fg, err := diagram.Compose(f, g)
	require.NoError(t, err)
	gf, err := diagram.Compose(diagram.DualOpHom(g), co)
	require.NoError(t, err)
	assert.True(t, diagram.DualOpHom(fg).Equal(gf))

	cf, _ := coChain(t)
	assert.True(t, diagram.DualOpHom(diagram.DualCoHom(cf)).Equal(cf))
}

func TestAny_RoundTrip(t *testing.T) {
	f, g := opChain(t)
	af := diagram.EraseHom(f)
	assert.Equal(t, diagram.KindOp, af.Kind())

	back, err := diagram.NarrowHom[diagram.Op](af)
	require.NoError(t, err)
	assert.True(t, back.Equal(f))

	_, err = diagram.NarrowHom[diagram.Co](af)
	assert.ErrorIs(t, err, diagram.ErrKindMismatch)

	ad := diagram.Erase(diagram.Dom(f))
	assert.True(t, ad.Equal(diagram.DomAny(af)))
	assert.Equal(t, "Diagram{op}({x↦A, y↦B})", ad.String())
	_, err = diagram.Narrow[diagram.ID](ad)
	assert.ErrorIs(t, err, diagram.ErrKindMismatch)
	nd, err := diagram.Narrow[diagram.Op](ad)
	require.NoError(t, err)
	assert.True(t, nd.Equal(diagram.Dom(f)))

	fg, err := diagram.Compose(f, g)
	require.NoError(t, err)
	afg, err := diagram.ComposeAny(af, diagram.EraseHom(g))
	require.NoError(t, err)
	assert.True(t, afg.Equal(diagram.EraseHom(fg)))
	assert.True(t, diagram.CodomAny(afg).Equal(diagram.Erase(diagram.Codom(g))))

	id := diagram.IdAny(ad)
	assert.True(t, id.Equal(diagram.EraseHom(diagram.Id(diagram.Dom(f)))))
}

func TestAny_InvalidComposition(t *testing.T) {
	f, _, _, _, _ := idChain(t)
	o, _ := opChain(t)

	_, err := diagram.ComposeAny(diagram.EraseHom(f), diagram.EraseHom(o))
	require.ErrorIs(t, err, diagram.ErrInvalidComposition)

	var ice *diagram.InvalidCompositionError
	require.True(t, errors.As(err, &ice))
	assert.Equal(t, diagram.KindID, ice.Left)
	assert.Equal(t, diagram.KindOp, ice.Right)
	assert.Equal(t, "diagram: cannot compose id-kind morphism with op-kind morphism", err.Error())
}

func TestAny_Dual(t *testing.T) {
	f, _ := opChain(t)
	af := diagram.EraseHom(f)

	co, err := diagram.DualAnyHom(af)
	require.NoError(t, err)
	assert.Equal(t, diagram.KindCo, co.Kind())
	assert.True(t, co.Equal(diagram.EraseHom(diagram.DualOpHom(f))))
	op, err := diagram.DualAnyHom(co)
	require.NoError(t, err)
	assert.True(t, op.Equal(af))

	d, err := diagram.DualAny(diagram.DomAny(af))
	require.NoError(t, err)
	assert.Equal(t, diagram.KindCo, d.Kind())

	idf, _, _, _, _ := idChain(t)
	_, err = diagram.DualAnyHom(diagram.EraseHom(idf))
	require.ErrorIs(t, err, diagram.ErrUnsupportedOperation)
	var uoe *diagram.UnsupportedOperationError
	require.True(t, errors.As(err, &uoe))
	assert.Equal(t, diagram.KindID, uoe.Kind)

	_, err = diagram.DualAny(diagram.DomAny(diagram.EraseHom(idf)))
	assert.ErrorIs(t, err, diagram.ErrUnsupportedOperation)
}
