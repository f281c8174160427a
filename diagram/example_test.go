package diagram_test

import (
	"fmt"

	"github.com/katalvlaran/lvcat/core"
	"github.com/katalvlaran/lvcat/diagram"
	"github.com/katalvlaran/lvcat/fincat"
	"github.com/katalvlaran/lvcat/shapes"
)

// ExampleCompose composes two morphisms of one-object diagrams into
// A -a-> B -b-> E.
func ExampleCompose() {
	g := core.NewGraph()
	_ = g.AddEdge("a", "A", "B")
	_ = g.AddEdge("b", "B", "E")
	C, _ := fincat.FreeCat("C", g)
	J := shapes.Point()

	at := func(ob string) diagram.Diagram[diagram.ID, string, string] {
		F, _ := fincat.NewFunctor[string, string](J, C, map[string]string{"x": ob}, nil)
		return diagram.FromFunctor(F)
	}
	DA, DB, DE := at("A"), at("B"), at("E")

	f, _ := diagram.FromObMaps(map[string]diagram.ObEntry[string]{"x": diagram.Via("x", "a")}, nil, DA, DB)
	h, _ := diagram.FromObMaps(map[string]diagram.ObEntry[string]{"x": diagram.Via("x", "b")}, nil, DB, DE)

	fh, err := diagram.Compose(f, h)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(fh)
	fmt.Println(diagram.Dom(fh), "->", diagram.Codom(fh))

	// Output:
	// DiagramHom{id}({x↦x}, {x: a;b})
	// Diagram{id}({x↦A}) -> Diagram{id}({x↦E})
}
