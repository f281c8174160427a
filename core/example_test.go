package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvcat/core"
)

// ExampleGraph builds the generating graph of a span  A ← S → B.
func ExampleGraph() {
	g := core.NewGraph()
	_ = g.AddEdge("l", "S", "A")
	_ = g.AddEdge("r", "S", "B")

	fmt.Println("Vertices:", g.Vertices())
	out, _ := g.OutEdges("S")
	for _, e := range out {
		fmt.Printf("%s: %s -> %s\n", e.ID, e.From, e.To)
	}

	// Output:
	// Vertices: [A B S]
	// l: S -> A
	// r: S -> B
}
