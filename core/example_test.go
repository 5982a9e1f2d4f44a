package core_test

import (
	"fmt"

	"github.com/katalvlaran/campuspath/core"
)

// ExampleGraph builds an undirected walkway as two directed edges and
// enumerates the neighbors of one building.
func ExampleGraph() {
	g := core.NewStringGraph()
	g.InsertNode("Memorial Union")
	g.InsertNode("Science Hall")
	g.InsertNode("Radio Hall")

	// Undirected links are two directed edges with the same weight.
	_, _ = g.InsertEdge("Memorial Union", "Science Hall", 105.8)
	_, _ = g.InsertEdge("Science Hall", "Memorial Union", 105.8)
	_, _ = g.InsertEdge("Memorial Union", "Radio Hall", 176.7)

	fmt.Println("nodes:", g.NodeCount(), "edges:", g.EdgeCount())

	next, _ := g.NeighborsOf("Memorial Union")
	for id, w := range next {
		fmt.Printf("%s %.1f\n", id, w)
	}

	// Output:
	// nodes: 3 edges: 3
	// Science Hall 105.8
	// Radio Hall 176.7
}
