package aco_test

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/antroute/aco"
	"github.com/katalvlaran/antroute/core"
)

// ExampleOptimize searches the four-node wireless network for the cheapest
// route that visits every node once.
func ExampleOptimize() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 3)
	_, _ = g.AddEdge("A", "C", 4)
	_, _ = g.AddEdge("A", "D", 3)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("B", "D", 1)
	_, _ = g.AddEdge("C", "D", 3)

	opts := aco.DefaultOptions()
	opts.Seed = 42

	res, err := aco.Optimize(g, opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	visited := append([]string(nil), res.Path...)
	sort.Strings(visited)
	fmt.Println("visited:", visited)
	fmt.Println("cost:", res.Cost)
	fmt.Println("iterations:", len(res.History))

	// Output:
	// visited: [A B C D]
	// cost: 6
	// iterations: 15
}

// ExamplePathCost evaluates a hand-written route.
func ExamplePathCost() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 3)
	_, _ = g.AddEdge("B", "C", 2)

	c, _ := aco.PathCost(g, []string{"A", "B", "C"})
	_, err := aco.PathCost(g, []string{"A", "C"})

	fmt.Println(c)
	fmt.Println(err)

	// Output:
	// 5
	// Distance("A","C"): core: edge not found
}
