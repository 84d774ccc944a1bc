// Package astar_test provides runnable examples for A* search on a grid.
package astar_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/heuristic"
)

// ExampleSearch routes around a wall block and prints the marked grid.
//
//	o: open, x: explored, *: path
func ExampleSearch() {
	// 1) Parse a 3×4 map; Parse leaves neighbor lists fresh.
	g, err := gridgraph.Parse(`
S...
.##.
...E
`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Search with the Manhattan heuristic (unit steps on a 4-connected grid).
	res, err := astar.Search(context.Background(), g, astar.WithHeuristic(heuristic.Manhattan))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Report and dump.
	fmt.Printf("found: %v steps: %d cost: %g expanded: %d\n", res.Found, res.Steps(), res.Cost, res.Expanded)
	fmt.Print(g)

	// Output:
	// found: true steps: 5 cost: 5 expanded: 10
	// S***
	// x##*
	// xxxE
}

// ExampleStepper_Events walks a corridor one expansion at a time.
func ExampleStepper_Events() {
	g, _ := gridgraph.Parse("S.E")
	s, err := astar.NewStepper(g, astar.WithHeuristic(heuristic.Manhattan), astar.WithMarks(false))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for ev, err := range s.Events(context.Background()) {
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("step %d: %v g=%g f=%g %s\n", ev.Step, ev.Current, ev.G, ev.F, ev.State)
	}
	fmt.Println("path:", s.Path())

	// Output:
	// step 1: (0,0) g=0 f=2 running
	// step 2: (0,1) g=1 f=2 running
	// step 3: (0,2) g=2 f=2 found
	// path: [(0,0) (0,1) (0,2)]
}
