package builder_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/builder"
)

// ExampleMaze prints a small seeded maze. Every room (even row and column)
// is reachable from every other by exactly one route.
func ExampleMaze() {
	g, err := builder.BuildGrid(5, 5, nil, []builder.BuilderOption{builder.WithSeed(42)}, builder.Maze())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("regions:", len(g.ConnectedComponents()))
	end, _ := g.End()
	fmt.Println("start:", g.Start().Coord, "end:", end.Coord)

	// Output:
	// regions: 1
	// start: (0,0) end: (4,4)
}
