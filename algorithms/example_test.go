package algorithms_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridpath/algorithms"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// ExampleRun compares the three strategies on one map.
func ExampleRun() {
	const text = `
S...
.##.
...E
`
	for _, name := range algorithms.Names() {
		alg, _ := algorithms.Parse(name)
		g, _ := gridgraph.Parse(text)
		out, err := algorithms.Run(context.Background(), g, alg)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("%-8s found=%v steps=%d\n", alg, out.Found, out.Steps())
	}

	// Output:
	// astar    found=true steps=5
	// dijkstra found=true steps=5
	// bfs      found=true steps=5
}
