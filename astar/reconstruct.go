package astar

import "github.com/katalvlaran/gridpath/gridgraph"

// Reconstruct walks cameFrom backward from goal until a cell with no
// predecessor and returns the path in start → goal order.
// The search never records a predecessor for the start, so the walk ends there.
func Reconstruct(cameFrom map[gridgraph.Coord]gridgraph.Coord, goal gridgraph.Coord) []gridgraph.Coord {
	path := []gridgraph.Coord{goal}
	for cur := goal; ; {
		prev, ok := cameFrom[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// MarkPath marks every cell of path with gridgraph.MarkPath.
func MarkPath(g *gridgraph.Grid, path []gridgraph.Coord) {
	for _, c := range path {
		_ = g.SetMark(c, gridgraph.MarkPath)
	}
}
