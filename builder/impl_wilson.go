package builder

import (
	"github.com/katalvlaran/gridpath/gridgraph"
)

const methodWilsonMaze = "WilsonMaze"

// WilsonMaze returns a Constructor that carves a perfect maze with Wilson's
// algorithm: loop-erased random walks from unvisited rooms until each walk
// hits the tree. Unlike Maze, every spanning tree of the room lattice is
// equally likely, so corridors are shorter and branchier. Layout, roles and
// requirements match Maze.
//
// Steps:
//  1. Validate, put the start at (0,0), wall every other cell.
//  2. Seed the tree with a random room.
//  3. While rooms remain outside the tree: walk randomly from one of them,
//     remembering only the last exit taken from each room (this erases
//     loops), until the walk reaches the tree; then replay the exits from the
//     walk's first room, carving and adding each room to the tree.
//  4. Put the end in the bottom-right room.
func WilsonMaze() Constructor {
	return func(g *gridgraph.Grid, cfg builderConfig) error {
		// 1) Validate and fill.
		if err := fillMaze(g, cfg, methodWilsonMaze); err != nil {
			return err
		}

		var rooms []gridgraph.Coord
		for r := 0; r < g.Rows(); r += 2 {
			for c := 0; c < g.Cols(); c += 2 {
				rooms = append(rooms, gridgraph.Coord{Row: r, Col: c})
			}
		}

		// 2) Seed.
		inTree := make(map[gridgraph.Coord]bool, len(rooms))
		seed := rooms[cfg.rng.Intn(len(rooms))]
		inTree[seed] = true
		_ = g.ClearWall(seed)
		remaining := len(rooms) - 1

		// 3) Walk and carve. Rooms are scanned in row-major order so the
		//    result depends only on the RNG.
		exits := make(map[gridgraph.Coord]gridgraph.Coord)
		for _, first := range rooms {
			if remaining == 0 {
				break
			}
			if inTree[first] {
				continue
			}
			for cur := first; !inTree[cur]; {
				next := randomRoom(g, cfg, cur)
				exits[cur] = next
				cur = next
			}
			for cur := first; !inTree[cur]; cur = exits[cur] {
				inTree[cur] = true
				remaining--
				_ = g.ClearWall(cur)
				carve(g, cur, exits[cur])
			}
		}

		// 4) End in the last room.
		return placeMazeEnd(g, methodWilsonMaze)
	}
}

// randomRoom returns a random in-bounds room two steps from cur.
func randomRoom(g *gridgraph.Grid, cfg builderConfig, cur gridgraph.Coord) gridgraph.Coord {
	for {
		k := cfg.rng.Intn(len(mazeSteps))
		n := gridgraph.Coord{Row: cur.Row + mazeSteps[k][0], Col: cur.Col + mazeSteps[k][1]}
		if g.InBounds(n) {
			return n
		}
	}
}
