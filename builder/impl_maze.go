package builder

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

const (
	methodMaze = "Maze"
	minMazeDim = 3
)

// mazeSteps are the carving moves: two cells at a time so that the cell in
// between becomes the passage.
var mazeSteps = [4][2]int{{-2, 0}, {2, 0}, {0, -2}, {0, 2}}

// Maze returns a Constructor that walls the whole grid and carves a perfect
// maze (exactly one route between any two rooms) with randomized depth-first
// search from (0,0). Rooms sit on even coordinates; the start moves to (0,0)
// and the end to the bottom-right room. Requires an RNG.
//
// Steps:
//  1. Validate size and RNG.
//  2. Put the start at (0,0); wall every other cell.
//  3. Depth-first walk over rooms with an explicit stack: from the top room
//     pick a random unvisited room two steps away, clear it and the passage
//     between, push it; pop when no such room remains.
//  4. Put the end in the bottom-right room.
func Maze() Constructor {
	return func(g *gridgraph.Grid, cfg builderConfig) error {
		// 1-2) Validate and fill.
		if err := fillMaze(g, cfg, methodMaze); err != nil {
			return err
		}
		origin := gridgraph.Coord{}

		// 3) Carve.
		visited := map[gridgraph.Coord]bool{origin: true}
		stack := []gridgraph.Coord{origin}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			next, ok := pickRoom(g, cfg, cur, visited)
			if !ok {
				stack = stack[:len(stack)-1]
				continue
			}
			carve(g, cur, next)
			visited[next] = true
			stack = append(stack, next)
		}

		// 4) End in the last room.
		return placeMazeEnd(g, methodMaze)
	}
}

// fillMaze validates size and RNG, puts the start at (0,0), drops any end and
// walls every other cell.
func fillMaze(g *gridgraph.Grid, cfg builderConfig, method string) error {
	rows, cols := g.Rows(), g.Cols()
	if rows < minMazeDim || cols < minMazeDim {
		return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
			method, rows, cols, minMazeDim, ErrTooSmall)
	}
	if cfg.rng == nil {
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}
	if err := g.SetRole(gridgraph.Coord{}, gridgraph.RoleStart); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	if end, ok := g.End(); ok {
		if err := g.SetRole(end.Coord, gridgraph.RoleNone); err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
	}
	for _, cell := range g.Cells() {
		if err := g.SetWall(cell.Coord); err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
	}
	return nil
}

// placeMazeEnd puts the end in the bottom-right room.
func placeMazeEnd(g *gridgraph.Grid, method string) error {
	end := gridgraph.Coord{Row: (g.Rows() - 1) &^ 1, Col: (g.Cols() - 1) &^ 1}
	if err := g.SetRole(end, gridgraph.RoleEnd); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	return nil
}

// carve clears room b and the passage cell between rooms a and b.
func carve(g *gridgraph.Grid, a, b gridgraph.Coord) {
	_ = g.ClearWall(gridgraph.Coord{Row: (a.Row + b.Row) / 2, Col: (a.Col + b.Col) / 2})
	_ = g.ClearWall(b)
}

// pickRoom returns a random unvisited room two steps from cur.
func pickRoom(g *gridgraph.Grid, cfg builderConfig, cur gridgraph.Coord, visited map[gridgraph.Coord]bool) (gridgraph.Coord, bool) {
	for _, k := range cfg.rng.Perm(len(mazeSteps)) {
		n := gridgraph.Coord{Row: cur.Row + mazeSteps[k][0], Col: cur.Col + mazeSteps[k][1]}
		if g.InBounds(n) && !visited[n] {
			return n, true
		}
	}
	return gridgraph.Coord{}, false
}
