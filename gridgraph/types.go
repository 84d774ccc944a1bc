// Package gridgraph defines core types and options for the grid model.
package gridgraph

import (
	"fmt"
	"sync"
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: up, down, left, right.
	Conn4 Connectivity = iota
	// Conn8 appends the four diagonals: up-left, up-right, down-left, down-right.
	Conn8
)

// Default grid dimensions.
const (
	DefaultRows = 25
	DefaultCols = 25
)

// Coord identifies a cell by row and column.
type Coord struct {
	Row, Col int
}

// String formats c as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Role tags the start and end cells.
type Role int

const (
	RoleNone Role = iota
	RoleStart
	RoleEnd
)

func (r Role) String() string {
	switch r {
	case RoleNone:
		return "none"
	case RoleStart:
		return "start"
	case RoleEnd:
		return "end"
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// Mark is the visualization state written by a search run.
// Marks never influence the search itself.
type Mark int

const (
	MarkNone Mark = iota
	MarkOpen
	MarkClosed
	MarkPath
)

// Cell is a single grid position.
// Wall, role and mark are changed only through Grid methods so the grid can
// track when cached neighbor lists go stale.
type Cell struct {
	Coord
	wall      bool
	role      Role
	mark      Mark
	neighbors []*Cell
}

// IsWall reports whether the cell is blocked.
func (c *Cell) IsWall() bool { return c.wall }

// Role returns the cell's role tag.
func (c *Cell) Role() Role { return c.role }

// Mark returns the cell's visualization mark.
func (c *Cell) Mark() Mark { return c.mark }

// Neighbors returns the cached traversable neighbors as of the last
// RefreshNeighbors call. The slice must not be modified.
func (c *Cell) Neighbors() []*Cell { return c.neighbors }

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns GridOptions with Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn4}
}

// Option configures a Grid at construction time.
type Option func(*GridOptions)

// WithConnectivity selects Conn4 or Conn8 neighbor lists.
func WithConnectivity(conn Connectivity) Option {
	return func(o *GridOptions) { o.Conn = conn }
}

// Grid is a fixed Rows×Cols array of cells stored row-major.
// Cells are created once and only mutated afterwards.
//
// Neighbor lists are cached: any wall change sets a dirty flag that stays set
// until RefreshNeighbors rebuilds them. A search run claims the grid with
// BeginRun; mutations are refused until EndRun.
type Grid struct {
	rows, cols      int
	conn            Connectivity
	cells           []Cell
	neighborOffsets [][2]int
	start           int // index of the start cell
	end             int // index of the end cell, -1 if unset

	mu      sync.Mutex
	dirty   bool
	running bool
}
