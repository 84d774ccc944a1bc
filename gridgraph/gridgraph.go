// Package gridgraph provides the mutable grid model that searches run over:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Wall painting and start/end role assignment
//   - Cached per-cell neighbor lists with explicit staleness tracking
//   - Visualization marks (open, closed, path) written by search runs
//
// Out-of-bounds coordinates are always rejected with ErrOutOfBounds.
package gridgraph

import (
	"fmt"
)

// New constructs a rows×cols grid with every cell free, the start at (0,0)
// and no end. Neighbor lists are built before returning.
// Returns ErrEmptyGrid if rows or cols < 1, ErrOptionViolation for an
// unknown connectivity.
// Complexity: O(R×C) time and memory.
func New(rows, cols int, opts ...Option) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrEmptyGrid
	}
	o := DefaultGridOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Neighbor order is part of the contract: it fixes tie-break order in searches.
	var offsets [][2]int
	switch o.Conn {
	case Conn4:
		offsets = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	case Conn8:
		offsets = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	default:
		return nil, fmt.Errorf("%w: connectivity %d", ErrOptionViolation, o.Conn)
	}

	cells := make([]Cell, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cells[r*cols+c].Coord = Coord{Row: r, Col: c}
		}
	}
	g := &Grid{
		rows:            rows,
		cols:            cols,
		conn:            o.Conn,
		cells:           cells,
		neighborOffsets: offsets,
		start:           0,
		end:             -1,
	}
	g.cells[0].role = RoleStart
	g.RefreshNeighbors()

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Conn returns the grid connectivity.
func (g *Grid) Conn() Connectivity { return g.conn }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// NeighborOffsets returns the (row, col) deltas used to build neighbor lists.
func (g *Grid) NeighborOffsets() [][2]int {
	return g.neighborOffsets
}

// index maps c to a row-major index: Row*cols + Col.
func (g *Grid) index(c Coord) int {
	return c.Row*g.cols + c.Col
}

// Coordinate converts a row-major index back to a Coord.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.cols, Col: idx % g.cols}
}

// Cell returns the cell at c, or ErrOutOfBounds.
func (g *Grid) Cell(c Coord) (*Cell, error) {
	if !g.InBounds(c) {
		return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.rows, g.cols)
	}
	return &g.cells[g.index(c)], nil
}

// Cells returns every cell in row-major order.
func (g *Grid) Cells() []*Cell {
	out := make([]*Cell, len(g.cells))
	for i := range g.cells {
		out[i] = &g.cells[i]
	}
	return out
}

// Start returns the cell holding RoleStart. There is always exactly one.
func (g *Grid) Start() *Cell {
	return &g.cells[g.start]
}

// End returns the cell holding RoleEnd, if one has been selected.
func (g *Grid) End() (*Cell, bool) {
	if g.end < 0 {
		return nil, false
	}
	return &g.cells[g.end], true
}

// SetWall paints a wall at c. Start and end cells are never wallable; painting
// one is a silent no-op, as is painting an existing wall.
func (g *Grid) SetWall(c Coord) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	cell, err := g.mutable(c)
	if err != nil {
		return err
	}
	if cell.role != RoleNone || cell.wall {
		return nil
	}
	cell.wall = true
	g.dirty = true

	return nil
}

// ClearWall erases a wall at c.
func (g *Grid) ClearWall(c Coord) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	cell, err := g.mutable(c)
	if err != nil {
		return err
	}
	if cell.wall {
		cell.wall = false
		g.dirty = true
	}

	return nil
}

// SetRole assigns role to the cell at c.
//
// RoleStart and RoleEnd move from their previous holder, so at most one cell
// carries each. A wall at c is erased first. Moving the start onto the end
// cell clears the end; the reverse, and clearing the start with RoleNone,
// return ErrRoleConflict because the grid must always keep one start.
func (g *Grid) SetRole(c Coord, role Role) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	cell, err := g.mutable(c)
	if err != nil {
		return err
	}
	idx := g.index(c)

	switch role {
	case RoleStart:
		if cell.role == RoleStart {
			return nil
		}
		if cell.role == RoleEnd {
			g.end = -1
		}
		g.cells[g.start].role = RoleNone
		g.place(cell, RoleStart)
		g.start = idx
	case RoleEnd:
		switch cell.role {
		case RoleEnd:
			return nil
		case RoleStart:
			return fmt.Errorf("%w: %v holds the start", ErrRoleConflict, c)
		}
		if g.end >= 0 {
			g.cells[g.end].role = RoleNone
		}
		g.place(cell, RoleEnd)
		g.end = idx
	case RoleNone:
		switch cell.role {
		case RoleStart:
			return fmt.Errorf("%w: cannot clear the start at %v", ErrRoleConflict, c)
		case RoleEnd:
			cell.role = RoleNone
			g.end = -1
		}
	default:
		return fmt.Errorf("%w: %d", ErrBadRole, int(role))
	}

	return nil
}

// place assigns a role, erasing any wall under it.
func (g *Grid) place(cell *Cell, role Role) {
	if cell.wall {
		cell.wall = false
		g.dirty = true
	}
	cell.role = role
}

// mutable resolves c for a mutation. Callers hold g.mu.
func (g *Grid) mutable(c Coord) (*Cell, error) {
	if g.running {
		return nil, ErrRunInProgress
	}
	return g.Cell(c)
}

// SetMark writes a visualization mark. Marks may be written during a run.
func (g *Grid) SetMark(c Coord, m Mark) error {
	cell, err := g.Cell(c)
	if err != nil {
		return err
	}
	cell.mark = m

	return nil
}

// ResetMarks clears every visualization mark.
func (g *Grid) ResetMarks() {
	for i := range g.cells {
		g.cells[i].mark = MarkNone
	}
}

// BeginRun claims the grid for a search run. Returns ErrRunInProgress if
// another run already holds it.
func (g *Grid) BeginRun() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.running {
		return ErrRunInProgress
	}
	g.running = true

	return nil
}

// EndRun releases the claim taken by BeginRun.
func (g *Grid) EndRun() {
	g.mu.Lock()
	g.running = false
	g.mu.Unlock()
}
