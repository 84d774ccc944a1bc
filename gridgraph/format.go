package gridgraph

import (
	"fmt"
	"strings"
)

// ASCII map symbols. The mark symbols are written by String and read back as
// free cells, so a dumped grid parses again.
const (
	SymbolFree   = '.'
	SymbolWall   = '#'
	SymbolStart  = 'S'
	SymbolEnd    = 'E'
	SymbolOpen   = 'o'
	SymbolClosed = 'x'
	SymbolPath   = '*'
)

// Parse builds a grid from an ASCII map, one row per line. Blank lines and
// surrounding whitespace are ignored. A map without 'S' keeps the default
// start at (0,0); a wall drawn there is then a role conflict.
// The returned grid has fresh neighbor lists.
func Parse(text string, opts ...Option) (*Grid, error) {
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	g, err := New(len(rows), w, opts...)
	if err != nil {
		return nil, err
	}

	// 1) Scan symbols; roles are placed before walls so wall painting sees them.
	var (
		walls      []Coord
		start, end *Coord
	)
	for r, row := range rows {
		for c := 0; c < len(row); c++ {
			pos := Coord{Row: r, Col: c}
			switch row[c] {
			case SymbolFree, SymbolOpen, SymbolClosed, SymbolPath:
			case SymbolWall:
				walls = append(walls, pos)
			case SymbolStart:
				if start != nil {
					return nil, fmt.Errorf("%w: second start at %v", ErrDuplicateRole, pos)
				}
				start = &pos
			case SymbolEnd:
				if end != nil {
					return nil, fmt.Errorf("%w: second end at %v", ErrDuplicateRole, pos)
				}
				end = &pos
			default:
				return nil, fmt.Errorf("%w: %q at %v", ErrBadSymbol, row[c], pos)
			}
		}
	}

	// 2) Roles.
	if start != nil {
		if err = g.SetRole(*start, RoleStart); err != nil {
			return nil, err
		}
	}
	if end != nil {
		if err = g.SetRole(*end, RoleEnd); err != nil {
			return nil, err
		}
	}

	// 3) Walls. Only the implicit start can collide with one.
	for _, pos := range walls {
		if pos == g.Start().Coord {
			return nil, fmt.Errorf("%w: wall on default start %v", ErrRoleConflict, pos)
		}
		if err = g.SetWall(pos); err != nil {
			return nil, err
		}
	}
	g.RefreshNeighbors()

	return g, nil
}

// String renders the grid as an ASCII map including visualization marks.
// Roles and walls take precedence over marks.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.cols + 1) * g.rows)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			b.WriteByte(g.cells[r*g.cols+c].symbol())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (c *Cell) symbol() byte {
	switch {
	case c.wall:
		return SymbolWall
	case c.role == RoleStart:
		return SymbolStart
	case c.role == RoleEnd:
		return SymbolEnd
	}
	switch c.mark {
	case MarkPath:
		return SymbolPath
	case MarkClosed:
		return SymbolClosed
	case MarkOpen:
		return SymbolOpen
	}
	return SymbolFree
}
