package gridgraph

// RefreshNeighbors rebuilds every cell's neighbor list from the current wall
// configuration, skipping out-of-bounds positions and walls, and clears the
// stale flag. It must run after any wall mutation and before a search.
// Walls themselves get an empty list. Every cell gets a new slice, so a list
// obtained from Neighbors before the refresh is never rewritten.
// Complexity: O(R×C×d), d = 4 or 8.
func (g *Grid) RefreshNeighbors() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i := range g.cells {
		cell := &g.cells[i]
		cell.neighbors = nil
		if cell.wall {
			continue
		}
		nbs := make([]*Cell, 0, len(g.neighborOffsets))
		for _, d := range g.neighborOffsets {
			n := Coord{Row: cell.Row + d[0], Col: cell.Col + d[1]}
			if !g.InBounds(n) {
				continue
			}
			nb := &g.cells[g.index(n)]
			if nb.wall {
				continue
			}
			nbs = append(nbs, nb)
		}
		cell.neighbors = nbs
	}
	g.dirty = false
}

// Stale reports whether walls changed since the last RefreshNeighbors.
func (g *Grid) Stale() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.dirty
}
