package gridgraph

// ConnectedComponents finds all regions of mutually reachable free cells,
// following the cached neighbor lists (refresh first after wall edits).
// Components are ordered by their first cell in row-major order; cells
// within a component appear in breadth-first discovery order.
//
// Time:   O(R·C·d), where d = 4 or 8.
// Memory: O(R·C) for visited flags and output.
func (g *Grid) ConnectedComponents() [][]Coord {
	seen := make([]bool, len(g.cells))
	var comps [][]Coord

	for i0 := range g.cells {
		if g.cells[i0].wall || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []*Cell{&g.cells[i0]}
		seen[i0] = true
		var comp []Coord

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u.Coord)
			for _, v := range u.neighbors {
				vi := g.index(v.Coord)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}

// Connected reports whether a and b lie in the same free region.
// Returns false when either is a wall or out of bounds.
func (g *Grid) Connected(a, b Coord) bool {
	if !g.InBounds(a) || !g.InBounds(b) {
		return false
	}
	for _, comp := range g.ConnectedComponents() {
		var hasA, hasB bool
		for _, c := range comp {
			hasA = hasA || c == a
			hasB = hasB || c == b
		}
		if hasA || hasB {
			return hasA && hasB
		}
	}
	return false
}
