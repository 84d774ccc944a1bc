// Package dijkstra computes single-source shortest distances over the free
// cells of a gridgraph.Grid.
//
// Overview:
//
//   - The grid's cached neighbor lists are the edges; each move costs
//     Options.Weight (Euclidean by default: 1 orthogonal, √2 diagonal).
//   - A min-heap always expands the next-closest cell ("lazy decrease-key":
//     duplicates are pushed and stale entries skipped when popped).
//   - Equal distances pop in push order, so results are deterministic.
//
// When to use:
//
//   - To get every distance from one cell at once (distance fields, reachability
//     radius with WithMaxDistance).
//   - To cross-check A*: with an admissible heuristic, A* finds the same cost.
//
// For an animated run toward a single end cell use astar with heuristic.Zero;
// algorithms.Run does exactly that.
//
// Complexity:
//
//   - Time:  O((V + E) log V), V = free cells, E ≤ d·V (d = 4 or 8)
//   - Space: O(V + E)
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid, ErrStaleNeighbors: invalid grid state.
//   - ErrBadSource: the source is outside the grid or a wall.
//   - ErrBadMaxDistance, ErrNilWeight: invalid options (recorded, not panicked).
//   - ErrUnreachable: PathTo on a cell with no route.
//
// Example:
//
//	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.WithReturnPath())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, _ := dijkstra.PathTo(dist, prev, end)
//
// Thread safety: the grid must not be mutated during a call.
package dijkstra
