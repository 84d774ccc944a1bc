// Package bfs provides breadth-first search over a gridgraph.Grid,
// returning move-count distances, parent links, and visit order.
//
// What
//
//   - Explore free cells in non-decreasing move count from a start cell.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: cell → moves from start
//   - Parent: cell → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a cell is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual moves via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Unweighted shortest paths in O(V + E) time: on a 4-connected grid every
//     move costs 1, so BFS finds the same path lengths as A* and Dijkstra.
//   - Reachability and flood fills; algorithms.Run uses it as the uninformed
//     baseline visualization.
//
// Determinism
//
//	Neighbors are enqueued in the grid's cached order (up, down, left, right,
//	then diagonals), so the visit sequence is fully reproducible.
//
// Complexity (V = free cells, E ≤ d·V)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(
//	    g, g.Start().Coord,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithOnVisit(func(c gridgraph.Coord, depth int) error { return nil }),
//	)
//	path, err := res.PathTo(end)
//
// Errors
//
//   - ErrGridNil             if the grid pointer is nil.
//   - ErrStaleNeighbors      if walls changed since RefreshNeighbors.
//   - ErrBadStart            if the start is out of bounds or a wall.
//   - ErrOptionViolation     if invalid Option (e.g. negative MaxDepth).
//   - ErrNoPath              from PathTo for unreached cells.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
