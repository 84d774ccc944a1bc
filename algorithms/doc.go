// Package algorithms dispatches a named search algorithm over a
// gridgraph.Grid and reports a uniform Outcome.
//
// It provides:
//
//   - AStar    – informed search with a configurable heuristic (astar).
//   - Dijkstra – A* with heuristic.Zero and Euclidean step cost, so it animates
//     through the same engine and redraw hook.
//   - BFS      – move-count breadth-first search (bfs), stopped at the end cell.
//
// Run owns the run lifecycle: it is a no-op when the grid has no end cell,
// otherwise it claims the grid (BeginRun), refreshes neighbor lists,
// dispatches, and releases the grid (EndRun) on every return path.
// Every algorithm reports an unreachable end as astar.ErrNoPath.
package algorithms
