// Package gridgraph models the 2D grid that pathfinding searches run over.
//
// What:
//
//   - Grid owns a fixed Rows×Cols array of cells, created once and then only mutated.
//   - Each cell has a wall flag, a role (none/start/end) and a visualization mark.
//   - Each free cell caches its traversable neighbors (Conn4 or Conn8).
//   - Parse and String convert between grids and ASCII maps.
//   - ConnectedComponents groups free cells into reachable regions.
//
// Why:
//
//   - Searches need O(1) neighbor access, so neighbor lists are precomputed.
//   - Precomputed lists go stale when walls change. The grid records that in a
//     dirty flag (Stale) instead of trusting callers to remember RefreshNeighbors.
//   - Editing a grid while a search walks it is undefined, so BeginRun/EndRun
//     make the run exclusive.
//
// Invariants:
//
//   - Exactly one cell holds RoleStart; at most one holds RoleEnd.
//   - Start and end cells are never walls.
//   - Neighbor order is up, down, left, right (then the diagonals for Conn8).
//
// Complexity:
//
//   - New, RefreshNeighbors: O(R×C×d), Memory: O(R×C×d)   (d = 4 or 8).
//   - SetWall, ClearWall, SetRole, Cell: O(1).
//   - ConnectedComponents: O(R×C×d), Memory: O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: ASCII map rows differ in length.
//   - ErrOutOfBounds: coordinate outside the grid (always rejected, never clamped).
//   - ErrBadSymbol, ErrDuplicateRole: malformed ASCII map.
//   - ErrRoleConflict: a role change would leave the grid without a start.
//   - ErrRunInProgress: mutation attempted while a search holds the grid.
package gridgraph
