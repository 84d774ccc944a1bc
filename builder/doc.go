// Package builder generates gridgraph maps: random wall fields, perfect mazes
// and endpoint placement, composed through one deterministic entry point.
//
// The package offers:
//
//   - BuildGrid(rows, cols, gopts, bopts, cons...): creates the grid, resolves
//     builder options, applies constructors in order, refreshes neighbors.
//   - Constructors:
//     – RandomWalls(p):    each free non-role cell becomes a wall with probability p.
//     – Maze():            perfect maze carved by randomized depth-first search.
//     – WilsonMaze():      perfect maze from loop-erased random walks (uniform).
//     – Endpoints(s, e):   moves the start and places the end.
//   - Options:
//     – WithSeed(seed):    reproducible RNG.
//     – WithRand(r):       explicit RNG.
//
// Guarantees:
//
//   - Determinism: same sizes, options, seed and constructor order ⇒ identical maps.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     constructor name. Option constructors panic on nil arguments.
//   - The returned grid has fresh neighbor lists.
//
// Complexity: every constructor is O(rows×cols).
package builder
