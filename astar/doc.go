// Package astar provides A* shortest-path search on a gridgraph.Grid.
//
// Overview:
//
//   - NewStepper seeds a run; Stepper.Step expands exactly one cell and reports it
//     as an Event, so callers drive the search at their own pace (an animation
//     frame, a debugger, a test asserting intermediate state).
//   - Stepper.Events exposes the same run as a lazy iter.Seq2.
//   - Search drains a Stepper to completion, invoking the Redraw callback once per
//     expansion.
//   - Reconstruct and MarkPath turn the predecessor map into a path.
//
// Algorithm:
//
//   - gScore[start]=0, fScore[start]=h(start,end); the open set holds only start.
//   - Each step pops the lowest (fScore, insertion order) entry. Equal priorities
//     leave in FIFO order, so identical grids always expand identically.
//   - A neighbor is relaxed on strict improvement of g; it is enqueued only if it
//     is not already open (membership is mirrored in a map for O(1) checks).
//   - The move cost between neighbors is the heuristic itself unless WithStepCost
//     overrides it; with Euclidean that is 1 orthogonally and √2 diagonally.
//
// States:
//
//	Ready → Running → Found | Exhausted      (Canceled when ctx ends between steps)
//
// Complexity:
//
//   - Time:  O(E log V), V = free cells, E ≤ 4V (8V for Conn8).
//   - Space: O(V) for scores, predecessors and the open set.
//
// Errors (sentinel):
//
//   - ErrNilGrid, ErrNoEnd, ErrStaleNeighbors, ErrBadEndpoint, ErrOptionViolation:
//     the run could not start.
//   - ErrNoPath: the end is unreachable under the current walls. Not retryable
//     until the grid changes.
//   - ErrSearchDone: Step called after a terminal state.
//
// The grid must not be mutated during a run, and Redraw must only read it.
package astar
