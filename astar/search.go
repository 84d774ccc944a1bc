// Package astar implements A* search over a gridgraph.Grid with a
// deterministic, tie-breaking open set and an optional per-expansion redraw hook.
package astar

import (
	"context"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Search runs A* on g to completion.
//
// It drains a Stepper, so the redraw callback fires once per expanded node.
// On success it returns the Result and nil. When no path exists it returns
// the partial Result (Found=false) and ErrNoPath. A canceled ctx returns the
// partial Result and ctx.Err().
//
// Complexity: O(E log V) time, O(V) memory, V = free cells, E ≤ d·V.
func Search(ctx context.Context, g *gridgraph.Grid, opts ...Option) (Result, error) {
	s, err := NewStepper(g, opts...)
	if err != nil {
		return Result{}, err
	}
	for {
		ev, err := s.Step(ctx)
		if err != nil {
			return s.Result(), err
		}
		if ev.State == StateFound {
			return s.Result(), nil
		}
	}
}
