package algorithms

import (
	"context"
	"errors"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/heuristic"
)

// errReachedEnd stops the BFS walker once the end cell is visited.
var errReachedEnd = errors.New("algorithms: end reached")

// Run searches g with alg and leaves visualization marks on the grid.
//
//  1. No end cell: return Outcome{Ran: false} and nil.
//  2. Claim the grid (gridgraph.ErrRunInProgress if already claimed).
//  3. Rebuild neighbor lists from the current walls.
//  4. Dispatch; release the grid on return.
//
// An unreachable end returns the partial Outcome and astar.ErrNoPath.
// A canceled ctx returns the partial Outcome and ctx.Err().
func Run(ctx context.Context, g *gridgraph.Grid, alg Algorithm, opts ...Option) (Outcome, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Outcome{}, o.err
	}
	if g == nil {
		return Outcome{}, ErrNilGrid
	}

	// 1) Nothing to search for.
	if _, ok := g.End(); !ok {
		return Outcome{Algorithm: alg}, nil
	}

	// 2) Claim.
	if err := g.BeginRun(); err != nil {
		return Outcome{Algorithm: alg}, err
	}
	defer g.EndRun()

	// 3) Refresh.
	g.RefreshNeighbors()

	// 4) Dispatch.
	switch alg {
	case AStar:
		return runAStar(ctx, g, alg, astar.WithHeuristic(o.Heuristic), astar.WithRedraw(o.Redraw))
	case Dijkstra:
		return runAStar(ctx, g, alg,
			astar.WithHeuristic(heuristic.Zero),
			astar.WithStepCost(heuristic.Euclidean),
			astar.WithRedraw(o.Redraw),
		)
	case BFS:
		return runBFS(ctx, g, o.Redraw)
	}
	return Outcome{Algorithm: alg}, ErrUnknownAlgorithm
}

func runAStar(ctx context.Context, g *gridgraph.Grid, alg Algorithm, opts ...astar.Option) (Outcome, error) {
	res, err := astar.Search(ctx, g, opts...)
	return Outcome{
		Ran:       true,
		Algorithm: alg,
		Found:     res.Found,
		Path:      res.Path,
		Cost:      res.Cost,
		Expanded:  res.Expanded,
		Order:     res.Order,
	}, err
}

// runBFS walks outward from the start, painting the same marks as the A*
// engine: enqueued cells open, visited cells closed, the final route path.
func runBFS(ctx context.Context, g *gridgraph.Grid, redraw func()) (Outcome, error) {
	start := g.Start().Coord
	endCell, _ := g.End()
	end := endCell.Coord
	g.ResetMarks()

	onEnqueue := func(c gridgraph.Coord, _ int) {
		if c != start {
			_ = g.SetMark(c, gridgraph.MarkOpen)
		}
	}
	onVisit := func(c gridgraph.Coord, _ int) error {
		if c == end {
			return errReachedEnd
		}
		return nil
	}
	// one frame per expanded cell, drawn once its neighbors are open
	onExpand := func(c gridgraph.Coord, _ int) {
		if redraw != nil {
			redraw()
		}
		if c != start {
			_ = g.SetMark(c, gridgraph.MarkClosed)
		}
	}

	res, err := bfs.BFS(g, start,
		bfs.WithContext(ctx),
		bfs.WithOnEnqueue(onEnqueue),
		bfs.WithOnVisit(onVisit),
		bfs.WithOnExpand(onExpand),
	)
	out := Outcome{Ran: true, Algorithm: BFS}
	if res != nil {
		out.Order = res.Order
		out.Expanded = len(res.Order)
	}
	switch {
	case errors.Is(err, errReachedEnd):
		path, perr := res.PathTo(end)
		if perr != nil {
			return out, perr
		}
		astar.MarkPath(g, path)
		out.Found = true
		out.Path = path
		out.Cost = pathCost(path)
		return out, nil
	case err != nil:
		return out, err
	}
	return out, astar.ErrNoPath
}

// pathCost sums Euclidean move costs along path.
func pathCost(path []gridgraph.Coord) float64 {
	var cost float64
	for i := 1; i < len(path); i++ {
		cost += heuristic.Euclidean(path[i-1], path[i])
	}
	return cost
}
