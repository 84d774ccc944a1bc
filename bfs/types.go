// Package bfs provides tunable options and error definitions
// for breadth‐first search over a gridgraph.Grid.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors for BFS execution.
var (
	// ErrBadStart is returned when the start cell is out of bounds or a wall.
	ErrBadStart = errors.New("bfs: start cell is out of bounds or a wall")

	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrStaleNeighbors is returned when walls changed since the last RefreshNeighbors.
	ErrStaleNeighbors = errors.New("bfs: neighbor lists are stale")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for a cell the traversal never reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a cell is enqueued, before visiting.
	// Receives the cell and its depth from the start.
	OnEnqueue func(c gridgraph.Coord, depth int)

	// OnDequeue is called immediately before visiting a cell.
	OnDequeue func(c gridgraph.Coord, depth int)

	// OnVisit is called when visiting a cell. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(c gridgraph.Coord, depth int) error

	// OnExpand is called after a visited cell's neighbors have been
	// enqueued, so the hook sees the frontier that cell produced.
	OnExpand func(c gridgraph.Coord, depth int)

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip moves by returning false.
	// Called for each move curr→neighbor.
	FilterNeighbor func(curr, neighbor gridgraph.Coord) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all neighbors allowed)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit, OnExpand)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnEnqueue:      func(gridgraph.Coord, int) {},
		OnDequeue:      func(gridgraph.Coord, int) {},
		OnVisit:        func(gridgraph.Coord, int) error { return nil },
		OnExpand:       func(gridgraph.Coord, int) {},
		MaxDepth:       0,
		FilterNeighbor: func(_, _ gridgraph.Coord) bool { return true },
		err:            nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(c gridgraph.Coord, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(c gridgraph.Coord, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(c gridgraph.Coord, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnExpand registers a callback to run once a cell's neighbors are enqueued.
func WithOnExpand(fn func(c gridgraph.Coord, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (exclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor gridgraph.Coord) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: cells visited, in visit sequence.
//   - Depth: cell → distance in moves from the start.
//   - Parent: cell → predecessor in the BFS tree.
type BFSResult struct {
	Order  []gridgraph.Coord
	Depth  map[gridgraph.Coord]int
	Parent map[gridgraph.Coord]gridgraph.Coord
}

// PathTo reconstructs the path from the start cell to dest.
// Returns ErrNoPath if dest was not reached.
func (r *BFSResult) PathTo(dest gridgraph.Coord) ([]gridgraph.Coord, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w to %v", ErrNoPath, dest)
	}
	// build reversed path
	path := []gridgraph.Coord{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
