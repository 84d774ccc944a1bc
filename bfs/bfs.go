// Package bfs provides breadth-first search over a gridgraph.Grid,
// returning move-count distances, parent links, and visit order.
//
// BFS explores cells in increasing distance from a start cell,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	c     gridgraph.Coord
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	grid    *gridgraph.Grid
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[gridgraph.Coord]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGridNil, ErrStaleNeighbors or ErrBadStart for invalid input,
// ErrOptionViolation for bad options, a context error on cancellation,
// or any user-supplied hook error (wrapped).
func BFS(g *gridgraph.Grid, start gridgraph.Coord, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate grid and start cell
	if g.Stale() {
		return nil, ErrStaleNeighbors
	}
	cell, err := g.Cell(start)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadStart, err)
	}
	if cell.IsWall() {
		return nil, fmt.Errorf("%w: %v", ErrBadStart, start)
	}

	// Prepare walker
	n := g.Rows() * g.Cols()
	w := &walker{
		grid:    g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[gridgraph.Coord]bool, n),
		res: &BFSResult{
			Order:  make([]gridgraph.Coord, 0, n),
			Depth:  make(map[gridgraph.Coord]int, n),
			Parent: make(map[gridgraph.Coord]gridgraph.Coord, n),
		},
	}

	// Seed queue with start cell (no parent)
	w.enqueue(start, 0, nil)
	// Main loop
	return w.res, w.loop()
}

// enqueue marks c visited at depth d, records its parent, calls OnEnqueue,
// and adds it to the queue.
func (w *walker) enqueue(c gridgraph.Coord, d int, parent *gridgraph.Coord) {
	w.visited[c] = true
	w.res.Depth[c] = d
	if parent != nil {
		w.res.Parent[c] = *parent
	}
	w.opts.OnEnqueue(c, d)
	w.queue = append(w.queue, queueItem{c: c, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
		w.opts.OnExpand(item.c, item.depth)
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.c, item.depth)
	return item
}

// visit records the cell in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.c)
	if err := w.opts.OnVisit(item.c, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.c, err)
	}
	return nil
}

// enqueueNeighbors walks the cached neighbor list in grid order, applies
// filtering and MaxDepth, and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	cell, _ := w.grid.Cell(item.c) // in bounds: every queued coord came from the grid
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nb := range cell.Neighbors() {
		if !w.opts.FilterNeighbor(item.c, nb.Coord) {
			continue
		}
		// first time seen?
		if !w.visited[nb.Coord] {
			parent := item.c
			w.enqueue(nb.Coord, nextDepth, &parent)
		}
	}
}
