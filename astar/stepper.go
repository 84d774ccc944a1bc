package astar

import (
	"container/heap"
	"context"
	"errors"
	"fmt"
	"iter"
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/heuristic"
)

// Stepper runs A* one expansion at a time. It owns the search state for a
// single run and is discarded afterwards; it cannot be restarted.
//
// The grid must not be mutated while a Stepper is live. algorithms.Run
// enforces this with gridgraph's BeginRun/EndRun.
type Stepper struct {
	grid       *gridgraph.Grid
	start, end gridgraph.Coord
	h, cost    heuristic.Func
	opts       Options

	gScore   map[gridgraph.Coord]float64
	fScore   map[gridgraph.Coord]float64
	cameFrom map[gridgraph.Coord]gridgraph.Coord
	open     openQueue
	inOpen   map[gridgraph.Coord]struct{} // mirrors live entries of open
	seq      uint64

	state State
	order []gridgraph.Coord
	path  []gridgraph.Coord
}

// NewStepper validates the grid and seeds the open set with the start cell.
//
// Preconditions, in order:
//  1. Options are valid (ErrOptionViolation).
//  2. g is non-nil (ErrNilGrid).
//  3. Neighbor lists are fresh (ErrStaleNeighbors).
//  4. An end exists, from the grid or WithEndpoints (ErrNoEnd).
//  5. Overridden endpoints are in bounds and free (ErrBadEndpoint).
func NewStepper(g *gridgraph.Grid, opts ...Option) (*Stepper, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	if g.Stale() {
		return nil, ErrStaleNeighbors
	}

	start := g.Start().Coord
	if o.start != nil {
		start = *o.start
	}
	var end gridgraph.Coord
	switch {
	case o.end != nil:
		end = *o.end
	default:
		cell, ok := g.End()
		if !ok {
			return nil, ErrNoEnd
		}
		end = cell.Coord
	}
	for _, c := range []gridgraph.Coord{start, end} {
		cell, err := g.Cell(c)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadEndpoint, err)
		}
		if cell.IsWall() {
			return nil, fmt.Errorf("%w: %v is a wall", ErrBadEndpoint, c)
		}
	}

	cost := o.StepCost
	if cost == nil {
		cost = o.Heuristic
	}
	s := &Stepper{
		grid:     g,
		start:    start,
		end:      end,
		h:        o.Heuristic,
		cost:     cost,
		opts:     o,
		gScore:   make(map[gridgraph.Coord]float64),
		fScore:   make(map[gridgraph.Coord]float64),
		cameFrom: make(map[gridgraph.Coord]gridgraph.Coord),
		inOpen:   make(map[gridgraph.Coord]struct{}),
		state:    StateReady,
	}
	if o.Marks {
		g.ResetMarks()
	}

	// gScore[start]=0, fScore[start]=h(start,end); the open set holds only the start.
	s.gScore[start] = 0
	s.fScore[start] = s.h(start, end)
	heap.Init(&s.open)
	s.push(start, s.fScore[start])

	return s, nil
}

// push enqueues c with the next insertion number and records membership.
func (s *Stepper) push(c gridgraph.Coord, priority float64) {
	heap.Push(&s.open, openEntry{coord: c, priority: priority, seq: s.seq})
	s.seq++
	s.inOpen[c] = struct{}{}
}

// Step expands one cell.
//
//  1. Pop the entry with the lowest (f, insertion order).
//  2. If it is the end: Found, reconstruct and mark the path.
//  3. Drop it from open membership.
//  4. Relax each neighbor: tentative = g[cur] + cost(cur, nb); on strict
//     improvement record the predecessor and scores, and enqueue it unless
//     already open.
//  5. Invoke Redraw once.
//  6. Mark the cell closed unless it is the start.
//
// An empty open set yields StateExhausted and ErrNoPath. A done ctx is
// checked before popping and yields StateCanceled and ctx.Err(). After any
// terminal state Step returns ErrSearchDone.
func (s *Stepper) Step(ctx context.Context) (Event, error) {
	if s.state.Terminal() {
		return Event{Step: len(s.order), State: s.state}, ErrSearchDone
	}
	if err := ctx.Err(); err != nil {
		s.state = StateCanceled
		return Event{Step: len(s.order), State: s.state}, err
	}
	if s.open.Len() == 0 {
		s.state = StateExhausted
		return Event{Step: len(s.order), State: s.state}, ErrNoPath
	}
	s.state = StateRunning

	// 1) Pop.
	entry := heap.Pop(&s.open).(openEntry)
	cur := entry.coord
	s.order = append(s.order, cur)
	ev := Event{
		Step:    len(s.order),
		Current: cur,
		F:       entry.priority,
		G:       s.gScore[cur],
	}

	// 2) Goal check.
	if cur == s.end {
		delete(s.inOpen, cur)
		s.state = StateFound
		s.path = Reconstruct(s.cameFrom, cur)
		if s.opts.Marks {
			MarkPath(s.grid, s.path)
		}
		ev.State = s.state
		s.emit(ev)
		return ev, nil
	}

	// 3) Leave the open set.
	delete(s.inOpen, cur)

	// 4) Relax neighbors.
	cell, err := s.grid.Cell(cur)
	if err != nil {
		return ev, err
	}
	for _, nb := range cell.Neighbors() {
		next := nb.Coord
		if next == s.start {
			// g[start] is 0 and costs are non-negative; never give the start a predecessor.
			continue
		}
		tentative := s.gScore[cur] + s.cost(cur, next)
		if tentative >= s.GScore(next) {
			continue
		}
		s.cameFrom[next] = cur
		s.gScore[next] = tentative
		s.fScore[next] = tentative + s.h(next, s.end)
		if _, open := s.inOpen[next]; open {
			continue
		}
		s.push(next, s.fScore[next])
		ev.Opened = append(ev.Opened, next)
		if s.opts.Marks {
			_ = s.grid.SetMark(next, gridgraph.MarkOpen)
		}
	}

	// 5) One frame per expanded node.
	if s.opts.Redraw != nil {
		s.opts.Redraw()
	}

	// 6) Explored.
	if s.opts.Marks && cur != s.start {
		_ = s.grid.SetMark(cur, gridgraph.MarkClosed)
	}

	ev.State = s.state
	s.emit(ev)
	return ev, nil
}

func (s *Stepper) emit(ev Event) {
	if s.opts.OnExpand != nil {
		s.opts.OnExpand(ev)
	}
}

// Events returns the expansions as a lazy, finite sequence. Each pair is an
// expansion Event and a nil error; a terminal failure (ErrNoPath or a context
// error) is yielded once as the final pair. The sequence can be drained only
// once.
func (s *Stepper) Events(ctx context.Context) iter.Seq2[Event, error] {
	return func(yield func(Event, error) bool) {
		for !s.state.Terminal() {
			ev, err := s.Step(ctx)
			if errors.Is(err, ErrSearchDone) {
				return
			}
			if !yield(ev, err) || err != nil {
				return
			}
		}
	}
}

// State returns the current lifecycle state.
func (s *Stepper) State() State { return s.state }

// Start returns the start coordinate of this run.
func (s *Stepper) Start() gridgraph.Coord { return s.start }

// End returns the end coordinate of this run.
func (s *Stepper) End() gridgraph.Coord { return s.end }

// GScore returns the best known cost from the start to c, +Inf if undiscovered.
func (s *Stepper) GScore(c gridgraph.Coord) float64 {
	if g, ok := s.gScore[c]; ok {
		return g
	}
	return math.Inf(1)
}

// FScore returns g + h for c, +Inf if undiscovered.
func (s *Stepper) FScore(c gridgraph.Coord) float64 {
	if f, ok := s.fScore[c]; ok {
		return f
	}
	return math.Inf(1)
}

// InOpen reports whether c currently has an entry in the open set.
func (s *Stepper) InOpen(c gridgraph.Coord) bool {
	_, ok := s.inOpen[c]
	return ok
}

// OpenLen returns the number of entries in the open set.
func (s *Stepper) OpenLen() int { return s.open.Len() }

// Expanded returns the number of expanded cells so far.
func (s *Stepper) Expanded() int { return len(s.order) }

// Path returns the start → end path once Found, nil otherwise.
func (s *Stepper) Path() []gridgraph.Coord {
	if s.path == nil {
		return nil
	}
	return append([]gridgraph.Coord(nil), s.path...)
}

// CameFrom returns a copy of the predecessor map.
func (s *Stepper) CameFrom() map[gridgraph.Coord]gridgraph.Coord {
	out := make(map[gridgraph.Coord]gridgraph.Coord, len(s.cameFrom))
	for k, v := range s.cameFrom {
		out[k] = v
	}
	return out
}

// Result summarizes the run so far.
func (s *Stepper) Result() Result {
	r := Result{
		Found:    s.state == StateFound,
		Expanded: len(s.order),
		Order:    append([]gridgraph.Coord(nil), s.order...),
	}
	if r.Found {
		r.Path = s.Path()
		r.Cost = s.gScore[s.end]
	}
	return r
}
