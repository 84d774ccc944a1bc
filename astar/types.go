// Package astar defines the options, states, events and sentinel errors for
// A* search over a gridgraph.Grid.
package astar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/heuristic"
)

// Sentinel errors returned by the search engine.
var (
	// ErrNilGrid indicates a nil *gridgraph.Grid.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrNoEnd indicates the grid has no end cell and no endpoint override was given.
	ErrNoEnd = errors.New("astar: no end cell selected")

	// ErrStaleNeighbors indicates walls changed since the last RefreshNeighbors.
	ErrStaleNeighbors = errors.New("astar: neighbor lists are stale; call RefreshNeighbors")

	// ErrBadEndpoint indicates an endpoint override that is out of bounds or a wall.
	ErrBadEndpoint = errors.New("astar: endpoint is out of bounds or a wall")

	// ErrNoPath indicates the open set emptied without reaching the end.
	// It is a final answer for the current walls, not a retryable failure.
	ErrNoPath = errors.New("astar: no path exists")

	// ErrSearchDone indicates Step was called after the search terminated.
	ErrSearchDone = errors.New("astar: search already finished")

	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// State is the search lifecycle: Ready → Running → {Found, Exhausted}.
// Canceled is entered when the context ends between expansions.
type State int

const (
	StateReady State = iota
	StateRunning
	StateFound
	StateExhausted
	StateCanceled
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StateFound:
		return "found"
	case StateExhausted:
		return "exhausted"
	case StateCanceled:
		return "canceled"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Terminal reports whether no further steps are possible.
func (s State) Terminal() bool {
	return s == StateFound || s == StateExhausted || s == StateCanceled
}

// Event describes one node expansion.
type Event struct {
	// Step is the 1-based expansion index.
	Step int
	// Current is the expanded cell.
	Current gridgraph.Coord
	// F is the priority Current was popped with; G its cost from the start.
	F, G float64
	// Opened lists cells newly added to the open set by this expansion.
	Opened []gridgraph.Coord
	// State is the search state after the expansion.
	State State
}

// Result is the outcome of a completed search.
type Result struct {
	Found    bool
	Path     []gridgraph.Coord // start → end inclusive; nil when not found
	Cost     float64           // g-score of the end cell
	Expanded int               // number of popped-and-expanded cells
	Order    []gridgraph.Coord // expansion order
}

// Steps returns the number of moves along Path.
func (r Result) Steps() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// Options configures a search run.
type Options struct {
	// Heuristic estimates the remaining cost to the end. Default Euclidean.
	Heuristic heuristic.Func

	// StepCost is the cost of moving between neighbors. When nil the
	// heuristic is used, so Euclidean yields 1 per orthogonal step.
	StepCost heuristic.Func

	// Redraw is invoked once per expanded node, after its neighbors are
	// processed. It must only read grid state.
	Redraw func()

	// OnExpand receives the Event of every expansion.
	OnExpand func(Event)

	// Marks controls whether the run writes open/closed/path marks on the grid.
	Marks bool

	start, end *gridgraph.Coord
	err        error
}

// Option configures a search via functional arguments. Invalid options are
// recorded and surfaced as ErrOptionViolation when the search is created.
type Option func(*Options)

// DefaultOptions returns Euclidean heuristic and step cost, marks enabled,
// no callbacks.
func DefaultOptions() Options {
	return Options{
		Heuristic: heuristic.Euclidean,
		Marks:     true,
	}
}

// WithHeuristic replaces the default Euclidean heuristic.
func WithHeuristic(h heuristic.Func) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: nil heuristic", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}

// WithStepCost sets the neighbor-to-neighbor move cost independently of the heuristic.
func WithStepCost(cost heuristic.Func) Option {
	return func(o *Options) {
		if cost == nil {
			o.err = fmt.Errorf("%w: nil step cost", ErrOptionViolation)
			return
		}
		o.StepCost = cost
	}
}

// WithRedraw registers the per-expansion redraw callback.
func WithRedraw(fn func()) Option {
	return func(o *Options) { o.Redraw = fn }
}

// WithOnExpand registers a callback receiving each expansion Event.
func WithOnExpand(fn func(Event)) Option {
	return func(o *Options) { o.OnExpand = fn }
}

// WithMarks enables or disables writing visualization marks on the grid.
func WithMarks(enabled bool) Option {
	return func(o *Options) { o.Marks = enabled }
}

// WithEndpoints searches from start to end instead of the grid's role cells.
// start and end may be equal.
func WithEndpoints(start, end gridgraph.Coord) Option {
	return func(o *Options) {
		o.start, o.end = &start, &end
	}
}
