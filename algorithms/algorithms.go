package algorithms

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/heuristic"
)

// Sentinel errors for dispatch.
var (
	// ErrUnknownAlgorithm is returned by Parse for an unrecognized name.
	ErrUnknownAlgorithm = errors.New("algorithms: unknown algorithm")

	// ErrNilGrid is returned when Run receives a nil grid.
	ErrNilGrid = errors.New("algorithms: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("algorithms: invalid option supplied")
)

// Algorithm names a search strategy.
type Algorithm int

const (
	AStar Algorithm = iota
	Dijkstra
	BFS
)

func (a Algorithm) String() string {
	switch a {
	case AStar:
		return "astar"
	case Dijkstra:
		return "dijkstra"
	case BFS:
		return "bfs"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Parse resolves a case-insensitive algorithm name. "" means AStar.
func Parse(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "astar", "a*", "a-star":
		return AStar, nil
	case "dijkstra":
		return Dijkstra, nil
	case "bfs":
		return BFS, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Names lists the canonical algorithm names.
func Names() []string {
	return []string{AStar.String(), Dijkstra.String(), BFS.String()}
}

// Outcome is the algorithm-independent result of Run.
type Outcome struct {
	// Ran is false when the grid had no end cell and nothing was searched.
	Ran       bool
	Algorithm Algorithm
	Found     bool
	Path      []gridgraph.Coord
	Cost      float64
	Expanded  int
	Order     []gridgraph.Coord
}

// Steps returns the number of moves along Path.
func (o Outcome) Steps() int {
	if len(o.Path) == 0 {
		return 0
	}
	return len(o.Path) - 1
}

// Options configures Run.
type Options struct {
	// Heuristic guides AStar; ignored by Dijkstra and BFS.
	Heuristic heuristic.Func
	// Redraw is invoked once per expanded cell.
	Redraw func()

	err error
}

// Option configures Run via functional arguments.
type Option func(*Options)

// DefaultOptions returns the Euclidean heuristic and no redraw hook.
func DefaultOptions() Options {
	return Options{Heuristic: heuristic.Euclidean}
}

// WithHeuristic sets the AStar heuristic. nil is an ErrOptionViolation.
func WithHeuristic(h heuristic.Func) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: nil heuristic", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}

// WithRedraw registers the per-expansion redraw callback.
func WithRedraw(fn func()) Option {
	return func(o *Options) { o.Redraw = fn }
}
