package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/heuristic"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed to Dijkstra.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrStaleNeighbors indicates walls changed since the last RefreshNeighbors.
	ErrStaleNeighbors = errors.New("dijkstra: neighbor lists are stale")

	// ErrBadSource indicates the source is out of bounds or a wall.
	ErrBadSource = errors.New("dijkstra: source is out of bounds or a wall")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrNilWeight indicates a nil step-weight function.
	ErrNilWeight = errors.New("dijkstra: weight function is nil")

	// ErrUnreachable indicates PathTo was asked for a cell with no recorded route.
	ErrUnreachable = errors.New("dijkstra: destination unreachable")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting cell; nil means the grid's start cell.
// ReturnPath  – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance – cells whose distance would exceed it are not explored.
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// Weight      – cost of one move between neighbors. Default heuristic.Euclidean
//
//	(1 orthogonal, √2 diagonal).
type Options struct {
	Source      *gridgraph.Coord
	ReturnPath  bool
	MaxDistance float64
	Weight      heuristic.Func

	err error // first invalid option, surfaced by Dijkstra
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting cell, overriding the grid's start.
func Source(c gridgraph.Coord) Option {
	return func(o *Options) {
		o.Source = &c
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If unset, the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// A negative value is recorded and Dijkstra returns ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 {
			if o.err == nil {
				o.err = ErrBadMaxDistance
			}
			return
		}
		o.MaxDistance = max
	}
}

// WithWeight sets the move cost between adjacent cells. It must be
// non-negative for every neighbor pair.
func WithWeight(w heuristic.Func) Option {
	return func(o *Options) {
		if w == nil {
			if o.err == nil {
				o.err = ErrNilWeight
			}
			return
		}
		o.Weight = w
	}
}

// DefaultOptions returns the defaults: grid start as source, no predecessor
// map, no distance cap, Euclidean step weight.
func DefaultOptions() Options {
	return Options{
		ReturnPath:  false,
		MaxDistance: math.Inf(1),
		Weight:      heuristic.Euclidean,
	}
}
