// Package heuristic provides distance estimates between grid coordinates for
// informed searches.
//
// Every function here is symmetric, non-negative and zero when a == b.
// Euclidean is the reference heuristic: it never overestimates the remaining
// cost under unit-cost 4- or 8-directional movement, so A* stays optimal.
//
// The early drafts of this project estimated distance as |dx| - |dy|, which
// can be negative and is not admissible. That formula is deliberately absent.
package heuristic

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// ErrUnknownHeuristic is returned by ByName for an unrecognized name.
var ErrUnknownHeuristic = errors.New("heuristic: unknown heuristic")

// Func returns the estimated cost of moving from a to b.
type Func func(a, b gridgraph.Coord) float64

// Euclidean is the straight-line distance sqrt(dr² + dc²).
func Euclidean(a, b gridgraph.Coord) float64 {
	dr, dc := deltas(a, b)
	return math.Hypot(float64(dr), float64(dc))
}

// Manhattan is dr + dc. Admissible for 4-directional movement only.
func Manhattan(a, b gridgraph.Coord) float64 {
	dr, dc := deltas(a, b)
	return float64(dr + dc)
}

// Octile is the exact cost on an open 8-connected grid where diagonal
// steps cost √2.
func Octile(a, b gridgraph.Coord) float64 {
	dr, dc := deltas(a, b)
	lo, hi := min(dr, dc), max(dr, dc)
	return float64(hi-lo) + math.Sqrt2*float64(lo)
}

// Chebyshev is max(dr, dc): the step count when diagonals cost 1.
func Chebyshev(a, b gridgraph.Coord) float64 {
	dr, dc := deltas(a, b)
	return float64(max(dr, dc))
}

// Zero always returns 0, which turns A* into Dijkstra's algorithm.
func Zero(_, _ gridgraph.Coord) float64 {
	return 0
}

// deltas returns the absolute row and column differences.
func deltas(a, b gridgraph.Coord) (dr, dc int) {
	dr, dc = a.Row-b.Row, a.Col-b.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr, dc
}

// Names lists the names accepted by ByName.
func Names() []string {
	return []string{"euclidean", "manhattan", "octile", "chebyshev", "zero"}
}

// ByName resolves a case-insensitive heuristic name.
func ByName(name string) (Func, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "euclidean", "":
		return Euclidean, nil
	case "manhattan":
		return Manhattan, nil
	case "octile":
		return Octile, nil
	case "chebyshev":
		return Chebyshev, nil
	case "zero", "none":
		return Zero, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
}
