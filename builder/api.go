package builder

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Constructor applies a deterministic mutation to g using the resolved
// builderConfig. Constructors validate early and return sentinel errors.
type Constructor func(g *gridgraph.Grid, cfg builderConfig) error

// BuildGrid creates a rows×cols grid with gopts, resolves bopts, applies all
// constructors in order and rebuilds neighbor lists. Constructor errors are
// wrapped as "BuildGrid: %w".
func BuildGrid(rows, cols int, gopts []gridgraph.Option, bopts []BuilderOption, cons ...Constructor) (*gridgraph.Grid, error) {
	g, err := gridgraph.New(rows, cols, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGrid: %w", err)
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGrid: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGrid: %w", err)
		}
	}
	g.RefreshNeighbors()

	return g, nil
}

// Endpoints returns a Constructor that moves the start to s and puts the end
// at e. A wall under either is erased.
func Endpoints(s, e gridgraph.Coord) Constructor {
	return func(g *gridgraph.Grid, _ builderConfig) error {
		if s == e {
			return fmt.Errorf("Endpoints: start and end both at %v: %w", s, ErrConstructFailed)
		}
		if err := g.SetRole(s, gridgraph.RoleStart); err != nil {
			return fmt.Errorf("Endpoints: start %v: %w", s, err)
		}
		if err := g.SetRole(e, gridgraph.RoleEnd); err != nil {
			return fmt.Errorf("Endpoints: end %v: %w", e, err)
		}
		return nil
	}
}
