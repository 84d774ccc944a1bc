package builder

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

const methodRandomWalls = "RandomWalls"

// RandomWalls returns a Constructor that turns each non-role cell into a wall
// with probability p, scanning in row-major order. Requires an RNG.
func RandomWalls(p float64) Constructor {
	return func(g *gridgraph.Grid, cfg builderConfig) error {
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%v: %w", methodRandomWalls, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomWalls, ErrNeedRandSource)
		}
		for _, cell := range g.Cells() {
			// one draw per cell keeps the sequence independent of roles
			if cfg.rng.Float64() >= p || cell.Role() != gridgraph.RoleNone {
				continue
			}
			if err := g.SetWall(cell.Coord); err != nil {
				return fmt.Errorf("%s: %w", methodRandomWalls, err)
			}
		}
		return nil
	}
}
