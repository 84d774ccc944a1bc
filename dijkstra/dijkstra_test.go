// Package dijkstra_test contains unit tests for Dijkstra over grids.
package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/heuristic"
)

func mustParse(t *testing.T, text string, opts ...gridgraph.Option) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.Parse(text, opts...)
	require.NoError(t, err)
	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_Validation(t *testing.T) {
	g := mustParse(t, "S.#\n..E")

	_, _, err := dijkstra.Dijkstra(nil)
	assert.ErrorIs(t, err, dijkstra.ErrNilGrid)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.WithMaxDistance(-1))
	assert.ErrorIs(t, err, dijkstra.ErrBadMaxDistance)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.WithWeight(nil))
	assert.ErrorIs(t, err, dijkstra.ErrNilWeight)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source(gridgraph.Coord{Row: 0, Col: 2}))
	assert.ErrorIs(t, err, dijkstra.ErrBadSource, "wall source")

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source(gridgraph.Coord{Row: 5, Col: 0}))
	assert.ErrorIs(t, err, dijkstra.ErrBadSource)
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)

	require.NoError(t, g.SetWall(gridgraph.Coord{Row: 1, Col: 0}))
	_, _, err = dijkstra.Dijkstra(g)
	assert.ErrorIs(t, err, dijkstra.ErrStaleNeighbors)
}

// ------------------------------------------------------------------------
// 2. Distances
// ------------------------------------------------------------------------

// TestDijkstra_Distances checks a walled 3×3 map.
//
//	S . #
//	. # .
//	. . E
func TestDijkstra_Distances(t *testing.T) {
	g := mustParse(t, `
S.#
.#.
..E
`)
	dist, prev, err := dijkstra.Dijkstra(g)
	require.NoError(t, err)
	assert.Nil(t, prev, "prev is nil without WithReturnPath")

	want := map[gridgraph.Coord]float64{
		{Row: 0, Col: 0}: 0,
		{Row: 0, Col: 1}: 1,
		{Row: 1, Col: 0}: 1,
		{Row: 2, Col: 0}: 2,
		{Row: 2, Col: 1}: 3,
		{Row: 2, Col: 2}: 4,
		{Row: 1, Col: 2}: 5,
	}
	assert.Equal(t, want, dist)
	_, hasWall := dist[gridgraph.Coord{Row: 0, Col: 2}]
	assert.False(t, hasWall, "walls have no distance")
}

func TestDijkstra_Unreachable(t *testing.T) {
	g := mustParse(t, "S#.\n.#E")
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.True(t, math.IsInf(dist[gridgraph.Coord{Row: 1, Col: 2}], 1))

	_, err = dijkstra.PathTo(dist, prev, gridgraph.Coord{Row: 1, Col: 2})
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)
	_, err = dijkstra.PathTo(dist, prev, gridgraph.Coord{Row: 0, Col: 1})
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable, "wall")
}

func TestDijkstra_Diagonal8(t *testing.T) {
	g := mustParse(t, "S..\n...\n..E", gridgraph.WithConnectivity(gridgraph.Conn8))
	dist, _, err := dijkstra.Dijkstra(g)
	require.NoError(t, err)
	assert.InDelta(t, 2*math.Sqrt2, dist[gridgraph.Coord{Row: 2, Col: 2}], 1e-9)
	assert.InDelta(t, 1+math.Sqrt2, dist[gridgraph.Coord{Row: 2, Col: 1}], 1e-9)
}

func TestDijkstra_CustomWeight(t *testing.T) {
	g := mustParse(t, "S..\n...\n..E", gridgraph.WithConnectivity(gridgraph.Conn8))
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.WithWeight(heuristic.Chebyshev))
	require.NoError(t, err)
	assert.Equal(t, 2.0, dist[gridgraph.Coord{Row: 2, Col: 2}])
}

// ------------------------------------------------------------------------
// 3. Options
// ------------------------------------------------------------------------

func TestDijkstra_MaxDistance(t *testing.T) {
	g := mustParse(t, "S....E")
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.WithMaxDistance(2))
	require.NoError(t, err)
	assert.Equal(t, 2.0, dist[gridgraph.Coord{Row: 0, Col: 2}])
	assert.True(t, math.IsInf(dist[gridgraph.Coord{Row: 0, Col: 3}], 1), "beyond the cap")
}

func TestDijkstra_SourceOverride(t *testing.T) {
	g := mustParse(t, "S...E")
	src := gridgraph.Coord{Row: 0, Col: 4}
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(src), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, 4.0, dist[gridgraph.Coord{Row: 0, Col: 0}])

	path, err := dijkstra.PathTo(dist, prev, gridgraph.Coord{Row: 0, Col: 0})
	require.NoError(t, err)
	require.Len(t, path, 5)
	assert.Equal(t, src, path[0])

	self, err := dijkstra.PathTo(dist, prev, src)
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Coord{src}, self)
}

// TestDijkstra_PathTieBreak checks that among equal-cost routes the first
// relaxed predecessor wins (down before right from the start).
func TestDijkstra_PathTieBreak(t *testing.T) {
	g := mustParse(t, "S.\n.E")
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.WithReturnPath())
	require.NoError(t, err)
	path, err := dijkstra.PathTo(dist, prev, gridgraph.Coord{Row: 1, Col: 1})
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Coord{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}, path)
}
