package bfs_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// BenchmarkBFS_OpenGrid measures a full flood of an empty 300×300 grid.
func BenchmarkBFS_OpenGrid(b *testing.B) {
	g, err := gridgraph.New(300, 300)
	if err != nil {
		b.Fatal(err)
	}
	start := gridgraph.Coord{}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, start)
	}
}

// BenchmarkBFS_RandomWalls measures a flood with ~25% walls.
func BenchmarkBFS_RandomWalls(b *testing.B) {
	g, err := gridgraph.New(300, 300)
	if err != nil {
		b.Fatal(err)
	}
	r := rand.New(rand.NewSource(1))
	for row := 0; row < 300; row++ {
		for col := 0; col < 300; col++ {
			if r.Intn(4) == 0 {
				_ = g.SetWall(gridgraph.Coord{Row: row, Col: col})
			}
		}
	}
	g.RefreshNeighbors()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, g.Start().Coord)
	}
}

// BenchmarkBFS_HookOverhead measures the cost of all three hooks.
func BenchmarkBFS_HookOverhead(b *testing.B) {
	g, _ := gridgraph.New(200, 200)
	var n int
	onEnq := func(gridgraph.Coord, int) { n++ }
	onDeq := func(gridgraph.Coord, int) { n++ }
	onVis := func(gridgraph.Coord, int) error { n++; return nil }
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, gridgraph.Coord{},
			bfs.WithOnEnqueue(onEnq),
			bfs.WithOnDequeue(onDeq),
			bfs.WithOnVisit(onVis),
		)
	}
}
