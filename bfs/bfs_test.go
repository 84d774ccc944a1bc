package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/gridgraph"
)

func at(r, c int) gridgraph.Coord { return gridgraph.Coord{Row: r, Col: c} }

func mustParse(t *testing.T, text string) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.Parse(text)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	// nil grid
	if _, err := bfs.BFS(nil, at(0, 0)); !errors.Is(err, bfs.ErrGridNil) {
		t.Errorf("nil grid: want ErrGridNil, got %v", err)
	}
	g := mustParse(t, "S#\n..")
	// out of bounds
	if _, err := bfs.BFS(g, at(3, 0)); !errors.Is(err, bfs.ErrBadStart) {
		t.Errorf("out of bounds: want ErrBadStart, got %v", err)
	}
	// wall start
	if _, err := bfs.BFS(g, at(0, 1)); !errors.Is(err, bfs.ErrBadStart) {
		t.Errorf("wall start: want ErrBadStart, got %v", err)
	}
	// negative MaxDepth is a violation
	if _, err := bfs.BFS(g, at(0, 0), bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
	// stale neighbors
	_ = g.SetWall(at(1, 1))
	if _, err := bfs.BFS(g, at(0, 0)); !errors.Is(err, bfs.ErrStaleNeighbors) {
		t.Errorf("stale: want ErrStaleNeighbors, got %v", err)
	}
}

// TestBFS_SingleCell covers the trivial 1×1 grid.
func TestBFS_SingleCell(t *testing.T) {
	g := mustParse(t, "S")
	res, err := bfs.BFS(g, at(0, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []gridgraph.Coord{at(0, 0)}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth[at(0, 0)]; d != 0 {
		t.Errorf("Depth = %d; want 0", d)
	}
}

// TestBFS_OrderAndDepths checks grid neighbor order on an open 2×3 grid.
//
//	S . .
//	. . E
func TestBFS_OrderAndDepths(t *testing.T) {
	g := mustParse(t, "S..\n..E")
	res, err := bfs.BFS(g, at(0, 0))
	if err != nil {
		t.Fatal(err)
	}
	wantOrder := []gridgraph.Coord{at(0, 0), at(1, 0), at(0, 1), at(1, 1), at(0, 2), at(1, 2)}
	if !reflect.DeepEqual(res.Order, wantOrder) {
		t.Errorf("Order = %v; want %v", res.Order, wantOrder)
	}
	if d := res.Depth[at(1, 2)]; d != 3 {
		t.Errorf("Depth[end] = %d; want 3", d)
	}
}

// TestBFS_Walled checks that walls split reachability.
func TestBFS_Walled(t *testing.T) {
	g := mustParse(t, "S#.\n.#E")
	res, err := bfs.BFS(g, at(0, 0))
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Order) != 2 {
		t.Errorf("visited %d cells; want 2", len(res.Order))
	}
	if _, ok := res.Depth[at(1, 2)]; ok {
		t.Error("end must be unreachable")
	}
	if _, err = res.PathTo(at(1, 2)); !errors.Is(err, bfs.ErrNoPath) {
		t.Errorf("PathTo unreachable: want ErrNoPath, got %v", err)
	}
}

// TestBFS_MaxDepth limits a corridor walk.
func TestBFS_MaxDepth(t *testing.T) {
	g := mustParse(t, "S....E")
	res, err := bfs.BFS(g, at(0, 0), bfs.WithMaxDepth(2))
	if err != nil {
		t.Fatal(err)
	}
	if want := []gridgraph.Coord{at(0, 0), at(0, 1), at(0, 2)}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_FilterNeighbor forbids downward moves.
func TestBFS_FilterNeighbor(t *testing.T) {
	g := mustParse(t, "S.\n.E")
	noDown := func(curr, nb gridgraph.Coord) bool { return nb.Row <= curr.Row }
	res, err := bfs.BFS(g, at(0, 0), bfs.WithFilterNeighbor(noDown))
	if err != nil {
		t.Fatal(err)
	}
	if want := []gridgraph.Coord{at(0, 0), at(0, 1)}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_Hooks asserts that hooks fire in the expected sequence and count.
func TestBFS_Hooks(t *testing.T) {
	g := mustParse(t, "S.E")

	var enq, deq, vis []string
	makeEntry := func(prefix string, c gridgraph.Coord, d int) string {
		return prefix + ":" + c.String() + "@" + strconv.Itoa(d)
	}

	_, err := bfs.BFS(
		g, at(0, 0),
		bfs.WithOnEnqueue(func(c gridgraph.Coord, d int) { enq = append(enq, makeEntry("e", c, d)) }),
		bfs.WithOnDequeue(func(c gridgraph.Coord, d int) { deq = append(deq, makeEntry("d", c, d)) }),
		bfs.WithOnVisit(func(c gridgraph.Coord, d int) error { vis = append(vis, makeEntry("v", c, d)); return nil }),
	)
	if err != nil {
		t.Fatal(err)
	}

	wantDepths := []string{"(0,0)@0", "(0,1)@1", "(0,2)@2"}
	for i, suffix := range wantDepths {
		if !strings.HasSuffix(enq[i], suffix) {
			t.Errorf("OnEnqueue[%d] = %q, want suffix %q", i, enq[i], suffix)
		}
		if !strings.HasSuffix(deq[i], suffix) {
			t.Errorf("OnDequeue[%d] = %q, want suffix %q", i, deq[i], suffix)
		}
		if !strings.HasSuffix(vis[i], suffix) {
			t.Errorf("OnVisit[%d] = %q, want suffix %q", i, vis[i], suffix)
		}
	}
}

// TestBFS_OnExpandAfterEnqueue checks OnExpand fires once per visited cell,
// after the neighbors it discovered were enqueued.
//
// Grid:
//
//	S . .
//	. . E
func TestBFS_OnExpandAfterEnqueue(t *testing.T) {
	g := mustParse(t, "S..\n..E")

	var events []string
	_, err := bfs.BFS(
		g, at(0, 0),
		bfs.WithOnEnqueue(func(c gridgraph.Coord, _ int) { events = append(events, "e"+c.String()) }),
		bfs.WithOnExpand(func(c gridgraph.Coord, _ int) { events = append(events, "x"+c.String()) }),
	)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		"e(0,0)",
		"e(1,0)", "e(0,1)", "x(0,0)",
		"e(1,1)", "x(1,0)",
		"e(0,2)", "x(0,1)",
		"e(1,2)", "x(1,1)",
		"x(0,2)",
		"x(1,2)",
	}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("events = %v; want %v", events, want)
	}
}

// TestBFS_OnVisitAbort stops at the end cell via a sentinel hook error.
func TestBFS_OnVisitAbort(t *testing.T) {
	g := mustParse(t, "S..\n..E")
	stop := errors.New("stop")
	res, err := bfs.BFS(g, at(0, 0), bfs.WithOnVisit(func(c gridgraph.Coord, _ int) error {
		if c == at(0, 1) {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Fatalf("want wrapped stop error, got %v", err)
	}
	if n := len(res.Order); n != 3 {
		t.Errorf("visited %d; want 3", n)
	}
	path, err := res.PathTo(at(0, 1))
	if err != nil || !reflect.DeepEqual(path, []gridgraph.Coord{at(0, 0), at(0, 1)}) {
		t.Errorf("PathTo = %v, %v", path, err)
	}
}

// TestBFS_PathTo covers the trivial start→start path.
func TestBFS_PathTo(t *testing.T) {
	g := mustParse(t, "S.")
	res, _ := bfs.BFS(g, at(0, 0))
	if path, _ := res.PathTo(at(0, 0)); !reflect.DeepEqual(path, []gridgraph.Coord{at(0, 0)}) {
		t.Errorf("PathTo start: got %v; want [(0,0)]", path)
	}
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	g, _ := gridgraph.New(50, 50)
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate
	if _, err := bfs.BFS(g, at(0, 0), bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("Cancellation: want context.Canceled, got %v", err)
	}
}

// TestBFS_ConcurrentSafety ensures two concurrent BFS runs on the same grid do not interfere.
func TestBFS_ConcurrentSafety(t *testing.T) {
	g, _ := gridgraph.New(10, 10)
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() { _, err := bfs.BFS(g, at(0, 0)); errs <- err }()
	}
	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			t.Errorf("Concurrent run #%d: unexpected error %v", i, err)
		}
	}
}
