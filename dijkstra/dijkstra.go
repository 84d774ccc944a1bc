package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Dijkstra computes shortest distances from the source cell to every free
// cell of g over its cached neighbor lists.
//
// Returns:
//
//   - dist: free cell → minimum distance (+Inf if unreachable). Walls are absent.
//   - prev: predecessor map if ReturnPath is set (nil otherwise).
//     prev[v] == u means the shortest route to v arrives from u.
//     The source and unreachable cells have no entry.
//   - err:  validation error.
//
// Preconditions and validation (in order):
//  1. Options are valid (ErrBadMaxDistance, ErrNilWeight).
//  2. g must be non-nil (ErrNilGrid).
//  3. Neighbor lists must be fresh (ErrStaleNeighbors).
//  4. The source must be in bounds and free (ErrBadSource).
//
// Complexity:
//
//   - Time:  O((V + E) log V), V = free cells, E ≤ d·V
//   - Space: O(V + E)
func Dijkstra(g *gridgraph.Grid, opts ...Option) (map[gridgraph.Coord]float64, map[gridgraph.Coord]gridgraph.Coord, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}

	// 2) Validate grid
	if g == nil {
		return nil, nil, ErrNilGrid
	}
	if g.Stale() {
		return nil, nil, ErrStaleNeighbors
	}

	// 3) Resolve and validate the source
	src := g.Start().Coord
	if cfg.Source != nil {
		src = *cfg.Source
	}
	cell, err := g.Cell(src)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrBadSource, err)
	}
	if cell.IsWall() {
		return nil, nil, fmt.Errorf("%w: %v", ErrBadSource, src)
	}

	// 4) Prepare data structures.
	V := g.Rows() * g.Cols()
	r := &runner{
		g:       g,
		options: cfg,
		source:  src,
		dist:    make(map[gridgraph.Coord]float64, V),
		prev:    make(map[gridgraph.Coord]gridgraph.Coord, V),
		visited: make(map[gridgraph.Coord]bool, V),
		pq:      make(nodePQ, 0, V),
	}

	// 5) Initialize and run the main loop.
	r.init()
	if err = r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// PathTo rebuilds the route from the source to dest using a predecessor map
// returned with WithReturnPath. dist identifies the source (distance 0).
func PathTo(dist map[gridgraph.Coord]float64, prev map[gridgraph.Coord]gridgraph.Coord, dest gridgraph.Coord) ([]gridgraph.Coord, error) {
	d, ok := dist[dest]
	if !ok || math.IsInf(d, 1) {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, dest)
	}
	path := []gridgraph.Coord{dest}
	cur := dest
	for {
		p, ok := prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	// the walk must end at the source
	if dist[cur] != 0 {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, dest)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *gridgraph.Grid
	options Options
	source  gridgraph.Coord
	dist    map[gridgraph.Coord]float64
	prev    map[gridgraph.Coord]gridgraph.Coord
	visited map[gridgraph.Coord]bool
	pq      nodePQ
	seq     int // push counter for FIFO tie-break
}

// init sets dist = +Inf for every free cell and pushes the source at 0.
func (r *runner) init() {
	for _, c := range r.g.Cells() {
		if c.IsWall() {
			continue
		}
		r.dist[c.Coord] = math.Inf(1)
	}
	r.dist[r.source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.source, dist: 0})
}

// process repeatedly extracts the closest unvisited cell and relaxes its
// neighbors until the heap is empty or the cap is exceeded.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item.
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// 2) Skip stale entries.
		if r.visited[u] {
			continue
		}

		// 3) Beyond the cap nothing else is reachable cheaper.
		if item.dist > r.options.MaxDistance {
			break
		}

		// 4) Finalize and relax.
		r.visited[u] = true
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the distance of every neighbor of u.
// Assumes r.dist[u] is final.
func (r *runner) relax(u gridgraph.Coord) error {
	cell, err := r.g.Cell(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %v: %w", u, err)
	}
	for _, nb := range cell.Neighbors() {
		v := nb.Coord
		newDist := r.dist[u] + r.options.Weight(u, v)
		if newDist > r.options.MaxDistance {
			continue
		}
		// strict improvement only; equal distances keep the first predecessor
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		r.seq++
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist, seq: r.seq})
	}

	return nil
}

// nodeItem is a cell and a tentative distance from the source.
type nodeItem struct {
	id   gridgraph.Coord
	dist float64
	seq  int
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq) with lazy decrease-key:
// outdated entries stay in the heap and are skipped when popped.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by push order.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
