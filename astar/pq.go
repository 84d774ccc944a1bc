package astar

import "github.com/katalvlaran/gridpath/gridgraph"

// openEntry is one open-set entry. seq is the insertion counter: among equal
// priorities the entry enqueued first is popped first.
type openEntry struct {
	coord    gridgraph.Coord
	priority float64
	seq      uint64
}

// openQueue is a min-heap of openEntry ordered by (priority, seq).
// Entries are never updated in place; an improved g-score for a cell that is
// already open leaves its entry untouched.
type openQueue []openEntry

// Len returns the number of entries in the heap.
func (q openQueue) Len() int { return len(q) }

// Less orders by priority, then by insertion order.
func (q openQueue) Less(i, j int) bool {
	if q[i].priority != q[j].priority {
		return q[i].priority < q[j].priority
	}
	return q[i].seq < q[j].seq
}

// Swap swaps two entries in the heap.
func (q openQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

// Push appends x; called by heap.Push.
func (q *openQueue) Push(x any) { *q = append(*q, x.(openEntry)) }

// Pop removes the last entry; called by heap.Pop.
func (q *openQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]

	return item
}
