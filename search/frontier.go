package search

import "github.com/katalvlaran/gridpath/core"

// entry is one frontier slot: a coordinate carrying its enqueue priority,
// plus the insertion sequence used as the last tie-breaker.
type entry struct {
	c   core.Coordinate
	seq uint64
}

// frontier is a min-heap of entries ordered by core.CompareCoordinates and
// then by insertion sequence.
//
// It never decreases a key in place: an improved cell is pushed again and
// the outdated entry stays until popped, where the search loop filters it.
type frontier []entry

// Len returns the number of entries in the heap.
func (f frontier) Len() int { return len(f) }

// Less orders by priority, X, Y, then insertion order.
func (f frontier) Less(i, j int) bool {
	if c := core.CompareCoordinates(f[i].c, f[j].c); c != 0 {
		return c < 0
	}

	return f[i].seq < f[j].seq
}

// Swap swaps two elements in the heap.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push adds x onto the heap. Called by heap.Push; x must be an entry.
func (f *frontier) Push(x any) { *f = append(*f, x.(entry)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
