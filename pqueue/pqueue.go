package pqueue

import "github.com/veyrin/heatfield/container"

// Item is one frontier entry: a linear pixel index and the accumulated
// cost of the path that produced it. Ordering is by Cost alone.
type Item[T container.Scalar] struct {
	Idx  int
	Cost T
}

// entry augments an Item with its insertion sequence number so that
// equal costs pop first-in first-out.
type entry[T container.Scalar] struct {
	item Item[T]
	seq  uint64
}

// Queue is a binary min-heap of Items ordered by cost, then by
// insertion order. The zero value is ready to use; New preallocates.
//
// A Queue must not back two concurrent transforms. Stale entries
// (duplicates for a pixel that was since settled more cheaply) are
// legal and expected; the consumer filters them at pop time.
type Queue[T container.Scalar] struct {
	entries []entry[T]
	seq     uint64
}

// New returns a Queue whose entry slice is preallocated to hold
// capacity items. Callers processing a stream of frames should size
// this to a few multiples of the pixel count so that the lazy
// decrease-key duplicates never force a grow.
func New[T container.Scalar](capacity int) *Queue[T] {
	return &Queue[T]{entries: make([]entry[T], 0, capacity)}
}

// Len returns the number of entries currently queued.
func (q *Queue[T]) Len() int { return len(q.entries) }

// Empty reports whether the queue holds no entries.
func (q *Queue[T]) Empty() bool { return len(q.entries) == 0 }

// Reserve grows the entry slice capacity to at least n.
// Complexity: O(n) when growing, O(1) otherwise.
func (q *Queue[T]) Reserve(n int) {
	if cap(q.entries) >= n {
		return
	}
	grown := make([]entry[T], len(q.entries), n)
	copy(grown, q.entries)
	q.entries = grown
}

// Reset discards all entries but keeps the allocated capacity.
func (q *Queue[T]) Reset() {
	q.entries = q.entries[:0]
	q.seq = 0
}

// Push inserts it into the heap.
// Complexity: O(log n); no allocation while capacity suffices.
func (q *Queue[T]) Push(it Item[T]) {
	q.entries = append(q.entries, entry[T]{item: it, seq: q.seq})
	q.seq++
	q.up(len(q.entries) - 1)
}

// Top returns the minimum-cost entry without removing it.
// Panics if the queue is empty.
func (q *Queue[T]) Top() Item[T] {
	return q.entries[0].item
}

// Pop removes and returns the minimum-cost entry.
// Panics if the queue is empty.
// Complexity: O(log n).
func (q *Queue[T]) Pop() Item[T] {
	top := q.entries[0].item
	last := len(q.entries) - 1
	q.entries[0] = q.entries[last]
	q.entries = q.entries[:last]
	if last > 0 {
		q.down(0)
	}

	return top
}

// less orders entries by cost, breaking ties by insertion sequence.
func (q *Queue[T]) less(i, j int) bool {
	a, b := &q.entries[i], &q.entries[j]
	if a.item.Cost != b.item.Cost {
		return a.item.Cost < b.item.Cost
	}

	return a.seq < b.seq
}

// up restores the heap invariant from child index i toward the root.
func (q *Queue[T]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !q.less(i, parent) {
			break
		}
		q.entries[i], q.entries[parent] = q.entries[parent], q.entries[i]
		i = parent
	}
}

// down restores the heap invariant from parent index i toward the leaves.
func (q *Queue[T]) down(i int) {
	n := len(q.entries)
	for {
		smallest := i
		if l := 2*i + 1; l < n && q.less(l, smallest) {
			smallest = l
		}
		if r := 2*i + 2; r < n && q.less(r, smallest) {
			smallest = r
		}
		if smallest == i {
			return
		}
		q.entries[i], q.entries[smallest] = q.entries[smallest], q.entries[i]
		i = smallest
	}
}
