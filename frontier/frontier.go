// Package frontier implements the min-priority queue that orders search
// frontiers.
//
// A Queue is parameterised by a comparator rather than by the layout of its
// items, so the same structure serves distance-ordered UCS entries and
// f-score-ordered A* entries:
//
//	q := frontier.ByKey(func(e entry) float64 { return e.dist })
//	q.Push(entry{id: "S"})
//	next, ok := q.Pop()
//
// Items that compare equal leave the queue in insertion order. Every Push
// stamps a sequence number and the heap falls back to it on ties, which
// makes runs reproducible without asking callers for a secondary key.
//
// Complexity:
//
//   - Push, Pop: O(log N)
//   - Peek, Len: O(1)
//
// A Queue is not safe for concurrent use; each search owns its own.
package frontier

import "container/heap"

// Queue is a binary min-heap over T.
type Queue[T any] struct {
	h itemHeap[T]
}

// New returns an empty queue ordered by less. less must be a strict weak
// ordering; New panics on nil.
func New[T any](less func(a, b T) bool) *Queue[T] {
	if less == nil {
		panic("frontier: New(nil)")
	}

	return &Queue[T]{h: itemHeap[T]{less: less}}
}

// ByKey returns an empty queue ordered by ascending key(item).
// ByKey panics on nil.
func ByKey[T any](key func(T) float64) *Queue[T] {
	if key == nil {
		panic("frontier: ByKey(nil)")
	}

	return New(func(a, b T) bool { return key(a) < key(b) })
}

// Push inserts x.
func (q *Queue[T]) Push(x T) {
	q.h.seq++
	heap.Push(&q.h, item[T]{val: x, seq: q.h.seq})
}

// Pop removes and returns the smallest item. ok is false on an empty queue.
func (q *Queue[T]) Pop() (T, bool) {
	if len(q.h.items) == 0 {
		var zero T
		return zero, false
	}

	return heap.Pop(&q.h).(item[T]).val, true
}

// Peek returns the smallest item without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	if len(q.h.items) == 0 {
		var zero T
		return zero, false
	}

	return q.h.items[0].val, true
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int { return len(q.h.items) }

// Reset empties the queue, keeping its capacity and comparator.
func (q *Queue[T]) Reset() {
	clear(q.h.items)
	q.h.items = q.h.items[:0]
	q.h.seq = 0
}

// item pairs a value with its insertion stamp.
type item[T any] struct {
	val T
	seq uint64
}

// itemHeap adapts the comparator to heap.Interface.
type itemHeap[T any] struct {
	items []item[T]
	less  func(a, b T) bool
	seq   uint64
}

// Len returns the number of items in the heap.
func (h itemHeap[T]) Len() int { return len(h.items) }

// Less orders by comparator, then by insertion stamp.
func (h itemHeap[T]) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if h.less(a.val, b.val) {
		return true
	}
	if h.less(b.val, a.val) {
		return false
	}

	return a.seq < b.seq
}

// Swap swaps two elements in the heap.
func (h itemHeap[T]) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

// Push is called by heap.Push; x must be an item[T].
func (h *itemHeap[T]) Push(x any) { h.items = append(h.items, x.(item[T])) }

// Pop is called by heap.Pop.
func (h *itemHeap[T]) Pop() any {
	old := h.items
	n := len(old)
	it := old[n-1]
	var zero item[T]
	old[n-1] = zero // drop the reference for the GC
	h.items = old[:n-1]

	return it
}
