// Package pqueue implements a mutable min-heap keyed by (time, key) pairs,
// exposing stable handles so a caller can decrease or increase an entry's
// key, or remove it outright, in O(log n) without scanning the heap.
package pqueue

import "container/heap"

// Handle identifies an entry in a Queue. It stays valid across any number
// of sifts; it is invalidated only once the entry it names is popped or
// removed.
type Handle int

// NoHandle is the zero value of an unset Handle. A Queue never assigns it.
const NoHandle Handle = 0

// removedTime is pushed onto an entry before it is forced to the root and
// popped off, per the decrease-key-to-sentinel deletion trick. All
// legitimate firing times are non-negative (spec invariant), so -1 can
// never collide with a real entry.
const removedTime = -1

type entry[K comparable] struct {
	time   float64
	key    K
	handle Handle
	index  int
}

type innerHeap[K comparable] []*entry[K]

func (h innerHeap[K]) Len() int { return len(h) }

func (h innerHeap[K]) Less(i, j int) bool { return h[i].time < h[j].time }

func (h innerHeap[K]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *innerHeap[K]) Push(x any) {
	e := x.(*entry[K])
	e.index = len(*h)
	*h = append(*h, e)
}

func (h *innerHeap[K]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]
	return e
}

// Queue is a mutable min-heap of (time, key) pairs ordered by time
// ascending. It is not safe for concurrent use: a Queue is owned by a
// single caller, same as the propagator that holds it.
type Queue[K comparable] struct {
	heap     innerHeap[K]
	byHandle map[Handle]*entry[K]
	next     Handle
}

// New returns an empty queue.
func New[K comparable]() *Queue[K] {
	return &Queue[K]{
		byHandle: make(map[Handle]*entry[K]),
		next:     NoHandle + 1,
	}
}

// Len returns the number of entries currently queued.
func (q *Queue[K]) Len() int { return q.heap.Len() }

// Push inserts key at the given time and returns a handle for later
// UpdateKey/RemoveByHandle calls.
func (q *Queue[K]) Push(time float64, key K) Handle {
	e := &entry[K]{time: time, key: key, handle: q.next}
	q.next++
	heap.Push(&q.heap, e)
	q.byHandle[e.handle] = e
	return e.handle
}

// Peek returns the minimum-time entry without removing it.
func (q *Queue[K]) Peek() (time float64, key K, ok bool) {
	if q.heap.Len() == 0 {
		return 0, key, false
	}
	top := q.heap[0]
	return top.time, top.key, true
}

// Pop removes and returns the minimum-time entry.
func (q *Queue[K]) Pop() (time float64, key K, ok bool) {
	if q.heap.Len() == 0 {
		return 0, key, false
	}
	e := heap.Pop(&q.heap).(*entry[K])
	delete(q.byHandle, e.handle)
	return e.time, e.key, true
}

// UpdateKey changes the firing time of the entry named by h, repairing
// the heap in O(log n). It reports whether h named a live entry.
func (q *Queue[K]) UpdateKey(h Handle, time float64) bool {
	e, ok := q.byHandle[h]
	if !ok {
		return false
	}
	e.time = time
	heap.Fix(&q.heap, e.index)
	return true
}

// RemoveByHandle removes the entry named by h using the decrease-key-to-
// sentinel-then-pop trick: push the entry's key to -1 (below any
// legitimate time), sift it to the root, and pop it. It panics if the
// entry popped off the root is not the one h named — the heap invariant
// would otherwise be silently violated.
func (q *Queue[K]) RemoveByHandle(h Handle) (key K, ok bool) {
	e, present := q.byHandle[h]
	if !present {
		return key, false
	}
	e.time = removedTime
	heap.Fix(&q.heap, e.index)
	popped := heap.Pop(&q.heap).(*entry[K])
	if popped != e {
		panic("pqueue: heap sentinel mismatch on RemoveByHandle")
	}
	delete(q.byHandle, e.handle)
	return e.key, true
}

// Time reports the current firing time stored for h.
func (q *Queue[K]) Time(h Handle) (time float64, ok bool) {
	e, present := q.byHandle[h]
	if !present {
		return 0, false
	}
	return e.time, true
}
