package sampler

import (
	"math"

	"github.com/slwu89/ctde-go/segtree"
)

// FixedDirectMethod is the Gillespie variant that selects the next
// exponential clock in O(log N) via a prefix-sum tree indexed by a
// stable per-clock slot. Every clock handled by this sampler must
// implement FixedIndexClock.
type FixedDirectMethod struct {
	n           int
	tree        *segtree.Tree
	clockByIdx  map[int]Clock
	initialized bool
}

// NewFixedDirectMethod allocates a propagator over n fixed slots.
func NewFixedDirectMethod(n int) *FixedDirectMethod {
	return &FixedDirectMethod{
		n:          n,
		tree:       segtree.New(n),
		clockByIdx: make(map[int]Clock),
	}
}

func (f *FixedDirectMethod) bootstrap(process Process, rng RNG) {
	var updates []segtree.Assignment
	process.Hazards(rng, func(c Clock) {
		idx := f.indexOf(c)
		f.clockByIdx[idx] = c
		updates = append(updates, segtree.Assignment{Index: idx, Weight: rateOf(c.Intensity())})
	})
	f.tree.BulkUpdate(updates)
	f.initialized = true
}

func (f *FixedDirectMethod) indexOf(c Clock) int {
	fc, ok := c.(FixedIndexClock)
	if !ok {
		panic("sampler: FixedDirectMethod clock missing FixedIndexClock")
	}
	idx, present := fc.FixedIndex()
	if !present {
		panic("sampler: FixedDirectMethod clock missing fixed index metadata")
	}
	if idx < 0 || idx >= f.n {
		panic("sampler: FixedDirectMethod clock index out of range")
	}
	return idx
}

// Next returns the next firing time and clock, or (+Inf, nil, false) if
// the tree's total rate is at or below Epsilon.
func (f *FixedDirectMethod) Next(process Process, rng RNG) (time float64, clock Clock, ok bool) {
	if !f.initialized {
		f.bootstrap(process, rng)
	}

	total := f.tree.Total()
	if total <= Epsilon {
		return Inf, nil, false
	}

	u := rng.Float64() * total
	idx, _ := f.tree.Choose(u)
	c, present := f.clockByIdx[idx]
	if !present {
		panic("sampler: FixedDirectMethod chose an index with no registered clock")
	}

	now := process.Time()
	firing := now - math.Log(rng.Float64())/total
	if firing < now {
		panic("sampler: FixedDirectMethod produced a firing time before now")
	}
	return firing, c, true
}

// Observer updates the prefix-sum tree in response to a clock state
// change. On Enabled/Modified it (re)registers the clock's current rate
// at its fixed slot; on Disabled/Fired it zeroes the slot. The returned
// closure is non-nil, fixing the teacher-source bug spec.md §9 calls
// out where the Observer closure was built but never returned.
func (f *FixedDirectMethod) Observer() Observer {
	return func(c Clock, now float64, event EventKind, rng RNG) {
		idx := f.indexOf(c)
		switch event {
		case Enabled, Modified:
			f.clockByIdx[idx] = c
			f.tree.Update(idx, rateOf(c.Intensity()))
		case Disabled, Fired:
			f.tree.Update(idx, 0)
		}
	}
}
