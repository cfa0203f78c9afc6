package sampler

import "github.com/slwu89/ctde-go/pqueue"

// transitionRecord is the Next Reaction per-clock bookkeeping: the
// preserved unit-exponential residual xi and the clock's current slot
// in the firing queue.
type transitionRecord struct {
	clock  Clock
	xi     float64
	handle pqueue.Handle
	queued bool // false: Disabled, handle is not live, xi is preserved
}

// NextReactionMethod is Anderson's Next Reaction Method: general
// semi-Markov clocks, amortized O(log n) selection, preserving each
// clock's unit-exponential residual across enable/modify/disable so
// that intensity changes do not waste randomness or bias the process.
type NextReactionMethod struct {
	queue       *pqueue.Queue[string]
	state       map[string]*transitionRecord
	initialized bool
}

// NewNextReactionMethod allocates an empty propagator.
func NewNextReactionMethod() *NextReactionMethod {
	return &NextReactionMethod{
		queue: pqueue.New[string](),
		state: make(map[string]*transitionRecord),
	}
}

// Next bootstraps on first call by enabling every clock the process
// currently reports, then returns the minimum of the firing queue.
func (n *NextReactionMethod) Next(process Process, rng RNG) (time float64, clock Clock, ok bool) {
	if !n.initialized {
		now := process.Time()
		process.Hazards(rng, func(c Clock) {
			n.enable(c, now, Enabled, rng)
		})
		n.initialized = true
	}

	t, id, has := n.queue.Peek()
	if !has {
		return Inf, nil, false
	}
	rec, present := n.state[id]
	if !present {
		panic("sampler: NextReactionMethod queue entry with no transition record")
	}
	return t, rec.clock, true
}

// Observer dispatches Enabled/Modified to enable and Disabled/Fired to
// disable.
func (n *NextReactionMethod) Observer() Observer {
	return func(c Clock, now float64, event EventKind, rng RNG) {
		switch event {
		case Enabled, Modified:
			n.enable(c, now, event, rng)
		case Disabled, Fired:
			n.disable(c, now, event, rng)
		}
	}
}

// enable is the unified routine for Enabled and Modified events. An
// unknown clock draws a fresh residual; a known clock recomputes its
// putative firing time from the residual it already holds.
func (n *NextReactionMethod) enable(clock Clock, now float64, event EventKind, rng RNG) {
	id := clock.ClockID()
	rec, exists := n.state[id]

	if !exists {
		firingTime, xi := clock.Intensity().MeasuredSample(now, rng)
		if firingTime < now {
			panic("sampler: MeasuredSample returned a time before now")
		}
		handle := n.queue.Push(firingTime, id)
		n.state[id] = &transitionRecord{clock: clock, xi: xi, handle: handle, queued: true}
		return
	}

	rec.clock = clock
	firingTime := clock.Intensity().Putative(now, rec.xi)
	if firingTime < now {
		panic("sampler: Putative returned a time before now")
	}

	if rec.queued {
		n.queue.UpdateKey(rec.handle, firingTime)
	} else {
		rec.handle = n.queue.Push(firingTime, id)
		rec.queued = true
	}
}

// disable removes clock from the firing queue. On Disabled the
// transition record (and its residual) is preserved so a later
// re-enable resumes from the same xi; on Fired the record is deleted
// outright, so a later re-enable draws a fresh residual.
func (n *NextReactionMethod) disable(clock Clock, now float64, event EventKind, rng RNG) {
	id := clock.ClockID()
	rec, exists := n.state[id]
	if !exists {
		panic("sampler: NextReactionMethod disable of an unknown clock")
	}
	if !rec.queued {
		panic("sampler: NextReactionMethod disable of a clock not currently queued")
	}

	if _, removed := n.queue.RemoveByHandle(rec.handle); !removed {
		panic("sampler: NextReactionMethod queued clock has no live heap entry on disable")
	}

	switch event {
	case Disabled:
		rec.queued = false
		rec.handle = pqueue.NoHandle
	case Fired:
		delete(n.state, id)
	}
}
