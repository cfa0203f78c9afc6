package sampler

import "github.com/slwu89/ctde-go/pqueue"

// NaiveSampler shares NextReactionMethod's data structures but keeps no
// residual across intensity changes: every Enabled/Modified event
// re-samples a fresh putative firing time from scratch. Its marginals
// match FirstReactionMethod on memoryless-only models but it biases the
// joint distribution of a trajectory otherwise. It exists purely as an
// incorrect reference for differential testing against the other four
// samplers — do not use it to produce trajectories that matter.
type NaiveSampler struct {
	queue       *pqueue.Queue[string]
	handles     map[string]pqueue.Handle
	clockByID   map[string]Clock
	disabled    map[string]bool
	initialized bool
}

// NewNaiveSampler allocates an empty propagator.
func NewNaiveSampler() *NaiveSampler {
	return &NaiveSampler{
		queue:     pqueue.New[string](),
		handles:   make(map[string]pqueue.Handle),
		clockByID: make(map[string]Clock),
		disabled:  make(map[string]bool),
	}
}

// Next bootstraps on first call, then returns the minimum of the
// firing queue.
func (s *NaiveSampler) Next(process Process, rng RNG) (time float64, clock Clock, ok bool) {
	if !s.initialized {
		now := process.Time()
		process.Hazards(rng, func(c Clock) {
			s.resample(c, now, rng)
		})
		s.initialized = true
	}

	t, id, has := s.queue.Peek()
	if !has {
		return Inf, nil, false
	}
	return t, s.clockByID[id], true
}

// Observer dispatches Enabled/Modified to a fresh resample and
// Disabled/Fired to removal.
func (s *NaiveSampler) Observer() Observer {
	return func(c Clock, now float64, event EventKind, rng RNG) {
		switch event {
		case Enabled, Modified:
			// Unsafe by spec: re-enabling a clock this sampler had
			// previously moved to the disabled set is permitted
			// silently rather than guarded against.
			s.resample(c, now, rng)
		case Disabled, Fired:
			s.remove(c)
		}
	}
}

func (s *NaiveSampler) resample(c Clock, now float64, rng RNG) {
	id := c.ClockID()
	firingTime := c.Intensity().Sample(now, rng)
	if firingTime < now {
		panic("sampler: Intensity.Sample returned a time before now")
	}

	s.clockByID[id] = c
	delete(s.disabled, id)

	if h, queued := s.handles[id]; queued {
		s.queue.UpdateKey(h, firingTime)
		return
	}
	s.handles[id] = s.queue.Push(firingTime, id)
}

func (s *NaiveSampler) remove(c Clock) {
	id := c.ClockID()
	if h, queued := s.handles[id]; queued {
		s.queue.RemoveByHandle(h)
		delete(s.handles, id)
	}
	s.disabled[id] = true
}
