package simproc

import "github.com/slwu89/ctde-go/sampler"

// Event records one firing in a simulated trajectory.
type Event struct {
	Time    float64
	ClockID string
}

// Notify is the callback a Reaction uses to tell the sampler about
// state changes triggered by the clock it was handed. Reaction itself
// never calls a sampler's Observer directly: Run owns all bookkeeping
// around Time() and fire counts, and only it is allowed to call the
// sampler back.
type Notify func(clock sampler.Clock, event sampler.EventKind)

// Reaction implements the domain-specific consequences of a clock
// firing: it may enable new clocks, modify or disable existing ones,
// and decide whether the clock that fired should be re-enabled.
// Reaction must not mutate the process's notion of "now" — Run does
// that before invoking it.
type Reaction func(p *Process, fired sampler.Clock, now float64, rng sampler.RNG, notify Notify)

// Run drives a sampler against a process for at most maxSteps firings
// or until the sampler reports no more clocks are enabled, or a
// firing's time exceeds maxTime. It is the example outer loop spec.md
// §1 leaves to the caller: alternate Next with Observer dispatch for
// every resulting state change.
func Run(s sampler.Sampler, p *Process, react Reaction, rng sampler.RNG, maxSteps int, maxTime float64) []Event {
	obs := s.Observer()
	notify := func(c sampler.Clock, event sampler.EventKind) {
		obs(c, p.Time(), event, rng)
	}

	var trace []Event
	for step := 0; step < maxSteps; step++ {
		t, clock, ok := s.Next(p, rng)
		if !ok || t > maxTime {
			break
		}
		p.SetTime(t)
		p.RecordFire(clock.ClockID())
		trace = append(trace, Event{Time: t, ClockID: clock.ClockID()})

		// Fired is dispatched before the reaction runs so a clock that
		// should persist (e.g. a repeatable birth event) is re-enabled
		// with a fresh residual rather than reusing the one consumed by
		// this firing.
		obs(clock, t, sampler.Fired, rng)
		if react != nil {
			react(p, clock, t, rng, notify)
		}
	}
	return trace
}
