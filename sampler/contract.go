// Package sampler implements the stochastic trajectory samplers: five
// propagators answering "which clock fires next, and at what absolute
// time" for a continuous-time, semi-Markov jump process exposed by a
// Process. The process model, intensity objects, and RNG are external
// collaborators; this package consumes only the contracts below.
package sampler

import "math"

// Epsilon is the total-rate threshold below which a sampler reports no
// clock can fire (spec.md §7, "degenerate state").
const Epsilon = 1e-12

// Inf is returned as the firing time when no clock is enabled.
var Inf = math.Inf(1)

// Clock is an opaque transition handle. ClockID must be stable and
// unique for the clock's entire lifetime — propagators use it as a map
// key, so two distinct clocks must never share an id (mirrors the
// teacher's commons.Identifiable).
type Clock interface {
	ClockID() string
	// Intensity returns the clock's current hazard. A Process that
	// modifies a clock's rate must have Intensity reflect the change
	// before the corresponding Observer(Modified) call.
	Intensity() Intensity
}

// FixedIndexClock is implemented by clocks usable with FixedDirectMethod:
// it carries the stable slot index spec.md §4.3 requires.
type FixedIndexClock interface {
	Clock
	// FixedIndex returns the clock's slot in [0, N) and whether that
	// metadata is present at all.
	FixedIndex() (index int, ok bool)
}

// RNG is the uniform random source threaded explicitly through every
// call. *math/rand.Rand satisfies this directly.
type RNG interface {
	Float64() float64
}

// Intensity is the hazard/distribution object attached to a Clock.
type Intensity interface {
	// Parameters returns the distribution's parameters; for exponential
	// intensities the rate lambda is Parameters()[0].
	Parameters() []float64
	// Sample draws an absolute firing time >= now.
	Sample(now float64, rng RNG) float64
	// MeasuredSample draws an absolute firing time >= now together with
	// the unit-exponential residual xi consumed to produce it.
	MeasuredSample(now float64, rng RNG) (firingTime, xi float64)
	// Putative deterministically recomputes the absolute firing time
	// from a previously drawn residual xi; it must return >= now.
	Putative(now, xi float64) float64
}

// EventKind classifies a clock state change delivered to an Observer.
type EventKind int

const (
	// Enabled marks a clock's first appearance.
	Enabled EventKind = iota
	// Modified marks a change to an already-enabled clock's intensity.
	Modified
	// Disabled marks a clock temporarily leaving the enabled set,
	// preserving any residual the sampler keeps for it.
	Disabled
	// Fired marks a clock that was selected by Next and has completed
	// its transition.
	Fired
)

func (e EventKind) String() string {
	switch e {
	case Enabled:
		return "Enabled"
	case Modified:
		return "Modified"
	case Disabled:
		return "Disabled"
	case Fired:
		return "Fired"
	default:
		return "Unknown"
	}
}

// Process is the external collaborator that enumerates enabled clocks
// and tracks absolute simulation time. The stateful propagators
// (FixedDirectMethod, NextReactionMethod, NaiveSampler) enumerate clocks
// only during their first Next call; the stateless DirectMethod and
// FirstReactionMethod enumerate them on every Next call.
type Process interface {
	// Time returns the current absolute simulation time.
	Time() float64
	// Hazards invokes visit once per currently enabled clock.
	Hazards(rng RNG, visit func(clock Clock))
}

// Observer is the callback a propagator exposes to be notified of every
// clock state change resulting from a fired clock, before the next call
// to Next.
type Observer func(clock Clock, now float64, event EventKind, rng RNG)

// Sampler is the two-operation contract shared by all five propagators.
type Sampler interface {
	// Next answers which clock fires next and at what absolute time.
	// It is pure with respect to propagator state: repeated calls
	// without an intervening Observer call return the same result
	// (mod RNG consumption for the stateless samplers).
	Next(process Process, rng RNG) (time float64, clock Clock, ok bool)
	// Observer returns the callback the outer loop must invoke for
	// every clock state change.
	Observer() Observer
}
