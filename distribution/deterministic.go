package distribution

import "github.com/slwu89/ctde-go/sampler"

// Deterministic fires exactly delay time units after it was last
// (re-)enabled, regardless of any drawn randomness. It models a fixed
// timer clock, the point-mass degenerate case of a waiting-time
// distribution.
type Deterministic struct {
	delay     float64
	enabledAt float64
	hasOrigin bool
}

// NewDeterministic returns a Deterministic intensity with the given delay.
func NewDeterministic(delay float64) *Deterministic {
	if delay < 0 {
		panic("distribution: deterministic delay must be non-negative")
	}
	return &Deterministic{delay: delay}
}

func (d *Deterministic) Parameters() []float64 { return []float64{d.delay} }

// Sample ignores rng: the firing time is now + delay.
func (d *Deterministic) Sample(now float64, rng sampler.RNG) float64 {
	return now + d.delay
}

// MeasuredSample anchors the timer's origin at now and returns a
// placeholder residual of 0 — a deterministic clock consumes no
// randomness, but the contract still requires a residual so Putative
// recomputations have something to be handed back.
func (d *Deterministic) MeasuredSample(now float64, rng sampler.RNG) (firingTime, xi float64) {
	d.enabledAt = now
	d.hasOrigin = true
	return now + d.delay, 0
}

// Putative returns the fixed deadline set at the last MeasuredSample or
// SetDelay, ignoring xi. If neither has been called yet, it anchors the
// origin at now.
func (d *Deterministic) Putative(now, xi float64) float64 {
	if !d.hasOrigin {
		d.enabledAt = now
		d.hasOrigin = true
	}
	return d.enabledAt + d.delay
}

// SetDelay changes the delay and restarts the timer's origin at now.
func (d *Deterministic) SetDelay(delay, now float64) {
	if delay < 0 {
		panic("distribution: deterministic delay must be non-negative")
	}
	d.delay = delay
	d.enabledAt = now
	d.hasOrigin = true
}
