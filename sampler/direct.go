package sampler

import (
	"math"
	"sort"
)

// DirectMethod is the classical Gillespie algorithm: exponential clocks
// only, O(n) selection per step. It holds no state between steps.
type DirectMethod struct{}

// Next enumerates the enabled clocks, draws a uniform over their summed
// rate to pick one, and draws a second uniform to produce the absolute
// firing time. It assumes every enabled clock's intensity is
// exponential and reads the rate as Parameters()[0]; using it with a
// non-exponential intensity is undefined behavior per spec.md §4.2.
func (DirectMethod) Next(process Process, rng RNG) (time float64, clock Clock, ok bool) {
	var cumulative []float64
	var clocks []Clock
	var total float64

	process.Hazards(rng, func(c Clock) {
		lambda := rateOf(c.Intensity())
		total += lambda
		cumulative = append(cumulative, total)
		clocks = append(clocks, c)
	})

	if total <= Epsilon {
		return Inf, nil, false
	}

	u := rng.Float64() * total
	i := sort.Search(len(cumulative), func(i int) bool { return cumulative[i] >= u })
	if i >= len(cumulative) {
		panic("sampler: Direct Method selection index out of range")
	}

	now := process.Time()
	firing := now - math.Log(rng.Float64())/total
	if firing < now {
		panic("sampler: Direct Method produced a firing time before now")
	}
	return firing, clocks[i], true
}

// Observer is a no-op: Direct Method holds no state between steps.
func (DirectMethod) Observer() Observer {
	return func(Clock, float64, EventKind, RNG) {}
}

// rateOf reads the rate parameter of an exponential intensity. It
// panics if the intensity exposes no parameters at all, since that
// means the caller violated the exponential-only contract outright.
func rateOf(intensity Intensity) float64 {
	params := intensity.Parameters()
	if len(params) == 0 {
		panic("sampler: exponential intensity has no parameters")
	}
	return params[0]
}
