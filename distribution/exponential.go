// Package distribution provides example Intensity implementations
// satisfying github.com/slwu89/ctde-go/sampler.Intensity. They are
// external collaborators by spec.md §1 (out of scope for the core
// samplers), supplied here so the samplers can be exercised end to end
// in tests and the ctde-trajectory demo.
package distribution

import (
	"math"

	"github.com/slwu89/ctde-go/sampler"
)

// Exponential is a memoryless hazard with rate lambda. It tracks enough
// history (the time and accumulated integral of its last rate change)
// to implement Putative correctly across SetRate calls: a residual xi
// drawn once at enable time remains valid for the clock's whole
// lifetime, even as the rate changes underneath it, because Putative
// solves the integral of hazard since that draw rather than just since
// "now".
type Exponential struct {
	rate     float64
	lastTime float64
	consumed float64
}

// NewExponential returns an Exponential intensity with the given rate.
func NewExponential(rate float64) *Exponential {
	if rate <= 0 {
		panic("distribution: exponential rate must be positive")
	}
	return &Exponential{rate: rate}
}

// Parameters returns the rate as its sole element.
func (e *Exponential) Parameters() []float64 { return []float64{e.rate} }

// Sample draws an absolute firing time ignoring any preserved residual.
func (e *Exponential) Sample(now float64, rng sampler.RNG) float64 {
	return now - math.Log(rng.Float64())/e.rate
}

// MeasuredSample draws a fresh unit-exponential residual and resets the
// history bookkeeping to start from now.
func (e *Exponential) MeasuredSample(now float64, rng sampler.RNG) (firingTime, xi float64) {
	xi = -math.Log(rng.Float64())
	e.lastTime = now
	e.consumed = 0
	return e.Putative(now, xi), xi
}

// Putative solves consumed(now) + rate*(t-now) = xi for t, where
// consumed(now) is the hazard already integrated up to now across any
// prior rate changes. It also advances the bookkeeping to now, so a
// later SetRate call only needs to account for hazard accrued after
// this point.
func (e *Exponential) Putative(now, xi float64) float64 {
	consumedNow := e.consumed + (now-e.lastTime)*e.rate
	remaining := xi - consumedNow
	if remaining < 0 {
		remaining = 0
	}
	e.consumed = consumedNow
	e.lastTime = now
	return now + remaining/e.rate
}

// SetRate changes the rate effective at now, freezing the hazard
// integrated under the old rate so future Putative calls stay
// consistent with the residual drawn at enable time.
func (e *Exponential) SetRate(rate, now float64) {
	if rate <= 0 {
		panic("distribution: exponential rate must be positive")
	}
	e.consumed += (now - e.lastTime) * e.rate
	e.lastTime = now
	e.rate = rate
}

// Rate returns the current rate.
func (e *Exponential) Rate() float64 { return e.rate }
