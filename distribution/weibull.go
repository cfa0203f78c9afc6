package distribution

import (
	"math"

	"github.com/slwu89/ctde-go/sampler"
)

// Weibull is a non-memoryless hazard with shape k and scale lambda. Like
// Exponential it tracks history across SetShape/SetScale so a residual
// xi drawn once at enable time stays valid for the clock's whole
// lifetime: each parameter change starts a new phase whose own hazard
// accumulates from zero elapsed time, and Putative sums the hazard
// already consumed by prior phases with the current phase's integral
// to find where the total first reaches xi. Because Weibull's hazard is
// not flat, this preserved-residual math gives a different answer than
// resampling from scratch after a modification would — unlike
// Exponential, where memorylessness makes the two equivalent.
type Weibull struct {
	shape, scale float64
	lastTime     float64
	consumed     float64
}

// NewWeibull returns a Weibull intensity with the given shape and scale.
func NewWeibull(shape, scale float64) *Weibull {
	if shape <= 0 || scale <= 0 {
		panic("distribution: weibull shape and scale must be positive")
	}
	return &Weibull{shape: shape, scale: scale}
}

// Parameters returns {shape, scale}.
func (w *Weibull) Parameters() []float64 { return []float64{w.shape, w.scale} }

// Sample draws T = now + scale * (-ln U)^(1/shape), ignoring any
// preserved history.
func (w *Weibull) Sample(now float64, rng sampler.RNG) float64 {
	u := rng.Float64()
	return now + w.scale*math.Pow(-math.Log(u), 1/w.shape)
}

// MeasuredSample draws a fresh unit-exponential residual and resets the
// history bookkeeping to start a new phase at now.
func (w *Weibull) MeasuredSample(now float64, rng sampler.RNG) (firingTime, xi float64) {
	xi = -math.Log(rng.Float64())
	w.lastTime = now
	w.consumed = 0
	return w.Putative(now, xi), xi
}

// Putative solves consumed(now) + ((t-now)/scale)^shape = xi for t, where
// consumed(now) is the hazard already integrated by prior phases plus
// the current phase's contribution up to now. It advances the phase
// origin to now, so a later SetShape/SetScale only needs to account for
// hazard accrued since this call.
func (w *Weibull) Putative(now, xi float64) float64 {
	consumedNow := w.consumed + math.Pow((now-w.lastTime)/w.scale, w.shape)
	remaining := xi - consumedNow
	if remaining < 0 {
		remaining = 0
	}
	w.consumed = consumedNow
	w.lastTime = now
	return now + w.scale*math.Pow(remaining, 1/w.shape)
}

// SetShape changes the shape effective at now, freezing the hazard
// integrated by the phase ending at now.
func (w *Weibull) SetShape(shape, now float64) {
	if shape <= 0 {
		panic("distribution: weibull shape must be positive")
	}
	w.consumed += math.Pow((now-w.lastTime)/w.scale, w.shape)
	w.lastTime = now
	w.shape = shape
}

// SetScale changes the scale effective at now, freezing the hazard
// integrated by the phase ending at now.
func (w *Weibull) SetScale(scale, now float64) {
	if scale <= 0 {
		panic("distribution: weibull scale must be positive")
	}
	w.consumed += math.Pow((now-w.lastTime)/w.scale, w.shape)
	w.lastTime = now
	w.scale = scale
}
