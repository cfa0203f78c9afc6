package simproc

import (
	"github.com/slwu89/ctde-go/distribution"
	"github.com/slwu89/ctde-go/sampler"
)

// Reliability clock ids for a repairable-component demo: a Weibull
// failure clock whose hazard accelerates with wear at every inspection,
// and a Deterministic inspection clock firing on a fixed schedule.
const (
	FailureClockID    = "failure"
	InspectionClockID = "inspection"
)

// Reliability models a single component whose time to failure follows a
// Weibull hazard and is inspected on a fixed schedule. Each inspection
// tightens the failure clock's scale to model accumulating wear — a
// Modified event carrying a preserved residual through a genuinely
// non-flat hazard, which is exactly what distinguishes
// NextReactionMethod's bookkeeping from NaiveSampler's fresh resample.
// The inspection clock itself is Deterministic and never modified, only
// re-enabled, so its firing time is unaffected by anything the failure
// clock does.
type Reliability struct {
	failure     *distribution.Weibull
	inspection  *distribution.Deterministic
	baseScale   float64
	wearFactor  float64
	failures    int
	inspections int
}

// NewReliability builds the two-clock process. wearFactor in (0, 1]
// multiplies the failure clock's scale at every inspection (a value
// below 1 shrinks it, raising its hazard; 1 leaves it unchanged);
// interval is the fixed time between inspections.
func NewReliability(shape, scale, interval, wearFactor float64) (*Process, *Reliability) {
	if wearFactor <= 0 || wearFactor > 1 {
		panic("simproc: wearFactor must be in (0, 1]")
	}
	r := &Reliability{
		failure:    distribution.NewWeibull(shape, scale),
		inspection: distribution.NewDeterministic(interval),
		baseScale:  scale,
		wearFactor: wearFactor,
	}

	p := New()
	p.AddFixedClock(FailureClockID, r.failure, 0)
	p.AddFixedClock(InspectionClockID, r.inspection, 1)

	return p, r
}

// Failures returns how many times the component has failed and been
// replaced with a fresh Weibull draw.
func (r *Reliability) Failures() int { return r.failures }

// Inspections returns how many inspections have elapsed.
func (r *Reliability) Inspections() int { return r.inspections }

// React implements Reaction.
func (r *Reliability) React(p *Process, fired sampler.Clock, now float64, rng sampler.RNG, notify Notify) {
	switch fired.ClockID() {
	case InspectionClockID:
		r.inspections++
		r.failure.SetScale(r.failure.Parameters()[1]*r.wearFactor, now)
		if failureClock, ok := p.Clock(FailureClockID); ok {
			notify(failureClock, sampler.Modified)
		}
		if inspectionClock, ok := p.Clock(InspectionClockID); ok {
			notify(inspectionClock, sampler.Enabled)
		}
	case FailureClockID:
		r.failures++
		// Replacement resets wear: the new component starts at the
		// original scale rather than continuing to degrade.
		r.failure.SetScale(r.baseScale, now)
		if failureClock, ok := p.Clock(FailureClockID); ok {
			notify(failureClock, sampler.Enabled)
		}
	}
}
