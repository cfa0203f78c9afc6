package sampler_test

import (
	"math"
	"testing"

	"github.com/slwu89/ctde-go/distribution"
	"github.com/slwu89/ctde-go/sampler"
)

// S4 — Next Reaction residual preservation. Enable clock with intensity
// Exp(1) at now=0, measured_sample forced to return (t_fire=1.0, xi=1.0).
// Modify intensity to Exp(2) at now=0.5. Expected new firing time =
// 0.5 + (xi - 0.5*1)/2 = 0.75.
func TestNextReactionScenarioS4(t *testing.T) {
	intensity := distribution.NewExponential(1)
	clock := newClock("K", intensity)
	process := &fakeProcess{now: 0, clocks: []sampler.Clock{clock}}

	n := sampler.NewNextReactionMethod()
	// -ln(u) = 1.0 -> u = e^-1
	u := math.Exp(-1)
	time, selected, ok := n.Next(process, newFakeRNG(u))
	if !ok || selected.ClockID() != "K" {
		t.Fail()
	}
	if math.Abs(time-1.0) > 1e-9 {
		t.Fail()
	}

	intensity.SetRate(2, 0.5)
	n.Observer()(clock, 0.5, sampler.Modified, nil)

	time2, _, ok2 := n.Next(process, nil)
	if !ok2 {
		t.Fail()
	}
	if math.Abs(time2-0.75) > 1e-9 {
		t.Fail()
	}
}

// S5 — Next Reaction fire-then-reenable: firing deletes the record, so
// a re-enable draws a fresh residual rather than reusing the old one.
func TestNextReactionScenarioS5(t *testing.T) {
	intensity := distribution.NewExponential(1)
	clock := newClock("K", intensity)
	process := &fakeProcess{now: 0, clocks: []sampler.Clock{clock}}

	n := sampler.NewNextReactionMethod()
	n.Next(process, newFakeRNG(math.Exp(-1))) // bootstraps, xi=1.0, fires at t=1.0

	n.Observer()(clock, 1.0, sampler.Fired, nil)

	// Re-enable at t=1.5 with a different draw -> xi should be fresh,
	// not the stale 1.0 from before firing.
	freshU := math.Exp(-2) // xi = 2.0
	n.Observer()(clock, 1.5, sampler.Enabled, newFakeRNG(freshU))

	time, _, ok := n.Next(process, nil)
	if !ok {
		t.Fail()
	}
	want := 1.5 + 2.0/1.0
	if math.Abs(time-want) > 1e-9 {
		t.Fail()
	}
}

// Round-trip: enable; disable(Disabled); enable leaves xi unchanged and
// yields the same putative firing time as omitting the pair.
func TestNextReactionDisableEnableRoundTrip(t *testing.T) {
	baseline := distribution.NewExponential(1)
	baselineClock := newClock("K", baseline)
	baselineProcess := &fakeProcess{now: 0, clocks: []sampler.Clock{baselineClock}}
	baselineSampler := sampler.NewNextReactionMethod()
	baselineSampler.Next(baselineProcess, newFakeRNG(math.Exp(-1)))

	toggled := distribution.NewExponential(1)
	toggledClock := newClock("K", toggled)
	toggledProcess := &fakeProcess{now: 0, clocks: []sampler.Clock{toggledClock}}
	toggledSampler := sampler.NewNextReactionMethod()
	toggledSampler.Next(toggledProcess, newFakeRNG(math.Exp(-1)))

	toggledSampler.Observer()(toggledClock, 0.3, sampler.Disabled, nil)
	toggledSampler.Observer()(toggledClock, 0.3, sampler.Enabled, nil)

	t1, _, ok1 := baselineSampler.Next(baselineProcess, nil)
	t2, _, ok2 := toggledSampler.Next(toggledProcess, nil)
	if ok1 != ok2 || math.Abs(t1-t2) > 1e-9 {
		t.Fail()
	}
}

func TestNextReactionEmptyQueueIsDegenerate(t *testing.T) {
	process := &fakeProcess{now: 0}
	n := sampler.NewNextReactionMethod()
	time, clock, ok := n.Next(process, newFakeRNG(0.5))
	if ok || clock != nil || !math.IsInf(time, 1) {
		t.Fail()
	}
}

func TestNextReactionDisableUnknownClockPanics(t *testing.T) {
	n := sampler.NewNextReactionMethod()
	clock := newClock("ghost", distribution.NewExponential(1))

	defer func() {
		if recover() == nil {
			t.Fail()
		}
	}()
	n.Observer()(clock, 0, sampler.Fired, nil)
}

func TestNextReactionNextIsIdempotentWithoutObserverCalls(t *testing.T) {
	intensity := distribution.NewExponential(3)
	clock := newClock("K", intensity)
	process := &fakeProcess{now: 0, clocks: []sampler.Clock{clock}}

	n := sampler.NewNextReactionMethod()
	t1, c1, ok1 := n.Next(process, newFakeRNG(0.37))
	t2, c2, ok2 := n.Next(process, newFakeRNG(0.99)) // should be ignored: already bootstrapped
	if !ok1 || !ok2 || t1 != t2 || c1.ClockID() != c2.ClockID() {
		t.Fail()
	}
}
