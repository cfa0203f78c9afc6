package sampler_test

import "github.com/slwu89/ctde-go/sampler"

// fakeRNG replays a scripted sequence of Uniform(0,1) draws, wrapping
// around if exhausted.
type fakeRNG struct {
	values []float64
	i      int
}

func newFakeRNG(values ...float64) *fakeRNG {
	return &fakeRNG{values: values}
}

func (r *fakeRNG) Float64() float64 {
	v := r.values[r.i%len(r.values)]
	r.i++
	return v
}

// stubIntensity returns a fixed absolute firing time regardless of now
// or rng, used to pin down First Reaction's selection logic without
// depending on any particular distribution's math.
type stubIntensity struct {
	firingTime float64
}

func (s stubIntensity) Parameters() []float64 { return nil }
func (s stubIntensity) Sample(now float64, rng sampler.RNG) float64 {
	return s.firingTime
}
func (s stubIntensity) MeasuredSample(now float64, rng sampler.RNG) (float64, float64) {
	return s.firingTime, 0
}
func (s stubIntensity) Putative(now, xi float64) float64 { return s.firingTime }

// expIntensity is a minimal stateless stub exposing an exponential rate
// as Parameters()[0]. Its Sample and MeasuredSample use the uniform draw
// itself as the residual rather than drawing a true exponential variate,
// and it does not preserve history across modifications, so it is only
// used where the test never calls Putative after a rate change.
type expIntensity struct {
	lambda float64
}

func (e expIntensity) Parameters() []float64 { return []float64{e.lambda} }
func (e expIntensity) Sample(now float64, rng sampler.RNG) float64 {
	return now + rng.Float64()/e.lambda
}
func (e expIntensity) MeasuredSample(now float64, rng sampler.RNG) (float64, float64) {
	xi := rng.Float64()
	return e.Putative(now, xi), xi
}
func (e expIntensity) Putative(now, xi float64) float64 { return now + xi/e.lambda }

// fakeClock implements sampler.Clock and sampler.FixedIndexClock.
type fakeClock struct {
	id        string
	intensity sampler.Intensity
	idx       int
	hasIdx    bool
}

func newClock(id string, intensity sampler.Intensity) *fakeClock {
	return &fakeClock{id: id, intensity: intensity}
}

func newIndexedClock(id string, intensity sampler.Intensity, idx int) *fakeClock {
	return &fakeClock{id: id, intensity: intensity, idx: idx, hasIdx: true}
}

func (c *fakeClock) ClockID() string                 { return c.id }
func (c *fakeClock) Intensity() sampler.Intensity     { return c.intensity }
func (c *fakeClock) FixedIndex() (int, bool)          { return c.idx, c.hasIdx }

// fakeProcess enumerates a fixed set of clocks and reports a fixed time.
type fakeProcess struct {
	now    float64
	clocks []sampler.Clock
}

func (p *fakeProcess) Time() float64 { return p.now }

func (p *fakeProcess) Hazards(rng sampler.RNG, visit func(sampler.Clock)) {
	for _, c := range p.clocks {
		visit(c)
	}
}
