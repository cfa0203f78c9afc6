// Package simproc provides an example Process implementation wiring
// named clocks and their intensities together, plus a small bounded
// driver loop. Both are external collaborators by spec.md §1 (the
// process model and the outer simulation loop are out of scope for the
// core sampler package) — simproc exists so the five samplers can be
// exercised end to end by tests and the ctde-trajectory CLI.
package simproc

import (
	"github.com/google/uuid"
	"github.com/slwu89/ctde-go/sampler"
)

// clock is the concrete sampler.Clock (and sampler.FixedIndexClock)
// simproc hands to the samplers.
type clock struct {
	id        string
	intensity sampler.Intensity
	idx       int
	hasIdx    bool
}

func (c *clock) ClockID() string             { return c.id }
func (c *clock) Intensity() sampler.Intensity { return c.intensity }
func (c *clock) FixedIndex() (int, bool)      { return c.idx, c.hasIdx }

// Process is a Process implementation over a named set of clocks, with
// per-clock fire-count bookkeeping for the CLI's summary table.
type Process struct {
	now       float64
	clocks    map[string]*clock
	order     []string
	fireCount map[string]int
}

// New returns an empty process starting at time 0.
func New() *Process {
	return &Process{
		clocks:    make(map[string]*clock),
		fireCount: make(map[string]int),
	}
}

// Time implements sampler.Process.
func (p *Process) Time() float64 { return p.now }

// Hazards implements sampler.Process: it visits every currently enabled
// clock in the order clocks were added.
func (p *Process) Hazards(rng sampler.RNG, visit func(sampler.Clock)) {
	for _, id := range p.order {
		if c, ok := p.clocks[id]; ok {
			visit(c)
		}
	}
}

// AddClock enables a new clock with an auto-generated identity and
// returns the handle to give to intensity-modifying code later.
func (p *Process) AddClock(intensity sampler.Intensity) sampler.Clock {
	return p.addClock(uuid.NewString(), intensity, 0, false)
}

// AddNamedClock enables a new clock under a caller-chosen id. It panics
// if id is already in use.
func (p *Process) AddNamedClock(id string, intensity sampler.Intensity) sampler.Clock {
	return p.addClock(id, intensity, 0, false)
}

// AddFixedClock enables a new clock carrying FixedIndexClock metadata,
// for use with FixedDirectMethod.
func (p *Process) AddFixedClock(id string, intensity sampler.Intensity, index int) sampler.Clock {
	return p.addClock(id, intensity, index, true)
}

func (p *Process) addClock(id string, intensity sampler.Intensity, idx int, hasIdx bool) sampler.Clock {
	if _, exists := p.clocks[id]; exists {
		panic("simproc: clock id already in use: " + id)
	}
	c := &clock{id: id, intensity: intensity, idx: idx, hasIdx: hasIdx}
	p.clocks[id] = c
	p.order = append(p.order, id)
	return c
}

// Clock returns the clock registered under id, if any.
func (p *Process) Clock(id string) (sampler.Clock, bool) {
	c, ok := p.clocks[id]
	return c, ok
}

// RemoveClock drops a clock from the enabled set. It does not itself
// notify any sampler — callers drive that through Observer(Disabled)
// before removing, the same way Run dispatches Observer(Fired) for the
// clock that fired.
func (p *Process) RemoveClock(id string) {
	delete(p.clocks, id)
	for i, o := range p.order {
		if o == id {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
}

// SetTime advances the process clock. Run uses this to keep Time()
// consistent with the last firing time reported by a sampler.
func (p *Process) SetTime(now float64) { p.now = now }

// RecordFire increments the fire counter for a clock id.
func (p *Process) RecordFire(id string) { p.fireCount[id]++ }

// FireCounts returns a copy of the per-clock fire counts collected so far.
func (p *Process) FireCounts() map[string]int {
	result := make(map[string]int, len(p.fireCount))
	for k, v := range p.fireCount {
		result[k] = v
	}
	return result
}
