package simproc

import (
	"github.com/slwu89/ctde-go/distribution"
	"github.com/slwu89/ctde-go/sampler"
)

// BirthClockID and DeathClockID name the two clocks NewBirthDeath wires up, for callers
// that want to read FireCounts() or Clock() afterwards.
const (
	BirthClockID = "birth"
	DeathClockID = "death"
)

// BirthDeath closes over the population size shared by the birth and
// death clocks' rates: rate(birth) = birthRate*N, rate(death) = deathRate*N.
type BirthDeath struct {
	n               int
	birthRate       float64
	deathRate       float64
	birth           *distribution.Exponential
	death           *distribution.Exponential
	deathEnabled    bool
	populationTrace []int
}

// NewBirthDeath builds a two-clock linear birth-death process: the birth
// clock fires at rate birthRate*N and increments the population, the
// death clock fires at rate deathRate*N and decrements it. On every
// firing the clock that fired is re-enabled at its new rate and the
// other clock's rate is re-set and reported as Modified, which exercises
// a sampler's Modified handling — and, for NextReactionMethod, its
// residual-preserving Putative math — on essentially every step.
//
// When the population reaches zero both rates are zero: the death clock
// is not re-enabled, the birth clock is reported Disabled, both clocks
// are removed from the process, and the trajectory ends.
func NewBirthDeath(birthRate, deathRate float64, initialPopulation int) (*Process, *BirthDeath) {
	if initialPopulation <= 0 {
		panic("simproc: initial population must be positive")
	}
	bd := &BirthDeath{n: initialPopulation, birthRate: birthRate, deathRate: deathRate, deathEnabled: true}
	bd.populationTrace = append(bd.populationTrace, initialPopulation)

	bd.birth = distribution.NewExponential(birthRate * float64(initialPopulation))
	bd.death = distribution.NewExponential(deathRate * float64(initialPopulation))

	p := New()
	p.AddFixedClock(BirthClockID, bd.birth, 0)
	p.AddFixedClock(DeathClockID, bd.death, 1)

	return p, bd
}

// Population returns the current population size.
func (bd *BirthDeath) Population() int { return bd.n }

// PopulationTrace returns the population size recorded after each
// firing processed by React, starting with the initial population.
func (bd *BirthDeath) PopulationTrace() []int {
	out := make([]int, len(bd.populationTrace))
	copy(out, bd.populationTrace)
	return out
}

// React implements Reaction; pass bd.React to Run.
func (bd *BirthDeath) React(p *Process, fired sampler.Clock, now float64, rng sampler.RNG, notify Notify) {
	didFireBirth := fired.ClockID() == BirthClockID
	if didFireBirth {
		bd.n++
	} else {
		bd.n--
	}
	bd.populationTrace = append(bd.populationTrace, bd.n)

	birthClock, _ := p.Clock(BirthClockID)
	deathClock, _ := p.Clock(DeathClockID)

	// The fired clock was already removed from the sampler by Run's
	// Fired dispatch; re-enable it with a fresh residual to keep the
	// process running, unless it's death and the population just hit
	// zero.
	if didFireBirth {
		bd.birth.SetRate(bd.birthRate*float64(bd.n), now)
		notify(birthClock, sampler.Enabled)
	} else if bd.n > 0 {
		bd.death.SetRate(bd.deathRate*float64(bd.n), now)
		notify(deathClock, sampler.Enabled)
	} else {
		bd.deathEnabled = false
	}

	// The clock that didn't fire just had its rate's N term change
	// underneath it: re-set and notify Modified so a residual-tracking
	// intensity (distribution.Exponential) accounts for the hazard
	// already accrued under the old rate.
	if didFireBirth {
		bd.death.SetRate(bd.deathRate*float64(bd.n), now)
		if bd.deathEnabled {
			notify(deathClock, sampler.Modified)
		} else {
			bd.deathEnabled = true
			notify(deathClock, sampler.Enabled)
		}
	} else if bd.n > 0 {
		bd.birth.SetRate(bd.birthRate*float64(bd.n), now)
		notify(birthClock, sampler.Modified)
	} else {
		// N = 0: both rates are zero, so the birth clock leaves the
		// enabled set too and both clocks are dropped from the process.
		notify(birthClock, sampler.Disabled)
		p.RemoveClock(BirthClockID)
		p.RemoveClock(DeathClockID)
	}
}
