package particles

import (
	"math/rand"

	"github.com/Rakly3/CursorDemo/engine/mathutil"
)

// Emitter produces particles from a fixed preset over time. Burst
// presets (BurstEvery > 0) release a full Count batch on each
// interval; rate presets stream Rate particles per second, carrying
// fractional remainders across ticks so low rates still emit.
type Emitter struct {
	Origin mathutil.Vec2
	Preset Preset
	Active bool

	accum float64
	burst float64
}

func NewEmitter(origin mathutil.Vec2, p Preset) *Emitter {
	return &Emitter{Origin: origin, Preset: p, Active: true}
}

// Emit advances the emitter clock by dt and returns the particles due.
// Inactive emitters hold their clocks still.
func (e *Emitter) Emit(dt float64, rng *rand.Rand) []Particle {
	if !e.Active || dt <= 0 {
		return nil
	}
	if e.Preset.BurstEvery > 0 {
		var out []Particle
		e.burst += dt
		for e.burst >= e.Preset.BurstEvery {
			e.burst -= e.Preset.BurstEvery
			n := int(e.Preset.Count.Random(rng))
			out = append(out, Spawn(e.Origin, n, e.Preset, rng)...)
		}
		return out
	}
	if e.Preset.Rate <= 0 {
		return nil
	}
	e.accum += dt * e.Preset.Rate
	n := int(e.accum)
	if n == 0 {
		return nil
	}
	e.accum -= float64(n)
	return Spawn(e.Origin, n, e.Preset, rng)
}

// MoveTo repositions the emitter without disturbing its clocks.
func (e *Emitter) MoveTo(origin mathutil.Vec2) {
	e.Origin = origin
}
