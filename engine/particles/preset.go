package particles

import (
	"log"
	"math"
	"math/rand"

	"github.com/Rakly3/CursorDemo/engine/colorutil"
	"github.com/Rakly3/CursorDemo/engine/mathutil"
)

// Kind enumerates the built-in effect presets.
type Kind uint8

const (
	KindFire Kind = iota
	KindExplosion
	KindSparkle
	KindSmoke
)

func (k Kind) String() string {
	switch k {
	case KindFire:
		return "fire"
	case KindExplosion:
		return "explosion"
	case KindSparkle:
		return "sparkle"
	case KindSmoke:
		return "smoke"
	}
	return "unknown"
}

// Preset is the pure-data template an effect spawns from. Angles are
// radians with Y down, so an Angle of 3*pi/2 points up the screen.
// Rate and BurstEvery only matter when the preset drives an Emitter:
// BurstEvery > 0 selects burst emission, otherwise Rate particles per
// second stream continuously.
type Preset struct {
	Kind Kind

	Count    mathutil.Range
	Speed    mathutil.Range
	Lifetime mathutil.Range
	Size     mathutil.Range
	Spin     mathutil.Range

	Angle  float64
	Spread float64

	Gravity  mathutil.Vec2
	Friction float64

	Start, End  colorutil.Color
	ColorJitter float64

	EndScale float64
	Curve    Curve
	TrailLen int
	Wobble   float64

	Rate       float64
	BurstEvery float64
}

// Fire streams upward in a narrow cone, warm color cooling to embers.
func Fire() Preset {
	return Preset{
		Kind:        KindFire,
		Count:       mathutil.R(10, 20),
		Speed:       mathutil.R(35, 65),
		Lifetime:    mathutil.R(0.75, 2.25),
		Size:        mathutil.R(1.5, 4.5),
		Angle:       3 * math.Pi / 2,
		Spread:      math.Pi / 3,
		Gravity:     mathutil.V2(0, -50),
		Friction:    3.0,
		Start:       colorutil.New(255, 100, 0),
		End:         colorutil.New(60, 10, 0),
		ColorJitter: 50,
		EndScale:    0,
		Curve:       CurveLinear,
		Rate:        20,
	}
}

// Explosion bursts in a full circle at high speed with trailing decay.
func Explosion() Preset {
	return Preset{
		Kind:        KindExplosion,
		Count:       mathutil.R(50, 50),
		Speed:       mathutil.R(100, 300),
		Lifetime:    mathutil.R(0.6, 3.4),
		Size:        mathutil.R(0.8, 7.2),
		Spread:      2 * math.Pi,
		Friction:    1.2,
		Start:       colorutil.New(255, 200, 0),
		End:         colorutil.New(120, 30, 0),
		ColorJitter: 100,
		EndScale:    0,
		Curve:       CurveEaseOut,
		TrailLen:    5,
		BurstEvery:  0.1,
	}
}

// Sparkle drifts slowly in all directions, bright and slightly spinning.
func Sparkle() Preset {
	return Preset{
		Kind:        KindSparkle,
		Count:       mathutil.R(3, 8),
		Speed:       mathutil.R(24, 36),
		Lifetime:    mathutil.R(2.1, 3.9),
		Size:        mathutil.R(1.4, 2.6),
		Spin:        mathutil.R(-2, 2),
		Spread:      2 * math.Pi,
		Friction:    0.6,
		Start:       colorutil.New(255, 255, 255),
		End:         colorutil.New(255, 255, 255),
		ColorJitter: 100,
		EndScale:    1,
		Curve:       CurveLinear,
		Rate:        5,
	}
}

// Smoke rises in a wide cone, expanding and fading to gray haze.
func Smoke() Preset {
	return Preset{
		Kind:        KindSmoke,
		Count:       mathutil.R(5, 10),
		Speed:       mathutil.R(12, 28),
		Lifetime:    mathutil.R(1.6, 6.4),
		Size:        mathutil.R(1.6, 14.4),
		Angle:       3 * math.Pi / 2,
		Spread:      math.Pi / 2,
		Gravity:     mathutil.V2(0, -20),
		Friction:    0.6,
		Start:       colorutil.New(100, 100, 100),
		End:         colorutil.New(60, 60, 60),
		ColorJitter: 30,
		EndScale:    2.5,
		Curve:       CurveLinear,
		Wobble:      15,
		Rate:        8,
	}
}

// Preset builds the template for a kind.
func (k Kind) Preset() Preset {
	switch k {
	case KindFire:
		return Fire()
	case KindExplosion:
		return Explosion()
	case KindSparkle:
		return Sparkle()
	case KindSmoke:
		return Smoke()
	}
	return Sparkle()
}

// DefaultPresets returns the built-in registry keyed by kind name.
func DefaultPresets() map[string]Preset {
	m := make(map[string]Preset, 4)
	for _, k := range []Kind{KindFire, KindExplosion, KindSparkle, KindSmoke} {
		m[k.String()] = k.Preset()
	}
	return m
}

// sanitize clamps out-of-range preset parameters to safe values and
// reports whether anything had to change.
func (p Preset) sanitize() (Preset, bool) {
	changed := false
	fixRange := func(r mathutil.Range, lo float64) mathutil.Range {
		if r.Min > r.Max {
			r.Min, r.Max = r.Max, r.Min
			changed = true
		}
		if r.Min < lo {
			r.Min = lo
			changed = true
		}
		if r.Max < lo {
			r.Max = lo
			changed = true
		}
		return r
	}
	p.Speed = fixRange(p.Speed, 0)
	p.Lifetime = fixRange(p.Lifetime, 0.1)
	p.Size = fixRange(p.Size, 0.1)
	p.Count = fixRange(p.Count, 0)
	if p.Friction < 0 {
		p.Friction = 0
		changed = true
	}
	if p.EndScale < 0 {
		p.EndScale = 0
		changed = true
	}
	if p.TrailLen < 0 {
		p.TrailLen = 0
		changed = true
	}
	return p, changed
}

// Spawn produces count particles at origin from the preset, drawing
// every random quantity from rng so a fixed seed reproduces the batch
// exactly. A negative count is clamped to zero. Invalid preset ranges
// are clamped to safe values before use.
func Spawn(origin mathutil.Vec2, count int, p Preset, rng *rand.Rand) []Particle {
	if count < 0 {
		log.Printf("particles: spawn count %d clamped to 0", count)
		count = 0
	}
	if count == 0 {
		return nil
	}
	p, fixed := p.sanitize()
	if fixed {
		log.Printf("particles: preset %s had out-of-range parameters, clamped", p.Kind)
	}

	batch := make([]Particle, 0, count)
	for i := 0; i < count; i++ {
		angle := p.Angle + mathutil.RandRange(rng, -p.Spread/2, p.Spread/2)
		speed := p.Speed.Random(rng)
		life := p.Lifetime.Random(rng)
		size := p.Size.Random(rng)

		start, end := p.Start, p.End
		if p.ColorJitter > 0 {
			dr := mathutil.RandRange(rng, -p.ColorJitter, p.ColorJitter)
			dg := mathutil.RandRange(rng, -p.ColorJitter, p.ColorJitter)
			db := mathutil.RandRange(rng, -p.ColorJitter, p.ColorJitter)
			start = jitter(start, dr, dg, db)
			end = jitter(end, dr, dg, db)
		}

		pt := Particle{
			Pos:      origin,
			Vel:      mathutil.FromAngle(angle).Scale(speed),
			Acc:      p.Gravity,
			Lifetime: life,
			Size:     size,
			SizeEnd:  size * p.EndScale,
			Friction: p.Friction,
			Spin:     p.Spin.Random(rng),
			Start:    start,
			End:      end,
			Curve:    p.Curve,
			Wobble:   p.Wobble,
			TrailCap: p.TrailLen,
		}
		if p.Wobble > 0 {
			pt.Phase = rng.Float64() * 1000
		}
		if pt.TrailCap > 0 {
			pt.Trail = make([]mathutil.Vec2, 0, pt.TrailCap)
		}
		batch = append(batch, pt)
	}
	return batch
}

func jitter(c colorutil.Color, dr, dg, db float64) colorutil.Color {
	return colorutil.New(
		int(float64(c.R)+dr),
		int(float64(c.G)+dg),
		int(float64(c.B)+db),
	).WithAlpha(c.A)
}
