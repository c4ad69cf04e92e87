package particles

import (
	"math"

	"github.com/Rakly3/CursorDemo/engine/colorutil"
	"github.com/Rakly3/CursorDemo/engine/mathutil"
)

// Curve selects how a particle's visual attributes interpolate over
// its life.
type Curve uint8

const (
	CurveLinear Curve = iota
	CurveEaseIn
	CurveEaseOut
)

func (c Curve) apply(t float64) float64 {
	switch c {
	case CurveEaseIn:
		return mathutil.EaseIn(t)
	case CurveEaseOut:
		return mathutil.EaseOut(t)
	default:
		return mathutil.Clamp01(t)
	}
}

// Particle is one simulated point. All fields are fixed at spawn except
// the kinematic state mutated by Advance. Instances live in the
// System's collection and are never shared.
type Particle struct {
	Pos mathutil.Vec2
	Vel mathutil.Vec2
	Acc mathutil.Vec2

	Age      float64
	Lifetime float64

	Size    float64
	SizeEnd float64

	// Friction is a per-second damping coefficient applied as
	// vel *= (1 - Friction*dt), floored at zero so damping can
	// never reverse direction.
	Friction float64

	Rotation float64
	Spin     float64

	Start, End colorutil.Color
	Curve      Curve

	// Wobble is the magnitude of noise-driven horizontal drift the
	// System applies each tick; zero disables it. Phase offsets the
	// noise sample so particles drift independently.
	Wobble float64
	Phase  float64

	Trail    []mathutil.Vec2
	TrailCap int
}

// Advance integrates one timestep. Position uses the pre-update
// velocity, then acceleration and friction apply, matching the frame
// order the rest of the simulation assumes. Zero, negative, and NaN
// dt are no-ops.
func (p *Particle) Advance(dt float64) {
	if dt <= 0 || math.IsNaN(dt) {
		return
	}
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	p.Vel = p.Vel.Add(p.Acc.Scale(dt))
	if p.Friction > 0 {
		damp := 1 - p.Friction*dt
		if damp < 0 {
			damp = 0
		}
		p.Vel = p.Vel.Scale(damp)
	}
	p.Rotation += p.Spin * dt
	if p.TrailCap > 0 {
		p.recordTrail()
	}
	p.Age += dt
}

func (p *Particle) recordTrail() {
	if len(p.Trail) < p.TrailCap {
		p.Trail = append(p.Trail, p.Pos)
		return
	}
	copy(p.Trail, p.Trail[1:])
	p.Trail[len(p.Trail)-1] = p.Pos
}

// Alive reports whether the particle should stay in the live set.
// Age exactly equal to Lifetime counts as dead.
func (p *Particle) Alive() bool {
	return p.Age < p.Lifetime
}

// LifeRatio is Age/Lifetime clamped to [0, 1].
func (p *Particle) LifeRatio() float64 {
	if p.Lifetime <= 0 {
		return 1
	}
	return mathutil.Clamp01(p.Age / p.Lifetime)
}

// VisualState is a render snapshot derived from a particle. Trail
// aliases the particle's own buffer and must be treated as read-only.
type VisualState struct {
	Pos      mathutil.Vec2
	Color    colorutil.Color
	Size     float64
	Opacity  float64
	Rotation float64
	Trail    []mathutil.Vec2
}

// VisualState derives the current snapshot. Opacity fades from 1 to 0
// and Size moves from Size to SizeEnd along the particle's curve;
// neither goes negative.
func (p *Particle) VisualState() VisualState {
	t := p.Curve.apply(p.LifeRatio())
	size := p.Size + (p.SizeEnd-p.Size)*t
	if size < 0 {
		size = 0
	}
	return VisualState{
		Pos:      p.Pos,
		Color:    p.Start.Blend(p.End, t),
		Size:     size,
		Opacity:  1 - t,
		Rotation: p.Rotation,
		Trail:    p.Trail,
	}
}
