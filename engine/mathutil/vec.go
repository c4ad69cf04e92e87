package mathutil

import "math"

// Vec2 is a 2D vector in screen space (Y grows downward).
type Vec2 struct {
	X, Y float64
}

func V2(x, y float64) Vec2 { return Vec2{x, y} }

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Dot(o Vec2) float64   { return v.X*o.X + v.Y*o.Y }
func (v Vec2) Cross(o Vec2) float64 { return v.X*o.Y - v.Y*o.X }
func (v Vec2) Len() float64         { return math.Sqrt(v.X*v.X + v.Y*v.Y) }
func (v Vec2) LenSq() float64       { return v.X*v.X + v.Y*v.Y }

func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l < 1e-10 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

// Rotate rotates v by angle radians around the origin.
func (v Vec2) Rotate(angle float64) Vec2 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Vec2{v.X*c - v.Y*s, v.X*s + v.Y*c}
}

// Angle returns the direction of v in radians.
func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// AngleTo returns the direction from v toward o.
func (v Vec2) AngleTo(o Vec2) float64 { return o.Sub(v).Angle() }

func (v Vec2) Distance(o Vec2) float64 { return o.Sub(v).Len() }

// FromAngle builds a unit vector pointing at angle radians.
func FromAngle(angle float64) Vec2 {
	return Vec2{math.Cos(angle), math.Sin(angle)}
}

// RotateAround rotates p by angle radians around center.
func RotateAround(p, center Vec2, angle float64) Vec2 {
	return p.Sub(center).Rotate(angle).Add(center)
}
