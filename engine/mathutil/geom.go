package mathutil

// Rect is an axis-aligned rectangle in screen space.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Center() Vec2 { return Vec2{r.X + r.W/2, r.Y + r.H/2} }

func PointInCircle(p, center Vec2, radius float64) bool {
	return p.Sub(center).LenSq() <= radius*radius
}

func PointInRect(p Vec2, r Rect) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

func CirclesOverlap(c1 Vec2, r1 float64, c2 Vec2, r2 float64) bool {
	sum := r1 + r2
	return c1.Sub(c2).LenSq() <= sum*sum
}

func RectsOverlap(a, b Rect) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X && a.Y < b.Y+b.H && a.Y+a.H > b.Y
}
