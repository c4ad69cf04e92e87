package render

import (
	"image/color"
	"iter"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Rakly3/CursorDemo/engine/colorutil"
	"github.com/Rakly3/CursorDemo/engine/particles"
)

// DrawParticles renders one frame of particle visuals: trail strokes
// first, then a soft glow disc, the core disc, and a glint cross on
// spinning particles.
func DrawParticles(screen *ebiten.Image, states iter.Seq[particles.VisualState]) {
	for vs := range states {
		alpha := float64(vs.Color.A) / 255 * vs.Opacity
		if alpha <= 0 || vs.Size <= 0 {
			continue
		}

		drawTrail(screen, vs, alpha)

		x := float32(vs.Pos.X)
		y := float32(vs.Pos.Y)
		size := float32(vs.Size)

		// Glow
		vector.DrawFilledCircle(screen, x, y, size*2, tint(vs.Color, alpha*0.25), false)
		vector.DrawFilledCircle(screen, x, y, size, tint(vs.Color, alpha), false)

		if vs.Rotation != 0 {
			drawGlint(screen, vs, alpha)
		}
	}
}

func drawTrail(screen *ebiten.Image, vs particles.VisualState, alpha float64) {
	n := len(vs.Trail)
	if n < 2 {
		return
	}
	for i := 1; i < n; i++ {
		// Oldest segments fade out first
		a := alpha * trailFade(i, n)
		clr := tint(vs.Color, a)
		x0, y0 := float32(vs.Trail[i-1].X), float32(vs.Trail[i-1].Y)
		x1, y1 := float32(vs.Trail[i].X), float32(vs.Trail[i].Y)
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, clr, false)
	}
}

func drawGlint(screen *ebiten.Image, vs particles.VisualState, alpha float64) {
	arm := vs.Size * 2.5
	clr := tint(colorutil.White, alpha*0.8)
	for _, rot := range [2]float64{vs.Rotation, vs.Rotation + math.Pi/2} {
		dx := float32(math.Cos(rot) * arm)
		dy := float32(math.Sin(rot) * arm)
		cx, cy := float32(vs.Pos.X), float32(vs.Pos.Y)
		vector.StrokeLine(screen, cx-dx, cy-dy, cx+dx, cy+dy, 1, clr, false)
	}
}

// trailFade returns the alpha factor for trail segment i of n, rising
// from the oldest segment toward the head.
func trailFade(i, n int) float64 {
	if n <= 1 {
		return 1
	}
	return float64(i) / float64(n) * 0.6
}

// tint converts a particle color plus a combined opacity into the
// RGBA ebiten's vector package expects.
func tint(c colorutil.Color, alpha float64) color.RGBA {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{c.R, c.G, c.B, uint8(alpha * 255)}
}
