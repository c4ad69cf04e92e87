package render

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Rakly3/CursorDemo/engine/colorutil"
	"github.com/Rakly3/CursorDemo/engine/mathutil"
)

// gradientBands is the vertical resolution of the gradient column.
const gradientBands = 32

// Background fills the screen with a vertical gradient that slowly
// pulses between its base and peak colors.
type Background struct {
	Top     colorutil.Color
	Bottom  colorutil.Color
	PeakTop colorutil.Color // top color at the pulse crest
	Period  float64         // seconds per pulse, 0 disables

	phase     float64
	img       *ebiten.Image
	lastPulse float64
}

// NewBackground uses the demo's midnight palette with a faint pulse.
func NewBackground() *Background {
	return &Background{
		Top:     colorutil.New(8, 8, 26),
		Bottom:  colorutil.New(26, 26, 46),
		PeakTop: colorutil.New(16, 10, 40),
		Period:  6,
	}
}

// Update advances the pulse clock.
func (b *Background) Update(dt float64) {
	if b.Period <= 0 || dt <= 0 {
		return
	}
	b.phase = math.Mod(b.phase+dt/b.Period, 1)
}

// Pulse returns the eased pulse level in [0, 1].
func (b *Background) Pulse() float64 {
	if b.Period <= 0 {
		return 0
	}
	wave := (math.Sin(b.phase*2*math.Pi) + 1) / 2
	return mathutil.SmoothStep(0, 1, wave)
}

// Draw stretches a cached one-pixel-wide gradient column over the
// screen, refilling it only when the pulse has moved visibly.
func (b *Background) Draw(screen *ebiten.Image) {
	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()

	if b.img == nil {
		b.img = ebiten.NewImage(1, gradientBands)
		b.lastPulse = -1
	}
	pulse := b.Pulse()
	if math.Abs(pulse-b.lastPulse) > 0.004 {
		b.fill(pulse)
		b.lastPulse = pulse
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h)/gradientBands)
	screen.DrawImage(b.img, op)
}

func (b *Background) fill(pulse float64) {
	top := b.Top.Blend(b.PeakTop, pulse)
	for i := 0; i < gradientBands; i++ {
		t := float64(i) / float64(gradientBands)
		b.img.Set(0, i, top.Blend(b.Bottom, mathutil.EaseInOut(t)))
	}
}

// DrawGrid overlays faint guide lines spaced every step pixels.
func DrawGrid(screen *ebiten.Image, step int, clr colorutil.Color) {
	if step <= 0 {
		return
	}
	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())
	for x := float32(0); x < w; x += float32(step) {
		vector.StrokeLine(screen, x, 0, x, h, 1, clr, false)
	}
	for y := float32(0); y < h; y += float32(step) {
		vector.StrokeLine(screen, 0, y, w, y, 1, clr, false)
	}
}
