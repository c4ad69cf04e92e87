package plugin

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/Rakly3/CursorDemo/engine/mathutil"
)

// Stencil rasterizes word in the given face and returns one offset per
// lit pixel, centered on the origin. The offsets are in font pixels;
// scale them up before spawning particles on them.
func Stencil(word string, face font.Face) []mathutil.Vec2 {
	if word == "" || face == nil {
		return nil
	}

	bounds, _ := font.BoundString(face, word)
	w := (bounds.Max.X - bounds.Min.X).Ceil()
	h := (bounds.Max.Y - bounds.Min.Y).Ceil()
	if w <= 0 || h <= 0 {
		return nil
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  mask,
		Src:  image.White,
		Face: face,
		Dot:  fixed.Point26_6{X: -bounds.Min.X, Y: -bounds.Min.Y},
	}
	d.DrawString(word)

	cx := float64(w) / 2
	cy := float64(h) / 2
	var pts []mathutil.Vec2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if mask.AlphaAt(x, y).A > 0x7f {
				pts = append(pts, mathutil.Vec2{X: float64(x) - cx, Y: float64(y) - cy})
			}
		}
	}
	return pts
}
