package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/inconsolata"
)

// Faces for the demo's two text sizes. The HUD uses the debug printer
// instead; these are for titles and scene captions.
var (
	TitleFace   font.Face = inconsolata.Bold8x16
	CaptionFace font.Face = inconsolata.Regular8x16
)

// TextWidth measures s in the given face.
func TextWidth(face font.Face, s string) int {
	return text.BoundString(face, s).Dx()
}

// DrawTitle centers s horizontally and draws it with a drop shadow.
func DrawTitle(screen *ebiten.Image, s string, y int, clr color.Color) {
	x := (screen.Bounds().Dx() - TextWidth(TitleFace, s)) / 2
	DrawTitleAt(screen, s, x, y, clr)
}

// DrawTitleAt draws the shadowed title at an explicit x.
func DrawTitleAt(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	text.Draw(screen, s, TitleFace, x+1, y+1, color.RGBA{0, 0, 0, 180})
	text.Draw(screen, s, TitleFace, x, y, clr)
}

// DrawCaption draws s left-aligned at x, y.
func DrawCaption(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	text.Draw(screen, s, CaptionFace, x, y, clr)
}

// DrawCaptionCentered centers s horizontally at y.
func DrawCaptionCentered(screen *ebiten.Image, s string, y int, clr color.Color) {
	x := (screen.Bounds().Dx() - TextWidth(CaptionFace, s)) / 2
	text.Draw(screen, s, CaptionFace, x, y, clr)
}
