package colorutil

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit RGBA color. The zero value is transparent black.
type Color struct {
	R, G, B, A uint8
}

// New builds an opaque color, clamping each component to [0, 255].
func New(r, g, b int) Color {
	return NewAlpha(r, g, b, 255)
}

func NewAlpha(r, g, b, a int) Color {
	return Color{clamp8(r), clamp8(g), clamp8(b), clamp8(a)}
}

func clamp8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// RGBA implements image/color.Color with premultiplied alpha.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * uint32(c.A) / 255 * 0x101
	g = uint32(c.G) * uint32(c.A) / 255 * 0x101
	b = uint32(c.B) * uint32(c.A) / 255 * 0x101
	a = uint32(c.A) * 0x101
	return
}

func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) HexAlpha() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// FromHex parses "#rgb" or "#rrggbb", with or without the leading hash.
func FromHex(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	cf, err := colorful.Hex("#" + strings.ToLower(s))
	if err != nil {
		return Color{}, fmt.Errorf("parse hex color %q: %w", s, err)
	}
	return fromColorful(cf, 255), nil
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func fromColorful(cf colorful.Color, a uint8) Color {
	r, g, b := cf.Clamped().RGB255()
	return Color{r, g, b, a}
}

// HSV returns hue in degrees [0, 360) and saturation/value in [0, 1].
func (c Color) HSV() (h, s, v float64) {
	return c.colorful().Hsv()
}

// HSL returns hue in degrees [0, 360) and saturation/lightness in [0, 1].
func (c Color) HSL() (h, s, l float64) {
	return c.colorful().Hsl()
}

func FromHSV(h, s, v float64) Color {
	return fromColorful(colorful.Hsv(h, s, v), 255)
}

// Brightness is the perceived luma in [0, 1].
func (c Color) Brightness() float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}

func (c Color) IsDark() bool  { return c.Brightness() < 0.5 }
func (c Color) IsLight() bool { return c.Brightness() >= 0.5 }

// Contrast returns black for light colors and white for dark ones.
func (c Color) Contrast() Color {
	if c.IsLight() {
		return Color{0, 0, 0, 255}
	}
	return Color{255, 255, 255, 255}
}

// Blend mixes c toward other by t in [0, 1]; alpha blends too.
func (c Color) Blend(other Color, t float64) Color {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return Color{
		uint8(float64(c.R) + (float64(other.R)-float64(c.R))*t),
		uint8(float64(c.G) + (float64(other.G)-float64(c.G))*t),
		uint8(float64(c.B) + (float64(other.B)-float64(c.B))*t),
		uint8(float64(c.A) + (float64(other.A)-float64(c.A))*t),
	}
}

// Darken scales the color toward black by f in [0, 1].
func (c Color) Darken(f float64) Color {
	f = clamp01(f)
	return Color{
		uint8(float64(c.R) * (1 - f)),
		uint8(float64(c.G) * (1 - f)),
		uint8(float64(c.B) * (1 - f)),
		c.A,
	}
}

// Lighten moves the color toward white by f in [0, 1].
func (c Color) Lighten(f float64) Color {
	f = clamp01(f)
	return Color{
		uint8(float64(c.R) + (255-float64(c.R))*f),
		uint8(float64(c.G) + (255-float64(c.G))*f),
		uint8(float64(c.B) + (255-float64(c.B))*f),
		c.A,
	}
}

func (c Color) Saturate(f float64) Color {
	h, s, v := c.HSV()
	s = clamp01(s + f)
	out := fromColorful(colorful.Hsv(h, s, v), c.A)
	return out
}

func (c Color) Desaturate(f float64) Color {
	h, s, v := c.HSV()
	s = clamp01(s - f)
	out := fromColorful(colorful.Hsv(h, s, v), c.A)
	return out
}

// RotateHue shifts the hue by deg degrees, wrapping around the wheel.
func (c Color) RotateHue(deg float64) Color {
	h, s, v := c.HSV()
	h += deg
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	return fromColorful(colorful.Hsv(h, s, v), c.A)
}

func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

func (c Color) String() string {
	return fmt.Sprintf("Color(%d, %d, %d, %d)", c.R, c.G, c.B, c.A)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
