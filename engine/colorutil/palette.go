package colorutil

import (
	"math/rand"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Gradient returns steps colors fading from a to b inclusive.
// steps <= 1 yields just the start color.
func Gradient(a, b Color, steps int) []Color {
	if steps <= 1 {
		return []Color{a}
	}
	out := make([]Color, steps)
	for i := range out {
		out[i] = a.Blend(b, float64(i)/float64(steps-1))
	}
	return out
}

// Rainbow returns steps fully saturated colors spanning the hue wheel.
func Rainbow(steps int) []Color {
	if steps <= 0 {
		return nil
	}
	out := make([]Color, steps)
	for i := range out {
		h := float64(i) / float64(steps) * 360
		out[i] = fromColorful(colorful.Hsv(h, 1, 1), 255)
	}
	return out
}

func Complementary(c Color) Color {
	return c.RotateHue(180)
}

// Analogous returns count colors spread 30 degrees apart around c's hue.
func Analogous(c Color, count int) []Color {
	if count <= 0 {
		return nil
	}
	out := make([]Color, count)
	for i := range out {
		offset := float64(i-count/2) * 30
		out[i] = c.RotateHue(offset)
	}
	return out
}

func Triadic(c Color) []Color {
	return []Color{c, c.RotateHue(120), c.RotateHue(240)}
}

func Tetradic(c Color) []Color {
	return []Color{c, c.RotateHue(90), c.RotateHue(180), c.RotateHue(270)}
}

var (
	White = Color{255, 255, 255, 255}
	Black = Color{0, 0, 0, 255}
)

var named = map[string]Color{
	"red":     {255, 0, 0, 255},
	"green":   {0, 255, 0, 255},
	"blue":    {0, 0, 255, 255},
	"yellow":  {255, 255, 0, 255},
	"cyan":    {0, 255, 255, 255},
	"magenta": {255, 0, 255, 255},
	"white":   {255, 255, 255, 255},
	"black":   {0, 0, 0, 255},
	"gray":    {128, 128, 128, 255},
	"orange":  {255, 165, 0, 255},
	"purple":  {128, 0, 128, 255},
	"pink":    {255, 192, 203, 255},
	"brown":   {165, 42, 42, 255},
	"lime":    {0, 255, 0, 255},
	"navy":    {0, 0, 128, 255},
	"teal":    {0, 128, 128, 255},
	"olive":   {128, 128, 0, 255},
	"maroon":  {128, 0, 0, 255},
	"silver":  {192, 192, 192, 255},
	"gold":    {255, 215, 0, 255},
}

// ByName looks up a common color name, case-insensitively.
func ByName(name string) (Color, bool) {
	c, ok := named[strings.ToLower(name)]
	return c, ok
}

// Distance is the Euclidean RGB distance on the 0-255 scale.
func Distance(a, b Color) float64 {
	return a.colorful().DistanceRgb(b.colorful()) * 255
}

// Closest picks the candidate nearest to target, or target itself when
// the list is empty.
func Closest(target Color, candidates []Color) Color {
	if len(candidates) == 0 {
		return target
	}
	best := candidates[0]
	bestD := Distance(target, best)
	for _, c := range candidates[1:] {
		if d := Distance(target, c); d < bestD {
			best, bestD = c, d
		}
	}
	return best
}

func Random(rng *rand.Rand) Color {
	return Color{uint8(rng.Intn(256)), uint8(rng.Intn(256)), uint8(rng.Intn(256)), 255}
}

func RandomBright(rng *rand.Rand) Color {
	return randomHSV(rng, 0.5, 1.0, 0.7, 1.0)
}

func RandomPastel(rng *rand.Rand) Color {
	return randomHSV(rng, 0.2, 0.5, 0.8, 1.0)
}

func RandomDark(rng *rand.Rand) Color {
	return randomHSV(rng, 0.3, 0.8, 0.1, 0.4)
}

func randomHSV(rng *rand.Rand, sLo, sHi, vLo, vHi float64) Color {
	h := rng.Float64() * 360
	s := sLo + rng.Float64()*(sHi-sLo)
	v := vLo + rng.Float64()*(vHi-vLo)
	return fromColorful(colorful.Hsv(h, s, v), 255)
}
