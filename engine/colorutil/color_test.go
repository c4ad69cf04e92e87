package colorutil

import (
	"math"
	"math/rand"
	"testing"
)

// TestNewClamps verifies component clamping on construction
func TestNewClamps(t *testing.T) {
	c := New(300, -20, 128)
	if c.R != 255 || c.G != 0 || c.B != 128 || c.A != 255 {
		t.Errorf("Expected (255,0,128,255), got %v", c)
	}
}

// TestHexRoundTrip verifies Hex/FromHex agree
func TestHexRoundTrip(t *testing.T) {
	c := New(255, 100, 0)
	if got := c.Hex(); got != "#ff6400" {
		t.Errorf("Expected #ff6400, got %s", got)
	}
	back, err := FromHex(c.Hex())
	if err != nil {
		t.Fatalf("FromHex failed: %v", err)
	}
	if back != c {
		t.Errorf("Round trip mismatch: %v -> %v", c, back)
	}
}

// TestFromHexShortForm verifies #rgb expands per digit
func TestFromHexShortForm(t *testing.T) {
	c, err := FromHex("#f80")
	if err != nil {
		t.Fatalf("FromHex short form failed: %v", err)
	}
	if c.R != 0xff || c.G != 0x88 || c.B != 0x00 {
		t.Errorf("Expected (255,136,0), got %v", c)
	}
	if _, err := FromHex("not-a-color"); err == nil {
		t.Error("Expected error for invalid hex")
	}
}

// TestHSVKnownValues verifies primary hue positions
func TestHSVKnownValues(t *testing.T) {
	h, s, v := New(255, 0, 0).HSV()
	if h != 0 || s != 1 || v != 1 {
		t.Errorf("Red: expected (0,1,1), got (%f,%f,%f)", h, s, v)
	}
	h, _, _ = New(0, 255, 0).HSV()
	if math.Abs(h-120) > 0.5 {
		t.Errorf("Green: expected hue 120, got %f", h)
	}
	if got := FromHSV(240, 1, 1); got.B != 255 || got.R != 0 {
		t.Errorf("FromHSV(240,1,1): expected blue, got %v", got)
	}
}

// TestBlend verifies endpoints and factor clamping
func TestBlend(t *testing.T) {
	black, white := New(0, 0, 0), New(255, 255, 255)
	if got := black.Blend(white, 0); got != black {
		t.Errorf("Blend t=0: got %v", got)
	}
	if got := black.Blend(white, 1); got != white {
		t.Errorf("Blend t=1: got %v", got)
	}
	if got := black.Blend(white, 5); got != white {
		t.Errorf("Blend t>1 should clamp: got %v", got)
	}
	mid := black.Blend(white, 0.5)
	if mid.R < 126 || mid.R > 128 {
		t.Errorf("Blend midpoint: got %v", mid)
	}
}

// TestDarkenLighten verifies direction and full range
func TestDarkenLighten(t *testing.T) {
	c := New(100, 150, 200)
	d := c.Darken(0.5)
	if d.R != 50 || d.G != 75 || d.B != 100 {
		t.Errorf("Darken 0.5: got %v", d)
	}
	if got := c.Darken(1); got.R != 0 || got.G != 0 || got.B != 0 {
		t.Errorf("Darken 1 should reach black, got %v", got)
	}
	l := c.Lighten(1)
	if l.R != 255 || l.G != 255 || l.B != 255 {
		t.Errorf("Lighten 1 should reach white, got %v", l)
	}
	if got := New(50, 50, 50).Lighten(0); got != New(50, 50, 50) {
		t.Errorf("Lighten 0 should not change color, got %v", got)
	}
}

// TestRotateHue verifies the complementary relationship
func TestRotateHue(t *testing.T) {
	red := New(255, 0, 0)
	cyan := red.RotateHue(180)
	if cyan.G < 250 || cyan.B < 250 || cyan.R > 5 {
		t.Errorf("Expected cyan, got %v", cyan)
	}
	if got := red.RotateHue(360); got != red {
		t.Errorf("Full rotation should return the same color, got %v", got)
	}
	if got := Complementary(red); got != cyan {
		t.Errorf("Complementary disagrees with RotateHue(180): %v vs %v", got, cyan)
	}
}

// TestBrightnessContrast verifies luma weighting and contrast picks
func TestBrightnessContrast(t *testing.T) {
	if b := New(255, 255, 255).Brightness(); math.Abs(b-1) > 1e-9 {
		t.Errorf("White brightness: got %f", b)
	}
	if b := New(0, 0, 0).Brightness(); b != 0 {
		t.Errorf("Black brightness: got %f", b)
	}
	if !New(20, 20, 20).IsDark() {
		t.Error("Expected near-black to be dark")
	}
	if got := New(255, 255, 0).Contrast(); got != New(0, 0, 0) {
		t.Errorf("Yellow contrast should be black, got %v", got)
	}
	if got := New(0, 0, 100).Contrast(); got != New(255, 255, 255) {
		t.Errorf("Dark blue contrast should be white, got %v", got)
	}
}

// TestGradient verifies length, endpoints and the degenerate case
func TestGradient(t *testing.T) {
	a, b := New(0, 0, 0), New(255, 255, 255)
	g := Gradient(a, b, 5)
	if len(g) != 5 {
		t.Fatalf("Expected 5 colors, got %d", len(g))
	}
	if g[0] != a || g[4] != b {
		t.Errorf("Endpoints: got %v and %v", g[0], g[4])
	}
	if got := Gradient(a, b, 1); len(got) != 1 || got[0] != a {
		t.Errorf("steps=1 should yield just the start, got %v", got)
	}
	if got := Gradient(a, b, 0); len(got) != 1 || got[0] != a {
		t.Errorf("steps=0 should yield just the start, got %v", got)
	}
}

// TestRainbow verifies count and hue coverage
func TestRainbow(t *testing.T) {
	r := Rainbow(6)
	if len(r) != 6 {
		t.Fatalf("Expected 6 colors, got %d", len(r))
	}
	if r[0].R != 255 || r[0].G != 0 {
		t.Errorf("First rainbow color should be red, got %v", r[0])
	}
	if Rainbow(0) != nil {
		t.Error("Expected nil for zero steps")
	}
}

// TestHarmonySchemes verifies counts and base color retention
func TestHarmonySchemes(t *testing.T) {
	c := New(255, 0, 0)
	if got := Triadic(c); len(got) != 3 || got[0] != c {
		t.Errorf("Triadic: got %v", got)
	}
	if got := Tetradic(c); len(got) != 4 || got[0] != c {
		t.Errorf("Tetradic: got %v", got)
	}
	if got := Analogous(c, 3); len(got) != 3 {
		t.Errorf("Analogous: got %d colors", len(got))
	}
	if got := Analogous(c, 0); got != nil {
		t.Error("Analogous with count 0 should be nil")
	}
}

// TestByName verifies lookup and case folding
func TestByName(t *testing.T) {
	c, ok := ByName("Orange")
	if !ok || c != New(255, 165, 0) {
		t.Errorf("Expected orange (255,165,0), got %v ok=%v", c, ok)
	}
	if _, ok := ByName("vermilion"); ok {
		t.Error("Expected unknown name to miss")
	}
}

// TestDistanceClosest verifies metric and nearest pick
func TestDistanceClosest(t *testing.T) {
	if d := Distance(New(10, 10, 10), New(10, 10, 10)); d > 1e-9 {
		t.Errorf("Identical colors should be distance 0, got %f", d)
	}
	d := Distance(New(0, 0, 0), New(255, 255, 255))
	if math.Abs(d-math.Sqrt(3)*255) > 1 {
		t.Errorf("Black-white distance: got %f", d)
	}

	candidates := []Color{New(250, 0, 0), New(0, 250, 0), New(0, 0, 250)}
	if got := Closest(New(255, 10, 10), candidates); got != candidates[0] {
		t.Errorf("Expected near-red pick, got %v", got)
	}
	target := New(1, 2, 3)
	if got := Closest(target, nil); got != target {
		t.Errorf("Empty candidates should return target, got %v", got)
	}
}

// TestRandomPalettes verifies determinism and HSV band membership
func TestRandomPalettes(t *testing.T) {
	a := RandomBright(rand.New(rand.NewSource(5)))
	b := RandomBright(rand.New(rand.NewSource(5)))
	if a != b {
		t.Errorf("Same seed produced different colors: %v vs %v", a, b)
	}

	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 50; i++ {
		_, s, v := RandomBright(rng).HSV()
		if s < 0.45 || v < 0.65 {
			t.Fatalf("Bright color out of band: s=%f v=%f", s, v)
		}
	}
	for i := 0; i < 50; i++ {
		_, _, v := RandomDark(rng).HSV()
		if v > 0.45 {
			t.Fatalf("Dark color too bright: v=%f", v)
		}
	}
	for i := 0; i < 50; i++ {
		_, s, v := RandomPastel(rng).HSV()
		if s > 0.55 || v < 0.75 {
			t.Fatalf("Pastel color out of band: s=%f v=%f", s, v)
		}
	}
}
