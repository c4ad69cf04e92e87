package mathutil

import "github.com/aquilax/go-perlin"

// NoiseField is a deterministic 2D Perlin noise source. The same seed
// always produces the same field.
type NoiseField struct {
	p *perlin.Perlin
}

func NewNoiseField(seed int64) *NoiseField {
	return &NoiseField{p: perlin.NewPerlin(2, 2, 2, seed)}
}

// At samples the field at (x, y). Values stay roughly within [-1, 1].
func (n *NoiseField) At(x, y float64) float64 {
	return n.p.Noise2D(x, y)
}

// Map samples a w by h grid at the given coordinate scale, row-major.
func (n *NoiseField) Map(w, h int, scale float64) [][]float64 {
	if w <= 0 || h <= 0 {
		return nil
	}
	m := make([][]float64, h)
	for y := range m {
		row := make([]float64, w)
		for x := range row {
			row[x] = n.p.Noise2D(float64(x)*scale, float64(y)*scale)
		}
		m[y] = row
	}
	return m
}
