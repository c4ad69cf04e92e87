package mathutil

import "math/rand"

// Range is a closed interval of float64 values.
type Range struct {
	Min, Max float64
}

func R(min, max float64) Range { return Range{min, max} }

// Random returns a value in [Min, Max] drawn from rng.
func (r Range) Random(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

func (r Range) Span() float64 { return r.Max - r.Min }

// Clamp limits v to the range.
func (r Range) Clamp(v float64) float64 { return Clamp(v, r.Min, r.Max) }

// Contains reports whether v lies inside the closed interval.
func (r Range) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

// RandRange returns a value in [lo, hi] drawn from rng.
func RandRange(rng *rand.Rand, lo, hi float64) float64 {
	return Range{lo, hi}.Random(rng)
}
