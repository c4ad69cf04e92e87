package perf

import (
	"log"
	"time"

	"github.com/charmbracelet/harmonica"
)

// StartTimer measures a named section. Defer the returned func:
//
//	defer perf.StartTimer("scene rebuild")()
func StartTimer(name string) func() {
	start := time.Now()
	return func() {
		log.Printf("perf: %s took %s", name, time.Since(start).Round(time.Microsecond))
	}
}

// SmoothedFPS springs a displayed FPS value toward the measured one so
// the HUD number settles instead of flickering.
type SmoothedFPS struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
}

// NewSmoothedFPS builds a critically damped spring stepped at the
// given update rate.
func NewSmoothedFPS(updateFPS int) *SmoothedFPS {
	if updateFPS <= 0 {
		updateFPS = 60
	}
	return &SmoothedFPS{
		spring: harmonica.NewSpring(harmonica.FPS(updateFPS), 4.0, 1.0),
	}
}

// Update advances the spring one step toward target and returns the
// smoothed value.
func (s *SmoothedFPS) Update(target float64) float64 {
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, target)
	return s.pos
}

// Value returns the current smoothed value without stepping.
func (s *SmoothedFPS) Value() float64 { return s.pos }

// Snap jumps straight to v and kills any motion.
func (s *SmoothedFPS) Snap(v float64) {
	s.pos = v
	s.vel = 0
}
