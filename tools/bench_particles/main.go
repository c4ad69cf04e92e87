// Tool to measure particle throughput without opening a window.
// Runs the system headless at a fixed step, with the demo's ambient
// emitters plus a periodic explosion, and reports tick cost.
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/Rakly3/CursorDemo/engine/mathutil"
	"github.com/Rakly3/CursorDemo/engine/particles"
)

func main() {
	maxParticles := flag.Int("cap", 5000, "particle cap")
	seconds := flag.Float64("seconds", 10, "simulated seconds")
	seed := flag.Int64("seed", 1, "rng seed")
	flag.Parse()

	sys := particles.NewSystem(particles.Options{MaxParticles: *maxParticles, Seed: *seed})
	sys.AddEmitter(particles.NewEmitter(mathutil.Vec2{X: 400, Y: 550}, particles.Fire()))
	for i := 0; i < 5; i++ {
		pos := mathutil.Vec2{X: 100 + float64(i)*150, Y: 200}
		sys.AddEmitter(particles.NewEmitter(pos, particles.Sparkle()))
	}

	const step = 1.0 / 60.0
	ticks := int(*seconds / step)
	peak := 0

	start := time.Now()
	for i := 0; i < ticks; i++ {
		if i%120 == 0 {
			sys.SpawnEffect("explosion", mathutil.Vec2{X: 400, Y: 300}, 0)
		}
		sys.Tick(step)
		if n := sys.Len(); n > peak {
			peak = n
		}
	}
	elapsed := time.Since(start)

	perTick := float64(elapsed.Microseconds()) / float64(ticks)
	fmt.Printf("%d ticks in %s (%.1f us/tick)\n", ticks, elapsed.Round(time.Millisecond), perTick)
	fmt.Printf("live %d, peak %d, cap %d\n", sys.Len(), peak, *maxParticles)
}
