package particles

import (
	"iter"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/Rakly3/CursorDemo/engine/mathutil"
)

// fallbackPreset is what SpawnEffect uses when asked for a name the
// registry doesn't have: a visible but cheap effect, so interactions
// always give feedback instead of silently doing nothing.
const fallbackPreset = "sparkle"

// Options configures a System. Zero values get working defaults; a
// zero Seed means a time-derived one, so pass an explicit seed for
// reproducible runs.
type Options struct {
	MaxParticles int
	Gravity      mathutil.Vec2
	Friction     float64
	Seed         int64
	Presets      map[string]Preset
}

// System owns the live particle collection and every emitter feeding
// it. All methods must be called from the same goroutine; the frame
// loop drives Tick then RenderState, in that order.
type System struct {
	particles []Particle
	emitters  []*Emitter
	presets   map[string]Preset

	max      int
	gravity  mathutil.Vec2
	friction float64

	rng   *rand.Rand
	noise *mathutil.NoiseField
	clock float64
}

func NewSystem(opts Options) *System {
	if opts.MaxParticles <= 0 {
		opts.MaxParticles = 1000
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Presets == nil {
		opts.Presets = DefaultPresets()
	}
	if opts.Friction < 0 {
		log.Printf("particles: negative global friction %f clamped to 0", opts.Friction)
		opts.Friction = 0
	}
	return &System{
		particles: make([]Particle, 0, opts.MaxParticles),
		presets:   opts.Presets,
		max:       opts.MaxParticles,
		gravity:   opts.Gravity,
		friction:  opts.Friction,
		rng:       rand.New(rand.NewSource(opts.Seed)),
		noise:     mathutil.NewNoiseField(opts.Seed),
	}
}

// Tick advances the simulation by dt seconds: emitters release their
// due particles, every particle integrates one step, and expired ones
// are culled in place. Negative and NaN dt are treated as zero, which
// still culls so an exactly-expired particle never survives the call.
func (s *System) Tick(dt float64) {
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}
	s.clock += dt

	if dt > 0 {
		for _, e := range s.emitters {
			s.add(e.Emit(dt, s.rng))
		}
	}

	alive := s.particles[:0]
	for i := range s.particles {
		p := &s.particles[i]
		if dt > 0 {
			if s.gravity != (mathutil.Vec2{}) {
				p.Vel = p.Vel.Add(s.gravity.Scale(dt))
			}
			if s.friction > 0 {
				damp := 1 - s.friction*dt
				if damp < 0 {
					damp = 0
				}
				p.Vel = p.Vel.Scale(damp)
			}
			if p.Wobble > 0 {
				p.Vel.X += s.noise.At(p.Phase, s.clock*0.5) * p.Wobble * dt
			}
			p.Advance(dt)
		}
		if !p.Alive() {
			continue
		}
		alive = append(alive, *p)
	}
	s.particles = alive
}

// SpawnEffect spawns count particles of the named preset at origin and
// returns how many were actually added. Unknown names log and fall
// back to the sparkle preset. A count <= 0 rolls the preset's own
// batch size. The spawn is truncated so the live total never exceeds
// the cap; existing particles are always kept over new ones.
func (s *System) SpawnEffect(name string, origin mathutil.Vec2, count int) int {
	p, ok := s.presets[name]
	if !ok {
		log.Printf("particles: unknown preset %q, falling back to %q", name, fallbackPreset)
		p, ok = s.presets[fallbackPreset]
		if !ok {
			return 0
		}
	}
	return s.SpawnAt(p, origin, count)
}

// SpawnAt is SpawnEffect for a caller-supplied preset.
func (s *System) SpawnAt(p Preset, origin mathutil.Vec2, count int) int {
	if count <= 0 {
		count = int(p.Count.Random(s.rng))
	}
	room := s.max - len(s.particles)
	if room <= 0 {
		return 0
	}
	if count > room {
		count = room
	}
	return s.add(Spawn(origin, count, p, s.rng))
}

// Inject adds caller-built particles, for effects a preset cannot
// express. The cap rules of SpawnAt apply.
func (s *System) Inject(batch []Particle) int {
	return s.add(batch)
}

// add appends a pre-built batch, truncating it to fit under the cap.
func (s *System) add(batch []Particle) int {
	if len(batch) == 0 {
		return 0
	}
	room := s.max - len(s.particles)
	if room <= 0 {
		return 0
	}
	if len(batch) > room {
		batch = batch[:room]
	}
	s.particles = append(s.particles, batch...)
	return len(batch)
}

// RenderState returns a lazy single-pass sequence of visual snapshots,
// one per live particle in iteration order. The sequence reflects the
// state at call time; obtain a fresh one each frame after Tick.
func (s *System) RenderState() iter.Seq[VisualState] {
	parts := s.particles
	return func(yield func(VisualState) bool) {
		for i := range parts {
			if !yield(parts[i].VisualState()) {
				return
			}
		}
	}
}

// Len is the live particle count.
func (s *System) Len() int { return len(s.particles) }

// Cap is the maximum live particle count.
func (s *System) Cap() int { return s.max }

// SetCap changes the cap, immediately dropping the newest particles if
// the live set no longer fits.
func (s *System) SetCap(n int) {
	if n <= 0 {
		log.Printf("particles: cap %d clamped to 1", n)
		n = 1
	}
	s.max = n
	if len(s.particles) > n {
		s.particles = s.particles[:n]
	}
}

// SetGravity replaces the global gravity applied on top of per
// particle acceleration.
func (s *System) SetGravity(g mathutil.Vec2) {
	s.gravity = g
}

// Gravity returns the global gravity vector.
func (s *System) Gravity() mathutil.Vec2 { return s.gravity }

// Preset looks up a registered preset by name.
func (s *System) Preset(name string) (Preset, bool) {
	p, ok := s.presets[name]
	return p, ok
}

// RegisterPreset adds or replaces a named preset.
func (s *System) RegisterPreset(name string, p Preset) {
	s.presets[name] = p
}

func (s *System) AddEmitter(e *Emitter) {
	s.emitters = append(s.emitters, e)
}

// RemoveEmitter detaches e; particles it already spawned live on.
func (s *System) RemoveEmitter(e *Emitter) {
	for i, have := range s.emitters {
		if have == e {
			s.emitters = append(s.emitters[:i], s.emitters[i+1:]...)
			return
		}
	}
}

func (s *System) ClearEmitters() {
	s.emitters = s.emitters[:0]
}

// Clear drops all live particles but keeps emitters and presets.
func (s *System) Clear() {
	s.particles = s.particles[:0]
}

// Rand exposes the system's random source so collaborators (plugins,
// scenes) share the deterministic stream.
func (s *System) Rand() *rand.Rand { return s.rng }
