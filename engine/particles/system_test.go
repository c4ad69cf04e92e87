package particles

import (
	"math"
	"slices"
	"testing"

	"github.com/Rakly3/CursorDemo/engine/mathutil"
)

func statesEqual(a, b VisualState) bool {
	if a.Pos != b.Pos || a.Color != b.Color || a.Size != b.Size {
		return false
	}
	if a.Opacity != b.Opacity || a.Rotation != b.Rotation {
		return false
	}
	if len(a.Trail) != len(b.Trail) {
		return false
	}
	for i := range a.Trail {
		if a.Trail[i] != b.Trail[i] {
			return false
		}
	}
	return true
}

// TestTickCullsExpired verifies no dead particle survives a tick
func TestTickCullsExpired(t *testing.T) {
	s := NewSystem(Options{Seed: 1})
	s.SpawnEffect("sparkle", mathutil.V2(0, 0), 20)
	if s.Len() != 20 {
		t.Fatalf("Expected 20 live particles, got %d", s.Len())
	}

	for i := 0; i < 100; i++ {
		s.Tick(0.1)
		for _, p := range s.particles {
			if p.Age >= p.Lifetime {
				t.Fatalf("Tick left an expired particle live: age %v lifetime %v", p.Age, p.Lifetime)
			}
		}
	}
	if s.Len() != 0 {
		t.Errorf("Expected all particles expired after 10s, %d remain", s.Len())
	}
}

// TestTickZeroDtStillCulls verifies the cull runs without advancing
func TestTickZeroDtStillCulls(t *testing.T) {
	s := NewSystem(Options{Seed: 1})
	s.particles = append(s.particles,
		Particle{Age: 5, Lifetime: 5},
		Particle{Age: 1, Lifetime: 5, Pos: mathutil.V2(3, 4), Vel: mathutil.V2(100, 100)},
	)

	s.Tick(0)
	if s.Len() != 1 {
		t.Fatalf("Expected 1 survivor, got %d", s.Len())
	}
	p := s.particles[0]
	if p.Age != 1 || p.Pos != mathutil.V2(3, 4) {
		t.Errorf("Zero-dt tick advanced the survivor: %+v", p)
	}
}

// TestTickBadDt verifies negative and NaN deltas act like zero
func TestTickBadDt(t *testing.T) {
	s := NewSystem(Options{Seed: 1})
	s.particles = append(s.particles, Particle{Age: 1, Lifetime: 5, Pos: mathutil.V2(1, 2)})

	s.Tick(-0.5)
	s.Tick(math.NaN())
	if s.Len() != 1 {
		t.Fatalf("Expected particle to survive, got %d", s.Len())
	}
	if got := s.particles[0]; got.Age != 1 || got.Pos != mathutil.V2(1, 2) {
		t.Errorf("Bad dt advanced the particle: %+v", got)
	}
}

// TestSpawnEffectCap verifies truncation keeps the oldest particles
func TestSpawnEffectCap(t *testing.T) {
	s := NewSystem(Options{MaxParticles: 10, Seed: 4})
	if added := s.SpawnEffect("sparkle", mathutil.V2(0, 0), 5); added != 5 {
		t.Fatalf("Expected 5 added, got %d", added)
	}
	before := make([]Particle, 5)
	copy(before, s.particles)

	added := s.SpawnEffect("sparkle", mathutil.V2(50, 50), 10)
	if added != 5 {
		t.Errorf("Expected truncation to 5 new particles, got %d", added)
	}
	if s.Len() != 10 {
		t.Errorf("Expected live count at cap 10, got %d", s.Len())
	}
	for i := range before {
		if !particlesEqual(before[i], s.particles[i]) {
			t.Errorf("Existing particle %d altered by capped spawn", i)
		}
	}

	if added := s.SpawnEffect("sparkle", mathutil.V2(0, 0), 3); added != 0 {
		t.Errorf("Expected 0 added at full cap, got %d", added)
	}
}

// TestSpawnEffectUnknownPreset verifies fallback instead of a crash
func TestSpawnEffectUnknownPreset(t *testing.T) {
	s := NewSystem(Options{Seed: 2})
	added := s.SpawnEffect("plasma_vortex", mathutil.V2(0, 0), 5)
	if added != 5 {
		t.Errorf("Expected fallback preset to spawn 5, got %d", added)
	}

	// a custom registry without the fallback name degrades to a no-op
	s2 := NewSystem(Options{Seed: 2, Presets: map[string]Preset{"fire": Fire()}})
	if added := s2.SpawnEffect("plasma_vortex", mathutil.V2(0, 0), 5); added != 0 {
		t.Errorf("Expected no-op without fallback preset, got %d", added)
	}
	if s2.Len() != 0 {
		t.Errorf("Expected live count unchanged, got %d", s2.Len())
	}
}

// TestSpawnEffectDefaultCount verifies count <= 0 rolls the preset batch size
func TestSpawnEffectDefaultCount(t *testing.T) {
	s := NewSystem(Options{Seed: 3})
	added := s.SpawnEffect("explosion", mathutil.V2(0, 0), 0)
	if added != 50 {
		t.Errorf("Expected explosion batch of 50, got %d", added)
	}
}

// TestSystemDeterminism verifies identical seeds replay identical sims
func TestSystemDeterminism(t *testing.T) {
	run := func() []VisualState {
		s := NewSystem(Options{Seed: 42})
		s.SpawnEffect("explosion", mathutil.V2(0, 0), 50)
		s.AddEmitter(NewEmitter(mathutil.V2(10, 10), Smoke()))
		for i := 0; i < 30; i++ {
			s.Tick(1.0 / 60)
		}
		return slices.Collect(s.RenderState())
	}

	a, b := run(), run()
	if len(a) == 0 {
		t.Fatal("Expected live particles after 30 ticks")
	}
	if len(a) != len(b) {
		t.Fatalf("Replays diverged in count: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if !statesEqual(a[i], b[i]) {
			t.Fatalf("Replay diverged at particle %d:\n%+v\n%+v", i, a[i], b[i])
		}
	}
}

// TestRenderStateStable verifies two sequences without a tick agree
func TestRenderStateStable(t *testing.T) {
	s := NewSystem(Options{Seed: 6})
	s.SpawnEffect("fire", mathutil.V2(5, 5), 30)
	s.Tick(0.5)

	a := slices.Collect(s.RenderState())
	b := slices.Collect(s.RenderState())
	if len(a) != len(b) {
		t.Fatalf("Snapshot counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if !statesEqual(a[i], b[i]) {
			t.Fatalf("Snapshots differ at %d without an intervening tick", i)
		}
	}
}

// TestRenderStateLazyStop verifies early exit from the sequence is safe
func TestRenderStateLazyStop(t *testing.T) {
	s := NewSystem(Options{Seed: 6})
	s.SpawnEffect("sparkle", mathutil.V2(0, 0), 10)

	n := 0
	for range s.RenderState() {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("Expected to stop after 3 snapshots, got %d", n)
	}
	if got := len(slices.Collect(s.RenderState())); got != 10 {
		t.Errorf("Fresh sequence should see all 10, got %d", got)
	}
}

// TestGlobalPhysics verifies system gravity and friction fold in
func TestGlobalPhysics(t *testing.T) {
	s := NewSystem(Options{Seed: 1, Gravity: mathutil.V2(0, 100)})
	still := Preset{
		Kind:     KindSparkle,
		Count:    mathutil.R(1, 1),
		Speed:    mathutil.R(0, 0),
		Lifetime: mathutil.R(10, 10),
		Size:     mathutil.R(1, 1),
	}
	s.SpawnAt(still, mathutil.V2(0, 0), 1)
	s.Tick(0.5)
	if vy := s.particles[0].Vel.Y; vy != 50 {
		t.Errorf("Expected global gravity to add 50 to Vel.Y, got %v", vy)
	}

	s2 := NewSystem(Options{Seed: 1, Friction: 2})
	moving := still
	moving.Speed = mathutil.R(100, 100)
	s2.SpawnAt(moving, mathutil.V2(0, 0), 1)
	v0 := s2.particles[0].Vel.Len()
	s2.Tick(0.25)
	if v1 := s2.particles[0].Vel.Len(); v1 >= v0 {
		t.Errorf("Expected global friction to slow the particle: %v -> %v", v0, v1)
	}
}

// TestSetCap verifies shrinking drops the newest particles
func TestSetCap(t *testing.T) {
	s := NewSystem(Options{MaxParticles: 20, Seed: 5})
	s.SpawnEffect("sparkle", mathutil.V2(0, 0), 10)
	first := make([]Particle, 4)
	copy(first, s.particles[:4])

	s.SetCap(4)
	if s.Len() != 4 || s.Cap() != 4 {
		t.Fatalf("Expected len and cap 4, got %d and %d", s.Len(), s.Cap())
	}
	for i := range first {
		if !particlesEqual(first[i], s.particles[i]) {
			t.Errorf("SetCap should keep the oldest particles, index %d changed", i)
		}
	}

	s.SetCap(0)
	if s.Cap() != 1 {
		t.Errorf("Expected cap floor of 1, got %d", s.Cap())
	}
}

// TestClearAndEmitterManagement verifies collection maintenance
func TestClearAndEmitterManagement(t *testing.T) {
	s := NewSystem(Options{Seed: 8})
	e1 := NewEmitter(mathutil.V2(0, 0), Fire())
	e2 := NewEmitter(mathutil.V2(10, 0), Smoke())
	s.AddEmitter(e1)
	s.AddEmitter(e2)

	s.Tick(0.5)
	if s.Len() == 0 {
		t.Fatal("Expected emitters to produce particles")
	}

	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Expected Clear to empty the live set, got %d", s.Len())
	}

	s.RemoveEmitter(e1)
	s.ClearEmitters()
	s.Tick(0.5)
	if s.Len() != 0 {
		t.Errorf("Expected no particles after removing emitters, got %d", s.Len())
	}
}

// TestEmitterRespectsCap verifies streamed particles truncate too
func TestEmitterRespectsCap(t *testing.T) {
	s := NewSystem(Options{MaxParticles: 15, Seed: 9})
	s.AddEmitter(NewEmitter(mathutil.V2(0, 0), Fire()))
	for i := 0; i < 200; i++ {
		s.Tick(0.1)
		if s.Len() > 15 {
			t.Fatalf("Live count %d exceeded cap 15", s.Len())
		}
	}
}

// TestRegisterPreset verifies custom presets join the registry
func TestRegisterPreset(t *testing.T) {
	s := NewSystem(Options{Seed: 10})
	custom := Sparkle()
	custom.Speed = mathutil.R(500, 500)
	s.RegisterPreset("burst", custom)

	if _, ok := s.Preset("burst"); !ok {
		t.Fatal("Expected registered preset to be found")
	}
	if added := s.SpawnEffect("burst", mathutil.V2(0, 0), 3); added != 3 {
		t.Errorf("Expected 3 spawned from custom preset, got %d", added)
	}
}
