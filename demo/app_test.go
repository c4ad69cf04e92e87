package demo

import (
	"path/filepath"
	"testing"

	"github.com/Rakly3/CursorDemo/engine/config"
	"github.com/Rakly3/CursorDemo/engine/events"
	"github.com/Rakly3/CursorDemo/engine/mathutil"
	"github.com/Rakly3/CursorDemo/engine/platform"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg, err := config.Load(filepath.Join(t.TempDir(), "config.ini"))
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	hw := platform.HardwareInfo{
		OS:       platform.Linux,
		Arch:     platform.AMD64,
		CPUCount: 8,
		CPUMHz:   3200,
		MemTotal: 16 << 30,
		HighPerf: true,
	}
	a := NewApp(cfg, hw, platform.Optimize(hw), 42)
	t.Cleanup(a.Shutdown)
	return a
}

// TestAutoAdvance verifies scenes rotate every sceneDuration seconds
// and wrap back to the first.
func TestAutoAdvance(t *testing.T) {
	a := newTestApp(t)
	if a.sceneIdx != 0 {
		t.Fatalf("opening scene = %d, want 0", a.sceneIdx)
	}

	for want := 1; want < len(a.scenes); want++ {
		a.step(sceneDuration)
		if a.sceneIdx != want {
			t.Fatalf("after %d auto-advances scene = %d, want %d", want, a.sceneIdx, want)
		}
		if a.sceneTime != 0 {
			t.Fatalf("scene timer = %v after advance, want 0", a.sceneTime)
		}
	}

	a.step(sceneDuration)
	if a.sceneIdx != 0 {
		t.Errorf("carousel did not wrap, scene = %d", a.sceneIdx)
	}
}

// TestManualNavigationWraps verifies N and P wrap at both ends.
func TestManualNavigationWraps(t *testing.T) {
	a := newTestApp(t)
	a.prevScene()
	if want := len(a.scenes) - 1; a.sceneIdx != want {
		t.Fatalf("prev from first = %d, want %d", a.sceneIdx, want)
	}
	a.nextScene()
	if a.sceneIdx != 0 {
		t.Fatalf("next from last = %d, want 0", a.sceneIdx)
	}
}

// TestJumpToSceneResetsTimer verifies direct jumps restart the scene
// clock, including jumps to the current scene.
func TestJumpToSceneResetsTimer(t *testing.T) {
	a := newTestApp(t)
	a.step(3)
	a.jumpToScene(2)
	if a.sceneIdx != 2 || a.sceneTime != 0 {
		t.Fatalf("jump gave scene %d at %vs, want 2 at 0s", a.sceneIdx, a.sceneTime)
	}

	a.step(2)
	a.jumpToScene(2)
	if a.sceneTime != 0 {
		t.Errorf("re-jump left scene timer at %v, want 0", a.sceneTime)
	}
}

// TestSceneChangeEmitsEvent verifies navigation announces itself on
// the bus.
func TestSceneChangeEmitsEvent(t *testing.T) {
	a := newTestApp(t)
	var got []events.ScenePayload
	a.bus.On(events.EvtSceneChange, func(e events.Event) {
		got = append(got, e.Payload.(events.ScenePayload))
	})

	a.nextScene()
	a.bus.Dispatch()

	if len(got) != 1 {
		t.Fatalf("scene change events = %d, want 1", len(got))
	}
	if got[0].Index != 1 || got[0].Name != a.scenes[1].Name() {
		t.Errorf("payload = %+v, want index 1 with matching name", got[0])
	}
}

// TestResetRestoresOpening verifies R rewinds time, scene, and
// particles but keeps the demo running.
func TestResetRestoresOpening(t *testing.T) {
	a := newTestApp(t)
	a.step(sceneDuration + 1)
	a.explodeAt(mathutil.Vec2{X: 100, Y: 100})
	if a.system.Len() == 0 {
		t.Fatal("setup failed: no particles before reset")
	}

	a.reset()

	if a.clock != 0 || a.sceneTime != 0 || a.failsafe != 0 {
		t.Errorf("timers after reset = %v/%v/%v, want zeroes", a.clock, a.sceneTime, a.failsafe)
	}
	if a.sceneIdx != 0 {
		t.Errorf("scene after reset = %d, want 0", a.sceneIdx)
	}
	if a.system.Len() != 0 {
		t.Errorf("%d particles survived reset", a.system.Len())
	}
	if a.quit {
		t.Error("reset stopped the demo")
	}

	// Ambient emitters were recreated and feed the next tick.
	a.system.Tick(0.5)
	if a.system.Len() == 0 {
		t.Error("no ambient emission after reset")
	}
}

// TestFailsafe verifies the idle timeout quits and interaction rearms
// it.
func TestFailsafe(t *testing.T) {
	a := newTestApp(t)
	a.failsafe = failsafeTimeout - 0.5
	a.step(0.25)
	if a.quit {
		t.Fatal("quit before the failsafe elapsed")
	}

	a.noteInteraction()
	if a.failsafe != 0 {
		t.Fatalf("interaction left failsafe at %v", a.failsafe)
	}

	a.failsafe = failsafeTimeout - 0.5
	a.step(1)
	if !a.quit {
		t.Error("failsafe elapsed without quitting")
	}
}

// TestExplosionSpawnsFullBurst verifies a click-sized explosion lands
// whole under the cap.
func TestExplosionSpawnsFullBurst(t *testing.T) {
	a := newTestApp(t)
	a.explodeAt(mathutil.Vec2{X: 640, Y: 360})
	if a.system.Len() != 50 {
		t.Errorf("explosion spawned %d particles, want the preset batch of 50", a.system.Len())
	}
}

// TestSpawnEventRoutesToSystem verifies bus spawn requests reach the
// particle system.
func TestSpawnEventRoutesToSystem(t *testing.T) {
	a := newTestApp(t)
	a.bus.Emit(events.Event{
		Type:    events.EvtSpawn,
		Payload: events.SpawnPayload{Effect: "fire", Pos: mathutil.Vec2{X: 10, Y: 10}, Count: 7},
	})
	a.bus.Dispatch()
	if a.system.Len() != 7 {
		t.Errorf("spawn event produced %d particles, want 7", a.system.Len())
	}
}

// TestGravityToggle verifies G switches the system-wide pull.
func TestGravityToggle(t *testing.T) {
	a := newTestApp(t)
	a.toggleGravity()
	if !a.gravityOn || (a.system.Gravity() == mathutil.Vec2{}) {
		t.Fatal("gravity did not engage")
	}
	a.toggleGravity()
	if a.gravityOn || (a.system.Gravity() != mathutil.Vec2{}) {
		t.Fatal("gravity did not release")
	}
}
