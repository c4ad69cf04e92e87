package demo

import (
	"log"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Rakly3/CursorDemo/engine/config"
	"github.com/Rakly3/CursorDemo/engine/events"
	"github.com/Rakly3/CursorDemo/engine/input"
	"github.com/Rakly3/CursorDemo/engine/mathutil"
	"github.com/Rakly3/CursorDemo/engine/particles"
	"github.com/Rakly3/CursorDemo/engine/perf"
	"github.com/Rakly3/CursorDemo/engine/platform"
	"github.com/Rakly3/CursorDemo/engine/plugin"
	"github.com/Rakly3/CursorDemo/engine/render"
)

const (
	maxFrameTime    = 0.25 // cap to avoid spiral of death
	sceneDuration   = 5.0  // seconds before auto-advancing
	failsafeTimeout = 60.0 // idle seconds before the demo exits itself
)

// App is the demo application. It implements ebiten.Game and runs the
// simulation at a fixed timestep regardless of render rate.
type App struct {
	cfg      *config.Manager
	hw       platform.HardwareInfo
	settings platform.Settings

	system  *particles.System
	plugins *plugin.Registry
	bus     *events.Bus
	input   *input.State
	monitor *perf.Monitor
	fps     *perf.SmoothedFPS
	bg      *render.Background

	width     int
	height    int
	targetFPS int
	simStep   float64
	duration  float64 // configured showcase length, display only

	scenes    []Scene
	sceneIdx  int
	sceneTime float64

	titleSpring harmonica.Spring
	titleSlide  float64 // 0 offscreen left, 1 settled center
	titleVel    float64

	clock       float64
	frame       uint64
	accumulator float64
	lastTime    time.Time

	paused    bool
	quit      bool
	failsafe  float64
	showHelp  bool
	showDebug bool
	gravityOn bool
	alerted   bool

	fpsShown     float64
	followEffect int // index into followEffects for hold-to-emit
}

// followEffects are the presets the C key cycles through for the
// hold-the-mouse emitter on the interactive scene.
var followEffects = []string{"fire", "sparkle", "smoke", "explosion"}

// NewApp wires the demo together from loaded config and detected
// hardware. Seed 0 means a time-derived one.
func NewApp(cfg *config.Manager, hw platform.HardwareInfo, settings platform.Settings, seed int64) *App {
	width := cfg.Int("Display", "width")
	height := cfg.Int("Display", "height")

	particleCap := cfg.Int("Graphics", "particle_count")
	if settings.ParticleCap < particleCap {
		log.Printf("demo: particle cap %d reduced to %d for this hardware", particleCap, settings.ParticleCap)
		particleCap = settings.ParticleCap
	}
	tps := cfg.Int("Display", "target_fps")
	if settings.TargetFPS < tps {
		log.Printf("demo: target fps %d capped at %d for this hardware", tps, settings.TargetFPS)
		tps = settings.TargetFPS
	}
	if tps <= 0 {
		tps = 60
	}

	a := &App{
		cfg:         cfg,
		hw:          hw,
		settings:    settings,
		bus:         events.NewBus(),
		input:       input.NewState(),
		monitor:     perf.NewMonitor(0),
		fps:         perf.NewSmoothedFPS(tps),
		bg:          render.NewBackground(),
		width:       width,
		height:      height,
		targetFPS:   tps,
		simStep:     1.0 / float64(tps),
		duration:    float64(cfg.Int("Demo", "demo_duration")),
		showDebug:   cfg.Bool("Performance", "debug_mode"),
		titleSpring: harmonica.NewSpring(harmonica.FPS(tps), 6.0, 0.7),
		lastTime:    time.Now(),
	}
	a.system = particles.NewSystem(particles.Options{
		MaxParticles: particleCap,
		Seed:         seed,
	})
	a.scenes = []Scene{
		&PlatformScene{},
		&ParticleScene{},
		&InteractiveScene{},
		&PerformanceScene{},
		&FeaturesScene{},
	}

	a.plugins = plugin.NewRegistry(&plugin.Context{
		System: a.system,
		Bus:    a.bus,
		Config: cfg,
		Rng:    a.system.Rand(),
	})
	a.plugins.Register(&plugin.SpellPlugin{})

	a.bus.On(events.EvtSpawn, func(e events.Event) {
		if p, ok := e.Payload.(events.SpawnPayload); ok {
			a.system.SpawnEffect(p.Effect, p.Pos, p.Count)
		}
	})

	a.spawnAmbientEffects()
	a.scenes[0].Enter(a)
	a.monitor.Start()
	return a
}

// spawnAmbientEffects places the standing emitters: a fire at the
// bottom center and a handful of sparkles scattered around.
func (a *App) spawnAmbientEffects() {
	w := float64(a.width)
	h := float64(a.height)
	rng := a.system.Rand()

	fire := particles.NewEmitter(mathutil.Vec2{X: w / 2, Y: h - 50}, particles.Fire())
	a.system.AddEmitter(fire)

	for i := 0; i < 5; i++ {
		pos := mathutil.Vec2{
			X: mathutil.RandRange(rng, 100, w-100),
			Y: mathutil.RandRange(rng, 100, h-100),
		}
		a.system.AddEmitter(particles.NewEmitter(pos, particles.Sparkle()))
	}
}

// Update is the ebiten frame callback: variable render rate outside,
// fixed simulation steps inside.
func (a *App) Update() error {
	now := time.Now()
	frameTime := now.Sub(a.lastTime).Seconds()
	a.lastTime = now
	if frameTime > maxFrameTime {
		frameTime = maxFrameTime
	}

	a.frame++
	a.input.Update(frameTime)
	a.fpsShown = a.fps.Update(a.monitor.Frame())
	a.handleInput()

	if !a.paused {
		a.accumulator += frameTime
		for a.accumulator >= a.simStep {
			a.step(a.simStep)
			a.accumulator -= a.simStep
		}
	}
	a.bus.Dispatch()

	if a.quit {
		return ebiten.Termination
	}
	return nil
}

// step advances the whole demo by one fixed timestep.
func (a *App) step(dt float64) {
	a.clock += dt
	a.sceneTime += dt
	a.failsafe += dt

	a.bg.Update(dt)
	a.titleSlide, a.titleVel = a.titleSpring.Update(a.titleSlide, a.titleVel, 1)
	a.scene().Update(a, dt)
	a.system.Tick(dt)
	a.plugins.Update(dt)

	if al := a.monitor.Alerts(); al.Any() != a.alerted {
		a.alerted = al.Any()
		if a.alerted {
			a.bus.Emit(events.Event{
				Type:    events.EvtAlert,
				Frame:   a.frame,
				Payload: events.AlertPayload{Message: alertText(al)},
			})
		}
	}

	if a.sceneTime >= sceneDuration {
		a.nextScene()
	}
	if a.failsafe >= failsafeTimeout {
		a.requestQuit("failsafe timeout reached")
	}
}

func (a *App) handleInput() {
	in := a.input

	if in.IsKeyJustPressed(ebiten.KeyEscape) {
		a.requestQuit("escape pressed")
	}
	if in.IsKeyJustPressed(ebiten.KeySpace) {
		a.paused = !a.paused
		if a.paused {
			log.Print("demo: paused")
		} else {
			log.Print("demo: resumed")
		}
		a.noteInteraction()
	}
	if in.IsKeyJustPressed(ebiten.KeyR) {
		a.reset()
		a.noteInteraction()
	}
	if in.IsKeyJustPressed(ebiten.KeyN) {
		a.nextScene()
		a.noteInteraction()
	}
	if in.IsKeyJustPressed(ebiten.KeyP) {
		a.prevScene()
		a.noteInteraction()
	}
	if in.IsKeyJustPressed(ebiten.KeyE) {
		a.explodeAt(in.Cursor)
		a.noteInteraction()
	}
	if in.IsKeyJustPressed(ebiten.KeyG) {
		a.toggleGravity()
		a.noteInteraction()
	}
	if in.IsKeyJustPressed(ebiten.KeyC) {
		a.followEffect = (a.followEffect + 1) % len(followEffects)
		log.Printf("demo: follow effect now %q", followEffects[a.followEffect])
		a.noteInteraction()
	}
	if in.IsKeyJustPressed(ebiten.KeyF1) {
		a.showHelp = !a.showHelp
	}
	if in.IsKeyJustPressed(ebiten.KeyF3) {
		a.showDebug = !a.showDebug
	}
	for i, k := range [5]ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5} {
		if in.IsKeyJustPressed(k) {
			a.jumpToScene(i)
			a.noteInteraction()
		}
	}

	if in.LeftJustPressed {
		a.explodeAt(in.Cursor)
		a.bus.Emit(events.Event{
			Type:    events.EvtClick,
			Frame:   a.frame,
			Payload: events.ClickPayload{Pos: in.Cursor},
		})
		a.noteInteraction()
	}
	if in.RightJustPressed {
		a.bus.Emit(events.Event{
			Type:    events.EvtRightClick,
			Frame:   a.frame,
			Payload: events.ClickPayload{Pos: in.Cursor},
		})
		a.noteInteraction()
	}
}

// noteInteraction rearms the failsafe so the demo never exits under a
// live user.
func (a *App) noteInteraction() {
	a.failsafe = 0
}

// requestQuit flags the app to stop after the current frame.
func (a *App) requestQuit(reason string) {
	if a.quit {
		return
	}
	a.quit = true
	a.bus.Emit(events.Event{Type: events.EvtQuit, Frame: a.frame})
	log.Printf("demo: exiting: %s", reason)
}

func (a *App) explodeAt(pos mathutil.Vec2) {
	a.system.SpawnEffect("explosion", pos, 0)
}

func (a *App) toggleGravity() {
	a.gravityOn = !a.gravityOn
	if a.gravityOn {
		a.system.SetGravity(mathutil.Vec2{Y: 120})
		log.Print("demo: global gravity on")
	} else {
		a.system.SetGravity(mathutil.Vec2{})
		log.Print("demo: global gravity off")
	}
}

func (a *App) scene() Scene {
	return a.scenes[a.sceneIdx]
}

func (a *App) nextScene() {
	a.jumpToScene((a.sceneIdx + 1) % len(a.scenes))
}

func (a *App) prevScene() {
	a.jumpToScene((a.sceneIdx - 1 + len(a.scenes)) % len(a.scenes))
}

func (a *App) jumpToScene(i int) {
	if i < 0 || i >= len(a.scenes) || i == a.sceneIdx {
		a.sceneTime = 0
		return
	}
	a.sceneIdx = i
	a.sceneTime = 0
	a.titleSlide, a.titleVel = 0, 0
	a.scenes[i].Enter(a)
	a.bus.Emit(events.Event{
		Type:    events.EvtSceneChange,
		Frame:   a.frame,
		Payload: events.ScenePayload{Index: i, Name: a.scenes[i].Name()},
	})
	log.Printf("demo: scene %d/%d %q", i+1, len(a.scenes), a.scenes[i].Name())
}

// reset rewinds the showcase: first scene, fresh timers, fresh
// ambient emitters, and a config reload so edits apply live.
func (a *App) reset() {
	a.clock = 0
	a.sceneTime = 0
	a.failsafe = 0
	a.sceneIdx = 0
	a.titleSlide, a.titleVel = 0, 0

	a.system.Clear()
	a.system.ClearEmitters()
	a.spawnAmbientEffects()

	if err := a.cfg.Reload(); err != nil {
		log.Printf("demo: config reload failed: %v", err)
	} else {
		a.bus.Emit(events.Event{Type: events.EvtConfigReload, Frame: a.frame})
	}
	a.duration = float64(a.cfg.Int("Demo", "demo_duration"))

	a.scenes[0].Enter(a)
	a.bus.Emit(events.Event{Type: events.EvtReset, Frame: a.frame})
	log.Print("demo: reset")
}

// Draw renders background, scene, particles, plugin overlays, and HUD.
func (a *App) Draw(screen *ebiten.Image) {
	a.bg.Draw(screen)
	a.scene().Draw(a, screen)
	render.DrawParticles(screen, a.system.RenderState())
	a.plugins.Draw(screen)
	a.drawHUD(screen)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

// Shutdown stops background collaborators; call after RunGame returns.
func (a *App) Shutdown() {
	a.monitor.Stop()
	log.Printf("demo: ran %.1fs across %d frames", a.clock, a.frame)
}
