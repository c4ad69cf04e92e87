package demo

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Rakly3/CursorDemo/engine/colorutil"
	"github.com/Rakly3/CursorDemo/engine/mathutil"
	"github.com/Rakly3/CursorDemo/engine/render"
)

// Scene is one screen of the showcase carousel. Enter runs when the
// scene becomes active, Update once per simulation step, Draw once
// per rendered frame.
type Scene interface {
	Name() string
	Enter(a *App)
	Update(a *App, dt float64)
	Draw(a *App, screen *ebiten.Image)
}

const (
	titleY     = 60
	infoTop    = 120
	lineHeight = 22
)

var (
	headingColor = colorutil.New(255, 255, 0)
	textColor    = colorutil.White
	dimColor     = colorutil.New(170, 170, 190)
)

// drawSceneTitle slides the title in from the left on scene entry.
// The spring is underdamped so it overshoots a touch before settling
// centered.
func (a *App) drawSceneTitle(screen *ebiten.Image, title string) {
	tw := render.TextWidth(render.TitleFace, title)
	center := float64(a.width-tw) / 2
	x := -float64(tw) + (center+float64(tw))*a.titleSlide
	render.DrawTitleAt(screen, title, int(x), titleY, textColor)
}

// drawInfoLines centers a block of caption lines, highlighting the
// first one as a heading.
func drawInfoLines(screen *ebiten.Image, lines []string) {
	for i, line := range lines {
		if line == "" {
			continue
		}
		clr := dimColor
		if i == 0 {
			clr = headingColor
		}
		render.DrawCaptionCentered(screen, line, infoTop+i*lineHeight, clr)
	}
}

// PlatformScene shows what the detector found and how the demo tuned
// itself for it.
type PlatformScene struct{}

func (PlatformScene) Name() string { return "Platform Detection" }

func (PlatformScene) Enter(a *App) {}

func (PlatformScene) Update(a *App, dt float64) {}

func (PlatformScene) Draw(a *App, screen *ebiten.Image) {
	render.DrawGrid(screen, 64, colorutil.New(40, 50, 80).WithAlpha(60))
	a.drawSceneTitle(screen, "Platform Detection")

	hw := a.hw
	st := a.settings
	lines := []string{
		"Detected Hardware",
		fmt.Sprintf("Platform: %s", hw.OS),
		fmt.Sprintf("Architecture: %s", hw.Arch),
		fmt.Sprintf("CPU Cores: %d", hw.CPUCount),
		fmt.Sprintf("CPU Frequency: %.0f MHz", hw.CPUMHz),
		fmt.Sprintf("Memory: %.1f GB", float64(hw.MemTotal)/(1<<30)),
		fmt.Sprintf("High Performance: %v", hw.HighPerf),
		"",
		"Tuned Settings",
		fmt.Sprintf("Target FPS: %d", st.TargetFPS),
		fmt.Sprintf("Particle Cap: %d", st.ParticleCap),
		fmt.Sprintf("Texture Quality: %s", st.TextureQuality),
		fmt.Sprintf("Renderer: %s / %s", st.Renderer, st.InputDriver),
		fmt.Sprintf("Hardware Accel: %v  Multithreaded: %v", st.HardwareAccel, st.Multithreaded),
	}
	drawInfoLines(screen, lines)
}

// ParticleScene narrates the particle engine while sprinkling random
// sparkle emitters across the screen.
type ParticleScene struct{}

func (ParticleScene) Name() string { return "Particle System" }

func (ParticleScene) Enter(a *App) {}

func (ParticleScene) Update(a *App, dt float64) {
	// Same odds the ambient sparkles appeared with originally: a few
	// extra bursts per second at simulation rate.
	rng := a.system.Rand()
	if rng.Float64() < 0.02 {
		pos := mathutil.Vec2{
			X: mathutil.RandRange(rng, 100, float64(a.width)-100),
			Y: mathutil.RandRange(rng, 100, float64(a.height)-100),
		}
		a.system.SpawnEffect("sparkle", pos, 0)
	}
}

func (ParticleScene) Draw(a *App, screen *ebiten.Image) {
	a.drawSceneTitle(screen, "Particle System")
	drawInfoLines(screen, []string{
		"Engine Features",
		"- multiple emitters with rate and burst modes",
		"- gravity, friction, and noise-driven wobble",
		"- color blending and size curves over lifetime",
		"- motion trails on fast particles",
		fmt.Sprintf("- hard cap at %d live particles", a.system.Cap()),
		"",
		"click anywhere for explosions,",
		"press E for one at the cursor",
	})
}

// InteractiveScene follows the cursor with a trail and emits the
// selected preset while the left button is held.
type InteractiveScene struct {
	trail []mathutil.Vec2
}

func (s *InteractiveScene) Name() string { return "Interactive" }

func (s *InteractiveScene) Enter(a *App) {
	s.trail = s.trail[:0]
}

func (s *InteractiveScene) Update(a *App, dt float64) {
	s.trail = append(s.trail, a.input.Cursor)
	if len(s.trail) > 20 {
		s.trail = s.trail[1:]
	}

	// Holding the left button streams the selected effect.
	if a.input.LeftPressed && a.input.LeftHeldFor > 0.15 {
		a.system.SpawnEffect(followEffects[a.followEffect], a.input.Cursor, 2)
	}
}

func (s *InteractiveScene) Draw(a *App, screen *ebiten.Image) {
	a.drawSceneTitle(screen, "Interactive")
	drawInfoLines(screen, []string{
		"Try It",
		"- move the mouse to draw a trail",
		"- hold the left button to stream an effect",
		fmt.Sprintf("- C cycles the held effect (now: %s)", followEffects[a.followEffect]),
		"- right-click casts the spell plugin",
		"- G toggles global gravity",
	})

	for i, pos := range s.trail {
		t := float64(i+1) / float64(len(s.trail))
		clr := colorutil.White.WithAlpha(uint8(t * 200))
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), float32(t*5), clr, false)
	}
}

// PerformanceScene surfaces the live monitor readings.
type PerformanceScene struct{}

func (PerformanceScene) Name() string { return "Performance" }

func (PerformanceScene) Enter(a *App) {}

func (PerformanceScene) Update(a *App, dt float64) {}

func (PerformanceScene) Draw(a *App, screen *ebiten.Image) {
	a.drawSceneTitle(screen, "Performance Monitoring")

	cur := a.monitor.Current()
	st := a.monitor.FrameStats()
	alerts := a.monitor.Alerts()

	lines := []string{
		"Live Metrics",
		fmt.Sprintf("FPS: %.1f (min %.0f / max %.0f)", a.fpsShown, st.Min, st.Max),
		fmt.Sprintf("Frame Time: %.2f ms", st.FrameMS),
		fmt.Sprintf("CPU Usage: %.1f%%", cur.CPUPercent),
		fmt.Sprintf("Memory Usage: %.1f%%", cur.MemPercent),
		fmt.Sprintf("Available Memory: %.1f GB", cur.MemAvailGiB),
		fmt.Sprintf("Particles: %d / %d", a.system.Len(), a.system.Cap()),
	}
	drawInfoLines(screen, lines)

	y := infoTop + len(lines)*lineHeight + lineHeight
	render.DrawCaptionCentered(screen, "Alerts", y, headingColor)
	for i, al := range []struct {
		label string
		on    bool
	}{
		{"low fps", alerts.LowFPS},
		{"high cpu", alerts.HighCPU},
		{"high memory", alerts.HighMemory},
	} {
		clr := colorutil.New(100, 255, 100)
		state := "ok"
		if al.on {
			clr = colorutil.New(255, 100, 100)
			state = "ALERT"
		}
		render.DrawCaptionCentered(screen, fmt.Sprintf("%s: %s", al.label, state),
			y+(i+1)*lineHeight, clr)
	}
}

// FeaturesScene closes the loop with what the demo is built from.
type FeaturesScene struct{}

func (FeaturesScene) Name() string { return "Feature Highlights" }

func (FeaturesScene) Enter(a *App) {
	// A celebratory ring of explosions around the center.
	cx := float64(a.width) / 2
	cy := float64(a.height) / 2
	for i := 0; i < 6; i++ {
		angle := float64(i) / 6 * 2 * math.Pi
		pos := mathutil.Vec2{X: cx, Y: cy}.Add(mathutil.FromAngle(angle).Scale(180))
		a.system.SpawnEffect("explosion", pos, 20)
	}
}

func (FeaturesScene) Update(a *App, dt float64) {}

func (FeaturesScene) Draw(a *App, screen *ebiten.Image) {
	a.drawSceneTitle(screen, "Feature Highlights")
	drawInfoLines(screen, []string{
		"Under The Hood",
		"- cross-platform hardware detection and tuning",
		"- INI configuration with environment overrides",
		"- deterministic, seedable particle simulation",
		"- background CPU and memory monitoring",
		"- plugin system with a word-stencil spell",
		"- fixed-timestep loop, render-rate independent",
	})

	drawPaletteStrip(screen, a)
}

// drawPaletteStrip paints a rainbow band near the bottom as a small
// color pipeline showcase.
func drawPaletteStrip(screen *ebiten.Image, a *App) {
	swatches := colorutil.Rainbow(24)
	if len(swatches) == 0 {
		return
	}
	w := float32(a.width) * 0.6
	x0 := (float32(a.width) - w) / 2
	y := float32(a.height) - 90
	sw := w / float32(len(swatches))
	for i, c := range swatches {
		vector.DrawFilledRect(screen, x0+float32(i)*sw, y, sw+1, 12, c.WithAlpha(220), false)
	}
}
