package demo

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Rakly3/CursorDemo/engine/colorutil"
	"github.com/Rakly3/CursorDemo/engine/perf"
)

func (a *App) drawHUD(screen *ebiten.Image) {
	var b strings.Builder
	if a.cfg.Bool("Demo", "show_fps") {
		fmt.Fprintf(&b, "FPS: %.1f | TPS: %.0f\n", a.fpsShown, ebiten.ActualTPS())
	}
	if a.cfg.Bool("Demo", "show_platform_info") {
		fmt.Fprintf(&b, "Platform: %s / %s\n", a.hw.OS, a.hw.Arch)
	}
	fmt.Fprintf(&b, "Time: %.1fs / %.0fs\n", a.clock, a.duration)
	fmt.Fprintf(&b, "Scene: %d/%d %s\n", a.sceneIdx+1, len(a.scenes), a.scene().Name())
	fmt.Fprintf(&b, "Particles: %d", a.system.Len())
	if a.paused {
		b.WriteString("\n** PAUSED **")
	}
	ebitenutil.DebugPrintAt(screen, b.String(), 10, 10)

	ebitenutil.DebugPrintAt(screen, "[F1] Help", a.width-80, 10)

	if alerts := a.monitor.Alerts(); alerts.Any() {
		a.drawAlertBanner(screen)
	}
	if a.showHelp {
		a.drawHelp(screen)
	}
	if a.showDebug {
		a.drawDebug(screen)
	}
}

// alertText joins the active alert labels for the banner and the
// alert event payload.
func alertText(alerts perf.Alerts) string {
	var parts []string
	if alerts.LowFPS {
		parts = append(parts, "LOW FPS")
	}
	if alerts.HighCPU {
		parts = append(parts, "HIGH CPU")
	}
	if alerts.HighMemory {
		parts = append(parts, "HIGH MEMORY")
	}
	return strings.Join(parts, "  ")
}

func (a *App) drawAlertBanner(screen *ebiten.Image) {
	msg := alertText(a.monitor.Alerts())

	w := float32(len(msg)*6 + 20)
	x := (float32(a.width) - w) / 2
	vector.DrawFilledRect(screen, x, 4, w, 18, colorutil.New(120, 20, 20).WithAlpha(200), false)
	ebitenutil.DebugPrintAt(screen, msg, int(x)+10, 6)
}

var helpLines = []string{
	"CONTROLS",
	"",
	"Esc     quit",
	"Space   pause / resume",
	"R       reset demo and reload config",
	"N / P   next / previous scene",
	"1-5     jump to scene",
	"E       explosion at cursor",
	"C       cycle held effect",
	"G       toggle global gravity",
	"F1      this help",
	"F3      debug overlay",
	"",
	"LMB     explosion",
	"hold    stream effect (interactive scene)",
	"RMB     cast spell",
}

func (a *App) drawHelp(screen *ebiten.Image) {
	panelW := float32(300)
	panelH := float32(len(helpLines)*16 + 24)
	px := (float32(a.width) - panelW) / 2
	py := (float32(a.height) - panelH) / 2

	vector.DrawFilledRect(screen, px, py, panelW, panelH, colorutil.New(10, 10, 20).WithAlpha(230), false)
	vector.StrokeRect(screen, px, py, panelW, panelH, 1, colorutil.New(100, 100, 160), false)

	for i, line := range helpLines {
		ebitenutil.DebugPrintAt(screen, line, int(px)+16, int(py)+12+i*16)
	}
}

func (a *App) drawDebug(screen *ebiten.Image) {
	st := a.monitor.FrameStats()
	cur := a.monitor.Current()

	var b strings.Builder
	fmt.Fprintf(&b, "frame %d  sim %.1fs\n", a.frame, a.clock)
	fmt.Fprintf(&b, "fps avg %.1f min %.1f max %.1f\n", st.Avg, st.Min, st.Max)
	fmt.Fprintf(&b, "frame %.2fms  cpu %.1f%%  mem %.1f%%\n", st.FrameMS, cur.CPUPercent, cur.MemPercent)
	fmt.Fprintf(&b, "particles %d/%d  gravity %v\n", a.system.Len(), a.system.Cap(), a.gravityOn)
	for _, info := range a.plugins.List() {
		state := "on"
		if !a.plugins.Enabled(info.Name) {
			state = "off"
		}
		fmt.Fprintf(&b, "plugin %s v%s [%s]\n", info.Name, info.Version, state)
	}
	ebitenutil.DebugPrintAt(screen, b.String(), 10, a.height-16*(5+len(a.plugins.List())))
}
