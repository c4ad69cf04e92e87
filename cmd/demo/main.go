package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Rakly3/CursorDemo/demo"
	"github.com/Rakly3/CursorDemo/engine/config"
	"github.com/Rakly3/CursorDemo/engine/perf"
	"github.com/Rakly3/CursorDemo/engine/platform"
)

var (
	configFlag   = flag.String("config", "config.ini", "path to the INI configuration file")
	seedFlag     = flag.Int64("seed", 0, "particle RNG seed, 0 picks one from the clock")
	windowedFlag = flag.Bool("windowed", false, "force windowed mode regardless of config")
	debugFlag    = flag.Bool("debug", false, "start with the debug overlay visible")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\nDEMO CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Printf("config: %v (continuing with defaults)", err)
	}
	if *debugFlag {
		cfg.Set("Performance", "debug_mode", "true")
	}

	logFile := setupLogging(cfg)
	if logFile != nil {
		defer logFile.Close()
	}
	log.Printf("starting cursor demo (config %s)", cfg.Path())

	stop := perf.StartTimer("platform detection")
	hw := platform.Detect()
	settings := platform.Optimize(hw)
	stop()
	log.Print(platform.Summary(hw))

	app := demo.NewApp(cfg, hw, settings, *seedFlag)
	defer app.Shutdown()

	ebiten.SetWindowSize(cfg.Int("Display", "width"), cfg.Int("Display", "height"))
	ebiten.SetWindowTitle("Cursor Demo - Cross-Platform Particle Showcase")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(cfg.Bool("Display", "vsync"))
	ebiten.SetFullscreen(cfg.Bool("Display", "fullscreen") && !*windowedFlag)

	if err := ebiten.RunGame(app); err != nil {
		log.Fatalf("demo aborted: %v", err)
	}
}
