// Snapshot tool - renders the landing page at a scroll position to a PNG.
//
// Usage: go run ./cmd/snapshot -section ehu -out ehu.png
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/folio/config"
	"github.com/pthm-cable/folio/game"
	"github.com/pthm-cable/folio/landing"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	outPath := flag.String("out", "snapshot.png", "Output PNG path")
	section := flag.String("section", "", "Section id to scroll to (empty = use -scroll)")
	scroll := flag.Float64("scroll", 0, "Scroll offset in px when no section is given")
	width := flag.Int("width", 0, "Viewport width (0 = use config)")
	height := flag.Int("height", 0, "Viewport height (0 = use config)")
	settle := flag.Float64("settle", 2, "Seconds to run before capturing")
	seed := flag.Int64("seed", 42, "RNG seed")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()
	if *width > 0 {
		cfg.Screen.Width = *width
	}
	if *height > 0 {
		cfg.Screen.Height = *height
	}

	// Initialize raylib with hidden window
	rl.SetConfigFlags(rl.FlagWindowHidden)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Folio Snapshot")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	scene, err := landing.NewScene(cfg, *seed)
	if err != nil {
		slog.Error("failed to create scene", "error", err)
		os.Exit(1)
	}
	app, err := game.NewApp(scene, nil, false)
	if err != nil {
		slog.Error("failed to create app", "error", err)
		os.Exit(1)
	}
	defer app.Unload()
	app.Init()

	if *section != "" {
		if !scene.ScrollToSection(*section) {
			fmt.Fprintf(os.Stderr, "Unknown section: %s\n", *section)
			os.Exit(1)
		}
	} else {
		scene.Camera().Jump(*scroll)
	}

	frames := max(int(*settle*float64(cfg.Screen.TargetFPS)), 1)
	for i := 0; i < frames; i++ {
		if i == frames-1 {
			app.Capture(*outPath)
		}
		app.Update()
		app.Draw()
	}

	if err := app.CaptureErr(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to export image: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Snapshot rendered to: %s (%dx%d, scroll %.0f)\n",
		*outPath, cfg.Screen.Width, cfg.Screen.Height, scene.Camera().ScrollY)
}
