package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	_ "github.com/joho/godotenv/autoload"

	"github.com/pthm-cable/folio/config"
	"github.com/pthm-cable/folio/game"
	"github.com/pthm-cable/folio/landing"
	"github.com/pthm-cable/folio/telemetry"
)

func main() {
	// CLI flags
	configPath := flag.String("config", os.Getenv("FOLIO_CONFIG"), "Path to config.yaml (empty = use defaults, env FOLIO_CONFIG)")
	headless := flag.Bool("headless", false, "Run without graphics (scripted scroll sweep)")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxFrames := flag.Int64("max-frames", 0, "Stop after N frames (0 = unlimited)")
	pagesPerSec := flag.Float64("pages-per-sec", 1, "Headless sweep speed in viewport heights per second")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if !(*pagesPerSec > 0) {
		slog.Error("invalid flag", "pages_per_sec", *pagesPerSec, "error", "must be positive")
		os.Exit(1)
	}

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	if *headless {
		// Headless mode - pure CPU scene, no raylib needed
		scene, err := landing.NewScene(cfg, rngSeed)
		if err != nil {
			slog.Error("failed to create scene", "error", err)
			os.Exit(1)
		}
		defer scene.Teardown()

		slog.Info("starting headless run",
			"seed", rngSeed,
			"max_frames", *maxFrames,
			"pages_per_sec", *pagesPerSec,
		)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		frames, err := landing.RunHeadless(ctx, scene, landing.HeadlessOptions{
			MaxFrames: *maxFrames,
			OutputDir: *outputDir,
			LogStats:  *logStats,
			Script:    landing.Sweep(*pagesPerSec),
		})
		if err != nil {
			slog.Error("headless run stopped", "error", err, "frames", frames)
			return
		}
		slog.Info("headless run finished", "frames", frames, "scroll_y", scene.Camera().ScrollY)
		return
	}

	// Graphical mode
	flags := uint32(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	if cfg.Screen.HighDPI {
		flags |= rl.FlagWindowHighdpi
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Folio")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	scene, err := landing.NewScene(cfg, rngSeed)
	if err != nil {
		slog.Error("failed to create scene", "error", err)
		os.Exit(1)
	}

	om, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output manager", "error", err)
		os.Exit(1)
	}
	defer om.Close()
	if err := om.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config", "error", err)
	}

	app, err := game.NewApp(scene, om, *logStats)
	if err != nil {
		slog.Error("failed to create app", "error", err)
		os.Exit(1)
	}
	defer app.Unload()
	app.Init()

	for !rl.WindowShouldClose() {
		app.Update()
		app.Draw()

		if *maxFrames > 0 && scene.Tick() >= *maxFrames {
			break
		}
	}
}
