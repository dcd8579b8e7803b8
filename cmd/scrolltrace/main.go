// Scroll trace tool - sweeps the landing page headlessly and writes the
// per-section progress channels for every frame to CSV.
//
// Usage: go run ./cmd/scrolltrace -output-dir trace -pages-per-sec 0.5
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pthm-cable/folio/config"
	"github.com/pthm-cable/folio/landing"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	outputDir := flag.String("output-dir", "trace", "Output directory for CSV files")
	pagesPerSec := flag.Float64("pages-per-sec", 1, "Scroll speed in viewport heights per second")
	seed := flag.Int64("seed", 42, "RNG seed")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if !(*pagesPerSec > 0) {
		fmt.Fprintln(os.Stderr, "--pages-per-sec must be positive")
		os.Exit(2)
	}

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	scene, err := landing.NewScene(config.Cfg(), *seed)
	if err != nil {
		slog.Error("failed to create scene", "error", err)
		os.Exit(1)
	}
	defer scene.Teardown()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	frames, err := landing.RunHeadless(ctx, scene, landing.HeadlessOptions{
		OutputDir: *outputDir,
		LogStats:  *logStats,
		Trace:     true,
		Script:    landing.Sweep(*pagesPerSec),
	})
	if err != nil {
		slog.Error("trace interrupted", "error", err, "frames", frames)
		os.Exit(1)
	}

	fmt.Printf("Traced %d frames (%.1fs) to %s\n", frames, scene.Time(), *outputDir)
}
