package landing

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/pthm-cable/folio/telemetry"
)

// Script produces the input for a headless frame. Returning done=true stops
// the run after that frame.
type Script func(tick int64, s *Scene) (in Input, done bool)

// HeadlessOptions configures RunHeadless.
type HeadlessOptions struct {
	MaxFrames int64  // 0 = until the script finishes
	OutputDir string // CSV output; empty disables it
	LogStats  bool   // Log window and perf stats via slog
	Trace     bool   // Write one trace row per section per frame
	Script    Script // nil = Sweep(1 page per second)
}

// Sweep scrolls down the whole page at pagesPerSec viewport heights per
// second, then stops at the bottom. A zero, negative or NaN rate falls back
// to one page per second so the sweep always finishes.
func Sweep(pagesPerSec float64) Script {
	if !(pagesPerSec > 0) || math.IsInf(pagesPerSec, 1) {
		pagesPerSec = 1
	}
	return func(_ int64, s *Scene) (Input, bool) {
		cam := s.Camera()
		if cam.ScrollY >= cam.MaxScroll() {
			return Input{}, true
		}
		dt := s.cfg.Derived.FrameDT
		return Input{ScrollBy: pagesPerSec * cam.ViewportH * dt}, false
	}
}

// RunHeadless drives the scene with no window at the configured frame rate.
// Returns the number of frames run.
func RunHeadless(ctx context.Context, s *Scene, opts HeadlessOptions) (int64, error) {
	script := opts.Script
	if script == nil {
		script = Sweep(1)
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return 0, fmt.Errorf("output: %w", err)
	}
	defer om.Close()
	if err := om.WriteConfig(s.cfg); err != nil {
		slog.Error("failed to write config", "error", err)
	}

	dt := s.cfg.Derived.FrameDT
	var frames int64
	for s.Alive() {
		if err := ctx.Err(); err != nil {
			return frames, err
		}
		if opts.MaxFrames > 0 && frames >= opts.MaxFrames {
			slog.Info("max frames reached", "frame", frames)
			break
		}

		in, done := script(s.Tick(), s)
		s.Update(dt, in)
		s.Render(nil, nil)
		frames++

		if opts.Trace {
			rows := telemetry.TraceRecords(s.Tick(), s.Camera().ScrollY, s.States(), s.indicator.Active())
			if err := om.WriteTrace(rows); err != nil {
				slog.Error("failed to write trace", "error", err)
			}
		}
		s.FlushTelemetry(om, opts.LogStats)

		if done {
			slog.Info("script finished", "frame", frames, "scroll_y", s.Camera().ScrollY)
			break
		}
	}
	return frames, nil
}

// FlushTelemetry closes the stats window when it is due, logging and
// writing it as configured. om may be nil.
func (s *Scene) FlushTelemetry(om *telemetry.OutputManager, logStats bool) {
	if !s.collector.ShouldFlush(s.tick) {
		return
	}

	stats := s.collector.Flush(s.tick, s.SceneState())
	perfStats := s.perf.Stats()

	if logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if err := om.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
	if err := om.WritePerf(perfStats, stats.WindowEndTick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}

	bookmarks := s.bookmarks.Check(stats)
	for _, b := range bookmarks {
		b.LogBookmark()
	}
	if err := om.WriteBookmarks(bookmarks); err != nil {
		slog.Error("failed to write bookmarks", "error", err)
	}
}
