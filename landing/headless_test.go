package landing

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunHeadlessSweep(t *testing.T) {
	s := newTestScene(t)
	dir := t.TempDir()

	frames, err := RunHeadless(context.Background(), s, HeadlessOptions{
		OutputDir: dir,
		Trace:     true,
	})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if frames == 0 {
		t.Fatal("expected frames to run")
	}
	if got, want := s.Camera().ScrollY, s.Camera().MaxScroll(); got != want {
		t.Errorf("expected sweep to end at %v, got %v", want, got)
	}
	if got := s.Frame().Active; got != "zrive" {
		t.Errorf("expected last section active at the bottom, got %q", got)
	}

	for _, name := range []string{"config.yaml", "telemetry.csv", "perf.csv", "trace.csv", "bookmarks.csv"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, "trace.csv"))
	if err != nil {
		t.Fatalf("reading trace: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	// Header plus one row per section per frame
	if want := 1 + int(frames)*5; len(lines) != want {
		t.Errorf("expected %d trace lines, got %d", want, len(lines))
	}
	if !strings.HasPrefix(lines[0], "frame,scroll_y,section") {
		t.Errorf("unexpected trace header %q", lines[0])
	}

	// The 5s stats window closes mid-page, inside a section
	bm, err := os.ReadFile(filepath.Join(dir, "bookmarks.csv"))
	if err != nil {
		t.Fatalf("reading bookmarks: %v", err)
	}
	if !strings.Contains(string(bm), "first_visit") {
		t.Errorf("expected a first_visit bookmark, got %q", bm)
	}
}

func TestSweepBadRateStillFinishes(t *testing.T) {
	for _, rate := range []float64{0, -2, math.NaN()} {
		s := newTestScene(t)
		// Upper bound only guards the test; a 1 page/s sweep needs far fewer
		frames, err := RunHeadless(context.Background(), s, HeadlessOptions{
			MaxFrames: 100000,
			Script:    Sweep(rate),
		})
		if err != nil {
			t.Fatalf("rate %v: RunHeadless: %v", rate, err)
		}
		if frames >= 100000 {
			t.Errorf("rate %v: sweep never reached the bottom", rate)
		}
		if got, want := s.Camera().ScrollY, s.Camera().MaxScroll(); got != want {
			t.Errorf("rate %v: expected sweep to end at %v, got %v", rate, want, got)
		}
	}
}

func TestRunHeadlessMaxFrames(t *testing.T) {
	s := newTestScene(t)
	frames, err := RunHeadless(context.Background(), s, HeadlessOptions{MaxFrames: 10})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if frames != 10 || s.Tick() != 10 {
		t.Errorf("expected 10 frames, got %d (tick %d)", frames, s.Tick())
	}
}

func TestRunHeadlessCancelled(t *testing.T) {
	s := newTestScene(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	frames, err := RunHeadless(ctx, s, HeadlessOptions{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if frames != 0 {
		t.Errorf("expected no frames, got %d", frames)
	}
}

func TestRunHeadlessScript(t *testing.T) {
	s := newTestScene(t)
	script := func(tick int64, _ *Scene) (Input, bool) {
		if tick == 0 {
			return Input{NavTarget: "ehu"}, false
		}
		return Input{}, tick >= 180
	}

	if _, err := RunHeadless(context.Background(), s, HeadlessOptions{Script: script}); err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	top, _ := s.Layout().SectionTop("ehu")
	if got := s.Camera().ScrollY; got != top {
		t.Errorf("expected scroll at ehu (%v), got %v", top, got)
	}
	if got := s.Frame().Active; got != "ehu" {
		t.Errorf("expected ehu active, got %q", got)
	}
}
