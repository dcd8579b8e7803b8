package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/folio/config"
)

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil || om != nil {
		t.Fatalf("expected nil manager without dir, got %v %v", om, err)
	}

	// Every method is safe on the nil manager
	if err := om.WritePerf(PerfStats{}, 1); err != nil {
		t.Error(err)
	}
	if err := om.WriteTrace([]TraceRecord{{}}); err != nil {
		t.Error(err)
	}
	if err := om.WriteTelemetry(WindowStats{}); err != nil {
		t.Error(err)
	}
	if err := om.WriteBookmarks([]Bookmark{{Type: BookmarkIdle}}); err != nil {
		t.Error(err)
	}
	if err := om.WriteConfig(config.Defaults()); err != nil {
		t.Error(err)
	}
	if om.Dir() != "" || om.Close() != nil {
		t.Error("expected empty dir and clean close")
	}
}

func TestOutputManagerWritesHeaderOnce(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := om.WriteTrace([]TraceRecord{{Frame: int64(i), Section: "a"}}); err != nil {
			t.Fatalf("write trace: %v", err)
		}
		if err := om.WritePerf(PerfStats{}, int64(i)); err != nil {
			t.Fatalf("write perf: %v", err)
		}
	}
	if err := om.WriteTelemetry(WindowStats{WindowEndTick: 60}); err != nil {
		t.Fatalf("write telemetry: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := om.WriteBookmarks([]Bookmark{{Type: BookmarkFirstVisit, Tick: int64(i)}}); err != nil {
			t.Fatalf("write bookmarks: %v", err)
		}
	}
	if err := om.WriteConfig(config.Defaults()); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	for _, tc := range []struct {
		file   string
		header string
		lines  int
	}{
		{"trace.csv", "frame,scroll_y,section", 4},
		{"perf.csv", "frame,avg_tick_us", 4},
		{"telemetry.csv", "window_end,sim_time", 2},
		{"bookmarks.csv", "type,tick,section,description", 3},
	} {
		data, err := os.ReadFile(filepath.Join(dir, tc.file))
		if err != nil {
			t.Fatalf("reading %s: %v", tc.file, err)
		}
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		if len(lines) != tc.lines {
			t.Errorf("%s: expected %d lines, got %d", tc.file, tc.lines, len(lines))
		}
		if !strings.HasPrefix(lines[0], tc.header) {
			t.Errorf("%s: expected header %q, got %q", tc.file, tc.header, lines[0])
		}
		if strings.Count(string(data), tc.header) != 1 {
			t.Errorf("%s: expected header written once", tc.file)
		}
	}

	if _, err := config.Load(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("expected config snapshot to load back: %v", err)
	}
}
