package telemetry

import (
	"testing"
	"time"
)

// fakeClock advances only when told to.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestCollector(window int) (*PerfCollector, *fakeClock) {
	clk := &fakeClock{t: time.Unix(0, 0)}
	pc := NewPerfCollector(window)
	pc.now = clk.now
	return pc, clk
}

func TestPerfCollector_BasicTiming(t *testing.T) {
	pc, clk := newTestCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseFieldStep)
		clk.advance(100 * time.Microsecond)
		pc.StartPhase(PhaseFieldRender)
		clk.advance(300 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()

	if stats.AvgTickDuration != 400*time.Microsecond {
		t.Errorf("expected 400us average tick, got %v", stats.AvgTickDuration)
	}
	if stats.PhaseAvg[PhaseFieldStep] != 100*time.Microsecond {
		t.Errorf("expected 100us field_step, got %v", stats.PhaseAvg[PhaseFieldStep])
	}
	if pct := stats.PhasePct[PhaseFieldRender]; pct != 75 {
		t.Errorf("expected field_render at 75%%, got %v", pct)
	}
	if stats.StdTickDuration != 0 {
		t.Errorf("expected zero spread for identical ticks, got %v", stats.StdTickDuration)
	}
}

func TestPerfCollector_P95(t *testing.T) {
	pc, clk := newTestCollector(100)

	// Ticks of 1ms..100ms
	for i := 1; i <= 100; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseDraw)
		clk.advance(time.Duration(i) * time.Millisecond)
		pc.EndTick()
	}

	stats := pc.Stats()
	if stats.P95TickDuration != 95*time.Millisecond {
		t.Errorf("expected p95 95ms, got %v", stats.P95TickDuration)
	}
	if stats.MinTickDuration != time.Millisecond || stats.MaxTickDuration != 100*time.Millisecond {
		t.Errorf("expected min 1ms max 100ms, got %v %v", stats.MinTickDuration, stats.MaxTickDuration)
	}
	if stats.StdTickDuration <= 0 {
		t.Error("expected positive spread")
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc, clk := newTestCollector(5)

	// Old slow ticks fall out of the window
	for i := 0; i < 5; i++ {
		pc.StartTick()
		clk.advance(10 * time.Millisecond)
		pc.EndTick()
	}
	for i := 0; i < 5; i++ {
		pc.StartTick()
		clk.advance(time.Millisecond)
		pc.EndTick()
	}

	stats := pc.Stats()
	if stats.MaxTickDuration != time.Millisecond {
		t.Errorf("expected only recent ticks in window, got max %v", stats.MaxTickDuration)
	}
	if stats.TicksPerSecond != 1000 {
		t.Errorf("expected 1000 ticks/s, got %v", stats.TicksPerSecond)
	}
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	pc := NewPerfCollector(10)

	stats := pc.Stats()

	if stats.AvgTickDuration != 0 {
		t.Error("expected zero avg tick duration for empty collector")
	}
	if stats.PhaseAvg == nil || stats.PhasePct == nil {
		t.Error("expected non-nil phase maps")
	}
}

func TestPerfCollector_FrameTiming(t *testing.T) {
	pc, clk := newTestCollector(10)

	pc.RecordFrame()
	clk.advance(20 * time.Millisecond)
	pc.RecordFrame()

	stats := pc.Stats()
	if stats.FrameDuration != 20*time.Millisecond {
		t.Errorf("expected 20ms frame, got %v", stats.FrameDuration)
	}
	if stats.FPS != 50 {
		t.Errorf("expected 50 fps, got %v", stats.FPS)
	}
}

func TestPerfCollector_NilSafe(t *testing.T) {
	var pc *PerfCollector
	pc.StartTick()
	pc.StartPhase(PhasePointer)
	pc.EndTick()
	pc.RecordFrame()
}

func TestPerfStatsToCSV(t *testing.T) {
	s := PerfStats{
		AvgTickDuration: 2 * time.Millisecond,
		P95TickDuration: 3 * time.Millisecond,
		PhasePct:        map[string]float64{PhaseProgress: 12.5},
	}
	row := s.ToCSV(42)
	if row.Frame != 42 || row.AvgTickUS != 2000 || row.P95TickUS != 3000 || row.ProgressPct != 12.5 {
		t.Errorf("unexpected row %+v", row)
	}
}
