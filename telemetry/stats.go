package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int64   `csv:"-"`
	WindowEndTick   int64   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Scroll position at window end and over the window
	ScrollY      float64 `csv:"scroll_y"`
	ScrollTravel float64 `csv:"scroll_travel"`
	ScrollP10    float64 `csv:"scroll_p10"`
	ScrollP50    float64 `csv:"scroll_p50"`
	ScrollP90    float64 `csv:"scroll_p90"`

	// Scene state at window end
	Particles  int    `csv:"particles"`
	Links      int    `csv:"links"`
	Active     string `csv:"active"`
	NavVisible bool   `csv:"nav_visible"`

	// Events during window
	ActiveChanges int `csv:"active_changes"`
	Resizes       int `csv:"resizes"`
	PointerMoves  int `csv:"pointer_moves"`
	PointerLeaves int `csv:"pointer_leaves"`
	NavClicks     int `csv:"nav_clicks"`
}

// ComputeScrollStats returns the 10th, 50th and 90th percentile of the
// scroll samples. Returns zeros for no samples.
func ComputeScrollStats(values []float64) (p10, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	p10 = stat.Quantile(0.10, stat.LinInterp, sorted, nil)
	p50 = stat.Quantile(0.50, stat.LinInterp, sorted, nil)
	p90 = stat.Quantile(0.90, stat.LinInterp, sorted, nil)
	return p10, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_start", s.WindowStartTick),
		slog.Int64("window_end", s.WindowEndTick),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Float64("scroll_y", s.ScrollY),
		slog.Float64("scroll_travel", s.ScrollTravel),
		slog.Int("particles", s.Particles),
		slog.Int("links", s.Links),
		slog.String("active", s.Active),
		slog.Bool("nav_visible", s.NavVisible),
		slog.Int("active_changes", s.ActiveChanges),
		slog.Int("resizes", s.Resizes),
		slog.Int("pointer_moves", s.PointerMoves),
		slog.Int("pointer_leaves", s.PointerLeaves),
		slog.Int("nav_clicks", s.NavClicks),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"scroll_y", s.ScrollY,
		"scroll_travel", s.ScrollTravel,
		"scroll_p50", s.ScrollP50,
		"particles", s.Particles,
		"links", s.Links,
		"active", s.Active,
		"nav_visible", s.NavVisible,
		"active_changes", s.ActiveChanges,
		"resizes", s.Resizes,
		"pointer_moves", s.PointerMoves,
		"pointer_leaves", s.PointerLeaves,
		"nav_clicks", s.NavClicks,
	)
}
