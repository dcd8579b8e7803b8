package telemetry

import "math"

// Collector accumulates interaction events within time windows and produces
// WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int64
	dt                  float64

	// Current window tracking
	windowStartTick int64

	// Event counters for current window
	activeChanges int
	resizes       int
	pointerMoves  int
	pointerLeaves int
	navClicks     int

	// Scroll samples for current window
	lastScrollY  float64
	haveScroll   bool
	scrollTravel float64
	scrollYs     []float64
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in seconds
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec, dt float64) *Collector {
	ticksPerWindow := int64(1)
	if dt > 0 {
		ticksPerWindow = max(int64(math.Round(windowDurationSec/dt)), 1)
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// RecordActiveChange records a change of the active section.
func (c *Collector) RecordActiveChange() {
	c.activeChanges++
}

// RecordResize records a viewport resize.
func (c *Collector) RecordResize() {
	c.resizes++
}

// RecordPointerMove records a pointer move event.
func (c *Collector) RecordPointerMove() {
	c.pointerMoves++
}

// RecordPointerLeave records the pointer leaving the viewport.
func (c *Collector) RecordPointerLeave() {
	c.pointerLeaves++
}

// RecordNavClick records a timeline nav click.
func (c *Collector) RecordNavClick() {
	c.navClicks++
}

// RecordScroll samples the scroll offset once per tick.
func (c *Collector) RecordScroll(scrollY float64) {
	if c.haveScroll {
		c.scrollTravel += math.Abs(scrollY - c.lastScrollY)
	}
	c.lastScrollY = scrollY
	c.haveScroll = true
	c.scrollYs = append(c.scrollYs, scrollY)
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int64) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// SceneState is the scene snapshot recorded at window end.
type SceneState struct {
	ScrollY    float64
	Particles  int
	Links      int
	Active     string
	NavVisible bool
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int64, scene SceneState) WindowStats {
	p10, p50, p90 := ComputeScrollStats(c.scrollYs)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.dt,

		ScrollY:      scene.ScrollY,
		ScrollTravel: c.scrollTravel,
		ScrollP10:    p10,
		ScrollP50:    p50,
		ScrollP90:    p90,

		Particles:  scene.Particles,
		Links:      scene.Links,
		Active:     scene.Active,
		NavVisible: scene.NavVisible,

		ActiveChanges: c.activeChanges,
		Resizes:       c.resizes,
		PointerMoves:  c.pointerMoves,
		PointerLeaves: c.pointerLeaves,
		NavClicks:     c.navClicks,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.activeChanges = 0
	c.resizes = 0
	c.pointerMoves = 0
	c.pointerLeaves = 0
	c.navClicks = 0
	c.scrollTravel = 0
	c.scrollYs = c.scrollYs[:0]

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int64 {
	return c.windowDurationTicks
}
