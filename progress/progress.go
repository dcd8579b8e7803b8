// Package progress maps scroll position to per-section animation values.
//
// Every function here is a pure function of the current measurements: a
// section's raw progress through its tracked scroll range, breakpoint tables
// turning raw progress into visual channels, and the active-section probe
// used by the timeline nav. Nothing is cached between calls, so evaluating
// twice for the same scroll offset gives the same answer.
package progress

import (
	"math"

	"github.com/pthm-cable/folio/config"
)

// Offset pins a point of the section to a point of the viewport.
// Target and Viewport are fractions of the section and viewport height,
// 0 being the top and 1 the bottom.
type Offset struct {
	Target   float64
	Viewport float64
}

// Range is the scroll range over which raw progress runs from 0 to 1.
type Range struct {
	Start Offset
	End   Offset
}

// DefaultRange tracks a section from its top touching the viewport bottom
// until its bottom leaves the viewport top.
func DefaultRange() Range {
	return Range{
		Start: Offset{Target: 0, Viewport: 1},
		End:   Offset{Target: 1, Viewport: 0},
	}
}

// RangeFromConfig converts the config section into a Range.
func RangeFromConfig(c config.RangeConfig) Range {
	return Range{
		Start: Offset{Target: c.Start.Target, Viewport: c.Start.Viewport},
		End:   Offset{Target: c.End.Target, Viewport: c.End.Viewport},
	}
}

// ScrollY returns the scroll offset at which the offset is met for a section
// at top with the given height.
func (o Offset) ScrollY(top, height, vh float64) float64 {
	return top + o.Target*height - o.Viewport*vh
}

// ComputeRawProgress returns how far scrollY has moved through the section's
// tracked range. The result is not clamped: it is negative before the range
// starts and above 1 after it ends. A zero-length range reports 0.
func ComputeRawProgress(top, height, vh, scrollY float64, r Range) float64 {
	start := r.Start.ScrollY(top, height, vh)
	end := r.End.ScrollY(top, height, vh)
	span := end - start
	if span == 0 || math.IsNaN(span) {
		return 0
	}
	return (scrollY - start) / span
}

// Clamp01 restricts v to [0, 1]. NaN becomes 0.
func Clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// NavVisible reports whether the timeline nav should show: once the page has
// scrolled past threshold viewport heights.
func NavVisible(scrollY, vh, threshold float64) bool {
	return scrollY > threshold*vh
}
