// Package camera provides the page scroll viewport.
package camera

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Camera is the viewport into a vertically scrolling document.
// Document coordinates have y=0 at the page top; screen coordinates have
// y=0 at the viewport top.
type Camera struct {
	// ScrollY is the document y shown at the viewport top
	ScrollY float64

	// Viewport dimensions (CSS pixels)
	ViewportW, ViewportH float64

	// Total document height
	DocH float64

	// Smooth scroll state
	target    float64
	smoothing bool

	// SmoothRate is the exponential approach rate of ScrollTo in 1/s
	SmoothRate float64
}

// New creates a camera at the top of the document.
func New(viewportW, viewportH, docH, smoothRate float64) *Camera {
	return &Camera{
		ViewportW:  viewportW,
		ViewportH:  viewportH,
		DocH:       docH,
		SmoothRate: smoothRate,
	}
}

// MaxScroll returns the largest valid scroll offset.
func (c *Camera) MaxScroll() float64 {
	return math.Max(0, c.DocH-c.ViewportH)
}

// ScrollBy moves the viewport by dy pixels, cancelling any smooth scroll.
func (c *Camera) ScrollBy(dy float64) {
	c.Jump(c.ScrollY + dy)
}

// Jump sets the scroll offset immediately.
func (c *Camera) Jump(y float64) {
	c.smoothing = false
	c.ScrollY = clamp(y, 0, c.MaxScroll())
	c.target = c.ScrollY
}

// ScrollTo starts a smooth scroll towards y. Update advances it.
func (c *Camera) ScrollTo(y float64) {
	c.target = clamp(y, 0, c.MaxScroll())
	c.smoothing = c.target != c.ScrollY
}

// Scrolling reports whether a smooth scroll is in progress.
func (c *Camera) Scrolling() bool { return c.smoothing }

// Target returns the smooth scroll destination (ScrollY when idle).
func (c *Camera) Target() float64 { return c.target }

// Update advances a smooth scroll by dt seconds. It snaps to the target
// once within half a pixel.
func (c *Camera) Update(dt float64) {
	if !c.smoothing || dt <= 0 {
		return
	}
	if c.SmoothRate <= 0 {
		c.Jump(c.target)
		return
	}
	alpha := 1 - math.Exp(-c.SmoothRate*dt)
	c.ScrollY += (c.target - c.ScrollY) * alpha
	if math.Abs(c.target-c.ScrollY) < 0.5 {
		c.ScrollY = c.target
		c.smoothing = false
	}
}

// DocToScreen converts document coordinates to screen coordinates.
func (c *Camera) DocToScreen(p r2.Vec) r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y - c.ScrollY}
}

// ScreenToDoc converts screen coordinates to document coordinates.
func (c *Camera) ScreenToDoc(p r2.Vec) r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y + c.ScrollY}
}

// IsVisible reports whether the document span [top, top+height] overlaps
// the viewport.
func (c *Camera) IsVisible(top, height float64) bool {
	return top+height >= c.ScrollY && top <= c.ScrollY+c.ViewportH
}

// VisibleDocBounds returns the visible area in document coordinates.
func (c *Camera) VisibleDocBounds() r2.Box {
	return r2.Box{
		Min: r2.Vec{X: 0, Y: c.ScrollY},
		Max: r2.Vec{X: c.ViewportW, Y: c.ScrollY + c.ViewportH},
	}
}

// Resize updates the viewport and document size and re-clamps the scroll
// offset.
func (c *Camera) Resize(viewportW, viewportH, docH float64) {
	if viewportW == c.ViewportW && viewportH == c.ViewportH && docH == c.DocH {
		return
	}
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	c.DocH = docH
	c.ScrollY = clamp(c.ScrollY, 0, c.MaxScroll())
	c.target = clamp(c.target, 0, c.MaxScroll())
}

// Reset returns to the top of the document.
func (c *Camera) Reset() {
	c.Jump(0)
}

// clamp restricts a value to a range.
func clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
