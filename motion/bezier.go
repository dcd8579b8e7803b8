// Package motion provides time-based animation helpers: CSS-style cubic
// bezier easing, staggered entrances and looping keyframes.
package motion

import "math"

// Bezier is a CSS cubic-bezier timing function with control points
// (X1, Y1) and (X2, Y2); the end points are fixed at (0,0) and (1,1).
type Bezier struct {
	X1, Y1, X2, Y2 float64
}

// CubicBezier returns the timing function for the given control points.
// X values are clamped to [0, 1] so the curve stays a function of time.
func CubicBezier(x1, y1, x2, y2 float64) Bezier {
	return Bezier{X1: clamp01(x1), Y1: y1, X2: clamp01(x2), Y2: y2}
}

// Linear is the identity timing function.
var Linear = Bezier{X1: 0, Y1: 0, X2: 1, Y2: 1}

// EaseOutExpo is the hero entrance curve.
var EaseOutExpo = Bezier{X1: 0.16, Y1: 1, X2: 0.3, Y2: 1}

// Ease maps linear progress x in [0, 1] to eased progress.
func (b Bezier) Ease(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	return sample(b.Y1, b.Y2, b.solve(x))
}

// solve finds the curve parameter whose x equals x: Newton iterations first,
// bisection when the slope is too flat.
func (b Bezier) solve(x float64) float64 {
	t := x
	for i := 0; i < 8; i++ {
		err := sample(b.X1, b.X2, t) - x
		if math.Abs(err) < 1e-7 {
			return t
		}
		d := slope(b.X1, b.X2, t)
		if math.Abs(d) < 1e-6 {
			break
		}
		t -= err / d
	}

	lo, hi := 0.0, 1.0
	t = x
	for i := 0; i < 64; i++ {
		v := sample(b.X1, b.X2, t)
		if math.Abs(v-x) < 1e-7 {
			break
		}
		if v < x {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) / 2
	}
	return t
}

// sample evaluates one coordinate of the curve at parameter t.
func sample(p1, p2, t float64) float64 {
	u := 1 - t
	return 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t
}

func slope(p1, p2, t float64) float64 {
	u := 1 - t
	return 3*u*u*p1 + 6*u*t*(p2-p1) + 3*t*t*(1-p2)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
