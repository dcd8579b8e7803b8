package field

import "gonum.org/v1/gonum/spatial/r2"

// Canvas is the 2D drawing surface the field renders onto.
// Coordinates are CSS pixels; the canvas applies the device pixel ratio.
type Canvas interface {
	// Clear erases the whole surface.
	Clear()
	// FillCircle draws a white filled dot.
	FillCircle(center r2.Vec, radius, alpha float64)
	// StrokeLine draws a white line segment.
	StrokeLine(a, b r2.Vec, width, alpha float64)
}

// LinkAlpha returns the line alpha for two particles dist apart:
// LinkAlpha * (1 - dist/LinkDistance), zero at and beyond LinkDistance.
func LinkAlpha(dist float64, p Params) float64 {
	if p.LinkDistance <= 0 || dist >= p.LinkDistance {
		return 0
	}
	return (1 - dist/p.LinkDistance) * p.LinkAlpha
}

// ForEachLink calls fn for every unique pair of points closer than maxDist.
// O(n²); the particle cap keeps n small.
func ForEachLink(points []r2.Vec, maxDist float64, fn func(a, b r2.Vec, dist float64)) {
	maxSq := maxDist * maxDist
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			d := r2.Sub(points[i], points[j])
			distSq := r2.Norm2(d)
			if distSq >= maxSq {
				continue
			}
			fn(points[i], points[j], r2.Norm(d))
		}
	}
}

// Render clears the canvas, draws every particle and the links between
// particles within LinkDistance. A nil canvas or a torn-down field draws
// nothing.
func (f *Field) Render(c Canvas) {
	if c == nil || !f.alive || f.world == nil {
		return
	}

	c.Clear()

	f.scratch = f.scratch[:0]
	query := f.filter.Query()
	for query.Next() {
		pos, _, app := query.Get()
		center := pos.Vec()
		c.FillCircle(center, app.Radius, app.Opacity)
		f.scratch = append(f.scratch, center)
	}

	ForEachLink(f.scratch, f.params.LinkDistance, func(a, b r2.Vec, dist float64) {
		c.StrokeLine(a, b, f.params.LinkWidth, LinkAlpha(dist, f.params))
	})
}

// Links returns the number of links the next Render would draw.
func (f *Field) Links() int {
	if !f.alive || f.world == nil {
		return 0
	}
	f.scratch = f.scratch[:0]
	query := f.filter.Query()
	for query.Next() {
		pos, _, _ := query.Get()
		f.scratch = append(f.scratch, pos.Vec())
	}
	n := 0
	ForEachLink(f.scratch, f.params.LinkDistance, func(_, _ r2.Vec, _ float64) { n++ })
	return n
}
