package field

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// ClampDelta restricts a frame delta to [0, maxDelta]. A stalled frame
// (background tab, debugger) advances the field by at most maxDelta.
func ClampDelta(dt, maxDelta float64) float64 {
	if dt <= 0 || math.IsNaN(dt) {
		return 0
	}
	if maxDelta > 0 && dt > maxDelta {
		return maxDelta
	}
	return dt
}

// Repulsion returns the velocity change pushing a particle at p away from the
// pointer. Magnitude falls off linearly from force at the pointer to zero at
// radius; it is zero at and beyond the radius and when p sits exactly on the
// pointer (no direction).
func Repulsion(p, ptr r2.Vec, radius, force float64) r2.Vec {
	d := r2.Sub(p, ptr)
	dist := r2.Norm(d)
	if dist >= radius || dist == 0 {
		return r2.Vec{}
	}
	mag := (radius - dist) / radius * force
	return r2.Scale(mag/dist, d)
}

// Wrap moves a coordinate that left [-margin, size+margin] to the opposite
// edge. Velocity is untouched by the caller, so the particle keeps drifting
// in the same direction after re-entering.
func Wrap(x, size, margin float64) float64 {
	if x < -margin {
		x = size + margin
	}
	if x > size+margin {
		x = -margin
	}
	return x
}

// Advance integrates one particle over k reference frames.
// Order: position integration, edge wrap, pointer repulsion measured at the
// wrapped position, damping. The push lands in the velocity used next frame.
func Advance(pos, vel r2.Vec, ptr r2.Vec, hasPtr bool, k, width, height float64, p Params) (r2.Vec, r2.Vec) {
	pos = r2.Add(pos, r2.Scale(k, vel))
	pos.X = Wrap(pos.X, width, p.WrapMargin)
	pos.Y = Wrap(pos.Y, height, p.WrapMargin)

	if hasPtr {
		vel = r2.Add(vel, r2.Scale(k, Repulsion(pos, ptr, p.PointerRadius, p.PointerForce)))
	}
	vel = r2.Scale(math.Pow(p.Damping, k), vel)
	return pos, vel
}

// Step advances every particle by dt seconds (clamped to MaxDelta).
// Calls after Teardown or before Initialize do nothing.
func (f *Field) Step(dt float64) {
	if !f.alive || f.world == nil {
		return
	}
	dt = ClampDelta(dt, f.params.MaxDelta)
	k := dt * f.params.ReferenceFPS
	if k == 0 {
		return
	}

	ptr, hasPtr := f.pointer.Position()

	query := f.filter.Query()
	for query.Next() {
		pos, vel, _ := query.Get()
		p, v := Advance(pos.Vec(), vel.Vec(), ptr, hasPtr, k, f.width, f.height, f.params)
		pos.X, pos.Y = p.X, p.Y
		vel.X, vel.Y = v.X, v.Y
	}
	f.steps++
}
