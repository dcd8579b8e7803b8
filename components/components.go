// Package components defines ECS components for the particle field.
package components

import "gonum.org/v1/gonum/spatial/r2"

// Position represents a particle's position in CSS pixels.
type Position struct {
	X, Y float64
}

// Vec returns the position as a vector.
func (p Position) Vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

// Velocity represents a particle's velocity in CSS pixels per reference frame.
type Velocity struct {
	X, Y float64
}

// Vec returns the velocity as a vector.
func (v Velocity) Vec() r2.Vec {
	return r2.Vec{X: v.X, Y: v.Y}
}

// Appearance holds the draw attributes fixed at creation.
type Appearance struct {
	Radius  float64
	Opacity float64
}
