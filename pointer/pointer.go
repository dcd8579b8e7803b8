// Package pointer tracks the pointer position for a single owner.
//
// A State is created together with the component that reads it and dropped
// with it; there is no package-level pointer, so independent simulators never
// observe each other's input.
package pointer

import "gonum.org/v1/gonum/spatial/r2"

// State holds the last known pointer position in CSS pixels.
type State struct {
	pos     r2.Vec
	present bool
}

// New returns a State with no pointer.
func New() *State {
	return &State{}
}

// Move records a pointer position.
func (s *State) Move(x, y float64) {
	s.pos = r2.Vec{X: x, Y: y}
	s.present = true
}

// Leave clears the pointer; repulsion and follow targets stop until the next Move.
func (s *State) Leave() {
	s.pos = r2.Vec{}
	s.present = false
}

// Position returns the pointer position and whether one is known.
func (s *State) Position() (r2.Vec, bool) {
	if s == nil {
		return r2.Vec{}, false
	}
	return s.pos, s.present
}

// Normalized maps the pointer into [-1, 1] on both axes for a viewport of
// the given size, with +Y pointing up. Returns the origin when no pointer is
// known or the viewport is empty.
func (s *State) Normalized(width, height float64) r2.Vec {
	if s == nil || !s.present || width <= 0 || height <= 0 {
		return r2.Vec{}
	}
	return r2.Vec{
		X: clamp(s.pos.X/width*2-1, -1, 1),
		Y: clamp(-(s.pos.Y/height*2 - 1), -1, 1),
	}
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
