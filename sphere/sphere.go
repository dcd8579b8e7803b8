// Package sphere holds the state of the decorative 3D element in the hero:
// a slowly spinning sphere that leans towards the pointer and drifts after it.
package sphere

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/folio/config"
)

// Params are the follower constants. Speeds are lerp factors per reference
// frame; AutoSpinSpeed is radians per second.
type Params struct {
	FollowRange      float64
	FollowSpeed      float64
	RotationRange    float64
	RotationSpeed    float64
	AutoSpinSpeed    float64
	MaxDelta         float64
	ReferenceFPS     float64
	CameraDistance   float64
	MobileDistance   float64
	MobileBreakpoint int
	FOV              float64
}

// DefaultParams returns the tuned hero values.
func DefaultParams() Params {
	return Params{
		FollowRange:      0.15,
		FollowSpeed:      0.005,
		RotationRange:    0.3,
		RotationSpeed:    0.02,
		AutoSpinSpeed:    0.06,
		MaxDelta:         0.1,
		ReferenceFPS:     60,
		CameraDistance:   28,
		MobileDistance:   32,
		MobileBreakpoint: 768,
		FOV:              45,
	}
}

// ParamsFromConfig converts the config section into Params.
func ParamsFromConfig(c config.SphereConfig) Params {
	return Params{
		FollowRange:      c.FollowRange,
		FollowSpeed:      c.FollowSpeed,
		RotationRange:    c.RotationRange,
		RotationSpeed:    c.RotationSpeed,
		AutoSpinSpeed:    c.AutoSpinSpeed,
		MaxDelta:         c.MaxDelta,
		ReferenceFPS:     c.ReferenceFPS,
		CameraDistance:   c.CameraDistance,
		MobileDistance:   c.MobileDistance,
		MobileBreakpoint: c.MobileBreakpoint,
		FOV:              c.FOV,
	}
}

// Follower is the smoothed sphere state.
type Follower struct {
	params Params

	// AutoSpin accumulates the idle yaw in radians
	AutoSpin float64
	// Rotation is (pitch, yaw) in radians
	Rotation r2.Vec
	// Position is the sphere centre in world units on the z=0 plane
	Position r2.Vec
}

// NewFollower returns a follower at rest at the origin.
func NewFollower(p Params) *Follower {
	return &Follower{params: p}
}

// Params returns the follower constants.
func (f *Follower) Params() Params { return f.params }

// Step advances the follower by dt seconds. pointer is the normalized pointer
// position in [-1, 1] (y up, zero when absent); view is the visible world
// size at the sphere's depth.
func (f *Follower) Step(dt float64, pointer, view r2.Vec) {
	if dt <= 0 || math.IsNaN(dt) {
		return
	}
	p := f.params
	if p.MaxDelta > 0 && dt > p.MaxDelta {
		dt = p.MaxDelta
	}
	k := dt * p.ReferenceFPS

	f.AutoSpin += dt * p.AutoSpinSpeed

	rotTarget := r2.Vec{
		X: pointer.Y * p.RotationRange,
		Y: pointer.X*p.RotationRange + f.AutoSpin,
	}
	f.Rotation = lerpVec(f.Rotation, rotTarget, LerpFactor(p.RotationSpeed, k))

	posTarget := r2.Vec{
		X: pointer.X * view.X * p.FollowRange,
		Y: pointer.Y * view.Y * p.FollowRange,
	}
	f.Position = lerpVec(f.Position, posTarget, LerpFactor(p.FollowSpeed, k))
}

// LerpFactor rescales a per-reference-frame lerp factor to k reference
// frames: 1 - (1-factor)^k.
func LerpFactor(factor, k float64) float64 {
	if factor >= 1 {
		return 1
	}
	if factor <= 0 || k <= 0 {
		return 0
	}
	return 1 - math.Pow(1-factor, k)
}

// CameraDistance returns the camera distance for a viewport width; narrow
// viewports pull the camera back.
func CameraDistance(width float64, p Params) float64 {
	if p.MobileBreakpoint > 0 && width <= float64(p.MobileBreakpoint) {
		return p.MobileDistance
	}
	return p.CameraDistance
}

// ViewSize returns the world-space size visible at distance from a
// perspective camera with vertical field of view fovDeg.
func ViewSize(distance, fovDeg, aspect float64) r2.Vec {
	h := 2 * distance * math.Tan(fovDeg*math.Pi/360)
	return r2.Vec{X: h * aspect, Y: h}
}

func lerpVec(a, b r2.Vec, t float64) r2.Vec {
	return r2.Add(a, r2.Scale(t, r2.Sub(b, a)))
}
