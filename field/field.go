// Package field simulates the ambient particle field behind the landing hero:
// drifting dots that wrap at the viewport edges, link to close neighbours and
// scatter away from the pointer.
//
// A Field is single-threaded. The owner calls Step then Render once per frame
// and Teardown when the view goes away; every call after Teardown is ignored.
package field

import (
	"log/slog"
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/folio/components"
	"github.com/pthm-cable/folio/pointer"
)

// Particle is a read-only snapshot of one particle.
type Particle struct {
	Pos     r2.Vec
	Vel     r2.Vec
	Radius  float64
	Opacity float64
}

// Field owns the particle set, its viewport and the pointer it reacts to.
type Field struct {
	params  Params
	rng     *rand.Rand
	pointer *pointer.State

	world  *ecs.World
	mapper *ecs.Map3[components.Position, components.Velocity, components.Appearance]
	filter *ecs.Filter3[components.Position, components.Velocity, components.Appearance]

	width, height float64
	dpr           float64
	backingW      int
	backingH      int
	count         int
	steps         int64
	alive         bool

	// Reused by Render and Links for pair enumeration
	scratch []r2.Vec
}

// New creates a field with no particles. ptr is the pointer state the field
// reads during Step; pass nil to let the field own a fresh one.
func New(params Params, seed int64, ptr *pointer.State) *Field {
	if ptr == nil {
		ptr = pointer.New()
	}
	return &Field{
		params:  params,
		rng:     rand.New(rand.NewSource(seed)),
		pointer: ptr,
		dpr:     1,
		alive:   true,
	}
}

// Initialize discards the current particle set and allocates a fresh one
// sized for the viewport. Safe to call repeatedly.
func (f *Field) Initialize(width, height float64) {
	if !f.alive {
		return
	}

	width = viewportSize(width)
	height = viewportSize(height)

	// A new world drops every previous entity in one go
	f.world = ecs.NewWorld()
	f.mapper = ecs.NewMap3[components.Position, components.Velocity, components.Appearance](f.world)
	f.filter = ecs.NewFilter3[components.Position, components.Velocity, components.Appearance](f.world)

	f.width = width
	f.height = height
	f.count = Count(width, height, f.params)

	p := f.params
	for i := 0; i < f.count; i++ {
		pos := components.Position{
			X: f.rng.Float64() * width,
			Y: f.rng.Float64() * height,
		}
		vel := components.Velocity{
			X: (f.rng.Float64()*2 - 1) * p.MaxSpeed,
			Y: (f.rng.Float64()*2 - 1) * p.MaxSpeed,
		}
		app := components.Appearance{
			Radius:  p.RadiusMin + f.rng.Float64()*(p.RadiusMax-p.RadiusMin),
			Opacity: p.OpacityMin + f.rng.Float64()*(p.OpacityMax-p.OpacityMin),
		}
		f.mapper.NewEntity(&pos, &vel, &app)
	}

	if cap(f.scratch) < f.count {
		f.scratch = make([]r2.Vec, 0, f.count)
	}
}

// viewportSize maps negative and non-finite dimensions to an empty viewport.
func viewportSize(v float64) float64 {
	if !(v > 0) || math.IsInf(v, 1) {
		return 0
	}
	return v
}

// OnResize records the new viewport and device pixel ratio, re-initializes
// the particle set and returns the backing-store size the canvas must use
// (viewport * dpr, in device pixels).
func (f *Field) OnResize(width, height, dpr float64) (backingW, backingH int) {
	if !f.alive {
		return 0, 0
	}
	if !(dpr > 0) || math.IsInf(dpr, 1) {
		dpr = 1
	}
	f.dpr = dpr
	f.backingW = int(math.Round(viewportSize(width) * dpr))
	f.backingH = int(math.Round(viewportSize(height) * dpr))
	f.Initialize(width, height)

	slog.Debug("field resized",
		"width", width,
		"height", height,
		"dpr", dpr,
		"particles", f.count,
	)
	return f.backingW, f.backingH
}

// OnPointerMove updates the tracked pointer position.
func (f *Field) OnPointerMove(x, y float64) {
	if !f.alive {
		return
	}
	f.pointer.Move(x, y)
}

// OnPointerLeave clears the tracked pointer.
func (f *Field) OnPointerLeave() {
	if !f.alive {
		return
	}
	f.pointer.Leave()
}

// Teardown releases the particle set and detaches the pointer.
// The field ignores all later calls.
func (f *Field) Teardown() {
	if !f.alive {
		return
	}
	f.alive = false
	f.world = nil
	f.mapper = nil
	f.filter = nil
	f.pointer = nil
	f.scratch = nil
	f.count = 0
}

// Particles returns a snapshot of every particle.
func (f *Field) Particles() []Particle {
	if !f.alive || f.world == nil {
		return nil
	}
	out := make([]Particle, 0, f.count)
	query := f.filter.Query()
	for query.Next() {
		pos, vel, app := query.Get()
		out = append(out, Particle{
			Pos:     pos.Vec(),
			Vel:     vel.Vec(),
			Radius:  app.Radius,
			Opacity: app.Opacity,
		})
	}
	return out
}

// Len returns the number of particles.
func (f *Field) Len() int { return f.count }

// Size returns the viewport size in CSS pixels.
func (f *Field) Size() (width, height float64) { return f.width, f.height }

// BackingSize returns the canvas backing-store size from the last resize.
func (f *Field) BackingSize() (width, height int) { return f.backingW, f.backingH }

// DPR returns the device pixel ratio from the last resize.
func (f *Field) DPR() float64 { return f.dpr }

// Steps returns how many non-empty steps have run.
func (f *Field) Steps() int64 { return f.steps }

// Alive reports whether Teardown has not been called yet.
func (f *Field) Alive() bool { return f.alive }

// Params returns the field constants.
func (f *Field) Params() Params { return f.params }

// SetParams replaces the field constants without respawning particles.
// Count-affecting changes (Cap, Density) take effect on the next Initialize.
func (f *Field) SetParams(p Params) {
	if !f.alive {
		return
	}
	f.params = p
}

// Pointer returns the pointer state the field reacts to (nil after Teardown).
func (f *Field) Pointer() *pointer.State { return f.pointer }
