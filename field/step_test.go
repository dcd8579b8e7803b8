package field

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/folio/pointer"
)

func TestClampDelta(t *testing.T) {
	tests := []struct {
		dt, max, want float64
	}{
		{0.016, 0.1, 0.016},
		{0.5, 0.1, 0.1},
		{-1, 0.1, 0},
		{math.NaN(), 0.1, 0},
		{0.5, 0, 0.5},
	}
	for _, tc := range tests {
		if got := ClampDelta(tc.dt, tc.max); got != tc.want {
			t.Errorf("ClampDelta(%v, %v): expected %v, got %v", tc.dt, tc.max, tc.want, got)
		}
	}
}

func TestRepulsion(t *testing.T) {
	ptr := r2.Vec{X: 100, Y: 100}

	// Beyond and exactly at radius
	if v := Repulsion(r2.Vec{X: 300, Y: 100}, ptr, 160, 0.015); v != (r2.Vec{}) {
		t.Errorf("expected no push beyond radius, got %v", v)
	}
	if v := Repulsion(r2.Vec{X: 260, Y: 100}, ptr, 160, 0.015); v != (r2.Vec{}) {
		t.Errorf("expected no push at radius, got %v", v)
	}
	// On top of the pointer there is no direction
	if v := Repulsion(ptr, ptr, 160, 0.015); v != (r2.Vec{}) {
		t.Errorf("expected no push at pointer, got %v", v)
	}

	// Halfway: half force, pointing away
	v := Repulsion(r2.Vec{X: 180, Y: 100}, ptr, 160, 0.015)
	if math.Abs(v.X-0.0075) > 1e-12 || v.Y != 0 {
		t.Errorf("expected (0.0075, 0), got %v", v)
	}

	// Closer particles are pushed harder
	prev := 0.0
	for d := 150.0; d > 0; d -= 10 {
		mag := r2.Norm(Repulsion(r2.Vec{X: 100, Y: 100 + d}, ptr, 160, 0.015))
		if mag < prev {
			t.Errorf("expected push to grow as distance shrinks, %v < %v at d=%v", mag, prev, d)
		}
		prev = mag
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"inside", 500, 500},
		{"inside margin left", -10, -10},
		{"inside margin right", 1210, 1210},
		{"past left", -10.5, 1210},
		{"past right", 1210.5, -10},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Wrap(tc.x, 1200, 10); got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestAdvanceOrder(t *testing.T) {
	p := DefaultParams()
	ptr := r2.Vec{X: 100, Y: 100}

	// Position moves with the incoming velocity; the push waits a frame
	newPos, newVel := Advance(r2.Vec{X: 120, Y: 100}, r2.Vec{X: 1}, ptr, true, 1, 1200, 800, p)
	if newPos.X != 121 || newPos.Y != 100 {
		t.Errorf("expected position (121, 100), got %v", newPos)
	}
	// Push measured at the integrated position (21 px away), then damped
	wantVel := (1 + (160.0-21)/160*0.015) * 0.998
	if math.Abs(newVel.X-wantVel) > 1e-12 || newVel.Y != 0 {
		t.Errorf("expected vel (%v, 0), got %v", wantVel, newVel)
	}

	// Repulsion uses the wrapped position: a particle leaving the right edge
	// re-enters at the left, right next to the pointer
	leftPtr := r2.Vec{X: 0, Y: 100}
	newPos, newVel = Advance(r2.Vec{X: 1210, Y: 100}, r2.Vec{X: 1}, leftPtr, true, 1, 1200, 800, p)
	if newPos.X != -10 {
		t.Fatalf("expected wrap to -10, got %v", newPos.X)
	}
	wantVel = (1 - (160.0-10)/160*0.015) * 0.998
	if math.Abs(newVel.X-wantVel) > 1e-12 {
		t.Errorf("expected vx %v pushed away from wrapped position, got %v", wantVel, newVel.X)
	}
}

func TestStepPushesParticlesAwayFromPointer(t *testing.T) {
	p := DefaultParams()
	free := New(p, 21, nil)
	pushed := New(p, 21, nil)
	free.Initialize(1200, 800)
	pushed.Initialize(1200, 800)

	// Park the pointer just off the first particle
	target := pushed.Particles()[0].Pos
	ptr := r2.Add(target, r2.Vec{X: -30, Y: 0})
	pushed.OnPointerMove(ptr.X, ptr.Y)

	for i := 0; i < 3; i++ {
		free.Step(1.0 / 60)
		pushed.Step(1.0 / 60)
	}

	a := free.Particles()[0].Pos
	b := pushed.Particles()[0].Pos
	if r2.Norm(r2.Sub(b, ptr)) <= r2.Norm(r2.Sub(a, ptr)) {
		t.Errorf("expected pushed particle farther from pointer: pushed %v, free %v", b, a)
	}
}

func TestAdvanceFrameRateIndependentDamping(t *testing.T) {
	p := DefaultParams()
	vel := r2.Vec{X: 0.1}

	// Two half frames damp the same as one full frame
	_, half := Advance(r2.Vec{X: 500, Y: 500}, vel, r2.Vec{}, false, 0.5, 1200, 800, p)
	_, half = Advance(r2.Vec{X: 500, Y: 500}, half, r2.Vec{}, false, 0.5, 1200, 800, p)
	_, full := Advance(r2.Vec{X: 500, Y: 500}, vel, r2.Vec{}, false, 1, 1200, 800, p)

	if math.Abs(half.X-full.X) > 1e-12 {
		t.Errorf("expected %v, got %v", full.X, half.X)
	}
}

func TestStepKeepsParticlesInBounds(t *testing.T) {
	p := DefaultParams()
	// Exaggerated speeds so particles wrap often
	p.MaxSpeed = 40
	p.Damping = 1

	ptr := pointer.New()
	f := New(p, 7, ptr)
	f.Initialize(1200, 800)

	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 500; i++ {
		if rng.Intn(4) == 0 {
			f.OnPointerLeave()
		} else {
			f.OnPointerMove(rng.Float64()*1400-100, rng.Float64()*1000-100)
		}
		f.Step(rng.Float64() * 0.2)

		for _, pt := range f.Particles() {
			if pt.Pos.X < -p.WrapMargin || pt.Pos.X > 1200+p.WrapMargin ||
				pt.Pos.Y < -p.WrapMargin || pt.Pos.Y > 800+p.WrapMargin {
				t.Fatalf("step %d: particle escaped bounds at %v", i, pt.Pos)
			}
		}
	}
}

func TestStepWithoutPointerOnlyDrifts(t *testing.T) {
	p := DefaultParams()
	f := New(p, 11, nil)
	f.Initialize(1200, 800)
	before := f.Particles()

	f.Step(1.0 / 60)
	after := f.Particles()

	for i := range before {
		wantVel := r2.Scale(p.Damping, before[i].Vel)
		if math.Abs(after[i].Vel.X-wantVel.X) > 1e-12 || math.Abs(after[i].Vel.Y-wantVel.Y) > 1e-12 {
			t.Errorf("particle %d: expected vel %v, got %v", i, wantVel, after[i].Vel)
		}
	}
	if f.Steps() != 1 {
		t.Errorf("expected 1 step, got %d", f.Steps())
	}
}

func TestStepClampsLongFrames(t *testing.T) {
	p := DefaultParams()
	a := New(p, 13, nil)
	b := New(p, 13, nil)
	a.Initialize(1200, 800)
	b.Initialize(1200, 800)

	a.Step(5)
	b.Step(p.MaxDelta)

	pa, pb := a.Particles(), b.Particles()
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatalf("expected stalled frame clamped to MaxDelta, particle %d differs", i)
		}
	}
}

func TestStepBeforeInitialize(t *testing.T) {
	f := New(DefaultParams(), 1, nil)
	f.Step(1.0 / 60)
	if f.Steps() != 0 {
		t.Errorf("expected no steps before initialize, got %d", f.Steps())
	}
}
