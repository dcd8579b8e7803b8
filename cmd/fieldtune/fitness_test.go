package main

import (
	"math"
	"testing"

	"github.com/pthm-cable/folio/config"
	"github.com/pthm-cable/folio/field"
)

func TestParamVectorRoundTrip(t *testing.T) {
	pv := NewParamVector()
	cfg := config.Defaults()

	raw := pv.ExtractFromConfig(cfg)
	if len(raw) != pv.Dim() {
		t.Fatalf("expected %d values, got %d", pv.Dim(), len(raw))
	}
	for i, spec := range pv.Specs {
		if raw[i] != spec.Default {
			t.Errorf("%s: expected default %v, got %v", spec.Name, spec.Default, raw[i])
		}
	}

	back := pv.Denormalize(pv.Normalize(raw))
	for i := range raw {
		if math.Abs(back[i]-raw[i]) > 1e-9 {
			t.Errorf("%s: expected %v, got %v", pv.Specs[i].Name, raw[i], back[i])
		}
	}
}

func TestApplyToConfigClamps(t *testing.T) {
	pv := NewParamVector()
	cfg := config.Defaults()

	pv.ApplyToConfig(cfg, []float64{1, 10, 140, 160, 0.015, 2})
	if cfg.Field.Density != 6000 {
		t.Errorf("expected density clamped to 6000, got %v", cfg.Field.Density)
	}
	if cfg.Field.MaxSpeed != 0.5 {
		t.Errorf("expected max speed clamped to 0.5, got %v", cfg.Field.MaxSpeed)
	}
	if cfg.Field.Damping != 1 {
		t.Errorf("expected damping clamped to 1, got %v", cfg.Field.Damping)
	}
}

func TestScore(t *testing.T) {
	targets := Targets{LinksPerParticle: 1, MeanSpeed: 0.1, MinParticles: 10}

	perfect := []Sample{
		{Particles: 20, LinksPerParticle: 1, MeanSpeed: 0.1},
		{Particles: 40, LinksPerParticle: 1, MeanSpeed: 0.1},
	}
	if got := Score(perfect, targets); math.Abs(got) > 1e-12 {
		t.Errorf("expected 0 for samples on target, got %v", got)
	}

	off := []Sample{
		{Particles: 20, LinksPerParticle: 2, MeanSpeed: 0.1},
		{Particles: 40, LinksPerParticle: 2, MeanSpeed: 0.1},
	}
	if got, want := Score(off, targets), math.Log(2)*math.Log(2); math.Abs(got-want) > 1e-12 {
		t.Errorf("expected %v, got %v", want, got)
	}

	sparse := []Sample{{Particles: 5, LinksPerParticle: 1, MeanSpeed: 0.1}}
	if got := Score(sparse, targets); math.Abs(got-0.25) > 1e-12 {
		t.Errorf("expected particle penalty 0.25, got %v", got)
	}

	if got := Score([]Sample{{}}, targets); !math.IsInf(got, 1) {
		t.Errorf("expected +Inf for an empty run, got %v", got)
	}
	if got := Score(nil, targets); !math.IsInf(got, 1) {
		t.Errorf("expected +Inf for no samples, got %v", got)
	}
}

func TestSimulateDeterministic(t *testing.T) {
	vp := Viewport{"laptop", 1280, 800}
	a := simulate(field.DefaultParams(), 7, vp, 1)
	b := simulate(field.DefaultParams(), 7, vp, 1)
	if a != b {
		t.Errorf("expected identical samples for the same seed, got %+v and %+v", a, b)
	}
	if a.Particles != 56 {
		t.Errorf("expected 56 particles, got %d", a.Particles)
	}
	if a.MeanSpeed <= 0 {
		t.Errorf("expected particles to be moving, got mean speed %v", a.MeanSpeed)
	}
}
