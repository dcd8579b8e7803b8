// Package main searches particle field parameters with CMA-ES so the hero
// field reads the same across viewport sizes.
package main

import (
	"github.com/pthm-cable/folio/config"
)

// ParamSpec defines a single tunable parameter.
type ParamSpec struct {
	Name    string  // Column name in the log
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of tunable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of tunable field parameters.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "density", Path: "field.density", Min: 6000, Max: 40000, Default: 18000},
			{Name: "max_speed", Path: "field.max_speed", Min: 0.02, Max: 0.5, Default: 0.125},
			{Name: "link_distance", Path: "field.link_distance", Min: 60, Max: 260, Default: 140},
			{Name: "pointer_radius", Path: "field.pointer_radius", Min: 60, Max: 320, Default: 160},
			{Name: "pointer_force", Path: "field.pointer_force", Min: 0.002, Max: 0.06, Default: 0.015},
			{Name: "damping", Path: "field.damping", Min: 0.99, Max: 1.0, Default: 0.998},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		clamped[i] = min(max(v[i], spec.Min), spec.Max)
	}
	return clamped
}

// ApplyToConfig writes clamped values into the field section.
// Order must match Specs order.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	c := pv.Clamp(values)
	cfg.Field.Density = c[0]
	cfg.Field.MaxSpeed = c[1]
	cfg.Field.LinkDistance = c[2]
	cfg.Field.PointerRadius = c[3]
	cfg.Field.PointerForce = c[4]
	cfg.Field.Damping = c[5]
}

// ExtractFromConfig reads the current values from a Config.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	return []float64{
		cfg.Field.Density,
		cfg.Field.MaxSpeed,
		cfg.Field.LinkDistance,
		cfg.Field.PointerRadius,
		cfg.Field.PointerForce,
		cfg.Field.Damping,
	}
}
