package field

import (
	"math"

	"github.com/pthm-cable/folio/config"
)

// Params holds the particle field constants.
// Speeds, forces and damping are per reference frame; Step rescales them by
// dt * ReferenceFPS so the field moves the same at any display rate.
type Params struct {
	Cap           int
	Density       float64
	MaxSpeed      float64
	RadiusMin     float64
	RadiusMax     float64
	OpacityMin    float64
	OpacityMax    float64
	LinkDistance  float64
	LinkAlpha     float64
	LinkWidth     float64
	WrapMargin    float64
	PointerRadius float64
	PointerForce  float64
	Damping       float64
	MaxDelta      float64
	ReferenceFPS  float64
}

// DefaultParams returns the tuned landing-page values.
func DefaultParams() Params {
	return Params{
		Cap:           70,
		Density:       18000,
		MaxSpeed:      0.125,
		RadiusMin:     0.4,
		RadiusMax:     1.6,
		OpacityMin:    0.08,
		OpacityMax:    0.33,
		LinkDistance:  140,
		LinkAlpha:     0.07,
		LinkWidth:     0.5,
		WrapMargin:    10,
		PointerRadius: 160,
		PointerForce:  0.015,
		Damping:       0.998,
		MaxDelta:      0.1,
		ReferenceFPS:  60,
	}
}

// ParamsFromConfig converts the config section into Params.
func ParamsFromConfig(c config.FieldConfig) Params {
	return Params{
		Cap:           c.Cap,
		Density:       c.Density,
		MaxSpeed:      c.MaxSpeed,
		RadiusMin:     c.RadiusMin,
		RadiusMax:     c.RadiusMax,
		OpacityMin:    c.OpacityMin,
		OpacityMax:    c.OpacityMax,
		LinkDistance:  c.LinkDistance,
		LinkAlpha:     c.LinkAlpha,
		LinkWidth:     c.LinkWidth,
		WrapMargin:    c.WrapMargin,
		PointerRadius: c.PointerRadius,
		PointerForce:  c.PointerForce,
		Damping:       c.Damping,
		MaxDelta:      c.MaxDelta,
		ReferenceFPS:  c.ReferenceFPS,
	}
}

// Config converts Params back into the config section.
func (p Params) Config() config.FieldConfig {
	return config.FieldConfig{
		Cap:           p.Cap,
		Density:       p.Density,
		MaxSpeed:      p.MaxSpeed,
		RadiusMin:     p.RadiusMin,
		RadiusMax:     p.RadiusMax,
		OpacityMin:    p.OpacityMin,
		OpacityMax:    p.OpacityMax,
		LinkDistance:  p.LinkDistance,
		LinkAlpha:     p.LinkAlpha,
		LinkWidth:     p.LinkWidth,
		WrapMargin:    p.WrapMargin,
		PointerRadius: p.PointerRadius,
		PointerForce:  p.PointerForce,
		Damping:       p.Damping,
		MaxDelta:      p.MaxDelta,
		ReferenceFPS:  p.ReferenceFPS,
	}
}

// Count returns the particle count for a viewport:
// min(Cap, floor(width*height / Density)). Empty or NaN viewports get no
// particles; the quotient is capped before converting so huge or infinite
// areas yield Cap.
func Count(width, height float64, p Params) int {
	if !(width > 0) || !(height > 0) || !(p.Density > 0) || p.Cap <= 0 {
		return 0
	}
	q := math.Floor(width * height / p.Density)
	if !(q > 0) {
		return 0
	}
	if q >= float64(p.Cap) {
		return p.Cap
	}
	return int(q)
}
