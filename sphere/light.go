package sphere

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/folio/config"
	"github.com/pthm-cable/folio/palette"
)

// Light is a coloured point light with a hard cutoff distance.
type Light struct {
	Color     colorful.Color
	Intensity float64
	Position  r3.Vec
	Distance  float64 // 0 = no cutoff
}

// LightsFromConfig parses the configured lights.
func LightsFromConfig(cs []config.LightConfig) ([]Light, error) {
	out := make([]Light, len(cs))
	for i, c := range cs {
		col, err := palette.Parse(c.Color)
		if err != nil {
			return nil, fmt.Errorf("light %d: %w", i, err)
		}
		out[i] = Light{
			Color:     col,
			Intensity: c.Intensity,
			Position:  r3.Vec{X: c.Position[0], Y: c.Position[1], Z: c.Position[2]},
			Distance:  c.Distance,
		}
	}
	return out, nil
}

// Irradiance is a point light's strength at distance d: inverse-square
// falloff windowed smoothly to zero at cutoff.
func Irradiance(d, cutoff, intensity float64) float64 {
	if cutoff > 0 && d >= cutoff {
		return 0
	}
	f := 1 / math.Max(d*d, 0.01)
	if cutoff > 0 {
		r := d / cutoff
		w := 1 - r*r*r*r
		f *= w * w
	}
	return intensity * f
}

// Highlight is the brightest point a light makes on the sphere.
type Highlight struct {
	Point    r3.Vec // On the sphere surface, world units
	Color    colorful.Color
	Strength float64 // Irradiance at Point
}

// Highlights returns one highlight per light that reaches a sphere of the
// given radius centred at center.
func Highlights(center r3.Vec, radius float64, lights []Light) []Highlight {
	out := make([]Highlight, 0, len(lights))
	for _, l := range lights {
		toLight := r3.Sub(l.Position, center)
		dist := r3.Norm(toLight)
		if dist <= radius {
			continue
		}
		s := Irradiance(dist-radius, l.Distance, l.Intensity)
		if s <= 0 {
			continue
		}
		n := r3.Scale(1/dist, toLight)
		out = append(out, Highlight{
			Point:    r3.Add(center, r3.Scale(radius, n)),
			Color:    l.Color,
			Strength: s,
		})
	}
	return out
}

// Project maps a world point to viewport pixels for a camera on the +z axis
// at distance looking at the origin. ok is false behind the camera.
func Project(p r3.Vec, distance, fovDeg, width, height float64) (r2.Vec, bool) {
	depth := distance - p.Z
	if depth <= 0 {
		return r2.Vec{}, false
	}
	scale := height / 2 / math.Tan(fovDeg*math.Pi/360) / depth
	return r2.Vec{
		X: width/2 + p.X*scale,
		Y: height/2 - p.Y*scale,
	}, true
}
