// Package palette parses section colours and samples their gradients.
package palette

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/pthm-cable/folio/config"
)

// ErrNoStops is returned for a gradient without colours.
var ErrNoStops = errors.New("palette: gradient needs at least one stop")

// White and Black are the two text colours sections choose between.
var (
	White = colorful.Color{R: 1, G: 1, B: 1}
	Black = colorful.Color{R: 0, G: 0, B: 0}
)

// Parse parses a "#rgb" or "#rrggbb" colour.
func Parse(hex string) (colorful.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("palette: parsing %q: %w", hex, err)
	}
	return c, nil
}

// MustParse is like Parse but panics on error. For literal colours.
func MustParse(hex string) colorful.Color {
	c, err := Parse(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// RGBA converts c to 8-bit RGBA with the given alpha in [0, 1].
func RGBA(c colorful.Color, alpha float64) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{R: r, G: g, B: b, A: uint8(alpha*255 + 0.5)}
}

// Gradient is an evenly spaced multi-stop gradient.
type Gradient struct {
	Stops []colorful.Color
}

// NewGradient parses every stop.
func NewGradient(hexes []string) (Gradient, error) {
	if len(hexes) == 0 {
		return Gradient{}, ErrNoStops
	}
	g := Gradient{Stops: make([]colorful.Color, len(hexes))}
	for i, h := range hexes {
		c, err := Parse(h)
		if err != nil {
			return Gradient{}, fmt.Errorf("stop %d: %w", i, err)
		}
		g.Stops[i] = c
	}
	return g, nil
}

// At samples the gradient at t in [0, 1], blending neighbouring stops in
// CIE-L*a*b* space.
func (g Gradient) At(t float64) colorful.Color {
	n := len(g.Stops)
	switch {
	case n == 0:
		return Black
	case n == 1 || t <= 0:
		return g.Stops[0]
	case t >= 1:
		return g.Stops[n-1]
	}
	pos := t * float64(n-1)
	i := int(pos)
	return g.Stops[i].BlendLab(g.Stops[i+1], pos-float64(i)).Clamped()
}

// Theme is the resolved colour set of one section.
type Theme struct {
	Accent   colorful.Color
	Gradient Gradient
	Text     colorful.Color
	Muted    colorful.Color
}

// ThemeFromSection resolves a section's colours. Sections without a gradient
// fall back to a flat accent background.
func ThemeFromSection(s config.SectionConfig) (Theme, error) {
	accent, err := Parse(s.Color)
	if err != nil {
		return Theme{}, fmt.Errorf("section %s color: %w", s.ID, err)
	}

	grad := Gradient{Stops: []colorful.Color{accent}}
	if len(s.Gradient) > 0 {
		grad, err = NewGradient(s.Gradient)
		if err != nil {
			return Theme{}, fmt.Errorf("section %s gradient: %w", s.ID, err)
		}
	}

	th := Theme{Accent: accent, Gradient: grad, Text: White}
	if s.DarkText {
		th.Text = Black
	}
	th.Muted = th.Text.BlendRgb(grad.At(0.5), 0.4)
	return th, nil
}
