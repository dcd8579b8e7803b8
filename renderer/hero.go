package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/folio/palette"
)

// Glyph is one hero letter as the scene animates it.
type Glyph struct {
	Char    rune
	Line    int
	Offset  float64
	Opacity float64
}

// HeroDrawer draws the staggered two-line name and the subtitle, centred in
// the hero block.
type HeroDrawer struct {
	subtitle string
	glow     color.RGBA
}

// NewHeroDrawer creates a hero drawer.
func NewHeroDrawer(subtitle string) *HeroDrawer {
	return &HeroDrawer{
		subtitle: subtitle,
		glow:     palette.RGBA(palette.White, 0.03),
	}
}

// heroFontSize follows the clamp(3.5rem, 14vw, 10rem) sizing of the name.
func heroFontSize(width float32) int32 {
	return int32(min(max(width*0.14, 56), 160))
}

// Draw renders the hero at screenTop for a width x height viewport.
func (d *HeroDrawer) Draw(screenTop, width, height float32, glyphs []Glyph, subOffset, subOpacity float64) {
	if screenTop+height < 0 {
		return
	}
	cx := width / 2
	cy := screenTop + height/2

	// Soft ambient glow behind the name
	rl.DrawEllipse(int32(cx), int32(cy), 400, 250, d.glow)

	size := heroFontSize(width)
	lineH := float32(size) * 0.85

	for line := 0; line < 2; line++ {
		lineW := int32(0)
		for _, g := range glyphs {
			if g.Line == line {
				lineW += rl.MeasureText(string(g.Char), size)
			}
		}
		x := cx - float32(lineW)/2
		y := cy - lineH + float32(line)*lineH - lineH/2

		// Letters rise out of a clipped line box
		rl.BeginScissorMode(0, int32(y), int32(width), int32(lineH)+int32(size)/6)
		for _, g := range glyphs {
			if g.Line != line {
				continue
			}
			s := string(g.Char)
			rl.DrawText(s, int32(x), int32(y+float32(g.Offset)), size, palette.RGBA(palette.White, g.Opacity))
			x += float32(rl.MeasureText(s, size))
		}
		rl.EndScissorMode()
	}

	subSize := int32(14)
	subY := cy + lineH + 24 + float32(subOffset)
	drawCentered(d.subtitle, cx, subY, subSize, palette.RGBA(palette.White, 0.25*subOpacity))
}
