package renderer

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/pthm-cable/folio/config"
	"github.com/pthm-cable/folio/palette"
)

// Timeline nav geometry in pixels.
const (
	navRight    = 32
	navRow      = 32
	navDot      = 5
	navDotOn    = 9
	navLabelW   = 160
	navMinWidth = 768 // Hidden on narrower viewports
)

type navItem struct {
	id    string
	name  string
	color colorful.Color
}

// NavDrawer draws the fixed timeline nav on the right edge: a thin line, a
// dot per section and the active section's name. Items are raygui buttons.
type NavDrawer struct {
	items   []navItem
	lightID string // Section drawn on a light background
}

// NewNavDrawer builds one item per section.
func NewNavDrawer(sections []config.SectionConfig) (*NavDrawer, error) {
	d := &NavDrawer{items: make([]navItem, len(sections))}
	for i, sc := range sections {
		c, err := palette.Parse(sc.Color)
		if err != nil {
			return nil, err
		}
		d.items[i] = navItem{id: sc.ID, name: sc.Name, color: c}
		if sc.DarkText {
			d.lightID = sc.ID
		}
	}
	return d, nil
}

// Draw renders the nav for a viewport of width x height and returns the id
// of a clicked item, or "".
func (d *NavDrawer) Draw(width, height float32, active string, opacity float64) string {
	if opacity <= 0.01 || width < navMinWidth || len(d.items) == 0 {
		return ""
	}

	onLight := active != "" && active == d.lightID
	ink := palette.White
	if onLight {
		ink = palette.Black
	}

	// Slides in from the right as it fades
	shift := float32(1-opacity) * 20
	x := width - navRight - navLabelW + shift
	total := float32(len(d.items)) * navRow
	y := height/2 - total/2

	dotX := x + navLabelW - 6
	rl.DrawLineEx(
		rl.Vector2{X: dotX, Y: y + 8},
		rl.Vector2{X: dotX, Y: y + total - 8},
		1, palette.RGBA(ink, 0.06*opacity),
	)

	clicked := ""
	for i, it := range d.items {
		cy := y + float32(i)*navRow + navRow/2
		isActive := it.id == active

		r, col := float32(navDot)/2, palette.RGBA(ink, 0.12*opacity)
		if isActive {
			r = navDotOn / 2
			c := it.color
			if onLight {
				c = palette.MustParse("#374151")
			}
			col = palette.RGBA(c, opacity)
			rl.DrawCircleGradient(int32(dotX), int32(cy), 12, palette.RGBA(c, 0.3*opacity), palette.RGBA(c, 0))
		}
		rl.DrawCircleV(rl.Vector2{X: dotX, Y: cy}, r, col)

		if isActive {
			w := rl.MeasureText(it.name, 10)
			rl.DrawText(it.name, int32(dotX)-18-w, int32(cy)-5, 10, palette.RGBA(ink, 0.7*opacity))
		}

		// Clickable only once the nav is substantially visible
		if opacity < 0.5 {
			continue
		}
		bounds := rl.Rectangle{X: dotX - 10, Y: cy - navRow/2 + 4, Width: 20, Height: navRow - 8}
		if gui.Button(bounds, "") {
			clicked = it.id
		}
	}
	return clicked
}
