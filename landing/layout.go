package landing

import (
	"math"

	"github.com/pthm-cable/folio/config"
	"github.com/pthm-cable/folio/progress"
)

// Layout is the page geometry in document coordinates: the hero, one block
// per timeline section and the contact footer, stacked without gaps.
type Layout struct {
	Hero      progress.Rect
	Sections  []progress.Section
	Footer    progress.Rect
	DocHeight float64
}

// NewLayout stacks the blocks for a viewport height vh. Block heights are
// given in viewport units.
func NewLayout(l config.LayoutConfig, ids []string, vh float64) Layout {
	vh = math.Max(vh, 0)
	y := 0.0

	hero := progress.Rect{Top: y, Height: l.HeroVH * vh}
	y += hero.Height

	sections := make([]progress.Section, len(ids))
	for i, id := range ids {
		r := &progress.Rect{Top: y, Height: l.SectionVH * vh}
		sections[i] = progress.Section{ID: id, Bounds: r}
		y += r.Height
	}

	footer := progress.Rect{Top: y, Height: l.FooterVH * vh}
	y += footer.Height

	return Layout{Hero: hero, Sections: sections, Footer: footer, DocHeight: y}
}

// SectionTop returns the document top of the section with the given id.
func (l Layout) SectionTop(id string) (float64, bool) {
	for _, s := range l.Sections {
		if s.ID == id && s.Bounds != nil {
			return s.Bounds.Top, true
		}
	}
	return 0, false
}

// StickyTop returns the screen y of viewport-tall content pinned inside a
// block at screenTop: it scrolls in with the block, stays at the viewport top
// while the block covers it, and leaves with the block's bottom edge.
func StickyTop(screenTop, height, vh float64) float64 {
	return math.Max(screenTop, math.Min(0, screenTop+height-vh))
}
