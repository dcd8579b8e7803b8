package renderer

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/folio/config"
	"github.com/pthm-cable/folio/palette"
)

// FooterDrawer draws the contact block after the last section.
type FooterDrawer struct {
	contact config.ContactConfig
}

// NewFooterDrawer creates a footer drawer.
func NewFooterDrawer(c config.ContactConfig) *FooterDrawer {
	return &FooterDrawer{contact: c}
}

// Draw renders the footer block at screenTop, raised by offset while it
// fades in.
func (d *FooterDrawer) Draw(screenTop, width, height float32, opacity, offset float64) {
	if screenTop > height || opacity <= 0 {
		return
	}
	cx := width / 2
	y := screenTop + height/2 - 80 + float32(offset)

	drawCentered("GET IN TOUCH", cx, y, 12, palette.RGBA(palette.White, 0.4*opacity))
	y += 36
	drawCentered(d.contact.Email, cx, y, 40, palette.RGBA(palette.White, opacity))
	y += 88

	labels := make([]string, len(d.contact.Links))
	for i, l := range d.contact.Links {
		labels[i] = strings.ToUpper(l.Label)
	}
	drawCentered(strings.Join(labels, "  /  "), cx, y, 12, palette.RGBA(palette.White, 0.4*opacity))
	y += 96

	drawCentered(strings.ToUpper(d.contact.Location), cx, y, 10, palette.RGBA(palette.White, 0.2*opacity))
}
