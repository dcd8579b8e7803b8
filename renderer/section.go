package renderer

import (
	"fmt"
	"image/color"
	"log/slog"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/folio/config"
	"github.com/pthm-cable/folio/palette"
	"github.com/pthm-cable/folio/progress"
)

// SectionPose is where a section sits on screen this frame.
type SectionPose struct {
	Top    float64 // Screen y of the 1.6vh block
	Height float64
	Sticky float64 // Screen y of the viewport-tall pinned content
	Frame  progress.Frame

	BlobOffset r2.Vec
	BlobScale  float64
}

type sectionEntry struct {
	cfg     config.SectionConfig
	theme   palette.Theme
	logo    rl.Texture2D
	hasLogo bool
}

// SectionDrawer draws the timeline sections: gradient background, drifting
// blob, type badge, logo box, name, role and period, description, tags.
type SectionDrawer struct {
	entries     []sectionEntry
	blobRadius  float32
	blobAlpha   float64
	width       float32
	height      float32
	initialized bool
}

// NewSectionDrawer resolves every section theme. Colour errors fail here so
// the draw path never has to.
func NewSectionDrawer(sections []config.SectionConfig, blob config.BlobConfig) (*SectionDrawer, error) {
	d := &SectionDrawer{
		entries:    make([]sectionEntry, len(sections)),
		blobRadius: float32(blob.Radius),
		blobAlpha:  blob.Alpha,
	}
	for i, sc := range sections {
		th, err := palette.ThemeFromSection(sc)
		if err != nil {
			return nil, err
		}
		d.entries[i] = sectionEntry{cfg: sc, theme: th}
	}
	return d, nil
}

// Init loads logo textures (must be called after raylib window is created).
// Missing logos fall back to the text mark.
func (d *SectionDrawer) Init() {
	if d.initialized {
		return
	}
	for i := range d.entries {
		e := &d.entries[i]
		if e.cfg.Logo == "" || !rl.FileExists(e.cfg.Logo) {
			continue
		}
		e.logo = rl.LoadTexture(e.cfg.Logo)
		e.hasLogo = e.logo.ID != 0
		if !e.hasLogo {
			slog.Warn("logo not loaded", "section", e.cfg.ID, "path", e.cfg.Logo)
		}
	}
	d.initialized = true
}

// Resize updates the viewport size.
func (d *SectionDrawer) Resize(w, h float32) {
	d.width, d.height = w, h
}

// Draw renders section i. Sections entirely off screen are skipped.
func (d *SectionDrawer) Draw(i int, pose SectionPose) {
	if i < 0 || i >= len(d.entries) {
		return
	}
	if pose.Top > float64(d.height) || pose.Top+pose.Height < 0 {
		return
	}
	if !d.initialized {
		d.Init()
	}

	e := &d.entries[i]
	f := pose.Frame
	top := float32(pose.Sticky)

	// The pinned viewport is clipped to the block
	clipTop := max(top, float32(pose.Top))
	clipBottom := min(top+d.height, float32(pose.Top+pose.Height))
	if clipBottom <= clipTop {
		return
	}
	rl.BeginScissorMode(0, int32(clipTop), int32(d.width), int32(clipBottom-clipTop))
	defer rl.EndScissorMode()

	d.drawBackground(e, top, f.BackgroundOpacity)
	d.drawBlob(e, top, pose)
	d.drawContent(e, top, f)
}

// drawBackground approximates the diagonal three-stop gradient with two
// vertical bands.
func (d *SectionDrawer) drawBackground(e *sectionEntry, top float32, opacity float64) {
	if opacity <= 0 {
		return
	}
	g := e.theme.Gradient
	from := palette.RGBA(g.At(0), opacity)
	via := palette.RGBA(g.At(0.5), opacity)
	to := palette.RGBA(g.At(1), opacity)

	half := d.height / 2
	rl.DrawRectangleGradientV(0, int32(top), int32(d.width), int32(half), from, via)
	rl.DrawRectangleGradientV(0, int32(top+half), int32(d.width), int32(d.height-half), via, to)
}

func (d *SectionDrawer) drawBlob(e *sectionEntry, top float32, pose SectionPose) {
	if d.blobAlpha <= 0 {
		return
	}
	cx := d.width/2 + float32(pose.BlobOffset.X)
	cy := top + d.height/2 + float32(pose.BlobOffset.Y)
	r := d.blobRadius * float32(pose.BlobScale)
	inner := palette.RGBA(e.theme.Accent, d.blobAlpha)
	outer := palette.RGBA(e.theme.Accent, 0)
	rl.DrawCircleGradient(int32(cx), int32(cy), r, inner, outer)
}

func (d *SectionDrawer) drawContent(e *sectionEntry, top float32, f progress.Frame) {
	content := f.ContentOpacity
	if content <= 0 {
		return
	}
	text := content * f.TextOpacity
	shift := float32(f.TextOffset)
	th := e.theme
	cx := d.width / 2
	y := top + d.height*0.18

	// Type badge
	badge := strings.ToUpper(e.cfg.Type)
	bw := float32(rl.MeasureText(badge, 10)) + 24
	badgeRect := rl.Rectangle{X: cx - bw/2, Y: y + shift, Width: bw, Height: 22}
	rl.DrawRectangleRoundedLines(badgeRect, 1, 8, palette.RGBA(th.Muted, 0.3*text))
	drawCentered(badge, cx, y+shift+6, 10, palette.RGBA(th.Muted, text))
	y += 54

	// Logo box
	d.drawLogo(e, cx, y+48, f.LogoScale, content*f.LogoOpacity)
	y += 120

	// Name, role and period
	drawCentered(e.cfg.Name, cx, y+shift, 48, palette.RGBA(th.Text, text))
	y += 64
	drawCentered(e.cfg.Role, cx, y+shift, 20, palette.RGBA(th.Text, 0.65*text))
	y += 28
	drawCentered(strings.ToUpper(e.cfg.Period), cx, y+shift, 12, palette.RGBA(th.Muted, text))
	y += 44

	// Description
	for _, line := range wrapText(e.cfg.Description, 560, 18) {
		drawCentered(line, cx, y+shift, 18, palette.RGBA(th.Text, 0.55*text))
		y += 28
	}
	y += 24

	d.drawTags(e, cx, y, content*f.TagsOpacity)
}

func (d *SectionDrawer) drawLogo(e *sectionEntry, cx, cy float32, scale, opacity float64) {
	if opacity <= 0 || scale <= 0 {
		return
	}
	size := 96 * float32(scale)
	box := rl.Rectangle{X: cx - size/2, Y: cy - size/2, Width: size, Height: size}
	fill := palette.RGBA(palette.White, 0.08*opacity)
	if e.cfg.DarkText {
		fill = palette.RGBA(palette.MustParse("#f3f4f6"), opacity)
	}
	rl.DrawRectangleRounded(box, 0.3, 8, fill)

	if e.hasLogo {
		inner := 56 * float32(scale)
		src := rl.Rectangle{Width: float32(e.logo.Width), Height: float32(e.logo.Height)}
		dst := rl.Rectangle{X: cx - inner/2, Y: cy - inner/2, Width: inner, Height: inner}
		rl.DrawTexturePro(e.logo, src, dst, rl.Vector2{}, 0, rl.Fade(rl.White, float32(opacity)))
		return
	}
	size32 := int32(30 * scale)
	drawCentered(e.cfg.LogoText, cx, cy-float32(size32)/2, size32, palette.RGBA(e.theme.Text, 0.9*opacity))
}

func (d *SectionDrawer) drawTags(e *sectionEntry, cx, y float32, opacity float64) {
	if opacity <= 0 || len(e.cfg.Highlights) == 0 {
		return
	}
	const fontSize, padX, gap = 12, 12, 8

	widths := make([]float32, len(e.cfg.Highlights))
	total := float32(-gap)
	for i, h := range e.cfg.Highlights {
		widths[i] = float32(rl.MeasureText(h, fontSize)) + 2*padX
		total += widths[i] + gap
	}

	x := cx - total/2
	for i, h := range e.cfg.Highlights {
		r := rl.Rectangle{X: x, Y: y, Width: widths[i], Height: 28}
		rl.DrawRectangleRounded(r, 1, 8, palette.RGBA(e.theme.Text, 0.06*opacity))
		rl.DrawText(h, int32(x+padX), int32(y+8), fontSize, palette.RGBA(e.theme.Text, 0.5*opacity))
		x += widths[i] + gap
	}
}

// Unload frees logo textures.
func (d *SectionDrawer) Unload() {
	for i := range d.entries {
		if d.entries[i].hasLogo {
			rl.UnloadTexture(d.entries[i].logo)
			d.entries[i].hasLogo = false
		}
	}
	d.initialized = false
}

func drawCentered(text string, cx, y float32, size int32, c color.RGBA) {
	w := rl.MeasureText(text, size)
	rl.DrawText(text, int32(cx)-w/2, int32(y), size, c)
}

// wrapText breaks text into lines no wider than maxWidth at the given size.
func wrapText(text string, maxWidth, size int32) []string {
	var lines []string
	var line string
	for _, word := range strings.Fields(text) {
		next := word
		if line != "" {
			next = fmt.Sprintf("%s %s", line, word)
		}
		if line != "" && rl.MeasureText(next, size) > maxWidth {
			lines = append(lines, line)
			next = word
		}
		line = next
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
