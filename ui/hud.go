package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/folio/telemetry"
)

// HUDData holds all the data needed to render the debug HUD.
type HUDData struct {
	FPS       int32
	Tick      int64
	ScrollY   float64
	MaxScroll float64
	Active    string
	Particles int
	Links     int
	DPR       float64
	Scrolling bool
}

// HUD renders the top-left debug readout.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer()}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	r := h.renderer
	x, y := int32(10), int32(10)
	r.DrawPanel(x-6, y-6, 300, 104)

	rl.DrawText(fmt.Sprintf("FPS: %d | Tick: %d | DPR: %.1f", data.FPS, data.Tick, data.DPR), x, y, 14, rl.White)
	y += 20

	active := data.Active
	if active == "" {
		active = "-"
	}
	y = r.DrawLabelValue(x, y, "Active", active)
	y = r.DrawLabelValue(x, y, "Field", fmt.Sprintf("%d dots, %d links", data.Particles, data.Links))
	y = r.DrawBar(x, y, "Scroll", float32(data.ScrollY), FieldRange{Max: float32(data.MaxScroll)}, 288)

	if data.Scrolling {
		rl.DrawText("smooth scroll", x, y, 12, rl.Yellow)
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}

// PerfPanel renders the per-phase frame timing breakdown.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
	}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(stats telemetry.PerfStats) {
	x := p.x
	y := p.y
	p.renderer.DrawPanel(x-6, y-6, 300, int32(56+16*len(telemetry.Phases)))

	rl.DrawText("Frame Performance", x, y, 16, rl.White)
	y += 20

	rl.DrawText(fmt.Sprintf("avg %s  p95 %s  max %s",
		stats.AvgTickDuration.Round(time.Microsecond),
		stats.P95TickDuration.Round(time.Microsecond),
		stats.MaxTickDuration.Round(time.Microsecond),
	), x, y, 12, rl.Yellow)
	y += 16

	for _, phase := range telemetry.Phases {
		pct := stats.PhasePct[phase]

		color := rl.LightGray
		if pct > 50 {
			color = rl.Red
		} else if pct > 25 {
			color = rl.Orange
		}

		rl.DrawText(
			fmt.Sprintf("%-14s %8s %5.1f%%", phase, stats.PhaseAvg[phase].Round(time.Microsecond), pct),
			x, y, 12, color,
		)
		y += 16
	}
}
