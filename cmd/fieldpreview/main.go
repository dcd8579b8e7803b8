// Particle field preview tool - interactive tuning with sliders.
//
// Usage: go run ./cmd/fieldpreview
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	gui "github.com/gen2brain/raylib-go/raygui"
	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/folio/field"
	"github.com/pthm-cable/folio/renderer"
)

const (
	windowWidth   = 1180
	windowHeight  = 720
	previewWidth  = 760
	previewHeight = 520
	previewX      = 10
	previewY      = 10
	panelWidth    = windowWidth - previewWidth - 30
)

// slider binds one float parameter to a gui.SliderBar.
type slider struct {
	label    string
	min, max float32
	format   string
	get      func(p *field.Params) *float64
	respawn  bool // changing it needs a fresh particle set
}

var sliders = []slider{
	{"Density (px² per particle)", 4000, 40000, "%.0f", func(p *field.Params) *float64 { return &p.Density }, true},
	{"Max speed (px/frame)", 0, 1, "%.3f", func(p *field.Params) *float64 { return &p.MaxSpeed }, true},
	{"Link distance (px)", 20, 300, "%.0f", func(p *field.Params) *float64 { return &p.LinkDistance }, false},
	{"Link alpha", 0, 0.5, "%.3f", func(p *field.Params) *float64 { return &p.LinkAlpha }, false},
	{"Pointer radius (px)", 20, 400, "%.0f", func(p *field.Params) *float64 { return &p.PointerRadius }, false},
	{"Pointer force", 0, 0.1, "%.4f", func(p *field.Params) *float64 { return &p.PointerForce }, false},
	{"Damping", 0.9, 1, "%.4f", func(p *field.Params) *float64 { return &p.Damping }, false},
}

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	rl.InitWindow(windowWidth, windowHeight, "Particle Field Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	params := field.DefaultParams()
	seed := int64(12345)

	canvas := renderer.NewFieldCanvas()
	defer canvas.Unload()

	var f *field.Field
	respawn := func() {
		if f != nil {
			f.Teardown()
		}
		f = field.New(params, seed, nil)
		bw, bh := f.OnResize(previewWidth, previewHeight, 1)
		if err := canvas.Acquire(previewWidth, previewHeight, bw, bh); err != nil {
			slog.Error("preview canvas", "error", err)
		}
	}
	respawn()

	paused := false

	for !rl.WindowShouldClose() {
		mouse := rl.GetMousePosition()
		local := rl.Vector2{X: mouse.X - previewX, Y: mouse.Y - previewY}
		if local.X >= 0 && local.Y >= 0 && local.X < previewWidth && local.Y < previewHeight {
			f.OnPointerMove(float64(local.X), float64(local.Y))
		} else {
			f.OnPointerLeave()
		}

		if !paused {
			f.Step(float64(rl.GetFrameTime()))
		}

		if canvas.Begin() {
			f.Render(canvas)
			canvas.End()
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		// Preview
		rl.DrawRectangle(previewX, previewY, previewWidth, previewHeight, rl.NewColor(17, 17, 17, 255))
		canvas.BlitAt(previewX, previewY)
		rl.DrawRectangleLines(previewX, previewY, previewWidth, previewHeight, rl.DarkGray)

		// Stats
		statsY := int32(previewY + previewHeight + 15)
		rl.DrawText(fmt.Sprintf("Particles: %d  Links: %d  Steps: %d", f.Len(), f.Links(), f.Steps()), 15, statsY, 16, rl.DarkGray)
		rl.DrawText(fmt.Sprintf("Seed: %d  FPS: %d", seed, rl.GetFPS()), 15, statsY+20, 16, rl.DarkGray)

		// Control panel
		panelX := float32(previewX + previewWidth + 20)
		panelY := float32(10)

		rl.DrawText("Field Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		changed, needsRespawn := false, false
		for _, s := range sliders {
			v := s.get(&params)
			rl.DrawText(s.label, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 18
			nv := gui.SliderBar(
				rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
				"", "",
				float32(*v), s.min, s.max,
			)
			rl.DrawText(fmt.Sprintf(s.format, *v), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
			if nv != float32(*v) {
				*v = float64(nv)
				changed = true
				needsRespawn = needsRespawn || s.respawn
			}
			panelY += 35
		}
		if needsRespawn {
			respawn()
		} else if changed {
			f.SetParams(params)
		}

		panelY += 10
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(paused, "Resume", "Pause")) {
			paused = !paused
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Respawn") {
			respawn()
		}
		panelY += 45

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Random Seed") {
			seed = int64(rl.GetRandomValue(0, 99999))
			respawn()
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = field.DefaultParams()
			seed = 12345
			respawn()
		}
		panelY += 55

		// Output YAML
		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 25
		text := configYAML(params)
		for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
			if panelY > windowHeight-40 {
				break
			}
			rl.DrawText(line, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 16
		}

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)
		if rl.IsKeyPressed(rl.KeyC) {
			rl.SetClipboardText(text)
		}

		rl.EndDrawing()
	}

	f.Teardown()
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}

// configYAML renders params as a `field:` section for config.yaml.
func configYAML(p field.Params) string {
	out, err := yaml.Marshal(map[string]any{"field": p.Config()})
	if err != nil {
		return fmt.Sprintf("# %v\n", err)
	}
	return string(out)
}
