// Package game runs the landing scene in a raylib window.
package game

import (
	"fmt"
	"image/color"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/folio/field"
	"github.com/pthm-cable/folio/landing"
	"github.com/pthm-cable/folio/palette"
	"github.com/pthm-cable/folio/renderer"
	"github.com/pthm-cable/folio/telemetry"
	"github.com/pthm-cable/folio/ui"
)

// pageKeyFraction is how much of the viewport PageUp/PageDown scroll.
const pageKeyFraction = 0.9

const debugControls = "[F3] debug  [PgUp/PgDn] page  [Home/End] jump"

// App runs a Scene in a raylib window: it turns window input into Input,
// keeps the canvas sized to the window and draws each Frame.
type App struct {
	scene *landing.Scene

	canvas   *renderer.FieldCanvas
	hero     *renderer.HeroDrawer
	sphere   *renderer.SphereDrawer
	sections *renderer.SectionDrawer
	nav      *renderer.NavDrawer
	footer   *renderer.FooterDrawer

	// Debug overlay
	debug        bool
	hud          *ui.HUD
	perfPanel    *ui.PerfPanel
	sectionPanel *ui.SectionPanel

	om         *telemetry.OutputManager
	logStats   bool
	background color.RGBA

	width, height float32
	dpr           float64
	hadCursor     bool
	navClick      string
	capturePath   string
	captureErr    error
}

// NewApp builds the drawers for a scene. Call Init once the window is open.
func NewApp(s *landing.Scene, om *telemetry.OutputManager, logStats bool) (*App, error) {
	cfg := s.Config()
	bg, err := palette.Parse(cfg.Screen.Background)
	if err != nil {
		return nil, fmt.Errorf("screen background: %w", err)
	}
	sections, err := renderer.NewSectionDrawer(cfg.Sections, cfg.Blob)
	if err != nil {
		return nil, err
	}
	sph, err := renderer.NewSphereDrawer(cfg.Sphere)
	if err != nil {
		return nil, fmt.Errorf("sphere: %w", err)
	}
	nav, err := renderer.NewNavDrawer(cfg.Sections)
	if err != nil {
		return nil, fmt.Errorf("nav: %w", err)
	}

	return &App{
		scene:        s,
		canvas:       renderer.NewFieldCanvas(),
		hero:         renderer.NewHeroDrawer(cfg.Hero.Subtitle),
		sphere:       sph,
		sections:     sections,
		nav:          nav,
		footer:       renderer.NewFooterDrawer(cfg.Contact),
		hud:          ui.NewHUD(),
		perfPanel:    ui.NewPerfPanel(10, 130),
		sectionPanel: ui.NewSectionPanel(260),
		om:           om,
		logStats:     logStats,
		background:   palette.RGBA(bg, 1),
	}, nil
}

// Init sizes everything to the window (must be called after raylib window
// is created).
func (a *App) Init() {
	a.width = float32(rl.GetScreenWidth())
	a.height = float32(rl.GetScreenHeight())
	a.dpr = a.windowDPR()

	a.sections.Init()
	a.sphere.Init(int32(a.width), int32(a.height))
	a.applySize()
}

func (a *App) windowDPR() float64 {
	if !a.scene.Config().Screen.HighDPI {
		return 1
	}
	scale := rl.GetWindowScaleDPI()
	if scale.X <= 0 {
		return 1
	}
	return float64(scale.X)
}

// applySize pushes the window size to the scene and reallocates the canvas.
func (a *App) applySize() {
	w, h := float64(a.width), float64(a.height)
	bw, bh := a.scene.Resize(w, h, a.dpr)
	if err := a.canvas.Acquire(w, h, bw, bh); err != nil {
		slog.Debug("field canvas not acquired", "error", err)
	}
	a.sections.Resize(a.width, a.height)
	a.sphere.Resize(int32(a.width), int32(a.height))
	slog.Info("resize", "width", w, "height", h, "dpr", a.dpr, "backing_w", bw, "backing_h", bh)
}

// handleResize reacts to window size or DPI changes.
func (a *App) handleResize() {
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	dpr := a.windowDPR()
	if w == a.width && h == a.height && dpr == a.dpr {
		return
	}
	a.width, a.height, a.dpr = w, h, dpr
	a.applySize()
}

// readInput collects this frame's pointer, wheel, key and nav input.
func (a *App) readInput() landing.Input {
	var in landing.Input

	onScreen := rl.IsCursorOnScreen()
	if onScreen {
		d := rl.GetMouseDelta()
		if d.X != 0 || d.Y != 0 || !a.hadCursor {
			m := rl.GetMousePosition()
			in.Pointer = &r2.Vec{X: float64(m.X), Y: float64(m.Y)}
		}
	} else if a.hadCursor {
		in.PointerLeft = true
	}
	a.hadCursor = onScreen

	// raylib reports wheel-up as positive
	in.Wheel = -float64(rl.GetMouseWheelMove())

	page := float64(a.height) * pageKeyFraction
	switch {
	case rl.IsKeyPressed(rl.KeyPageDown), rl.IsKeyPressed(rl.KeySpace):
		in.ScrollBy = page
	case rl.IsKeyPressed(rl.KeyPageUp):
		in.ScrollBy = -page
	case rl.IsKeyPressed(rl.KeyDown):
		in.ScrollBy = a.scene.Config().Scroll.WheelStep
	case rl.IsKeyPressed(rl.KeyUp):
		in.ScrollBy = -a.scene.Config().Scroll.WheelStep
	case rl.IsKeyPressed(rl.KeyHome):
		a.scene.Camera().ScrollTo(0)
	case rl.IsKeyPressed(rl.KeyEnd):
		a.scene.Camera().ScrollTo(a.scene.Camera().MaxScroll())
	}

	if rl.IsKeyPressed(rl.KeyF3) {
		a.debug = !a.debug
	}

	in.NavTarget = a.navClick
	a.navClick = ""
	return in
}

// Update advances the scene by the last frame time.
func (a *App) Update() {
	a.handleResize()
	a.scene.Update(float64(rl.GetFrameTime()), a.readInput())
	a.scene.FlushTelemetry(a.om, a.logStats)
}

// Draw renders one frame.
func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(a.background)

	var c field.Canvas
	if a.canvas.Begin() {
		c = a.canvas
	}
	a.scene.Render(c, a.drawFrame)

	if a.capturePath != "" {
		a.captureErr = a.exportScreen(a.capturePath)
		a.capturePath = ""
	}

	rl.EndDrawing()
}

// Capture makes the next Draw export the finished frame to a PNG at path.
// The result is available from CaptureErr after that Draw.
func (a *App) Capture(path string) {
	a.capturePath = path
	a.captureErr = nil
}

// CaptureErr returns the error of the last capture, if any.
func (a *App) CaptureErr() error { return a.captureErr }

func (a *App) exportScreen(path string) error {
	img := rl.LoadImageFromScreen()
	if img == nil || img.Width == 0 {
		return fmt.Errorf("capture: empty framebuffer")
	}
	defer rl.UnloadImage(img)
	if !rl.ExportImage(*img, path) {
		return fmt.Errorf("capture: export to %s failed", path)
	}
	slog.Info("frame captured", "path", path, "tick", a.scene.Tick())
	return nil
}

// drawFrame draws every layer back to front.
func (a *App) drawFrame(f landing.Frame) {
	a.canvas.End()

	if f.HeroVisible {
		a.sphere.Render(renderer.SpherePose{
			Rotation:       f.Sphere.Rotation,
			Position:       f.Sphere.Position,
			CameraDistance: f.Sphere.CameraDistance,
			FOV:            f.Sphere.FOV,
		})
		a.canvas.Blit(f.HeroTop)
		a.sphere.Blit(f.HeroTop)

		glyphs := make([]renderer.Glyph, len(f.Letters))
		for i, l := range f.Letters {
			glyphs[i] = renderer.Glyph{Char: l.Char, Line: l.Line, Offset: l.Offset, Opacity: l.Opacity}
		}
		a.hero.Draw(float32(f.HeroTop), a.width, a.height, glyphs, f.SubtitleOffset, f.SubtitleOpacity)
	}

	for _, sv := range f.Sections {
		a.sections.Draw(sv.Index, renderer.SectionPose{
			Top:        sv.Top,
			Height:     sv.Height,
			Sticky:     sv.Sticky,
			Frame:      sv.Frame,
			BlobOffset: f.BlobOffset,
			BlobScale:  f.BlobScale,
		})
	}

	a.footer.Draw(float32(f.FooterTop), a.width, a.height, f.FooterOpacity, f.FooterOffset)

	if id := a.nav.Draw(a.width, a.height, f.Active, f.NavOpacity); id != "" {
		a.navClick = id
	}

	if a.debug {
		a.drawDebug(f)
	}
}

// drawDebug draws the HUD, frame timings and the on-screen section channels.
func (a *App) drawDebug(f landing.Frame) {
	cam := a.scene.Camera()
	a.hud.Draw(ui.HUDData{
		FPS:       rl.GetFPS(),
		Tick:      f.Tick,
		ScrollY:   f.ScrollY,
		MaxScroll: cam.MaxScroll(),
		Active:    f.Active,
		Particles: a.scene.Field().Len(),
		Links:     a.scene.Field().Links(),
		DPR:       f.DPR,
		Scrolling: cam.Scrolling(),
	})
	a.perfPanel.Draw(a.scene.Perf().Stats())
	a.sectionPanel.Draw(int32(a.width), f.Sections)
	a.hud.DrawControls(int32(a.height), debugControls)
}

// Unload frees GPU resources and tears the scene down.
func (a *App) Unload() {
	a.canvas.Unload()
	a.sphere.Unload()
	a.sections.Unload()
	a.scene.Teardown()
}
