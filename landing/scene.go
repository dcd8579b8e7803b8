// Package landing runs the landing page: it owns the page camera, the
// particle field, the hero sphere and the scroll progress engine, advances
// them once per frame and hands a Frame snapshot to whatever draws it.
package landing

import (
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/folio/camera"
	"github.com/pthm-cable/folio/config"
	"github.com/pthm-cable/folio/field"
	"github.com/pthm-cable/folio/motion"
	"github.com/pthm-cable/folio/pointer"
	"github.com/pthm-cable/folio/progress"
	"github.com/pthm-cable/folio/sphere"
	"github.com/pthm-cable/folio/telemetry"
)

const (
	navFade      = 0.5 // Seconds
	footerFade   = 0.8 // Seconds
	footerShift  = 24  // Pixels the footer rises while fading in
	footerMargin = 100 // Pixels of footer on screen before it reveals
)

// Input is everything the host reports for one frame. Zero value = no input.
type Input struct {
	// Pointer is the pointer in viewport pixels; nil when it did not move
	Pointer *r2.Vec
	// PointerLeft is set when the pointer left the window
	PointerLeft bool
	// Wheel is the wheel movement in notches, positive scrolls down
	Wheel float64
	// ScrollBy scrolls by pixels (keyboard paging)
	ScrollBy float64
	// NavTarget is a section id clicked in the timeline nav
	NavTarget string
}

// SectionView is one section as drawn this frame.
type SectionView struct {
	ID     string
	Index  int
	Top    float64 // Screen y of the section top
	Height float64
	Sticky float64 // Screen y of the pinned content
	Frame  progress.Frame
}

// SphereView is the hero sphere pose this frame.
type SphereView struct {
	Rotation       r2.Vec // Pitch, yaw in radians
	Position       r2.Vec // World units on the z=0 plane
	CameraDistance float64
	FOV            float64
}

// Frame is the drawable snapshot of the scene after Update.
type Frame struct {
	Tick    int64
	Time    float64
	Width   float64
	Height  float64
	DPR     float64
	ScrollY float64

	HeroTop         float64 // Screen y of the hero block
	HeroVisible     bool
	Letters         []Letter
	SubtitleOffset  float64
	SubtitleOpacity float64

	Sections   []SectionView
	Active     string
	NavVisible bool
	NavOpacity float64 // Eased, trails NavVisible

	FooterTop     float64
	FooterOpacity float64
	FooterOffset  float64

	Sphere SphereView

	BlobOffset r2.Vec
	BlobScale  float64
}

// Scene owns every per-page state object. It is single-threaded: call
// Update then Render once per frame.
type Scene struct {
	cfg      *config.Config
	channels progress.Channels
	rng      progress.Range
	layout   Layout
	ids      []string

	camera    *camera.Camera
	pointer   *pointer.State // Hero-local, drives the field
	screen    *pointer.State // Viewport, drives the sphere
	field     *field.Field
	sphere    *sphere.Follower
	indicator *progress.Indicator
	hero      *Hero
	blob      motion.Blob
	nav       *motion.Fade
	footer    *motion.Fade

	footerSeen bool

	perf      *telemetry.PerfCollector
	collector *telemetry.Collector
	bookmarks *telemetry.BookmarkDetector

	width, height, dpr float64
	time               float64
	tick               int64
	alive              bool
	states             []progress.SectionState
}

// NewScene builds a scene from config and sizes it to the configured screen.
func NewScene(cfg *config.Config, seed int64) (*Scene, error) {
	channels, err := progress.ChannelsFromConfig(cfg.Scroll.Channels)
	if err != nil {
		return nil, fmt.Errorf("scroll channels: %w", err)
	}
	blob, err := motion.BlobFromConfig(cfg.Blob)
	if err != nil {
		return nil, fmt.Errorf("blob: %w", err)
	}

	ids := make([]string, len(cfg.Sections))
	for i, sc := range cfg.Sections {
		ids[i] = sc.ID
	}

	ease := motion.CubicBezier(cfg.Hero.Ease[0], cfg.Hero.Ease[1], cfg.Hero.Ease[2], cfg.Hero.Ease[3])
	ptr := pointer.New()
	s := &Scene{
		cfg:       cfg,
		channels:  channels,
		rng:       progress.RangeFromConfig(cfg.Scroll.Range),
		ids:       ids,
		pointer:   ptr,
		screen:    pointer.New(),
		field:     field.New(field.ParamsFromConfig(cfg.Field), seed, ptr),
		sphere:    sphere.NewFollower(sphere.ParamsFromConfig(cfg.Sphere)),
		indicator: progress.NewIndicator(cfg.Scroll.ActiveProbe),
		hero:      NewHero(cfg.Hero),
		blob:      blob,
		nav:       motion.NewFade(navFade, ease),
		footer:    motion.NewFade(footerFade, ease),
		perf:      telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		collector: telemetry.NewCollector(cfg.Telemetry.LogInterval, cfg.Derived.FrameDT),
		bookmarks: telemetry.NewBookmarkDetector(cfg.Telemetry.BookmarkHistory),
		alive:     true,
	}

	w, h := float64(cfg.Screen.Width), float64(cfg.Screen.Height)
	s.layout = NewLayout(cfg.Layout, ids, h)
	s.camera = camera.New(w, h, s.layout.DocHeight, cfg.Scroll.SmoothRate)
	s.Resize(w, h, 1)

	slog.Info("scene started",
		"width", w,
		"height", h,
		"sections", len(ids),
		"particles", s.field.Len(),
		"seed", seed,
	)
	return s, nil
}

// Resize relays out the page for a new viewport and resizes the field.
// Returns the field canvas backing size. Ignored after Teardown.
func (s *Scene) Resize(w, h, dpr float64) (backingW, backingH int) {
	if !s.alive {
		return 0, 0
	}

	// Keep the reader on the same section-relative spot
	frac := 0.0
	if s.layout.DocHeight > 0 {
		frac = s.camera.ScrollY / s.layout.DocHeight
	}

	s.width, s.height = w, h
	s.dpr = dpr
	s.layout = NewLayout(s.cfg.Layout, s.ids, h)
	s.camera.Resize(w, h, s.layout.DocHeight)
	s.camera.Jump(frac * s.layout.DocHeight)

	backingW, backingH = s.field.OnResize(w, h, dpr)
	if s.tick > 0 {
		// Sizing before the first frame is setup, not a viewport change
		s.collector.RecordResize()
	}
	s.evaluate()
	return backingW, backingH
}

// Update advances the scene by dt seconds.
func (s *Scene) Update(dt float64, in Input) {
	if !s.alive {
		return
	}

	s.perf.StartTick()

	s.perf.StartPhase(telemetry.PhasePointer)
	s.applyInput(in)
	s.camera.Update(dt)

	s.perf.StartPhase(telemetry.PhaseFieldStep)
	s.field.Step(dt)
	view := sphere.ViewSize(s.cameraDistance(), s.cfg.Sphere.FOV, s.aspect())
	s.sphere.Step(dt, s.screen.Normalized(s.width, s.height), view)

	s.perf.StartPhase(telemetry.PhaseProgress)
	s.evaluate()
	s.updateReveals(dt)

	s.time += max(dt, 0)
	s.tick++
	s.collector.RecordScroll(s.camera.ScrollY)
}

// applyInput forwards pointer and scroll input. The field canvas spans the
// hero block, so the pointer is mapped from viewport to hero coordinates.
// The sphere keeps following the last viewport position after a leave.
func (s *Scene) applyInput(in Input) {
	if in.Pointer != nil {
		s.screen.Move(in.Pointer.X, in.Pointer.Y)
		doc := s.camera.ScreenToDoc(*in.Pointer)
		s.field.OnPointerMove(doc.X, doc.Y-s.layout.Hero.Top)
		s.collector.RecordPointerMove()
	}
	if in.PointerLeft {
		s.field.OnPointerLeave()
		s.collector.RecordPointerLeave()
	}

	if in.Wheel != 0 {
		s.camera.ScrollBy(in.Wheel * s.cfg.Scroll.WheelStep)
	}
	if in.ScrollBy != 0 {
		s.camera.ScrollBy(in.ScrollBy)
	}
	if in.NavTarget != "" {
		s.ScrollToSection(in.NavTarget)
		s.collector.RecordNavClick()
	}
}

// evaluate recomputes every section frame and the active section.
func (s *Scene) evaluate() {
	y := s.camera.ScrollY
	s.states = progress.Evaluate(s.layout.Sections, s.height, y, s.channels, s.rng)
	if _, changed := s.indicator.Update(s.layout.Sections, s.height, y); changed {
		s.collector.RecordActiveChange()
		slog.Debug("active section", "id", s.indicator.Active(), "scroll_y", y)
	}
}

// updateReveals advances the nav fade and the one-shot footer entrance.
func (s *Scene) updateReveals(dt float64) {
	y := s.camera.ScrollY
	s.nav.Update(dt, progress.NavVisible(y, s.height, s.cfg.Scroll.NavThreshold))

	if !s.footerSeen && s.layout.Footer.Top-y < s.height-footerMargin {
		s.footerSeen = true
	}
	s.footer.Update(dt, s.footerSeen)
}

// ScrollToSection smooth-scrolls to a section's top. Unknown ids are ignored.
func (s *Scene) ScrollToSection(id string) bool {
	top, ok := s.layout.SectionTop(id)
	if !ok {
		return false
	}
	s.camera.ScrollTo(top)
	return true
}

// Render draws the particle field onto c and hands the frame snapshot to
// draw. Either may be nil. Closes the perf tick opened by Update.
func (s *Scene) Render(c field.Canvas, draw func(Frame)) {
	if !s.alive {
		return
	}

	s.perf.StartPhase(telemetry.PhaseFieldRender)
	if c != nil && s.camera.IsVisible(s.layout.Hero.Top, s.layout.Hero.Height) {
		s.field.Render(c)
	}

	s.perf.StartPhase(telemetry.PhaseDraw)
	if draw != nil {
		draw(s.Frame())
	}
	s.perf.EndTick()
}

// Frame returns the drawable snapshot of the current state.
func (s *Scene) Frame() Frame {
	y := s.camera.ScrollY
	vh := s.height

	f := Frame{
		Tick:       s.tick,
		Time:       s.time,
		Width:      s.width,
		Height:     vh,
		DPR:        s.dpr,
		ScrollY:    y,
		HeroTop:    s.layout.Hero.Top - y,
		Letters:    s.hero.Letters(s.time),
		Active:     s.indicator.Active(),
		NavVisible: progress.NavVisible(y, vh, s.cfg.Scroll.NavThreshold),
		NavOpacity: s.nav.Value(),
		FooterTop:  s.layout.Footer.Top - y,
		Sphere: SphereView{
			Rotation:       s.sphere.Rotation,
			Position:       s.sphere.Position,
			CameraDistance: s.cameraDistance(),
			FOV:            s.cfg.Sphere.FOV,
		},
	}
	f.HeroVisible = s.camera.IsVisible(s.layout.Hero.Top, s.layout.Hero.Height)
	f.SubtitleOffset, f.SubtitleOpacity = s.hero.Subtitle(s.time)

	fp := s.footer.Value()
	f.FooterOpacity = fp
	f.FooterOffset = (1 - fp) * footerShift

	dx, dy, scale := s.blob.At(s.time)
	f.BlobOffset = r2.Vec{X: dx, Y: dy}
	f.BlobScale = scale

	f.Sections = make([]SectionView, len(s.states))
	for i, st := range s.states {
		b := s.layout.Sections[i].Bounds
		top := b.Top - y
		f.Sections[i] = SectionView{
			ID:     st.ID,
			Index:  i,
			Top:    top,
			Height: b.Height,
			Sticky: StickyTop(top, b.Height, vh),
			Frame:  st.Frame,
		}
	}
	return f
}

// Teardown stops the scene. Every later call is ignored.
func (s *Scene) Teardown() {
	if !s.alive {
		return
	}
	s.alive = false
	s.field.Teardown()
	s.pointer = nil
	s.indicator.Reset()
	slog.Info("scene teardown", "tick", s.tick)
}

func (s *Scene) cameraDistance() float64 {
	return sphere.CameraDistance(s.width, s.sphere.Params())
}

func (s *Scene) aspect() float64 {
	if s.height <= 0 {
		return 1
	}
	return s.width / s.height
}

// Config returns the scene configuration.
func (s *Scene) Config() *config.Config { return s.cfg }

// Alive reports whether Teardown has not been called.
func (s *Scene) Alive() bool { return s.alive }

// Tick returns the number of updates run.
func (s *Scene) Tick() int64 { return s.tick }

// Time returns the scene time in seconds.
func (s *Scene) Time() float64 { return s.time }

// Layout returns the current page layout.
func (s *Scene) Layout() Layout { return s.layout }

// Camera returns the page camera.
func (s *Scene) Camera() *camera.Camera { return s.camera }

// Field returns the particle field.
func (s *Scene) Field() *field.Field { return s.field }

// States returns the section states from the last evaluation.
func (s *Scene) States() []progress.SectionState { return s.states }

// Perf returns the perf collector.
func (s *Scene) Perf() *telemetry.PerfCollector { return s.perf }

// Collector returns the interaction stats collector.
func (s *Scene) Collector() *telemetry.Collector { return s.collector }

// SceneState returns the stats snapshot for the current frame.
func (s *Scene) SceneState() telemetry.SceneState {
	return telemetry.SceneState{
		ScrollY:    s.camera.ScrollY,
		Particles:  s.field.Len(),
		Links:      s.field.Links(),
		Active:     s.indicator.Active(),
		NavVisible: progress.NavVisible(s.camera.ScrollY, s.height, s.cfg.Scroll.NavThreshold),
	}
}
