package landing

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/folio/config"
	"github.com/pthm-cable/folio/progress"
)

const frameDT = 1.0 / 60

type countingCanvas struct {
	clears, circles, lines int
}

func (c *countingCanvas) Clear()                                       { c.clears++ }
func (c *countingCanvas) FillCircle(_ r2.Vec, _, _ float64)            { c.circles++ }
func (c *countingCanvas) StrokeLine(_, _ r2.Vec, _ float64, _ float64) { c.lines++ }

func newTestScene(t *testing.T) *Scene {
	t.Helper()
	s, err := NewScene(config.Defaults(), 42)
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}
	return s
}

func TestNewScene(t *testing.T) {
	s := newTestScene(t)

	// 1280x800 / 18000 = 56 particles, under the cap of 70
	if got := s.Field().Len(); got != 56 {
		t.Errorf("expected 56 particles, got %d", got)
	}
	if got := s.Layout().DocHeight; got != 8000 {
		t.Errorf("expected doc height 8000, got %v", got)
	}
	if got := len(s.States()); got != 5 {
		t.Errorf("expected 5 evaluated sections, got %d", got)
	}
}

func TestNewSceneRejectsBadChannels(t *testing.T) {
	cfg := config.Defaults()
	cfg.Scroll.Channels.LogoScale.Breakpoints = []float64{0.3, 0.1}
	if _, err := NewScene(cfg, 1); err == nil {
		t.Error("expected error for descending breakpoints")
	}
}

func TestSceneWheelScroll(t *testing.T) {
	s := newTestScene(t)
	s.Update(frameDT, Input{Wheel: 2})

	if got := s.Camera().ScrollY; got != 240 {
		t.Errorf("expected scroll 240 after two notches, got %v", got)
	}
	if !s.Frame().NavVisible {
		t.Error("expected nav visible past the threshold")
	}
}

func TestSceneActiveSection(t *testing.T) {
	tests := []struct {
		scrollY float64
		want    string
	}{
		{0, ""},
		{1000, "multiverse"},
		{2000, "belasai"},
		{4500, "ehu"},
	}

	for _, tc := range tests {
		s := newTestScene(t)
		s.Camera().Jump(tc.scrollY)
		s.Update(frameDT, Input{})
		if got := s.Frame().Active; got != tc.want {
			t.Errorf("scroll %v: expected %q, got %q", tc.scrollY, tc.want, got)
		}
	}
}

func TestSceneActiveRetainedInFooter(t *testing.T) {
	s := newTestScene(t)
	s.Camera().Jump(6500)
	s.Update(frameDT, Input{})
	if got := s.Frame().Active; got != "zrive" {
		t.Fatalf("expected zrive, got %q", got)
	}

	// Probe in the footer: nothing straddles, last id stays
	s.Camera().Jump(7200)
	s.Update(frameDT, Input{})
	if got := s.Frame().Active; got != "zrive" {
		t.Errorf("expected zrive retained, got %q", got)
	}

	// Back at the top the indicator clears
	s.Camera().Jump(0)
	s.Update(frameDT, Input{})
	if got := s.Frame().Active; got != "" {
		t.Errorf("expected no active section at the top, got %q", got)
	}
}

func TestSceneNavTarget(t *testing.T) {
	s := newTestScene(t)
	s.Update(frameDT, Input{NavTarget: "wippass"})

	if !s.Camera().Scrolling() {
		t.Fatal("expected smooth scroll in progress")
	}
	for i := 0; i < 600 && s.Camera().Scrolling(); i++ {
		s.Update(frameDT, Input{})
	}

	top, _ := s.Layout().SectionTop("wippass")
	if got := s.Camera().ScrollY; got != top {
		t.Errorf("expected scroll at %v, got %v", top, got)
	}
	if s.ScrollToSection("missing") {
		t.Error("expected unknown section to be ignored")
	}
}

func TestScenePointerMappedToHero(t *testing.T) {
	s := newTestScene(t)
	s.Camera().Jump(300)
	s.Update(frameDT, Input{Pointer: &r2.Vec{X: 100, Y: 200}})

	p, ok := s.Field().Pointer().Position()
	if !ok {
		t.Fatal("expected pointer present")
	}
	if p.X != 100 || p.Y != 500 {
		t.Errorf("expected hero-local (100, 500), got %v", p)
	}

	s.Update(frameDT, Input{PointerLeft: true})
	if _, ok := s.Field().Pointer().Position(); ok {
		t.Error("expected pointer cleared after leave")
	}
}

func TestSceneSectionFrames(t *testing.T) {
	s := newTestScene(t)
	s.Camera().Jump(1000)
	s.Update(frameDT, Input{})

	f := s.Frame()
	if len(f.Sections) != 5 {
		t.Fatalf("expected 5 sections, got %d", len(f.Sections))
	}

	mv := f.Sections[0]
	if mv.ID != "multiverse" || mv.Top != -200 {
		t.Errorf("expected multiverse at screen -200, got %s at %v", mv.ID, mv.Top)
	}
	if mv.Sticky != 0 {
		t.Errorf("expected pinned content, got %v", mv.Sticky)
	}
	// Section spans scroll 0..2080
	if math.Abs(mv.Frame.Raw-1000.0/2080) > 1e-9 {
		t.Errorf("expected raw %v, got %v", 1000.0/2080, mv.Frame.Raw)
	}
	if mv.Frame.Phase != progress.Visible {
		t.Errorf("expected visible, got %v", mv.Frame.Phase)
	}
	if f.Sections[4].Frame.Phase != progress.Hidden {
		t.Errorf("expected last section hidden, got %v", f.Sections[4].Frame.Phase)
	}
}

func TestSceneRender(t *testing.T) {
	s := newTestScene(t)
	s.Update(frameDT, Input{})

	c := &countingCanvas{}
	var got Frame
	s.Render(c, func(f Frame) { got = f })

	if c.clears != 1 || c.circles != 56 {
		t.Errorf("expected 1 clear and 56 dots, got %d and %d", c.clears, c.circles)
	}
	if got.Tick != 1 {
		t.Errorf("expected frame tick 1, got %d", got.Tick)
	}

	// Hero off screen: the field is skipped
	s.Camera().Jump(3000)
	s.Update(frameDT, Input{})
	c = &countingCanvas{}
	s.Render(c, nil)
	if c.clears != 0 || c.circles != 0 {
		t.Errorf("expected no field drawing off screen, got %d clears %d dots", c.clears, c.circles)
	}
}

func TestSceneResize(t *testing.T) {
	s := newTestScene(t)
	s.Camera().Jump(4000)

	w, h := s.Resize(640, 400, 2)
	if w != 1280 || h != 800 {
		t.Errorf("expected backing 1280x800, got %dx%d", w, h)
	}
	if got := s.Layout().DocHeight; got != 4000 {
		t.Errorf("expected doc height 4000, got %v", got)
	}
	// Same fraction of the page
	if got := s.Camera().ScrollY; got != 2000 {
		t.Errorf("expected scroll 2000, got %v", got)
	}
	// 640x400 / 18000 = 14 particles
	if got := s.Field().Len(); got != 14 {
		t.Errorf("expected 14 particles, got %d", got)
	}
}

func TestSceneTeardown(t *testing.T) {
	s := newTestScene(t)
	s.Update(frameDT, Input{})
	s.Teardown()
	s.Teardown()

	if s.Alive() {
		t.Error("expected scene stopped")
	}
	s.Update(frameDT, Input{Wheel: 1})
	if s.Tick() != 1 {
		t.Errorf("expected no updates after teardown, got tick %d", s.Tick())
	}
	if w, h := s.Resize(100, 100, 1); w != 0 || h != 0 {
		t.Errorf("expected resize ignored, got %dx%d", w, h)
	}
	called := false
	s.Render(&countingCanvas{}, func(Frame) { called = true })
	if called {
		t.Error("expected render ignored after teardown")
	}
}

func TestSceneTimeAdvances(t *testing.T) {
	s := newTestScene(t)
	for i := 0; i < 60; i++ {
		s.Update(frameDT, Input{})
	}
	if math.Abs(s.Time()-1) > 1e-9 {
		t.Errorf("expected 1s elapsed, got %v", s.Time())
	}
	if s.Field().Steps() != 60 {
		t.Errorf("expected 60 field steps, got %d", s.Field().Steps())
	}
}

func TestSceneNavFade(t *testing.T) {
	s := newTestScene(t)
	s.Update(frameDT, Input{})
	if got := s.Frame().NavOpacity; got != 0 {
		t.Errorf("expected nav hidden at the top, got %v", got)
	}

	s.Camera().Jump(500)
	for i := 0; i < 60; i++ {
		s.Update(frameDT, Input{})
	}
	if got := s.Frame().NavOpacity; got != 1 {
		t.Errorf("expected nav shown after 1s, got %v", got)
	}
}

func TestSceneFooterRevealsOnce(t *testing.T) {
	s := newTestScene(t)
	s.Update(frameDT, Input{})
	f := s.Frame()
	if f.FooterOpacity != 0 || f.FooterOffset != footerShift {
		t.Fatalf("expected footer hidden, got opacity %v offset %v", f.FooterOpacity, f.FooterOffset)
	}

	s.Camera().Jump(s.Camera().MaxScroll())
	for i := 0; i < 60; i++ {
		s.Update(frameDT, Input{})
	}

	// Scrolling away keeps it revealed
	s.Camera().Jump(0)
	s.Update(frameDT, Input{})
	if got := s.Frame().FooterOpacity; got != 1 {
		t.Errorf("expected footer to stay revealed, got %v", got)
	}
}
