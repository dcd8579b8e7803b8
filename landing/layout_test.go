package landing

import (
	"math"
	"testing"

	"github.com/pthm-cable/folio/config"
)

func TestNewLayout(t *testing.T) {
	l := NewLayout(config.LayoutConfig{HeroVH: 1, SectionVH: 1.6, FooterVH: 1}, []string{"a", "b"}, 800)

	if l.Hero.Top != 0 || l.Hero.Height != 800 {
		t.Errorf("expected hero 0+800, got %v+%v", l.Hero.Top, l.Hero.Height)
	}
	wantTops := []float64{800, 2080}
	for i, s := range l.Sections {
		if s.Bounds.Top != wantTops[i] || s.Bounds.Height != 1280 {
			t.Errorf("section %s: expected %v+1280, got %v+%v", s.ID, wantTops[i], s.Bounds.Top, s.Bounds.Height)
		}
	}
	if l.Footer.Top != 3360 {
		t.Errorf("expected footer at 3360, got %v", l.Footer.Top)
	}
	if l.DocHeight != 4160 {
		t.Errorf("expected doc height 4160, got %v", l.DocHeight)
	}
}

func TestSectionTop(t *testing.T) {
	l := NewLayout(config.LayoutConfig{HeroVH: 1, SectionVH: 1, FooterVH: 1}, []string{"a", "b"}, 500)

	if top, ok := l.SectionTop("b"); !ok || top != 1000 {
		t.Errorf("expected b at 1000, got %v ok=%v", top, ok)
	}
	if _, ok := l.SectionTop("missing"); ok {
		t.Error("expected unknown id to be missing")
	}
}

func TestStickyTop(t *testing.T) {
	tests := []struct {
		name      string
		screenTop float64
		want      float64
	}{
		{"below viewport", 900, 900},
		{"entering", 300, 300},
		{"pinned at top", 0, 0},
		{"pinned while covering", -400, 0},
		{"leaving with bottom edge", -800, -200},
	}

	// Block 1.6 viewports tall, viewport 1000
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := StickyTop(tc.screenTop, 1600, 1000)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
