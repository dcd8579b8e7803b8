package palette

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/pthm-cable/folio/config"
)

func TestParse(t *testing.T) {
	tests := []struct {
		hex     string
		want    color.RGBA
		wantErr bool
	}{
		{"#DC2626", color.RGBA{R: 0xdc, G: 0x26, B: 0x26, A: 255}, false},
		{"#fff", color.RGBA{R: 255, G: 255, B: 255, A: 255}, false},
		{"DC2626", color.RGBA{}, true},
		{"", color.RGBA{}, true},
	}
	for _, tc := range tests {
		t.Run(tc.hex, func(t *testing.T) {
			c, err := Parse(tc.hex)
			if tc.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tc.hex)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := RGBA(c, 1); got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestRGBAAlpha(t *testing.T) {
	c := MustParse("#000000")
	tests := []struct {
		alpha float64
		want  uint8
	}{
		{0, 0}, {0.5, 128}, {1, 255}, {-1, 0}, {2, 255},
	}
	for _, tc := range tests {
		if got := RGBA(c, tc.alpha).A; got != tc.want {
			t.Errorf("alpha %v: expected %d, got %d", tc.alpha, tc.want, got)
		}
	}
}

func TestGradientAt(t *testing.T) {
	g, err := NewGradient([]string{"#000000", "#ffffff", "#000000"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := g.At(0); got != g.Stops[0] {
		t.Errorf("expected first stop at 0, got %v", got)
	}
	if got := g.At(0.5); !got.AlmostEqualRgb(White) {
		t.Errorf("expected middle stop at 0.5, got %v", got)
	}
	if got := g.At(1.5); got != g.Stops[2] {
		t.Errorf("expected last stop past 1, got %v", got)
	}

	// Lab blending keeps mid-grey lightness halfway
	l, _, _ := g.At(0.25).Lab()
	if math.Abs(l-0.5) > 0.01 {
		t.Errorf("expected lightness 0.5 at 0.25, got %v", l)
	}
}

func TestNewGradientErrors(t *testing.T) {
	if _, err := NewGradient(nil); !errors.Is(err, ErrNoStops) {
		t.Errorf("expected ErrNoStops, got %v", err)
	}
	if _, err := NewGradient([]string{"#000", "nope"}); err == nil {
		t.Error("expected error for bad stop")
	}
}

func TestEmptyGradient(t *testing.T) {
	var g Gradient
	if got := g.At(0.5); got != Black {
		t.Errorf("expected black for empty gradient, got %v", got)
	}
}

func TestThemeFromSection(t *testing.T) {
	for _, s := range config.Defaults().Sections {
		th, err := ThemeFromSection(s)
		if err != nil {
			t.Fatalf("section %s: unexpected error: %v", s.ID, err)
		}
		if len(th.Gradient.Stops) != 3 {
			t.Errorf("section %s: expected 3 gradient stops, got %d", s.ID, len(th.Gradient.Stops))
		}
		wantText := White
		if s.DarkText {
			wantText = Black
		}
		if th.Text != wantText {
			t.Errorf("section %s: expected text %v, got %v", s.ID, wantText, th.Text)
		}
	}
}

func TestThemeFallsBackToAccent(t *testing.T) {
	th, err := ThemeFromSection(config.SectionConfig{ID: "x", Color: "#2563EB"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(th.Gradient.Stops) != 1 || th.Gradient.At(0.3) != th.Accent {
		t.Errorf("expected flat accent gradient, got %+v", th.Gradient)
	}

	if _, err := ThemeFromSection(config.SectionConfig{ID: "y", Color: "blue"}); err == nil {
		t.Error("expected error for unparseable accent")
	}
}
