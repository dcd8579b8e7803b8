package progress

import (
	"math"
	"testing"

	"github.com/pthm-cable/folio/config"
)

func TestComputeRawProgress(t *testing.T) {
	r := DefaultRange()
	// Section at 800 with height 1200, viewport 800: range runs from 0 to 2000
	tests := []struct {
		name    string
		scrollY float64
		want    float64
	}{
		{"range start", 0, 0},
		{"midway", 1000, 0.5},
		{"range end", 2000, 1},
		{"before start", -400, -0.2},
		{"after end", 2400, 1.2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeRawProgress(800, 1200, 800, tc.scrollY, r)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestComputeRawProgressZeroRange(t *testing.T) {
	// Both offsets pin the section top to the viewport top
	r := Range{Start: Offset{0, 0}, End: Offset{0, 0}}
	if got := ComputeRawProgress(800, 1200, 800, 900, r); got != 0 {
		t.Errorf("expected 0 for zero-length range, got %v", got)
	}
}

func TestRangeFromConfig(t *testing.T) {
	cfg := config.Defaults()
	if got := RangeFromConfig(cfg.Scroll.Range); got != DefaultRange() {
		t.Errorf("expected default range from config, got %+v", got)
	}
}

func TestNavVisible(t *testing.T) {
	tests := []struct {
		scrollY float64
		want    bool
	}{
		{0, false},
		{120, false},
		{120.5, true},
		{4000, true},
	}
	for _, tc := range tests {
		if got := NavVisible(tc.scrollY, 800, 0.15); got != tc.want {
			t.Errorf("NavVisible(%v): expected %v, got %v", tc.scrollY, tc.want, got)
		}
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{-1, 0}, {0.3, 0.3}, {4, 1}, {math.NaN(), 0},
	}
	for _, tc := range tests {
		if got := Clamp01(tc.in); got != tc.want {
			t.Errorf("Clamp01(%v): expected %v, got %v", tc.in, tc.want, got)
		}
	}
}
