package progress

import (
	"math"
	"testing"

	"github.com/pthm-cable/folio/config"
)

func TestChannelsFromConfigMatchesDefaults(t *testing.T) {
	ch, err := ChannelsFromConfig(config.Defaults().Scroll.Channels)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	def := DefaultChannels()

	for _, raw := range []float64{0, 0.1, 0.2, 0.3, 0.5, 0.8, 0.9, 1} {
		got, want := ch.Eval(raw), def.Eval(raw)
		if got != want {
			t.Errorf("Eval(%v): config %+v differs from defaults %+v", raw, got, want)
		}
	}
}

func TestChannelsFromConfigRejectsBadTable(t *testing.T) {
	c := config.Defaults().Scroll.Channels
	c.TagsOpacity.Values = []float64{0}

	if _, err := ChannelsFromConfig(c); err == nil {
		t.Error("expected error for mismatched tags_opacity table")
	}
}

func TestEval(t *testing.T) {
	ch := DefaultChannels()

	f := ch.Eval(0.5)
	if !f.Measured || f.Phase != Visible {
		t.Errorf("expected measured visible frame, got %+v", f)
	}
	if f.BackgroundOpacity != 1 || f.LogoScale != 1 || f.TextOffset != 0 || f.TagsOpacity != 1 {
		t.Errorf("expected fully revealed channels at 0.5, got %+v", f)
	}

	// Logo half way through its scale ramp
	f = ch.Eval(0.18)
	if math.Abs(f.LogoScale-0.75) > 1e-9 {
		t.Errorf("expected logo scale 0.75, got %v", f.LogoScale)
	}
	if math.Abs(f.TextOffset-35) > 1e-9 {
		t.Errorf("expected text offset 35, got %v", f.TextOffset)
	}

	// Raw outside [0, 1] is clamped for lookup but kept in Raw
	f = ch.Eval(-0.4)
	if f.Raw != -0.4 || f.Progress != 0 || f.BackgroundOpacity != 0 || f.TextOffset != 40 {
		t.Errorf("expected clamped lookup, got %+v", f)
	}
}

func TestNeutral(t *testing.T) {
	f := DefaultChannels().Neutral()
	if f.Measured || f.Phase != Hidden {
		t.Errorf("expected unmeasured hidden frame, got %+v", f)
	}
	if f.BackgroundOpacity != 0 || f.ContentOpacity != 0 || f.TextOpacity != 0 {
		t.Errorf("expected invisible neutral frame, got %+v", f)
	}
}

func TestPhase(t *testing.T) {
	ch := DefaultChannels()

	tests := []struct {
		raw  float64
		want Phase
	}{
		{-0.5, Hidden},
		{0.05, Hidden},
		{0.08, Entering},
		{0.15, Entering},
		{0.22, Visible},
		{0.5, Visible},
		{0.72, Visible},
		{0.8, Exiting},
		{0.88, Exiting},
		{0.95, Hidden},
		{1.5, Hidden},
	}
	for _, tc := range tests {
		if got := ch.Phase(tc.raw); got != tc.want {
			t.Errorf("Phase(%v): expected %v, got %v", tc.raw, tc.want, got)
		}
	}
}

func TestPhaseSequenceOverSweep(t *testing.T) {
	ch := DefaultChannels()
	order := map[Phase]int{Hidden: 0, Entering: 1, Visible: 2, Exiting: 3}

	// Hidden, Entering, Visible, Exiting, Hidden and never backwards
	var seen []Phase
	for raw := -0.2; raw <= 1.2; raw += 0.001 {
		p := ch.Phase(raw)
		if len(seen) == 0 || seen[len(seen)-1] != p {
			seen = append(seen, p)
		}
	}

	want := []Phase{Hidden, Entering, Visible, Exiting, Hidden}
	if len(seen) != len(want) {
		t.Fatalf("expected sequence %v, got %v", want, seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("expected sequence %v, got %v", want, seen)
		}
	}
	for i := 1; i < len(seen)-1; i++ {
		if order[seen[i]] <= order[seen[i-1]] {
			t.Errorf("phase went backwards: %v after %v", seen[i], seen[i-1])
		}
	}
}

func TestPhaseShortTable(t *testing.T) {
	ch := Channels{BackgroundOpacity: MustTable([]float64{0.1, 0.3}, []float64{0, 1})}
	if got := ch.Phase(0.9); got != Visible {
		t.Errorf("expected two-point table to stay visible, got %v", got)
	}
	if got := ch.Phase(0.2); got != Entering {
		t.Errorf("expected entering, got %v", got)
	}
}

func TestPhaseString(t *testing.T) {
	if Exiting.String() != "exiting" || Phase(9).String() != "phase(9)" {
		t.Errorf("unexpected phase names %q %q", Exiting.String(), Phase(9).String())
	}
}
