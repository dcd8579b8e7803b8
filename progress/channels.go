package progress

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/pthm-cable/folio/config"
)

// Phase is a section's visibility phase, recomputed from raw progress on
// every evaluation.
type Phase int

const (
	Hidden Phase = iota
	Entering
	Visible
	Exiting
)

func (p Phase) String() string {
	switch p {
	case Hidden:
		return "hidden"
	case Entering:
		return "entering"
	case Visible:
		return "visible"
	case Exiting:
		return "exiting"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Channels holds one breakpoint table per visual channel of a section.
type Channels struct {
	BackgroundOpacity Table
	ContentOpacity    Table
	LogoScale         Table
	LogoOpacity       Table
	TextOffset        Table
	TextOpacity       Table
	TagsOpacity       Table
}

// DefaultChannels returns the landing page's channel tables.
func DefaultChannels() Channels {
	fade := MustTable([]float64{0.08, 0.22, 0.72, 0.88}, []float64{0, 1, 1, 0})
	return Channels{
		BackgroundOpacity: fade,
		ContentOpacity:    fade,
		LogoScale:         MustTable([]float64{0.08, 0.28}, []float64{0.5, 1}),
		LogoOpacity:       MustTable([]float64{0.08, 0.22}, []float64{0, 1}),
		TextOffset:        MustTable([]float64{0.16, 0.32}, []float64{40, 0}),
		TextOpacity:       MustTable([]float64{0.16, 0.32}, []float64{0, 1}),
		TagsOpacity:       MustTable([]float64{0.24, 0.36}, []float64{0, 1}),
	}
}

// ChannelsFromConfig validates and fits every channel table.
func ChannelsFromConfig(c config.ChannelsConfig) (Channels, error) {
	var ch Channels
	tables := []struct {
		name string
		src  config.TableConfig
		dst  *Table
	}{
		{"background_opacity", c.BackgroundOpacity, &ch.BackgroundOpacity},
		{"content_opacity", c.ContentOpacity, &ch.ContentOpacity},
		{"logo_scale", c.LogoScale, &ch.LogoScale},
		{"logo_opacity", c.LogoOpacity, &ch.LogoOpacity},
		{"text_offset", c.TextOffset, &ch.TextOffset},
		{"text_opacity", c.TextOpacity, &ch.TextOpacity},
		{"tags_opacity", c.TagsOpacity, &ch.TagsOpacity},
	}
	for _, tb := range tables {
		t, err := TableFromConfig(tb.src)
		if err != nil {
			return Channels{}, fmt.Errorf("channel %s: %w", tb.name, err)
		}
		*tb.dst = t
	}
	return ch, nil
}

// Frame is the evaluated state of one section at one scroll offset.
type Frame struct {
	Measured bool
	Raw      float64 // Unclamped raw progress
	Progress float64 // Raw clamped to [0, 1]
	Phase    Phase

	BackgroundOpacity float64
	ContentOpacity    float64
	LogoScale         float64
	LogoOpacity       float64
	TextOffset        float64
	TextOpacity       float64
	TagsOpacity       float64
}

// LogValue implements slog.LogValuer.
func (f Frame) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("measured", f.Measured),
		slog.Float64("raw", f.Raw),
		slog.String("phase", f.Phase.String()),
		slog.Float64("background_opacity", f.BackgroundOpacity),
		slog.Float64("content_opacity", f.ContentOpacity),
	)
}

// Eval evaluates every channel at raw progress. Raw is clamped to [0, 1]
// before lookup.
func (c Channels) Eval(raw float64) Frame {
	p := Clamp01(raw)
	return Frame{
		Measured:          true,
		Raw:               raw,
		Progress:          p,
		Phase:             c.Phase(raw),
		BackgroundOpacity: c.BackgroundOpacity.Interpolate(p),
		ContentOpacity:    c.ContentOpacity.Interpolate(p),
		LogoScale:         c.LogoScale.Interpolate(p),
		LogoOpacity:       c.LogoOpacity.Interpolate(p),
		TextOffset:        c.TextOffset.Interpolate(p),
		TextOpacity:       c.TextOpacity.Interpolate(p),
		TagsOpacity:       c.TagsOpacity.Interpolate(p),
	}
}

// Neutral is the frame for a section that cannot be measured: hidden, with
// every channel at its pre-entrance value.
func (c Channels) Neutral() Frame {
	f := c.Eval(0)
	f.Measured = false
	f.Phase = Hidden
	f.BackgroundOpacity = 0
	f.ContentOpacity = 0
	return f
}

// Phase derives the visibility phase from the background opacity table:
// entering between its first two breakpoints, exiting between its last two,
// hidden outside the table and visible in between. Tables with fewer than
// four breakpoints never exit.
func (c Channels) Phase(raw float64) Phase {
	bps := c.BackgroundOpacity.breakpoints
	n := len(bps)
	if n == 0 || math.IsNaN(raw) {
		return Hidden
	}
	if n == 1 {
		if raw < bps[0] {
			return Hidden
		}
		return Visible
	}

	enterStart, enterEnd := bps[0], bps[1]
	exitStart, exitEnd := math.Inf(1), math.Inf(1)
	if n >= 4 {
		exitStart, exitEnd = bps[n-2], bps[n-1]
	}

	switch {
	case raw < enterStart || raw > exitEnd:
		return Hidden
	case raw < enterEnd:
		return Entering
	case raw <= exitStart:
		return Visible
	default:
		return Exiting
	}
}
