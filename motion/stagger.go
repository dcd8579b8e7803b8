package motion

import (
	"fmt"
	"math"

	"github.com/pthm-cable/folio/config"
	"github.com/pthm-cable/folio/progress"
)

// Stagger times an entrance where item i starts Step seconds after item i-1.
type Stagger struct {
	Delay    float64 // Seconds before item 0 starts
	Step     float64 // Seconds between consecutive items
	Duration float64 // Seconds per item
	Ease     Bezier
}

// StaggerFromConfig builds the hero letter entrance.
func StaggerFromConfig(c config.HeroConfig) Stagger {
	return Stagger{
		Delay:    c.Delay,
		Step:     c.Stagger,
		Duration: c.Duration,
		Ease:     CubicBezier(c.Ease[0], c.Ease[1], c.Ease[2], c.Ease[3]),
	}
}

// Progress returns item i's eased progress in [0, 1] at time t seconds.
func (s Stagger) Progress(i int, t float64) float64 {
	start := s.Delay + float64(i)*s.Step
	if s.Duration <= 0 {
		if t >= start {
			return 1
		}
		return 0
	}
	return s.Ease.Ease((t - start) / s.Duration)
}

// Done reports whether all n items have finished at time t.
func (s Stagger) Done(n int, t float64) bool {
	if n <= 0 {
		return true
	}
	return t >= s.Delay+float64(n-1)*s.Step+s.Duration
}

// Loop is a looping keyframe animation: Values at normalized Times over
// Duration seconds, linear between keyframes.
type Loop struct {
	Duration float64
	table    progress.Table
}

// NewLoop validates the keyframes.
func NewLoop(duration float64, times, values []float64) (Loop, error) {
	if duration <= 0 {
		return Loop{}, fmt.Errorf("loop duration must be positive, got %v", duration)
	}
	t, err := progress.NewTable(times, values)
	if err != nil {
		return Loop{}, fmt.Errorf("loop keyframes: %w", err)
	}
	return Loop{Duration: duration, table: t}, nil
}

// At returns the value at time t seconds.
func (l Loop) At(t float64) float64 {
	if l.Duration <= 0 {
		return l.table.Interpolate(0)
	}
	phase := math.Mod(t, l.Duration)
	if phase < 0 {
		phase += l.Duration
	}
	return l.table.Interpolate(phase / l.Duration)
}

// Blob is the drifting background shape of a section.
type Blob struct {
	X, Y, Scale Loop
}

// BlobFromConfig builds the blob loops.
func BlobFromConfig(c config.BlobConfig) (Blob, error) {
	x, err := NewLoop(c.Duration, c.Times, c.X)
	if err != nil {
		return Blob{}, fmt.Errorf("blob x: %w", err)
	}
	y, err := NewLoop(c.Duration, c.Times, c.Y)
	if err != nil {
		return Blob{}, fmt.Errorf("blob y: %w", err)
	}
	scale, err := NewLoop(c.Duration, c.Times, c.Scale)
	if err != nil {
		return Blob{}, fmt.Errorf("blob scale: %w", err)
	}
	return Blob{X: x, Y: y, Scale: scale}, nil
}

// At returns the blob offset and scale at time t.
func (b Blob) At(t float64) (dx, dy, scale float64) {
	return b.X.At(t), b.Y.At(t), b.Scale.At(t)
}
