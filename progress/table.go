package progress

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"

	"github.com/pthm-cable/folio/config"
)

var (
	// ErrTooFewBreakpoints is returned for a table without breakpoints.
	ErrTooFewBreakpoints = errors.New("progress: table needs at least one breakpoint")
	// ErrNotAscending is returned when breakpoints are not strictly ascending.
	ErrNotAscending = errors.New("progress: breakpoints must be strictly ascending")
	// ErrLengthMismatch is returned when breakpoints and outputs differ in length.
	ErrLengthMismatch = errors.New("progress: breakpoints and outputs differ in length")
)

// Table is a validated breakpoint table: a piecewise-linear curve through
// (breakpoint, output) pairs, held flat outside the first and last breakpoint.
// The zero Table evaluates to 0 everywhere.
type Table struct {
	breakpoints []float64
	outputs     []float64
	fit         *interp.PiecewiseLinear
}

// NewTable validates the pairs and fits the curve. A single pair yields a
// constant table.
func NewTable(breakpoints, outputs []float64) (Table, error) {
	if len(breakpoints) != len(outputs) {
		return Table{}, fmt.Errorf("%w: %d breakpoints, %d outputs", ErrLengthMismatch, len(breakpoints), len(outputs))
	}
	if len(breakpoints) == 0 {
		return Table{}, ErrTooFewBreakpoints
	}
	for i, bp := range breakpoints {
		if math.IsNaN(bp) || math.IsInf(bp, 0) {
			return Table{}, fmt.Errorf("%w: breakpoint %d is %v", ErrNotAscending, i, bp)
		}
		if i > 0 && bp <= breakpoints[i-1] {
			return Table{}, fmt.Errorf("%w: %v after %v", ErrNotAscending, bp, breakpoints[i-1])
		}
	}

	t := Table{
		breakpoints: append([]float64(nil), breakpoints...),
		outputs:     append([]float64(nil), outputs...),
	}
	if len(breakpoints) >= 2 {
		t.fit = &interp.PiecewiseLinear{}
		if err := t.fit.Fit(t.breakpoints, t.outputs); err != nil {
			return Table{}, fmt.Errorf("fitting table: %w", err)
		}
	}
	return t, nil
}

// MustTable is like NewTable but panics on error. For literal tables.
func MustTable(breakpoints, outputs []float64) Table {
	t, err := NewTable(breakpoints, outputs)
	if err != nil {
		panic(err)
	}
	return t
}

// TableFromConfig builds a table from its config entry.
func TableFromConfig(c config.TableConfig) (Table, error) {
	return NewTable(c.Breakpoints, c.Values)
}

// Interpolate maps raw through the table. Before the first breakpoint the
// first output is returned, after the last the last output; each breakpoint
// maps exactly to its output. NaN maps to the first output.
func (t Table) Interpolate(raw float64) float64 {
	n := len(t.outputs)
	switch {
	case n == 0:
		return 0
	case n == 1 || math.IsNaN(raw) || raw <= t.breakpoints[0]:
		return t.outputs[0]
	case raw >= t.breakpoints[n-1]:
		return t.outputs[n-1]
	}
	return t.fit.Predict(raw)
}

// Breakpoints returns a copy of the breakpoints.
func (t Table) Breakpoints() []float64 {
	return append([]float64(nil), t.breakpoints...)
}

// Outputs returns a copy of the outputs.
func (t Table) Outputs() []float64 {
	return append([]float64(nil), t.outputs...)
}

// Len returns the number of breakpoints.
func (t Table) Len() int { return len(t.breakpoints) }

// Interpolate is the one-shot form of Table.Interpolate.
func Interpolate(raw float64, breakpoints, outputs []float64) (float64, error) {
	t, err := NewTable(breakpoints, outputs)
	if err != nil {
		return 0, err
	}
	return t.Interpolate(raw), nil
}
