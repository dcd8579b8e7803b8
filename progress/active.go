package progress

// Rect is a section's vertical extent in document coordinates.
type Rect struct {
	Top    float64
	Height float64
}

// Bottom returns the document y of the rect's bottom edge.
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Section is a registry entry. Bounds is nil while the section is not laid
// out; such sections evaluate to neutral frames and are never active.
type Section struct {
	ID     string
	Bounds *Rect
}

// SectionState pairs a section id with its evaluated frame.
type SectionState struct {
	ID    string
	Frame Frame
}

// Evaluate computes the frame of every section at scrollY, in declaration
// order.
func Evaluate(sections []Section, vh, scrollY float64, ch Channels, r Range) []SectionState {
	out := make([]SectionState, len(sections))
	for i, s := range sections {
		out[i].ID = s.ID
		if s.Bounds == nil {
			out[i].Frame = ch.Neutral()
			continue
		}
		raw := ComputeRawProgress(s.Bounds.Top, s.Bounds.Height, vh, scrollY, r)
		out[i].Frame = ch.Eval(raw)
	}
	return out
}

// DetermineActiveSection returns the first section, in declaration order,
// whose on-screen extent contains the probe line at probe*vh from the
// viewport top. ok is false when no section straddles the probe.
func DetermineActiveSection(sections []Section, vh, scrollY, probe float64) (id string, ok bool) {
	line := probe * vh
	for _, s := range sections {
		if s.Bounds == nil {
			continue
		}
		top := s.Bounds.Top - scrollY
		bottom := s.Bounds.Bottom() - scrollY
		if top <= line && bottom >= line {
			return s.ID, true
		}
	}
	return "", false
}

// Indicator tracks the active section for the timeline nav.
//
// Between sections (or past the last one) the previous id is kept so the nav
// does not flicker; above the first viewport height it is cleared.
type Indicator struct {
	Probe  float64
	active string
}

// NewIndicator returns an indicator probing at the given viewport fraction.
func NewIndicator(probe float64) *Indicator {
	return &Indicator{Probe: probe}
}

// Update re-probes the sections and returns the active id ("" for none) and
// whether it changed.
func (in *Indicator) Update(sections []Section, vh, scrollY float64) (string, bool) {
	prev := in.active
	if id, ok := DetermineActiveSection(sections, vh, scrollY, in.Probe); ok {
		in.active = id
	} else if scrollY <= vh {
		in.active = ""
	}
	return in.active, in.active != prev
}

// Active returns the current id, "" when none.
func (in *Indicator) Active() string { return in.active }

// Reset clears the active id.
func (in *Indicator) Reset() { in.active = "" }
