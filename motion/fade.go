package motion

// Fade is a reversible timed transition between hidden (0) and shown (1),
// eased on the way in and out.
type Fade struct {
	Duration float64
	Ease     Bezier

	linear float64
}

// NewFade returns a hidden fade.
func NewFade(duration float64, ease Bezier) *Fade {
	return &Fade{Duration: duration, Ease: ease}
}

// Update moves the fade towards shown or hidden by dt seconds.
func (f *Fade) Update(dt float64, shown bool) {
	if dt <= 0 {
		return
	}
	step := 1.0
	if f.Duration > 0 {
		step = dt / f.Duration
	}
	if shown {
		f.linear = min(f.linear+step, 1)
	} else {
		f.linear = max(f.linear-step, 0)
	}
}

// Value returns the eased progress in [0, 1].
func (f *Fade) Value() float64 {
	return f.Ease.Ease(f.linear)
}

// Shown reports whether the fade is fully in.
func (f *Fade) Shown() bool { return f.linear >= 1 }

// Hidden reports whether the fade is fully out.
func (f *Fade) Hidden() bool { return f.linear <= 0 }
