package landing

import (
	"github.com/pthm-cable/folio/config"
	"github.com/pthm-cable/folio/motion"
)

// Letter is one animated glyph of the hero name.
type Letter struct {
	Char    rune
	Line    int     // 0 = first name, 1 = last name
	Offset  float64 // Downward offset in px
	Opacity float64
}

// Hero animates the name letters in one continuous stagger across both lines.
type Hero struct {
	lines   [2][]rune
	stagger motion.Stagger
	offset  float64

	// Subtitle fades in after the letters
	subtitle      motion.Stagger
	subtitleShift float64
}

// NewHero builds the hero animation from config.
func NewHero(c config.HeroConfig) *Hero {
	return &Hero{
		lines:   [2][]rune{[]rune(c.FirstName), []rune(c.LastName)},
		stagger: motion.StaggerFromConfig(c),
		offset:  c.LetterOffset,
		subtitle: motion.Stagger{
			Delay:    0.9,
			Duration: 0.7,
			Ease:     motion.CubicBezier(c.Ease[0], c.Ease[1], c.Ease[2], c.Ease[3]),
		},
		subtitleShift: 16,
	}
}

// Letters returns every letter's state at time t seconds after mount.
func (h *Hero) Letters(t float64) []Letter {
	out := make([]Letter, 0, len(h.lines[0])+len(h.lines[1]))
	i := 0
	for line, chars := range h.lines {
		for _, ch := range chars {
			p := h.stagger.Progress(i, t)
			out = append(out, Letter{
				Char:    ch,
				Line:    line,
				Offset:  (1 - p) * h.offset,
				Opacity: p,
			})
			i++
		}
	}
	return out
}

// Subtitle returns the subtitle's downward offset and opacity at time t.
func (h *Hero) Subtitle(t float64) (offset, opacity float64) {
	p := h.subtitle.Progress(0, t)
	return (1 - p) * h.subtitleShift, p
}

// Settled reports whether the entrance has finished.
func (h *Hero) Settled(t float64) bool {
	n := len(h.lines[0]) + len(h.lines[1])
	return h.stagger.Done(n, t) && h.subtitle.Done(1, t)
}
