package telemetry

import "github.com/pthm-cable/folio/progress"

// TraceRecord is one section's evaluated channels at one scroll offset.
type TraceRecord struct {
	Frame             int64   `csv:"frame"`
	ScrollY           float64 `csv:"scroll_y"`
	Section           string  `csv:"section"`
	Measured          bool    `csv:"measured"`
	Raw               float64 `csv:"raw"`
	Phase             string  `csv:"phase"`
	BackgroundOpacity float64 `csv:"background_opacity"`
	ContentOpacity    float64 `csv:"content_opacity"`
	LogoScale         float64 `csv:"logo_scale"`
	LogoOpacity       float64 `csv:"logo_opacity"`
	TextOffset        float64 `csv:"text_offset"`
	TextOpacity       float64 `csv:"text_opacity"`
	TagsOpacity       float64 `csv:"tags_opacity"`
	Active            bool    `csv:"active"`
}

// TraceRecords flattens evaluated sections into trace rows.
func TraceRecords(frame int64, scrollY float64, states []progress.SectionState, active string) []TraceRecord {
	out := make([]TraceRecord, len(states))
	for i, st := range states {
		f := st.Frame
		out[i] = TraceRecord{
			Frame:             frame,
			ScrollY:           scrollY,
			Section:           st.ID,
			Measured:          f.Measured,
			Raw:               f.Raw,
			Phase:             f.Phase.String(),
			BackgroundOpacity: f.BackgroundOpacity,
			ContentOpacity:    f.ContentOpacity,
			LogoScale:         f.LogoScale,
			LogoOpacity:       f.LogoOpacity,
			TextOffset:        f.TextOffset,
			TextOpacity:       f.TextOpacity,
			TagsOpacity:       f.TagsOpacity,
			Active:            st.ID == active,
		}
	}
	return out
}
