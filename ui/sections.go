package ui

import (
	"github.com/pthm-cable/folio/landing"
	"github.com/pthm-cable/folio/progress"
)

func sectionView(data any) landing.SectionView {
	sv, _ := data.(landing.SectionView)
	return sv
}

// sectionFields describes the progress readout of one section.
var sectionFields = []FieldDescriptor{
	{
		ID:         "phase",
		Label:      "Phase",
		Widget:     WidgetText,
		TextGetter: func(d any) string { return sectionView(d).Frame.Phase.String() },
	},
	{
		ID:     "raw",
		Label:  "Raw",
		Widget: WidgetCenteredBar,
		Range:  FieldRange{Min: -1, Max: 2},
		Getter: func(d any) float32 { return float32(sectionView(d).Frame.Raw) },
	},
	{ID: "background", Label: "Background", Widget: WidgetBar, Getter: func(d any) float32 { return float32(sectionView(d).Frame.BackgroundOpacity) }},
	{ID: "content", Label: "Content", Widget: WidgetBar, Getter: func(d any) float32 { return float32(sectionView(d).Frame.ContentOpacity) }},
	{ID: "logo_scale", Label: "Logo scale", Widget: WidgetBar, Getter: func(d any) float32 { return float32(sectionView(d).Frame.LogoScale) }},
	{ID: "logo", Label: "Logo", Widget: WidgetBar, Getter: func(d any) float32 { return float32(sectionView(d).Frame.LogoOpacity) }},
	{ID: "text_y", Label: "Text y", Widget: WidgetBar, Range: FieldRange{Max: 40}, Getter: func(d any) float32 { return float32(sectionView(d).Frame.TextOffset) }},
	{ID: "text", Label: "Text", Widget: WidgetBar, Getter: func(d any) float32 { return float32(sectionView(d).Frame.TextOpacity) }},
	{ID: "tags", Label: "Tags", Widget: WidgetBar, Getter: func(d any) float32 { return float32(sectionView(d).Frame.TagsOpacity) }},
}

// SectionPanel shows the scroll channels of the sections on screen.
type SectionPanel struct {
	renderer *Renderer
	width    int32
}

// NewSectionPanel creates a section panel of the given width.
func NewSectionPanel(width int32) *SectionPanel {
	return &SectionPanel{renderer: NewRenderer(), width: width}
}

// Draw renders one block per measured, non-hidden section, right-aligned
// at screenWidth, and returns the bottom y.
func (p *SectionPanel) Draw(screenWidth int32, sections []landing.SectionView) int32 {
	r := p.renderer
	x := screenWidth - p.width - 10
	y := int32(10)

	for _, sv := range sections {
		sd := SectionDescriptor{
			ID:     sv.ID,
			Title:  sv.ID,
			Fields: sectionFields,
			Visible: func(d any) bool {
				f := sectionView(d).Frame
				return f.Measured && f.Phase != progress.Hidden
			},
		}
		if !sd.Visible(sv) {
			continue
		}
		height := int32(len(sectionFields))*(r.Theme.LineHeight+2) + r.Theme.LineHeight + 2*r.Theme.Padding
		r.DrawPanel(x-r.Theme.Padding, y, p.width+r.Theme.Padding, height)
		y = r.DrawSection(x, y+r.Theme.Padding, sd, sv, p.width) + r.Theme.Padding
	}
	return y
}
