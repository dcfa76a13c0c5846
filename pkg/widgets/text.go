package widgets

import (
	"github.com/rivet-ui/rivet/pkg/core"
)

// Text displays a run of text.
type Text struct {
	core.ControlBase
	// Name optionally names the element for convention binding.
	Name string
	// Content is the displayed text.
	Content string
}

// WidgetName returns the element name.
func (t Text) WidgetName() string {
	return t.Name
}
