package widgets

import (
	"github.com/rivet-ui/rivet/pkg/core"
)

// Button is a content control that invokes OnTap when activated.
//
// Content may be a plain value (typically a string caption) or any widget.
// Widget content is mounted into the tree; plain values are rendered by
// the control itself.
type Button struct {
	core.ControlBase
	// Name optionally names the element for convention binding.
	Name string
	// Content is the button caption or payload widget.
	Content any
	// OnTap is called when the button is activated.
	OnTap func()
	// Enabled gates activation. The zero value disables the button, so
	// construct buttons with Enabled: true unless explicitly inert.
	Enabled bool
}

// WidgetName returns the element name.
func (b Button) WidgetName() string {
	return b.Name
}

// ContentPayload returns the button content.
func (b Button) ContentPayload() any {
	return b.Content
}

// Tap invokes OnTap if the button is enabled.
func (b Button) Tap() {
	if b.Enabled && b.OnTap != nil {
		b.OnTap()
	}
}
