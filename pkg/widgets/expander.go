package widgets

import (
	"github.com/rivet-ui/rivet/pkg/core"
)

// Expander is a headered content control that shows or hides its content.
//
// Header and Content may be plain values or widgets; widget payloads are
// mounted into the tree and participate in scope traversal.
type Expander struct {
	core.ControlBase
	// Name optionally names the element for convention binding.
	Name string
	// Header is the always-visible header payload.
	Header any
	// Content is the collapsible content payload.
	Content any
	// Expanded is the current state.
	Expanded bool
	// OnToggled is called with the new state when the header is activated.
	OnToggled func(expanded bool)
}

// WidgetName returns the element name.
func (e Expander) WidgetName() string {
	return e.Name
}

// HeaderPayload returns the header payload.
func (e Expander) HeaderPayload() any {
	return e.Header
}

// ContentPayload returns the content payload.
func (e Expander) ContentPayload() any {
	return e.Content
}

// Toggle flips the state, notifying OnToggled.
func (e Expander) Toggle() {
	if e.OnToggled != nil {
		e.OnToggled(!e.Expanded)
	}
}
