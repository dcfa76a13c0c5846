package widgets

import (
	"github.com/rivet-ui/rivet/pkg/core"
)

// Checkbox is a two-state toggle.
type Checkbox struct {
	core.ControlBase
	// Name optionally names the element for convention binding.
	Name string
	// Checked is the current state.
	Checked bool
	// OnToggled is called with the new state when the box is toggled.
	OnToggled func(checked bool)
}

// WidgetName returns the element name.
func (c Checkbox) WidgetName() string {
	return c.Name
}

// Toggle flips the state, notifying OnToggled.
func (c Checkbox) Toggle() {
	if c.OnToggled != nil {
		c.OnToggled(!c.Checked)
	}
}
