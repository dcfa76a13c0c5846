package widgets

import (
	"github.com/rivet-ui/rivet/pkg/core"
)

// Container wraps a single child, optionally naming it.
type Container struct {
	core.ControlBase
	// Name optionally names the element for convention binding.
	Name string
	// Child is the wrapped widget.
	Child core.Widget
}

// WidgetName returns the element name.
func (c Container) WidgetName() string {
	return c.Name
}

// ChildWidget returns the single child for element wiring.
func (c Container) ChildWidget() core.Widget {
	return c.Child
}

// WithChild returns a copy of the container with the specified child.
func (c Container) WithChild(child core.Widget) Container {
	c.Child = child
	return c
}
