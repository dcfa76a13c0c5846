package widgets

import (
	"github.com/rivet-ui/rivet/pkg/core"
)

// Panel lays out an ordered list of children.
type Panel struct {
	core.ControlBase
	// Name optionally names the element for convention binding.
	Name string
	// Children are the panel contents, in order.
	Children []core.Widget
}

// WidgetName returns the element name.
func (p Panel) WidgetName() string {
	return p.Name
}

// ChildrenWidgets returns the children for element wiring.
func (p Panel) ChildrenWidgets() []core.Widget {
	return p.Children
}

// Column is a Panel with vertical orientation.
type Column struct {
	core.ControlBase
	Name     string
	Children []core.Widget
}

// WidgetName returns the element name.
func (c Column) WidgetName() string {
	return c.Name
}

// ChildrenWidgets returns the children for element wiring.
func (c Column) ChildrenWidgets() []core.Widget {
	return c.Children
}

// Row is a Panel with horizontal orientation.
type Row struct {
	core.ControlBase
	Name     string
	Children []core.Widget
}

// WidgetName returns the element name.
func (r Row) WidgetName() string {
	return r.Name
}

// ChildrenWidgets returns the children for element wiring.
func (r Row) ChildrenWidgets() []core.Widget {
	return r.Children
}
