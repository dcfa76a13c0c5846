package widgets

import (
	"github.com/rivet-ui/rivet/pkg/core"
)

// View is a boundary container: it demarcates a reusable view scope.
// Convention binding resolves names within the nearest enclosing View and
// never crosses into nested Views.
type View struct {
	// Name optionally names the view itself.
	Name string
	// Child is the view content.
	Child core.Widget
}

func (v View) CreateElement() core.Element {
	return core.NewControlElement(v, nil)
}

func (v View) Key() any {
	return nil
}

// WidgetName returns the element name.
func (v View) WidgetName() string {
	return v.Name
}

// ChildWidget returns the single child for element wiring.
func (v View) ChildWidget() core.Widget {
	return v.Child
}

// IsScopeBoundary reports that View bounds a binding scope.
func (v View) IsScopeBoundary() bool {
	return true
}
