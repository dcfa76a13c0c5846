package core

// Widget is an immutable description of part of the UI.
type Widget interface {
	// CreateElement instantiates the element that will host this widget.
	CreateElement() Element
	// Key identifies the widget across rebuilds. Nil means unkeyed.
	Key() any
}

// StatelessWidget describes UI purely in terms of its configuration.
type StatelessWidget interface {
	Widget
	Build(ctx BuildContext) Widget
}

// StatefulWidget owns mutable state hosted in a State object.
type StatefulWidget interface {
	Widget
	CreateState() State
}

// State holds mutable state for a StatefulWidget.
type State interface {
	// InitState is called once after the state is attached to its element.
	InitState()
	// Build describes the UI for the current state.
	Build(ctx BuildContext) Widget
	// DidUpdateWidget is called when the hosting element receives a new
	// widget configuration of the same type.
	DidUpdateWidget(oldWidget StatefulWidget)
	// Dispose releases resources when the element is unmounted.
	Dispose()
}

// BuildContext is the element-side handle passed to Build methods.
type BuildContext interface {
	// Widget returns the widget hosted at this location.
	Widget() Widget
	// FindAncestor walks up the element tree and returns the first
	// ancestor satisfying the predicate, or nil.
	FindAncestor(predicate func(Element) bool) Element
}

// Element is the instantiation of a Widget at a particular tree location.
type Element interface {
	Widget() Widget
	Mount(parent Element, slot any)
	Update(newWidget Widget)
	Unmount()
	RebuildIfNeeded()
	MarkNeedsBuild()
	// VisitChildren calls visitor for each child until it returns false.
	VisitChildren(visitor func(Element) bool)
	FindAncestor(predicate func(Element) bool) Element
	Depth() int
}

// NamedWidget is implemented by widgets that participate in name-based
// convention binding.
type NamedWidget interface {
	Widget
	// WidgetName returns the element name. Empty means unnamed.
	WidgetName() string
}

// NameOf returns the name of the widget hosted by e, or "" when the
// widget is unnamed or e is nil.
func NameOf(e Element) string {
	if e == nil {
		return ""
	}
	if named, ok := e.Widget().(NamedWidget); ok {
		return named.WidgetName()
	}
	return ""
}

// scopeBoundary is implemented by widgets that demarcate a reusable view
// scope, such as widgets.View.
type scopeBoundary interface {
	IsScopeBoundary() bool
}

// IsBoundary reports whether e hosts a scope-boundary widget.
func IsBoundary(e Element) bool {
	if e == nil {
		return false
	}
	if b, ok := e.Widget().(scopeBoundary); ok {
		return b.IsScopeBoundary()
	}
	return false
}
