// Package core provides the widget and element framework interfaces and lifecycle.
//
// This package defines the foundational types for declarative UI trees:
// Widget, Element, State, and BuildContext. Widgets are immutable
// descriptions of part of the UI; elements are their instantiations at a
// particular tree location and manage lifecycle and identity.
//
// # Element kinds
//
// StatelessElement and StatefulElement host composed widgets that describe
// their UI through Build. ControlElement hosts concrete controls and mounts
// their payload slots (child, children, content, header, items) distinctly,
// which lets the binding scope traversal walk logical content without
// descending into control internals.
//
// # Naming and scope
//
// Widgets that participate in convention binding implement [NamedWidget].
// Widgets that demarcate a reusable view scope (boundary containers such as
// widgets.View) report it through IsScopeBoundary; [IsBoundary] tests an
// element for it. The traversal itself lives in the binding package.
//
// # Stateful widgets
//
// For widgets that need mutable state, embed StateBase in your state struct:
//
//	type myState struct {
//	    core.StateBase
//	    count int
//	}
//
//	func (s *myState) Build(ctx core.BuildContext) core.Widget {
//	    return widgets.Text{Content: fmt.Sprintf("Count: %d", s.count)}
//	}
package core
