// Package binding implements convention-over-configuration view-model
// binding for Rivet widget trees.
//
// # Reflection helpers
//
// The package's foundation is a small set of reflection utilities:
// [Property] finds an exported member by name ignoring case (interface
// method sets included), [Attributes] and [FieldAttributes] read struct-tag
// directives, [Apply] invokes an action per element of a sequence, and
// [MemberOf] turns a pointer-to-field reference into its
// reflect.StructField.
//
// # Scope traversal
//
// [NamedDescendants] collects the named elements reachable from the
// nearest enclosing boundary container (widgets.View), breadth-first,
// without crossing nested boundaries. [FindNamed] searches a collected
// scope by name, ignoring case.
//
// # Conventions
//
// Each widget type registers a [Convention] naming the widget fields that
// receive values, trigger view-model methods, and observe edits. A
// [Binder] resolves element names against a view model and pushes values:
//
//	type LoginViewModel struct {
//	    Username string
//	    Password string `bind:"name=Secret"`
//	}
//
//	func (vm *LoginViewModel) Submit() { ... }
//
//	binder := binding.NewBinder(&vm)
//	bindings := binder.Bind(viewElement)
//
// A TextField named "Username" binds two-way to vm.Username; a Button
// named "Submit" invokes vm.Submit. Conventions can be adjusted per
// project through rivet.yaml ([LoadOptional], [Config.ApplyOverrides]).
package binding
