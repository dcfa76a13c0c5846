package core

// StatelessBase provides default CreateElement and Key implementations for
// stateless widgets. Embed it in your widget struct to satisfy the Widget
// interface without boilerplate:
//
//	type Greeting struct {
//	    core.StatelessBase
//	    Name string
//	}
//
//	func (g Greeting) Build(ctx core.BuildContext) core.Widget {
//	    return widgets.Text{Content: "Hello, " + g.Name}
//	}
type StatelessBase struct{}

// CreateElement returns a new StatelessElement. The widget and build owner
// are attached by the framework during inflation.
func (StatelessBase) CreateElement() Element { return NewStatelessElement(nil, nil) }

// Key returns nil (no key).
func (StatelessBase) Key() any { return nil }

// StatefulBase provides default CreateElement and Key implementations for
// stateful widgets. Embed it in your widget struct to satisfy the Widget
// interface without boilerplate:
//
//	type Counter struct {
//	    core.StatefulBase
//	}
//
//	func (Counter) CreateState() core.State { return &counterState{} }
type StatefulBase struct{}

// CreateElement returns a new StatefulElement. The widget and build owner
// are attached by the framework during inflation.
func (StatefulBase) CreateElement() Element { return NewStatefulElement(nil, nil) }

// Key returns nil (no key).
func (StatefulBase) Key() any { return nil }

// ControlBase provides default CreateElement and Key implementations for
// control widgets hosted by a ControlElement. Embed it in a widget struct
// that exposes its payloads via the shape interfaces (SingleChildWidget,
// ContentHolder, ItemsHolder, ...):
//
//	type Badge struct {
//	    core.ControlBase
//	    Name    string
//	    Content any
//	}
//
//	func (b Badge) WidgetName() string   { return b.Name }
//	func (b Badge) ContentPayload() any  { return b.Content }
type ControlBase struct{}

// CreateElement returns a new ControlElement. The widget and build owner
// are attached by the framework during inflation.
func (ControlBase) CreateElement() Element { return NewControlElement(nil, nil) }

// Key returns nil (no key).
func (ControlBase) Key() any { return nil }

// Stateful creates an inline stateful widget using closures.
// Use this for quick, self-contained UI fragments that don't need
// lifecycle hooks or StateBase features.
//
// The generic parameter is the state type. setState takes a function that
// transforms the current state to a new state.
//
// For complex widgets with many state fields or lifecycle methods, embed
// [StatefulBase] in a named struct instead.
func Stateful[S any](
	init func() S,
	build func(state S, ctx BuildContext, setState func(func(S) S)) Widget,
) Widget {
	return &inlineStatefulWidget[S]{
		initFn:  init,
		buildFn: build,
	}
}

type inlineStatefulWidget[S any] struct {
	initFn  func() S
	buildFn func(state S, ctx BuildContext, setState func(func(S) S)) Widget
}

func (w *inlineStatefulWidget[S]) CreateElement() Element {
	return NewStatefulElement(nil, nil)
}

func (w *inlineStatefulWidget[S]) Key() any { return nil }

func (w *inlineStatefulWidget[S]) CreateState() State {
	return &inlineStatefulState[S]{
		initFn:  w.initFn,
		buildFn: w.buildFn,
	}
}

type inlineStatefulState[S any] struct {
	value   S
	initFn  func() S
	buildFn func(state S, ctx BuildContext, setState func(func(S) S)) Widget
	element *StatefulElement
}

func (s *inlineStatefulState[S]) SetElement(element *StatefulElement) {
	s.element = element
}

func (s *inlineStatefulState[S]) InitState() {
	s.value = s.initFn()
}

func (s *inlineStatefulState[S]) Build(ctx BuildContext) Widget {
	return s.buildFn(s.value, ctx, func(update func(S) S) {
		s.value = update(s.value)
		if s.element != nil {
			s.element.MarkNeedsBuild()
		}
	})
}

func (s *inlineStatefulState[S]) Dispose()                         {}
func (s *inlineStatefulState[S]) DidUpdateWidget(_ StatefulWidget) {}
