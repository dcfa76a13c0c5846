package core

import (
	"testing"

	"github.com/rivet-ui/rivet/pkg/errors"
)

type testLeaf struct {
	ControlBase
	Label string
}

type testStateless struct {
	StatelessBase
	Child Widget
}

func (w testStateless) Build(ctx BuildContext) Widget {
	return w.Child
}

type testKeyed struct {
	ControlBase
	ID any
}

func (w testKeyed) Key() any { return w.ID }

type testStateful struct {
	StatefulBase
	Label string
	Log   *[]string
}

func (w testStateful) CreateState() State {
	return &testState{log: w.Log}
}

type testState struct {
	StateBase
	log   *[]string
	count int
}

func (s *testState) InitState() {
	*s.log = append(*s.log, "init")
}

func (s *testState) Build(ctx BuildContext) Widget {
	*s.log = append(*s.log, "build")
	return testLeaf{Label: ctx.Widget().(testStateful).Label}
}

func (s *testState) DidUpdateWidget(oldWidget StatefulWidget) {
	*s.log = append(*s.log, "update:"+oldWidget.(testStateful).Label)
}

func (s *testState) Dispose() {
	*s.log = append(*s.log, "dispose")
	s.StateBase.Dispose()
}

func mountWidget(t *testing.T, widget Widget) (Element, *BuildOwner) {
	t.Helper()
	owner := NewBuildOwner()
	element := Inflate(widget, owner)
	if element == nil {
		t.Fatal("Inflate returned nil")
	}
	element.Mount(nil, nil)
	t.Cleanup(element.Unmount)
	return element, owner
}

func onlyChild(t *testing.T, element Element) Element {
	t.Helper()
	var children []Element
	element.VisitChildren(func(child Element) bool {
		children = append(children, child)
		return true
	})
	if len(children) != 1 {
		t.Fatalf("got %d children, want 1", len(children))
	}
	return children[0]
}

func TestStatelessMountBuildsChild(t *testing.T) {
	element, _ := mountWidget(t, testStateless{Child: testLeaf{Label: "a"}})

	child := onlyChild(t, element)
	if got := child.Widget().(testLeaf).Label; got != "a" {
		t.Errorf("child label = %q, want %q", got, "a")
	}
	if child.Depth() != element.Depth()+1 {
		t.Errorf("child depth = %d, want %d", child.Depth(), element.Depth()+1)
	}
}

func TestStatelessUpdateReusesChild(t *testing.T) {
	element, _ := mountWidget(t, testStateless{Child: testLeaf{Label: "a"}})
	before := onlyChild(t, element)

	element.Update(testStateless{Child: testLeaf{Label: "b"}})

	after := onlyChild(t, element)
	if after != before {
		t.Error("same widget type should update the existing element")
	}
	if got := after.Widget().(testLeaf).Label; got != "b" {
		t.Errorf("child label = %q after update, want %q", got, "b")
	}
}

func TestStatelessUpdateReplacesOnTypeChange(t *testing.T) {
	element, _ := mountWidget(t, testStateless{Child: testLeaf{}})
	before := onlyChild(t, element)

	element.Update(testStateless{Child: testStateless{Child: testLeaf{}}})

	after := onlyChild(t, element)
	if after == before {
		t.Error("type change should inflate a fresh element")
	}
}

func TestStatelessBuildNilUnmountsChild(t *testing.T) {
	element, _ := mountWidget(t, testStateless{Child: testLeaf{}})
	onlyChild(t, element)

	element.Update(testStateless{Child: nil})

	count := 0
	element.VisitChildren(func(Element) bool { count++; return true })
	if count != 0 {
		t.Errorf("got %d children after nil build, want 0", count)
	}
}

func TestStatefulLifecycle(t *testing.T) {
	var log []string
	owner := NewBuildOwner()
	element := Inflate(testStateful{Label: "a", Log: &log}, owner)
	element.Mount(nil, nil)

	element.Update(testStateful{Label: "b", Log: &log})
	element.Unmount()

	want := []string{"init", "build", "update:a", "build", "dispose"}
	if len(log) != len(want) {
		t.Fatalf("lifecycle = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("lifecycle = %v, want %v", log, want)
		}
	}
}

func TestSetStateSchedulesRebuild(t *testing.T) {
	var log []string
	element, owner := mountWidget(t, testStateful{Label: "a", Log: &log})

	state := element.(*StatefulElement).State().(*testState)
	state.SetState(func() { state.count++ })

	if !owner.NeedsBuild() {
		t.Fatal("SetState did not schedule a rebuild")
	}
	builds := 0
	for _, entry := range log {
		if entry == "build" {
			builds++
		}
	}
	if builds != 1 {
		t.Fatalf("built %d times before flush, want 1", builds)
	}

	owner.FlushBuild()
	builds = 0
	for _, entry := range log {
		if entry == "build" {
			builds++
		}
	}
	if builds != 2 {
		t.Errorf("built %d times after flush, want 2", builds)
	}
}

func TestCanUpdateWidget(t *testing.T) {
	tests := []struct {
		name     string
		existing Widget
		next     Widget
		want     bool
	}{
		{"same type unkeyed", testLeaf{Label: "a"}, testLeaf{Label: "b"}, true},
		{"different type", testLeaf{}, testKeyed{}, false},
		{"matching keys", testKeyed{ID: 1}, testKeyed{ID: 1}, true},
		{"mismatched keys", testKeyed{ID: 1}, testKeyed{ID: 2}, false},
		{"nil existing", nil, testLeaf{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := canUpdateWidget(tt.existing, tt.next); got != tt.want {
				t.Errorf("canUpdateWidget = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInflateNil(t *testing.T) {
	if Inflate(nil, NewBuildOwner()) != nil {
		t.Error("Inflate(nil) should be nil")
	}
}

type buildErrorRecorder struct {
	errors.LogHandler
	recorded []*errors.BuildError
}

func (h *buildErrorRecorder) HandleBuildError(err *errors.BuildError) {
	h.recorded = append(h.recorded, err)
}

type panickyWidget struct {
	StatelessBase
}

func (panickyWidget) Build(ctx BuildContext) Widget {
	panic("boom")
}

func TestBuildPanicIsRecovered(t *testing.T) {
	handler := &buildErrorRecorder{}
	errors.SetHandler(handler)
	t.Cleanup(func() { errors.SetHandler(nil) })

	element, _ := mountWidget(t, panickyWidget{})

	if len(handler.recorded) != 1 {
		t.Fatalf("recorded %d build errors, want 1", len(handler.recorded))
	}
	if got := handler.recorded[0].Recovered; got != "boom" {
		t.Errorf("recovered value = %v, want boom", got)
	}
	count := 0
	element.VisitChildren(func(Element) bool { count++; return true })
	if count != 0 {
		t.Errorf("panicking build mounted %d children, want 0", count)
	}
}

type testNamed struct {
	ControlBase
	Name string
}

func (w testNamed) WidgetName() string { return w.Name }

type testBoundary struct {
	ControlBase
	Bounded bool
}

func (w testBoundary) IsScopeBoundary() bool { return w.Bounded }

func TestNameOf(t *testing.T) {
	owner := NewBuildOwner()
	named := Inflate(testNamed{Name: "Title"}, owner)
	unnamed := Inflate(testLeaf{}, owner)

	if got := NameOf(named); got != "Title" {
		t.Errorf("NameOf(named) = %q, want Title", got)
	}
	if got := NameOf(unnamed); got != "" {
		t.Errorf("NameOf(unnamed) = %q, want empty", got)
	}
	if got := NameOf(nil); got != "" {
		t.Errorf("NameOf(nil) = %q, want empty", got)
	}
}

func TestIsBoundary(t *testing.T) {
	owner := NewBuildOwner()
	if !IsBoundary(Inflate(testBoundary{Bounded: true}, owner)) {
		t.Error("bounded widget should be a boundary")
	}
	if IsBoundary(Inflate(testBoundary{Bounded: false}, owner)) {
		t.Error("unbounded widget should not be a boundary")
	}
	if IsBoundary(Inflate(testLeaf{}, owner)) {
		t.Error("plain widget should not be a boundary")
	}
	if IsBoundary(nil) {
		t.Error("nil element should not be a boundary")
	}
}

func TestFindAncestor(t *testing.T) {
	element, _ := mountWidget(t, testStateless{
		Child: testStateless{Child: testLeaf{Label: "leaf"}},
	})

	leaf := onlyChild(t, onlyChild(t, element))
	found := leaf.FindAncestor(func(e Element) bool {
		return e.Depth() == 0
	})
	if found != element {
		t.Error("FindAncestor did not reach the root")
	}
	if leaf.FindAncestor(func(Element) bool { return false }) != nil {
		t.Error("unsatisfiable predicate should return nil")
	}
}
