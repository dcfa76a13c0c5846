package errors

import (
	"errors"
	"testing"
	"time"
)

func TestRivetErrorString(t *testing.T) {
	err := &RivetError{
		Op:   "test.operation",
		Kind: KindConfig,
		Err:  errors.New("bad yaml"),
	}
	got := err.Error()
	if got == "" {
		t.Error("expected non-empty error string")
	}
	if !contains(got, "[config]") {
		t.Errorf("error string %q should contain kind", got)
	}
}

func TestRivetErrorWithElement(t *testing.T) {
	err := &RivetError{
		Op:      "binding.Binder.Bind",
		Kind:    KindBind,
		Element: "Username",
		Err:     errors.New("no such field"),
	}
	got := err.Error()
	want := "element=Username"
	if !contains(got, want) {
		t.Errorf("error string %q should contain %q", got, want)
	}
}

func TestRivetErrorUnwrap(t *testing.T) {
	inner := errors.New("inner")
	err := &RivetError{Op: "op", Kind: KindBind, Err: inner}
	if !errors.Is(err, inner) {
		t.Error("RivetError should unwrap to its cause")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindConfig, "config"},
		{KindBind, "bind"},
		{KindBuild, "build"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	got := err.Error()
	want := "panic: test panic"
	if got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestPanicErrorStringWithOp(t *testing.T) {
	err := &PanicError{
		Op:        "binding.MemberOf",
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	got := err.Error()
	want := "panic in binding.MemberOf: test panic"
	if got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestBindErrorString(t *testing.T) {
	err := &BindError{
		Element:   "Username",
		Member:    "Username",
		ViewModel: "main.LoginViewModel",
		Err:       errors.New("cannot bind int to string"),
	}
	got := err.Error()
	if !contains(got, `"Username"`) || !contains(got, "main.LoginViewModel.Username") {
		t.Errorf("BindError.Error() = %q, should name element and member", got)
	}

	unresolved := &BindError{
		Element:   "Username",
		ViewModel: "main.LoginViewModel",
		Err:       errors.New("no member"),
	}
	got2 := unresolved.Error()
	if !contains(got2, "on main.LoginViewModel") {
		t.Errorf("BindError.Error() = %q, should fall back to view model form", got2)
	}
}

func TestReport(t *testing.T) {
	var capturedErr *RivetError
	handler := &testHandler{
		onError: func(err *RivetError) {
			capturedErr = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(&RivetError{
		Op:   "test.op",
		Kind: KindConfig,
		Err:  errors.New("test"),
	})

	if capturedErr == nil {
		t.Error("expected error to be captured")
	}
	if capturedErr.Op != "test.op" {
		t.Errorf("Op = %q, want %q", capturedErr.Op, "test.op")
	}
	if capturedErr.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestReportPanic(t *testing.T) {
	var capturedPanic *PanicError
	handler := &testHandler{
		onPanic: func(err *PanicError) {
			capturedPanic = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	ReportPanic(&PanicError{
		Value:     "test panic value",
		Timestamp: time.Now(),
	})

	if capturedPanic == nil {
		t.Error("expected panic to be captured")
	}
	if capturedPanic.Value != "test panic value" {
		t.Errorf("Value = %v, want %q", capturedPanic.Value, "test panic value")
	}
}

func TestRecover(t *testing.T) {
	var capturedPanic *PanicError
	handler := &testHandler{
		onPanic: func(err *PanicError) {
			capturedPanic = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if capturedPanic == nil {
		t.Error("expected panic to be recovered and captured")
	}
	if capturedPanic.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", capturedPanic.Value, "intentional test panic")
	}
	if capturedPanic.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", capturedPanic.Op, "test.recover")
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if stack == "" {
		t.Error("expected non-empty stack trace")
	}
	if !contains(stack, "testing") && !contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	SetHandler(nil)
	if DefaultHandler == nil {
		t.Error("SetHandler(nil) should set default LogHandler, not nil")
	}
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

func TestBuildErrorString(t *testing.T) {
	err := &BuildError{
		Widget:    "widgets.View",
		Element:   "*core.ControlElement",
		Recovered: "nil pointer dereference",
		Timestamp: time.Now(),
	}
	got := err.Error()
	want := "panic in widgets.View.Build(): nil pointer dereference"
	if got != want {
		t.Errorf("BuildError.Error() = %q, want %q", got, want)
	}

	err2 := &BuildError{
		Widget:  "widgets.View",
		Element: "*core.ControlElement",
		Err:     errors.New("missing child"),
	}
	got2 := err2.Error()
	if !contains(got2, "error in widgets.View.Build()") {
		t.Errorf("BuildError.Error() = %q, should contain 'error in'", got2)
	}

	err3 := &BuildError{
		Widget:  "widgets.View",
		Element: "*core.ControlElement",
	}
	got3 := err3.Error()
	want3 := "unknown error in widgets.View.Build()"
	if got3 != want3 {
		t.Errorf("BuildError.Error() = %q, want %q", got3, want3)
	}
}

func TestReportBuildError(t *testing.T) {
	var capturedErr *BuildError
	handler := &testHandler{
		onBuildError: func(err *BuildError) {
			capturedErr = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	ReportBuildError(&BuildError{
		Widget:    "widgets.Text",
		Element:   "*core.ControlElement",
		Recovered: "test panic",
	})

	if capturedErr == nil {
		t.Error("expected build error to be captured")
	}
	if capturedErr.Widget != "widgets.Text" {
		t.Errorf("Widget = %q, want %q", capturedErr.Widget, "widgets.Text")
	}
	if capturedErr.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

type testHandler struct {
	onError      func(*RivetError)
	onPanic      func(*PanicError)
	onBuildError func(*BuildError)
}

func (h *testHandler) HandleError(err *RivetError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}

func (h *testHandler) HandleBuildError(err *BuildError) {
	if h.onBuildError != nil {
		h.onBuildError(err)
	}
}

func contains(s, substr string) bool {
	return len(s) >= len(substr) && (s == substr || len(s) > 0 && containsAt(s, substr, 0))
}

func containsAt(s, substr string, start int) bool {
	for i := start; i <= len(s)-len(substr); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
