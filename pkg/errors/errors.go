// Package errors provides structured error handling for the Rivet framework.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates a configuration loading or parsing error.
	KindConfig
	// KindBind indicates a convention-binding failure.
	KindBind
	// KindBuild indicates a build-time widget error.
	KindBuild
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindBind:
		return "bind"
	case KindBuild:
		return "build"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// RivetError represents a structured error in the Rivet framework.
type RivetError struct {
	// Op is the operation that failed (e.g., "binding.Binder.Bind").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Element is the name of the UI element involved, if applicable.
	Element string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *RivetError) Error() string {
	if e.Element != "" {
		return fmt.Sprintf("%s [%s] element=%s: %v", e.Op, e.Kind, e.Element, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *RivetError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "binding.MemberOf").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// BindError represents a failure to bind a named element to a view model member.
type BindError struct {
	// Element is the name of the element that failed to bind.
	Element string
	// Member is the view model member involved, if resolved.
	Member string
	// ViewModel is the type name of the view model.
	ViewModel string
	// Err is the underlying error.
	Err error
}

func (e *BindError) Error() string {
	if e.Member != "" {
		return fmt.Sprintf("failed to bind element %q to %s.%s: %v", e.Element, e.ViewModel, e.Member, e.Err)
	}
	return fmt.Sprintf("failed to bind element %q on %s: %v", e.Element, e.ViewModel, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}

// BuildError represents a failure during widget build.
type BuildError struct {
	// Widget is the type name of the widget that failed.
	Widget string
	// Element is the element type (StatelessElement, StatefulElement, etc.).
	Element string
	// Recovered is the panic value (nil for regular errors).
	Recovered any
	// Err is the underlying error (nil for panics).
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *BuildError) Error() string {
	if e.Recovered != nil {
		return fmt.Sprintf("panic in %s.Build(): %v", e.Widget, e.Recovered)
	}
	if e.Err != nil {
		return fmt.Sprintf("error in %s.Build(): %v", e.Widget, e.Err)
	}
	return fmt.Sprintf("unknown error in %s.Build()", e.Widget)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives errors reported by the Rivet framework.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *RivetError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
	// HandleBuildError is called when a widget build fails.
	HandleBuildError(err *BuildError)
}
