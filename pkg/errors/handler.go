package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"
)

// DefaultHandler is the global error handler. It is a non-verbose
// LogHandler unless replaced through SetHandler.
var DefaultHandler ErrorHandler = &LogHandler{}

var handlerMu sync.RWMutex

// SetHandler replaces the global error handler. Passing nil restores the
// default LogHandler.
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	handlerMu.Lock()
	DefaultHandler = h
	handlerMu.Unlock()
}

// dispatch runs fn against the current handler, if any.
func dispatch(fn func(ErrorHandler)) {
	handlerMu.RLock()
	h := DefaultHandler
	handlerMu.RUnlock()
	if h != nil {
		fn(h)
	}
}

// Report delivers err to the global handler. A zero Timestamp is stamped
// with the current time.
func Report(err *RivetError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	dispatch(func(h ErrorHandler) { h.HandleError(err) })
}

// ReportPanic delivers a recovered panic to the global handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	dispatch(func(h ErrorHandler) { h.HandlePanic(err) })
}

// ReportBuildError delivers a build failure to the global handler. A zero
// Timestamp is stamped with the current time.
func ReportBuildError(err *BuildError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	dispatch(func(h ErrorHandler) { h.HandleBuildError(err) })
}

// Recover reports a panic in a deferred call instead of crashing.
// Usage: defer errors.Recover("binding.Binder.Bind")
func Recover(op string) {
	r := recover()
	if r == nil {
		return
	}
	ReportPanic(&PanicError{
		Op:         op,
		Value:      r,
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	})
}

// CaptureStack formats the calling goroutine's stack, omitting the
// reporting frames themselves.
func CaptureStack() string {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(3, pcs)
	if n == 0 {
		return ""
	}

	var sb strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}
	return sb.String()
}
