package widgets

import (
	"github.com/rivet-ui/rivet/pkg/core"
)

// TextField is a single-line text input.
type TextField struct {
	core.ControlBase
	// Name optionally names the element for convention binding.
	Name string
	// Text is the current input value.
	Text string
	// Placeholder is shown while Text is empty.
	Placeholder string
	// OnChanged is called with the new value after each edit.
	OnChanged func(text string)
}

// WidgetName returns the element name.
func (t TextField) WidgetName() string {
	return t.Name
}

// EnterText simulates an edit, notifying OnChanged.
func (t TextField) EnterText(text string) {
	if t.OnChanged != nil {
		t.OnChanged(text)
	}
}
