package widgets

import (
	"github.com/rivet-ui/rivet/pkg/core"
)

// ListView is an item-collection control.
//
// Items and Header may mix plain values and widgets. Widget payloads are
// mounted into the tree in item order; plain values are rendered by the
// control itself.
type ListView struct {
	core.ControlBase
	// Name optionally names the element for convention binding.
	Name string
	// Header is an optional header payload shown above the items.
	Header any
	// Items are the item payloads, in order.
	Items []any
	// SelectedIndex is the index of the currently selected item. The zero
	// value marks the first item selected; use -1 for no selection.
	SelectedIndex int
	// OnSelect is called with the item index on selection.
	OnSelect func(index int)
}

// WidgetName returns the element name.
func (l ListView) WidgetName() string {
	return l.Name
}

// HeaderPayload returns the header payload.
func (l ListView) HeaderPayload() any {
	return l.Header
}

// ItemPayloads returns the item payloads.
func (l ListView) ItemPayloads() []any {
	return l.Items
}

// Select notifies OnSelect for a valid index. Reselecting the current
// SelectedIndex is a no-op.
func (l ListView) Select(index int) {
	if index < 0 || index >= len(l.Items) || index == l.SelectedIndex {
		return
	}
	if l.OnSelect != nil {
		l.OnSelect(index)
	}
}
