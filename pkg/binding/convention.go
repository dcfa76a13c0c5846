package binding

import (
	"reflect"
	"sync"

	"github.com/rivet-ui/rivet/pkg/core"
	"github.com/rivet-ui/rivet/pkg/widgets"
)

// Convention describes how a control participates in binding.
type Convention struct {
	// Property is the widget field receiving the bound value.
	Property string
	// Trigger is the widget callback field wired to a view-model method.
	Trigger string
	// Observe is the widget callback field that reports edits back into
	// the view-model field (two-way binding).
	Observe string
}

var (
	conventionMu    sync.RWMutex
	conventions     = map[reflect.Type]Convention{}
	conventionNames = map[string]reflect.Type{}
)

// Register associates a convention with the widget's concrete type,
// replacing any previous registration. Custom controls register here to
// take part in convention binding.
func Register(widget core.Widget, convention Convention) {
	t := reflect.TypeOf(widget)
	conventionMu.Lock()
	defer conventionMu.Unlock()
	conventions[t] = convention
	conventionNames[t.Name()] = t
}

// For returns the convention registered for w's concrete type.
func For(w core.Widget) (Convention, bool) {
	if w == nil {
		return Convention{}, false
	}
	conventionMu.RLock()
	defer conventionMu.RUnlock()
	convention, ok := conventions[reflect.TypeOf(w)]
	return convention, ok
}

// Override merges non-empty fields of convention into the registration
// under the widget type's short name (e.g. "TextField"). It reports
// whether a registered type matched.
func Override(typeName string, convention Convention) bool {
	conventionMu.Lock()
	defer conventionMu.Unlock()
	t, ok := conventionNames[typeName]
	if !ok {
		return false
	}
	merged := conventions[t]
	if convention.Property != "" {
		merged.Property = convention.Property
	}
	if convention.Trigger != "" {
		merged.Trigger = convention.Trigger
	}
	if convention.Observe != "" {
		merged.Observe = convention.Observe
	}
	conventions[t] = merged
	return true
}

// RegisteredConventions returns a snapshot of the registry keyed by the
// widget type's short name.
func RegisteredConventions() map[string]Convention {
	conventionMu.RLock()
	defer conventionMu.RUnlock()
	snapshot := make(map[string]Convention, len(conventionNames))
	for name, t := range conventionNames {
		snapshot[name] = conventions[t]
	}
	return snapshot
}

func init() {
	Register(widgets.Text{}, Convention{Property: "Content"})
	Register(widgets.TextField{}, Convention{Property: "Text", Observe: "OnChanged"})
	Register(widgets.Button{}, Convention{Property: "Content", Trigger: "OnTap"})
	Register(widgets.Checkbox{}, Convention{Property: "Checked", Observe: "OnToggled"})
	Register(widgets.Expander{}, Convention{Property: "Expanded", Observe: "OnToggled"})
	Register(widgets.ListView{}, Convention{Property: "Items", Trigger: "OnSelect"})
}
