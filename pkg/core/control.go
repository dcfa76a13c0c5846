package core

// Widget shape interfaces recognized by ControlElement. A control widget
// exposes its payloads through these accessors; payloads typed any only
// produce child elements when they are themselves widgets.

// SingleChildWidget has exactly one child widget slot.
type SingleChildWidget interface {
	ChildWidget() Widget
}

// MultiChildWidget has an ordered list of child widgets.
type MultiChildWidget interface {
	ChildrenWidgets() []Widget
}

// ContentHolder is a content control: a leaf control carrying one payload
// that may be a widget or a plain value (e.g. a string caption).
type ContentHolder interface {
	ContentPayload() any
}

// HeaderHolder carries a header payload alongside content or items.
type HeaderHolder interface {
	HeaderPayload() any
}

// ItemsHolder is an item-collection control carrying a list of payloads.
type ItemsHolder interface {
	ItemPayloads() []any
}

// ControlElement hosts a concrete control widget and mounts its payload
// slots distinctly, so logical content (content, header, items) can be
// traversed without walking into control internals.
type ControlElement struct {
	elementBase
	children []Element
	content  Element
	header   Element
	items    []Element
}

func NewControlElement(widget Widget, owner *BuildOwner) *ControlElement {
	element := &ControlElement{}
	element.widget = widget
	element.buildOwner = owner
	element.setSelf(element)
	return element
}

func (e *ControlElement) Mount(parent Element, slot any) {
	e.parent = parent
	e.slot = slot
	if parent != nil {
		e.depth = parent.Depth() + 1
	}
	e.mounted = true
	e.dirty = true
	e.RebuildIfNeeded()
}

func (e *ControlElement) Update(newWidget Widget) {
	e.widget = newWidget
	e.MarkNeedsBuild()
	e.RebuildIfNeeded()
}

func (e *ControlElement) Unmount() {
	e.mounted = false
	for _, child := range e.children {
		child.Unmount()
	}
	e.children = nil
	if e.content != nil {
		e.content.Unmount()
		e.content = nil
	}
	if e.header != nil {
		e.header.Unmount()
		e.header = nil
	}
	for _, item := range e.items {
		item.Unmount()
	}
	e.items = nil
}

func (e *ControlElement) RebuildIfNeeded() {
	if !e.dirty || !e.mounted {
		return
	}
	e.dirty = false

	switch typed := e.widget.(type) {
	case SingleChildWidget:
		child := updateChild(e.firstChild(), typed.ChildWidget(), e, e.buildOwner)
		if child != nil {
			e.children = []Element{child}
		} else {
			e.children = nil
		}
	case MultiChildWidget:
		e.children = e.updateChildList(e.children, typed.ChildrenWidgets())
	}

	if holder, ok := e.widget.(ContentHolder); ok {
		e.content = updateChild(e.content, widgetPayload(holder.ContentPayload()), e, e.buildOwner)
	}
	if holder, ok := e.widget.(HeaderHolder); ok {
		e.header = updateChild(e.header, widgetPayload(holder.HeaderPayload()), e, e.buildOwner)
	}
	if holder, ok := e.widget.(ItemsHolder); ok {
		payloads := holder.ItemPayloads()
		widgets := make([]Widget, 0, len(payloads))
		for _, payload := range payloads {
			if w := widgetPayload(payload); w != nil {
				widgets = append(widgets, w)
			}
		}
		e.items = e.updateChildList(e.items, widgets)
	}
}

// updateChildList reconciles an element list against a widget list in order.
func (e *ControlElement) updateChildList(existing []Element, widgets []Widget) []Element {
	updated := make([]Element, 0, len(widgets))
	for index, childWidget := range widgets {
		var current Element
		if index < len(existing) {
			current = existing[index]
		}
		child := updateChild(current, childWidget, e, e.buildOwner)
		if child != nil {
			updated = append(updated, child)
		}
	}
	for i := len(widgets); i < len(existing); i++ {
		existing[i].Unmount()
	}
	if len(updated) == 0 {
		return nil
	}
	return updated
}

func (e *ControlElement) firstChild() Element {
	if len(e.children) > 0 {
		return e.children[0]
	}
	return nil
}

func (e *ControlElement) VisitChildren(visitor func(Element) bool) {
	for _, child := range e.children {
		if !visitor(child) {
			return
		}
	}
	if e.content != nil && !visitor(e.content) {
		return
	}
	if e.header != nil && !visitor(e.header) {
		return
	}
	for _, item := range e.items {
		if !visitor(item) {
			return
		}
	}
}

// ContentElement returns the mounted content payload, or nil when the
// payload is absent or not a tree node.
func (e *ControlElement) ContentElement() Element {
	return e.content
}

// HeaderElement returns the mounted header payload, or nil when the
// payload is absent or not a tree node.
func (e *ControlElement) HeaderElement() Element {
	return e.header
}

// ItemElements returns the mounted item payloads in item order. Payloads
// that are not tree nodes are skipped.
func (e *ControlElement) ItemElements() []Element {
	return e.items
}

// widgetPayload returns payload as a Widget, or nil when the payload is
// a plain value rendered by the control itself.
func widgetPayload(payload any) Widget {
	if w, ok := payload.(Widget); ok {
		return w
	}
	return nil
}
