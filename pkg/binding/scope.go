package binding

import (
	"strings"

	"github.com/rivet-ui/rivet/pkg/core"
)

// ScopeRoot returns the element bounding start's binding scope: start
// itself when it hosts a boundary container, otherwise the nearest
// boundary ancestor, otherwise the tree root. Returns nil only for a nil
// start.
func ScopeRoot(start core.Element) core.Element {
	if start == nil {
		return nil
	}
	if core.IsBoundary(start) {
		return start
	}
	if boundary := start.FindAncestor(core.IsBoundary); boundary != nil {
		return boundary
	}
	root := start
	for {
		parent := root.FindAncestor(func(core.Element) bool { return true })
		if parent == nil {
			return root
		}
		root = parent
	}
}

// NamedDescendants collects every element in start's binding scope that
// has a non-empty name, in breadth-first order from the scope root.
//
// Traversal descends into element children; for content controls it
// descends into the mounted content and header payloads; for
// item-collection controls it descends into each item and the header.
// Nested boundary containers are visited (and collected when named) but
// never descended into.
func NamedDescendants(start core.Element) []core.Element {
	root := ScopeRoot(start)
	if root == nil {
		return nil
	}

	var named []core.Element
	queue := []core.Element{root}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if core.NameOf(current) != "" {
			named = append(named, current)
		}
		if current != root && core.IsBoundary(current) {
			continue
		}

		if control, ok := current.(*core.ControlElement); ok {
			widget := current.Widget()
			if _, ok := widget.(core.ItemsHolder); ok {
				queue = append(queue, control.ItemElements()...)
				if header := control.HeaderElement(); header != nil {
					queue = append(queue, header)
				}
				continue
			}
			if isContentControl(widget) {
				if content := control.ContentElement(); content != nil {
					queue = append(queue, content)
				}
				if header := control.HeaderElement(); header != nil {
					queue = append(queue, header)
				}
				continue
			}
		}

		current.VisitChildren(func(child core.Element) bool {
			queue = append(queue, child)
			return true
		})
	}
	return named
}

// FindNamed returns the first element whose name equals name ignoring
// case, or false when no element matches. The empty name never matches.
func FindNamed(elements []core.Element, name string) (core.Element, bool) {
	if name == "" {
		return nil, false
	}
	for _, element := range elements {
		if strings.EqualFold(core.NameOf(element), name) {
			return element, true
		}
	}
	return nil, false
}

// isContentControl reports whether w is a leaf control carrying content
// or header payloads rather than plain children.
func isContentControl(w core.Widget) bool {
	if _, ok := w.(core.ContentHolder); ok {
		return true
	}
	_, ok := w.(core.HeaderHolder)
	return ok
}
