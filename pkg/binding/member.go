package binding

import (
	"reflect"
	"strings"
)

type memberKind int

const (
	memberNone memberKind = iota
	memberField
	memberMethod
)

// Member is a bindable property of a view-model type: an exported struct
// field or an exported method.
type Member struct {
	field  reflect.StructField
	method reflect.Method
	kind   memberKind
}

// IsValid reports whether the member refers to a field or method.
func (m Member) IsValid() bool {
	return m.kind != memberNone
}

// IsMethod reports whether the member is a method.
func (m Member) IsMethod() bool {
	return m.kind == memberMethod
}

// Name returns the declared member name.
func (m Member) Name() string {
	switch m.kind {
	case memberField:
		return m.field.Name
	case memberMethod:
		return m.method.Name
	default:
		return ""
	}
}

// Type returns the field type, or the func type for methods.
func (m Member) Type() reflect.Type {
	switch m.kind {
	case memberField:
		return m.field.Type
	case memberMethod:
		return m.method.Type
	default:
		return nil
	}
}

// Field returns the struct field. Only meaningful when !IsMethod().
func (m Member) Field() reflect.StructField {
	return m.field
}

// Method returns the method. Only meaningful when IsMethod().
func (m Member) Method() reflect.Method {
	return m.method
}

func fieldMember(f reflect.StructField) Member {
	return Member{field: f, kind: memberField}
}

func methodMember(m reflect.Method) Member {
	return Member{method: m, kind: memberMethod}
}

// PropertyOptions adjusts Property lookup.
type PropertyOptions struct {
	// PointerReceiver also searches the pointer method set of struct
	// types, which includes methods declared on *T. It has no effect on
	// interface types or when t is already a pointer.
	PointerReceiver bool
}

// Property returns the first exported member of t whose name matches name
// ignoring case, or false when none matches.
//
// For struct types (or pointers to them), fields are searched first,
// promoted fields included, then the method set. For interface types the
// method set is searched; in Go that set already flattens every embedded
// interface, so extended interfaces are covered. Lookup misses are not
// errors.
func Property(t reflect.Type, name string) (Member, bool) {
	return PropertyWithOptions(t, name, PropertyOptions{})
}

// PropertyWithOptions is Property with explicit options.
func PropertyWithOptions(t reflect.Type, name string, opts PropertyOptions) (Member, bool) {
	if t == nil || name == "" {
		return Member{}, false
	}

	if t.Kind() == reflect.Interface {
		return methodNamed(t, name)
	}

	methodSurface := t
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	} else if opts.PointerReceiver {
		methodSurface = reflect.PointerTo(t)
	}
	if t.Kind() != reflect.Struct {
		return methodNamed(methodSurface, name)
	}

	if field, ok := t.FieldByNameFunc(func(candidate string) bool {
		return strings.EqualFold(candidate, name)
	}); ok && field.PkgPath == "" {
		return fieldMember(field), true
	}
	return methodNamed(methodSurface, name)
}

// methodNamed scans t's method set for an exported method matching name
// ignoring case.
func methodNamed(t reflect.Type, name string) (Member, bool) {
	for i := 0; i < t.NumMethod(); i++ {
		method := t.Method(i)
		if method.PkgPath != "" {
			continue
		}
		if strings.EqualFold(method.Name, name) {
			return methodMember(method), true
		}
	}
	return Member{}, false
}
