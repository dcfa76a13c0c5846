package binding

import (
	"reflect"
	"strings"
)

// Attributes returns every directive of the requested tag key present on
// the field's tag, splitting comma-separated lists. The result is empty
// when the key is absent.
//
//	type LoginViewModel struct {
//	    Password string `bind:"name=Secret,-"`
//	}
//
//	binding.Attributes(field, "bind") // ["name=Secret", "-"]
func Attributes(field reflect.StructField, key string) []string {
	value, ok := field.Tag.Lookup(key)
	if !ok || value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	directives := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			directives = append(directives, part)
		}
	}
	return directives
}

// FieldAttributes finds the named exported field on struct type t (or a
// pointer to one) and returns its directives for key. When inherit is
// true, fields promoted from embedded structs are searched as well;
// otherwise only fields declared directly on t match. The result is empty
// on any miss.
func FieldAttributes(t reflect.Type, name, key string, inherit bool) []string {
	if t == nil || name == "" {
		return nil
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	field, ok := t.FieldByName(name)
	if !ok || field.PkgPath != "" {
		return nil
	}
	// A promoted field has a multi-step index path.
	if !inherit && len(field.Index) > 1 {
		return nil
	}
	return Attributes(field, key)
}

// HasAttribute reports whether the field carries the exact directive under
// the requested tag key.
func HasAttribute(field reflect.StructField, key, directive string) bool {
	for _, candidate := range Attributes(field, key) {
		if candidate == directive {
			return true
		}
	}
	return false
}
