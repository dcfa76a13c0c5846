package binding

import (
	"fmt"
	"reflect"
)

// MemberOf resolves a reference to a field of the struct target points to
// into its reflect.StructField. target must be a non-nil pointer to a
// struct, or a pointer to such a pointer (a single extra level of
// indirection is unwrapped). ref must point at an exported field of that
// struct, reached directly or through embedded and nested struct fields.
//
// MemberOf panics when target or ref do not have the required shape: the
// call site is a programming error, not a recoverable failure.
//
//	field := binding.MemberOf(&vm, &vm.Username) // StructField for Username
func MemberOf(target any, ref any) reflect.StructField {
	tv := reflect.ValueOf(target)
	if !tv.IsValid() || tv.Kind() != reflect.Pointer || tv.IsNil() {
		panic("binding.MemberOf: target must be a non-nil pointer to a struct")
	}
	sv := tv.Elem()
	if sv.Kind() == reflect.Pointer {
		if sv.IsNil() {
			panic("binding.MemberOf: target points to a nil struct pointer")
		}
		sv = sv.Elem()
	}
	if sv.Kind() != reflect.Struct {
		panic(fmt.Sprintf("binding.MemberOf: target must address a struct, got %s", sv.Kind()))
	}

	rv := reflect.ValueOf(ref)
	if !rv.IsValid() || rv.Kind() != reflect.Pointer || rv.IsNil() {
		panic("binding.MemberOf: ref must be a non-nil pointer to a field of target")
	}

	if field, ok := fieldAt(sv, rv.Pointer(), rv.Type().Elem()); ok {
		return field
	}
	panic(fmt.Sprintf("binding.MemberOf: ref does not address a member of %s", sv.Type()))
}

// fieldAt locates the exported field of sv whose storage starts at addr
// with the given type, recursing through struct-typed fields. An outer
// field is preferred over a nested field at the same address.
func fieldAt(sv reflect.Value, addr uintptr, refType reflect.Type) (reflect.StructField, bool) {
	t := sv.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		value := sv.Field(i)
		if !value.CanAddr() {
			continue
		}
		if value.Addr().Pointer() == addr && field.Type == refType && field.PkgPath == "" {
			return field, true
		}
		if value.Kind() == reflect.Struct {
			if inner, ok := fieldAt(value, addr, refType); ok {
				return inner, true
			}
		}
	}
	return reflect.StructField{}, false
}
