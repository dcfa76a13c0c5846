package binding

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/rivet-ui/rivet/pkg/core"
	"github.com/rivet-ui/rivet/pkg/errors"
)

// Binding pairs a named element with the view-model member it resolved to.
type Binding struct {
	// Element is the bound named element.
	Element core.Element
	// Name is the element name the member was resolved from.
	Name string
	// Member is the view-model field or method.
	Member Member
	// Convention is the widget convention the binding follows.
	Convention Convention
}

// Binder applies convention bindings between a view scope and a view model.
//
// Bind resolves every named element in the scope against the view model's
// exported members, ignoring case, and pushes initial values. Elements
// whose name matches no member, or whose widget has no registered
// convention, are skipped silently; resolved bindings that cannot be
// applied (type mismatches, missing widget fields) are reported through
// the errors package and skipped.
type Binder struct {
	vm reflect.Value
}

// NewBinder creates a binder for the given view model. A non-pointer view
// model is copied to addressable storage; two-way bindings then mutate the
// copy, so pass a pointer for shared state.
func NewBinder(viewModel any) *Binder {
	vm := reflect.ValueOf(viewModel)
	if vm.IsValid() && vm.Kind() != reflect.Pointer {
		ptr := reflect.New(vm.Type())
		ptr.Elem().Set(vm)
		vm = ptr
	}
	return &Binder{vm: vm}
}

// ViewModel returns the bound view model as a pointer value.
func (b *Binder) ViewModel() any {
	if !b.vm.IsValid() {
		return nil
	}
	return b.vm.Interface()
}

// Bind walks start's binding scope and binds its named elements.
func (b *Binder) Bind(start core.Element) []Binding {
	if start == nil || !b.vm.IsValid() || b.vm.IsNil() {
		return nil
	}

	var bindings []Binding
	for _, element := range NamedDescendants(start) {
		name := core.NameOf(element)
		member, ok := b.resolveMember(name)
		if !ok {
			continue
		}
		convention, ok := For(element.Widget())
		if !ok {
			continue
		}
		binding := Binding{Element: element, Name: name, Member: member, Convention: convention}
		if err := b.applyBinding(binding); err != nil {
			errors.Report(&errors.RivetError{
				Op:      "binding.Binder.Bind",
				Kind:    errors.KindBind,
				Element: name,
				Err: &errors.BindError{
					Element:   name,
					Member:    member.Name(),
					ViewModel: b.vm.Type().Elem().String(),
					Err:       err,
				},
			})
			continue
		}
		bindings = append(bindings, binding)
	}
	return bindings
}

// Refresh re-pushes view-model values into previously bound elements.
// Call it after mutating the view model outside of two-way bindings.
func (b *Binder) Refresh(bindings []Binding) {
	Apply(bindings, func(binding Binding) {
		if err := b.applyBinding(binding); err != nil {
			errors.Report(&errors.RivetError{
				Op:      "binding.Binder.Refresh",
				Kind:    errors.KindBind,
				Element: binding.Name,
				Err:     err,
			})
		}
	})
}

// resolveMember maps an element name to a view-model member. A `bind` tag
// directive name=<element> renames a field, promoted fields included; the
// directive "-" excludes a field outright, renamed or not.
func (b *Binder) resolveMember(name string) (Member, bool) {
	base := b.vm.Type().Elem()
	if base.Kind() == reflect.Struct {
		for _, field := range reflect.VisibleFields(base) {
			if field.PkgPath != "" || field.Anonymous {
				continue
			}
			if HasAttribute(field, "bind", "-") {
				continue
			}
			for _, directive := range Attributes(field, "bind") {
				if alias, ok := strings.CutPrefix(directive, "name="); ok && strings.EqualFold(alias, name) {
					return fieldMember(field), true
				}
			}
		}
	}

	member, ok := Property(b.vm.Type(), name)
	if !ok {
		return Member{}, false
	}
	if !member.IsMethod() && HasAttribute(member.Field(), "bind", "-") {
		return Member{}, false
	}
	return member, true
}

// applyBinding pushes the member into the element's widget according to
// the convention and updates the element in place.
func (b *Binder) applyBinding(binding Binding) error {
	widget := binding.Element.Widget()
	wv := reflect.New(reflect.TypeOf(widget)).Elem()
	wv.Set(reflect.ValueOf(widget))

	member := binding.Member
	if member.IsMethod() {
		if err := b.applyMethod(binding, wv); err != nil {
			return err
		}
	} else {
		if err := b.applyField(binding, wv); err != nil {
			return err
		}
	}

	updated, ok := wv.Interface().(core.Widget)
	if !ok {
		return fmt.Errorf("widget type %T lost its Widget interface", widget)
	}
	binding.Element.Update(updated)
	return nil
}

// applyMethod wires a view-model method: to the trigger callback when the
// convention has one, otherwise as a computed value for the property.
func (b *Binder) applyMethod(binding Binding, wv reflect.Value) error {
	method := b.vm.Method(binding.Member.Method().Index)

	if trigger := binding.Convention.Trigger; trigger != "" {
		callback := wv.FieldByName(trigger)
		if !callback.IsValid() || callback.Kind() != reflect.Func {
			return fmt.Errorf("widget %s has no callback field %q", wv.Type(), trigger)
		}
		fn, err := adaptTrigger(callback.Type(), method, binding.Member.Name())
		if err != nil {
			return err
		}
		callback.Set(fn)
		return nil
	}

	if property := binding.Convention.Property; property != "" {
		mt := method.Type()
		if mt.NumIn() != 0 || mt.NumOut() != 1 {
			return fmt.Errorf("method %s is not a niladic getter", binding.Member.Name())
		}
		return setProperty(wv, property, method.Call(nil)[0])
	}

	return fmt.Errorf("widget %s has no trigger or property convention for method %s",
		wv.Type(), binding.Member.Name())
}

// applyField pushes a view-model field into the property and, when the
// convention observes edits, wires the write-back callback.
func (b *Binder) applyField(binding Binding, wv reflect.Value) error {
	if binding.Convention.Property == "" {
		return fmt.Errorf("widget %s has no property convention", wv.Type())
	}
	source := b.vm.Elem().FieldByIndex(binding.Member.Field().Index)
	if err := setProperty(wv, binding.Convention.Property, source); err != nil {
		return err
	}

	if observe := binding.Convention.Observe; observe != "" {
		callback := wv.FieldByName(observe)
		if callback.IsValid() && callback.Kind() == reflect.Func {
			fn, err := adaptObserver(callback.Type(), source)
			if err != nil {
				return err
			}
			callback.Set(fn)
		}
	}
	return nil
}

// setProperty assigns value to the named widget field, converting where a
// safe conversion exists.
func setProperty(wv reflect.Value, property string, value reflect.Value) error {
	field := wv.FieldByName(property)
	if !field.IsValid() {
		return fmt.Errorf("widget %s has no field %q", wv.Type(), property)
	}
	converted, err := convertValue(value, field.Type())
	if err != nil {
		return err
	}
	field.Set(converted)
	return nil
}

// adaptTrigger adapts a view-model method to a widget callback type.
// A method with a matching signature is used directly; a niladic method
// is wrapped, dropping the callback's arguments.
func adaptTrigger(callbackType reflect.Type, method reflect.Value, name string) (reflect.Value, error) {
	mt := method.Type()
	if mt.AssignableTo(callbackType) {
		return method, nil
	}
	if mt.NumIn() == 0 {
		wrapper := reflect.MakeFunc(callbackType, func(args []reflect.Value) []reflect.Value {
			method.Call(nil)
			out := make([]reflect.Value, callbackType.NumOut())
			for i := range out {
				out[i] = reflect.Zero(callbackType.Out(i))
			}
			return out
		})
		return wrapper, nil
	}
	return reflect.Value{}, fmt.Errorf("method %s signature %s does not match callback %s", name, mt, callbackType)
}

// adaptObserver builds a single-argument callback that writes edits back
// into the view-model field.
func adaptObserver(callbackType reflect.Type, target reflect.Value) (reflect.Value, error) {
	if callbackType.NumIn() != 1 {
		return reflect.Value{}, fmt.Errorf("observer callback %s must take one argument", callbackType)
	}
	if !target.CanSet() {
		return reflect.Value{}, fmt.Errorf("view-model field of type %s is not settable", target.Type())
	}
	argType := callbackType.In(0)
	if !argType.AssignableTo(target.Type()) && !argType.ConvertibleTo(target.Type()) {
		return reflect.Value{}, fmt.Errorf("cannot write %s back into %s", argType, target.Type())
	}
	wrapper := reflect.MakeFunc(callbackType, func(args []reflect.Value) []reflect.Value {
		target.Set(args[0].Convert(target.Type()))
		out := make([]reflect.Value, callbackType.NumOut())
		for i := range out {
			out[i] = reflect.Zero(callbackType.Out(i))
		}
		return out
	})
	return wrapper, nil
}

// convertValue converts value for assignment to target. Beyond direct
// assignability it supports slices into []any, anything into string via
// fmt, and numeric conversions. String conversions through reflect
// (e.g. int to string yielding a rune) are deliberately not used.
func convertValue(value reflect.Value, target reflect.Type) (reflect.Value, error) {
	if value.Type().AssignableTo(target) {
		return value, nil
	}
	if target.Kind() == reflect.Slice && target.Elem().Kind() == reflect.Interface &&
		target.Elem().NumMethod() == 0 && value.Kind() == reflect.Slice {
		out := reflect.MakeSlice(target, value.Len(), value.Len())
		for i := 0; i < value.Len(); i++ {
			out.Index(i).Set(reflect.ValueOf(value.Index(i).Interface()))
		}
		return out, nil
	}
	if target.Kind() == reflect.String {
		return reflect.ValueOf(fmt.Sprint(value.Interface())).Convert(target), nil
	}
	if value.Kind() != reflect.String && value.Type().ConvertibleTo(target) {
		return value.Convert(target), nil
	}
	return reflect.Value{}, fmt.Errorf("cannot bind %s to %s", value.Type(), target)
}
