package binding

import (
	"reflect"
	"testing"
)

type taggedBase struct {
	ID string `bind:"name=Ident"`
}

type taggedModel struct {
	taggedBase
	Title  string `bind:"name=Heading, readonly"`
	Plain  string
	Marked string `bind:"-"`
}

func TestAttributes(t *testing.T) {
	model := reflect.TypeOf(taggedModel{})

	tests := []struct {
		name  string
		field string
		key   string
		want  []string
	}{
		{"multiple directives with spaces", "Title", "bind", []string{"name=Heading", "readonly"}},
		{"absent key", "Title", "convention", nil},
		{"untagged field", "Plain", "bind", nil},
		{"exclusion marker", "Marked", "bind", []string{"-"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, ok := model.FieldByName(tt.field)
			if !ok {
				t.Fatalf("no field %s", tt.field)
			}
			got := Attributes(field, tt.key)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Attributes(%s, %q) = %v, want %v", tt.field, tt.key, got, tt.want)
			}
		})
	}
}

func TestFieldAttributes(t *testing.T) {
	tests := []struct {
		name    string
		typ     reflect.Type
		field   string
		inherit bool
		want    []string
	}{
		{"declared field", reflect.TypeOf(taggedModel{}), "Title", false, []string{"name=Heading", "readonly"}},
		{"promoted field without inherit", reflect.TypeOf(taggedModel{}), "ID", false, nil},
		{"promoted field with inherit", reflect.TypeOf(taggedModel{}), "ID", true, []string{"name=Ident"}},
		{"pointer to struct", reflect.TypeOf(&taggedModel{}), "Title", false, []string{"name=Heading", "readonly"}},
		{"missing field", reflect.TypeOf(taggedModel{}), "Nope", true, nil},
		{"non-struct type", reflect.TypeOf(42), "Title", true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FieldAttributes(tt.typ, tt.field, "bind", tt.inherit)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FieldAttributes(%s, inherit=%v) = %v, want %v", tt.field, tt.inherit, got, tt.want)
			}
		})
	}
}

func TestHasAttribute(t *testing.T) {
	model := reflect.TypeOf(taggedModel{})
	marked, _ := model.FieldByName("Marked")
	title, _ := model.FieldByName("Title")

	if !HasAttribute(marked, "bind", "-") {
		t.Error("expected exclusion marker on Marked")
	}
	if HasAttribute(title, "bind", "-") {
		t.Error("Title should not carry the exclusion marker")
	}
}
