package beans

import (
	"reflect"
	"strings"
)

// TagName is the struct tag key read by the introspectors.
const TagName = "beans"

// Introspect is the default introspection used when no BeanInfoFactory
// claims a type. Exported, non-embedded fields become read/write properties
// in declaration order. A `beans:"name"` tag renames the property and
// `beans:"-"` skips the field. Afterwards, every getter/setter pair
// (X() V and SetX(V)) not shadowed by a field property becomes a read/write
// method-backed property.
func Introspect(t reflect.Type) (BeanInfo, error) {
	if t == nil {
		return nil, &IntrospectionError{Reason: "nil type"}
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, &IntrospectionError{Type: t, Reason: "expected struct, got " + t.Kind().String()}
	}

	var descriptors []*PropertyDescriptor
	seen := make(map[string]bool)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() || field.Anonymous {
			continue
		}
		name, skip := TagPropertyName(field)
		if skip {
			continue
		}
		if seen[name] {
			return nil, &IntrospectionError{Type: t, Property: name, Reason: "duplicate property name"}
		}
		pd, err := NewPropertyDescriptor(name, FieldMethod(t, field), FieldMethod(t, field))
		if err != nil {
			return nil, err
		}
		seen[name] = true
		descriptors = append(descriptors, pd)
	}

	pt := reflect.PointerTo(t)
	for i := 0; i < pt.NumMethod(); i++ {
		setterName := pt.Method(i).Name
		getterName, ok := strings.CutPrefix(setterName, "Set")
		if !ok || getterName == "" {
			continue
		}
		name := PropertyName(getterName)
		if seen[name] {
			continue
		}
		setter, ok := SetterMethod(t, setterName)
		if !ok {
			continue
		}
		getter, ok := GetterMethod(t, getterName)
		if !ok {
			continue
		}
		pd, err := NewPropertyDescriptor(name, getter, setter)
		if err != nil {
			return nil, err
		}
		seen[name] = true
		descriptors = append(descriptors, pd)
	}

	return NewSimpleBeanInfo(descriptors), nil
}

// TagPropertyName returns the property name for a struct field, honoring
// the `beans` tag, and whether the field is skipped with `beans:"-"`.
func TagPropertyName(field reflect.StructField) (name string, skip bool) {
	tag := field.Tag.Get(TagName)
	if tag == "-" {
		return "", true
	}
	if name, _, _ = strings.Cut(tag, ","); name != "" {
		return name, false
	}
	return PropertyName(field.Name), false
}
