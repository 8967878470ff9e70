// Package records teaches the beans introspection layer to treat immutable
// record types as first-class beans.
//
// A record is a struct that embeds Record. Its components are its remaining
// fields in declaration order, and each component becomes a read-only
// property whose accessor is the component itself (or, for an unexported
// component, its exported getter). Importing this package registers the
// record BeanInfoFactory with beans.
//
// Example usage:
//
//	type Point struct {
//	    records.Record
//	    X, Y int
//	}
package records

import (
	"reflect"

	"github.com/CaliLuke/go-records/beans"
)

// Recorder is satisfied by every type embedding Record.
type Recorder interface {
	record()
}

// Record is the embeddable marker for record types.
type Record struct{}

func (Record) record() {}

var recordType = reflect.TypeOf(Record{})

// Component describes a single record component.
type Component struct {
	// Name is the property name of the component.
	Name string
	// Field is the struct field holding the component value.
	Field reflect.StructField
	// Accessor reads the component value.
	Accessor *beans.Method
}

// IsRecord reports whether t, or the type t points to, is a struct that
// directly embeds Record.
func IsRecord(t reflect.Type) bool {
	if t == nil {
		return false
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return false
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous && field.Type == recordType {
			return true
		}
	}
	return false
}

// Components returns the components of record type t in declaration order.
func Components(t reflect.Type) ([]Component, error) {
	if t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if !IsRecord(t) {
		return nil, &NotRecordError{Type: t}
	}

	var components []Component
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Type == recordType {
			continue
		}
		if field.Anonymous {
			return nil, &InvalidRecordError{Type: t, Component: field.Name, Reason: "records cannot embed other types"}
		}
		name, skip := beans.TagPropertyName(field)
		if skip {
			return nil, &InvalidRecordError{Type: t, Component: field.Name, Reason: "record components cannot be skipped"}
		}
		accessor, err := componentAccessor(t, field)
		if err != nil {
			return nil, err
		}
		components = append(components, Component{Name: name, Field: field, Accessor: accessor})
	}
	return components, nil
}

// componentAccessor returns the field itself for exported components and
// the exported getter of the same name for unexported ones.
func componentAccessor(t reflect.Type, field reflect.StructField) (*beans.Method, error) {
	if field.IsExported() {
		return beans.FieldMethod(t, field), nil
	}
	getterName := beans.Capitalize(field.Name)
	getter, ok := beans.GetterMethod(t, getterName)
	if !ok {
		return nil, &InvalidRecordError{
			Type:      t,
			Component: field.Name,
			Reason:    "unexported component has no accessor method " + getterName + "()",
		}
	}
	if getter.Type() != field.Type {
		return nil, &InvalidRecordError{
			Type:      t,
			Component: field.Name,
			Reason:    "accessor " + getterName + "() returns " + getter.Type().String() + ", want " + field.Type.String(),
		}
	}
	return getter, nil
}
