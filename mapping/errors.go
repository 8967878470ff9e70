package mapping

import (
	"fmt"
	"reflect"
)

// MappingError is returned when a persistent entity cannot be built for a
// Go type.
type MappingError struct {
	Type   reflect.Type
	Reason string
	Cause  error
}

// Error returns the error message for MappingError.
func (e *MappingError) Error() string {
	msg := fmt.Sprintf("mapping %v", e.Type)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause of the MappingError.
func (e *MappingError) Unwrap() error {
	return e.Cause
}

// UnknownPropertyError is returned when a property is looked up by a name
// the entity does not have, or used with an accessor of another entity.
type UnknownPropertyError struct {
	Entity   string
	Property string
}

// Error returns the error message for UnknownPropertyError.
func (e *UnknownPropertyError) Error() string {
	return fmt.Sprintf("%s: no persistent property %q", e.Entity, e.Property)
}

// ReadOnlyPropertyError is returned when an immutable property can be
// neither set through a wither nor through the persistence constructor.
type ReadOnlyPropertyError struct {
	Entity   string
	Property string
}

// Error returns the error message for ReadOnlyPropertyError.
func (e *ReadOnlyPropertyError) Error() string {
	return fmt.Sprintf("%s: property %q is immutable and cannot be set", e.Entity, e.Property)
}

// PropertyTypeError is returned when a value cannot be converted to a
// property's type.
type PropertyTypeError struct {
	Entity   string
	Property string
	Want     reflect.Type
	Got      string
}

// Error returns the error message for PropertyTypeError.
func (e *PropertyTypeError) Error() string {
	return fmt.Sprintf("%s.%s: cannot use %s as %s", e.Entity, e.Property, e.Got, e.Want)
}

// InstantiationError is returned when the persistence constructor cannot
// create a new instance.
type InstantiationError struct {
	Type  reflect.Type
	Cause error
}

// Error returns the error message for InstantiationError.
func (e *InstantiationError) Error() string {
	return fmt.Sprintf("instantiating %v: %v", e.Type, e.Cause)
}

// Unwrap returns the underlying cause of the InstantiationError.
func (e *InstantiationError) Unwrap() error {
	return e.Cause
}
