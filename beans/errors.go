package beans

import (
	"fmt"
	"reflect"
)

// IntrospectionError is returned when a type's property metadata cannot be
// derived, for example because a property name is reserved or a getter and
// setter disagree on the property type.
type IntrospectionError struct {
	Type     reflect.Type
	Property string
	Reason   string
	Cause    error
}

// Error returns the error message for IntrospectionError.
func (e *IntrospectionError) Error() string {
	typeName := "<nil>"
	if e.Type != nil {
		typeName = e.Type.String()
	}
	msg := "beans: introspecting " + typeName
	if e.Property != "" {
		msg += fmt.Sprintf(" property %q", e.Property)
	}
	msg += ": " + e.Reason
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause of the IntrospectionError.
func (e *IntrospectionError) Unwrap() error {
	return e.Cause
}

// AccessError is returned when a Method cannot be invoked on a bean.
type AccessError struct {
	Owner  reflect.Type
	Method string
	Reason string
}

// Error returns the error message for AccessError.
func (e *AccessError) Error() string {
	return fmt.Sprintf("beans: %s.%s: %s", e.Owner, e.Method, e.Reason)
}
