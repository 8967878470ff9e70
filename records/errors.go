package records

import (
	"fmt"
	"reflect"
)

// InvalidRecordError is returned when a record type cannot be described by
// property descriptors. It indicates a malformed record definition and is
// not recoverable.
type InvalidRecordError struct {
	Type      reflect.Type
	Component string
	Reason    string
	Cause     error
}

// Error returns the error message for InvalidRecordError.
func (e *InvalidRecordError) Error() string {
	msg := fmt.Sprintf("records: invalid record definition %s", e.Type)
	if e.Component != "" {
		msg += fmt.Sprintf(" (component %s)", e.Component)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause of the InvalidRecordError.
func (e *InvalidRecordError) Unwrap() error {
	return e.Cause
}

// NotRecordError is returned by Components for types that do not embed Record.
type NotRecordError struct {
	Type reflect.Type
}

// Error returns the error message for NotRecordError.
func (e *NotRecordError) Error() string {
	return fmt.Sprintf("records: %v is not a record", e.Type)
}
