package beans

import (
	"fmt"
	"unicode"
)

// ReservedPropertyNames is the set of names that can never be used as a
// property name. They are predeclared Go identifiers that generated
// constructors and withers could not use as parameter names.
var ReservedPropertyNames = map[string]bool{
	"_":     true,
	"nil":   true,
	"true":  true,
	"false": true,
	"iota":  true,
}

// IsReservedName returns true if name is a reserved property name.
// The check is case-sensitive, matching Go's own identifier rules.
func IsReservedName(name string) bool {
	return ReservedPropertyNames[name]
}

// ValidateIdentifier checks that name is a valid Go identifier: a letter or
// underscore followed by letters, digits or underscores. context describes
// what is being named and ends up in the error message.
func ValidateIdentifier(name, context string) error {
	if name == "" {
		return &InvalidIdentifierError{Name: name, Context: context, Reason: "empty name"}
	}
	for i, r := range name {
		if i == 0 {
			if !unicode.IsLetter(r) && r != '_' {
				return &InvalidIdentifierError{
					Name:    name,
					Context: context,
					Reason:  fmt.Sprintf("must start with a letter or underscore, got %q", r),
				}
			}
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return &InvalidIdentifierError{
				Name:    name,
				Context: context,
				Reason:  fmt.Sprintf("invalid character %q at position %d", r, i),
			}
		}
	}
	return nil
}

// InvalidIdentifierError is returned when a name is not a valid Go identifier.
type InvalidIdentifierError struct {
	Name    string
	Context string
	Reason  string
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("invalid %s name %q: %s", e.Context, e.Name, e.Reason)
}
