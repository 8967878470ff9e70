// Package recgen generates Go record types from record declarations.
package recgen

import "github.com/alecthomas/participle/v2/lexer"

// Declarations holds every record declared in a source file.
type Declarations struct {
	// Records is the list of record declarations in source order.
	Records []RecordSpec
}

// RecordSpec describes a single record declaration.
type RecordSpec struct {
	// Pos is the source position of the declaration, if parsed.
	Pos lexer.Position
	// Name is the declared record name (e.g. "point" or "user-account").
	Name string
	// Components is the list of components in declaration order.
	Components []ComponentSpec
}

// ComponentSpec describes a single record component.
type ComponentSpec struct {
	Pos lexer.Position
	// Name is the declared component name.
	Name string
	// ValueType is the declared value type (string, integer, long, double, boolean, datetime).
	ValueType string
	// Optional marks components declared with a trailing '?'. They are
	// generated as pointers.
	Optional bool
}

// ValueTypes lists the value types a component may declare.
var ValueTypes = map[string]string{
	"string":   "string",
	"integer":  "int64",
	"long":     "int64",
	"double":   "float64",
	"boolean":  "bool",
	"datetime": "time.Time",
}

// RecordByName retrieves a record declaration by its declared name.
func (d *Declarations) RecordByName(name string) (RecordSpec, bool) {
	for _, r := range d.Records {
		if r.Name == name {
			return r, true
		}
	}
	return RecordSpec{}, false
}
