// Package gorecords teaches a reflection-based mapping layer to treat
// immutable record types as persistent entities.
//
// A record is a struct embedding records.Record. Its remaining fields are
// its components, in declaration order. Records are inspected, never
// mutated: setting a component yields a new value.
//
// The module is organized into four packages:
//
//   - [github.com/CaliLuke/go-records/beans]: property descriptors, the bean info factory extension point and default introspection
//   - [github.com/CaliLuke/go-records/records]: record components and the factory that describes records as read-only beans
//   - [github.com/CaliLuke/go-records/mapping]: mapping context, persistent entities and property accessors
//   - [github.com/CaliLuke/go-records/recgen]: code generator from record declarations to Go record types
//
// Importing the records package registers its factory with beans. Record
// support can be switched off for a process by setting GORECORDS_SUPPORT=false.
package gorecords
