package beans

import "reflect"

// PropertyDescriptor describes a single property of a bean type: its name,
// the Method used to read it and, for mutable properties, the Method used
// to write it.
type PropertyDescriptor struct {
	name  string
	typ   reflect.Type
	read  *Method
	write *Method
}

// NewPropertyDescriptor creates a descriptor for the named property. write
// may be nil for read-only properties. The name must be a valid identifier
// and not a reserved name, and read and write must agree on the property
// type.
func NewPropertyDescriptor(name string, read, write *Method) (*PropertyDescriptor, error) {
	var owner reflect.Type
	switch {
	case read != nil:
		owner = read.Owner()
	case write != nil:
		owner = write.Owner()
	default:
		return nil, &IntrospectionError{Property: name, Reason: "property has neither read nor write method"}
	}

	if err := ValidateIdentifier(name, "property"); err != nil {
		return nil, &IntrospectionError{Type: owner, Property: name, Reason: "bad property name", Cause: err}
	}
	if IsReservedName(name) {
		return nil, &IntrospectionError{Type: owner, Property: name, Reason: "reserved property name"}
	}

	pd := &PropertyDescriptor{name: name, read: read, write: write}
	if read != nil {
		if !read.CanRead() {
			return nil, &IntrospectionError{Type: owner, Property: name, Reason: "read method " + read.Name() + " is a setter"}
		}
		pd.typ = read.Type()
	}
	if write != nil {
		if !write.CanWrite() {
			return nil, &IntrospectionError{Type: owner, Property: name, Reason: "write method " + write.Name() + " is a getter"}
		}
		if write.Owner() != owner {
			return nil, &IntrospectionError{Type: owner, Property: name, Reason: "write method belongs to " + write.Owner().String()}
		}
		if pd.typ != nil && pd.typ != write.Type() {
			return nil, &IntrospectionError{
				Type:     owner,
				Property: name,
				Reason:   "type mismatch between read (" + pd.typ.String() + ") and write (" + write.Type().String() + ") methods",
			}
		}
		pd.typ = write.Type()
	}
	return pd, nil
}

// Name returns the property name.
func (pd *PropertyDescriptor) Name() string { return pd.name }

// PropertyType returns the type of the property value.
func (pd *PropertyDescriptor) PropertyType() reflect.Type { return pd.typ }

// ReadMethod returns the accessor, or nil for write-only properties.
func (pd *PropertyDescriptor) ReadMethod() *Method { return pd.read }

// WriteMethod returns the mutator, or nil for read-only properties.
func (pd *PropertyDescriptor) WriteMethod() *Method { return pd.write }

// IsReadOnly reports whether the property has no mutator.
func (pd *PropertyDescriptor) IsReadOnly() bool { return pd.write == nil }

// Equal reports whether two descriptors name the same property with the
// same read and write methods.
func (pd *PropertyDescriptor) Equal(o *PropertyDescriptor) bool {
	if pd == nil || o == nil {
		return pd == o
	}
	return pd.name == o.name &&
		pd.typ == o.typ &&
		pd.read.Equal(o.read) &&
		pd.write.Equal(o.write)
}
