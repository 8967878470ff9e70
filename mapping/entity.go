package mapping

import (
	"fmt"
	"reflect"
	"slices"
)

// PersistentEntity is the mapping metadata of a single Go struct type. It is
// built by a Context from the type's property descriptors and is immutable
// once built.
type PersistentEntity struct {
	typ         reflect.Type
	name        string
	properties  []*PersistentProperty
	byName      map[string]*PersistentProperty
	constructor *PreferredConstructor
}

// Type returns the Go struct type of the entity.
func (e *PersistentEntity) Type() reflect.Type { return e.typ }

// Name returns the entity name.
func (e *PersistentEntity) Name() string { return e.name }

// Properties returns the persistent properties in descriptor order.
func (e *PersistentEntity) Properties() []*PersistentProperty {
	return slices.Clone(e.properties)
}

// PersistentProperty retrieves a property by name.
func (e *PersistentEntity) PersistentProperty(name string) (*PersistentProperty, bool) {
	p, ok := e.byName[name]
	return p, ok
}

// RequiredPersistentProperty retrieves a property by name, failing with
// UnknownPropertyError if there is none.
func (e *PersistentEntity) RequiredPersistentProperty(name string) (*PersistentProperty, error) {
	p, ok := e.byName[name]
	if !ok {
		return nil, &UnknownPropertyError{Entity: e.name, Property: name}
	}
	return p, nil
}

// PersistenceConstructor returns the constructor used to create instances.
func (e *PersistentEntity) PersistenceConstructor() *PreferredConstructor {
	return e.constructor
}

// IsImmutable reports whether the entity has properties and none of them
// has a setter.
func (e *PersistentEntity) IsImmutable() bool {
	if len(e.properties) == 0 {
		return false
	}
	for _, p := range e.properties {
		if !p.IsImmutable() {
			return false
		}
	}
	return true
}

// PropertyAccessor returns an accessor over bean, which must be a value of
// the entity type or a non-nil pointer to one.
func (e *PersistentEntity) PropertyAccessor(bean any) (*PropertyAccessor, error) {
	return newPropertyAccessor(e, bean)
}

func (e *PersistentEntity) String() string {
	return fmt.Sprintf("PersistentEntity(%s, %d properties)", e.name, len(e.properties))
}
