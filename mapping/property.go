package mapping

import (
	"reflect"

	"github.com/CaliLuke/go-records/beans"
)

// PersistentProperty is a single mapped property of a PersistentEntity.
type PersistentProperty struct {
	owner  *PersistentEntity
	name   string
	typ    reflect.Type
	getter *beans.Method
	setter *beans.Method
	wither reflect.Value
}

func newPersistentProperty(owner *PersistentEntity, pd *beans.PropertyDescriptor) *PersistentProperty {
	p := &PersistentProperty{
		owner:  owner,
		name:   pd.Name(),
		typ:    pd.PropertyType(),
		getter: pd.ReadMethod(),
		setter: pd.WriteMethod(),
	}
	if p.setter == nil {
		p.wither = findWither(owner.typ, p)
	}
	return p
}

// findWither looks for a value-receiver method With<Name>(v) T.
func findWither(t reflect.Type, p *PersistentProperty) reflect.Value {
	m, ok := t.MethodByName("With" + beans.Capitalize(p.name))
	if !ok {
		return reflect.Value{}
	}
	mt := m.Type
	if mt.NumIn() != 2 || mt.NumOut() != 1 || mt.In(1) != p.typ || mt.Out(0) != t {
		return reflect.Value{}
	}
	return m.Func
}

// Name returns the property name.
func (p *PersistentProperty) Name() string { return p.name }

// Type returns the property's Go type.
func (p *PersistentProperty) Type() reflect.Type { return p.typ }

// Owner returns the entity the property belongs to.
func (p *PersistentProperty) Owner() *PersistentEntity { return p.owner }

// Getter returns the accessor, or nil if the property cannot be read.
func (p *PersistentProperty) Getter() *beans.Method { return p.getter }

// Setter returns the mutator, or nil for immutable properties.
func (p *PersistentProperty) Setter() *beans.Method { return p.setter }

// IsImmutable reports whether the property has no setter. Setting an
// immutable property through a PropertyAccessor creates a new instance.
func (p *PersistentProperty) IsImmutable() bool { return p.setter == nil }

// HasWither reports whether the owner type declares a With<Name> method
// for this property.
func (p *PersistentProperty) HasWither() bool { return p.wither.IsValid() }

func (p *PersistentProperty) String() string {
	return p.owner.name + "." + p.name
}
