package mapping

import (
	"fmt"
	"reflect"
)

// PropertyAccessor reads and writes the properties of a single bean.
//
// The accessor never modifies a bean passed by value. A bean passed as a
// pointer has its mutable properties set in place. Setting an immutable
// property replaces the accessor's bean with a new instance, created through
// the property's wither or the persistence constructor, and leaves the
// previous instance untouched.
type PropertyAccessor struct {
	entity *PersistentEntity
	cur    reflect.Value // always a non-nil pointer to the entity type
	ptr    bool
}

func newPropertyAccessor(e *PersistentEntity, bean any) (*PropertyAccessor, error) {
	if bean == nil {
		return nil, fmt.Errorf("%s: nil bean", e.name)
	}
	v := reflect.ValueOf(bean)
	a := &PropertyAccessor{entity: e}
	switch {
	case v.Kind() == reflect.Pointer && v.Type().Elem() == e.typ:
		if v.IsNil() {
			return nil, fmt.Errorf("%s: nil bean", e.name)
		}
		a.cur = v
		a.ptr = true
	case v.Type() == e.typ:
		a.cur = reflect.New(e.typ)
		a.cur.Elem().Set(v)
	default:
		return nil, fmt.Errorf("%s: bean has type %s, want %s", e.name, v.Type(), e.typ)
	}
	return a, nil
}

// Entity returns the entity the accessor works on.
func (a *PropertyAccessor) Entity() *PersistentEntity { return a.entity }

// GetProperty returns the current value of p.
func (a *PropertyAccessor) GetProperty(p *PersistentProperty) (any, error) {
	if err := a.check(p); err != nil {
		return nil, err
	}
	if p.getter == nil {
		return nil, fmt.Errorf("%s: property %q has no getter", a.entity.name, p.name)
	}
	v, err := p.getter.Get(a.cur)
	if err != nil {
		return nil, err
	}
	return v.Interface(), nil
}

// SetProperty sets p to value. Mutable properties are written through their
// setter; immutable ones produce a new bean.
func (a *PropertyAccessor) SetProperty(p *PersistentProperty, value any) error {
	if err := a.check(p); err != nil {
		return err
	}
	v, err := convertValue(value, p)
	if err != nil {
		return err
	}

	if !p.IsImmutable() {
		return p.setter.Set(a.cur, v)
	}

	if p.HasWither() {
		next := p.wither.Call([]reflect.Value{a.cur.Elem(), v})[0]
		a.replace(next)
		return nil
	}

	ctor := a.entity.constructor
	if !ctor.IsConstructorParameter(p) {
		return &ReadOnlyPropertyError{Entity: a.entity.name, Property: p.name}
	}
	args := make([]any, len(ctor.params))
	for i, param := range ctor.params {
		if param == p {
			args[i] = v.Interface()
			continue
		}
		current, err := a.GetProperty(param)
		if err != nil {
			return err
		}
		args[i] = current
	}
	next, err := ctor.Instantiate(args)
	if err != nil {
		return err
	}
	a.replace(next)
	return nil
}

// Bean returns the current bean, as a pointer if the accessor was created
// from a pointer and as a value otherwise.
func (a *PropertyAccessor) Bean() any {
	if a.ptr {
		return a.cur.Interface()
	}
	return a.cur.Elem().Interface()
}

func (a *PropertyAccessor) replace(next reflect.Value) {
	p := reflect.New(a.entity.typ)
	p.Elem().Set(next)
	a.cur = p
}

func (a *PropertyAccessor) check(p *PersistentProperty) error {
	if p == nil {
		return &UnknownPropertyError{Entity: a.entity.name, Property: "<nil>"}
	}
	if p.owner != a.entity {
		return &UnknownPropertyError{Entity: a.entity.name, Property: p.String()}
	}
	return nil
}
