// Package beans provides reflection-based property introspection for Go
// struct types.
//
// A type's properties are described by PropertyDescriptors, each pairing a
// property name with a read Method and an optional write Method. Descriptors
// come from the registered BeanInfoFactory extension points, or from the
// default Introspect when no factory claims the type.
package beans

import (
	"reflect"
	"slices"
)

type methodKind int

const (
	methodField methodKind = iota
	methodGetter
	methodSetter
)

// Method is a reflective handle on a property accessor or mutator. It is
// either backed by a struct field or by an exported Go method: a getter
// taking no arguments and returning the value, or a setter taking the value
// on a pointer receiver.
type Method struct {
	name        string
	owner       reflect.Type
	typ         reflect.Type
	kind        methodKind
	index       []int
	fn          reflect.Value
	ptrReceiver bool
}

// FieldMethod returns a Method reading and writing the given field of owner.
func FieldMethod(owner reflect.Type, field reflect.StructField) *Method {
	return &Method{
		name:  field.Name,
		owner: owner,
		typ:   field.Type,
		kind:  methodField,
		index: slices.Clone(field.Index),
	}
}

// GetterMethod looks up a getter named name on owner. Value receivers are
// preferred; a getter declared on the pointer receiver is also accepted.
func GetterMethod(owner reflect.Type, name string) (*Method, bool) {
	if m, ok := owner.MethodByName(name); ok && isGetter(m) {
		return &Method{name: name, owner: owner, typ: m.Type.Out(0), kind: methodGetter, fn: m.Func}, true
	}
	if m, ok := reflect.PointerTo(owner).MethodByName(name); ok && isGetter(m) {
		return &Method{name: name, owner: owner, typ: m.Type.Out(0), kind: methodGetter, fn: m.Func, ptrReceiver: true}, true
	}
	return nil, false
}

// SetterMethod looks up a setter named name on the pointer receiver of owner.
func SetterMethod(owner reflect.Type, name string) (*Method, bool) {
	m, ok := reflect.PointerTo(owner).MethodByName(name)
	if !ok || !isSetter(m) {
		return nil, false
	}
	return &Method{name: name, owner: owner, typ: m.Type.In(1), kind: methodSetter, fn: m.Func, ptrReceiver: true}, true
}

// isGetter reports whether m has the shape func(recv) V.
func isGetter(m reflect.Method) bool {
	return m.Type.NumIn() == 1 && m.Type.NumOut() == 1
}

// isSetter reports whether m has the shape func(recv, V).
func isSetter(m reflect.Method) bool {
	return m.Type.NumIn() == 2 && m.Type.NumOut() == 0
}

// Name returns the Go name of the field or method.
func (m *Method) Name() string { return m.name }

// Owner returns the struct type the method belongs to.
func (m *Method) Owner() reflect.Type { return m.owner }

// Type returns the type of the value read or written.
func (m *Method) Type() reflect.Type { return m.typ }

// IsField reports whether the method is backed by a struct field.
func (m *Method) IsField() bool { return m.kind == methodField }

// FieldIndex returns the field index path for field-backed methods, or nil.
func (m *Method) FieldIndex() []int { return slices.Clone(m.index) }

// CanRead reports whether Get is supported.
func (m *Method) CanRead() bool { return m.kind != methodSetter }

// CanWrite reports whether Set is supported.
func (m *Method) CanWrite() bool { return m.kind != methodGetter }

// Equal reports whether m and o refer to the same field or method of the
// same owner type.
func (m *Method) Equal(o *Method) bool {
	if m == nil || o == nil {
		return m == o
	}
	return m.owner == o.owner &&
		m.name == o.name &&
		m.kind == o.kind &&
		slices.Equal(m.index, o.index)
}

// Get reads the value from bean, which must be a value of the owner type or
// a non-nil pointer to one.
func (m *Method) Get(bean reflect.Value) (reflect.Value, error) {
	if !m.CanRead() {
		return reflect.Value{}, &AccessError{Owner: m.owner, Method: m.name, Reason: "not readable"}
	}
	v, err := m.receiver(bean)
	if err != nil {
		return reflect.Value{}, err
	}
	if m.kind == methodField {
		return v.FieldByIndex(m.index), nil
	}
	recv := v
	if m.ptrReceiver {
		recv = addressOf(v)
	}
	return m.fn.Call([]reflect.Value{recv})[0], nil
}

// Set writes val into bean, which must be a non-nil pointer to the owner
// type.
func (m *Method) Set(bean reflect.Value, val reflect.Value) error {
	if !m.CanWrite() {
		return &AccessError{Owner: m.owner, Method: m.name, Reason: "not writable"}
	}
	if bean.Kind() != reflect.Pointer {
		return &AccessError{Owner: m.owner, Method: m.name, Reason: "set requires a pointer, got " + bean.Kind().String()}
	}
	v, err := m.receiver(bean)
	if err != nil {
		return err
	}
	if !val.Type().AssignableTo(m.typ) {
		return &AccessError{Owner: m.owner, Method: m.name, Reason: "cannot assign " + val.Type().String() + " to " + m.typ.String()}
	}
	if m.kind == methodField {
		field := v.FieldByIndex(m.index)
		if !field.CanSet() {
			return &AccessError{Owner: m.owner, Method: m.name, Reason: "field is not settable"}
		}
		field.Set(val)
		return nil
	}
	m.fn.Call([]reflect.Value{bean, val})
	return nil
}

func (m *Method) receiver(bean reflect.Value) (reflect.Value, error) {
	if !bean.IsValid() {
		return reflect.Value{}, &AccessError{Owner: m.owner, Method: m.name, Reason: "invalid bean"}
	}
	if bean.Kind() == reflect.Pointer {
		if bean.IsNil() {
			return reflect.Value{}, &AccessError{Owner: m.owner, Method: m.name, Reason: "nil bean"}
		}
		bean = bean.Elem()
	}
	if bean.Type() != m.owner {
		return reflect.Value{}, &AccessError{Owner: m.owner, Method: m.name, Reason: "bean has type " + bean.Type().String()}
	}
	return bean, nil
}

// addressOf returns a pointer to v, copying v when it is not addressable.
func addressOf(v reflect.Value) reflect.Value {
	if v.CanAddr() {
		return v.Addr()
	}
	p := reflect.New(v.Type())
	p.Elem().Set(v)
	return p
}
