package mapping

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"slices"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// PreferredConstructor creates new instances of an entity type. For
// entities whose properties are all immutable it is canonical: it takes one
// argument per property, in property order. Mutable entities get a
// constructor without parameters returning the zero value.
type PreferredConstructor struct {
	typ    reflect.Type
	params []*PersistentProperty
	fn     reflect.Value
}

// Parameters returns the properties bound to constructor arguments, in
// argument order.
func (c *PreferredConstructor) Parameters() []*PersistentProperty {
	return slices.Clone(c.params)
}

// IsConstructorParameter reports whether p is bound to a constructor argument.
func (c *PreferredConstructor) IsConstructorParameter(p *PersistentProperty) bool {
	return slices.Contains(c.params, p)
}

// IsExplicit reports whether the constructor is a registered function rather
// than reflective field assignment.
func (c *PreferredConstructor) IsExplicit() bool {
	return c.fn.IsValid()
}

// Instantiate creates a new instance from args, which must match
// Parameters in number and order. The result has the entity type.
func (c *PreferredConstructor) Instantiate(args []any) (reflect.Value, error) {
	if len(args) != len(c.params) {
		return reflect.Value{}, &InstantiationError{
			Type:  c.typ,
			Cause: fmt.Errorf("got %d arguments, want %d", len(args), len(c.params)),
		}
	}
	values := make([]reflect.Value, len(args))
	for i, p := range c.params {
		v, err := convertValue(args[i], p)
		if err != nil {
			return reflect.Value{}, &InstantiationError{Type: c.typ, Cause: err}
		}
		values[i] = v
	}

	if c.fn.IsValid() {
		out := c.fn.Call(values)
		if len(out) == 2 && !out[1].IsNil() {
			return reflect.Value{}, &InstantiationError{Type: c.typ, Cause: out[1].Interface().(error)}
		}
		return out[0], nil
	}

	instance := reflect.New(c.typ)
	for i, p := range c.params {
		if p.getter == nil || !p.getter.IsField() {
			return reflect.Value{}, &InstantiationError{
				Type:  c.typ,
				Cause: fmt.Errorf("property %s is not backed by a settable field; register a constructor", p.name),
			}
		}
		field := instance.Elem().FieldByIndex(p.getter.FieldIndex())
		if !field.CanSet() {
			return reflect.Value{}, &InstantiationError{
				Type:  c.typ,
				Cause: fmt.Errorf("field for property %s is not settable; register a constructor", p.name),
			}
		}
		field.Set(values[i])
	}
	return instance.Elem(), nil
}

// checkConstructorFunc validates fn as a constructor returning T or (T, error)
// and returns its value and produced type.
func checkConstructorFunc(fn any) (reflect.Value, reflect.Type, error) {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return reflect.Value{}, nil, fmt.Errorf("constructor must be a non-nil function, got %T", fn)
	}
	ft := v.Type()
	if ft.IsVariadic() {
		return reflect.Value{}, nil, errors.New("constructor must not be variadic")
	}
	switch {
	case ft.NumOut() == 1:
	case ft.NumOut() == 2 && ft.Out(1) == errorType:
	default:
		return reflect.Value{}, nil, fmt.Errorf("constructor must return T or (T, error), got %s", ft)
	}
	out := ft.Out(0)
	if out.Kind() != reflect.Struct {
		return reflect.Value{}, nil, fmt.Errorf("constructor must return a struct value, got %s", out)
	}
	return v, out, nil
}

// bindConstructor checks that a registered constructor's parameters line up
// with the entity's properties.
func bindConstructor(fn reflect.Value, props []*PersistentProperty) error {
	ft := fn.Type()
	if ft.NumIn() != len(props) {
		return fmt.Errorf("constructor takes %d arguments, entity has %d properties", ft.NumIn(), len(props))
	}
	for i, p := range props {
		if ft.In(i) != p.typ {
			return fmt.Errorf("constructor argument %d is %s, property %s is %s", i, ft.In(i), p.name, p.typ)
		}
	}
	return nil
}

// convertValue converts val to the type of p. Assignable values pass
// through, numeric values are converted between numeric kinds when the
// target can hold them exactly, and named types convert to and from their
// underlying type.
func convertValue(val any, p *PersistentProperty) (reflect.Value, error) {
	want := p.typ
	typeErr := func(got string) error {
		return &PropertyTypeError{Entity: p.owner.name, Property: p.name, Want: want, Got: got}
	}

	if val == nil {
		switch want.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(want), nil
		}
		return reflect.Value{}, typeErr("nil")
	}

	v := reflect.ValueOf(val)
	if v.Type().AssignableTo(want) {
		return v, nil
	}
	if !v.Type().ConvertibleTo(want) {
		return reflect.Value{}, typeErr(v.Type().String())
	}
	if isNumeric(v.Kind()) && isNumeric(want.Kind()) {
		if !numericFits(v, want) {
			return reflect.Value{}, typeErr(fmt.Sprintf("%s value %v", v.Type(), val))
		}
		return v.Convert(want), nil
	}
	if v.Kind() == want.Kind() {
		return v.Convert(want), nil
	}
	return reflect.Value{}, typeErr(v.Type().String())
}

// numericFits reports whether the numeric value v converts to want without
// overflow, sign loss or truncation.
func numericFits(v reflect.Value, want reflect.Type) bool {
	target := reflect.Zero(want)
	switch {
	case v.CanInt():
		n := v.Int()
		switch {
		case target.CanInt():
			return !target.OverflowInt(n)
		case target.CanUint():
			return n >= 0 && !target.OverflowUint(uint64(n))
		}
		return true
	case v.CanUint():
		u := v.Uint()
		switch {
		case target.CanInt():
			return u <= math.MaxInt64 && !target.OverflowInt(int64(u))
		case target.CanUint():
			return !target.OverflowUint(u)
		}
		return true
	case v.CanFloat():
		f := v.Float()
		switch {
		case target.CanInt():
			if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
				return false
			}
			return !target.OverflowInt(int64(f))
		case target.CanUint():
			if f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 {
				return false
			}
			return !target.OverflowUint(uint64(f))
		case target.CanFloat():
			return !target.OverflowFloat(f)
		}
	}
	return false
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
