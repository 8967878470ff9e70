package beans

import (
	"reflect"
	"slices"
)

// BeanInfo exposes the property descriptors of a bean type.
type BeanInfo interface {
	PropertyDescriptors() []*PropertyDescriptor
}

// BeanInfoFactory is the extension point for customizing introspection.
//
// BeanInfo returns nil, nil when the factory has no opinion about t, in which
// case the next registered factory, and finally Introspect, is consulted.
type BeanInfoFactory interface {
	BeanInfo(t reflect.Type) (BeanInfo, error)
}

// FactoryFunc adapts an ordinary function to the BeanInfoFactory interface.
type FactoryFunc func(t reflect.Type) (BeanInfo, error)

// BeanInfo calls f(t).
func (f FactoryFunc) BeanInfo(t reflect.Type) (BeanInfo, error) {
	return f(t)
}

// SimpleBeanInfo is a BeanInfo over a fixed list of descriptors.
type SimpleBeanInfo struct {
	descriptors []*PropertyDescriptor
}

// NewSimpleBeanInfo creates a SimpleBeanInfo holding a copy of descriptors.
func NewSimpleBeanInfo(descriptors []*PropertyDescriptor) *SimpleBeanInfo {
	return &SimpleBeanInfo{descriptors: slices.Clone(descriptors)}
}

// PropertyDescriptors returns the descriptors in their original order.
func (b *SimpleBeanInfo) PropertyDescriptors() []*PropertyDescriptor {
	return b.descriptors
}
