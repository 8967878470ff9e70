package records

import (
	"log"
	"os"
	"reflect"
	"strconv"

	"github.com/CaliLuke/go-records/beans"
)

// EnvSupport names the environment variable that switches record support
// off for the whole process. It is read once, when the package initializes.
// Any value accepted by strconv.ParseBool is valid; unset means enabled.
const EnvSupport = "GORECORDS_SUPPORT"

// delegate is nil when record support is disabled. It is written once
// during package initialization and never modified afterwards.
var delegate = detectSupport(os.LookupEnv)

func init() {
	beans.RegisterFactory(BeanInfoFactory{})
}

// detectSupport returns the record factory unless record support is
// switched off through EnvSupport.
func detectSupport(lookup func(string) (string, bool)) beans.BeanInfoFactory {
	raw, ok := lookup(EnvSupport)
	if !ok || raw == "" {
		return recordBeanInfoFactory{}
	}
	enabled, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("WARNING: records: ignoring %s=%q: %v", EnvSupport, raw, err)
		return recordBeanInfoFactory{}
	}
	if !enabled {
		log.Printf("records: record support disabled by %s; every type uses default introspection", EnvSupport)
		return nil
	}
	return recordBeanInfoFactory{}
}

// Supported reports whether record support is enabled for this process.
func Supported() bool {
	return delegate != nil
}

// BeanInfoFactory is the beans.BeanInfoFactory registered by this package.
// It synthesizes read-only descriptors for record types and has no opinion
// about any other type. With record support disabled it has no opinion
// about anything.
type BeanInfoFactory struct{}

// BeanInfo returns the synthesized BeanInfo for record types and nil, nil
// for everything else.
func (BeanInfoFactory) BeanInfo(t reflect.Type) (beans.BeanInfo, error) {
	return dispatch(delegate, t)
}

func dispatch(d beans.BeanInfoFactory, t reflect.Type) (beans.BeanInfo, error) {
	if d == nil {
		return nil, nil
	}
	return d.BeanInfo(t)
}

type recordBeanInfoFactory struct{}

// BeanInfo builds one read-only descriptor per record component. A failure
// on any component fails the whole type.
func (recordBeanInfoFactory) BeanInfo(t reflect.Type) (beans.BeanInfo, error) {
	if !IsRecord(t) {
		return nil, nil
	}
	components, err := Components(t)
	if err != nil {
		return nil, err
	}

	descriptors := make([]*beans.PropertyDescriptor, 0, len(components))
	for _, c := range components {
		pd, err := beans.NewPropertyDescriptor(c.Name, c.Accessor, nil)
		if err != nil {
			return nil, &InvalidRecordError{Type: c.Accessor.Owner(), Component: c.Field.Name, Cause: err}
		}
		descriptors = append(descriptors, pd)
	}
	return beans.NewSimpleBeanInfo(descriptors), nil
}

// BeanInfoOf returns the record BeanInfo for T regardless of the process
// capability flag. It fails with NotRecordError if T is not a record.
func BeanInfoOf[T any]() (beans.BeanInfo, error) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if !IsRecord(t) {
		return nil, &NotRecordError{Type: t}
	}
	return recordBeanInfoFactory{}.BeanInfo(t)
}
