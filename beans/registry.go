package beans

import (
	"reflect"
	"slices"
	"sync"
)

var (
	factoriesMu sync.RWMutex
	factories   []BeanInfoFactory
	// generation counts changes to factories; guarded by factoriesMu.
	generation uint64

	descriptorCache sync.Map // map[reflect.Type]cacheEntry
)

// cacheEntry holds descriptors computed against a factory chain generation.
// Entries from an older generation are ignored.
type cacheEntry struct {
	generation  uint64
	descriptors []*PropertyDescriptor
}

// RegisterFactory appends f to the process-wide list of BeanInfoFactories.
// Factories are consulted in registration order. Registering a factory
// drops all cached descriptors.
func RegisterFactory(f BeanInfoFactory) {
	factoriesMu.Lock()
	factories = append(factories, f)
	generation++
	factoriesMu.Unlock()
	ClearCache()
}

// ClearFactories removes every registered factory and drops the cache.
// This is primarily used for testing purposes.
func ClearFactories() {
	factoriesMu.Lock()
	factories = nil
	generation++
	factoriesMu.Unlock()
	ClearCache()
}

// GetBeanInfo returns the BeanInfo for t. Pointer types are dereferenced.
// The first registered factory returning a non-nil BeanInfo wins; if none
// does, the default Introspect is used. Factory errors are returned as is.
func GetBeanInfo(t reflect.Type) (BeanInfo, error) {
	info, _, err := lookupBeanInfo(t)
	return info, err
}

// lookupBeanInfo resolves t against a snapshot of the factory chain and
// returns the generation of that snapshot.
func lookupBeanInfo(t reflect.Type) (BeanInfo, uint64, error) {
	if t == nil {
		return nil, 0, &IntrospectionError{Reason: "nil type"}
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	factoriesMu.RLock()
	chain := slices.Clone(factories)
	gen := generation
	factoriesMu.RUnlock()

	for _, f := range chain {
		info, err := f.BeanInfo(t)
		if err != nil {
			return nil, gen, err
		}
		if info != nil {
			return info, gen, nil
		}
	}
	info, err := Introspect(t)
	return info, gen, err
}

func currentGeneration() uint64 {
	factoriesMu.RLock()
	defer factoriesMu.RUnlock()
	return generation
}

// PropertyDescriptors returns the property descriptors of t, caching the
// result per type. The returned slice is a copy and may be modified.
// Results computed before the latest factory registration are never served.
func PropertyDescriptors(t reflect.Type) ([]*PropertyDescriptor, error) {
	if t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if cached, ok := descriptorCache.Load(t); ok {
		if entry := cached.(cacheEntry); entry.generation == currentGeneration() {
			return slices.Clone(entry.descriptors), nil
		}
	}

	info, gen, err := lookupBeanInfo(t)
	if err != nil {
		return nil, err
	}
	descriptors := slices.Clone(info.PropertyDescriptors())
	descriptorCache.Store(t, cacheEntry{generation: gen, descriptors: descriptors})
	return slices.Clone(descriptors), nil
}

// ClearCache drops all cached descriptors.
func ClearCache() {
	descriptorCache.Clear()
}
