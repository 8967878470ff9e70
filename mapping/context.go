// Package mapping builds persistent-entity metadata on top of the beans
// introspection layer and provides property access for mapped types,
// including immutable ones.
package mapping

import (
	"fmt"
	"go/token"
	"reflect"
	"sync"

	"github.com/CaliLuke/go-records/beans"
)

// Config specifies how a Context builds entities.
type Config struct {
	// NameFunc derives the entity name from its Go type.
	NameFunc func(reflect.Type) string
	// StrictNames, if true, rejects property names that are Go keywords.
	StrictNames bool
}

// DefaultConfig returns a standard Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		NameFunc: EntityName,
	}
}

// Context builds and caches PersistentEntities. It is safe for concurrent use.
type Context struct {
	cfg Config

	mu           sync.RWMutex
	entities     map[reflect.Type]*PersistentEntity
	constructors map[reflect.Type]reflect.Value
}

// NewContext creates an empty Context.
func NewContext(cfg Config) *Context {
	if cfg.NameFunc == nil {
		cfg.NameFunc = EntityName
	}
	return &Context{
		cfg:          cfg,
		entities:     make(map[reflect.Type]*PersistentEntity),
		constructors: make(map[reflect.Type]reflect.Value),
	}
}

// RegisterConstructor registers fn as the canonical constructor of the type
// it returns. fn must have the shape func(p1, p2, ...) T or
// func(p1, p2, ...) (T, error), with one parameter per property in property
// order. Entities already built for T are dropped.
func (c *Context) RegisterConstructor(fn any) error {
	v, t, err := checkConstructorFunc(fn)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.constructors[t] = v
	delete(c.entities, t)
	return nil
}

// PersistentEntity returns the entity for t, building it on first use.
// Pointer types are dereferenced.
func (c *Context) PersistentEntity(t reflect.Type) (*PersistentEntity, error) {
	if t == nil {
		return nil, &MappingError{Reason: "nil type"}
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	c.mu.RLock()
	entity, ok := c.entities[t]
	ctor := c.constructors[t]
	c.mu.RUnlock()
	if ok {
		return entity, nil
	}

	entity, err := c.buildEntity(t, ctor)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.entities[t]; ok {
		return existing, nil
	}
	c.entities[t] = entity
	return entity, nil
}

// RequiredPersistentEntity is a helper that calls PersistentEntity and
// panics if an error occurs. It is intended for use during application
// initialization.
func (c *Context) RequiredPersistentEntity(t reflect.Type) *PersistentEntity {
	entity, err := c.PersistentEntity(t)
	if err != nil {
		panic(err)
	}
	return entity
}

// Entities returns all entities built so far.
func (c *Context) Entities() []*PersistentEntity {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make([]*PersistentEntity, 0, len(c.entities))
	for _, e := range c.entities {
		result = append(result, e)
	}
	return result
}

// EntityOf returns the entity for T from ctx.
func EntityOf[T any](ctx *Context) (*PersistentEntity, error) {
	return ctx.PersistentEntity(reflect.TypeOf((*T)(nil)).Elem())
}

func (c *Context) buildEntity(t reflect.Type, ctor reflect.Value) (*PersistentEntity, error) {
	if t.Kind() != reflect.Struct {
		return nil, &MappingError{Type: t, Reason: fmt.Sprintf("expected struct, got %s", t.Kind())}
	}

	descriptors, err := beans.PropertyDescriptors(t)
	if err != nil {
		return nil, &MappingError{Type: t, Reason: "introspection failed", Cause: err}
	}

	entity := &PersistentEntity{
		typ:    t,
		name:   c.cfg.NameFunc(t),
		byName: make(map[string]*PersistentProperty, len(descriptors)),
	}

	for _, pd := range descriptors {
		if _, dup := entity.byName[pd.Name()]; dup {
			return nil, &MappingError{Type: t, Reason: fmt.Sprintf("duplicate property %q", pd.Name())}
		}
		if c.cfg.StrictNames && token.IsKeyword(pd.Name()) {
			return nil, &MappingError{Type: t, Reason: fmt.Sprintf("property %q is a Go keyword", pd.Name())}
		}
		p := newPersistentProperty(entity, pd)
		entity.properties = append(entity.properties, p)
		entity.byName[p.name] = p
	}

	entity.constructor = &PreferredConstructor{typ: t}
	if ctor.IsValid() {
		if err := bindConstructor(ctor, entity.properties); err != nil {
			return nil, &MappingError{Type: t, Reason: "registered constructor", Cause: err}
		}
		entity.constructor.params = entity.properties
		entity.constructor.fn = ctor
	} else if entity.IsImmutable() {
		entity.constructor.params = entity.properties
	}

	return entity, nil
}
