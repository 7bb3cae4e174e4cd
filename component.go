package sdecs

import (
	"fmt"
	"reflect"
	"sync"
)

// ComponentID is a dense, process-wide identifier for a component type.
// IDs are assigned sequentially from 0 the first time a type is registered
// and never change afterwards.
type ComponentID uint32

// MaxComponentTypes is the number of distinct component types that can be
// registered in one process.
const MaxComponentTypes = 256

// ComponentTraits is the static descriptor bound to a component type.
type ComponentTraits struct {
	Type reflect.Type
	Name string
	Size uintptr
	ID   ComponentID
}

// componentRegistry hands out component ids. It is global to the process,
// so unlike the managers it is guarded by a mutex.
type componentRegistry struct {
	mu     sync.RWMutex
	byType map[reflect.Type]ComponentID
	traits []ComponentTraits
}

var registry = componentRegistry{
	byType: make(map[reflect.Type]ComponentID, 16),
	traits: make([]ComponentTraits, 0, 16),
}

func (r *componentRegistry) lookup(t reflect.Type) (ComponentTraits, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byType[t]
	if !ok {
		return ComponentTraits{}, false
	}
	return r.traits[id], true
}

func (r *componentRegistry) register(t reflect.Type) ComponentTraits {
	if tr, ok := r.lookup(t); ok {
		return tr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok := r.byType[t]; ok {
		return r.traits[id]
	}
	if len(r.traits) >= MaxComponentTypes {
		panic(fmt.Sprintf("sdecs: cannot register component %s: maximum number of component types (%d) reached", t, MaxComponentTypes))
	}
	tr := ComponentTraits{
		Type: t,
		Name: t.String(),
		Size: t.Size(),
		ID:   ComponentID(len(r.traits)),
	}
	r.byType[t] = tr.ID
	r.traits = append(r.traits, tr)
	return tr
}

func (r *componentRegistry) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.traits)
}

// RegisterComponent registers the component type T and returns its id. If T
// is already registered the existing id is returned. It panics once
// MaxComponentTypes types are registered.
func RegisterComponent[T any]() ComponentID {
	return registry.register(reflect.TypeFor[T]()).ID
}

// ComponentIDOf returns the id of T without registering it.
func ComponentIDOf[T any]() (ComponentID, bool) {
	tr, ok := registry.lookup(reflect.TypeFor[T]())
	return tr.ID, ok
}

// TraitsOf registers T if needed and returns its descriptor.
func TraitsOf[T any]() ComponentTraits {
	return registry.register(reflect.TypeFor[T]())
}

// TraitsByID returns the descriptor registered under id.
func TraitsByID(id ComponentID) (ComponentTraits, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	if int(id) >= len(registry.traits) {
		return ComponentTraits{}, false
	}
	return registry.traits[id], true
}

// RegisteredComponents reports how many component ids have been assigned.
func RegisteredComponents() int {
	return registry.count()
}

func lookupTraits[T any]() (ComponentTraits, bool) {
	return registry.lookup(reflect.TypeFor[T]())
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
