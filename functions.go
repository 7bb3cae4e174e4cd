package sdecs

import (
	"fmt"

	"github.com/rotisserie/eris"
)

// AddComponent attaches value to e and sets the matching mask bit. It fails
// with ErrStaleHandle if e is not alive and with ErrDuplicateComponent if e
// already holds a T, in which case the stored value is left unchanged.
//
// Parameters:
//   - m: The EntityManager owning e.
//   - e: The entity to modify.
//   - value: The component value, copied into the T store.
func AddComponent[T any](m *EntityManager, e Entity, value T) error {
	if !m.IsAlive(e) {
		return m.stale("add component", e)
	}
	traits := TraitsOf[T]()
	store := storeOf[T](m, traits.ID, true)
	if err := store.Add(e.Index, value); err != nil {
		m.logger.Error().Stringer("entity", e).Str("component", traits.Name).Msg("duplicate component")
		return eris.Wrapf(err, "add %s to %s", traits.Name, e)
	}
	mask, _ := m.masks.Get(e.Index)
	mask.Set(traits.ID)
	return nil
}

// RemoveComponent detaches the T of e and clears the mask bit. Removing a
// component e does not hold is a no-op.
func RemoveComponent[T any](m *EntityManager, e Entity) error {
	if !m.IsAlive(e) {
		return m.stale("remove component", e)
	}
	id, ok := ComponentIDOf[T]()
	if !ok {
		return nil
	}
	store := storeOf[T](m, id, false)
	if store == nil || !store.Remove(e.Index) {
		return nil
	}
	mask, _ := m.masks.Get(e.Index)
	mask.Clear(id)
	return nil
}

// GetComponent returns a pointer to the T of e for in-place mutation. The
// pointer stays valid until the next add or remove of a T on any entity.
//
// Returns:
//   - ErrStaleHandle if e is not alive.
//   - ErrUnknownComponentType if T was never registered.
//   - ErrComponentNotFound if e holds no T.
func GetComponent[T any](m *EntityManager, e Entity) (*T, error) {
	if !m.IsAlive(e) {
		return nil, m.stale("get component", e)
	}
	traits, ok := lookupTraits[T]()
	if !ok {
		return nil, m.unknown("get component", typeName[T]())
	}
	store := storeOf[T](m, traits.ID, false)
	if store == nil {
		return nil, eris.Wrapf(ErrComponentNotFound, "%s on %s", traits.Name, e)
	}
	v, ok := store.Get(e.Index)
	if !ok {
		return nil, eris.Wrapf(ErrComponentNotFound, "%s on %s", traits.Name, e)
	}
	return v, nil
}

// TryGetComponent is GetComponent without the error detail.
func TryGetComponent[T any](m *EntityManager, e Entity) (*T, bool) {
	v, err := GetComponent[T](m, e)
	return v, err == nil
}

// HasComponent reports whether e is alive and holds a T.
func HasComponent[T any](m *EntityManager, e Entity) bool {
	if !m.IsAlive(e) {
		return false
	}
	id, ok := ComponentIDOf[T]()
	if !ok {
		return false
	}
	mask, _ := m.masks.Get(e.Index)
	return mask.Has(id)
}

// Store returns the typed store of T, or nil if no T was ever added. Callers
// may read and mutate values in place but must add and remove components
// through the manager so masks stay in sync.
func Store[T any](m *EntityManager) *SparseEntitySet[T] {
	id, ok := ComponentIDOf[T]()
	if !ok {
		return nil
	}
	return storeOf[T](m, id, false)
}

// Each calls fn for every entity holding a T, in dense order. fn must not
// add or remove components or entities.
func Each[T any](m *EntityManager, fn func(Entity, *T)) {
	store := Store[T](m)
	if store == nil {
		return
	}
	for index, v := range store.All() {
		fn(m.entity(index), v)
	}
}

// storeOf recovers the typed store registered under id, creating it when
// create is set.
func storeOf[T any](m *EntityManager, id ComponentID, create bool) *SparseEntitySet[T] {
	if int(id) < len(m.stores) && m.stores[id] != nil {
		s, ok := m.stores[id].(*SparseEntitySet[T])
		if !ok {
			panic(fmt.Sprintf("sdecs: store %d holds %T, not values of %s", id, m.stores[id], typeName[T]()))
		}
		return s
	}
	if !create {
		return nil
	}
	if int(id) >= len(m.stores) {
		m.stores = extendSlice(m.stores, int(id)+1-len(m.stores))
	}
	s := NewSparseEntitySet[T](id)
	m.stores[id] = s
	return s
}
