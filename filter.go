package sdecs

// Filter iterates directly over the dense values of one component type,
// optionally restricted to entities that also hold every component of an
// extra mask. It is the typed fast path for systems that mostly touch one
// component.
//
// Like Query, a Filter must not be used while components or entities are
// added or removed.
type Filter[T any] struct {
	manager *EntityManager
	store   *SparseEntitySet[T]
	extra   ComponentMask
	curIdx  int
	curEnt  Entity
}

// NewFilter creates a filter over every entity holding a T and every
// component of the optional extra masks.
//
// Parameters:
//   - m: The EntityManager to read.
//   - extra: Additional masks an entity must contain to be visited.
//
// Returns:
//   - A pointer to the newly created Filter[T].
func NewFilter[T any](m *EntityManager, extra ...ComponentMask) *Filter[T] {
	RegisterComponent[T]()
	var required ComponentMask
	for _, x := range extra {
		for _, id := range x.IDs() {
			required.Set(id)
		}
	}
	f := &Filter[T]{manager: m, extra: required}
	f.Reset()
	return f
}

// Reset rewinds the filter. The store is looked up again, so a filter made
// before the first T was added starts seeing values once they exist.
func (f *Filter[T]) Reset() {
	if f.store == nil {
		f.store = Store[T](f.manager)
	}
	f.curIdx = -1
}

// Next advances to the next matching entity.
func (f *Filter[T]) Next() bool {
	if f.store == nil {
		return false
	}
	indices := f.store.Indices()
	for f.curIdx+1 < len(indices) {
		f.curIdx++
		index := indices[f.curIdx]
		if !f.extra.Empty() {
			mask, _ := f.manager.masks.Get(index)
			if !mask.Contains(f.extra) {
				continue
			}
		}
		f.curEnt = f.manager.entity(index)
		return true
	}
	return false
}

// Entity returns the current entity.
func (f *Filter[T]) Entity() Entity {
	return f.curEnt
}

// Get returns a pointer to the T of the current entity.
func (f *Filter[T]) Get() *T {
	return &f.store.Dense()[f.curIdx]
}

// Entities collects the matching entities into a new slice.
func (f *Filter[T]) Entities() []Entity {
	var out []Entity
	f.Reset()
	for f.Next() {
		out = append(out, f.curEnt)
	}
	return out
}
