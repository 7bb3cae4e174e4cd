package sdecs

// Builder creates entities that start with one component.
type Builder[T any] struct {
	manager *EntityManager
}

// NewBuilder registers T and returns a builder for entities holding a T.
func NewBuilder[T any](m *EntityManager) *Builder[T] {
	RegisterComponent[T]()
	return &Builder[T]{manager: m}
}

// NewEntity creates an entity holding value.
func (b *Builder[T]) NewEntity(value T) Entity {
	e := b.manager.Create()
	// A fresh entity holds nothing, so the add cannot be rejected.
	_ = AddComponent(b.manager, e, value)
	return e
}

// NewEntities creates count entities, each holding a copy of value.
func (b *Builder[T]) NewEntities(count int, value T) []Entity {
	if count <= 0 {
		return nil
	}
	store := storeOf[T](b.manager, RegisterComponent[T](), true)
	store.Reserve(store.Len() + count)
	ents := make([]Entity, count)
	for i := range ents {
		ents[i] = b.NewEntity(value)
	}
	return ents
}

// Builder2 creates entities that start with two components.
type Builder2[A, B any] struct {
	manager *EntityManager
}

// NewBuilder2 registers A and B and returns a builder for entities holding both.
func NewBuilder2[A, B any](m *EntityManager) *Builder2[A, B] {
	RegisterComponent[A]()
	RegisterComponent[B]()
	return &Builder2[A, B]{manager: m}
}

// NewEntity creates an entity holding a and b.
func (b *Builder2[A, B]) NewEntity(a A, bv B) Entity {
	e := b.manager.Create()
	_ = AddComponent(b.manager, e, a)
	_ = AddComponent(b.manager, e, bv)
	return e
}

// NewEntities creates count entities, each holding copies of a and bv.
func (b *Builder2[A, B]) NewEntities(count int, a A, bv B) []Entity {
	if count <= 0 {
		return nil
	}
	ents := make([]Entity, count)
	for i := range ents {
		ents[i] = b.NewEntity(a, bv)
	}
	return ents
}
