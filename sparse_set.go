package sdecs

import (
	"iter"
	"math"

	"github.com/rotisserie/eris"
)

const (
	// PageSize is the number of sparse entries allocated at once. Pages are
	// only allocated when an index inside them is first used.
	PageSize  = 1024
	pageShift = 10
	pageMask  = PageSize - 1

	// absent marks a sparse entry with no dense slot.
	absent = math.MaxUint32
)

// EntitySet is the type-erased view of a component store. The manager keeps
// one EntitySet per component id and recovers the typed store with a checked
// downcast.
type EntitySet interface {
	// ComponentID returns the id of the component type stored.
	ComponentID() ComponentID
	// Has reports whether the entity index holds a value.
	Has(index uint32) bool
	// Remove drops the value of the entity index. It returns false if there
	// was none.
	Remove(index uint32) bool
	// Len returns the number of stored values.
	Len() int
	// Clear drops every value.
	Clear()
	// Indices returns the owning entity index of each dense slot.
	Indices() []uint32
	// ValueAt returns the stored value boxed in an interface, for debugging.
	ValueAt(index uint32) (any, bool)
	// Validate checks the sparse/dense round-trip invariant.
	Validate() error
}

// SparseEntitySet stores the values of one component type keyed by entity
// index. Values live in a dense slice that is kept compact by swap-removal, so
// iteration order is not preserved across removals.
//
// Entity liveness is not checked here; that is the EntityManager's job.
type SparseEntitySet[T any] struct {
	sparse  [][]uint32 // pages of entity index -> dense index
	dense   []T
	indices []uint32 // dense index -> entity index
	id      ComponentID
}

var _ EntitySet = (*SparseEntitySet[struct{}])(nil)

// NewSparseEntitySet creates an empty store for the component id.
func NewSparseEntitySet[T any](id ComponentID) *SparseEntitySet[T] {
	return &SparseEntitySet[T]{id: id}
}

// ComponentID returns the id of the stored component type.
func (s *SparseEntitySet[T]) ComponentID() ComponentID {
	return s.id
}

// Reserve grows the dense storage so that n values fit without reallocation.
func (s *SparseEntitySet[T]) Reserve(n int) {
	if n > cap(s.dense) {
		dense := make([]T, len(s.dense), n)
		copy(dense, s.dense)
		s.dense = dense
		indices := make([]uint32, len(s.indices), n)
		copy(indices, s.indices)
		s.indices = indices
	}
}

func (s *SparseEntitySet[T]) lookup(index uint32) uint32 {
	page := int(index >> pageShift)
	if page >= len(s.sparse) || s.sparse[page] == nil {
		return absent
	}
	return s.sparse[page][index&pageMask]
}

// entry returns the sparse slot of index, allocating its page on demand.
func (s *SparseEntitySet[T]) entry(index uint32) *uint32 {
	page := int(index >> pageShift)
	if page >= len(s.sparse) {
		s.sparse = extendSlice(s.sparse, page+1-len(s.sparse))
	}
	if s.sparse[page] == nil {
		p := make([]uint32, PageSize)
		for i := range p {
			p[i] = absent
		}
		s.sparse[page] = p
	}
	return &s.sparse[page][index&pageMask]
}

// Add stores value for the entity index. It fails with ErrDuplicateComponent
// if the index already holds a value.
func (s *SparseEntitySet[T]) Add(index uint32, value T) error {
	slot := s.entry(index)
	if *slot != absent {
		return eris.Wrapf(ErrDuplicateComponent, "entity index %d", index)
	}
	*slot = uint32(len(s.dense))
	s.dense = append(s.dense, value)
	s.indices = append(s.indices, index)
	if debugInvariants {
		s.mustValidate()
	}
	return nil
}

// Remove swap-removes the value of the entity index: the last dense value
// moves into the freed slot. It returns false if the index held nothing.
func (s *SparseEntitySet[T]) Remove(index uint32) bool {
	pos := s.lookup(index)
	if pos == absent {
		return false
	}
	last := uint32(len(s.dense) - 1)
	if pos != last {
		moved := s.indices[last]
		s.dense[pos] = s.dense[last]
		s.indices[pos] = moved
		*s.entry(moved) = pos
	}
	var zero T
	s.dense[last] = zero
	s.dense = s.dense[:last]
	s.indices = s.indices[:last]
	*s.entry(index) = absent
	if debugInvariants {
		s.mustValidate()
	}
	return true
}

// Has reports whether the entity index holds a value.
func (s *SparseEntitySet[T]) Has(index uint32) bool {
	return s.lookup(index) != absent
}

// Get returns a pointer to the value of the entity index. The pointer is
// invalidated by the next Add or Remove on this set.
func (s *SparseEntitySet[T]) Get(index uint32) (*T, bool) {
	pos := s.lookup(index)
	if pos == absent {
		return nil, false
	}
	return &s.dense[pos], true
}

// ValueAt implements EntitySet.
func (s *SparseEntitySet[T]) ValueAt(index uint32) (any, bool) {
	v, ok := s.Get(index)
	if !ok {
		return nil, false
	}
	return *v, true
}

// Len returns the number of stored values.
func (s *SparseEntitySet[T]) Len() int {
	return len(s.dense)
}

// Clear drops every value but keeps the allocated pages.
func (s *SparseEntitySet[T]) Clear() {
	for _, index := range s.indices {
		*s.entry(index) = absent
	}
	clear(s.dense)
	s.dense = s.dense[:0]
	s.indices = s.indices[:0]
}

// Dense exposes the packed values. Dense()[i] belongs to entity index
// Indices()[i].
func (s *SparseEntitySet[T]) Dense() []T {
	return s.dense
}

// Indices exposes the owning entity index of each dense slot.
func (s *SparseEntitySet[T]) Indices() []uint32 {
	return s.indices
}

// All iterates over entity index and value pointer pairs in dense order.
// The set must not be modified during iteration.
func (s *SparseEntitySet[T]) All() iter.Seq2[uint32, *T] {
	return func(yield func(uint32, *T) bool) {
		for i := range s.dense {
			if !yield(s.indices[i], &s.dense[i]) {
				return
			}
		}
	}
}

// Validate checks that sparse[indices[i]] == i for every dense slot and that
// no other sparse entry is set.
func (s *SparseEntitySet[T]) Validate() error {
	if len(s.dense) != len(s.indices) {
		return eris.Errorf("component %d: %d values but %d indices", s.id, len(s.dense), len(s.indices))
	}
	for i, index := range s.indices {
		if got := s.lookup(index); got != uint32(i) {
			return eris.Errorf("component %d: entity index %d maps to dense %d, want %d", s.id, index, got, i)
		}
	}
	mapped := 0
	for _, page := range s.sparse {
		for _, pos := range page {
			if pos != absent {
				mapped++
			}
		}
	}
	if mapped != len(s.dense) {
		return eris.Errorf("component %d: %d sparse entries for %d values", s.id, mapped, len(s.dense))
	}
	return nil
}

func (s *SparseEntitySet[T]) mustValidate() {
	if err := s.Validate(); err != nil {
		panic(err)
	}
}
