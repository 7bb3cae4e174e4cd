package sdecs

import (
	"fmt"
	"math"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// EntityManager owns the entity slots, their generations and every component
// store. It is not safe for concurrent use.
type EntityManager struct {
	logger      zerolog.Logger
	generations []uint32    // entity index -> current generation
	freeList    []uint32    // recycled indices, reused LIFO
	stores      []EntitySet // component id -> store, nil until first add
	masks       *SparseEntitySet[ComponentMask]
	alive       int
}

// Option configures an EntityManager.
type Option func(*EntityManager)

// WithLogger sets the sink used to report rejected operations.
func WithLogger(logger zerolog.Logger) Option {
	return func(m *EntityManager) {
		m.logger = logger
	}
}

// WithInitialCapacity pre-sizes the manager for n entities.
func WithInitialCapacity(n int) Option {
	return func(m *EntityManager) {
		if n <= 0 {
			return
		}
		m.generations = make([]uint32, 0, n)
		m.freeList = make([]uint32, 0, n)
		m.masks.Reserve(n)
	}
}

// NewEntityManager creates an empty manager.
//
// Parameters:
//   - opts: Options applied in order, see WithLogger and WithInitialCapacity.
//
// Returns:
//   - The new EntityManager. Its logger defaults to a no-op logger.
func NewEntityManager(opts ...Option) *EntityManager {
	m := &EntityManager{
		logger: zerolog.Nop(),
		masks:  NewSparseEntitySet[ComponentMask](MaxComponentTypes),
		stores: make([]EntitySet, 0, 16),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Logger returns the manager's logging sink.
func (m *EntityManager) Logger() *zerolog.Logger {
	return &m.logger
}

// Create returns a new alive entity. The most recently freed index is reused
// first; otherwise a new slot with generation 0 is appended.
func (m *EntityManager) Create() Entity {
	var index uint32
	if n := len(m.freeList); n > 0 {
		index = m.freeList[n-1]
		m.freeList = m.freeList[:n-1]
	} else {
		if len(m.generations) == math.MaxUint32 {
			panic("sdecs: entity index space exhausted")
		}
		index = uint32(len(m.generations))
		m.generations = append(m.generations, 0)
	}
	// Every alive entity owns exactly one mask entry, even without components.
	if err := m.masks.Add(index, ComponentMask{}); err != nil {
		panic(fmt.Sprintf("sdecs: free slot %d still has a mask: %v", index, err))
	}
	m.alive++
	e := Entity{Index: index, Generation: m.generations[index]}
	m.logger.Trace().Stringer("entity", e).Msg("entity created")
	return e
}

// IsAlive reports whether e refers to a live entity: its index is in range,
// its generation is current and the slot is not on the free list.
func (m *EntityManager) IsAlive(e Entity) bool {
	return int(e.Index) < len(m.generations) &&
		m.generations[e.Index] == e.Generation &&
		m.masks.Has(e.Index)
}

// Destroy removes e and all its components. The slot's generation is bumped
// so every copy of e becomes stale, and the index is queued for reuse. A slot
// whose generation would wrap around is retired instead of recycled.
func (m *EntityManager) Destroy(e Entity) error {
	if !m.IsAlive(e) {
		return m.stale("destroy entity", e)
	}
	mask, _ := m.masks.Get(e.Index)
	for _, id := range mask.IDs() {
		if int(id) < len(m.stores) && m.stores[id] != nil {
			m.stores[id].Remove(e.Index)
		}
	}
	m.masks.Remove(e.Index)
	m.alive--
	if m.generations[e.Index] == math.MaxUint32 {
		m.logger.Debug().Stringer("entity", e).Msg("retiring entity slot, generation exhausted")
		return nil
	}
	m.generations[e.Index]++
	m.freeList = append(m.freeList, e.Index)
	m.logger.Trace().Stringer("entity", e).Msg("entity destroyed")
	return nil
}

// Clear destroys every alive entity.
func (m *EntityManager) Clear() {
	indices := append([]uint32(nil), m.masks.Indices()...)
	for _, index := range indices {
		_ = m.Destroy(Entity{Index: index, Generation: m.generations[index]})
	}
}

// Len returns the number of alive entities.
func (m *EntityManager) Len() int {
	return m.alive
}

// Capacity returns the number of entity slots ever created.
func (m *EntityManager) Capacity() int {
	return len(m.generations)
}

// MaskOf returns a copy of the component mask of e.
func (m *EntityManager) MaskOf(e Entity) (ComponentMask, error) {
	if !m.IsAlive(e) {
		return ComponentMask{}, m.stale("read mask", e)
	}
	mask, _ := m.masks.Get(e.Index)
	return mask.Clone(), nil
}

// StoreByID returns the type-erased store of a component id, or nil if no
// value of that type was ever added.
func (m *EntityManager) StoreByID(id ComponentID) EntitySet {
	if int(id) >= len(m.stores) {
		return nil
	}
	return m.stores[id]
}

// entity rebuilds the current handle of an alive index.
func (m *EntityManager) entity(index uint32) Entity {
	return Entity{Index: index, Generation: m.generations[index]}
}

func (m *EntityManager) stale(op string, e Entity) error {
	err := eris.Wrapf(ErrStaleHandle, "%s %s", op, e)
	m.logger.Warn().Str("op", op).Stringer("entity", e).Msg("stale entity handle")
	return err
}

func (m *EntityManager) unknown(op string, name string) error {
	err := eris.Wrapf(ErrUnknownComponentType, "%s %s", op, name)
	m.logger.Warn().Str("op", op).Str("component", name).Msg("unknown component type")
	return err
}
