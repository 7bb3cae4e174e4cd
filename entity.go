// Package sdecs implements the entity-component-system core of the engine.
//
// Components live in per-type sparse sets: a paged sparse array maps an
// entity index to a position in a dense, contiguous slice of component
// values. Entities are recycled slot indices fenced by a generation counter,
// and every alive entity carries a ComponentMask summarising which component
// types it holds.
//
// The core is single-threaded by design. Callers confine all mutation of an
// EntityManager to one goroutine per frame.
package sdecs

import "strconv"

// Entity is a handle to a game object. It combines the slot Index with the
// Generation the slot had when the handle was issued, so handles to a
// destroyed and recycled slot are detected as stale.
type Entity struct {
	// Index is the recyclable slot index of the entity.
	Index uint32
	// Generation is bumped each time the slot is destroyed.
	Generation uint32
}

// String renders the entity as Entity(index:generation).
func (e Entity) String() string {
	return "Entity(" + strconv.FormatUint(uint64(e.Index), 10) + ":" +
		strconv.FormatUint(uint64(e.Generation), 10) + ")"
}
