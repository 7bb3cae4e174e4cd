package sdecs

import "iter"

// Query iterates over the alive entities whose mask contains a required
// mask. Candidates are taken from the smallest store among the required
// component types and filtered by their full mask.
//
// The candidate list is snapshotted by Reset. Adding or removing components
// or entities while iterating is not supported: collect the entities first,
// then mutate.
type Query struct {
	manager    *EntityManager
	required   ComponentMask
	ids        []ComponentID
	candidates []uint32
	cursor     int
	current    Entity
	unknown    bool
}

// Query builds an iterator over the entities holding every component of
// required. A mask naming a component id that is not registered yields
// nothing until the id is registered and the query is Reset.
//
// Example:
//
//	q := m.Query(sdecs.MaskOf2[Position, Velocity]())
//	for q.Next() {
//	    e := q.Entity()
//	    // ...
//	}
func (m *EntityManager) Query(required ComponentMask) *Query {
	q := &Query{
		manager:  m,
		required: required.Clone(),
		ids:      required.IDs(),
	}
	if !q.checkRegistered() {
		m.logger.Warn().Stringer("mask", q.required).Msg("query on unknown component type")
	}
	q.Reset()
	return q
}

// Reset rewinds the query and re-reads the candidate list, so one Query can
// be reused across frames.
func (q *Query) Reset() {
	q.cursor = 0
	q.candidates = q.candidates[:0]
	if q.unknown && !q.checkRegistered() {
		return
	}
	driver := q.driver()
	if driver == nil {
		return
	}
	q.candidates = append(q.candidates, driver.Indices()...)
}

// checkRegistered reports whether every required id is registered now and
// updates the unknown flag. Registration is permanent, so a query that
// resolved once is never checked again.
func (q *Query) checkRegistered() bool {
	registered := ComponentID(RegisteredComponents())
	for _, id := range q.ids {
		if id >= registered {
			q.unknown = true
			return false
		}
	}
	q.unknown = false
	return true
}

// driver picks the store with the fewest values among the required types. A
// required type without a store means no entity can match.
func (q *Query) driver() EntitySet {
	if len(q.ids) == 0 {
		return q.manager.masks
	}
	var best EntitySet
	for _, id := range q.ids {
		s := q.manager.StoreByID(id)
		if s == nil || s.Len() == 0 {
			return nil
		}
		if best == nil || s.Len() < best.Len() {
			best = s
		}
	}
	return best
}

// Next advances to the next matching entity and reports whether there is one.
func (q *Query) Next() bool {
	m := q.manager
	for q.cursor < len(q.candidates) {
		index := q.candidates[q.cursor]
		q.cursor++
		mask, ok := m.masks.Get(index)
		if !ok || !mask.Contains(q.required) {
			continue
		}
		q.current = m.entity(index)
		return true
	}
	return false
}

// Entity returns the current entity. Only valid after Next returned true.
func (q *Query) Entity() Entity {
	return q.current
}

// All resets the query and yields every match.
func (q *Query) All() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		q.Reset()
		for q.Next() {
			if !yield(q.current) {
				return
			}
		}
	}
}

// Collect resets the query and returns every match in a new slice.
func (q *Query) Collect() []Entity {
	var out []Entity
	for e := range q.All() {
		out = append(out, e)
	}
	return out
}

// Count resets the query and counts the matches.
func (q *Query) Count() int {
	n := 0
	q.Reset()
	for q.Next() {
		n++
	}
	return n
}
