package sdecs

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// ComponentMask is a set of component ids, one bit per registered component
// type. The zero value is an empty mask ready to use.
type ComponentMask struct {
	bits *bitset.BitSet
}

// NewMask builds a mask with the given ids set.
func NewMask(ids ...ComponentID) ComponentMask {
	var m ComponentMask
	for _, id := range ids {
		m.Set(id)
	}
	return m
}

// MaskOf1 returns the mask of a single component type, registering it.
func MaskOf1[A any]() ComponentMask {
	return NewMask(RegisterComponent[A]())
}

// MaskOf2 returns the mask of two component types, registering them.
func MaskOf2[A, B any]() ComponentMask {
	return NewMask(RegisterComponent[A](), RegisterComponent[B]())
}

// MaskOf3 returns the mask of three component types, registering them.
func MaskOf3[A, B, C any]() ComponentMask {
	return NewMask(RegisterComponent[A](), RegisterComponent[B](), RegisterComponent[C]())
}

// MaskOf4 returns the mask of four component types, registering them.
func MaskOf4[A, B, C, D any]() ComponentMask {
	return NewMask(RegisterComponent[A](), RegisterComponent[B](), RegisterComponent[C](), RegisterComponent[D]())
}

// Set adds id to the mask.
func (m *ComponentMask) Set(id ComponentID) *ComponentMask {
	if m.bits == nil {
		m.bits = bitset.New(uint(RegisteredComponents()))
	}
	m.bits.Set(uint(id))
	return m
}

// Clear removes id from the mask.
func (m *ComponentMask) Clear(id ComponentID) *ComponentMask {
	if m.bits != nil {
		m.bits.Clear(uint(id))
	}
	return m
}

// Reset removes every id from the mask.
func (m *ComponentMask) Reset() {
	if m.bits != nil {
		m.bits.ClearAll()
	}
}

// Has reports whether id is in the mask.
func (m ComponentMask) Has(id ComponentID) bool {
	return m.bits != nil && m.bits.Test(uint(id))
}

// Contains reports whether m holds every id of required. An empty required
// mask is contained in every mask.
func (m ComponentMask) Contains(required ComponentMask) bool {
	if required.bits == nil || required.bits.None() {
		return true
	}
	if m.bits == nil {
		return false
	}
	return m.bits.IsSuperSet(required.bits)
}

// Intersects reports whether m and other share at least one id. Queries use
// Contains; this is the hook for "any of" matching.
func (m ComponentMask) Intersects(other ComponentMask) bool {
	if m.bits == nil || other.bits == nil {
		return false
	}
	return m.bits.IntersectionCardinality(other.bits) > 0
}

// Equal reports whether both masks hold the same ids, regardless of the
// width of their backing storage.
func (m ComponentMask) Equal(other ComponentMask) bool {
	return m.Contains(other) && other.Contains(m)
}

// Count returns the number of ids in the mask.
func (m ComponentMask) Count() int {
	if m.bits == nil {
		return 0
	}
	return int(m.bits.Count())
}

// Empty reports whether no id is set.
func (m ComponentMask) Empty() bool {
	return m.Count() == 0
}

// IDs lists the ids in ascending order.
func (m ComponentMask) IDs() []ComponentID {
	if m.bits == nil {
		return nil
	}
	ids := make([]ComponentID, 0, m.bits.Count())
	for i, ok := m.bits.NextSet(0); ok; i, ok = m.bits.NextSet(i + 1) {
		ids = append(ids, ComponentID(i))
	}
	return ids
}

// Clone returns a mask that does not share storage with m.
func (m ComponentMask) Clone() ComponentMask {
	if m.bits == nil {
		return ComponentMask{}
	}
	return ComponentMask{bits: m.bits.Clone()}
}

// String lists the component names of the mask, e.g. {render.Transform|render.Renderable}.
func (m ComponentMask) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, id := range m.IDs() {
		if i > 0 {
			sb.WriteByte('|')
		}
		if tr, ok := TraitsByID(id); ok {
			sb.WriteString(tr.Name)
		} else {
			sb.WriteString("?")
		}
	}
	sb.WriteByte('}')
	return sb.String()
}
