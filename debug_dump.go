package sdecs

import (
	"fmt"

	"github.com/rs/zerolog"
)

// ComponentNames lists the names of the components e holds, in id order.
func (m *EntityManager) ComponentNames(e Entity) ([]string, error) {
	mask, err := m.MaskOf(e)
	if err != nil {
		return nil, err
	}
	ids := mask.IDs()
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if tr, ok := TraitsByID(id); ok {
			names = append(names, tr.Name)
		}
	}
	return names, nil
}

// LogEntity writes a structured dump of e and its component values at level.
func (m *EntityManager) LogEntity(e Entity, level zerolog.Level) error {
	mask, err := m.MaskOf(e)
	if err != nil {
		return err
	}
	arr := zerolog.Arr()
	for _, id := range mask.IDs() {
		dict := zerolog.Dict().Uint32("component_id", uint32(id))
		if tr, ok := TraitsByID(id); ok {
			dict = dict.Str("component_name", tr.Name)
		}
		if s := m.StoreByID(id); s != nil {
			if v, ok := s.ValueAt(e.Index); ok {
				dict = dict.Str("value", fmt.Sprintf("%+v", v))
			}
		}
		arr = arr.Dict(dict)
	}
	m.logger.WithLevel(level).
		Stringer("entity", e).
		Int("total_components", mask.Count()).
		Array("components", arr).
		Send()
	return nil
}

// LogStores writes the size of every component store at level.
func (m *EntityManager) LogStores(level zerolog.Level) {
	arr := zerolog.Arr()
	for id, s := range m.stores {
		if s == nil {
			continue
		}
		dict := zerolog.Dict().Int("component_id", id).Int("len", s.Len())
		if tr, ok := TraitsByID(ComponentID(id)); ok {
			dict = dict.Str("component_name", tr.Name)
		}
		arr = arr.Dict(dict)
	}
	m.logger.WithLevel(level).
		Int("entities", m.alive).
		Int("capacity", len(m.generations)).
		Array("stores", arr).
		Send()
}
