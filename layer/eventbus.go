package layer

import (
	"reflect"
	"slices"
)

// MaxEventTypes is the number of distinct engine event types that can be
// subscribed to.
const MaxEventTypes = 256

// EngineEventManager queues the engine events of a frame and dispatches them
// to typed subscribers. The queue is cleared by the application at the end
// of every frame.
//
// Subscribers are keyed by the concrete event type. Dispatching a queued event
// performs one map lookup and calls the handlers in subscription order.
type EngineEventManager struct {
	events     []EngineEvent
	typeIDs    map[reflect.Type]uint8
	handlers   [MaxEventTypes][]func(EngineEvent)
	nextTypeID int
}

// NewEngineEventManager returns an empty manager with a small preallocated
// queue.
func NewEngineEventManager() *EngineEventManager {
	return &EngineEventManager{
		events:  make([]EngineEvent, 0, 8),
		typeIDs: make(map[reflect.Type]uint8),
	}
}

// Push queues ev for the current frame.
func (m *EngineEventManager) Push(ev EngineEvent) {
	m.events = append(m.events, ev)
}

// Events returns the queued events in push order. The slice is only valid
// until the next Push or Clear.
func (m *EngineEventManager) Events() []EngineEvent {
	return m.events
}

// Len returns the number of queued events.
func (m *EngineEventManager) Len() int {
	return len(m.events)
}

// HasResizeEvent reports whether a window resize or an out of date swapchain
// was queued this frame.
func (m *EngineEventManager) HasResizeEvent() bool {
	return slices.ContainsFunc(m.events, func(ev EngineEvent) bool {
		c := ev.Category()
		return c == CategoryWindowResize || c == CategorySwapchainOutOfDate
	})
}

// Clear drops every queued event. Subscriptions are kept.
func (m *EngineEventManager) Clear() {
	clear(m.events)
	m.events = m.events[:0]
}

// ClearCategory drops the queued events of category c and keeps the order of
// the rest.
func (m *EngineEventManager) ClearCategory(c EngineCategory) {
	n := len(m.events)
	m.events = slices.DeleteFunc(m.events, func(ev EngineEvent) bool {
		return ev.Category() == c
	})
	clear(m.events[len(m.events):n])
}

// Subscribe registers handler for events of type T. Handlers are called in
// the order they were subscribed.
//
// Parameters:
//   - m: The manager to subscribe to.
//   - handler: A function that takes a single argument of type T.
func Subscribe[T EngineEvent](m *EngineEventManager, handler func(T)) {
	id := m.typeID(reflect.TypeFor[T]())
	if cap(m.handlers[id]) == 0 {
		m.handlers[id] = make([]func(EngineEvent), 0, 4)
	}
	m.handlers[id] = append(m.handlers[id], func(ev EngineEvent) {
		handler(ev.(T))
	})
}

// Publish calls the subscribers of T immediately without queueing the event.
func Publish[T EngineEvent](m *EngineEventManager, ev T) {
	if id, ok := m.typeIDs[reflect.TypeFor[T]()]; ok {
		for _, h := range m.handlers[id] {
			h(ev)
		}
	}
}

// Dispatch delivers every queued event to the subscribers of its concrete
// type. Events without subscribers are skipped. The queue is left intact.
func (m *EngineEventManager) Dispatch() {
	for _, ev := range m.events {
		m.deliver(ev)
	}
}

func (m *EngineEventManager) deliver(ev EngineEvent) {
	id, ok := m.typeIDs[reflect.TypeOf(ev)]
	if !ok {
		return
	}
	for _, h := range m.handlers[id] {
		h(ev)
	}
}

// typeID retrieves or assigns the handler slot of t.
func (m *EngineEventManager) typeID(t reflect.Type) uint8 {
	if m.typeIDs == nil {
		m.typeIDs = make(map[reflect.Type]uint8)
	}
	if id, ok := m.typeIDs[t]; ok {
		return id
	}
	if m.nextTypeID >= MaxEventTypes {
		panic("layer: too many engine event types")
	}
	id := uint8(m.nextTypeID)
	m.nextTypeID++
	m.typeIDs[t] = id
	return id
}
