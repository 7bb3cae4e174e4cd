package layer

import (
	"github.com/rs/zerolog"
)

// List is an ordered stack of layers. Index 0 is the bottom.
type List struct {
	logger zerolog.Logger
	layers []Layer
}

// NewList creates an empty stack that reports unhandled input to logger.
func NewList(logger zerolog.Logger) *List {
	return &List{logger: logger}
}

// Len returns the number of attached layers.
func (l *List) Len() int {
	return len(l.layers)
}

// Layers returns the attached layers bottom to top. The slice must not be
// modified.
func (l *List) Layers() []Layer {
	return l.layers
}

// AttachTop pushes layer on top of the stack and calls its OnAttach.
func (l *List) AttachTop(layer Layer) {
	l.layers = append(l.layers, layer)
	layer.OnAttach()
}

// AttachBottom inserts layer under every other layer and calls its OnAttach.
func (l *List) AttachBottom(layer Layer) {
	l.layers = append(l.layers, nil)
	copy(l.layers[1:], l.layers)
	l.layers[0] = layer
	layer.OnAttach()
}

// Find returns the lowest layer of type T.
func Find[T Layer](l *List) (T, bool) {
	for _, layer := range l.layers {
		if t, ok := layer.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// DetachFirst removes the lowest layer of type T, calls its OnDetach and
// hands it back to the caller.
func DetachFirst[T Layer](l *List) (T, bool) {
	for i, layer := range l.layers {
		if t, ok := layer.(T); ok {
			layer.OnDetach()
			copy(l.layers[i:], l.layers[i+1:])
			l.layers[len(l.layers)-1] = nil
			l.layers = l.layers[:len(l.layers)-1]
			return t, true
		}
	}
	var zero T
	return zero, false
}

// DetachAll detaches every layer, top first.
func (l *List) DetachAll() {
	for i := len(l.layers) - 1; i >= 0; i-- {
		l.layers[i].OnDetach()
		l.layers[i] = nil
	}
	l.layers = l.layers[:0]
}

// SetActive changes the active state of layer and runs OnActivate or
// OnDeactivate. It does nothing when the state is unchanged.
func (l *List) SetActive(layer Layer, active bool) {
	if layer.IsActive() == active {
		return
	}
	layer.SetActive(active)
	if active {
		layer.OnActivate()
	} else {
		layer.OnDeactivate()
	}
}

// Update runs OnUpdate on every active layer, bottom first.
func (l *List) Update(dt float64) {
	for _, layer := range l.layers {
		if layer.IsActive() {
			layer.OnUpdate(dt)
		}
	}
}

// Render runs OnRender on every active layer, bottom first.
func (l *List) Render() {
	for _, layer := range l.layers {
		if layer.IsActive() {
			layer.OnRender()
		}
	}
}

// HandleEvent offers ev to the active layers from the top down and stops at
// the first layer that marks it handled. It reports whether ev was handled.
func (l *List) HandleEvent(ev InputEvent) bool {
	for i := len(l.layers) - 1; i >= 0; i-- {
		layer := l.layers[i]
		if !layer.IsActive() {
			continue
		}
		layer.OnEvent(ev)
		if ev.Handled() {
			return true
		}
	}
	l.missed(ev)
	return false
}

// HandleEngineEvent offers ev to every active layer, top down.
func (l *List) HandleEngineEvent(ev EngineEvent) {
	for i := len(l.layers) - 1; i >= 0; i-- {
		if layer := l.layers[i]; layer.IsActive() {
			layer.OnEngineEvent(ev)
		}
	}
}

func (l *List) missed(ev InputEvent) {
	switch ev := ev.(type) {
	case *KeyPressed:
		l.logger.Debug().Int("key", ev.Key).Int("scancode", ev.Scancode).Bool("repeat", ev.Repeat).Msg("key press not handled")
	case *KeyReleased:
		l.logger.Debug().Int("key", ev.Key).Int("scancode", ev.Scancode).Msg("key release not handled")
	case *CursorPos:
		l.logger.Debug().Float64("x", ev.X).Float64("y", ev.Y).Msg("cursor move not handled")
	case *MouseScroll:
		l.logger.Debug().Float64("x", ev.XOffset).Float64("y", ev.YOffset).Msg("scroll not handled")
	default:
		l.logger.Warn().Stringer("category", ev.Category()).Msg("event was never handled")
	}
}
