package layer

// Layer is one slice of application behavior. Layers are stacked in a List;
// input flows from the top layer down, updates and rendering run bottom up.
// Embed Base to get no-op defaults for the hooks a layer does not need.
type Layer interface {
	OnAttach()
	OnDetach()
	OnActivate()
	OnDeactivate()
	OnEvent(ev InputEvent)
	OnEngineEvent(ev EngineEvent)
	OnUpdate(dt float64)
	OnRender()
	IsActive() bool
	SetActive(active bool)
}

// Base is an always-attachable Layer that does nothing. Layers start active.
type Base struct {
	inactive bool
}

func (*Base) OnAttach()                 {}
func (*Base) OnDetach()                 {}
func (*Base) OnActivate()               {}
func (*Base) OnDeactivate()             {}
func (*Base) OnEvent(InputEvent)        {}
func (*Base) OnEngineEvent(EngineEvent) {}
func (*Base) OnUpdate(float64)          {}
func (*Base) OnRender()                 {}

func (b *Base) IsActive() bool { return !b.inactive }

// SetActive flips the flag only. Use List.SetActive to also run the
// activation hooks.
func (b *Base) SetActive(active bool) { b.inactive = !active }
