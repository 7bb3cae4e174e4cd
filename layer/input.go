package layer

// InputSource feeds the application. A windowing backend implements it by
// draining its native event queue; engine events such as a window resize are
// pushed straight onto the manager.
type InputSource interface {
	Poll(engine *EngineEventManager) []InputEvent
	ShouldClose() bool
}

// ScriptedInput replays a fixed script of events keyed by frame number. It
// stands in for a window in headless runs and tests.
type ScriptedInput struct {
	frame   int
	input   map[int][]InputEvent
	engine  map[int][]EngineEvent
	closeAt int
	closing bool
}

// NewScriptedInput returns an empty script.
func NewScriptedInput() *ScriptedInput {
	return &ScriptedInput{
		input:  make(map[int][]InputEvent),
		engine: make(map[int][]EngineEvent),
	}
}

// At schedules input events for frame.
func (s *ScriptedInput) At(frame int, events ...InputEvent) *ScriptedInput {
	s.input[frame] = append(s.input[frame], events...)
	return s
}

// EngineAt schedules engine events for frame.
func (s *ScriptedInput) EngineAt(frame int, events ...EngineEvent) *ScriptedInput {
	s.engine[frame] = append(s.engine[frame], events...)
	return s
}

// CloseAt makes ShouldClose report true once frame has been polled.
func (s *ScriptedInput) CloseAt(frame int) *ScriptedInput {
	s.closeAt = frame
	s.closing = true
	return s
}

// Poll returns the input of the current frame, pushes its engine events and
// advances to the next frame.
func (s *ScriptedInput) Poll(engine *EngineEventManager) []InputEvent {
	for _, ev := range s.engine[s.frame] {
		engine.Push(ev)
	}
	events := s.input[s.frame]
	s.frame++
	return events
}

func (s *ScriptedInput) ShouldClose() bool {
	return s.closing && s.frame > s.closeAt
}

// Frame returns the number of polls so far.
func (s *ScriptedInput) Frame() int {
	return s.frame
}
