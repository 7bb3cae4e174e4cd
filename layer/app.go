package layer

import (
	"context"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/sdengine/sdecs"
	"github.com/sdengine/sdecs/render"
)

// ErrClosed is returned by Frame after Close.
var ErrClosed = eris.New("application closed")

// Application owns the entity manager and the layer stack and runs frames.
type Application struct {
	Manager *sdecs.EntityManager
	Layers  *List
	Events  *EngineEventManager

	logger    zerolog.Logger
	input     InputSource
	renderer  render.Renderer
	collector *render.Collector
	queue     render.Queue
	frames    int
	closed    bool
}

// AppOption configures an Application.
type AppOption func(*Application)

// WithAppLogger sets the application logger. The layer list and a default
// entity manager log through it too.
func WithAppLogger(logger zerolog.Logger) AppOption {
	return func(a *Application) {
		a.logger = logger
	}
}

// WithManager replaces the default entity manager.
func WithManager(m *sdecs.EntityManager) AppOption {
	return func(a *Application) {
		a.Manager = m
	}
}

// WithInput sets the input source. Without one the application sees no input.
func WithInput(in InputSource) AppOption {
	return func(a *Application) {
		a.input = in
	}
}

// WithRenderer sets the renderer. The default is a render.Recorder.
func WithRenderer(r render.Renderer) AppOption {
	return func(a *Application) {
		a.renderer = r
	}
}

// NewApplication creates an application with no layers attached.
func NewApplication(opts ...AppOption) *Application {
	a := &Application{
		logger: zerolog.Nop(),
		Events: NewEngineEventManager(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.Manager == nil {
		a.Manager = sdecs.NewEntityManager(sdecs.WithLogger(a.logger))
	}
	if a.renderer == nil {
		a.renderer = &render.Recorder{Logger: a.logger}
	}
	a.Layers = NewList(a.logger)
	a.collector = render.NewCollector(a.Manager)
	return a
}

// Renderer returns the renderer frames are drawn with.
func (a *Application) Renderer() render.Renderer {
	return a.renderer
}

// Frames returns the number of completed frames.
func (a *Application) Frames() int {
	return a.frames
}

// Queue returns the draw queue of the last frame.
func (a *Application) Queue() *render.Queue {
	return &a.queue
}

// Frame runs one frame:
//  1. poll input and offer each event to the layers, top down
//  2. dispatch the queued engine events to subscribers and layers
//  3. update, then render the layers
//  4. collect the renderable entities and draw them
//  5. clear the engine events
func (a *Application) Frame(dt float64) error {
	if a.closed {
		return ErrClosed
	}
	if a.input != nil {
		for _, ev := range a.input.Poll(a.Events) {
			a.Layers.HandleEvent(ev)
		}
	}

	if a.Events.HasResizeEvent() {
		a.logger.Debug().Int("frame", a.frames).Msg("surface resized")
	}
	a.Events.Dispatch()
	for _, ev := range a.Events.Events() {
		a.Layers.HandleEngineEvent(ev)
	}

	a.Layers.Update(dt)
	a.Layers.Render()

	a.collector.Collect(&a.queue)
	err := a.renderer.Draw(&a.queue)
	a.Events.Clear()
	a.frames++
	if err != nil {
		return eris.Wrapf(err, "draw frame %d", a.frames-1)
	}
	return nil
}

// Run runs frames with a fixed time step until frames have completed, the
// input source asks to close or ctx is done. A frames value of zero or less
// means no frame limit. It returns the number of frames run.
func (a *Application) Run(ctx context.Context, frames int, dt float64) (int, error) {
	start := a.frames
	a.logger.Info().Int("frames", frames).Float64("dt", dt).Msg("application started")
	for frames <= 0 || a.frames-start < frames {
		if err := ctx.Err(); err != nil {
			return a.frames - start, eris.Wrap(err, "run interrupted")
		}
		if a.input != nil && a.input.ShouldClose() {
			break
		}
		if err := a.Frame(dt); err != nil {
			return a.frames - start, err
		}
	}
	a.logger.Info().Int("frames", a.frames-start).Int("entities", a.Manager.Len()).Msg("application stopped")
	return a.frames - start, nil
}

// Close detaches every layer. Further frames fail with ErrClosed.
func (a *Application) Close() {
	if a.closed {
		return
	}
	a.closed = true
	a.Layers.DetachAll()
	a.Events.Clear()
}
