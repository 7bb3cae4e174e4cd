package layer_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdengine/sdecs"
	"github.com/sdengine/sdecs/layer"
	"github.com/sdengine/sdecs/render"
)

// recording logs every hook call into a shared journal.
type recording struct {
	layer.Base
	name    string
	journal *[]string
	consume bool
}

func (r *recording) log(hook string) { *r.journal = append(*r.journal, r.name+"."+hook) }

func (r *recording) OnAttach()     { r.log("attach") }
func (r *recording) OnDetach()     { r.log("detach") }
func (r *recording) OnActivate()   { r.log("activate") }
func (r *recording) OnDeactivate() { r.log("deactivate") }
func (r *recording) OnUpdate(float64) {
	r.log("update")
}
func (r *recording) OnRender() { r.log("render") }
func (r *recording) OnEvent(ev layer.InputEvent) {
	r.log("event")
	if r.consume {
		ev.SetHandled()
	}
}
func (r *recording) OnEngineEvent(layer.EngineEvent) { r.log("engine") }

type other struct {
	layer.Base
}

// go test -run ^TestListOrder$ ./layer -count 1
func TestListOrder(t *testing.T) {
	var journal []string
	l := layer.NewList(zerolog.Nop())
	mid := &recording{name: "mid", journal: &journal}
	top := &recording{name: "top", journal: &journal}
	bottom := &recording{name: "bottom", journal: &journal}
	l.AttachTop(mid)
	l.AttachTop(top)
	l.AttachBottom(bottom)
	assert.Equal(t, []string{"mid.attach", "top.attach", "bottom.attach"}, journal)
	assert.Equal(t, []layer.Layer{bottom, mid, top}, l.Layers())

	journal = nil
	l.Update(0.016)
	l.Render()
	assert.Equal(t, []string{
		"bottom.update", "mid.update", "top.update",
		"bottom.render", "mid.render", "top.render",
	}, journal)

	journal = nil
	assert.False(t, l.HandleEvent(&layer.CursorPos{X: 1, Y: 2}))
	assert.Equal(t, []string{"top.event", "mid.event", "bottom.event"}, journal)
}

// go test -run ^TestListHandledStopsPropagation$ ./layer -count 1
func TestListHandledStopsPropagation(t *testing.T) {
	var journal []string
	l := layer.NewList(zerolog.Nop())
	l.AttachTop(&recording{name: "bottom", journal: &journal})
	l.AttachTop(&recording{name: "mid", journal: &journal, consume: true})
	l.AttachTop(&recording{name: "top", journal: &journal})
	journal = nil

	ev := &layer.KeyPressed{Key: layer.KeySpace}
	assert.True(t, l.HandleEvent(ev))
	assert.True(t, ev.Handled())
	assert.Equal(t, []string{"top.event", "mid.event"}, journal)
}

// go test -run ^TestListUnhandledIsLogged$ ./layer -count 1
func TestListUnhandledIsLogged(t *testing.T) {
	var buf bytes.Buffer
	l := layer.NewList(zerolog.New(&buf).Level(zerolog.DebugLevel))
	l.AttachTop(&other{})
	l.HandleEvent(&layer.KeyPressed{Key: layer.KeyW, Scancode: 17})
	l.HandleEvent(&layer.MousePressed{Button: layer.MouseButtonLeft})

	out := buf.String()
	assert.Contains(t, out, "key press not handled")
	assert.Contains(t, out, `"scancode":17`)
	assert.Contains(t, out, "event was never handled")
	assert.Contains(t, out, `"category":"mouse_pressed"`)
}

// go test -run ^TestListActivation$ ./layer -count 1
func TestListActivation(t *testing.T) {
	var journal []string
	l := layer.NewList(zerolog.Nop())
	r := &recording{name: "r", journal: &journal}
	l.AttachTop(r)
	journal = nil

	l.SetActive(r, true)
	assert.Empty(t, journal, "already active")
	l.SetActive(r, false)
	assert.False(t, r.IsActive())
	l.Update(1)
	l.Render()
	l.HandleEvent(&layer.MouseScroll{YOffset: 1})
	l.HandleEngineEvent(layer.SwapchainOutOfDate{})
	l.SetActive(r, true)
	assert.Equal(t, []string{"r.deactivate", "r.activate"}, journal)
}

// go test -run ^TestListFindAndDetach$ ./layer -count 1
func TestListFindAndDetach(t *testing.T) {
	var journal []string
	l := layer.NewList(zerolog.Nop())
	first := &recording{name: "first", journal: &journal}
	second := &recording{name: "second", journal: &journal}
	l.AttachTop(first)
	l.AttachTop(&other{})
	l.AttachTop(second)

	found, ok := layer.Find[*recording](l)
	require.True(t, ok)
	assert.Same(t, first, found)

	detached, ok := layer.DetachFirst[*recording](l)
	require.True(t, ok)
	assert.Same(t, first, detached)
	assert.Equal(t, 2, l.Len())
	assert.Contains(t, journal, "first.detach")

	found, ok = layer.Find[*recording](l)
	require.True(t, ok)
	assert.Same(t, second, found)

	_, ok = layer.Find[*unused](l)
	assert.False(t, ok)

	journal = nil
	l.DetachAll()
	assert.Zero(t, l.Len())
	assert.Equal(t, []string{"second.detach"}, journal)
}

type unused struct {
	layer.Base
}

// go test -run ^TestScriptedInput$ ./layer -count 1
func TestScriptedInput(t *testing.T) {
	in := layer.NewScriptedInput().
		At(1, &layer.KeyPressed{Key: layer.KeyA}).
		EngineAt(1, layer.WindowResize{Width: 10, Height: 20}).
		CloseAt(2)
	events := layer.NewEngineEventManager()

	assert.Empty(t, in.Poll(events))
	assert.Zero(t, events.Len())
	assert.False(t, in.ShouldClose())

	got := in.Poll(events)
	require.Len(t, got, 1)
	assert.Equal(t, layer.CategoryKeyPressed, got[0].Category())
	assert.True(t, events.HasResizeEvent())
	assert.False(t, in.ShouldClose())

	in.Poll(events)
	assert.True(t, in.ShouldClose())
	assert.Equal(t, 3, in.Frame())
}

// go test -run ^TestApplicationFrameOrder$ ./layer -count 1
func TestApplicationFrameOrder(t *testing.T) {
	var journal []string
	in := layer.NewScriptedInput().
		At(0, &layer.KeyPressed{Key: layer.KeyEnter}).
		EngineAt(0, layer.SwapchainOutOfDate{})
	app := layer.NewApplication(layer.WithInput(in))
	layer.Subscribe(app.Events, func(layer.SwapchainOutOfDate) {
		journal = append(journal, "subscriber")
	})
	app.Layers.AttachTop(&recording{name: "l", journal: &journal})
	journal = nil

	require.NoError(t, app.Frame(0.016))
	assert.Equal(t, []string{"l.event", "subscriber", "l.engine", "l.update", "l.render"}, journal)
	assert.Zero(t, app.Events.Len(), "engine events are cleared after the frame")
	assert.Equal(t, 1, app.Frames())
}

// go test -run ^TestApplicationDrawsRenderables$ ./layer -count 1
func TestApplicationDrawsRenderables(t *testing.T) {
	rec := &render.Recorder{}
	app := layer.NewApplication(layer.WithRenderer(rec))
	m := app.Manager
	e := m.Create()
	require.NoError(t, sdecs.AddComponent(m, e, render.NewTransform(mgl32.Vec3{})))
	require.NoError(t, sdecs.AddComponent(m, e, render.StaticMesh{Mesh: render.Quad()}))
	require.NoError(t, sdecs.AddComponent(m, e, render.Renderable{Material: &render.Material{Name: "m"}}))

	n, err := app.Run(context.Background(), 3, 0.016)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 3, rec.Frames)
	assert.Equal(t, 3, rec.Draws)
	assert.Equal(t, 1, app.Queue().Len())
}

// go test -run ^TestApplicationRunStops$ ./layer -count 1
func TestApplicationRunStops(t *testing.T) {
	app := layer.NewApplication(layer.WithInput(layer.NewScriptedInput().CloseAt(4)))
	n, err := app.Run(context.Background(), 0, 0.016)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n, err = layer.NewApplication().Run(ctx, 10, 0.016)
	assert.Zero(t, n)
	assert.True(t, errors.Is(err, context.Canceled))
}

type failing struct{}

func (failing) Draw(*render.Queue) error { return errors.New("device lost") }

// go test -run ^TestApplicationErrors$ ./layer -count 1
func TestApplicationErrors(t *testing.T) {
	app := layer.NewApplication(layer.WithRenderer(failing{}))
	err := app.Frame(0.016)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "device lost")

	var journal []string
	app = layer.NewApplication()
	app.Layers.AttachTop(&recording{name: "l", journal: &journal})
	app.Close()
	assert.Contains(t, journal, "l.detach")
	assert.ErrorIs(t, app.Frame(0.016), layer.ErrClosed)
}
