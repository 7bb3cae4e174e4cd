// Package layer drives the frame loop. An Application polls an InputSource,
// routes input events down a stack of Layers, dispatches engine events,
// updates and renders the layers and finally hands the collected draw queue
// to a render.Renderer.
package layer

import "fmt"

// InputCategory identifies the kind of an InputEvent.
type InputCategory uint8

const (
	CategoryMousePressed InputCategory = iota
	CategoryMouseReleased
	CategoryKeyPressed
	CategoryKeyReleased
	CategoryMouseScroll
	CategoryCursorPos
)

var inputCategoryNames = [...]string{
	CategoryMousePressed:  "mouse_pressed",
	CategoryMouseReleased: "mouse_released",
	CategoryKeyPressed:    "key_pressed",
	CategoryKeyReleased:   "key_released",
	CategoryMouseScroll:   "mouse_scroll",
	CategoryCursorPos:     "cursor_pos",
}

func (c InputCategory) String() string {
	if int(c) < len(inputCategoryNames) {
		return inputCategoryNames[c]
	}
	return fmt.Sprintf("InputCategory(%d)", uint8(c))
}

// Key codes follow the GLFW numbering so a windowing backend can pass its
// codes through unchanged.
const (
	KeySpace  = 32
	KeyA      = 65
	KeyD      = 68
	KeyS      = 83
	KeyW      = 87
	KeyEscape = 256
	KeyEnter  = 257
	KeyDelete = 261
)

// Mouse buttons.
const (
	MouseButtonLeft   = 0
	MouseButtonRight  = 1
	MouseButtonMiddle = 2
)

// InputEvent is a user input event. A layer that consumes an event marks it
// handled so layers below it never see it.
type InputEvent interface {
	Category() InputCategory
	Handled() bool
	SetHandled()
}

// handledFlag implements the handled part of InputEvent.
type handledFlag struct {
	handled bool
}

func (h *handledFlag) Handled() bool { return h.handled }
func (h *handledFlag) SetHandled()   { h.handled = true }

type MousePressed struct {
	handledFlag
	Button int
	Mods   int
	Repeat bool
}

func (*MousePressed) Category() InputCategory { return CategoryMousePressed }

type MouseReleased struct {
	handledFlag
	Button int
	Mods   int
}

func (*MouseReleased) Category() InputCategory { return CategoryMouseReleased }

type KeyPressed struct {
	handledFlag
	Key      int
	Scancode int
	Mods     int
	Repeat   bool
}

func (*KeyPressed) Category() InputCategory { return CategoryKeyPressed }

type KeyReleased struct {
	handledFlag
	Key      int
	Scancode int
	Mods     int
}

func (*KeyReleased) Category() InputCategory { return CategoryKeyReleased }

type MouseScroll struct {
	handledFlag
	XOffset, YOffset float64
}

func (*MouseScroll) Category() InputCategory { return CategoryMouseScroll }

type CursorPos struct {
	handledFlag
	X, Y float64
}

func (*CursorPos) Category() InputCategory { return CategoryCursorPos }

// EngineCategory identifies the kind of an EngineEvent.
type EngineCategory uint8

const (
	CategoryWindowResize EngineCategory = iota
	CategorySwapchainOutOfDate
)

func (c EngineCategory) String() string {
	switch c {
	case CategoryWindowResize:
		return "window_resize"
	case CategorySwapchainOutOfDate:
		return "swapchain_out_of_date"
	}
	return fmt.Sprintf("EngineCategory(%d)", uint8(c))
}

// EngineEvent is raised by the engine itself, not by the user. Engine events
// are queued during a frame and cleared at its end.
type EngineEvent interface {
	Category() EngineCategory
}

type WindowResize struct {
	Width, Height int
}

func (WindowResize) Category() EngineCategory { return CategoryWindowResize }

type SwapchainOutOfDate struct{}

func (SwapchainOutOfDate) Category() EngineCategory { return CategorySwapchainOutOfDate }
