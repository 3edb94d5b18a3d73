package engine

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// InputSurface is the part of a window the input controller drives.
// *glfw.Window satisfies it.
type InputSurface interface {
	GetKey(key glfw.Key) glfw.Action
	SetInputMode(mode glfw.InputMode, value int)
	SetShouldClose(value bool)
}

// InputController turns key state into app actions. Toggles fire on the
// press edge only.
type InputController struct {
	surface InputSurface
	tabDown bool
	f12Down bool
}

func NewInputController(surface InputSurface) *InputController {
	return &InputController{surface: surface}
}

// Poll applies this frame's key state to state and reports whether a
// screenshot was requested.
func (c *InputController) Poll(state *AppState) (screenshot bool) {
	if c.surface.GetKey(glfw.KeyEscape) == glfw.Press {
		c.surface.SetShouldClose(true)
	}

	tab := c.surface.GetKey(glfw.KeyTab) == glfw.Press
	if tab && !c.tabDown {
		c.SetCursorCaptured(state, !state.CursorCaptured)
	}
	c.tabDown = tab

	state.ForceWireframe = c.surface.GetKey(glfw.KeyP) == glfw.Press

	f12 := c.surface.GetKey(glfw.KeyF12) == glfw.Press
	screenshot = f12 && !c.f12Down
	c.f12Down = f12

	return screenshot
}

func (c *InputController) SetCursorCaptured(state *AppState, captured bool) {
	state.CursorCaptured = captured
	if captured {
		c.surface.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		c.surface.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

// MouseLook converts absolute cursor positions into look offsets. The first
// sample after Reset only records the position.
type MouseLook struct {
	lastX, lastY float64
	primed       bool
}

// Move returns the x offset and the y offset with y pointing up.
func (m *MouseLook) Move(x, y float64) (dx, dy float32, ok bool) {
	if !m.primed {
		m.lastX, m.lastY = x, y
		m.primed = true
		return 0, 0, false
	}
	dx = float32(x - m.lastX)
	dy = float32(m.lastY - y)
	m.lastX, m.lastY = x, y
	return dx, dy, true
}

func (m *MouseLook) Reset() {
	m.primed = false
}
