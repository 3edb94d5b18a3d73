package ui

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/inkyblackness/imgui-go/v4"
)

// GLFW feeds window size, time, mouse and keyboard state from an existing
// glfw window into imgui.
type GLFW struct {
	imguiIO imgui.IO
	window  *glfw.Window

	time             float64
	mouseJustPressed [3]bool

	onScroll func(x, y float64)
	onClick  func(x, y float64)
}

var glfwButtonIndexByID = map[glfw.MouseButton]int{
	glfw.MouseButton1: 0,
	glfw.MouseButton2: 1,
	glfw.MouseButton3: 2,
}

var glfwButtonIDByIndex = map[int]glfw.MouseButton{
	0: glfw.MouseButton1,
	1: glfw.MouseButton2,
	2: glfw.MouseButton3,
}

// NewGLFWFromExistingWindow installs the imgui input callbacks on window.
// The window keeps its cursor position and framebuffer callbacks.
func NewGLFWFromExistingWindow(window *glfw.Window, io imgui.IO) (*GLFW, error) {
	platform := &GLFW{
		imguiIO: io,
		window:  window,
	}
	platform.setKeyMapping()
	platform.installCallbacks()
	io.SetClipboard(clipboard{window: window})
	return platform, nil
}

// OnScroll chains a second scroll handler behind imgui's; glfw only keeps one
// callback per window.
func (platform *GLFW) OnScroll(handler func(x, y float64)) {
	platform.onScroll = handler
}

// OnClick chains a left click handler for clicks imgui does not consume.
func (platform *GLFW) OnClick(handler func(x, y float64)) {
	platform.onClick = handler
}

func (platform *GLFW) DisplaySize() [2]float32 {
	w, h := platform.window.GetSize()
	return [2]float32{float32(w), float32(h)}
}

func (platform *GLFW) FramebufferSize() [2]float32 {
	w, h := platform.window.GetFramebufferSize()
	return [2]float32{float32(w), float32(h)}
}

// NewFrame must be called before imgui.NewFrame.
func (platform *GLFW) NewFrame() {
	displaySize := platform.DisplaySize()
	platform.imguiIO.SetDisplaySize(imgui.Vec2{X: displaySize[0], Y: displaySize[1]})

	currentTime := glfw.GetTime()
	if platform.time > 0 {
		platform.imguiIO.SetDeltaTime(float32(currentTime - platform.time))
	} else {
		platform.imguiIO.SetDeltaTime(1.0 / 60.0)
	}
	platform.time = currentTime

	// a captured cursor belongs to the camera; hide it from imgui
	captured := platform.window.GetInputMode(glfw.CursorMode) == glfw.CursorDisabled
	if platform.window.GetAttrib(glfw.Focused) != 0 && !captured {
		x, y := platform.window.GetCursorPos()
		platform.imguiIO.SetMousePosition(imgui.Vec2{X: float32(x), Y: float32(y)})
	} else {
		platform.imguiIO.SetMousePosition(imgui.Vec2{X: -math.MaxFloat32, Y: -math.MaxFloat32})
	}

	for i := 0; i < len(platform.mouseJustPressed); i++ {
		down := platform.mouseJustPressed[i] || (platform.window.GetMouseButton(glfwButtonIDByIndex[i]) == glfw.Press)
		platform.imguiIO.SetMouseButtonDown(i, down && !captured)
		platform.mouseJustPressed[i] = false
	}
}

func (platform *GLFW) setKeyMapping() {
	io := platform.imguiIO
	io.KeyMap(imgui.KeyTab, int(glfw.KeyTab))
	io.KeyMap(imgui.KeyLeftArrow, int(glfw.KeyLeft))
	io.KeyMap(imgui.KeyRightArrow, int(glfw.KeyRight))
	io.KeyMap(imgui.KeyUpArrow, int(glfw.KeyUp))
	io.KeyMap(imgui.KeyDownArrow, int(glfw.KeyDown))
	io.KeyMap(imgui.KeyPageUp, int(glfw.KeyPageUp))
	io.KeyMap(imgui.KeyPageDown, int(glfw.KeyPageDown))
	io.KeyMap(imgui.KeyHome, int(glfw.KeyHome))
	io.KeyMap(imgui.KeyEnd, int(glfw.KeyEnd))
	io.KeyMap(imgui.KeyInsert, int(glfw.KeyInsert))
	io.KeyMap(imgui.KeyDelete, int(glfw.KeyDelete))
	io.KeyMap(imgui.KeyBackspace, int(glfw.KeyBackspace))
	io.KeyMap(imgui.KeySpace, int(glfw.KeySpace))
	io.KeyMap(imgui.KeyEnter, int(glfw.KeyEnter))
	io.KeyMap(imgui.KeyEscape, int(glfw.KeyEscape))
	io.KeyMap(imgui.KeyA, int(glfw.KeyA))
	io.KeyMap(imgui.KeyC, int(glfw.KeyC))
	io.KeyMap(imgui.KeyV, int(glfw.KeyV))
	io.KeyMap(imgui.KeyX, int(glfw.KeyX))
	io.KeyMap(imgui.KeyY, int(glfw.KeyY))
	io.KeyMap(imgui.KeyZ, int(glfw.KeyZ))
}

func (platform *GLFW) installCallbacks() {
	platform.window.SetMouseButtonCallback(platform.mouseButtonChange)
	platform.window.SetScrollCallback(platform.mouseScrollChange)
	platform.window.SetKeyCallback(platform.keyChange)
	platform.window.SetCharCallback(platform.charChange)
}

func (platform *GLFW) mouseButtonChange(_ *glfw.Window, rawButton glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	buttonIndex, known := glfwButtonIndexByID[rawButton]
	if known && action == glfw.Press {
		platform.mouseJustPressed[buttonIndex] = true
	}
	if rawButton == glfw.MouseButtonLeft && action == glfw.Press &&
		platform.onClick != nil && !platform.imguiIO.WantCaptureMouse() {
		platform.onClick(platform.window.GetCursorPos())
	}
}

func (platform *GLFW) mouseScrollChange(_ *glfw.Window, x, y float64) {
	platform.imguiIO.AddMouseWheelDelta(float32(x), float32(y))
	if platform.onScroll != nil && !platform.imguiIO.WantCaptureMouse() {
		platform.onScroll(x, y)
	}
}

func (platform *GLFW) keyChange(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action == glfw.Press {
		platform.imguiIO.KeyPress(int(key))
	}
	if action == glfw.Release {
		platform.imguiIO.KeyRelease(int(key))
	}

	platform.imguiIO.KeyCtrl(int(glfw.KeyLeftControl), int(glfw.KeyRightControl))
	platform.imguiIO.KeyShift(int(glfw.KeyLeftShift), int(glfw.KeyRightShift))
	platform.imguiIO.KeyAlt(int(glfw.KeyLeftAlt), int(glfw.KeyRightAlt))
	platform.imguiIO.KeySuper(int(glfw.KeyLeftSuper), int(glfw.KeyRightSuper))
}

func (platform *GLFW) charChange(_ *glfw.Window, char rune) {
	platform.imguiIO.AddInputCharacters(string(char))
}

// Dispose removes the callbacks this platform installed.
func (platform *GLFW) Dispose() {
	platform.window.SetMouseButtonCallback(nil)
	platform.window.SetScrollCallback(nil)
	platform.window.SetKeyCallback(nil)
	platform.window.SetCharCallback(nil)
}

type clipboard struct {
	window *glfw.Window
}

func (board clipboard) Text() (string, error) {
	return board.window.GetClipboardString(), nil
}

func (board clipboard) SetText(text string) {
	board.window.SetClipboardString(text)
}
