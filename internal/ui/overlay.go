package ui

import (
	"fmt"

	"Lumen3D/internal/engine"
	"Lumen3D/internal/logger"
	"Lumen3D/internal/renderer"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/inkyblackness/imgui-go/v4"
)

// Overlay is the imgui layer: context, GLFW platform, GL backend and panels.
type Overlay struct {
	context  *imgui.Context
	platform *GLFW
	renderer *OpenGL3
	panels   *Panels
}

// NewOverlay must run after the window's GL context is current.
func NewOverlay(window *glfw.Window, state *engine.AppState, camera *renderer.Camera, fontScale float32) (*Overlay, error) {
	context := imgui.CreateContext(nil)
	io := imgui.CurrentIO()

	platform, err := NewGLFWFromExistingWindow(window, io)
	if err != nil {
		context.Destroy()
		return nil, fmt.Errorf("ui: create glfw platform: %w", err)
	}

	ApplyTheme(fontScale)

	glRenderer, err := NewOpenGL3(io)
	if err != nil {
		platform.Dispose()
		context.Destroy()
		return nil, err
	}

	logger.Log.Info("ImGui initialized")
	return &Overlay{
		context:  context,
		platform: platform,
		renderer: glRenderer,
		panels:   NewPanels(state, camera),
	}, nil
}

// OnScroll forwards scroll events imgui does not consume.
func (o *Overlay) OnScroll(handler func(x, y float64)) {
	o.platform.OnScroll(handler)
}

// OnClick forwards left clicks imgui does not consume.
func (o *Overlay) OnClick(handler func(x, y float64)) {
	o.platform.OnClick(handler)
}

// BuildFrame runs the panels; their edits land in the app state before the
// scene is drawn.
func (o *Overlay) BuildFrame() {
	o.platform.NewFrame()
	imgui.NewFrame()
	o.panels.Draw()
	imgui.Render()
}

// WantsInput reports whether imgui is using the mouse or keyboard.
func (o *Overlay) WantsInput() bool {
	io := imgui.CurrentIO()
	return io.WantCaptureMouse() || io.WantCaptureKeyboard()
}

// Draw renders the frame built by BuildFrame.
func (o *Overlay) Draw() {
	o.renderer.Render(o.platform.DisplaySize(), o.platform.FramebufferSize(), imgui.RenderedDrawData())
}

func (o *Overlay) Dispose() {
	o.renderer.Dispose()
	o.platform.Dispose()
	o.context.Destroy()
}
