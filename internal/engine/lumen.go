package engine

import (
	"fmt"

	"Lumen3D/internal/logger"
	"Lumen3D/internal/renderer"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

type screenshotter interface {
	Screenshot(dir string) (string, error)
}

// Lumen owns the window, the renderer and the per-frame loop. All of its
// methods must be called from the OS thread locked in main.
type Lumen struct {
	Config Config
	State  *AppState
	Camera *renderer.Camera

	// Window size in screen coordinates; the viewport follows the framebuffer.
	Width  int32
	Height int32

	rendererAPI renderer.Render
	window      *glfw.Window
	input       *InputController
	look        MouseLook

	onUpdateCallback func(deltaTime float64) // before the scene is drawn, e.g. building UI
	onRenderCallback func(deltaTime float64) // after the scene is drawn, e.g. UI draw data

	// EnableCameraInput is cleared while the UI wants the mouse or keyboard
	// and the cursor is free. See SetUIWantsInput.
	EnableCameraInput bool

	lastClearColor [4]float32
}

func NewLumen(cfg Config) (*Lumen, error) {
	state, err := NewAppState(cfg)
	if err != nil {
		return nil, err
	}
	return &Lumen{
		Config: cfg,
		State:  state,
		Camera: renderer.NewDefaultCamera(),
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		rendererAPI: renderer.NewOpenGLRenderer(renderer.RendererOptions{
			Lighting:        state.Lighting,
			Overlays:        state.Overlays,
			DiffuseTexture:  cfg.Textures.Diffuse,
			SpecularTexture: cfg.Textures.Specular,
		}),
		EnableCameraInput: true,
	}, nil
}

// Open creates the window and GL context and initializes the renderer.
func (lumen *Lumen) Open() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("engine: init glfw: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(int(lumen.Width), int(lumen.Height), lumen.Config.Window.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("engine: create window: %w", err)
	}
	lumen.window = window
	window.MakeContextCurrent()
	if lumen.Config.Window.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	fbWidth, fbHeight := window.GetFramebufferSize()
	if err := lumen.rendererAPI.Init(int32(fbWidth), int32(fbHeight)); err != nil {
		window.Destroy()
		glfw.Terminate()
		return fmt.Errorf("engine: %w", err)
	}

	lumen.input = NewInputController(window)
	lumen.input.SetCursorCaptured(lumen.State, false)

	window.SetFramebufferSizeCallback(lumen.framebufferSizeCallback)
	window.SetSizeCallback(lumen.sizeCallback)
	window.SetCursorPosCallback(lumen.mouseCallback)
	window.SetScrollCallback(func(_ *glfw.Window, x, y float64) { lumen.HandleScroll(x, y) })
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if button == glfw.MouseButtonLeft && action == glfw.Press {
			lumen.HandleClick(w.GetCursorPos())
		}
	})

	lumen.lastClearColor = lumen.State.ClearColor
	matchTitleBar(window, lumen.State.ClearColor)

	logger.Log.Info("Window opened",
		zap.String("variant", lumen.State.Variant),
		zap.Int32("width", lumen.Width),
		zap.Int32("height", lumen.Height))
	return nil
}

// RenderLoop runs until the window is asked to close.
func (lumen *Lumen) RenderLoop() {
	lastTime := glfw.GetTime()

	for !lumen.window.ShouldClose() {
		currentTime := glfw.GetTime()
		deltaTime := currentTime - lastTime
		lastTime = currentTime

		glfw.PollEvents()

		// minimized: block until something happens instead of spinning
		if lumen.minimized() {
			glfw.WaitEvents()
			lastTime = glfw.GetTime()
			continue
		}

		lumen.State.Timer.Tick(deltaTime)
		lumen.State.Clock.Advance(deltaTime)
		screenshot := lumen.input.Poll(lumen.State)
		if lumen.EnableCameraInput {
			lumen.Camera.ProcessKeyboard(lumen.window, float32(deltaTime))
		}

		if lumen.onUpdateCallback != nil {
			lumen.onUpdateCallback(deltaTime)
		}
		if lumen.State.ClearColor != lumen.lastClearColor {
			lumen.lastClearColor = lumen.State.ClearColor
			matchTitleBar(lumen.window, lumen.State.ClearColor)
		}

		aspect := float32(lumen.Width) / float32(lumen.Height)
		lumen.rendererAPI.Render(lumen.State.Frame(lumen.Camera, aspect))

		if lumen.onRenderCallback != nil {
			lumen.onRenderCallback(deltaTime)
		}

		if screenshot {
			lumen.takeScreenshot()
		}

		lumen.window.SwapBuffers()
	}
}

func (lumen *Lumen) minimized() bool {
	return lumen.Width <= 0 || lumen.Height <= 0
}

// Close releases GPU resources and the window, in that order.
func (lumen *Lumen) Close() {
	if lumen.window == nil {
		return
	}
	lumen.rendererAPI.Cleanup()
	lumen.window.Destroy()
	lumen.window = nil
	glfw.Terminate()
	logger.Log.Info("Window closed")
}

func (lumen *Lumen) takeScreenshot() {
	shooter, ok := lumen.rendererAPI.(screenshotter)
	if !ok {
		return
	}
	if _, err := shooter.Screenshot(lumen.Config.ScreenshotDir); err != nil {
		logger.Log.Error("Screenshot failed", zap.Error(err))
	}
}

// SetOnUpdateCallback sets a callback run each frame before the scene is drawn
func (lumen *Lumen) SetOnUpdateCallback(callback func(deltaTime float64)) {
	lumen.onUpdateCallback = callback
}

// SetOnRenderCallback sets a callback run each frame after the scene is drawn
func (lumen *Lumen) SetOnRenderCallback(callback func(deltaTime float64)) {
	lumen.onRenderCallback = callback
}

// GetWindow returns the GLFW window (for UI backends)
func (lumen *Lumen) GetWindow() *glfw.Window {
	return lumen.window
}

// SetUIWantsInput gates camera input on the UI. A captured cursor always
// drives the camera, whatever the hidden cursor hovers.
func (lumen *Lumen) SetUIWantsInput(wants bool) {
	lumen.EnableCameraInput = lumen.State.CursorCaptured || !wants
}

// HandleScroll zooms the camera.
func (lumen *Lumen) HandleScroll(_, yoffset float64) {
	if lumen.EnableCameraInput {
		lumen.Camera.ProcessMouseScroll(float32(yoffset))
	}
}

// HandleClick selects the lamp under the cursor in the light controls.
func (lumen *Lumen) HandleClick(xpos, ypos float64) {
	if !lumen.EnableCameraInput {
		return
	}
	if index, ok := lumen.State.SelectLampAt(lumen.Camera, xpos, ypos, int(lumen.Width), int(lumen.Height)); ok {
		logger.Log.Debug("Lamp selected", zap.Int("light", index))
	}
}

func (lumen *Lumen) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	lumen.rendererAPI.UpdateViewport(int32(width), int32(height))
}

func (lumen *Lumen) sizeCallback(_ *glfw.Window, width, height int) {
	lumen.Width = int32(width)
	lumen.Height = int32(height)
}

// Mouse look only runs while the cursor is captured and the UI does not want
// the mouse.
func (lumen *Lumen) mouseCallback(_ *glfw.Window, xpos, ypos float64) {
	if !lumen.EnableCameraInput || !lumen.State.CursorCaptured {
		lumen.look.Reset()
		return
	}
	if dx, dy, ok := lumen.look.Move(xpos, ypos); ok {
		lumen.Camera.ProcessMouseMovement(dx, dy, true)
	}
}
