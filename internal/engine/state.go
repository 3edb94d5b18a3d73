package engine

import (
	"Lumen3D/internal/renderer"

	"github.com/go-gl/mathgl/mgl32"
)

const MaxTimeScale = 3.0

// Clock is engine time. It advances by the frame delta times Scale unless
// paused.
type Clock struct {
	Elapsed float64
	Scale   float32
	Paused  bool
}

func NewClock() Clock {
	return Clock{Scale: 1}
}

// Advance moves the clock and returns the scaled delta it applied.
func (c *Clock) Advance(dt float64) float64 {
	if c.Paused || dt <= 0 {
		return 0
	}
	scale := float64(mgl32.Clamp(c.Scale, 0, MaxTimeScale))
	scaled := dt * scale
	c.Elapsed += scaled
	return scaled
}

// FrameTimer averages frame times over a short window for the performance
// panel.
type FrameTimer struct {
	accum  float64
	frames int
	FPS    float64
	MsPer  float64
}

const frameTimerWindow = 0.5

func (f *FrameTimer) Tick(dt float64) {
	f.accum += dt
	f.frames++
	if f.accum >= frameTimerWindow {
		f.FPS = float64(f.frames) / f.accum
		f.MsPer = 1000 * f.accum / float64(f.frames)
		f.accum = 0
		f.frames = 0
	}
}

// AppState is everything the UI edits and the renderer reads.
type AppState struct {
	Variant  string
	Lighting renderer.LightingModel
	Overlays bool

	Bank     *renderer.LightBank
	Sun      renderer.DirectionalLight
	Material renderer.MaterialSettings
	Debug    renderer.DebugSettings

	Clock      Clock
	Timer      FrameTimer
	ClearColor [4]float32

	ForceWireframe bool
	CursorCaptured bool
}

func NewAppState(cfg Config) (*AppState, error) {
	model, overlays, err := Preset(cfg.Variant)
	if err != nil {
		return nil, err
	}
	return &AppState{
		Variant:    cfg.Variant,
		Lighting:   model,
		Overlays:   overlays,
		Bank:       renderer.DefaultLightBank(),
		Sun:        renderer.DefaultDirectionalLight(),
		Material:   renderer.DefaultMaterialSettings(),
		Clock:      NewClock(),
		ClearColor: cfg.ClearColor,
	}, nil
}

// Frame snapshots the state for one render call.
func (s *AppState) Frame(camera *renderer.Camera, aspect float32) renderer.Frame {
	debug := s.Debug
	if !s.Overlays {
		debug.ShowLightDirs = false
		debug.ShowNormals = false
	}
	return renderer.Frame{
		Camera: camera,
		Lighting: renderer.LightingState{
			Model:    s.Lighting,
			ViewPos:  camera.Position,
			Bank:     s.Bank,
			Sun:      s.Sun,
			Material: s.Material,
		},
		Debug:          debug,
		ForceWireframe: s.ForceWireframe,
		ClearColor:     s.ClearColor,
		AspectRatio:    aspect,
	}
}

// SelectLampAt selects the lamp marker under the cursor, if any.
func (s *AppState) SelectLampAt(camera *renderer.Camera, x, y float64, width, height int) (int, bool) {
	if s.CursorCaptured {
		return 0, false
	}
	ray := renderer.ScreenToRay(camera, float32(x), float32(y), width, height)
	index, ok := renderer.PickLamp(ray, renderer.LightingState{Model: s.Lighting, Bank: s.Bank})
	if ok {
		s.Bank.SetSelected(index)
	}
	return index, ok
}
