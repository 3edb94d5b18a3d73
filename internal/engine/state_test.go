package engine

import (
	"testing"

	"Lumen3D/internal/renderer"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCamera() *renderer.Camera {
	return renderer.NewDefaultCamera()
}

func TestClockAdvance(t *testing.T) {
	clock := NewClock()

	assert.InDelta(t, 0.5, clock.Advance(0.5), 1e-9)
	clock.Scale = 2
	assert.InDelta(t, 1.0, clock.Advance(0.5), 1e-9)
	assert.InDelta(t, 1.5, clock.Elapsed, 1e-9)
}

func TestClockPaused(t *testing.T) {
	clock := NewClock()
	clock.Paused = true

	assert.Zero(t, clock.Advance(1))
	assert.Zero(t, clock.Elapsed)
}

func TestClockScaleIsClamped(t *testing.T) {
	clock := NewClock()
	clock.Scale = 10

	clock.Advance(1)
	assert.InDelta(t, MaxTimeScale, clock.Elapsed, 1e-9)

	clock.Scale = -1
	assert.Zero(t, clock.Advance(1))
}

func TestFrameTimer(t *testing.T) {
	var timer FrameTimer

	for i := 0; i < 31; i++ {
		timer.Tick(1.0 / 60)
	}

	assert.InDelta(t, 60, timer.FPS, 0.5)
	assert.InDelta(t, 16.67, timer.MsPer, 0.1)
}

func TestNewAppStateFollowsVariant(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Variant = VariantMulti

	state, err := NewAppState(cfg)
	require.NoError(t, err)

	assert.Equal(t, renderer.POINT_LIGHT_ARRAY, state.Lighting)
	assert.False(t, state.Overlays)
	assert.Equal(t, cfg.ClearColor, state.ClearColor)

	cfg.Variant = "nope"
	_, err = NewAppState(cfg)
	assert.Error(t, err)
}

func TestFrameDropsOverlaysWhenUnsupported(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Variant = VariantMulti
	state, err := NewAppState(cfg)
	require.NoError(t, err)
	state.Debug = renderer.DebugSettings{ShowLightDirs: true, ShowNormals: true, ShowWireframe: true}

	frame := state.Frame(testCamera(), 4.0/3.0)

	assert.False(t, frame.Debug.ShowLightDirs)
	assert.False(t, frame.Debug.ShowNormals)
	assert.True(t, frame.Debug.ShowWireframe)
}

func TestFrameCarriesLighting(t *testing.T) {
	state, err := NewAppState(DefaultConfig())
	require.NoError(t, err)
	state.Debug.ShowNormals = true
	camera := testCamera()
	camera.Position = mgl32.Vec3{1, 2, 3}

	frame := state.Frame(camera, 1.5)

	assert.True(t, frame.Debug.ShowNormals)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, frame.Lighting.ViewPos)
	assert.Same(t, state.Bank, frame.Lighting.Bank)
	assert.Equal(t, float32(1.5), frame.AspectRatio)
}

func TestSelectLampAt(t *testing.T) {
	state, err := NewAppState(DefaultConfig())
	require.NoError(t, err)
	state.Bank.Get(2).Position = mgl32.Vec3{0, 0, 0}

	index, ok := state.SelectLampAt(testCamera(), 400, 300, 800, 600)
	require.True(t, ok)
	assert.Equal(t, 2, index)
	assert.Equal(t, 2, state.Bank.Selected())

	_, ok = state.SelectLampAt(testCamera(), 0, 0, 800, 600)
	assert.False(t, ok)
	assert.Equal(t, 2, state.Bank.Selected())
}

func TestSelectLampAtIgnoredWhileCaptured(t *testing.T) {
	state, err := NewAppState(DefaultConfig())
	require.NoError(t, err)
	state.Bank.Get(2).Position = mgl32.Vec3{0, 0, 0}
	state.CursorCaptured = true

	_, ok := state.SelectLampAt(testCamera(), 400, 300, 800, 600)

	assert.False(t, ok)
	assert.Equal(t, 0, state.Bank.Selected())
}
