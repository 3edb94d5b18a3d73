package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
)

type LightingModel int

const (
	// SINGLE_LIGHT lights the scene with light slot 0 through the light.* uniforms.
	SINGLE_LIGHT LightingModel = iota
	// POINT_LIGHT_ARRAY uses the directional light plus the whole point light bank.
	POINT_LIGHT_ARRAY
)

func (m LightingModel) String() string {
	switch m {
	case SINGLE_LIGHT:
		return "single"
	case POINT_LIGHT_ARRAY:
		return "point-array"
	}
	return "unknown"
}

type DebugSettings struct {
	ShowLightDirs bool
	ShowNormals   bool
	ShowWireframe bool
}

// LightingState is everything Uniform Sync projects into the lighting shader.
type LightingState struct {
	Model    LightingModel
	ViewPos  mgl32.Vec3
	Bank     *LightBank
	Sun      DirectionalLight
	Material MaterialSettings
}

// Frame is the per-frame input of a renderer.
type Frame struct {
	Camera         *Camera
	Lighting       LightingState
	Debug          DebugSettings
	ForceWireframe bool
	ClearColor     [4]float32
	AspectRatio    float32
}

type Render interface {
	Init(width, height int32) error
	Render(frame Frame)
	UpdateViewport(width, height int32)
	Cleanup()
}
