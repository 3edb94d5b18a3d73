package renderer

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxPointLights is the size of the pointLights array in the lighting shader.
const MaxPointLights = 4

// PointLight is one positional light source. Attenuation follows
// 1 / (Constant + Linear*d + Quadratic*d^2).
type PointLight struct {
	Position mgl32.Vec3
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3

	Constant  float32
	Linear    float32
	Quadratic float32

	Enabled bool
}

// DirectionalLight is the fixed sun-like light. It is not editable at runtime.
type DirectionalLight struct {
	Direction mgl32.Vec3
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
}

// CreatePointLight returns an enabled grey light at position with an
// attenuation suitable for a scene roughly 50 units across.
func CreatePointLight(position mgl32.Vec3) PointLight {
	return PointLight{
		Position:  position,
		Ambient:   mgl32.Vec3{0.05, 0.05, 0.05},
		Diffuse:   mgl32.Vec3{0.8, 0.8, 0.8},
		Specular:  mgl32.Vec3{1.0, 1.0, 1.0},
		Constant:  1.0,
		Linear:    0.09,
		Quadratic: 0.032,
		Enabled:   true,
	}
}

// DefaultPointLights is the startup content of the light bank.
func DefaultPointLights() [MaxPointLights]PointLight {
	return [MaxPointLights]PointLight{
		CreatePointLight(mgl32.Vec3{1.2, 1.0, 2.0}),
		CreatePointLight(mgl32.Vec3{2.0, 1.0, -3.0}),
		CreatePointLight(mgl32.Vec3{-1.0, 2.0, 1.0}),
		CreatePointLight(mgl32.Vec3{0.0, 3.0, 2.0}),
	}
}

func DefaultDirectionalLight() DirectionalLight {
	return DirectionalLight{
		Direction: mgl32.Vec3{-0.2, -0.2, -0.2},
		Ambient:   mgl32.Vec3{0.05, 0.05, 0.05},
		Diffuse:   mgl32.Vec3{0.1, 0.1, 0.1},
		Specular:  mgl32.Vec3{0.2, 0.2, 0.2},
	}
}

// LightBank holds the fixed set of point lights edited by the UI and the
// index of the light the editor currently targets.
type LightBank struct {
	lights   [MaxPointLights]PointLight
	selected int
}

func NewLightBank(lights [MaxPointLights]PointLight) *LightBank {
	return &LightBank{lights: lights}
}

func DefaultLightBank() *LightBank {
	return NewLightBank(DefaultPointLights())
}

// Len is always MaxPointLights.
func (b *LightBank) Len() int {
	return len(b.lights)
}

// Get returns the light at index for in-place editing. An index outside
// [0, Len()) is a programming error and panics.
func (b *LightBank) Get(index int) *PointLight {
	if index < 0 || index >= len(b.lights) {
		panic(fmt.Sprintf("renderer: point light index %d out of range [0,%d)", index, len(b.lights)))
	}
	return &b.lights[index]
}

// SetSelected points the editor at index, clamped into the bank.
func (b *LightBank) SetSelected(index int) {
	switch {
	case index < 0:
		b.selected = 0
	case index >= len(b.lights):
		b.selected = len(b.lights) - 1
	default:
		b.selected = index
	}
}

func (b *LightBank) Selected() int {
	return b.selected
}

func (b *LightBank) SelectedLight() *PointLight {
	return &b.lights[b.selected]
}

// MaxShininessExponent bounds the material editor: shininess ranges 2^0..2^7.
const MaxShininessExponent = 7

// MaterialSettings describes the cube material. Diffuse and specular are the
// texture units the maps are bound to.
type MaterialSettings struct {
	DiffuseUnit       int32
	SpecularUnit      int32
	ShininessExponent int32
}

func DefaultMaterialSettings() MaterialSettings {
	return MaterialSettings{
		DiffuseUnit:       0,
		SpecularUnit:      1,
		ShininessExponent: 5,
	}
}

// Shininess is 2^ShininessExponent with the exponent clamped to
// [0, MaxShininessExponent].
func (m MaterialSettings) Shininess() float32 {
	e := m.ShininessExponent
	if e < 0 {
		e = 0
	}
	if e > MaxShininessExponent {
		e = MaxShininessExponent
	}
	return float32(math.Pow(2, float64(e)))
}
