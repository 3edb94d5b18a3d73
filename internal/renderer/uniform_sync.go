package renderer

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// UniformTarget is the part of a shader program that Uniform Sync writes to.
// Shader implements it; tests use a recorder.
type UniformTarget interface {
	Use()
	SetInt(name string, value int32)
	SetFloat(name string, value float32)
	SetVec3(name string, value mgl32.Vec3)
	SetMat4(name string, value mgl32.Mat4)
}

type pointLightUniformNames struct {
	position  string
	ambient   string
	diffuse   string
	specular  string
	constant  string
	linear    string
	quadratic string
}

// Built once so the per-frame sync never formats strings.
var pointLightUniforms = func() [MaxPointLights]pointLightUniformNames {
	var names [MaxPointLights]pointLightUniformNames
	for i := range names {
		base := fmt.Sprintf("pointLights[%d]", i)
		names[i] = pointLightUniformNames{
			position:  base + ".position",
			ambient:   base + ".ambient",
			diffuse:   base + ".diffuse",
			specular:  base + ".specular",
			constant:  base + ".constant",
			linear:    base + ".linear",
			quadratic: base + ".quadratic",
		}
	}
	return names
}()

const (
	uniformViewPos = "viewPos"

	uniformDirLightDirection = "dirLight.direction"
	uniformDirLightAmbient   = "dirLight.ambient"
	uniformDirLightDiffuse   = "dirLight.diffuse"
	uniformDirLightSpecular  = "dirLight.specular"

	uniformLightPosition = "light.position"
	uniformLightAmbient  = "light.ambient"
	uniformLightDiffuse  = "light.diffuse"
	uniformLightSpecular = "light.specular"

	uniformMaterialDiffuse   = "material.diffuse"
	uniformMaterialSpecular  = "material.specular"
	uniformMaterialShininess = "material.shininess"
)

// SyncLights pushes the lighting state into target. It must run before the
// lit draw calls of a frame. Disabled lights get black ambient, diffuse and
// specular; their position and attenuation uniforms are left as they were.
func SyncLights(target UniformTarget, state LightingState) {
	target.Use()
	target.SetVec3(uniformViewPos, state.ViewPos)

	switch state.Model {
	case SINGLE_LIGHT:
		syncSingleLight(target, state.Bank.Get(0))
	default:
		syncDirectionalLight(target, state.Sun)
		for i := 0; i < state.Bank.Len(); i++ {
			syncPointLight(target, pointLightUniforms[i], state.Bank.Get(i))
		}
	}

	syncMaterial(target, state.Material)
}

func syncDirectionalLight(target UniformTarget, sun DirectionalLight) {
	target.SetVec3(uniformDirLightDirection, sun.Direction)
	target.SetVec3(uniformDirLightAmbient, sun.Ambient)
	target.SetVec3(uniformDirLightDiffuse, sun.Diffuse)
	target.SetVec3(uniformDirLightSpecular, sun.Specular)
}

func syncPointLight(target UniformTarget, names pointLightUniformNames, light *PointLight) {
	if !light.Enabled {
		target.SetVec3(names.ambient, mgl32.Vec3{})
		target.SetVec3(names.diffuse, mgl32.Vec3{})
		target.SetVec3(names.specular, mgl32.Vec3{})
		return
	}

	target.SetVec3(names.position, light.Position)
	target.SetVec3(names.ambient, light.Ambient)
	target.SetVec3(names.diffuse, light.Diffuse)
	target.SetVec3(names.specular, light.Specular)
	target.SetFloat(names.constant, light.Constant)
	target.SetFloat(names.linear, light.Linear)
	target.SetFloat(names.quadratic, light.Quadratic)
}

func syncSingleLight(target UniformTarget, light *PointLight) {
	if !light.Enabled {
		target.SetVec3(uniformLightAmbient, mgl32.Vec3{})
		target.SetVec3(uniformLightDiffuse, mgl32.Vec3{})
		target.SetVec3(uniformLightSpecular, mgl32.Vec3{})
		return
	}

	target.SetVec3(uniformLightPosition, light.Position)
	target.SetVec3(uniformLightAmbient, light.Ambient)
	target.SetVec3(uniformLightDiffuse, light.Diffuse)
	target.SetVec3(uniformLightSpecular, light.Specular)
}

func syncMaterial(target UniformTarget, material MaterialSettings) {
	target.SetInt(uniformMaterialDiffuse, material.DiffuseUnit)
	target.SetInt(uniformMaterialSpecular, material.SpecularUnit)
	target.SetFloat(uniformMaterialShininess, material.Shininess())
}
