package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	lightDirLineLength = 0.3
	normalLineLength   = 0.2
)

var (
	lightDirLineColor = mgl32.Vec3{0, 1, 0}
	normalLineColor   = mgl32.Vec3{0, 0, 1}
)

// ShowLightFromSurface adds one green line per vertex, starting at the vertex
// in world space and pointing back towards the light (along -lightDir).
func ShowLightFromSurface(lines *DebugLines, lightDir mgl32.Vec3, positions []mgl32.Vec3, model mgl32.Mat4) {
	offset := lightDir.Mul(-lightDirLineLength)
	for _, p := range positions {
		world := model.Mul4x1(p.Vec4(1)).Vec3()
		lines.AddLine(world, world.Add(offset), lightDirLineColor)
	}
}

// ShowNormals adds one blue line per vertex along its world-space normal.
// positions and normals must have the same length.
func ShowNormals(lines *DebugLines, positions, normals []mgl32.Vec3, model mgl32.Mat4) {
	normalMatrix := model.Mat3().Inv().Transpose()
	for i, p := range positions {
		world := model.Mul4x1(p.Vec4(1)).Vec3()
		n := normalMatrix.Mul3x1(normals[i]).Normalize()
		lines.AddLine(world, world.Add(n.Mul(normalLineLength)), normalLineColor)
	}
}

// ExtractPositions reads the leading vec3 of every vertex of an interleaved
// float array with the given stride (in floats). A stride below 3 yields nil.
func ExtractPositions(vertices []float32, stride int) []mgl32.Vec3 {
	return extractVec3(vertices, stride, 0)
}

// ExtractNormals reads the vec3 at offset (in floats) of every vertex. The
// vec3 must lie inside one vertex, offset+3 <= stride; otherwise it yields nil.
func ExtractNormals(vertices []float32, stride, offset int) []mgl32.Vec3 {
	return extractVec3(vertices, stride, offset)
}

func extractVec3(vertices []float32, stride, offset int) []mgl32.Vec3 {
	if stride <= 0 || offset < 0 || offset+3 > stride {
		return nil
	}
	count := len(vertices) / stride
	out := make([]mgl32.Vec3, 0, count)
	for i := 0; i < count; i++ {
		base := i*stride + offset
		out = append(out, mgl32.Vec3{vertices[base], vertices[base+1], vertices[base+2]})
	}
	return out
}
