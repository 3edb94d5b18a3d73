package renderer

import (
	"Lumen3D/internal/logger"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// CubeVertexStride is the number of floats per cube vertex:
// position (3), normal (3), texture coordinates (2).
const (
	CubeVertexStride = 8
	cubeNormalOffset = 3
	cubeUVOffset     = 6
	floatSize        = 4

	LampScale = 0.2
)

var cubeRotationAxis = mgl32.Vec3{0.5, 1.0, 0.0}.Normalize()

// CubePositions are the world positions of the lit containers.
var CubePositions = [10]mgl32.Vec3{
	{0.0, 0.0, 0.0},
	{2.0, 5.0, -15.0},
	{-1.5, -2.2, -2.5},
	{-3.8, -2.0, -12.3},
	{2.4, -0.4, -3.5},
	{-1.7, 3.0, -7.5},
	{1.3, -2.0, -2.5},
	{1.5, 2.0, -2.5},
	{1.5, 0.2, -1.5},
	{-1.3, 1.0, -1.5},
}

// CubeVertices is a unit cube as 36 unindexed vertices.
var CubeVertices = []float32{
	// back
	-0.5, -0.5, -0.5, 0.0, 0.0, -1.0, 0.0, 0.0,
	0.5, -0.5, -0.5, 0.0, 0.0, -1.0, 1.0, 0.0,
	0.5, 0.5, -0.5, 0.0, 0.0, -1.0, 1.0, 1.0,
	0.5, 0.5, -0.5, 0.0, 0.0, -1.0, 1.0, 1.0,
	-0.5, 0.5, -0.5, 0.0, 0.0, -1.0, 0.0, 1.0,
	-0.5, -0.5, -0.5, 0.0, 0.0, -1.0, 0.0, 0.0,
	// front
	-0.5, -0.5, 0.5, 0.0, 0.0, 1.0, 0.0, 0.0,
	0.5, -0.5, 0.5, 0.0, 0.0, 1.0, 1.0, 0.0,
	0.5, 0.5, 0.5, 0.0, 0.0, 1.0, 1.0, 1.0,
	0.5, 0.5, 0.5, 0.0, 0.0, 1.0, 1.0, 1.0,
	-0.5, 0.5, 0.5, 0.0, 0.0, 1.0, 0.0, 1.0,
	-0.5, -0.5, 0.5, 0.0, 0.0, 1.0, 0.0, 0.0,
	// left
	-0.5, 0.5, 0.5, -1.0, 0.0, 0.0, 1.0, 0.0,
	-0.5, 0.5, -0.5, -1.0, 0.0, 0.0, 1.0, 1.0,
	-0.5, -0.5, -0.5, -1.0, 0.0, 0.0, 0.0, 1.0,
	-0.5, -0.5, -0.5, -1.0, 0.0, 0.0, 0.0, 1.0,
	-0.5, -0.5, 0.5, -1.0, 0.0, 0.0, 0.0, 0.0,
	-0.5, 0.5, 0.5, -1.0, 0.0, 0.0, 1.0, 0.0,
	// right
	0.5, 0.5, 0.5, 1.0, 0.0, 0.0, 1.0, 0.0,
	0.5, 0.5, -0.5, 1.0, 0.0, 0.0, 1.0, 1.0,
	0.5, -0.5, -0.5, 1.0, 0.0, 0.0, 0.0, 1.0,
	0.5, -0.5, -0.5, 1.0, 0.0, 0.0, 0.0, 1.0,
	0.5, -0.5, 0.5, 1.0, 0.0, 0.0, 0.0, 0.0,
	0.5, 0.5, 0.5, 1.0, 0.0, 0.0, 1.0, 0.0,
	// bottom
	-0.5, -0.5, -0.5, 0.0, -1.0, 0.0, 0.0, 1.0,
	0.5, -0.5, -0.5, 0.0, -1.0, 0.0, 1.0, 1.0,
	0.5, -0.5, 0.5, 0.0, -1.0, 0.0, 1.0, 0.0,
	0.5, -0.5, 0.5, 0.0, -1.0, 0.0, 1.0, 0.0,
	-0.5, -0.5, 0.5, 0.0, -1.0, 0.0, 0.0, 0.0,
	-0.5, -0.5, -0.5, 0.0, -1.0, 0.0, 0.0, 1.0,
	// top
	-0.5, 0.5, -0.5, 0.0, 1.0, 0.0, 0.0, 1.0,
	0.5, 0.5, -0.5, 0.0, 1.0, 0.0, 1.0, 1.0,
	0.5, 0.5, 0.5, 0.0, 1.0, 0.0, 1.0, 0.0,
	0.5, 0.5, 0.5, 0.0, 1.0, 0.0, 1.0, 0.0,
	-0.5, 0.5, 0.5, 0.0, 1.0, 0.0, 0.0, 0.0,
	-0.5, 0.5, -0.5, 0.0, 1.0, 0.0, 0.0, 1.0,
}

// Mesh is an unindexed interleaved vertex buffer plus the CPU-side
// positions and normals the debug overlays read.
type Mesh struct {
	VAO         uint32
	VBO         uint32
	VertexCount int32
	Positions   []mgl32.Vec3
	Normals     []mgl32.Vec3
}

// NewCubeMesh extracts positions and normals from CubeVertices. Upload
// creates the GPU side.
func NewCubeMesh() *Mesh {
	return &Mesh{
		VertexCount: int32(len(CubeVertices) / CubeVertexStride),
		Positions:   ExtractPositions(CubeVertices, CubeVertexStride),
		Normals:     ExtractNormals(CubeVertices, CubeVertexStride, cubeNormalOffset),
	}
}

// Upload fills a new VBO with vertices and binds position, normal and uv to
// attributes 0, 1 and 2.
func (m *Mesh) Upload(vertices []float32) {
	gl.GenVertexArrays(1, &m.VAO)
	gl.GenBuffers(1, &m.VBO)

	gl.BindVertexArray(m.VAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*floatSize, gl.Ptr(vertices), gl.STATIC_DRAW)

	stride := int32(CubeVertexStride * floatSize)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(cubeNormalOffset*floatSize))
	gl.EnableVertexAttribArray(1)

	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(cubeUVOffset*floatSize))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)

	logger.Log.Debug("Mesh uploaded", zap.Uint32("vao", m.VAO), zap.Int32("vertices", m.VertexCount))
}

// ShareBuffer gives a second VAO over the same VBO that only reads positions.
// The lamp markers use it.
func (m *Mesh) ShareBuffer() *Mesh {
	lamp := &Mesh{VBO: m.VBO, VertexCount: m.VertexCount, Positions: m.Positions, Normals: m.Normals}

	gl.GenVertexArrays(1, &lamp.VAO)
	gl.BindVertexArray(lamp.VAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.VBO)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, int32(CubeVertexStride*floatSize), gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)

	return lamp
}

func (m *Mesh) Draw() {
	gl.BindVertexArray(m.VAO)
	gl.DrawArrays(gl.TRIANGLES, 0, m.VertexCount)
	gl.BindVertexArray(0)
}

// Delete releases the VAO, and the VBO when ownsBuffer is set.
func (m *Mesh) Delete(ownsBuffer bool) {
	if m.VAO != 0 {
		gl.DeleteVertexArrays(1, &m.VAO)
		m.VAO = 0
	}
	if ownsBuffer && m.VBO != 0 {
		gl.DeleteBuffers(1, &m.VBO)
		m.VBO = 0
	}
}

// Model places a mesh in the world.
type Model struct {
	ModelMatrix mgl32.Mat4 // Transformation matrix - used every frame
	Position    mgl32.Vec3 // Position in world space
	Scale       mgl32.Vec3 // Scale factors
	Rotation    mgl32.Quat // Rotation quaternion
}

func NewModel(position mgl32.Vec3) *Model {
	m := &Model{
		Position: position,
		Scale:    mgl32.Vec3{1, 1, 1},
		Rotation: mgl32.QuatIdent(),
	}
	m.updateModelMatrix()
	return m
}

func (m *Model) SetPosition(position mgl32.Vec3) {
	m.Position = position
	m.updateModelMatrix()
}

func (m *Model) SetUniformScale(s float32) {
	m.Scale = mgl32.Vec3{s, s, s}
	m.updateModelMatrix()
}

// RotateAround replaces the rotation with angle degrees around axis.
func (m *Model) RotateAround(angle float32, axis mgl32.Vec3) {
	m.Rotation = mgl32.QuatRotate(mgl32.DegToRad(angle), axis.Normalize())
	m.updateModelMatrix()
}

func (m *Model) updateModelMatrix() {
	// T * R * S: scale first, then rotate, then translate
	scaleMatrix := mgl32.Scale3D(m.Scale[0], m.Scale[1], m.Scale[2])
	rotationMatrix := m.Rotation.Mat4()
	translationMatrix := mgl32.Translate3D(m.Position[0], m.Position[1], m.Position[2])
	m.ModelMatrix = translationMatrix.Mul4(rotationMatrix).Mul4(scaleMatrix)
}

// CubeModels places one model at each of CubePositions, the i-th rotated
// 20*i degrees around (0.5, 1, 0).
func CubeModels() []*Model {
	models := make([]*Model, len(CubePositions))
	for i, pos := range CubePositions {
		models[i] = NewModel(pos)
		models[i].RotateAround(20*float32(i), cubeRotationAxis)
	}
	return models
}

// LampModel is the marker transform for a point light.
func LampModel(light PointLight) *Model {
	m := NewModel(light.Position)
	m.SetUniformScale(LampScale)
	return m
}
