package renderer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCubeMeshExtractsGeometry(t *testing.T) {
	mesh := NewCubeMesh()

	require.Equal(t, int32(36), mesh.VertexCount)
	require.Len(t, mesh.Positions, 36)
	require.Len(t, mesh.Normals, 36)

	assert.Equal(t, mgl32.Vec3{-0.5, -0.5, -0.5}, mesh.Positions[0])
	assert.Equal(t, mgl32.Vec3{0, 0, -1}, mesh.Normals[0])
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, mesh.Normals[35])
	for _, n := range mesh.Normals {
		assert.InDelta(t, 1.0, n.Len(), 1e-6)
	}
}

func TestCubeModels(t *testing.T) {
	models := CubeModels()
	require.Len(t, models, len(CubePositions))

	// the first cube is not rotated
	assert.True(t, models[0].ModelMatrix.ApproxEqual(mgl32.Ident4()))

	for i, m := range models {
		origin := m.ModelMatrix.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
		assert.True(t, origin.ApproxEqualThreshold(CubePositions[i], 1e-5), "cube %d", i)
	}

	// rotation of cube 3 is 60 degrees around the normalized axis
	want := mgl32.HomogRotate3D(mgl32.DegToRad(60), mgl32.Vec3{0.5, 1, 0}.Normalize())
	got := models[3].ModelMatrix
	got.SetCol(3, mgl32.Vec4{0, 0, 0, 1})
	assert.True(t, got.ApproxEqualThreshold(want, 1e-5))
}

func TestLampModelScalesDown(t *testing.T) {
	light := CreatePointLight(mgl32.Vec3{1, 2, 3})

	m := LampModel(light)

	corner := m.ModelMatrix.Mul4x1(mgl32.Vec4{0.5, 0.5, 0.5, 1}).Vec3()
	assert.True(t, corner.ApproxEqualThreshold(mgl32.Vec3{1.1, 2.1, 3.1}, 1e-5))
}

func TestModelSetPositionKeepsScale(t *testing.T) {
	m := LampModel(PointLight{})

	m.SetPosition(mgl32.Vec3{-1, 2, 1})

	corner := m.ModelMatrix.Mul4x1(mgl32.Vec4{0.5, 0.5, 0.5, 1}).Vec3()
	assert.True(t, corner.ApproxEqualThreshold(mgl32.Vec3{-0.9, 2.1, 1.1}, 1e-5))
	assert.Equal(t, mgl32.Vec3{-1, 2, 1}, m.Position)
}
