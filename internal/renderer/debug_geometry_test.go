package renderer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowNormalsEndpoint(t *testing.T) {
	lines := NewDebugLines(&recordingSink{})
	positions := []mgl32.Vec3{{0, 0, 0}}
	normals := []mgl32.Vec3{{0, 0, 1}}

	ShowNormals(lines, positions, normals, mgl32.Ident4())

	require.Equal(t, 1, lines.Pending())
	end := lines.Positions()[1]
	assert.True(t, end.ApproxEqualThreshold(mgl32.Vec3{0, 0, 0.2}, 1e-5), "got %v", end)
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, lines.Colors()[0])
}

func TestShowNormalsUnderNonUniformScale(t *testing.T) {
	lines := NewDebugLines(&recordingSink{})
	model := mgl32.Translate3D(1, 0, 0).Mul4(mgl32.Scale3D(1, 4, 1))

	ShowNormals(lines, []mgl32.Vec3{{0, 0.5, 0}}, []mgl32.Vec3{{0, 1, 0}}, model)

	start, end := lines.Positions()[0], lines.Positions()[1]
	assert.True(t, start.ApproxEqualThreshold(mgl32.Vec3{1, 2, 0}, 1e-5))
	assert.InDelta(t, 0.2, end.Sub(start).Len(), 1e-5)
	assert.InDelta(t, 0.2, end.Y()-start.Y(), 1e-5)
}

func TestShowLightFromSurfaceEndpoint(t *testing.T) {
	lines := NewDebugLines(&recordingSink{})

	ShowLightFromSurface(lines, mgl32.Vec3{0, -1, 0}, []mgl32.Vec3{{0, 0, 0}}, mgl32.Ident4())

	require.Equal(t, 1, lines.Pending())
	end := lines.Positions()[1]
	assert.True(t, end.ApproxEqualThreshold(mgl32.Vec3{0, 0.3, 0}, 1e-5), "got %v", end)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, lines.Colors()[1])
}

func TestShowLightFromSurfaceTransformsStart(t *testing.T) {
	lines := NewDebugLines(&recordingSink{})
	model := mgl32.Translate3D(2, 0, -1)

	ShowLightFromSurface(lines, mgl32.Vec3{1, 0, 0}, []mgl32.Vec3{{0, 1, 0}, {0, 0, 0}}, model)

	require.Equal(t, 2, lines.Pending())
	assert.Equal(t, mgl32.Vec3{2, 1, -1}, lines.Positions()[0])
	assert.True(t, lines.Positions()[3].ApproxEqualThreshold(mgl32.Vec3{1.7, 0, -1}, 1e-5))
}

func TestExtractPositionsAndNormals(t *testing.T) {
	vertices := []float32{
		1, 2, 3, 0, 0, 1, 0, 0,
		4, 5, 6, 0, 1, 0, 1, 1,
	}

	positions := ExtractPositions(vertices, 8)
	normals := ExtractNormals(vertices, 8, 3)

	assert.Equal(t, []mgl32.Vec3{{1, 2, 3}, {4, 5, 6}}, positions)
	assert.Equal(t, []mgl32.Vec3{{0, 0, 1}, {0, 1, 0}}, normals)
}

func TestExtractIgnoresTrailingPartialVertex(t *testing.T) {
	vertices := []float32{1, 2, 3, 9, 9}

	assert.Len(t, ExtractPositions(vertices, 3), 1)
}

func TestExtractRejectsBadLayout(t *testing.T) {
	vertices := []float32{1, 2, 3, 4, 5, 6, 7, 8}

	assert.Nil(t, ExtractPositions(vertices, 0))
	assert.Nil(t, ExtractPositions(vertices, 2))
	assert.Nil(t, ExtractNormals(vertices, 8, 6))
	assert.Nil(t, ExtractNormals(vertices, 8, -1))
	assert.Len(t, ExtractNormals(vertices, 8, 5), 1)
}
