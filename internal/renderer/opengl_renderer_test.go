package renderer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSink struct {
	calls    int
	vertices int
}

func (s *countingSink) Draw(_, _ mgl32.Mat4, positions, _ []mgl32.Vec3) {
	s.calls++
	s.vertices += len(positions)
}

func TestBuildDebugOverlaysBothFlagsSingleFlush(t *testing.T) {
	sink := &countingSink{}
	lines := NewDebugLines(sink)
	mesh := NewCubeMesh()
	models := CubeModels()

	BuildDebugOverlays(lines, DebugSettings{ShowLightDirs: true, ShowNormals: true}, mgl32.Vec3{-0.2, -0.2, -0.2}, mesh, models)

	require.Equal(t, 2*len(models)*len(mesh.Positions), lines.Pending())

	lines.FlushAndDraw(mgl32.Ident4(), mgl32.Ident4())
	assert.Equal(t, 1, sink.calls)
	assert.Equal(t, 0, lines.Pending())
}

func TestBuildDebugOverlaysNoFlags(t *testing.T) {
	sink := &countingSink{}
	lines := NewDebugLines(sink)

	BuildDebugOverlays(lines, DebugSettings{ShowWireframe: true}, mgl32.Vec3{0, -1, 0}, NewCubeMesh(), CubeModels())
	lines.FlushAndDraw(mgl32.Ident4(), mgl32.Ident4())

	assert.Equal(t, 0, sink.calls)
}

func TestBuildDebugOverlaysNormalizesSunDirection(t *testing.T) {
	lines := NewDebugLines(&countingSink{})
	mesh := &Mesh{Positions: []mgl32.Vec3{{0, 0, 0}}, Normals: []mgl32.Vec3{{0, 0, 1}}}

	BuildDebugOverlays(lines, DebugSettings{ShowLightDirs: true}, mgl32.Vec3{0, -5, 0}, mesh, []*Model{NewModel(mgl32.Vec3{})})

	end := lines.Positions()[1]
	assert.InDelta(t, 0.3, end.Y(), 1e-5)
}

func TestVisibleLamps(t *testing.T) {
	bank := DefaultLightBank()
	bank.Get(1).Enabled = false

	multi := VisibleLamps(LightingState{Model: POINT_LIGHT_ARRAY, Bank: bank})
	require.Len(t, multi, 3)
	assert.Equal(t, bank.Get(0).Position, multi[0].Position)
	assert.Equal(t, bank.Get(2).Position, multi[1].Position)

	single := VisibleLamps(LightingState{Model: SINGLE_LIGHT, Bank: bank})
	require.Len(t, single, 1)
	assert.Equal(t, bank.Get(0).Position, single[0].Position)

	bank.Get(0).Enabled = false
	assert.Empty(t, VisibleLamps(LightingState{Model: SINGLE_LIGHT, Bank: bank}))

	assert.Empty(t, VisibleLamps(LightingState{Model: POINT_LIGHT_ARRAY}))
}
