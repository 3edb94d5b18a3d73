package renderer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	batches [][]mgl32.Vec3
	colors  [][]mgl32.Vec3
	view    mgl32.Mat4
}

func (s *recordingSink) Draw(view, _ mgl32.Mat4, positions, colors []mgl32.Vec3) {
	s.view = view
	s.batches = append(s.batches, append([]mgl32.Vec3(nil), positions...))
	s.colors = append(s.colors, append([]mgl32.Vec3(nil), colors...))
}

func TestDebugLinesAddLineOrder(t *testing.T) {
	lines := NewDebugLines(&recordingSink{})
	red := mgl32.Vec3{1, 0, 0}
	green := mgl32.Vec3{0, 1, 0}

	lines.AddLine(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, red)
	lines.AddLine(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 2, 0}, green)

	require.Equal(t, 2, lines.Pending())
	assert.Equal(t, []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 2, 0}}, lines.Positions())
	assert.Equal(t, []mgl32.Vec3{red, red, green, green}, lines.Colors())
}

func TestDebugLinesGrowPastCapacity(t *testing.T) {
	lines := NewDebugLines(&recordingSink{})

	total := DefaultLineCapacity + 1
	for i := 0; i < total; i++ {
		lines.AddLine(mgl32.Vec3{float32(i), 0, 0}, mgl32.Vec3{float32(i), 1, 0}, mgl32.Vec3{1, 1, 1})
	}

	require.Equal(t, total, lines.Pending())
	last := lines.Positions()[2*total-2]
	assert.Equal(t, float32(DefaultLineCapacity), last.X())
}

func TestDebugLinesFlushEmptyDoesNotDraw(t *testing.T) {
	sink := &recordingSink{}
	lines := NewDebugLines(sink)

	lines.FlushAndDraw(mgl32.Ident4(), mgl32.Ident4())

	assert.Empty(t, sink.batches)
}

func TestDebugLinesFlushDrawsOnceAndClears(t *testing.T) {
	sink := &recordingSink{}
	lines := NewDebugLines(sink)
	view := mgl32.Translate3D(1, 2, 3)

	lines.AddLine(mgl32.Vec3{}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 0, 1})
	lines.AddLine(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 1, 0})
	lines.FlushAndDraw(view, mgl32.Ident4())

	require.Len(t, sink.batches, 1)
	assert.Len(t, sink.batches[0], 4)
	assert.Len(t, sink.colors[0], 4)
	assert.Equal(t, view, sink.view)
	assert.Equal(t, 0, lines.Pending())

	// nothing stale is carried into the next frame
	lines.FlushAndDraw(view, mgl32.Ident4())
	assert.Len(t, sink.batches, 1)

	lines.AddLine(mgl32.Vec3{5, 5, 5}, mgl32.Vec3{6, 6, 6}, mgl32.Vec3{1, 0, 0})
	lines.FlushAndDraw(view, mgl32.Ident4())
	require.Len(t, sink.batches, 2)
	assert.Equal(t, []mgl32.Vec3{{5, 5, 5}, {6, 6, 6}}, sink.batches[1])
}
