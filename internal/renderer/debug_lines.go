package renderer

import (
	"unsafe"

	"Lumen3D/internal/logger"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// DefaultLineCapacity is the number of segments the accumulator and its GPU
// buffers hold before they have to grow.
const DefaultLineCapacity = 1000

var vec3Size = int(unsafe.Sizeof(mgl32.Vec3{}))

// LineSink uploads a line list and draws it as GL_LINES, each consecutive
// pair of positions being one segment.
type LineSink interface {
	Draw(view, projection mgl32.Mat4, positions, colors []mgl32.Vec3)
}

// DebugLines collects transient line segments for one frame.
type DebugLines struct {
	positions []mgl32.Vec3
	colors    []mgl32.Vec3
	sink      LineSink
}

func NewDebugLines(sink LineSink) *DebugLines {
	return &DebugLines{
		positions: make([]mgl32.Vec3, 0, 2*DefaultLineCapacity),
		colors:    make([]mgl32.Vec3, 0, 2*DefaultLineCapacity),
		sink:      sink,
	}
}

// AddLine appends one segment; both endpoints share color.
func (d *DebugLines) AddLine(from, to, color mgl32.Vec3) {
	d.positions = append(d.positions, from, to)
	d.colors = append(d.colors, color, color)
}

// Pending is the number of segments waiting for the next flush.
func (d *DebugLines) Pending() int {
	return len(d.positions) / 2
}

func (d *DebugLines) Positions() []mgl32.Vec3 {
	return d.positions
}

func (d *DebugLines) Colors() []mgl32.Vec3 {
	return d.colors
}

// FlushAndDraw draws every pending segment in one call and empties the
// accumulator. Nothing reaches the sink when there is nothing pending.
func (d *DebugLines) FlushAndDraw(view, projection mgl32.Mat4) {
	if len(d.positions) == 0 {
		return
	}
	d.sink.Draw(view, projection, d.positions, d.colors)
	d.positions = d.positions[:0]
	d.colors = d.colors[:0]
}

// glLineSink is the OpenGL LineSink: one VAO with a position VBO at
// attribute 0 and a color VBO at attribute 1.
type glLineSink struct {
	shader   *Shader
	vao      uint32
	vbos     [2]uint32
	capacity int // in vertices, per buffer
}

func newGLLineSink(shader *Shader) *glLineSink {
	sink := &glLineSink{shader: shader, capacity: 2 * DefaultLineCapacity}

	gl.GenVertexArrays(1, &sink.vao)
	gl.GenBuffers(2, &sink.vbos[0])

	gl.BindVertexArray(sink.vao)
	for attrib, vbo := range sink.vbos {
		gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
		gl.BufferData(gl.ARRAY_BUFFER, sink.capacity*vec3Size, nil, gl.DYNAMIC_DRAW)
		gl.VertexAttribPointer(uint32(attrib), 3, gl.FLOAT, false, int32(vec3Size), gl.PtrOffset(0))
		gl.EnableVertexAttribArray(uint32(attrib))
	}
	gl.BindVertexArray(0)

	return sink
}

func (s *glLineSink) Draw(view, projection mgl32.Mat4, positions, colors []mgl32.Vec3) {
	s.shader.Use()
	s.shader.SetMat4("view", view)
	s.shader.SetMat4("projection", projection)

	gl.BindVertexArray(s.vao)

	if len(positions) > s.capacity {
		for s.capacity < len(positions) {
			s.capacity *= 2
		}
		logger.Log.Debug("Debug line buffers grown", zap.Int("vertices", s.capacity))
		for _, vbo := range s.vbos {
			gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
			gl.BufferData(gl.ARRAY_BUFFER, s.capacity*vec3Size, nil, gl.DYNAMIC_DRAW)
		}
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbos[0])
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(positions)*vec3Size, gl.Ptr(positions))
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbos[1])
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(colors)*vec3Size, gl.Ptr(colors))

	gl.DrawArrays(gl.LINES, 0, int32(len(positions)))

	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

func (s *glLineSink) Cleanup() {
	gl.DeleteVertexArrays(1, &s.vao)
	gl.DeleteBuffers(2, &s.vbos[0])
}
