// camera.go
package renderer

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	minZoom = 1.0
	maxZoom = 45.0
)

// KeyReader is the key-state half of a window; *glfw.Window satisfies it.
type KeyReader interface {
	GetKey(key glfw.Key) glfw.Action
}

type Camera struct {
	// HOT DATA - Accessed every frame for view/projection calculations
	Position mgl32.Vec3 // Camera position in world space
	Front    mgl32.Vec3 // Forward direction vector
	Up       mgl32.Vec3 // Up direction vector
	Right    mgl32.Vec3 // Right direction vector
	Pitch    float32    // Pitch angle (vertical rotation)
	Yaw      float32    // Yaw angle (horizontal rotation)
	Zoom     float32    // Vertical field of view in degrees

	// COLD DATA - Configuration and input handling
	WorldUp     mgl32.Vec3 // World up vector (usually (0,1,0))
	Speed       float32    // Movement speed in units per second
	Sensitivity float32    // Mouse sensitivity
	Near        float32    // Near clipping plane
	Far         float32    // Far clipping plane
	InvertMouse bool       // Invert mouse Y axis
}

func NewDefaultCamera() *Camera {
	return NewCameraAtPosition(mgl32.Vec3{0, 0, 3})
}

func NewCameraAtPosition(position mgl32.Vec3) *Camera {
	camera := Camera{
		Position:    position,
		Front:       mgl32.Vec3{0, 0, -1},
		Up:          mgl32.Vec3{0, 1, 0},
		WorldUp:     mgl32.Vec3{0, 1, 0},
		Pitch:       0.0,
		Yaw:         -90.0,
		Zoom:        maxZoom,
		Speed:       2.5,
		Sensitivity: 0.1,
		Near:        0.1,
		Far:         100.0,
	}
	camera.updateCameraVectors()
	return &camera
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// GetProjectionMatrix builds the perspective projection from Zoom.
func (c *Camera) GetProjectionMatrix(aspectRatio float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.Zoom), aspectRatio, c.Near, c.Far)
}

func (c *Camera) ProcessKeyboard(keys KeyReader, deltaTime float32) {
	velocity := c.Speed * deltaTime

	if keys.GetKey(glfw.KeyLeftShift) == glfw.Press || keys.GetKey(glfw.KeyRightShift) == glfw.Press {
		velocity *= 2.5
	}

	if keys.GetKey(glfw.KeyW) == glfw.Press {
		c.Position = c.Position.Add(c.Front.Mul(velocity))
	}
	if keys.GetKey(glfw.KeyS) == glfw.Press {
		c.Position = c.Position.Sub(c.Front.Mul(velocity))
	}
	if keys.GetKey(glfw.KeyA) == glfw.Press {
		c.Position = c.Position.Sub(c.Right.Mul(velocity))
	}
	if keys.GetKey(glfw.KeyD) == glfw.Press {
		c.Position = c.Position.Add(c.Right.Mul(velocity))
	}
}

func (c *Camera) ProcessMouseMovement(xoffset, yoffset float32, constrainPitch bool) {
	xoffset *= c.Sensitivity
	yoffset *= c.Sensitivity

	c.Yaw += xoffset

	if c.InvertMouse {
		c.Pitch -= yoffset
	} else {
		c.Pitch += yoffset
	}
	if constrainPitch {
		c.Pitch = mgl32.Clamp(c.Pitch, -89.0, 89.0) // Prevent extreme pitch values
	}
	c.updateCameraVectors()
}

// ProcessMouseScroll narrows or widens the field of view.
func (c *Camera) ProcessMouseScroll(yoffset float32) {
	c.Zoom = mgl32.Clamp(c.Zoom-yoffset, minZoom, maxZoom)
}

func (c *Camera) updateCameraVectors() {
	yawRad := mgl32.DegToRad(c.Yaw)
	pitchRad := mgl32.DegToRad(c.Pitch)

	front := mgl32.Vec3{
		float32(math.Cos(float64(yawRad)) * math.Cos(float64(pitchRad))),
		float32(math.Sin(float64(pitchRad))),
		float32(math.Sin(float64(yawRad)) * math.Cos(float64(pitchRad))),
	}

	c.Front = front.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}
