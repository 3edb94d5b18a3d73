package renderer

import (
	"math"
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

type pressedKeys map[glfw.Key]bool

func (p pressedKeys) GetKey(key glfw.Key) glfw.Action {
	if p[key] {
		return glfw.Press
	}
	return glfw.Release
}

func TestNewDefaultCamera(t *testing.T) {
	cam := NewDefaultCamera()

	if cam == nil {
		t.Fatal("NewDefaultCamera returned nil")
	}

	if cam.Position != (mgl32.Vec3{0, 0, 3}) {
		t.Errorf("Expected camera at (0,0,3), got %v", cam.Position)
	}

	if cam.Speed <= 0 {
		t.Error("Camera speed should be positive")
	}

	if cam.Sensitivity <= 0 {
		t.Error("Camera sensitivity should be positive")
	}

	if !cam.Front.ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, 1e-5) {
		t.Errorf("Default camera should look down -Z, got %v", cam.Front)
	}
}

func TestCameraGetViewMatrix(t *testing.T) {
	cam := NewDefaultCamera()
	cam.Position = mgl32.Vec3{0, 0, 5}

	view := cam.GetViewMatrix()

	if view.At(3, 3) != 1.0 {
		t.Error("View matrix should be valid (w component = 1)")
	}

	origin := view.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if math.Abs(float64(origin.Z()+5)) > 1e-5 {
		t.Errorf("World origin should sit 5 units in front of the camera, got z=%f", origin.Z())
	}
}

func TestCameraGetProjectionMatrix(t *testing.T) {
	cam := NewDefaultCamera()

	proj := cam.GetProjectionMatrix(4.0 / 3.0)

	if proj.At(3, 3) != 0.0 {
		t.Error("Perspective projection should have w=0 at (3,3)")
	}
}

func TestCameraUpdateVectors(t *testing.T) {
	cam := NewDefaultCamera()
	cam.Yaw = 30
	cam.Pitch = 20

	cam.updateCameraVectors()

	frontLen := cam.Front.Len()
	if math.Abs(float64(frontLen)-1.0) > 0.01 {
		t.Errorf("Front vector should be normalized, length=%f", frontLen)
	}
	if math.Abs(float64(cam.Front.Dot(cam.Right))) > 1e-5 {
		t.Error("Front and Right should be orthogonal")
	}
}

func TestCameraProcessKeyboard(t *testing.T) {
	cam := NewDefaultCamera()
	start := cam.Position

	cam.ProcessKeyboard(pressedKeys{glfw.KeyW: true}, 1.0)

	want := start.Add(cam.Front.Mul(cam.Speed))
	if !cam.Position.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("Expected %v after moving forward, got %v", want, cam.Position)
	}

	cam.ProcessKeyboard(pressedKeys{glfw.KeyD: true}, 1.0)
	if cam.Position.X() <= want.X() {
		t.Error("Strafing right should increase X when looking down -Z")
	}
}

func TestCameraPitchIsConstrained(t *testing.T) {
	cam := NewDefaultCamera()

	cam.ProcessMouseMovement(0, 5000, true)

	if cam.Pitch > 89.0 {
		t.Errorf("Pitch should be clamped to 89, got %f", cam.Pitch)
	}
}

func TestCameraMouseScrollClampsZoom(t *testing.T) {
	cam := NewDefaultCamera()

	cam.ProcessMouseScroll(-10)
	if cam.Zoom != maxZoom {
		t.Errorf("Zoom should not exceed %v, got %v", maxZoom, cam.Zoom)
	}

	cam.ProcessMouseScroll(100)
	if cam.Zoom != minZoom {
		t.Errorf("Zoom should not drop below %v, got %v", minZoom, cam.Zoom)
	}
}
