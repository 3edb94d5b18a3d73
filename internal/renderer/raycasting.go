package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// LampPickRadius is the bounding sphere of a lamp marker: half the diagonal of
// the scaled unit cube.
var LampPickRadius = LampScale * 0.5 * float32(math.Sqrt(3))

type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// RayIntersectSphere returns the distance to the nearest hit in front of the
// ray origin.
func RayIntersectSphere(ray Ray, center mgl32.Vec3, radius float32) (bool, float32) {
	oc := ray.Origin.Sub(center)
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - radius*radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 || a == 0 {
		return false, 0
	}

	sqrtDisc := float32(math.Sqrt(float64(discriminant)))
	near := (-b - sqrtDisc) / (2 * a)
	far := (-b + sqrtDisc) / (2 * a)
	switch {
	case near > 0:
		return true, near
	case far > 0:
		// origin inside the sphere
		return true, far
	}
	return false, 0
}

// ScreenToRay unprojects a cursor position (window coordinates, origin top
// left) into a world space ray from the camera.
func ScreenToRay(camera *Camera, screenX, screenY float32, width, height int) Ray {
	if width <= 0 || height <= 0 {
		return Ray{Origin: camera.Position, Direction: camera.Front}
	}
	ndcX := 2*screenX/float32(width) - 1
	ndcY := 1 - 2*screenY/float32(height)

	projection := camera.GetProjectionMatrix(float32(width) / float32(height))
	eye := projection.Inv().Mul4x1(mgl32.Vec4{ndcX, ndcY, -1, 1})
	eye = mgl32.Vec4{eye.X(), eye.Y(), -1, 0}

	world := camera.GetViewMatrix().Inv().Mul4x1(eye).Vec3().Normalize()
	return Ray{Origin: camera.Position, Direction: world}
}

// PickLamp returns the bank index of the nearest visible lamp hit by ray.
func PickLamp(ray Ray, state LightingState) (int, bool) {
	best, bestDist := -1, float32(math.MaxFloat32)
	for _, i := range visibleLampIndices(state) {
		hit, dist := RayIntersectSphere(ray, state.Bank.Get(i).Position, LampPickRadius)
		if hit && dist < bestDist {
			best, bestDist = i, dist
		}
	}
	return best, best >= 0
}
