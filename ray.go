package umath

import "fmt"

// Ray is the half line Origin + t*Direction for t >= 0. Direction does not need to be normalized.
type Ray struct {
	Origin    Vector3f
	Direction Vector3f
}

func NewRay(origin, direction Vector3f) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// NewRayFromPoints returns a ray starting at from that reaches to at t = 1.
func NewRayFromPoints(from, to Vector3f) Ray {
	return Ray{Origin: from, Direction: to.Sub(from)}
}

func (r Ray) PointAt(t float32) Vector3f {
	return r.Origin.Add(r.Direction.Mulf(t))
}

func (r Ray) String() string {
	return fmt.Sprintf("Ray(origin = %v, direction = %v)", r.Origin, r.Direction)
}
