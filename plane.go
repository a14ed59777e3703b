package umath

import (
	"errors"
	"fmt"
	"math"
)

var ErrDegenerateNormal = errors.New("plane normal has zero length")

// Plane is the set of points p with Dot(normal, p) == distance.
// The zero value is a degenerate plane that no ray intersects.
type Plane struct {
	normal   Vector3f
	distance float32
}

// NewPlane stores normal and distance as given. normal is expected to be unit length,
// otherwise distance is not the true offset from the origin.
func NewPlane(normal Vector3f, distance float32) Plane {
	return Plane{normal: normal, distance: distance}
}

// NewPlaneFromPoint returns the plane with the given normal passing through position.
func NewPlaneFromPoint(normal, position Vector3f) Plane {
	return Plane{normal: normal, distance: DotVector3f(normal, position)}
}

// NewNormalizedPlane rescales normal and distance together so the normal is unit length.
func NewNormalizedPlane(normal Vector3f, distance float32) (Plane, error) {
	mag := Magnitude(normal)
	if mag <= Epsilon {
		return Plane{}, fmt.Errorf("normalize %v: %w", normal, ErrDegenerateNormal)
	}
	return Plane{normal: normal.Div(mag), distance: distance / mag}, nil
}

func (p Plane) Normal() Vector3f {
	return p.normal
}

func (p Plane) Distance() float32 {
	return p.distance
}

func (p Plane) IsNormalized() bool {
	return FuzzyCompare(SqrMagnitude(p.normal), 1)
}

// Flip describes the same set of points with the normal facing the other way.
func (p Plane) Flip() Plane {
	return Plane{normal: p.normal.Neg(), distance: -p.distance}
}

// DistanceToPoint is signed, positive on the side the normal points to.
func (this Plane) DistanceToPoint(inPt Vector3f) float32 {
	return DotVector3f(this.normal, inPt) - this.distance
}

func (p Plane) IntersectsRay(ray Ray) Intersection {
	w := ray.Origin.Sub(p.normal.Mulf(p.distance))

	nDotR := DotVector3f(p.normal, ray.Direction)
	nDotW := -DotVector3f(p.normal, w)

	// parallel, also a zero normal or a zero direction
	if FuzzyZero(nDotR) {
		return NoIntersection()
	}

	t := nDotW / nDotR
	// behind the origin, or NaN/overflow from non finite input
	if !(t >= 0) || math.IsInf(float64(t), 1) {
		return NoIntersection()
	}
	return IntersectionAt(t)
}

func (p Plane) String() string {
	return fmt.Sprintf("Plane(normal = %v, distance = %g)", p.normal, p.distance)
}

// Intersection is the outcome of a ray query: either no hit or a hit at ray parameter t >= 0.
type Intersection struct {
	t   float32
	hit bool
}

func NoIntersection() Intersection {
	return Intersection{}
}

func IntersectionAt(t float32) Intersection {
	return Intersection{t: t, hit: true}
}

func (i Intersection) Hit() bool {
	return i.hit
}

// T returns the ray parameter and whether there was a hit. A hit at 0 means the ray starts on the plane.
func (i Intersection) T() (float32, bool) {
	return i.t, i.hit
}

// Point returns where the ray meets the plane, only meaningful when Hit is true.
func (i Intersection) Point(ray Ray) Vector3f {
	return ray.PointAt(i.t)
}

func (i Intersection) String() string {
	if !i.hit {
		return "NoIntersection"
	}
	return fmt.Sprintf("IntersectionAt(%g)", i.t)
}

// Transform moves the plane by rotation followed by translation, the same way points are moved.
func (p Plane) Transform(rotation Quaternionf, translation Vector3f) Plane {
	normal := RotateVectorByQuat(rotation, p.normal)
	return Plane{normal: normal, distance: p.distance + DotVector3f(normal, translation)}
}
