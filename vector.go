package umath

import (
	"fmt"
	"math"
)

// Vector3f is an immutable 3 component vector. Every operation returns a new value.
type Vector3f struct {
	x, y, z float32
}

var Vector3_Zero = Vector3f{}
var Vector3_Up = Vector3f{0, 1, 0}

func NewVector3f(x, y, z float32) Vector3f {
	return Vector3f{x, y, z}
}

func (this Vector3f) X() float32 {
	return this.x
}

func (this Vector3f) Y() float32 {
	return this.y
}

func (this Vector3f) Z() float32 {
	return this.z
}

func (this Vector3f) GetData(i int) float32 {
	switch i {
	case 0:
		return this.x
	case 1:
		return this.y
	case 2:
		return this.z
	default:
		panic(fmt.Errorf("invalid vector index:%d", i))
	}
}

func (this Vector3f) Sub(data Vector3f) Vector3f {
	return Vector3f{this.x - data.x, this.y - data.y, this.z - data.z}
}

func (this Vector3f) Add(data Vector3f) Vector3f {
	return Vector3f{this.x + data.x, this.y + data.y, this.z + data.z}
}

func (this Vector3f) Mulf(data float32) Vector3f {
	return Vector3f{this.x * data, this.y * data, this.z * data}
}

func (this Vector3f) Div(v float32) Vector3f {
	return Vector3f{this.x / v, this.y / v, this.z / v}
}

func (this Vector3f) Neg() Vector3f {
	return Vector3f{-this.x, -this.y, -this.z}
}

func (this Vector3f) IsZero() bool {
	return this.x == 0 && this.y == 0 && this.z == 0
}

func (this Vector3f) String() string {
	return fmt.Sprintf("(%g, %g, %g)", this.x, this.y, this.z)
}

func MinVector3f(l, r Vector3f) Vector3f {
	return Vector3f{FloatMin(l.x, r.x), FloatMin(l.y, r.y), FloatMin(l.z, r.z)}
}

func MaxVector3f(l, r Vector3f) Vector3f {
	return Vector3f{FloatMax(l.x, r.x), FloatMax(l.y, r.y), FloatMax(l.z, r.z)}
}

func DotVector3f(l, r Vector3f) float32 {
	return l.x*r.x + l.y*r.y + l.z*r.z
}

func Magnitude(inV Vector3f) float32 {
	return float32(math.Sqrt(float64(DotVector3f(inV, inV))))
}

func SqrMagnitude(inV Vector3f) float32 {
	return DotVector3f(inV, inV)
}

func Distance(a, b Vector3f) float32 {
	return Magnitude(b.Sub(a))
}

func Cross(lhs, rhs Vector3f) Vector3f {
	return Vector3f{
		lhs.y*rhs.z - lhs.z*rhs.y,
		lhs.z*rhs.x - lhs.x*rhs.z,
		lhs.x*rhs.y - lhs.y*rhs.x,
	}
}

func AbsVector3f(v Vector3f) Vector3f {
	return NewVector3f(FloatAbs(v.x), FloatAbs(v.y), FloatAbs(v.z))
}

// NormalizeSafe returns defaultV when inV is too short to normalize.
func NormalizeSafe(inV, defaultV Vector3f) Vector3f {
	mag := Magnitude(inV)
	if mag > Epsilon {
		return inV.Div(mag)
	} else {
		return defaultV
	}
}

func Normalize(inV Vector3f) Vector3f {
	mag := Magnitude(inV)
	return inV.Div(mag)
}

func CompareApproximately(inV0, inV1 Vector3f, inMaxDist float32) bool {
	return SqrMagnitude(inV1.Sub(inV0)) <= inMaxDist*inMaxDist
}
