package umath

import "math"

// Quaternionf is a rotation. Only unit quaternions rotate without scaling.
type Quaternionf struct {
	x, y, z, w float32
}

var Quaternion_Identity = Quaternionf{0, 0, 0, 1}

func NewQuaternionf(x, y, z, w float32) Quaternionf {
	return Quaternionf{x, y, z, w}
}

// AxisAngleToQuaternion rotates by angle radians around axis, which is normalized here.
func AxisAngleToQuaternion(axis Vector3f, angle float32) Quaternionf {
	axis = NormalizeSafe(axis, Vector3_Up)
	s := float32(math.Sin(float64(angle) * 0.5))
	c := float32(math.Cos(float64(angle) * 0.5))
	return Quaternionf{axis.x * s, axis.y * s, axis.z * s, c}
}

func (this Quaternionf) Add(that Quaternionf) Quaternionf {
	return Quaternionf{
		this.x + that.x,
		this.y + that.y,
		this.z + that.z,
		this.w + that.w,
	}
}

func (this Quaternionf) Sub(that Quaternionf) Quaternionf {
	return Quaternionf{
		this.x - that.x,
		this.y - that.y,
		this.z - that.z,
		this.w - that.w,
	}
}

func DotQuaternionf(l, r Quaternionf) float32 {
	return l.x*r.x + l.y*r.y + l.z*r.z + l.w*r.w
}

func InverseQuaternion(q Quaternionf) Quaternionf {
	return Quaternionf{-q.x, -q.y, -q.z, q.w}
}

// CompareApproximatelyQ treats q and -q as the same rotation.
func CompareApproximatelyQ(q1, q2 Quaternionf, epsilon float32) bool {
	d := q1.Sub(q2)
	s := q1.Add(q2)
	return DotQuaternionf(d, d) <= epsilon*epsilon || DotQuaternionf(s, s) <= epsilon*epsilon
}

func RotateVectorByQuat(lhs Quaternionf, rhs Vector3f) Vector3f {
	x := lhs.x * 2.0
	y := lhs.y * 2.0
	z := lhs.z * 2.0
	xx := lhs.x * x
	yy := lhs.y * y
	zz := lhs.z * z
	xy := lhs.x * y
	xz := lhs.x * z
	yz := lhs.y * z
	wx := lhs.w * x
	wy := lhs.w * y
	wz := lhs.w * z
	var res Vector3f
	res.x = (1.0-(yy+zz))*rhs.x + (xy-wz)*rhs.y + (xz+wy)*rhs.z
	res.y = (xy+wz)*rhs.x + (1.0-(xx+zz))*rhs.y + (yz-wx)*rhs.z
	res.z = (xz-wy)*rhs.x + (yz+wx)*rhs.y + (1.0-(xx+yy))*rhs.z
	return res
}
