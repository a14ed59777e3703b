package umath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotateVectorByQuat(t *testing.T) {
	q := AxisAngleToQuaternion(NewVector3f(0, 0, 1), math.Pi/2)
	v := RotateVectorByQuat(q, NewVector3f(1, 0, 0))
	assert.True(t, CompareApproximately(v, NewVector3f(0, 1, 0), 1e-5), v.String())

	back := RotateVectorByQuat(InverseQuaternion(q), v)
	assert.True(t, CompareApproximately(back, NewVector3f(1, 0, 0), 1e-5), back.String())

	assert.Equal(t, NewVector3f(1, 2, 3), RotateVectorByQuat(Quaternion_Identity, NewVector3f(1, 2, 3)))
}

func TestCompareApproximatelyQ(t *testing.T) {
	q := AxisAngleToQuaternion(NewVector3f(1, 1, 0), 0.7)
	neg := NewQuaternionf(-q.x, -q.y, -q.z, -q.w)
	assert.True(t, CompareApproximatelyQ(q, neg, 1e-6))
	assert.False(t, CompareApproximatelyQ(q, Quaternion_Identity, 1e-3))
}

func TestPlane_Transform(t *testing.T) {
	// bed plane rotated onto the x axis and moved along it
	bed := NewPlane(NewVector3f(0, 1, 0), 0)
	q := AxisAngleToQuaternion(NewVector3f(0, 0, 1), -math.Pi/2)
	moved := bed.Transform(q, NewVector3f(4, 7, 0))

	assert.True(t, CompareApproximately(moved.Normal(), NewVector3f(1, 0, 0), 1e-5), moved.String())
	assert.InDelta(t, 4, moved.Distance(), 1e-5)

	tHit, ok := moved.IntersectsRay(NewRay(Vector3_Zero, NewVector3f(1, 0, 0))).T()
	assert.True(t, ok)
	assert.InDelta(t, 4, tHit, 1e-4)

	assert.Equal(t, bed, bed.Transform(Quaternion_Identity, Vector3_Zero))
}
