package umath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector3f_Arithmetic(t *testing.T) {
	a := NewVector3f(1, 2, 3)
	b := NewVector3f(4, -5, 6)

	assert.Equal(t, NewVector3f(5, -3, 9), a.Add(b))
	assert.Equal(t, NewVector3f(-3, 7, -3), a.Sub(b))
	assert.Equal(t, NewVector3f(2, 4, 6), a.Mulf(2))
	assert.Equal(t, NewVector3f(-1, -2, -3), a.Neg())
	assert.Equal(t, float32(12), DotVector3f(a, b))
	assert.Equal(t, NewVector3f(27, 6, -13), Cross(a, b))

	// receivers are values
	assert.Equal(t, NewVector3f(1, 2, 3), a)
}

func TestVector3f_Normalize(t *testing.T) {
	v := Normalize(NewVector3f(3, 0, 4))
	assert.InDelta(t, 1, Magnitude(v), 1e-6)
	assert.True(t, CompareApproximately(v, NewVector3f(0.6, 0, 0.8), 1e-6))

	fallback := NewVector3f(0, 1, 0)
	assert.Equal(t, fallback, NormalizeSafe(Vector3_Zero, fallback))
}

func TestVector3f_GetData(t *testing.T) {
	v := NewVector3f(7, 8, 9)
	assert.Equal(t, float32(8), v.GetData(1))
	assert.Panics(t, func() { v.GetData(3) })
	assert.Equal(t, "(7, 8, 9)", v.String())
}

func TestFuzzyCompare(t *testing.T) {
	assert.True(t, FuzzyCompare(1, 1+Epsilon/2))
	assert.False(t, FuzzyCompare(0, 3*Epsilon))
	assert.Equal(t, float32(-2), FloatMin(-2, 1))
	assert.Equal(t, float32(1), FloatMax(-2, 1))
}
