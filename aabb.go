package umath

import (
	"fmt"
	"math"
)

// AABB is an axis aligned box stored as center and half extent.
type AABB struct {
	m_Center Vector3f
	m_Extent Vector3f
}

func NewAABB(center, extent Vector3f) AABB {
	return AABB{m_Center: center, m_Extent: AbsVector3f(extent)}
}

func NewAABBFromMinMax(data MinMaxAABB) AABB {
	return AABB{
		m_Center: data.m_Min.Add(data.m_Max).Mulf(0.5),
		m_Extent: data.m_Max.Sub(data.m_Min).Mulf(0.5),
	}
}

func (this AABB) Center() Vector3f {
	return this.m_Center
}

func (this AABB) Min() Vector3f {
	return this.m_Center.Sub(this.m_Extent)
}

func (this AABB) Max() Vector3f {
	return this.m_Center.Add(this.m_Extent)
}

// VolumeTolerance is the slack allowed outside an AABB, relative to the largest
// coordinate magnitude on each axis (and never less than VolumeTolerance itself).
const VolumeTolerance float32 = 0.00001

func volumeSlack(size float32) float32 {
	return VolumeTolerance * FloatMax(1, size)
}

// IsInside includes the faces of the box. Points computed from ray hits may land a few
// float32 steps outside a face, so the slack grows with the coordinates involved.
func (this AABB) IsInside(inPoint Vector3f) bool {
	d := AbsVector3f(inPoint.Sub(this.m_Center)).Sub(this.m_Extent)
	size := AbsVector3f(this.m_Center).Add(this.m_Extent)
	return d.x <= volumeSlack(size.x) && d.y <= volumeSlack(size.y) && d.z <= volumeSlack(size.z)
}

func (this AABB) String() string {
	return fmt.Sprintf("AABB(min = %v, max = %v)", this.Min(), this.Max())
}

type MinMaxAABB struct {
	m_Min Vector3f
	m_Max Vector3f
}

func NewMinMaxAABB(min, max Vector3f) MinMaxAABB {
	return MinMaxAABB{m_Min: MinVector3f(min, max), m_Max: MaxVector3f(min, max)}
}

// NewEmptyMinMaxAABB returns an inverted box that any Encapsulate call will replace.
func NewEmptyMinMaxAABB() MinMaxAABB {
	return MinMaxAABB{
		m_Min: Vector3f{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32},
		m_Max: Vector3f{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32},
	}
}

func (this MinMaxAABB) IsValid() bool {
	return this.m_Min.x <= this.m_Max.x && this.m_Min.y <= this.m_Max.y && this.m_Min.z <= this.m_Max.z
}

func (this MinMaxAABB) Encapsulate(inPoint Vector3f) MinMaxAABB {
	return MinMaxAABB{
		m_Min: MinVector3f(this.m_Min, inPoint),
		m_Max: MaxVector3f(this.m_Max, inPoint),
	}
}

func (this MinMaxAABB) Min() Vector3f {
	return this.m_Min
}

func (this MinMaxAABB) Max() Vector3f {
	return this.m_Max
}
