package umath

import (
	"fmt"

	"github.com/lazytiger/umath/format"
)

func NewVector3fFromFormat(v format.Vector3f) Vector3f {
	return Vector3f{v.X, v.Y, v.Z}
}

func NewRayFromFormat(r format.RayData) Ray {
	origin := NewVector3fFromFormat(r.Origin)
	if r.Direction.IsZero() && !r.Target.IsZero() {
		return NewRayFromPoints(origin, NewVector3fFromFormat(r.Target))
	}
	return NewRay(origin, NewVector3fFromFormat(r.Direction))
}

func NewPlaneFromFormat(p format.PlaneData) (Plane, error) {
	normal := NewVector3fFromFormat(p.Normal)
	if p.Normalize {
		return NewNormalizedPlane(normal, p.Distance)
	}
	return NewPlane(normal, p.Distance), nil
}

func NewRaysFromData(data *format.SceneData) []Ray {
	rays := make([]Ray, len(data.Rays))
	for i, r := range data.Rays {
		rays[i] = NewRayFromFormat(r)
	}
	return rays
}

// NewPickerFromData validates the scene and registers its planes in file order.
func NewPickerFromData(data *format.SceneData, opts ...PickerOption) (*Picker, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}
	if !data.Volume.IsEmpty() {
		volume := NewAABBFromMinMax(NewMinMaxAABB(
			NewVector3fFromFormat(data.Volume.Min),
			NewVector3fFromFormat(data.Volume.Max),
		))
		opts = append([]PickerOption{WithVolume(volume)}, opts...)
	}
	picker := NewPicker(opts...)
	for i, p := range data.Planes {
		plane, err := NewPlaneFromFormat(p)
		if err != nil {
			return nil, fmt.Errorf("plane %d %q: %w", i, p.Name, err)
		}
		picker.AddPlane(p.Name, plane)
	}
	return picker, nil
}
