package geometry

import (
	"math"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
	"github.com/df07/go-nextweek-raytracer/pkg/material"
)

// ConstantMedium is a volume of uniform density (smoke, fog) bounded by a
// convex shape. Rays passing through scatter at exponentially distributed
// distances.
type ConstantMedium struct {
	Boundary      Shape
	PhaseFunction material.Material
	negInvDensity float64
	density       float64
}

// NewConstantMedium creates a medium with a solid color isotropic phase function
func NewConstantMedium(boundary Shape, density float64, albedo core.Color) *ConstantMedium {
	return NewTexturedConstantMedium(boundary, density, material.NewSolidColor(albedo))
}

// NewTexturedConstantMedium creates a medium whose albedo comes from a texture
func NewTexturedConstantMedium(boundary Shape, density float64, albedo material.ColorSource) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		PhaseFunction: material.NewTexturedIsotropic(albedo),
		negInvDensity: -1 / density,
		density:       density,
	}
}

// Hit samples a scattering distance inside the boundary. The returned
// normal and face flag are arbitrary.
func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	if m.density <= 0 {
		return nil, false
	}

	// Entry and exit points along the whole line
	rec1, ok := m.Boundary.Hit(ray, math.Inf(-1), math.Inf(1), sampler)
	if !ok {
		return nil, false
	}
	rec2, ok := m.Boundary.Hit(ray, rec1.T+0.0001, math.Inf(1), sampler)
	if !ok {
		return nil, false
	}

	t1 := math.Max(rec1.T, tMin)
	t2 := math.Min(rec2.T, tMax)
	if t1 >= t2 {
		return nil, false
	}
	t1 = math.Max(t1, 0)

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (t2 - t1) * rayLength
	hitDistance := m.negInvDensity * math.Log(1-sampler.Get1D())
	if hitDistance > distanceInsideBoundary {
		return nil, false
	}

	t := t1 + hitDistance/rayLength
	return &material.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0),
		FrontFace: true,
		Material:  m.PhaseFunction,
	}, true
}

// BoundingBox returns the boundary's box
func (m *ConstantMedium) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return m.Boundary.BoundingBox(time0, time1)
}
