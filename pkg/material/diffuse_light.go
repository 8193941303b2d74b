package material

import (
	"github.com/df07/go-nextweek-raytracer/pkg/core"
)

// DiffuseLight represents a light-emitting material
type DiffuseLight struct {
	Emission ColorSource // Emitted light color/intensity
}

// NewDiffuseLight creates a light emitting a uniform color
func NewDiffuseLight(emission core.Color) *DiffuseLight {
	return &DiffuseLight{Emission: NewSolidColor(emission)}
}

// NewTexturedDiffuseLight creates a light whose emission varies over the surface
func NewTexturedDiffuseLight(emission ColorSource) *DiffuseLight {
	return &DiffuseLight{Emission: emission}
}

// Scatter implements the Material interface for emissive materials.
// Lights absorb every incoming ray.
func (e *DiffuseLight) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// Emitted returns the emission texture at the surface point
func (e *DiffuseLight) Emitted(uv core.Vec2, point core.Vec3) core.Color {
	return e.Emission.Evaluate(uv, point)
}
