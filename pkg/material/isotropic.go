package material

import (
	"github.com/df07/go-nextweek-raytracer/pkg/core"
)

// Isotropic is the phase function of a participating medium: it scatters
// uniformly in every direction
type Isotropic struct {
	noEmission
	Albedo ColorSource
}

// NewIsotropic creates an isotropic phase function with solid color
func NewIsotropic(albedo core.Color) *Isotropic {
	return &Isotropic{Albedo: NewSolidColor(albedo)}
}

// NewTexturedIsotropic creates an isotropic phase function with texture
func NewTexturedIsotropic(albedo ColorSource) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter picks a new direction from the unit sphere, not a hemisphere
func (i *Isotropic) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	direction := core.SamplePointInUnitSphere(sampler.Get3D())
	if direction.NearZero() {
		direction = core.NewVec3(1, 0, 0)
	}
	return ScatterResult{
		Scattered:   core.NewRayAt(hit.Point, direction, rayIn.Time),
		Attenuation: i.Albedo.Evaluate(hit.UV, hit.Point),
	}, true
}
