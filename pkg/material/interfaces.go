package material

import (
	"github.com/df07/go-nextweek-raytracer/pkg/core"
)

// Material interface for objects that can scatter or emit rays
type Material interface {
	// Scatter returns the attenuation and the scattered ray, or false when the
	// incoming ray is absorbed
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)

	// Emitted returns the light given off at a surface point
	Emitted(uv core.Vec2, point core.Vec3) core.Color
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray   // The scattered ray
	Attenuation core.Color // Color attenuation
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal, always facing against the ray
	T         float64   // Parameter t along the ray
	UV        core.Vec2 // Surface texture coordinates
	FrontFace bool      // Whether ray hit the front face
	Material  Material  // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// noEmission is embedded by materials that do not give off light
type noEmission struct{}

// Emitted returns black
func (noEmission) Emitted(uv core.Vec2, point core.Vec3) core.Color {
	return core.Color{}
}
