package integrator

import (
	"math"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
	"github.com/df07/go-nextweek-raytracer/pkg/geometry"
)

// ShadowAcneEpsilon is the minimum hit distance for every ray. It keeps a
// scattered ray from re-hitting the surface it leaves.
const ShadowAcneEpsilon = 0.001

// PathTracingIntegrator implements unidirectional path tracing with no
// light sampling: paths only gather light by hitting emitters or escaping
// to the background
type PathTracingIntegrator struct {
	MaxDepth   int
	Background Background
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(maxDepth int, background Background) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		MaxDepth:   maxDepth,
		Background: background,
	}
}

// RayColor computes emitted + attenuation ⊙ RayColor(scattered) for up to
// MaxDepth bounces. The recursion is unrolled into a loop that carries the
// product of attenuations so far.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler) core.Color {
	var radiance core.Color
	throughput := core.RepeatColor(1)

	for depth := pt.MaxDepth; depth > 0; depth-- {
		hit, isHit := world.Hit(ray, ShadowAcneEpsilon, math.Inf(1), sampler)
		if !isHit {
			return radiance.Add(throughput.MultiplyColor(pt.Background.Color(ray)))
		}

		emitted := hit.Material.Emitted(hit.UV, hit.Point)
		radiance = radiance.Add(throughput.MultiplyColor(emitted))

		scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
		if !didScatter {
			return radiance
		}

		throughput = throughput.MultiplyColor(scatter.Attenuation)
		if throughput.IsBlack() {
			return radiance
		}
		ray = scatter.Scattered
	}

	// Bounce budget exhausted, no more light is gathered
	return radiance
}
