package scene

import (
	"math/rand"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
	"github.com/df07/go-nextweek-raytracer/pkg/geometry"
	"github.com/df07/go-nextweek-raytracer/pkg/material"
	"github.com/df07/go-nextweek-raytracer/pkg/renderer"
)

// skyBlue is the solid background of the outdoor scenes
var skyBlue = core.NewColor(0.7, 0.8, 1.0)

// newGroundChecker returns the green and white checker used on the ground
func newGroundChecker() *material.CheckerTexture {
	return material.NewSolidCheckerTexture(
		core.NewColor(0.2, 0.3, 0.1),
		core.NewColor(0.9, 0.9, 0.9),
	)
}

// NewRandomScene creates the book cover: a checkered ground, a grid of small
// random spheres where the diffuse ones bounce upward during the shutter,
// and three large spheres of glass, matte and metal
func NewRandomScene(random *rand.Rand) *Scene {
	s := newScene("random_scene", skyBlue)
	s.CameraConfig.Aperture = 0.1

	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000,
		material.NewTexturedLambertian(newGroundChecker())))

	clearing := core.NewVec3(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := random.Float64()
			center := core.NewVec3(
				float64(a)+0.9+random.Float64(),
				0.2,
				float64(b)+0.9+random.Float64(),
			)
			// Keep the area around the big metal sphere clear
			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				finalCenter := center.Add(core.NewVec3(0, 0.5*random.Float64(), 0))
				albedo := randomColor(random).MultiplyColor(randomColor(random))
				s.Add(geometry.NewMovingSphere(center, finalCenter, 0, 1, 0.2, material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				albedo := core.NewColor(
					0.5*(1-random.Float64()),
					0.5*(1-random.Float64()),
					0.5*(1-random.Float64()),
				)
				s.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, 0.5*random.Float64())))
			default:
				s.Add(geometry.NewSphere(center, 0.2, glass()))
			}
		}
	}

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1, glass()),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, material.NewLambertian(core.NewColor(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1, material.NewMetal(core.NewColor(0.7, 0.6, 0.5), 0)),
	)

	return s
}

// NewTwoSpheresScene creates two large checkered spheres touching at the origin
func NewTwoSpheresScene(random *rand.Rand) *Scene {
	s := newScene("two_spheres", skyBlue)

	checker := material.NewTexturedLambertian(newGroundChecker())
	s.Add(
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, checker),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, checker),
	)

	return s
}

// addPerlinSpheres adds a marbled ground and a marbled sphere resting on it
func addPerlinSpheres(s *Scene, random *rand.Rand) {
	perlin := material.NewTexturedLambertian(material.NewNoiseTexture(4, core.NewRandomSampler(random)))
	s.Add(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, perlin),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, perlin),
	)
}

// NewTwoPerlinSpheresScene creates the marble ground and sphere lit by the sky
func NewTwoPerlinSpheresScene(random *rand.Rand) *Scene {
	s := newScene("two_perlin_spheres", skyBlue)
	addPerlinSpheres(s, random)
	return s
}

// EarthTexturePath is the image wrapped around the earth spheres
var EarthTexturePath = "assets/earth.png"

// NewEarthScene creates a single sphere textured with EarthTexturePath.
// A missing image renders cyan rather than failing.
func NewEarthScene(random *rand.Rand) *Scene {
	s := newScene("earth", skyBlue)

	earth := material.NewTexturedLambertian(material.NewImageTextureFromFile(EarthTexturePath))
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 2, earth))

	return s
}

// NewSimpleLightScene creates the marble spheres lit only by a rectangular
// area light behind them
func NewSimpleLightScene(random *rand.Rand) *Scene {
	s := newScene("simple_light", core.Color{})
	s.CameraConfig.LookFrom = core.NewVec3(26, 3, 6)
	s.CameraConfig.LookAt = core.NewVec3(0, 2, 0)
	s.SamplingConfig = renderer.SamplingConfig{SamplesPerPixel: 400}

	addPerlinSpheres(s, random)
	light := material.NewDiffuseLight(core.RepeatColor(4))
	s.Add(geometry.NewXYRect(3, 5, 1, 3, -2, light))

	return s
}
