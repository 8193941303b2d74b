package scene

import (
	"math/rand"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
	"github.com/df07/go-nextweek-raytracer/pkg/geometry"
	"github.com/df07/go-nextweek-raytracer/pkg/material"
	"github.com/df07/go-nextweek-raytracer/pkg/renderer"
)

const (
	boxesPerSide   = 20
	groundBoxWidth = 100.0
	clusterSpheres = 1000
)

// NewFinalScene creates the closing image of the book: a field of boxes,
// every material and texture, a moving sphere, smoke inside glass, a thin
// global mist and a rotated cluster of small spheres
func NewFinalScene(random *rand.Rand) *Scene {
	s := newScene("final_scene", core.Color{})
	s.CameraConfig.LookFrom = core.NewVec3(478, 278, -600)
	s.CameraConfig.LookAt = core.NewVec3(278, 278, 0)
	s.CameraConfig.VFov = 40
	s.CameraConfig.AspectRatio = 1
	s.SamplingConfig = renderer.SamplingConfig{Width: 800, SamplesPerPixel: 10000}

	// Ground: boxes of random height, grouped under their own hierarchy
	ground := material.NewLambertian(core.NewColor(0.48, 0.83, 0.53))
	boxes := make([]geometry.Shape, 0, boxesPerSide*boxesPerSide)
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			v0 := core.NewVec3(-1000+float64(i)*groundBoxWidth, 0, -1000+float64(j)*groundBoxWidth)
			v1 := core.NewVec3(v0.X+groundBoxWidth, 1+100*random.Float64(), v0.Z+groundBoxWidth)
			boxes = append(boxes, geometry.NewBox(v0, v1, ground))
		}
	}
	s.Add(geometry.NewBVH(boxes, s.CameraConfig.OpenTime, s.CameraConfig.CloseTime, random))

	light := material.NewDiffuseLight(core.RepeatColor(7))
	s.Add(geometry.NewXZRect(123, 423, 147, 412, 554, light))

	center0 := core.RepeatVec3(400)
	center1 := center0.Add(core.NewVec3(30, 0, 0))
	s.Add(geometry.NewMovingSphere(center0, center1, 0, 1, 50, material.NewLambertian(core.NewColor(0.7, 0.3, 0.1))))

	s.Add(
		geometry.NewSphere(core.NewVec3(260, 150, 45), 50, glass()),
		geometry.NewSphere(core.NewVec3(0, 150, 45), 50, material.NewMetal(core.NewColor(0.8, 0.8, 0.9), 1)),
	)

	// Blue smoke inside a glass ball
	boundary := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, glass())
	s.Add(boundary, geometry.NewConstantMedium(boundary, 0.2, core.NewColor(0.2, 0.4, 0.9)))

	// Mist filling the whole scene
	mist := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, glass())
	s.Add(geometry.NewConstantMedium(mist, 0.0001, core.RepeatColor(1)))

	earth := material.NewTexturedLambertian(material.NewImageTextureFromFile(EarthTexturePath))
	s.Add(geometry.NewSphere(core.NewVec3(400, 200, 400), 100, earth))

	noise := material.NewNoiseTexture(0.1, core.NewRandomSampler(random))
	s.Add(geometry.NewSphere(core.NewVec3(220, 280, 300), 80, material.NewTexturedLambertian(noise)))

	white := material.NewLambertian(core.RepeatColor(0.73))
	cluster := make([]geometry.Shape, 0, clusterSpheres)
	for i := 0; i < clusterSpheres; i++ {
		cluster = append(cluster, geometry.NewSphere(randomVec3(random, 0, 165), 10, white))
	}
	s.Add(geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBVH(cluster, s.CameraConfig.OpenTime, s.CameraConfig.CloseTime, random), 15),
		core.NewVec3(-100, 270, 395),
	))

	return s
}
