package scene

import (
	"math/rand"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
	"github.com/df07/go-nextweek-raytracer/pkg/geometry"
	"github.com/df07/go-nextweek-raytracer/pkg/integrator"
	"github.com/df07/go-nextweek-raytracer/pkg/material"
	"github.com/df07/go-nextweek-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	Shapes         []geometry.Shape       // Objects in the scene
	Background     integrator.Background  // Radiance for rays that escape
	CameraConfig   renderer.CameraConfig  // Camera placement and lens
	SamplingConfig renderer.SamplingConfig // Per-scene overrides; zero fields keep the defaults
	BVH            *geometry.BVH           // Acceleration structure for ray-object intersection
}

// newScene returns a scene with the default camera and a solid background
func newScene(name string, background core.Color) *Scene {
	return &Scene{
		Name:         name,
		Shapes:       make([]geometry.Shape, 0),
		Background:   integrator.NewSolidBackground(background),
		CameraConfig: renderer.DefaultCameraConfig(),
	}
}

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// Preprocess builds the BVH over all shapes, with bounding boxes valid over
// the camera's shutter interval
func (s *Scene) Preprocess(random *rand.Rand) {
	s.BVH = geometry.NewBVH(s.Shapes, s.CameraConfig.OpenTime, s.CameraConfig.CloseTime, random)
}

// World returns the shape rays are traced against: the BVH once the scene
// is preprocessed, otherwise a plain list
func (s *Scene) World() geometry.Shape {
	if s.BVH != nil {
		return s.BVH
	}
	return geometry.NewList(s.Shapes...)
}

// GetPrimitiveCount returns the number of top-level shapes in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}

// RenderConfig resolves the sampling configuration for this scene: the
// defaults, then the scene's own overrides, then override. Height always
// follows from the width and the camera aspect ratio.
func (s *Scene) RenderConfig(override renderer.SamplingConfig) renderer.SamplingConfig {
	config := renderer.DefaultSamplingConfig().Merge(s.SamplingConfig).Merge(override)
	if s.CameraConfig.AspectRatio > 0 {
		config.Height = int(float64(config.Width) / s.CameraConfig.AspectRatio)
	}
	return config
}

// NewRaytracer wires the scene's world, camera and background into a
// raytracer using the resolved configuration
func (s *Scene) NewRaytracer(config renderer.SamplingConfig, logger core.Logger) *renderer.Raytracer {
	camera := renderer.NewCamera(s.CameraConfig)
	integ := integrator.NewPathTracingIntegrator(config.MaxDepth, s.Background)
	return renderer.NewRaytracer(s.World(), camera, integ, config, logger)
}

// randomColor returns a color with each channel drawn from [0, 1)
func randomColor(random *rand.Rand) core.Color {
	return core.NewColor(random.Float64(), random.Float64(), random.Float64())
}

// randomVec3 returns a point with each coordinate drawn from [lo, hi)
func randomVec3(random *rand.Rand, lo, hi float64) core.Vec3 {
	return core.NewVec3(
		lo+(hi-lo)*random.Float64(),
		lo+(hi-lo)*random.Float64(),
		lo+(hi-lo)*random.Float64(),
	)
}

// glass is the dielectric used throughout the reference scenes
func glass() material.Material {
	return material.NewDielectric(1.5)
}
