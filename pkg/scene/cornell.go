package scene

import (
	"math/rand"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
	"github.com/df07/go-nextweek-raytracer/pkg/geometry"
	"github.com/df07/go-nextweek-raytracer/pkg/material"
	"github.com/df07/go-nextweek-raytracer/pkg/renderer"
)

// Cornell box dimensions (standard 555x555x555 units)
const boxSize = 555.0

// cornellLight describes the ceiling light: an XZ rectangle just below the
// ceiling and its emitted radiance
type cornellLight struct {
	x0, x1, z0, z1 float64
	emission       float64
}

// newCornellScene creates the walls of a Cornell box with the camera in
// front of the open side
func newCornellScene(name string, light cornellLight) *Scene {
	s := newScene(name, core.Color{})
	// Camera outside the box looking in
	s.CameraConfig.LookFrom = core.NewVec3(278, 278, -800)
	s.CameraConfig.LookAt = core.NewVec3(278, 278, 0)
	s.CameraConfig.VFov = 40
	s.CameraConfig.AspectRatio = 1
	s.SamplingConfig = renderer.SamplingConfig{Width: 600, SamplesPerPixel: 200}

	// Create materials
	red := material.NewLambertian(core.NewColor(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.RepeatColor(0.73))
	green := material.NewLambertian(core.NewColor(0.12, 0.45, 0.15))
	emitter := material.NewDiffuseLight(core.RepeatColor(light.emission))

	s.Add(
		geometry.NewYZRect(0, boxSize, 0, boxSize, boxSize, green), // Right wall
		geometry.NewYZRect(0, boxSize, 0, boxSize, 0, red),         // Left wall
		geometry.NewXZRect(light.x0, light.x1, light.z0, light.z1, boxSize-1, emitter),
		geometry.NewXZRect(0, boxSize, 0, boxSize, boxSize, white), // Ceiling
		geometry.NewXZRect(0, boxSize, 0, boxSize, 0, white),       // Floor
		geometry.NewXYRect(0, boxSize, 0, boxSize, boxSize, white), // Back wall
	)

	return s
}

// newCornellBlocks returns the tall and the short block, rotated and placed
// on the floor
func newCornellBlocks(mat material.Material) (tall, short geometry.Shape) {
	tall = geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), mat), 15),
		core.NewVec3(265, 0, 295),
	)
	short = geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBox(core.NewVec3(0, 0, 0), core.RepeatVec3(165), mat), -18),
		core.NewVec3(130, 0, 65),
	)
	return tall, short
}

// NewEmptyCornellScene creates the Cornell box walls with a small bright
// ceiling light and nothing inside
func NewEmptyCornellScene(random *rand.Rand) *Scene {
	return newCornellScene("empty_cornell_box", cornellLight{213, 343, 227, 332, 15})
}

// NewCornellScene creates the classic Cornell box with two white blocks
func NewCornellScene(random *rand.Rand) *Scene {
	s := newCornellScene("cornell_box", cornellLight{213, 343, 227, 332, 15})

	tall, short := newCornellBlocks(material.NewLambertian(core.RepeatColor(0.73)))
	s.Add(tall, short)

	return s
}

// NewSmokeCornellScene replaces the blocks of the Cornell box with black and
// white smoke under a larger, dimmer light
func NewSmokeCornellScene(random *rand.Rand) *Scene {
	s := newCornellScene("smoke_cornell_box", cornellLight{113, 443, 127, 432, 7})

	tall, short := newCornellBlocks(material.NewLambertian(core.RepeatColor(0.73)))
	s.Add(
		geometry.NewConstantMedium(tall, 0.01, core.RepeatColor(0)),
		geometry.NewConstantMedium(short, 0.01, core.RepeatColor(1)),
	)

	return s
}
