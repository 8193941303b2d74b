package renderer

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
	"github.com/df07/go-nextweek-raytracer/pkg/geometry"
	"github.com/df07/go-nextweek-raytracer/pkg/integrator"
)

// Raytracer renders a world through a camera, one row per task
type Raytracer struct {
	world      geometry.Shape
	camera     *Camera
	integrator integrator.Integrator
	config     SamplingConfig
	logger     core.Logger
}

// NewRaytracer creates a new raytracer. The world must not be modified
// while a render is running.
func NewRaytracer(world geometry.Shape, camera *Camera, integ integrator.Integrator, config SamplingConfig, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = NewDiscardLogger()
	}
	return &Raytracer{
		world:      world,
		camera:     camera,
		integrator: integ,
		config:     config,
		logger:     logger,
	}
}

// Config returns the sampling configuration
func (rt *Raytracer) Config() SamplingConfig {
	return rt.config
}

// PixelColor averages SamplesPerPixel jittered camera samples through pixel
// (i, j), where j counts rows from the bottom of the image
func (rt *Raytracer) PixelColor(i, j int, sampler core.Sampler) core.Color {
	var colorAccum core.Color
	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		jitter := sampler.Get2D()
		s := (float64(i) + jitter.X) / float64(rt.config.Width)
		t := (float64(j) + jitter.Y) / float64(rt.config.Height)

		ray := rt.camera.GetRay(s, t, sampler)
		colorAccum = colorAccum.Add(rt.integrator.RayColor(ray, rt.world, sampler))
	}
	return colorAccum.Divide(float64(rt.config.SamplesPerPixel))
}

// Render traces every pixel in parallel and returns the finished image.
// Row j (counted from the bottom) is sampled with its own generator seeded
// Seed+j, so output depends only on the configuration, not on scheduling.
func (rt *Raytracer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	width, height := rt.config.Width, rt.config.Height
	if width <= 0 || height <= 0 || rt.config.SamplesPerPixel <= 0 {
		return nil, RenderStats{}, fmt.Errorf("while starting render: invalid size %dx%d with %d samples",
			width, height, rt.config.SamplesPerPixel)
	}

	start := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	workers := rt.config.Workers()

	var rowsDone atomic.Int64
	progressStep := int64(max(1, height/10))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for j := height - 1; j >= 0; j-- {
		j := j
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rt.renderRow(img, j)

			if done := rowsDone.Add(1); done%progressStep == 0 {
				rt.logger.Printf("Rendered %d/%d rows", done, height)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("while rendering: %w", err)
	}

	stats := RenderStats{
		TotalPixels:  width * height,
		TotalSamples: width * height * rt.config.SamplesPerPixel,
		Rows:         height,
		Workers:      workers,
		Duration:     time.Since(start),
	}
	return img, stats, nil
}

// renderRow fills image row height-1-j. Rows are disjoint so concurrent
// calls never write the same pixel.
func (rt *Raytracer) renderRow(img *image.RGBA, j int) {
	sampler := core.NewSeededSampler(rt.config.Seed + int64(j))
	y := rt.config.Height - 1 - j
	for i := 0; i < rt.config.Width; i++ {
		img.SetRGBA(i, y, ToRGBA(rt.PixelColor(i, j, sampler)))
	}
}

// ToRGBA converts linear radiance to an 8-bit pixel with gamma 2 correction.
// Channels are clamped to 0.999 before scaling so 1.0 maps to 255, not 256.
func ToRGBA(c core.Color) color.RGBA {
	c = c.Sqrt().Clamp(0, 0.999)
	return color.RGBA{
		R: uint8(256 * c.R()),
		G: uint8(256 * c.G()),
		B: uint8(256 * c.B()),
		A: 255,
	}
}
