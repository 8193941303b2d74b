package renderer

import (
	"runtime"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	NumWorkers      int   // Number of parallel workers (0 = use CPU count)
	Seed            int64 // Base seed; row j renders with Seed+j
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           400,
		Height:          225, // 16:9
		SamplesPerPixel: 100,
		MaxDepth:        50,
		NumWorkers:      0,
		Seed:            42,
	}
}

// Merge returns c with every non-zero field of override applied on top
func (c SamplingConfig) Merge(override SamplingConfig) SamplingConfig {
	if override.Width > 0 {
		c.Width = override.Width
	}
	if override.Height > 0 {
		c.Height = override.Height
	}
	if override.SamplesPerPixel > 0 {
		c.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth > 0 {
		c.MaxDepth = override.MaxDepth
	}
	if override.NumWorkers > 0 {
		c.NumWorkers = override.NumWorkers
	}
	if override.Seed != 0 {
		c.Seed = override.Seed
	}
	return c
}

// Workers returns the effective number of parallel workers
func (c SamplingConfig) Workers() int {
	if c.NumWorkers > 0 {
		return c.NumWorkers
	}
	return runtime.NumCPU()
}

// AspectRatio returns width / height
func (c SamplingConfig) AspectRatio() float64 {
	return float64(c.Width) / float64(c.Height)
}

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	LookFrom      core.Vec3 // Camera position
	LookAt        core.Vec3 // Point the camera is looking at
	Up            core.Vec3 // View-up vector
	VFov          float64   // Vertical field of view in degrees
	AspectRatio   float64   // Width / height ratio
	Aperture      float64   // Lens diameter, 0 for a pinhole camera
	FocusDistance float64   // Distance to the plane in perfect focus
	OpenTime      float64   // Shutter open time
	CloseTime     float64   // Shutter close time
}

// DefaultCameraConfig returns the camera used by most scenes: looking from
// (13,2,3) at the origin, focused 10 units away, shutter open over [0, 1]
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20,
		AspectRatio:   16.0 / 9.0,
		Aperture:      0,
		FocusDistance: 10,
		OpenTime:      0,
		CloseTime:     1,
	}
}
