package renderer

import (
	"fmt"
	"image"
	"time"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels  int           // Total number of pixels rendered
	TotalSamples int           // Total number of camera rays traced
	Rows         int           // Number of row tasks
	Workers      int           // Parallel workers used
	Duration     time.Duration // Wall-clock render time
}

// SamplesPerSecond returns camera rays traced per second
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Duration.Seconds()
}

func (s RenderStats) String() string {
	return fmt.Sprintf("%d pixels, %d samples, %d rows on %d workers in %v (%.0f samples/s)",
		s.TotalPixels, s.TotalSamples, s.Rows, s.Workers, s.Duration.Round(time.Millisecond), s.SamplesPerSecond())
}

// CalculateAverageLuminance returns the mean luminance of an image in [0, 1]
func CalculateAverageLuminance(img *image.RGBA) float64 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			offset := img.PixOffset(x, y)
			total += core.ColorFromBytes(img.Pix[offset:offset+4], 1.0/255.0).Luminance()
		}
	}
	return total / float64(pixels)
}
