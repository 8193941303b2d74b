package core

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Color is a linear RGB radiance or reflectance triple.
type Color r3.Vec

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{X: r, Y: g, Z: b}
}

// RepeatColor returns a gray color with all channels set to v
func RepeatColor(v float64) Color {
	return Color{X: v, Y: v, Z: v}
}

// ColorFromBytes builds a color from the first three bytes of an RGBA pixel,
// multiplying each by scale.
func ColorFromBytes(pixel []uint8, scale float64) Color {
	return Color{
		X: float64(pixel[0]) * scale,
		Y: float64(pixel[1]) * scale,
		Z: float64(pixel[2]) * scale,
	}
}

// R returns the red channel
func (c Color) R() float64 { return c.X }

// G returns the green channel
func (c Color) G() float64 { return c.Y }

// B returns the blue channel
func (c Color) B() float64 { return c.Z }

// Add returns the sum of two colors
func (c Color) Add(other Color) Color {
	return Color(r3.Add(r3.Vec(c), r3.Vec(other)))
}

// Multiply returns the color scaled by a scalar
func (c Color) Multiply(scalar float64) Color {
	return Color(r3.Scale(scalar, r3.Vec(c)))
}

// MultiplyColor returns the component-wise product, used for attenuation
func (c Color) MultiplyColor(other Color) Color {
	return Color{X: c.X * other.X, Y: c.Y * other.Y, Z: c.Z * other.Z}
}

// Divide returns the color divided by a scalar
func (c Color) Divide(scalar float64) Color {
	return Color(r3.Scale(1/scalar, r3.Vec(c)))
}

// Sqrt applies gamma-2 correction per channel
func (c Color) Sqrt() Color {
	return Color{X: math.Sqrt(c.X), Y: math.Sqrt(c.Y), Z: math.Sqrt(c.Z)}
}

// Clamp returns a color with channels clamped to [minVal, maxVal].
// NaN channels clamp to minVal.
func (c Color) Clamp(minVal, maxVal float64) Color {
	return Color{
		X: clamp(c.X, minVal, maxVal),
		Y: clamp(c.Y, minVal, maxVal),
		Z: clamp(c.Z, minVal, maxVal),
	}
}

func clamp(x, minVal, maxVal float64) float64 {
	if !(x >= minVal) {
		return minVal
	}
	if x > maxVal {
		return maxVal
	}
	return x
}

// Luminance returns the perceptual luminance of the color
func (c Color) Luminance() float64 {
	return 0.299*c.X + 0.587*c.Y + 0.114*c.Z
}

// IsBlack reports whether every channel is exactly zero
func (c Color) IsBlack() bool {
	return c.X == 0 && c.Y == 0 && c.Z == 0
}
