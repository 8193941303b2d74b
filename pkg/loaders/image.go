package loaders

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"
)

// BytesPerPixel is the stride of ImageData.Pixels
const BytesPerPixel = 4

// ImageData holds a decoded image as tightly packed 8-bit RGBA rows,
// top row first.
type ImageData struct {
	Width  int
	Height int
	Pixels []uint8 // Row-major: Pixels[(y*Width+x)*4 : +4]
}

// At returns the RGBA bytes of pixel (x, y)
func (d *ImageData) At(x, y int) []uint8 {
	offset := (y*d.Width + x) * BytesPerPixel
	return d.Pixels[offset : offset+BytesPerPixel]
}

// LoadImage loads a PNG, JPEG or GIF image into an RGBA byte grid
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("while opening image file %q: %w", filename, err)
	}
	defer file.Close()

	// Decode image (auto-detects format from file header)
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("while decoding image %q: %w", filename, err)
	}

	return FromImage(img), nil
}

// FromImage converts any decoded image into an RGBA byte grid
func FromImage(img image.Image) *ImageData {
	bounds := img.Bounds()
	rgba, ok := img.(*image.NRGBA)
	if !ok || rgba.Rect.Min != (image.Point{}) || rgba.Stride != bounds.Dx()*BytesPerPixel {
		rgba = image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	}

	return &ImageData{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Pixels: rgba.Pix,
	}
}
