// Package output persists rendered images.
package output

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Save writes img to path, choosing the format from the file extension:
// .ppm writes plain-text PPM, anything else writes PNG
func Save(path string, img image.Image) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("while creating output file %q: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("while closing output file %q: %w", path, closeErr)
		}
	}()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".ppm":
		err = WritePPM(file, img)
	default:
		err = WritePNG(file, img)
	}
	if err != nil {
		return fmt.Errorf("while writing %q: %w", path, err)
	}
	return nil
}

// WritePNG encodes img as PNG
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// WritePPM encodes img as a plain-text (P3) PPM with maximum value 255.
// Alpha is dropped.
func WritePPM(w io.Writer, img image.Image) error {
	bw := bufio.NewWriter(w)
	bounds := img.Bounds()

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", bounds.Dx(), bounds.Dy()); err != nil {
		return err
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", r>>8, g>>8, b>>8); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
