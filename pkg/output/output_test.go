package output

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})
	img.SetRGBA(1, 0, color.RGBA{0, 255, 0, 255})
	img.SetRGBA(0, 1, color.RGBA{0, 0, 255, 255})
	img.SetRGBA(1, 1, color.RGBA{181, 214, 255, 255})
	return img
}

func TestWritePPM(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePPM(&buf, testImage()); err != nil {
		t.Fatalf("WritePPM failed: %v", err)
	}

	expected := "P3\n2 2\n255\n255 0 0\n0 255 0\n0 0 255\n181 214 255\n"
	if diff := cmp.Diff(expected, buf.String()); diff != "" {
		t.Errorf("unexpected PPM (-want +got):\n%s", diff)
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()

	t.Run("png", func(t *testing.T) {
		path := filepath.Join(dir, "out.png")
		if err := Save(path, testImage()); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		f, err := os.Open(path)
		if err != nil {
			t.Fatal(err)
		}
		defer f.Close()
		decoded, err := png.Decode(f)
		if err != nil {
			t.Fatalf("Expected valid PNG: %v", err)
		}
		r, g, b, _ := decoded.At(1, 1).RGBA()
		if r>>8 != 181 || g>>8 != 214 || b>>8 != 255 {
			t.Errorf("Unexpected pixel %d %d %d", r>>8, g>>8, b>>8)
		}
	})

	t.Run("ppm", func(t *testing.T) {
		path := filepath.Join(dir, "out.PPM")
		if err := Save(path, testImage()); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.HasPrefix(data, []byte("P3\n2 2\n255\n")) {
			t.Errorf("Expected PPM header, got %q", data[:min(len(data), 16)])
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		if err := Save(filepath.Join(dir, "no", "such", "out.png"), testImage()); err == nil {
			t.Error("Expected error for missing directory")
		}
	})
}
