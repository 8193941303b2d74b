package material

import (
	"github.com/golang/glog"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
	"github.com/df07/go-nextweek-raytracer/pkg/loaders"
)

// MissingTextureColor is returned by an ImageTexture whose image failed to load
var MissingTextureColor = core.NewColor(0, 1, 1)

// ImageTexture provides color from a 2D image
type ImageTexture struct {
	Data *loaders.ImageData // nil when the image is unavailable
}

// NewImageTexture creates a new image texture from decoded data
func NewImageTexture(data *loaders.ImageData) *ImageTexture {
	if data != nil && (data.Width == 0 || data.Height == 0) {
		data = nil
	}
	return &ImageTexture{Data: data}
}

// NewImageTextureFromFile loads the image at path. A missing or corrupt file
// is logged and yields a texture that renders as MissingTextureColor.
func NewImageTextureFromFile(path string) *ImageTexture {
	data, err := loaders.LoadImage(path)
	if err != nil {
		glog.Warningf("Image texture unavailable, using fallback color: %v", err)
		return &ImageTexture{}
	}
	return NewImageTexture(data)
}

// Evaluate samples the texture at given UV coordinates using nearest-neighbor filtering
func (t *ImageTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Color {
	if t.Data == nil {
		return MissingTextureColor
	}

	// Clamp to [0,1] and flip V so that V=1 is the top image row
	u := max(0, min(1, uv.X))
	v := 1 - max(0, min(1, uv.Y))

	x := int(u * float64(t.Data.Width))
	y := int(v * float64(t.Data.Height))

	// Clamp integer mapping, u or v of exactly 1 lands one past the edge
	if x >= t.Data.Width {
		x = t.Data.Width - 1
	}
	if y >= t.Data.Height {
		y = t.Data.Height - 1
	}

	return core.ColorFromBytes(t.Data.At(x, y), 1.0/255.0)
}
