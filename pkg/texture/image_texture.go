package texture

import (
	"github.com/fransixpaohui/RayTracing/pkg/core"
	"github.com/fransixpaohui/RayTracing/pkg/loaders"
)

// ImageSource is the narrow view of a decoded image that ImageTexture needs
type ImageSource interface {
	Width() int
	Height() int
	Pixel(x, y int) [3]byte
}

// debugCyan marks surfaces whose image has no data
var debugCyan = core.NewVec3(0, 1, 1)

// ImageTexture provides color from a 2D image
type ImageTexture struct {
	image ImageSource
}

// NewImageTexture creates a texture over an already loaded image
func NewImageTexture(image ImageSource) *ImageTexture {
	return &ImageTexture{image: image}
}

// LoadImageTexture searches for filename and wraps the result. A missing file
// is logged by the loader and renders as debug cyan.
func LoadImageTexture(filename string, logger core.Logger) *ImageTexture {
	return NewImageTexture(loaders.FindImage(filename, logger))
}

// Value samples the texture at (u, v) using nearest-neighbor filtering
func (t *ImageTexture) Value(u, v float64, p core.Vec3) core.Vec3 {
	// With no texture data, return solid cyan as a debugging aid
	if t.image == nil || t.image.Height() <= 0 {
		return debugCyan
	}

	unit := core.NewInterval(0, 1)
	u = unit.Clamp(u)
	v = 1.0 - unit.Clamp(v) // Flip V to image coordinates

	i := int(u * float64(t.image.Width()))
	j := int(v * float64(t.image.Height()))
	pixel := t.image.Pixel(i, j)

	const colorScale = 1.0 / 255.0
	return core.NewVec3(
		colorScale*float64(pixel[0]),
		colorScale*float64(pixel[1]),
		colorScale*float64(pixel[2]),
	)
}
