package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"math"
	"os"
	"path/filepath"

	"github.com/fransixpaohui/RayTracing/pkg/core"
)

// ImageDirEnv names the environment variable that overrides the image search path
const ImageDirEnv = "RTW_IMAGES"

const bytesPerPixel = 3

// decodeGamma converts display-encoded 8/16-bit samples to linear intensity
const decodeGamma = 2.2

// magenta is returned for every pixel of an image that failed to load
var magenta = [3]byte{255, 0, 255}

// ImageData holds linear 8-bit RGB pixel data, row-major from the top-left
type ImageData struct {
	width  int
	height int
	data   []byte
}

// Width returns the image width in pixels, or 0 if nothing was loaded
func (img *ImageData) Width() int {
	if img == nil || img.data == nil {
		return 0
	}
	return img.width
}

// Height returns the image height in pixels, or 0 if nothing was loaded
func (img *ImageData) Height() int {
	if img == nil || img.data == nil {
		return 0
	}
	return img.height
}

// Pixel returns the RGB bytes at (x, y); coordinates are clamped to the image.
// An empty image yields magenta.
func (img *ImageData) Pixel(x, y int) [3]byte {
	if img == nil || img.data == nil {
		return magenta
	}
	x = clampIndex(x, img.width)
	y = clampIndex(y, img.height)

	offset := y*img.width*bytesPerPixel + x*bytesPerPixel
	return [3]byte{img.data[offset], img.data[offset+1], img.data[offset+2]}
}

// LoadImage loads a PNG or JPEG image and converts it to linear RGB bytes
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Decode image (auto-detects PNG/JPEG from file header)
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	data := make([]byte, width*height*bytesPerPixel)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			offset := (y*width + x) * bytesPerPixel
			// RGBA returns uint32 in [0, 65535]
			data[offset] = floatToByte(toLinear(r))
			data[offset+1] = floatToByte(toLinear(g))
			data[offset+2] = floatToByte(toLinear(b))
		}
	}

	return &ImageData{width: width, height: height, data: data}, nil
}

// SearchPaths lists the candidate locations for filename in lookup order:
// the RTW_IMAGES directory when set, the name itself, then images/ in the
// working directory and up to six parent directories.
func SearchPaths(filename string) []string {
	var paths []string
	if dir := os.Getenv(ImageDirEnv); dir != "" {
		paths = append(paths, filepath.Join(dir, filename))
	}
	paths = append(paths, filename)

	prefix := ""
	for level := 0; level <= 6; level++ {
		paths = append(paths, filepath.Join(prefix+"images", filename))
		prefix += "../"
	}
	return paths
}

// FindImage tries every search path for filename. A missing or undecodable
// image is logged and yields an empty ImageData rather than an error, so
// renders degrade to a sentinel color instead of aborting.
func FindImage(filename string, logger core.Logger) *ImageData {
	for _, path := range SearchPaths(filename) {
		if img, err := LoadImage(path); err == nil {
			return img
		}
	}

	logger.Printf("ERROR: Could not load image file '%s'.\n", filename)
	return &ImageData{}
}

func toLinear(c uint32) float64 {
	return math.Pow(float64(c)/65535.0, decodeGamma)
}

func floatToByte(value float64) byte {
	if value <= 0.0 {
		return 0
	}
	if value >= 1.0 {
		return 255
	}
	return byte(256.0 * value)
}

func clampIndex(x, size int) int {
	if x < 0 {
		return 0
	}
	if x < size {
		return x
	}
	return size - 1
}
