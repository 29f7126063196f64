package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/fransixpaohui/RayTracing/pkg/core"
)

// RGB is one quantized output pixel
type RGB struct {
	R, G, B byte
}

// Image is a finished render: Width × Height pixels, row-major from the top-left
type Image struct {
	Width  int
	Height int
	Pixels []RGB
}

// NewImage allocates a black image
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pixels: make([]RGB, width*height),
	}
}

// At returns the pixel at (x, y)
func (img *Image) At(x, y int) RGB {
	return img.Pixels[y*img.Width+x]
}

// Set stores the pixel at (x, y)
func (img *Image) Set(x, y int, c RGB) {
	img.Pixels[y*img.Width+x] = c
}

// intensity is the displayable range before quantization
var intensity = core.NewInterval(0.000, 0.999)

// ColorToRGB converts a linear color to display bytes: square-root gamma,
// clamp to [0, 0.999], then scale by 256. NaN channels become 0.
func ColorToRGB(c core.Vec3) RGB {
	return RGB{
		R: quantize(c.X),
		G: quantize(c.Y),
		B: quantize(c.Z),
	}
}

func quantize(linear float64) byte {
	if math.IsNaN(linear) {
		return 0
	}
	return byte(256 * intensity.Clamp(linearToGamma(linear)))
}

func linearToGamma(linear float64) float64 {
	if linear > 0 {
		return math.Sqrt(linear)
	}
	return 0
}

// WritePPM writes the image as an ASCII P3 PPM: header, then one "r g b" line per pixel
func (img *Image) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", img.Width, img.Height); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}
	for _, p := range img.Pixels {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", p.R, p.G, p.B); err != nil {
			return fmt.Errorf("failed to write PPM pixel: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush PPM output: %w", err)
	}
	return nil
}

// ToRGBA converts the image to an opaque image.RGBA
func (img *Image) ToRGBA() *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			p := img.At(x, y)
			rgba.SetRGBA(x, y, color.RGBA{R: p.R, G: p.G, B: p.B, A: 255})
		}
	}
	return rgba
}

// WritePNG encodes the image as PNG
func (img *Image) WritePNG(w io.Writer) error {
	if err := png.Encode(w, img.ToRGBA()); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}
