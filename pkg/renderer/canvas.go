package renderer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/raywerk/whitted/pkg/math"
)

// Canvas is a width by height grid of colors, stored row-major. Pixel
// (0, 0) is the top left.
type Canvas struct {
	width  int
	height int
	pixels []math.Color
}

// NewCanvas creates a canvas with every pixel initialized to black.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]math.Color, width*height),
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// WritePixel stores a color at (x, y), failing if the coordinates fall
// outside the canvas.
func (c *Canvas) WritePixel(x, y int, col math.Color) error {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return fmt.Errorf("pixel (%d, %d) outside %dx%d canvas", x, y, c.width, c.height)
	}
	c.pixels[y*c.width+x] = col
	return nil
}

// PixelAt returns the color at (x, y), failing if the coordinates fall
// outside the canvas.
func (c *Canvas) PixelAt(x, y int) (math.Color, error) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return math.Color{}, fmt.Errorf("pixel (%d, %d) outside %dx%d canvas", x, y, c.width, c.height)
	}
	return c.pixels[y*c.width+x], nil
}

// ToImage converts the canvas to an 8-bit image. Component values are
// clamped to [0, 1]; shading can legitimately exceed 1 near bright lights.
func (c *Canvas) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			p := c.pixels[y*c.width+x]
			img.SetNRGBA(x, y, color.NRGBA{
				R: clampComponent(p.R),
				G: clampComponent(p.G),
				B: clampComponent(p.B),
				A: 255,
			})
		}
	}
	return img
}

func clampComponent(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
