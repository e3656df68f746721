// Package renderer maps camera pixels to world rays and drives the render
// loop that fills a canvas with traced colors.
package renderer

import (
	stdmath "math"

	"github.com/raywerk/whitted/pkg/math"
)

// Camera generates rays for rendering. The canvas is one unit in front of
// the camera; the field of view fixes the canvas extent, and the aspect
// ratio of hsize and vsize splits it between the two axes.
type Camera struct {
	hsize      int
	vsize      int
	fov        float64
	transform  math.Matrix
	inverse    math.Matrix
	halfWidth  float64
	halfHeight float64
	pixelSize  float64
}

// NewCamera creates a camera for a hsize by vsize pixel canvas with the
// given field of view in radians, looking down the negative z axis.
func NewCamera(hsize, vsize int, fov float64) *Camera {
	halfView := stdmath.Tan(fov / 2)
	aspect := float64(hsize) / float64(vsize)

	halfWidth := halfView
	halfHeight := halfView
	if aspect >= 1 {
		halfHeight = halfView / aspect
	} else {
		halfWidth = halfView * aspect
	}

	return &Camera{
		hsize:      hsize,
		vsize:      vsize,
		fov:        fov,
		transform:  math.Identity(),
		inverse:    math.Identity(),
		halfWidth:  halfWidth,
		halfHeight: halfHeight,
		pixelSize:  halfWidth * 2 / float64(hsize),
	}
}

// HSize returns the canvas width in pixels.
func (c *Camera) HSize() int { return c.hsize }

// VSize returns the canvas height in pixels.
func (c *Camera) VSize() int { return c.vsize }

// FieldOfView returns the field of view in radians.
func (c *Camera) FieldOfView() float64 { return c.fov }

// PixelSize returns the world-space size of one square pixel.
func (c *Camera) PixelSize() float64 { return c.pixelSize }

// Transform returns the world-to-camera view transform.
func (c *Camera) Transform() math.Matrix { return c.transform }

// SetTransform installs a new view transform, failing with a
// SingularMatrixError if it cannot be inverted. On failure the previous
// transform is kept.
func (c *Camera) SetTransform(m math.Matrix) error {
	inverse, err := m.Inverse()
	if err != nil {
		return err
	}
	c.transform = m
	c.inverse = inverse
	return nil
}

// RayForPixel returns the world-space ray through the center of the given
// pixel. Pixel (0, 0) is the top left of the canvas.
func (c *Camera) RayForPixel(px, py int) (math.Ray, error) {
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	// Untransformed coordinates flip because the camera looks toward -z:
	// +x on the canvas is to the camera's left.
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverse.MultiplyTuple(math.NewPoint(worldX, worldY, -1))
	origin := c.inverse.MultiplyTuple(math.NewPoint(0, 0, 0))
	direction, err := pixel.Subtract(origin).Normalize()
	if err != nil {
		return math.Ray{}, err
	}
	return math.NewRay(origin, direction), nil
}
