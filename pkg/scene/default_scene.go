package scene

import (
	stdmath "math"

	"github.com/raywerk/whitted/pkg/geometry"
	"github.com/raywerk/whitted/pkg/lights"
	"github.com/raywerk/whitted/pkg/material"
	"github.com/raywerk/whitted/pkg/math"
	"github.com/raywerk/whitted/pkg/world"
)

// NewDefaultScene builds three spheres of varying finish on a checkered
// floor, lit from the upper left.
func NewDefaultScene(width, height int, fov float64) (*Scene, error) {
	c := &composer{}

	floor := geometry.NewPlane()
	floorMat := material.Default()
	floorMat.Pattern = material.NewCheckerPattern(
		math.Color{R: 0.85, G: 0.85, B: 0.85},
		math.Color{R: 0.25, G: 0.25, B: 0.25},
	)
	floorMat.Specular = 0
	floorMat.Reflective = 0.08
	floor.SetMaterial(floorMat)

	backWall := geometry.NewPlane()
	wallMat := material.Default()
	wallMat.Color = math.Color{R: 0.9, G: 0.9, B: 0.95}
	wallMat.Specular = 0
	backWall.SetMaterial(wallMat)
	c.transform(backWall,
		math.RotationX(stdmath.Pi/2),
		math.Translation(0, 0, 6),
	)

	middle := geometry.NewSphere()
	middleMat := material.Default()
	middleMat.Color = math.Color{R: 0.1, G: 0.6, B: 0.35}
	middleMat.Diffuse = 0.7
	middleMat.Specular = 0.3
	middleMat.Reflective = 0.15
	middle.SetMaterial(middleMat)
	c.transform(middle, math.Translation(-0.5, 1, 0.5))

	right := geometry.NewSphere()
	rightMat := material.Default()
	rightMat.Pattern = material.NewStripePattern(
		math.Color{R: 0.8, G: 0.2, B: 0.2},
		math.Color{R: 0.95, G: 0.8, B: 0.8},
	)
	if err := rightMat.Pattern.SetTransform(math.Compose(
		math.Scaling(0.25, 0.25, 0.25),
		math.RotationZ(stdmath.Pi/4),
	)); err != nil {
		return nil, err
	}
	rightMat.Diffuse = 0.7
	rightMat.Specular = 0.3
	right.SetMaterial(rightMat)
	c.transform(right,
		math.Scaling(0.5, 0.5, 0.5),
		math.Translation(1.5, 0.5, -0.5),
	)

	left := geometry.NewSphere()
	leftMat := material.Default()
	leftMat.Pattern = material.NewGradientPattern(
		math.Color{R: 1, G: 0.8, B: 0.1},
		math.Color{R: 0.9, G: 0.3, B: 0.1},
	)
	leftMat.Diffuse = 0.7
	leftMat.Specular = 0.3
	left.SetMaterial(leftMat)
	c.transform(left,
		math.Scaling(0.33, 0.33, 0.33),
		math.Translation(-1.5, 0.33, -0.75),
	)

	camera := c.camera(width, height, fov,
		math.NewPoint(0, 1.5, -5), math.NewPoint(0, 1, 0))
	if c.err != nil {
		return nil, c.err
	}

	w := world.New(world.DefaultConfig())
	w.AddShapes(floor, backWall, middle, right, left)
	w.AddLights(lights.NewPointLight(math.NewPoint(-10, 10, -10), math.White))
	return &Scene{World: w, Camera: camera}, nil
}
