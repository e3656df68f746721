package scene

import (
	stdmath "math"

	"github.com/raywerk/whitted/pkg/geometry"
	"github.com/raywerk/whitted/pkg/lights"
	"github.com/raywerk/whitted/pkg/material"
	"github.com/raywerk/whitted/pkg/math"
	"github.com/raywerk/whitted/pkg/world"
)

// NewCSGScene builds the classic constructive solid geometry figure: a
// rounded cube with a cylindrical bore along each axis, grouped with a
// capped cone beside it on a checkered floor.
func NewCSGScene(width, height int, fov float64) (*Scene, error) {
	c := &composer{}

	floor := geometry.NewPlane()
	floorMat := material.Default()
	floorMat.Pattern = material.NewCheckerPattern(
		math.Color{R: 0.9, G: 0.9, B: 0.9},
		math.Color{R: 0.35, G: 0.35, B: 0.35},
	)
	floorMat.Specular = 0
	floor.SetMaterial(floorMat)

	bodyMat := material.Default()
	bodyMat.Color = math.Color{R: 0.75, G: 0.15, B: 0.15}
	bodyMat.Diffuse = 0.8
	bodyMat.Specular = 0.4
	bodyMat.Shininess = 60

	boreMat := material.Default()
	boreMat.Color = math.Color{R: 0.15, G: 0.15, B: 0.55}
	boreMat.Diffuse = 0.8
	boreMat.Specular = 0.4

	cube := geometry.NewCube()
	cube.SetMaterial(bodyMat)

	sphere := geometry.NewSphere()
	sphere.SetMaterial(bodyMat)
	c.transform(sphere, math.Scaling(1.35, 1.35, 1.35))

	rounded := geometry.NewCSG(geometry.IntersectOp, cube, sphere)

	boreX := boreCylinder(boreMat)
	c.transform(boreX, math.Scaling(0.6, 1, 0.6), math.RotationZ(stdmath.Pi/2))
	boreY := boreCylinder(boreMat)
	c.transform(boreY, math.Scaling(0.6, 1, 0.6))
	boreZ := boreCylinder(boreMat)
	c.transform(boreZ, math.Scaling(0.6, 1, 0.6), math.RotationX(stdmath.Pi/2))

	bores := geometry.NewCSG(geometry.UnionOp, boreX, geometry.NewCSG(geometry.UnionOp, boreY, boreZ))
	figure := geometry.NewCSG(geometry.DifferenceOp, rounded, bores)
	c.transform(figure,
		math.RotationY(stdmath.Pi/5),
		math.Translation(-0.8, 1, 0.6),
	)

	cone := geometry.NewCone()
	cone.Minimum = -1
	cone.Maximum = 0
	cone.Closed = true
	coneMat := material.Default()
	coneMat.Color = math.Color{R: 0.9, G: 0.7, B: 0.2}
	cone.SetMaterial(coneMat)
	c.transform(cone,
		math.Scaling(0.6, 1.2, 0.6),
		math.Translation(1.6, 1.2, -0.4),
	)

	figures := geometry.NewGroup()
	figures.AddChildren(figure, cone)

	camera := c.camera(width, height, fov,
		math.NewPoint(0, 2.5, -5.5), math.NewPoint(0, 0.8, 0))
	if c.err != nil {
		return nil, c.err
	}

	w := world.New(world.DefaultConfig())
	w.AddShapes(floor, figures)
	w.AddLights(lights.NewPointLight(math.NewPoint(-9, 10, -9), math.White))
	return &Scene{World: w, Camera: camera}, nil
}

func boreCylinder(m material.Material) *geometry.Cylinder {
	cyl := geometry.NewCylinder()
	cyl.Minimum = -2
	cyl.Maximum = 2
	cyl.Closed = true
	cyl.SetMaterial(m)
	return cyl
}
