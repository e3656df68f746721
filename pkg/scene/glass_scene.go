package scene

import (
	"github.com/raywerk/whitted/pkg/geometry"
	"github.com/raywerk/whitted/pkg/lights"
	"github.com/raywerk/whitted/pkg/material"
	"github.com/raywerk/whitted/pkg/math"
	"github.com/raywerk/whitted/pkg/world"
)

// NewGlassScene builds a hollow glass sphere and a mirror sphere over a
// ring-patterned floor, a stress test for reflection and refraction depth.
func NewGlassScene(width, height int, fov float64) (*Scene, error) {
	c := &composer{}

	floor := geometry.NewPlane()
	floorMat := material.Default()
	floorMat.Pattern = material.NewRingPattern(
		math.Color{R: 0.75, G: 0.75, B: 0.8},
		math.Color{R: 0.3, G: 0.3, B: 0.4},
	)
	floorMat.Specular = 0
	floorMat.Reflective = 0.1
	floor.SetMaterial(floorMat)

	// Outer glass shell with an air pocket inside. The inner sphere's
	// refractive index matches vacuum, so rays bend back at its surface.
	outer := geometry.NewGlassSphere()
	outerMat := *outer.Material()
	outerMat.Color = math.Color{R: 0.05, G: 0.05, B: 0.05}
	outerMat.Diffuse = 0.1
	outerMat.Specular = 1
	outerMat.Shininess = 300
	outerMat.Reflective = 0.9
	outer.SetMaterial(outerMat)
	c.transform(outer, math.Translation(-0.7, 1, 0.3))

	inner := geometry.NewGlassSphere()
	innerMat := *inner.Material()
	innerMat.Color = math.Color{R: 0.05, G: 0.05, B: 0.05}
	innerMat.Diffuse = 0.1
	innerMat.Specular = 1
	innerMat.Shininess = 300
	innerMat.Reflective = 0.9
	innerMat.RefractiveIndex = material.RefractiveIndexVacuum
	inner.SetMaterial(innerMat)
	c.transform(inner,
		math.Scaling(0.5, 0.5, 0.5),
		math.Translation(-0.7, 1, 0.3),
	)

	mirror := geometry.NewSphere()
	mirrorMat := material.Default()
	mirrorMat.Color = math.Color{R: 0.1, G: 0.1, B: 0.1}
	mirrorMat.Diffuse = 0.3
	mirrorMat.Specular = 1
	mirrorMat.Shininess = 400
	mirrorMat.Reflective = 0.9
	mirror.SetMaterial(mirrorMat)
	c.transform(mirror,
		math.Scaling(0.7, 0.7, 0.7),
		math.Translation(1.3, 0.7, 1.2),
	)

	camera := c.camera(width, height, fov,
		math.NewPoint(0, 2, -4.5), math.NewPoint(0, 0.8, 0))
	if c.err != nil {
		return nil, c.err
	}

	cfg := world.DefaultConfig()
	cfg.MaxDepth = 7
	w := world.New(cfg)
	w.AddShapes(floor, outer, inner, mirror)
	w.AddLights(
		lights.NewPointLight(math.NewPoint(-8, 9, -9), math.Color{R: 0.9, G: 0.9, B: 0.9}),
		lights.NewPointLight(math.NewPoint(7, 4, -6), math.Color{R: 0.2, G: 0.2, B: 0.25}),
	)
	return &Scene{World: w, Camera: camera}, nil
}
