package geometry

import (
	stdmath "math"

	"github.com/raywerk/whitted/pkg/material"
	"github.com/raywerk/whitted/pkg/math"
)

// Sphere is the unit sphere centered on the local origin. Position and size
// come from the shape transform.
type Sphere struct {
	baseShape
}

// NewSphere creates a unit sphere with the default material.
func NewSphere() *Sphere {
	return &Sphere{baseShape: newBaseShape()}
}

// NewGlassSphere creates a fully transparent sphere with the refractive
// index of glass, a common fixture for refraction scenes and tests.
func NewGlassSphere() *Sphere {
	s := NewSphere()
	m := material.Default()
	m.Transparency = 1.0
	m.RefractiveIndex = material.RefractiveIndexGlass
	s.SetMaterial(m)
	return s
}

// LocalIntersect solves the quadratic for a ray against the unit sphere.
func (s *Sphere) LocalIntersect(ray math.Ray) []Intersection {
	// Vector from the sphere's center to the ray origin.
	sphereToRay := ray.Origin.Subtract(math.NewPoint(0, 0, 0))

	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := stdmath.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	return []Intersection{
		NewIntersection(t1, s),
		NewIntersection(t2, s),
	}
}

// LocalNormalAt returns the vector from the center to the surface point.
func (s *Sphere) LocalNormalAt(point math.Tuple, _ Intersection) math.Tuple {
	return point.Subtract(math.NewPoint(0, 0, 0))
}

// Bounds returns the unit cube enclosing the sphere.
func (s *Sphere) Bounds() Bounds {
	return NewBounds(math.NewPoint(-1, -1, -1), math.NewPoint(1, 1, 1))
}

// Includes reports identity for leaf shapes.
func (s *Sphere) Includes(other Shape) bool {
	return Shape(s) == other
}
