package geometry

import (
	stdmath "math"

	"github.com/raywerk/whitted/pkg/math"
)

// Plane is the infinite xz plane through the local origin.
type Plane struct {
	baseShape
}

// NewPlane creates an xz plane with the default material.
func NewPlane() *Plane {
	return &Plane{baseShape: newBaseShape()}
}

// LocalIntersect finds where the ray crosses y=0. A ray parallel to the
// plane (or coplanar with it) yields no intersection.
func (p *Plane) LocalIntersect(ray math.Ray) []Intersection {
	if stdmath.Abs(ray.Direction.Y) < math.Epsilon {
		return nil
	}

	t := -ray.Origin.Y / ray.Direction.Y
	return []Intersection{NewIntersection(t, p)}
}

// LocalNormalAt is constant for a plane.
func (p *Plane) LocalNormalAt(_ math.Tuple, _ Intersection) math.Tuple {
	return math.NewVector(0, 1, 0)
}

// Bounds is infinite in x and z and flat in y.
func (p *Plane) Bounds() Bounds {
	inf := stdmath.Inf(1)
	return NewBounds(math.NewPoint(-inf, 0, -inf), math.NewPoint(inf, 0, inf))
}

// Includes reports identity for leaf shapes.
func (p *Plane) Includes(other Shape) bool {
	return Shape(p) == other
}
