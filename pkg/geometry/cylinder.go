package geometry

import (
	stdmath "math"

	"github.com/raywerk/whitted/pkg/math"
)

// Cylinder is the infinite unit-radius cylinder around the local y axis,
// optionally truncated to (Minimum, Maximum) and capped. The bounds are
// exclusive: an intersection exactly at a truncation plane is discarded.
type Cylinder struct {
	baseShape
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCylinder creates an infinite open cylinder with the default material.
func NewCylinder() *Cylinder {
	return &Cylinder{
		baseShape: newBaseShape(),
		Minimum:   stdmath.Inf(-1),
		Maximum:   stdmath.Inf(1),
	}
}

// LocalIntersect solves the quadratic against the cylinder wall, keeps the
// roots inside the truncation range, and adds cap hits when closed.
func (cyl *Cylinder) LocalIntersect(ray math.Ray) []Intersection {
	var xs []Intersection

	a := ray.Direction.X*ray.Direction.X + ray.Direction.Z*ray.Direction.Z
	if stdmath.Abs(a) >= math.Epsilon {
		b := 2*ray.Origin.X*ray.Direction.X + 2*ray.Origin.Z*ray.Direction.Z
		c := ray.Origin.X*ray.Origin.X + ray.Origin.Z*ray.Origin.Z - 1

		discriminant := b*b - 4*a*c
		if discriminant < 0 {
			return nil
		}

		sqrtD := stdmath.Sqrt(discriminant)
		t0 := (-b - sqrtD) / (2 * a)
		t1 := (-b + sqrtD) / (2 * a)

		for _, t := range [2]float64{t0, t1} {
			y := ray.Origin.Y + t*ray.Direction.Y
			if cyl.Minimum < y && y < cyl.Maximum {
				xs = append(xs, NewIntersection(t, cyl))
			}
		}
	}

	return cyl.intersectCaps(ray, xs)
}

// intersectCaps adds intersections with the two end caps of a closed
// cylinder.
func (cyl *Cylinder) intersectCaps(ray math.Ray, xs []Intersection) []Intersection {
	if !cyl.Closed || stdmath.Abs(ray.Direction.Y) < math.Epsilon {
		return xs
	}

	for _, y := range [2]float64{cyl.Minimum, cyl.Maximum} {
		t := (y - ray.Origin.Y) / ray.Direction.Y
		if checkCap(ray, t, 1) {
			xs = append(xs, NewIntersection(t, cyl))
		}
	}
	return xs
}

// checkCap reports whether the ray at t lies within the cap radius.
func checkCap(ray math.Ray, t, radius float64) bool {
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	return x*x+z*z <= radius*radius
}

// LocalNormalAt distinguishes cap hits from wall hits by the point's
// distance from the y axis.
func (cyl *Cylinder) LocalNormalAt(point math.Tuple, _ Intersection) math.Tuple {
	dist := point.X*point.X + point.Z*point.Z

	switch {
	case dist < 1 && point.Y >= cyl.Maximum-math.Epsilon:
		return math.NewVector(0, 1, 0)
	case dist < 1 && point.Y <= cyl.Minimum+math.Epsilon:
		return math.NewVector(0, -1, 0)
	default:
		return math.NewVector(point.X, 0, point.Z)
	}
}

// Bounds reflects the truncation range; an untruncated cylinder is
// unbounded in y.
func (cyl *Cylinder) Bounds() Bounds {
	return NewBounds(
		math.NewPoint(-1, cyl.Minimum, -1),
		math.NewPoint(1, cyl.Maximum, 1),
	)
}

// Includes reports identity for leaf shapes.
func (cyl *Cylinder) Includes(other Shape) bool {
	return Shape(cyl) == other
}
