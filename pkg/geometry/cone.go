package geometry

import (
	stdmath "math"

	"github.com/raywerk/whitted/pkg/math"
)

// Cone is the double-napped unit cone around the local y axis: at height y
// its radius is |y|. Like Cylinder it can be truncated and capped.
type Cone struct {
	baseShape
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCone creates an infinite open double cone with the default material.
func NewCone() *Cone {
	return &Cone{
		baseShape: newBaseShape(),
		Minimum:   stdmath.Inf(-1),
		Maximum:   stdmath.Inf(1),
	}
}

// LocalIntersect solves the cone quadratic. When the leading coefficient
// vanishes the ray is parallel to one of the cone's halves and crosses the
// other at a single point.
func (cone *Cone) LocalIntersect(ray math.Ray) []Intersection {
	var xs []Intersection

	d := ray.Direction
	o := ray.Origin
	a := d.X*d.X - d.Y*d.Y + d.Z*d.Z
	b := 2*o.X*d.X - 2*o.Y*d.Y + 2*o.Z*d.Z
	c := o.X*o.X - o.Y*o.Y + o.Z*o.Z

	switch {
	case stdmath.Abs(a) < math.Epsilon && stdmath.Abs(b) < math.Epsilon:
		// Ray misses both halves entirely; only caps remain possible.
	case stdmath.Abs(a) < math.Epsilon:
		t := -c / (2 * b)
		y := o.Y + t*d.Y
		if cone.Minimum < y && y < cone.Maximum {
			xs = append(xs, NewIntersection(t, cone))
		}
	default:
		discriminant := b*b - 4*a*c
		if discriminant < 0 {
			break
		}
		sqrtD := stdmath.Sqrt(discriminant)
		t0 := (-b - sqrtD) / (2 * a)
		t1 := (-b + sqrtD) / (2 * a)

		for _, t := range [2]float64{t0, t1} {
			y := o.Y + t*d.Y
			if cone.Minimum < y && y < cone.Maximum {
				xs = append(xs, NewIntersection(t, cone))
			}
		}
	}

	return cone.intersectCaps(ray, xs)
}

// intersectCaps adds cap hits; a cone cap's radius equals |y| at its plane.
func (cone *Cone) intersectCaps(ray math.Ray, xs []Intersection) []Intersection {
	if !cone.Closed || stdmath.Abs(ray.Direction.Y) < math.Epsilon {
		return xs
	}

	for _, y := range [2]float64{cone.Minimum, cone.Maximum} {
		t := (y - ray.Origin.Y) / ray.Direction.Y
		if checkCap(ray, t, stdmath.Abs(y)) {
			xs = append(xs, NewIntersection(t, cone))
		}
	}
	return xs
}

// LocalNormalAt distinguishes cap hits from wall hits; on the wall the y
// component of the normal is the point's radial distance, negated above the
// apex.
func (cone *Cone) LocalNormalAt(point math.Tuple, _ Intersection) math.Tuple {
	dist := point.X*point.X + point.Z*point.Z

	switch {
	case dist < cone.Maximum*cone.Maximum && point.Y >= cone.Maximum-math.Epsilon:
		return math.NewVector(0, 1, 0)
	case dist < cone.Minimum*cone.Minimum && point.Y <= cone.Minimum+math.Epsilon:
		return math.NewVector(0, -1, 0)
	default:
		y := stdmath.Sqrt(dist)
		if point.Y > 0 {
			y = -y
		}
		return math.NewVector(point.X, y, point.Z)
	}
}

// Bounds spans the truncated range; radius follows the wider end.
func (cone *Cone) Bounds() Bounds {
	limit := stdmath.Max(stdmath.Abs(cone.Minimum), stdmath.Abs(cone.Maximum))
	return NewBounds(
		math.NewPoint(-limit, cone.Minimum, -limit),
		math.NewPoint(limit, cone.Maximum, limit),
	)
}

// Includes reports identity for leaf shapes.
func (cone *Cone) Includes(other Shape) bool {
	return Shape(cone) == other
}
