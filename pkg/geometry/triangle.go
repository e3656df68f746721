package geometry

import (
	stdmath "math"

	"github.com/raywerk/whitted/pkg/math"
)

// Triangle is a flat triangle defined by three points; its edge vectors and
// face normal are precomputed at construction.
type Triangle struct {
	baseShape
	P1, P2, P3 math.Tuple
	E1, E2     math.Tuple
	Normal     math.Tuple
}

// NewTriangle creates a triangle from three points, failing with a
// DegenerateVectorError when the points are collinear.
func NewTriangle(p1, p2, p3 math.Tuple) (*Triangle, error) {
	e1 := p2.Subtract(p1)
	e2 := p3.Subtract(p1)
	normal, err := e2.Cross(e1).Normalize()
	if err != nil {
		return nil, err
	}

	return &Triangle{
		baseShape: newBaseShape(),
		P1:        p1,
		P2:        p2,
		P3:        p3,
		E1:        e1,
		E2:        e2,
		Normal:    normal,
	}, nil
}

// LocalIntersect applies the Moller-Trumbore algorithm, rejecting rays
// parallel to the triangle plane and hits outside the edges.
func (tri *Triangle) LocalIntersect(ray math.Ray) []Intersection {
	t, _, _, ok := mollerTrumbore(ray, tri.P1, tri.E1, tri.E2)
	if !ok {
		return nil
	}
	return []Intersection{NewIntersection(t, tri)}
}

// LocalNormalAt is the precomputed face normal everywhere on the triangle.
func (tri *Triangle) LocalNormalAt(_ math.Tuple, _ Intersection) math.Tuple {
	return tri.Normal
}

// Bounds is the box containing the three vertices.
func (tri *Triangle) Bounds() Bounds {
	return EmptyBounds().Add(tri.P1).Add(tri.P2).Add(tri.P3)
}

// Includes reports identity for leaf shapes.
func (tri *Triangle) Includes(other Shape) bool {
	return Shape(tri) == other
}

// mollerTrumbore returns the ray parameter and barycentric coordinates of
// the hit on the triangle (p1, p1+e1, p1+e2), or ok=false on a miss.
func mollerTrumbore(ray math.Ray, p1, e1, e2 math.Tuple) (t, u, v float64, ok bool) {
	dirCrossE2 := ray.Direction.Cross(e2)
	determinant := e1.Dot(dirCrossE2)
	if stdmath.Abs(determinant) < math.Epsilon {
		return 0, 0, 0, false
	}

	f := 1.0 / determinant
	p1ToOrigin := ray.Origin.Subtract(p1)
	u = f * p1ToOrigin.Dot(dirCrossE2)
	if u < 0 || u > 1 {
		return 0, 0, 0, false
	}

	originCrossE1 := p1ToOrigin.Cross(e1)
	v = f * ray.Direction.Dot(originCrossE1)
	if v < 0 || u+v > 1 {
		return 0, 0, 0, false
	}

	t = f * e2.Dot(originCrossE1)
	return t, u, v, true
}
