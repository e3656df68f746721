package geometry

import (
	"github.com/raywerk/whitted/pkg/math"
)

// SmoothTriangle is a triangle with per-vertex normals. Intersections record
// barycentric u/v so the shading normal can be interpolated, hiding the
// facets of a triangulated surface.
type SmoothTriangle struct {
	baseShape
	P1, P2, P3 math.Tuple
	N1, N2, N3 math.Tuple
	E1, E2     math.Tuple
}

// NewSmoothTriangle creates a triangle from three points and their vertex
// normals, failing with a DegenerateVectorError when the points are
// collinear.
func NewSmoothTriangle(p1, p2, p3, n1, n2, n3 math.Tuple) (*SmoothTriangle, error) {
	e1 := p2.Subtract(p1)
	e2 := p3.Subtract(p1)
	// The face normal is discarded, but a degenerate triangle is still
	// a construction error.
	if _, err := e2.Cross(e1).Normalize(); err != nil {
		return nil, err
	}

	return &SmoothTriangle{
		baseShape: newBaseShape(),
		P1:        p1,
		P2:        p2,
		P3:        p3,
		N1:        n1,
		N2:        n2,
		N3:        n3,
		E1:        e1,
		E2:        e2,
	}, nil
}

// LocalIntersect runs Moller-Trumbore and keeps the barycentric coordinates
// on the intersection record.
func (tri *SmoothTriangle) LocalIntersect(ray math.Ray) []Intersection {
	t, u, v, ok := mollerTrumbore(ray, tri.P1, tri.E1, tri.E2)
	if !ok {
		return nil
	}
	return []Intersection{NewIntersectionUV(t, tri, u, v)}
}

// LocalNormalAt interpolates the vertex normals with the hit's barycentric
// weights.
func (tri *SmoothTriangle) LocalNormalAt(_ math.Tuple, hit Intersection) math.Tuple {
	return tri.N2.Multiply(hit.U).
		Add(tri.N3.Multiply(hit.V)).
		Add(tri.N1.Multiply(1 - hit.U - hit.V))
}

// Bounds is the box containing the three vertices.
func (tri *SmoothTriangle) Bounds() Bounds {
	return EmptyBounds().Add(tri.P1).Add(tri.P2).Add(tri.P3)
}

// Includes reports identity for leaf shapes.
func (tri *SmoothTriangle) Includes(other Shape) bool {
	return Shape(tri) == other
}
