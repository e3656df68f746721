package geometry

import "sort"

// Intersection records where a ray meets a shape: the scalar distance t
// along the ray and the shape hit. U and V carry barycentric coordinates
// for smooth triangles and are zero elsewhere. Derived geometry (hit point,
// normal) is recomputed by the shading layer rather than cached here, so
// reflected rays that revisit a shape never see stale values.
type Intersection struct {
	T      float64
	Object Shape
	U, V   float64
}

// NewIntersection creates an intersection at distance t on the given shape.
func NewIntersection(t float64, object Shape) Intersection {
	return Intersection{T: t, Object: object}
}

// NewIntersectionUV creates an intersection carrying barycentric u/v, used
// by smooth triangles for normal interpolation.
func NewIntersectionUV(t float64, object Shape, u, v float64) Intersection {
	return Intersection{T: t, Object: object, U: u, V: v}
}

// Intersections is an ordered list of intersections along one ray.
type Intersections []Intersection

// Sort orders the intersections by ascending t.
func (xs Intersections) Sort() {
	sort.Slice(xs, func(i, j int) bool { return xs[i].T < xs[j].T })
}

// Hit returns the intersection with the smallest non-negative t, or false
// when the list is empty or entirely behind the ray origin.
func (xs Intersections) Hit() (Intersection, bool) {
	var best Intersection
	found := false
	for _, x := range xs {
		if x.T < 0 {
			continue
		}
		if !found || x.T < best.T {
			best = x
			found = true
		}
	}
	return best, found
}
