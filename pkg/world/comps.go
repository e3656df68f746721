package world

import (
	"github.com/raywerk/whitted/pkg/geometry"
	"github.com/raywerk/whitted/pkg/math"
)

// Computations holds the derived geometry the shading equation needs for
// one hit. It is rebuilt per hit from the intersection record, never cached
// on the shape, so recursive rays that revisit a shape cannot observe stale
// values.
type Computations struct {
	T      float64
	Object geometry.Shape
	Point  math.Tuple
	// OverPoint is the hit point nudged along the normal by Epsilon, the
	// origin for shadow and reflection rays. Without the offset a
	// secondary ray re-intersects its own surface ("acne").
	OverPoint math.Tuple
	// UnderPoint is nudged the opposite way, the origin for refracted
	// rays.
	UnderPoint math.Tuple
	EyeV       math.Tuple
	NormalV    math.Tuple
	ReflectV   math.Tuple
	Inside     bool
	// N1 and N2 are the refractive indices of the media on the incoming
	// and outgoing side of the surface.
	N1, N2 float64
}

// PrepareComputations derives the shading geometry for a hit. The full
// intersection list (sorted by t) is needed to determine the refraction
// boundary; callers without refraction can pass just the hit.
func PrepareComputations(hit geometry.Intersection, ray math.Ray, xs geometry.Intersections) (Computations, error) {
	point := ray.Position(hit.T)
	eyeV := ray.Direction.Negate()

	normalV, err := geometry.NormalAt(hit.Object, point, hit)
	if err != nil {
		return Computations{}, err
	}

	inside := false
	if normalV.Dot(eyeV) < 0 {
		inside = true
		normalV = normalV.Negate()
	}

	offset := normalV.Multiply(math.Epsilon)
	n1, n2 := refractionBoundary(hit, xs)

	return Computations{
		T:          hit.T,
		Object:     hit.Object,
		Point:      point,
		OverPoint:  point.Add(offset),
		UnderPoint: point.Subtract(offset),
		EyeV:       eyeV,
		NormalV:    normalV,
		ReflectV:   ray.Direction.Reflect(normalV),
		Inside:     inside,
		N1:         n1,
		N2:         n2,
	}, nil
}

// refractionBoundary walks the sorted intersection list up to the hit,
// maintaining the stack of shapes the ray is currently inside, and returns
// the refractive indices on both sides of the hit surface.
func refractionBoundary(hit geometry.Intersection, xs geometry.Intersections) (n1, n2 float64) {
	n1, n2 = 1.0, 1.0

	var containers []geometry.Shape
	for _, x := range xs {
		if x == hit {
			if len(containers) == 0 {
				n1 = 1.0
			} else {
				n1 = containers[len(containers)-1].Material().RefractiveIndex
			}
		}

		if idx := indexOf(containers, x.Object); idx >= 0 {
			containers = append(containers[:idx], containers[idx+1:]...)
		} else {
			containers = append(containers, x.Object)
		}

		if x == hit {
			if len(containers) == 0 {
				n2 = 1.0
			} else {
				n2 = containers[len(containers)-1].Material().RefractiveIndex
			}
			break
		}
	}
	return n1, n2
}

func indexOf(shapes []geometry.Shape, s geometry.Shape) int {
	for i, candidate := range shapes {
		if candidate == s {
			return i
		}
	}
	return -1
}
