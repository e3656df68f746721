package geometry

import (
	stdmath "math"

	"github.com/raywerk/whitted/pkg/math"
)

// Bounds is an axis-aligned bounding box used to skip composite traversal
// when a ray cannot hit any child. The box is conservative: a ray that
// misses it definitely misses the contents, never the other way around.
type Bounds struct {
	Min, Max math.Tuple
}

// EmptyBounds returns a box that contains nothing; adding any point or
// merging any box grows it.
func EmptyBounds() Bounds {
	inf := stdmath.Inf(1)
	return Bounds{
		Min: math.NewPoint(inf, inf, inf),
		Max: math.NewPoint(-inf, -inf, -inf),
	}
}

// UnboundedBounds returns a box containing every point; its slab test
// never rejects a ray.
func UnboundedBounds() Bounds {
	inf := stdmath.Inf(1)
	return Bounds{
		Min: math.NewPoint(-inf, -inf, -inf),
		Max: math.NewPoint(inf, inf, inf),
	}
}

// NewBounds returns a box spanning the two corner points.
func NewBounds(min, max math.Tuple) Bounds {
	return Bounds{Min: min, Max: max}
}

// IsEmpty reports whether the box contains no points.
func (b Bounds) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// IsFinite reports whether every extent of the box is a real number.
func (b Bounds) IsFinite() bool {
	for _, v := range [6]float64{b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z} {
		if stdmath.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Add grows the box to contain the given point.
func (b Bounds) Add(p math.Tuple) Bounds {
	return Bounds{
		Min: math.NewPoint(stdmath.Min(b.Min.X, p.X), stdmath.Min(b.Min.Y, p.Y), stdmath.Min(b.Min.Z, p.Z)),
		Max: math.NewPoint(stdmath.Max(b.Max.X, p.X), stdmath.Max(b.Max.Y, p.Y), stdmath.Max(b.Max.Z, p.Z)),
	}
}

// Merge grows the box to contain another box.
func (b Bounds) Merge(other Bounds) Bounds {
	if other.IsEmpty() {
		return b
	}
	return b.Add(other.Min).Add(other.Max)
}

// Transform returns the axis-aligned box containing all eight transformed
// corners of this box. An empty box stays empty. A box with any infinite
// extent has no corners a matrix can map (0 times infinity is NaN), so it
// transforms to the unbounded box and is never culled.
func (b Bounds) Transform(m math.Matrix) Bounds {
	if b.IsEmpty() {
		return b
	}
	if !b.IsFinite() {
		return UnboundedBounds()
	}

	corners := [8]math.Tuple{
		math.NewPoint(b.Min.X, b.Min.Y, b.Min.Z),
		math.NewPoint(b.Min.X, b.Min.Y, b.Max.Z),
		math.NewPoint(b.Min.X, b.Max.Y, b.Min.Z),
		math.NewPoint(b.Min.X, b.Max.Y, b.Max.Z),
		math.NewPoint(b.Max.X, b.Min.Y, b.Min.Z),
		math.NewPoint(b.Max.X, b.Min.Y, b.Max.Z),
		math.NewPoint(b.Max.X, b.Max.Y, b.Min.Z),
		math.NewPoint(b.Max.X, b.Max.Y, b.Max.Z),
	}

	result := EmptyBounds()
	for _, corner := range corners {
		result = result.Add(m.MultiplyTuple(corner))
	}
	return result
}

// IntersectsRay reports whether a ray passes through the box, using the
// same slab test a cube uses for its exact intersection.
func (b Bounds) IntersectsRay(ray math.Ray) bool {
	xtMin, xtMax := checkAxisBounds(ray.Origin.X, ray.Direction.X, b.Min.X, b.Max.X)
	ytMin, ytMax := checkAxisBounds(ray.Origin.Y, ray.Direction.Y, b.Min.Y, b.Max.Y)
	ztMin, ztMax := checkAxisBounds(ray.Origin.Z, ray.Direction.Z, b.Min.Z, b.Max.Z)

	tMin := stdmath.Max(xtMin, stdmath.Max(ytMin, ztMin))
	tMax := stdmath.Min(xtMax, stdmath.Min(ytMax, ztMax))
	return tMin <= tMax
}

// checkAxisBounds returns the parametric interval in which the ray is
// between the two planes perpendicular to one axis.
func checkAxisBounds(origin, direction, min, max float64) (float64, float64) {
	tMinNumerator := min - origin
	tMaxNumerator := max - origin

	var tMin, tMax float64
	if stdmath.Abs(direction) >= math.Epsilon {
		tMin = tMinNumerator / direction
		tMax = tMaxNumerator / direction
	} else {
		tMin = tMinNumerator * stdmath.Inf(1)
		tMax = tMaxNumerator * stdmath.Inf(1)
	}

	if tMin > tMax {
		tMin, tMax = tMax, tMin
	}
	return tMin, tMax
}
