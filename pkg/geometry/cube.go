package geometry

import (
	stdmath "math"

	"github.com/raywerk/whitted/pkg/math"
)

// Cube is the axis-aligned cube spanning -1..1 on every local axis.
type Cube struct {
	baseShape
}

// NewCube creates a unit cube with the default material.
func NewCube() *Cube {
	return &Cube{baseShape: newBaseShape()}
}

// LocalIntersect runs the slab test: intersect the ray with each pair of
// parallel faces and keep the overlap of the three intervals.
func (c *Cube) LocalIntersect(ray math.Ray) []Intersection {
	xtMin, xtMax := checkAxisBounds(ray.Origin.X, ray.Direction.X, -1, 1)
	ytMin, ytMax := checkAxisBounds(ray.Origin.Y, ray.Direction.Y, -1, 1)
	ztMin, ztMax := checkAxisBounds(ray.Origin.Z, ray.Direction.Z, -1, 1)

	tMin := stdmath.Max(xtMin, stdmath.Max(ytMin, ztMin))
	tMax := stdmath.Min(xtMax, stdmath.Min(ytMax, ztMax))
	if tMin > tMax {
		return nil
	}

	return []Intersection{
		NewIntersection(tMin, c),
		NewIntersection(tMax, c),
	}
}

// LocalNormalAt picks the face whose coordinate has the largest magnitude.
func (c *Cube) LocalNormalAt(point math.Tuple, _ Intersection) math.Tuple {
	absX := stdmath.Abs(point.X)
	absY := stdmath.Abs(point.Y)
	absZ := stdmath.Abs(point.Z)
	maxC := stdmath.Max(absX, stdmath.Max(absY, absZ))

	switch maxC {
	case absX:
		return math.NewVector(point.X, 0, 0)
	case absY:
		return math.NewVector(0, point.Y, 0)
	default:
		return math.NewVector(0, 0, point.Z)
	}
}

// Bounds is the cube itself.
func (c *Cube) Bounds() Bounds {
	return NewBounds(math.NewPoint(-1, -1, -1), math.NewPoint(1, 1, 1))
}

// Includes reports identity for leaf shapes.
func (c *Cube) Includes(other Shape) bool {
	return Shape(c) == other
}
