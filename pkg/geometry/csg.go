package geometry

import (
	"github.com/raywerk/whitted/pkg/math"
)

// Operation selects how a CSG node combines its two children.
type Operation int

const (
	// UnionOp keeps surfaces on the outside of both children.
	UnionOp Operation = iota
	// IntersectOp keeps surfaces where the children overlap.
	IntersectOp
	// DifferenceOp keeps the left child's surface outside the right, and
	// the right child's surface inside the left, carving a cavity.
	DifferenceOp
)

func (op Operation) String() string {
	switch op {
	case UnionOp:
		return "union"
	case IntersectOp:
		return "intersect"
	case DifferenceOp:
		return "difference"
	default:
		return "unknown"
	}
}

// CSG combines two child shapes with a boolean operation. Both children are
// exclusively owned by the node and carry back-references to it for
// coordinate-space composition.
type CSG struct {
	baseShape
	Operation   Operation
	Left        Shape
	Right       Shape
	bounds      Bounds
	boundsValid bool
}

// NewCSG creates a boolean combination of two shapes.
func NewCSG(op Operation, left, right Shape) *CSG {
	c := &CSG{
		baseShape: newBaseShape(),
		Operation: op,
		Left:      left,
		Right:     right,
	}
	left.setParent(c)
	right.setParent(c)
	return c
}

// IntersectionAllowed is the CSG truth table: given which child's surface
// was hit and whether the ray is currently inside each child, it decides
// whether the intersection survives the combination.
func IntersectionAllowed(op Operation, leftHit, inLeft, inRight bool) bool {
	switch op {
	case UnionOp:
		return (leftHit && !inRight) || (!leftHit && !inLeft)
	case IntersectOp:
		return (leftHit && inRight) || (!leftHit && inLeft)
	case DifferenceOp:
		return (leftHit && !inRight) || (!leftHit && inLeft)
	default:
		return false
	}
}

// filter walks the merged, sorted intersection list tracking inside-left /
// inside-right state and keeps only the intersections the truth table
// allows.
func (c *CSG) filter(xs Intersections) Intersections {
	inLeft := false
	inRight := false

	var result Intersections
	for _, x := range xs {
		leftHit := c.Left.Includes(x.Object)

		if IntersectionAllowed(c.Operation, leftHit, inLeft, inRight) {
			result = append(result, x)
		}

		if leftHit {
			inLeft = !inLeft
		} else {
			inRight = !inRight
		}
	}
	return result
}

// LocalIntersect intersects both children, merges their lists in t order,
// and filters through the truth table.
func (c *CSG) LocalIntersect(ray math.Ray) []Intersection {
	if !c.Bounds().IntersectsRay(ray) {
		return nil
	}

	xs := Intersect(c.Left, ray)
	xs = append(xs, Intersect(c.Right, ray)...)
	xs.Sort()
	return c.filter(xs)
}

// LocalNormalAt is never called on a CSG node: normals are resolved at the
// leaf shape that was hit.
func (c *CSG) LocalNormalAt(_ math.Tuple, _ Intersection) math.Tuple {
	panic("geometry: LocalNormalAt called on a CSG node")
}

// Bounds returns the box covering both children's transformed bounds in
// the node's space. The box is cached; moving a child recomputes it on the
// next call.
func (c *CSG) Bounds() Bounds {
	if !c.boundsValid {
		c.bounds = c.Left.Bounds().Transform(c.Left.Transform()).
			Merge(c.Right.Bounds().Transform(c.Right.Transform()))
		c.boundsValid = true
	}
	return c.bounds
}

func (c *CSG) invalidateBounds() { c.boundsValid = false }

// Includes reports whether either child is, or contains, other.
func (c *CSG) Includes(other Shape) bool {
	return c.Left.Includes(other) || c.Right.Includes(other)
}
