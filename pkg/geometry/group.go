package geometry

import (
	"github.com/raywerk/whitted/pkg/math"
)

// Group is a composite shape owning an ordered collection of children. It
// has no surface of its own: intersection delegates to every child and
// normals are always resolved at a leaf. Children keep a non-owning
// back-reference to the group for coordinate-space composition.
type Group struct {
	baseShape
	children    []Shape
	bounds      Bounds
	boundsValid bool
}

// NewGroup creates an empty group.
func NewGroup() *Group {
	return &Group{
		baseShape: newBaseShape(),
	}
}

// AddChildren appends shapes to the group, taking ownership and setting
// their parent back-reference. Cached bounds on the group and its
// ancestors are dropped.
func (g *Group) AddChildren(shapes ...Shape) {
	for _, s := range shapes {
		s.setParent(g)
		g.children = append(g.children, s)
	}
	invalidateCachedBounds(g)
}

// Children returns the group's child shapes. The slice is the group's own;
// callers must not modify it.
func (g *Group) Children() []Shape {
	return g.children
}

// LocalIntersect merges every child's intersections, sorted by t. The
// group's bounding box is tested first so rays that cannot hit any child
// skip the whole subtree.
func (g *Group) LocalIntersect(ray math.Ray) []Intersection {
	if len(g.children) == 0 || !g.Bounds().IntersectsRay(ray) {
		return nil
	}

	var xs Intersections
	for _, child := range g.children {
		xs = append(xs, Intersect(child, ray)...)
	}
	xs.Sort()
	return xs
}

// LocalNormalAt is never called on a group: normals are resolved at leaf
// shapes and transformed back up through the ancestors.
func (g *Group) LocalNormalAt(_ math.Tuple, _ Intersection) math.Tuple {
	panic("geometry: LocalNormalAt called on a Group")
}

// Bounds returns the box covering every child's transformed bounds in
// group space. The box is cached; moving a child or adding one recomputes
// it on the next call.
func (g *Group) Bounds() Bounds {
	if !g.boundsValid {
		bounds := EmptyBounds()
		for _, child := range g.children {
			bounds = bounds.Merge(child.Bounds().Transform(child.Transform()))
		}
		g.bounds = bounds
		g.boundsValid = true
	}
	return g.bounds
}

func (g *Group) invalidateBounds() { g.boundsValid = false }

// Includes reports whether any child is, or contains, other.
func (g *Group) Includes(other Shape) bool {
	for _, child := range g.children {
		if child.Includes(other) {
			return true
		}
	}
	return false
}
