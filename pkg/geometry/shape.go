// Package geometry implements the shape hierarchy: primitives with
// closed-form local intersections, groups, and CSG combinations, all
// positioned by cached-inverse 4x4 transforms.
package geometry

import (
	"github.com/raywerk/whitted/pkg/material"
	"github.com/raywerk/whitted/pkg/math"
)

// Shape is the capability set shared by every geometric variant. Local
// methods operate in the shape's own coordinate space; the free functions
// Intersect and NormalAt handle the world/local conversion. The unexported
// setParent method keeps the variant set closed to this package, so group
// traversal and the CSG truth table stay exhaustive.
type Shape interface {
	// LocalIntersect returns the intersections of a ray already
	// transformed into the shape's local space.
	LocalIntersect(ray math.Ray) []Intersection

	// LocalNormalAt returns the surface normal at a local-space point.
	// The hit carries u/v for variants that interpolate normals.
	LocalNormalAt(point math.Tuple, hit Intersection) math.Tuple

	// Bounds returns the shape's axis-aligned bounds in local space.
	Bounds() Bounds

	Transform() math.Matrix
	InverseTransform() math.Matrix
	SetTransform(m math.Matrix) error

	Material() *material.Material
	SetMaterial(m material.Material)

	// Parent is the owning group or CSG node, nil at the root. The
	// back-reference exists only for coordinate-space composition.
	Parent() Shape

	// Includes reports whether the shape is, or contains, other. Leaf
	// shapes compare identity; composites recurse.
	Includes(other Shape) bool

	setParent(parent Shape)
}

// baseShape carries the transform, material and parent reference shared by
// every variant. The inverse transform is cached when the transform is set,
// so each intersection pays for one matrix-ray multiply, not an inversion.
type baseShape struct {
	transform math.Matrix
	inverse   math.Matrix
	material  material.Material
	parent    Shape
}

func newBaseShape() baseShape {
	return baseShape{
		transform: math.Identity(),
		inverse:   math.Identity(),
		material:  material.Default(),
	}
}

func (b *baseShape) Transform() math.Matrix        { return b.transform }
func (b *baseShape) InverseTransform() math.Matrix { return b.inverse }

// SetTransform installs a new local-to-world transform, failing with a
// SingularMatrixError if it cannot be inverted. Rejecting the transform here
// keeps an unusable shape from surfacing mid-render.
func (b *baseShape) SetTransform(m math.Matrix) error {
	inverse, err := m.Inverse()
	if err != nil {
		return err
	}
	b.transform = m
	b.inverse = inverse
	invalidateCachedBounds(b.parent)
	return nil
}

// boundsCacher is implemented by composites that cache a bounding box
// derived from their children.
type boundsCacher interface {
	invalidateBounds()
}

// invalidateCachedBounds drops the cached box of s and of every ancestor
// composite, forcing a recompute on next use. Moving a shape changes the
// box of everything that contains it.
func invalidateCachedBounds(s Shape) {
	for ; s != nil; s = s.Parent() {
		if c, ok := s.(boundsCacher); ok {
			c.invalidateBounds()
		}
	}
}

func (b *baseShape) Material() *material.Material    { return &b.material }
func (b *baseShape) SetMaterial(m material.Material) { b.material = m }

func (b *baseShape) Parent() Shape          { return b.parent }
func (b *baseShape) setParent(parent Shape) { b.parent = parent }

// Intersect transforms the ray into the shape's local space once, using the
// cached inverse, and delegates to the variant's LocalIntersect.
func Intersect(s Shape, ray math.Ray) Intersections {
	local := ray.Transform(s.InverseTransform())
	return Intersections(s.LocalIntersect(local))
}

// NormalAt computes the world-space surface normal for a world-space point
// on the shape, resolving the normal at the leaf and transforming it back
// out through every ancestor.
func NormalAt(s Shape, worldPoint math.Tuple, hit Intersection) (math.Tuple, error) {
	localPoint := WorldToObject(s, worldPoint)
	localNormal := s.LocalNormalAt(localPoint, hit)
	return NormalToWorld(s, localNormal)
}

// WorldToObject converts a world-space point into the shape's local space by
// applying each ancestor's inverse transform from the root down.
func WorldToObject(s Shape, point math.Tuple) math.Tuple {
	if parent := s.Parent(); parent != nil {
		point = WorldToObject(parent, point)
	}
	return s.InverseTransform().MultiplyTuple(point)
}

// NormalToWorld converts a local-space normal into world space, applying the
// inverse-transpose at each level and renormalizing to correct for
// non-uniform scaling.
func NormalToWorld(s Shape, normal math.Tuple) (math.Tuple, error) {
	n := s.InverseTransform().Transpose().MultiplyTuple(normal)
	n.W = 0
	n, err := n.Normalize()
	if err != nil {
		return math.Tuple{}, err
	}
	if parent := s.Parent(); parent != nil {
		return NormalToWorld(parent, n)
	}
	return n, nil
}
