package geometry

import (
	stdmath "math"
	"testing"

	"github.com/raywerk/whitted/pkg/math"
)

func TestBounds_AddAndMerge(t *testing.T) {
	b := EmptyBounds().Add(math.NewPoint(-1, 2, -3)).Add(math.NewPoint(4, -5, 6))

	if !b.Min.Equals(math.NewPoint(-1, -5, -3)) {
		t.Errorf("unexpected min %v", b.Min)
	}
	if !b.Max.Equals(math.NewPoint(4, 2, 6)) {
		t.Errorf("unexpected max %v", b.Max)
	}

	merged := b.Merge(NewBounds(math.NewPoint(-10, 0, 0), math.NewPoint(0, 0, 10)))
	if !merged.Min.Equals(math.NewPoint(-10, -5, -3)) || !merged.Max.Equals(math.NewPoint(4, 2, 10)) {
		t.Errorf("unexpected merged bounds %v", merged)
	}
}

func TestBounds_Transform(t *testing.T) {
	b := NewBounds(math.NewPoint(-1, -1, -1), math.NewPoint(1, 1, 1))
	rotated := b.Transform(math.RotationX(stdmath.Pi / 4))

	// Rotating the unit cube by 45 degrees widens y and z to sqrt(2).
	if !math.FloatsEqual(rotated.Min.Y, -stdmath.Sqrt2) || !math.FloatsEqual(rotated.Max.Z, stdmath.Sqrt2) {
		t.Errorf("unexpected rotated bounds %v", rotated)
	}
}

func TestBounds_IntersectsRay(t *testing.T) {
	b := NewBounds(math.NewPoint(-1, -1, -1), math.NewPoint(1, 1, 1))

	tests := []struct {
		name      string
		origin    math.Tuple
		direction math.Tuple
		expected  bool
	}{
		{"straight through", math.NewPoint(0, 0, -5), math.NewVector(0, 0, 1), true},
		{"from inside", math.NewPoint(0, 0, 0), math.NewVector(0, 1, 0), true},
		{"parallel miss", math.NewPoint(2, 0, -5), math.NewVector(0, 0, 1), false},
		{"diagonal miss", math.NewPoint(2, 2, -5), math.NewVector(0, 0, 1), false},
		// The slab test is a line test: a box entirely behind the ray
		// origin still reports an intersection, which keeps negative-t
		// records visible to CSG and refraction bookkeeping.
		{"box behind the origin", math.NewPoint(0, 5, 0), math.NewVector(0, 1, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := math.NewRay(tt.origin, tt.direction)
			if got := b.IntersectsRay(ray); got != tt.expected {
				t.Errorf("expected %t, got %t", tt.expected, got)
			}
		})
	}
}

func TestBounds_Transform_InfiniteExtents(t *testing.T) {
	moved := NewPlane().Bounds().Transform(math.Compose(
		math.RotationX(stdmath.Pi/2),
		math.Translation(0, 0, 5),
	))

	// Infinite corners produce NaN when multiplied through a matrix, so
	// the transformed box must degrade to the unbounded box instead.
	if !stdmath.IsInf(moved.Min.X, -1) || !stdmath.IsInf(moved.Max.X, 1) ||
		!stdmath.IsInf(moved.Min.Y, -1) || !stdmath.IsInf(moved.Max.Y, 1) ||
		!stdmath.IsInf(moved.Min.Z, -1) || !stdmath.IsInf(moved.Max.Z, 1) {
		t.Fatalf("expected unbounded box, got %v", moved)
	}
	ray := math.NewRay(math.NewPoint(0, 0, -5), math.NewVector(0, 0, 1))
	if !moved.IntersectsRay(ray) {
		t.Error("unbounded box rejected a ray")
	}
}

func TestBounds_Transform_Empty(t *testing.T) {
	moved := EmptyBounds().Transform(math.Translation(1, 2, 3))
	if !moved.IsEmpty() {
		t.Errorf("expected empty box, got %v", moved)
	}
}

func TestBounds_Merge_Empty(t *testing.T) {
	b := NewBounds(math.NewPoint(-1, -1, -1), math.NewPoint(1, 1, 1))
	merged := b.Merge(EmptyBounds())
	if merged != b {
		t.Errorf("merging an empty box changed %v to %v", b, merged)
	}
}
