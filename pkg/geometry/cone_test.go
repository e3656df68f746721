package geometry

import (
	stdmath "math"
	"testing"

	"github.com/raywerk/whitted/pkg/math"
)

func TestCone_LocalIntersect(t *testing.T) {
	cone := NewCone()

	tests := []struct {
		name      string
		origin    math.Tuple
		direction math.Tuple
		expected  []float64
	}{
		{"straight through", math.NewPoint(0, 0, -5), math.NewVector(0, 0, 1), []float64{5, 5}},
		{"diagonal through both halves", math.NewPoint(0, 0, -5), math.NewVector(1, 1, 1), []float64{8.66025, 8.66025}},
		{"angled hit", math.NewPoint(1, 1, -5), math.NewVector(-0.5, -1, 1), []float64{4.55006, 49.44994}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := math.NewRay(tt.origin, normalized(t, tt.direction))
			xs := cone.LocalIntersect(ray)
			if len(xs) != len(tt.expected) {
				t.Fatalf("expected %d intersections, got %d", len(tt.expected), len(xs))
			}
			for i, want := range tt.expected {
				if !math.FloatsEqual(xs[i].T, want) {
					t.Errorf("intersection %d: expected t=%f, got t=%f", i, want, xs[i].T)
				}
			}
		})
	}
}

func TestCone_LocalIntersect_ParallelToHalf(t *testing.T) {
	cone := NewCone()
	ray := math.NewRay(math.NewPoint(0, 0, -1), normalized(t, math.NewVector(0, 1, 1)))

	xs := cone.LocalIntersect(ray)
	if len(xs) != 1 {
		t.Fatalf("expected 1 intersection, got %d", len(xs))
	}
	if !math.FloatsEqual(xs[0].T, 0.35355) {
		t.Errorf("expected t=0.35355, got t=%f", xs[0].T)
	}
}

func TestCone_Capped(t *testing.T) {
	cone := NewCone()
	cone.Minimum = -0.5
	cone.Maximum = 0.5
	cone.Closed = true

	tests := []struct {
		name      string
		origin    math.Tuple
		direction math.Tuple
		count     int
	}{
		{"parallel miss", math.NewPoint(0, 0, -5), math.NewVector(0, 1, 0), 0},
		{"through cap and wall", math.NewPoint(0, 0, -0.25), math.NewVector(0, 1, 1), 2},
		{"up the axis", math.NewPoint(0, 0, -0.25), math.NewVector(0, 1, 0), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := math.NewRay(tt.origin, normalized(t, tt.direction))
			if xs := cone.LocalIntersect(ray); len(xs) != tt.count {
				t.Errorf("expected %d intersections, got %d", tt.count, len(xs))
			}
		})
	}
}

func TestCone_LocalNormalAt(t *testing.T) {
	cone := NewCone()

	tests := []struct {
		point    math.Tuple
		expected math.Tuple
	}{
		{math.NewPoint(0, 0, 0), math.NewVector(0, 0, 0)},
		{math.NewPoint(1, 1, 1), math.NewVector(1, -stdmath.Sqrt2, 1)},
		{math.NewPoint(-1, -1, 0), math.NewVector(-1, 1, 0)},
	}

	for _, tt := range tests {
		if got := cone.LocalNormalAt(tt.point, Intersection{}); !got.Equals(tt.expected) {
			t.Errorf("normal at %v: expected %v, got %v", tt.point, tt.expected, got)
		}
	}
}
