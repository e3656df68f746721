package geometry

import (
	"testing"

	"github.com/raywerk/whitted/pkg/math"
)

func defaultTriangle(t *testing.T) *Triangle {
	t.Helper()
	tri, err := NewTriangle(
		math.NewPoint(0, 1, 0),
		math.NewPoint(-1, 0, 0),
		math.NewPoint(1, 0, 0),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return tri
}

func TestNewTriangle(t *testing.T) {
	tri := defaultTriangle(t)

	if !tri.E1.Equals(math.NewVector(-1, -1, 0)) {
		t.Errorf("unexpected edge 1: %v", tri.E1)
	}
	if !tri.E2.Equals(math.NewVector(1, -1, 0)) {
		t.Errorf("unexpected edge 2: %v", tri.E2)
	}
	if !tri.Normal.Equals(math.NewVector(0, 0, -1)) {
		t.Errorf("unexpected normal: %v", tri.Normal)
	}
}

func TestNewTriangle_CollinearPoints(t *testing.T) {
	_, err := NewTriangle(
		math.NewPoint(0, 0, 0),
		math.NewPoint(1, 0, 0),
		math.NewPoint(2, 0, 0),
	)
	if err == nil {
		t.Fatal("collinear points should fail")
	}
}

func TestTriangle_LocalIntersect(t *testing.T) {
	tri := defaultTriangle(t)

	tests := []struct {
		name      string
		origin    math.Tuple
		direction math.Tuple
		expected  []float64
	}{
		{"parallel to plane", math.NewPoint(0, -1, -2), math.NewVector(0, 1, 0), nil},
		{"beyond p1-p3 edge", math.NewPoint(1, 1, -2), math.NewVector(0, 0, 1), nil},
		{"beyond p1-p2 edge", math.NewPoint(-1, 1, -2), math.NewVector(0, 0, 1), nil},
		{"beyond p2-p3 edge", math.NewPoint(0, -1, -2), math.NewVector(0, 0, 1), nil},
		{"strikes the interior", math.NewPoint(0, 0.5, -2), math.NewVector(0, 0, 1), []float64{2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs := tri.LocalIntersect(math.NewRay(tt.origin, tt.direction))
			if len(xs) != len(tt.expected) {
				t.Fatalf("expected %d intersections, got %d", len(tt.expected), len(xs))
			}
			for i, want := range tt.expected {
				if !math.FloatsEqual(xs[i].T, want) {
					t.Errorf("expected t=%f, got t=%f", want, xs[i].T)
				}
			}
		})
	}
}

func defaultSmoothTriangle(t *testing.T) *SmoothTriangle {
	t.Helper()
	tri, err := NewSmoothTriangle(
		math.NewPoint(0, 1, 0),
		math.NewPoint(-1, 0, 0),
		math.NewPoint(1, 0, 0),
		math.NewVector(0, 1, 0),
		math.NewVector(-1, 0, 0),
		math.NewVector(1, 0, 0),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return tri
}

func TestSmoothTriangle_IntersectRecordsUV(t *testing.T) {
	tri := defaultSmoothTriangle(t)
	ray := math.NewRay(math.NewPoint(-0.2, 0.3, -2), math.NewVector(0, 0, 1))

	xs := tri.LocalIntersect(ray)
	if len(xs) != 1 {
		t.Fatalf("expected 1 intersection, got %d", len(xs))
	}
	if !math.FloatsEqual(xs[0].U, 0.45) || !math.FloatsEqual(xs[0].V, 0.25) {
		t.Errorf("expected u=0.45 v=0.25, got u=%f v=%f", xs[0].U, xs[0].V)
	}
}

func TestSmoothTriangle_InterpolatedNormal(t *testing.T) {
	tri := defaultSmoothTriangle(t)
	hit := NewIntersectionUV(1, tri, 0.45, 0.25)

	got, err := NormalAt(tri, math.NewPoint(0, 0, 0), hit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equals(math.NewVector(-0.5547, 0.83205, 0)) {
		t.Errorf("unexpected interpolated normal %v", got)
	}
}
