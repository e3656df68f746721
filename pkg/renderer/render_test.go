package renderer

import (
	"context"
	stdmath "math"
	"testing"

	"go.uber.org/zap"

	"github.com/raywerk/whitted/pkg/geometry"
	"github.com/raywerk/whitted/pkg/lights"
	"github.com/raywerk/whitted/pkg/material"
	"github.com/raywerk/whitted/pkg/math"
	"github.com/raywerk/whitted/pkg/world"
)

func twoSphereWorld(t *testing.T) *world.World {
	t.Helper()

	s1 := geometry.NewSphere()
	m1 := material.Default()
	m1.Color = math.Color{R: 0.8, G: 1.0, B: 0.6}
	m1.Diffuse = 0.7
	m1.Specular = 0.2
	s1.SetMaterial(m1)

	s2 := geometry.NewSphere()
	if err := s2.SetTransform(math.Scaling(0.5, 0.5, 0.5)); err != nil {
		t.Fatalf("SetTransform: %v", err)
	}

	w := world.New(world.DefaultConfig())
	w.AddShapes(s1, s2)
	w.AddLights(lights.NewPointLight(math.NewPoint(-10, 10, -10), math.White))
	return w
}

func lookAtOrigin(t *testing.T, c *Camera, from math.Tuple) {
	t.Helper()
	view, err := math.ViewTransform(from, math.NewPoint(0, 0, 0), math.NewVector(0, 1, 0))
	if err != nil {
		t.Fatalf("ViewTransform: %v", err)
	}
	if err := c.SetTransform(view); err != nil {
		t.Fatalf("SetTransform: %v", err)
	}
}

func TestRenderer_Render(t *testing.T) {
	w := twoSphereWorld(t)
	camera := NewCamera(11, 11, stdmath.Pi/2)
	lookAtOrigin(t, camera, math.NewPoint(0, 0, -5))

	canvas, err := NewRenderer(2, zap.NewNop()).Render(context.Background(), camera, w)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	p, err := canvas.PixelAt(5, 5)
	if err != nil {
		t.Fatalf("PixelAt: %v", err)
	}
	want := math.Color{R: 0.38066, G: 0.47583, B: 0.2855}
	if stdmath.Abs(p.R-want.R) > 1e-4 || stdmath.Abs(p.G-want.G) > 1e-4 || stdmath.Abs(p.B-want.B) > 1e-4 {
		t.Errorf("center pixel = %v, want %v", p, want)
	}
}

// Every canvas pixel must equal ColorAt for the ray through that pixel,
// regardless of how rows are split across workers.
func TestRenderer_Render_MatchesColorAt(t *testing.T) {
	w := twoSphereWorld(t)
	camera := NewCamera(6, 4, stdmath.Pi/3)
	lookAtOrigin(t, camera, math.NewPoint(0, 1.5, -4))

	canvas, err := Render(camera, w)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	for y := 0; y < camera.VSize(); y++ {
		for x := 0; x < camera.HSize(); x++ {
			ray, err := camera.RayForPixel(x, y)
			if err != nil {
				t.Fatalf("RayForPixel(%d, %d): %v", x, y, err)
			}
			want, err := w.ColorAt(ray, w.Config.MaxDepth)
			if err != nil {
				t.Fatalf("ColorAt(%d, %d): %v", x, y, err)
			}
			got, err := canvas.PixelAt(x, y)
			if err != nil {
				t.Fatalf("PixelAt(%d, %d): %v", x, y, err)
			}
			if !got.Equals(want) {
				t.Errorf("pixel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestRenderer_Render_InvalidWorld(t *testing.T) {
	w := twoSphereWorld(t)
	w.Config.MaxDepth = -1
	camera := NewCamera(4, 4, stdmath.Pi/2)

	canvas, err := NewRenderer(1, nil).Render(context.Background(), camera, w)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if canvas != nil {
		t.Error("got a canvas despite validation failure")
	}
}

func TestRenderer_Render_Cancelled(t *testing.T) {
	w := twoSphereWorld(t)
	camera := NewCamera(64, 64, stdmath.Pi/2)
	lookAtOrigin(t, camera, math.NewPoint(0, 0, -5))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewRenderer(2, nil).Render(ctx, camera, w); err == nil {
		t.Fatal("expected cancellation error")
	}
}
