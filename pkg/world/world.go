// Package world composes shapes and lights into a scene and owns the
// shading dispatch: global intersection, shadow testing, and the recursive
// reflection/refraction color computation.
package world

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/raywerk/whitted/pkg/geometry"
	"github.com/raywerk/whitted/pkg/lights"
	"github.com/raywerk/whitted/pkg/math"
)

// DefaultMaxDepth bounds the reflection/refraction recursion. It is a
// structural termination guarantee, not a tunable quality knob, though
// callers may raise it for deeply nested glass.
const DefaultMaxDepth = 5

// Config carries the per-world rendering knobs so tests can vary them
// without touching shared state.
type Config struct {
	// MaxDepth is the remaining-bounce budget handed to ColorAt by the
	// render loop.
	MaxDepth int
	// Background is the color of rays that strike nothing.
	Background math.Color
}

// DefaultConfig returns the standard world configuration: five bounces and
// a black background.
func DefaultConfig() Config {
	return Config{
		MaxDepth:   DefaultMaxDepth,
		Background: math.Black,
	}
}

// World aggregates the shapes and lights a ray is traced against. It
// exclusively owns its top-level shapes; composite shapes own their own
// subtrees.
type World struct {
	Shapes []geometry.Shape
	Lights []lights.PointLight
	Config Config
}

// New creates an empty world with the given configuration.
func New(cfg Config) *World {
	return &World{Config: cfg}
}

// AddShapes appends top-level shapes to the world.
func (w *World) AddShapes(shapes ...geometry.Shape) {
	w.Shapes = append(w.Shapes, shapes...)
}

// AddLights appends light sources to the world.
func (w *World) AddLights(ls ...lights.PointLight) {
	w.Lights = append(w.Lights, ls...)
}

// Intersect collects the intersections of a ray with every shape in the
// world, sorted by ascending t.
func (w *World) Intersect(ray math.Ray) geometry.Intersections {
	var xs geometry.Intersections
	for _, shape := range w.Shapes {
		xs = append(xs, geometry.Intersect(shape, ray)...)
	}
	xs.Sort()
	return xs
}

// IsShadowed reports whether any shape lies strictly between the point and
// the light. A light coincident with the point is malformed scene geometry
// and surfaces as a DegenerateVectorError.
func (w *World) IsShadowed(point math.Tuple, light lights.PointLight) (bool, error) {
	toLight := light.Position.Subtract(point)
	distance := toLight.Magnitude()
	direction, err := toLight.Normalize()
	if err != nil {
		return false, err
	}

	hit, ok := w.Intersect(math.NewRay(point, direction)).Hit()
	return ok && hit.T < distance, nil
}

// ColorAt traces a ray through the world: the nearest hit is shaded,
// recursing for reflection and refraction until remaining bounces are
// exhausted. A miss resolves to the background color; an exhausted budget
// contributes black. Both are normal branches, not errors.
func (w *World) ColorAt(ray math.Ray, remaining int) (math.Color, error) {
	if remaining <= 0 {
		return math.Black, nil
	}

	xs := w.Intersect(ray)
	hit, ok := xs.Hit()
	if !ok {
		return w.Config.Background, nil
	}

	comps, err := PrepareComputations(hit, ray, xs)
	if err != nil {
		return math.Black, err
	}
	return w.ShadeHit(comps, remaining)
}

// Validate checks the whole shape tree eagerly so a malformed scene is
// rejected before rendering begins instead of being discovered
// pixel-by-pixel. All defects are reported at once.
func (w *World) Validate() error {
	var err error
	for i, shape := range w.Shapes {
		if shapeErr := validateShape(shape); shapeErr != nil {
			err = multierr.Append(err, fmt.Errorf("shape %d: %w", i, shapeErr))
		}
	}
	if w.Config.MaxDepth < 0 {
		err = multierr.Append(err, fmt.Errorf("max depth must not be negative, got %d", w.Config.MaxDepth))
	}
	return err
}

func validateShape(shape geometry.Shape) error {
	var err error
	// Composite bounds are cached lazily; computing them here means the
	// concurrent render loop only ever reads them.
	shape.Bounds()
	if _, invErr := shape.Transform().Inverse(); invErr != nil {
		err = multierr.Append(err, invErr)
	}
	if m := shape.Material(); m.Transparency > 0 && m.RefractiveIndex <= 0 {
		err = multierr.Append(err, fmt.Errorf("transparent material has refractive index %g", m.RefractiveIndex))
	}

	switch s := shape.(type) {
	case *geometry.Group:
		for i, child := range s.Children() {
			if childErr := validateShape(child); childErr != nil {
				err = multierr.Append(err, fmt.Errorf("child %d: %w", i, childErr))
			}
		}
	case *geometry.CSG:
		if leftErr := validateShape(s.Left); leftErr != nil {
			err = multierr.Append(err, fmt.Errorf("left: %w", leftErr))
		}
		if rightErr := validateShape(s.Right); rightErr != nil {
			err = multierr.Append(err, fmt.Errorf("right: %w", rightErr))
		}
	}
	return err
}
