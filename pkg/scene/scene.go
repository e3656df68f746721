// Package scene provides ready-made worlds paired with cameras, looked up
// by name. Scenes exercise the full shape and material range so the CLI can
// render something interesting without a scene description format.
package scene

import (
	"fmt"
	"sort"

	"github.com/raywerk/whitted/pkg/geometry"
	"github.com/raywerk/whitted/pkg/math"
	"github.com/raywerk/whitted/pkg/renderer"
	"github.com/raywerk/whitted/pkg/world"
)

// Scene pairs a world with the camera it was composed for.
type Scene struct {
	World  *world.World
	Camera *renderer.Camera
}

// Builder constructs a scene for the given canvas size and field of view in
// radians.
type Builder func(width, height int, fov float64) (*Scene, error)

var builders = map[string]Builder{
	"default": NewDefaultScene,
	"glass":   NewGlassScene,
	"csg":     NewCSGScene,
}

// Names returns the available scene names, sorted.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build constructs the named scene, failing if the name is unknown.
func Build(name string, width, height int, fov float64) (*Scene, error) {
	builder, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, Names())
	}
	return builder(width, height, fov)
}

// composer accumulates the first error of a series of transform
// assignments so scene builders read as straight-line code.
type composer struct {
	err error
}

func (c *composer) transform(s geometry.Shape, transforms ...math.Matrix) {
	if c.err != nil {
		return
	}
	c.err = s.SetTransform(math.Compose(transforms...))
}

func (c *composer) camera(width, height int, fov float64, from, to math.Tuple) *renderer.Camera {
	camera := renderer.NewCamera(width, height, fov)
	if c.err != nil {
		return camera
	}
	view, err := math.ViewTransform(from, to, math.NewVector(0, 1, 0))
	if err == nil {
		err = camera.SetTransform(view)
	}
	c.err = err
	return camera
}
