// Package material defines Phong material properties and the procedural
// patterns that can replace a material's flat color.
package material

import (
	"github.com/raywerk/whitted/pkg/math"
)

// Refractive indices of common media.
const (
	RefractiveIndexVacuum = 1.0
	RefractiveIndexGlass  = 1.5
)

// Material holds the surface properties consumed by the Phong lighting
// equation plus the reflection and refraction coefficients.
type Material struct {
	Color           math.Color
	Pattern         Pattern // optional; overrides Color when non-nil
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64
	Transparency    float64
	RefractiveIndex float64
}

// Default returns the standard matte white material.
func Default() Material {
	return Material{
		Color:           math.White,
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200.0,
		Reflective:      0.0,
		Transparency:    0.0,
		RefractiveIndex: RefractiveIndexVacuum,
	}
}

// ColorAt returns the material's color at a point given in object space.
// When a pattern is set its own transform is applied; otherwise the flat
// color is returned.
func (m Material) ColorAt(objectPoint math.Tuple) math.Color {
	if m.Pattern == nil {
		return m.Color
	}
	return ColorAtObject(m.Pattern, objectPoint)
}
