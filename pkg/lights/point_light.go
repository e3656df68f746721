// Package lights defines the light sources a world can contain. The core
// supports point lights only; area and volumetric lights are outside its
// scope.
package lights

import (
	"github.com/raywerk/whitted/pkg/math"
)

// PointLight is a dimensionless light source with a position and an
// intensity color.
type PointLight struct {
	Position  math.Tuple
	Intensity math.Color
}

// NewPointLight creates a point light.
func NewPointLight(position math.Tuple, intensity math.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}
