package world

import (
	stdmath "math"

	"github.com/raywerk/whitted/pkg/geometry"
	"github.com/raywerk/whitted/pkg/lights"
	"github.com/raywerk/whitted/pkg/material"
	"github.com/raywerk/whitted/pkg/math"
)

// Lighting evaluates the Phong reflection model for one light at one
// surface point. The object provides the world-to-object mapping for
// pattern evaluation. When the point is shadowed only the ambient term
// contributes.
func Lighting(m material.Material, object geometry.Shape, light lights.PointLight,
	point, eyeV, normalV math.Tuple, inShadow bool) (math.Color, error) {

	surfaceColor := m.ColorAt(geometry.WorldToObject(object, point))
	effectiveColor := surfaceColor.Blend(light.Intensity)
	ambient := effectiveColor.Multiply(m.Ambient)
	if inShadow {
		return ambient, nil
	}

	lightV, err := light.Position.Subtract(point).Normalize()
	if err != nil {
		return math.Black, err
	}

	diffuse := math.Black
	specular := math.Black
	if lightDotNormal := lightV.Dot(normalV); lightDotNormal >= 0 {
		diffuse = effectiveColor.Multiply(m.Diffuse * lightDotNormal)

		reflectV := lightV.Negate().Reflect(normalV)
		if reflectDotEye := reflectV.Dot(eyeV); reflectDotEye > 0 {
			factor := stdmath.Pow(reflectDotEye, m.Shininess)
			specular = light.Intensity.Multiply(m.Specular * factor)
		}
	}

	return ambient.Add(diffuse).Add(specular), nil
}

// ShadeHit computes the color at a prepared hit: the Phong contribution of
// every light plus the recursive reflected and refracted contributions.
// When the material is both reflective and transparent the two are blended
// by the Schlick approximation of Fresnel reflectance.
func (w *World) ShadeHit(comps Computations, remaining int) (math.Color, error) {
	m := *comps.Object.Material()

	surface := math.Black
	for _, light := range w.Lights {
		shadowed, err := w.IsShadowed(comps.OverPoint, light)
		if err != nil {
			return math.Black, err
		}
		contribution, err := Lighting(m, comps.Object, light, comps.OverPoint, comps.EyeV, comps.NormalV, shadowed)
		if err != nil {
			return math.Black, err
		}
		surface = surface.Add(contribution)
	}

	reflected, err := w.ReflectedColor(comps, remaining)
	if err != nil {
		return math.Black, err
	}
	refracted, err := w.RefractedColor(comps, remaining)
	if err != nil {
		return math.Black, err
	}

	if m.Reflective > 0 && m.Transparency > 0 {
		reflectance := Schlick(comps)
		return surface.
			Add(reflected.Multiply(reflectance)).
			Add(refracted.Multiply(1 - reflectance)), nil
	}
	return surface.Add(reflected).Add(refracted), nil
}

// ReflectedColor casts the reflection ray and scales the result by the
// material's reflectivity. An exhausted bounce budget contributes black,
// which bounds the work of mutually reflective surfaces.
func (w *World) ReflectedColor(comps Computations, remaining int) (math.Color, error) {
	if remaining <= 0 {
		return math.Black, nil
	}
	reflective := comps.Object.Material().Reflective
	if reflective == 0 {
		return math.Black, nil
	}

	reflectRay := math.NewRay(comps.OverPoint, comps.ReflectV)
	color, err := w.ColorAt(reflectRay, remaining-1)
	if err != nil {
		return math.Black, err
	}
	return color.Multiply(reflective), nil
}

// RefractedColor casts the refraction ray bent per Snell's law. Total
// internal reflection contributes black here; the reflected side of the
// Schlick blend carries the energy instead.
func (w *World) RefractedColor(comps Computations, remaining int) (math.Color, error) {
	if remaining <= 0 {
		return math.Black, nil
	}
	transparency := comps.Object.Material().Transparency
	if transparency == 0 {
		return math.Black, nil
	}

	nRatio := comps.N1 / comps.N2
	cosI := comps.EyeV.Dot(comps.NormalV)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)
	if sin2T > 1 {
		return math.Black, nil
	}

	cosT := stdmath.Sqrt(1 - sin2T)
	direction := comps.NormalV.Multiply(nRatio*cosI - cosT).
		Subtract(comps.EyeV.Multiply(nRatio))

	refractRay := math.NewRay(comps.UnderPoint, direction)
	color, err := w.ColorAt(refractRay, remaining-1)
	if err != nil {
		return math.Black, err
	}
	return color.Multiply(transparency), nil
}

// Schlick approximates the Fresnel reflectance for the hit: the fraction
// of light that reflects rather than refracts at the boundary.
func Schlick(comps Computations) float64 {
	cos := comps.EyeV.Dot(comps.NormalV)

	if comps.N1 > comps.N2 {
		n := comps.N1 / comps.N2
		sin2T := n * n * (1 - cos*cos)
		if sin2T > 1 {
			return 1.0
		}
		cos = stdmath.Sqrt(1 - sin2T)
	}

	r0 := (comps.N1 - comps.N2) / (comps.N1 + comps.N2)
	r0 *= r0
	return r0 + (1-r0)*stdmath.Pow(1-cos, 5)
}
