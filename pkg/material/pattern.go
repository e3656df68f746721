package material

import (
	stdmath "math"

	"github.com/raywerk/whitted/pkg/math"
)

// Pattern is a procedural color source evaluated in pattern space.
type Pattern interface {
	// ColorAt returns the pattern color for a point already transformed
	// into pattern space.
	ColorAt(point math.Tuple) math.Color
	Transform() math.Matrix
	InverseTransform() math.Matrix
	SetTransform(m math.Matrix) error
}

// ColorAtObject evaluates a pattern for a point given in object space,
// applying the pattern's own inverse transform first.
func ColorAtObject(p Pattern, objectPoint math.Tuple) math.Color {
	return p.ColorAt(p.InverseTransform().MultiplyTuple(objectPoint))
}

// basePattern carries the transform shared by every pattern variant.
// The inverse is cached when the transform is set.
type basePattern struct {
	transform math.Matrix
	inverse   math.Matrix
}

func newBasePattern() basePattern {
	return basePattern{
		transform: math.Identity(),
		inverse:   math.Identity(),
	}
}

func (b *basePattern) Transform() math.Matrix        { return b.transform }
func (b *basePattern) InverseTransform() math.Matrix { return b.inverse }

func (b *basePattern) SetTransform(m math.Matrix) error {
	inverse, err := m.Inverse()
	if err != nil {
		return err
	}
	b.transform = m
	b.inverse = inverse
	return nil
}

// SolidPattern is a single color everywhere; useful as a CSG/test stand-in
// and as the sub-color of composed patterns.
type SolidPattern struct {
	basePattern
	C math.Color
}

// NewSolidPattern creates a solid pattern of one color.
func NewSolidPattern(c math.Color) *SolidPattern {
	return &SolidPattern{basePattern: newBasePattern(), C: c}
}

func (p *SolidPattern) ColorAt(math.Tuple) math.Color { return p.C }

// StripePattern alternates two colors in unit bands along the x axis.
type StripePattern struct {
	basePattern
	A, B math.Color
}

// NewStripePattern creates a stripe pattern of two colors.
func NewStripePattern(a, b math.Color) *StripePattern {
	return &StripePattern{basePattern: newBasePattern(), A: a, B: b}
}

func (p *StripePattern) ColorAt(point math.Tuple) math.Color {
	if int(stdmath.Floor(point.X))%2 == 0 {
		return p.A
	}
	return p.B
}

// GradientPattern blends linearly from A to B across one unit of x.
type GradientPattern struct {
	basePattern
	A, B math.Color
}

// NewGradientPattern creates a linear gradient between two colors.
func NewGradientPattern(a, b math.Color) *GradientPattern {
	return &GradientPattern{basePattern: newBasePattern(), A: a, B: b}
}

func (p *GradientPattern) ColorAt(point math.Tuple) math.Color {
	distance := p.B.Subtract(p.A)
	fraction := point.X - stdmath.Floor(point.X)
	return p.A.Add(distance.Multiply(fraction))
}

// RingPattern alternates two colors in concentric rings on the xz plane.
type RingPattern struct {
	basePattern
	A, B math.Color
}

// NewRingPattern creates a ring pattern of two colors.
func NewRingPattern(a, b math.Color) *RingPattern {
	return &RingPattern{basePattern: newBasePattern(), A: a, B: b}
}

func (p *RingPattern) ColorAt(point math.Tuple) math.Color {
	distance := stdmath.Sqrt(point.X*point.X + point.Z*point.Z)
	if int(stdmath.Floor(distance))%2 == 0 {
		return p.A
	}
	return p.B
}

// CheckerPattern alternates two colors in a 3D checkerboard of unit cubes.
type CheckerPattern struct {
	basePattern
	A, B math.Color
}

// NewCheckerPattern creates a checkerboard pattern of two colors.
func NewCheckerPattern(a, b math.Color) *CheckerPattern {
	return &CheckerPattern{basePattern: newBasePattern(), A: a, B: b}
}

func (p *CheckerPattern) ColorAt(point math.Tuple) math.Color {
	sum := stdmath.Floor(point.X) + stdmath.Floor(point.Y) + stdmath.Floor(point.Z)
	if int(sum)%2 == 0 {
		return p.A
	}
	return p.B
}
