package math

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance used for floating-point comparison throughout the
// tracer. Transform composition accumulates rounding error, so exact equality
// is never meaningful for computed values.
const Epsilon = 1e-5

// FloatsEqual reports whether two floats are equal within Epsilon.
func FloatsEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// DegenerateVectorError is returned when a zero-length vector is normalized.
// It usually indicates malformed scene geometry, such as a light positioned
// exactly on the surface point it illuminates.
type DegenerateVectorError struct {
	Vector Tuple
}

func (e DegenerateVectorError) Error() string {
	return fmt.Sprintf("cannot normalize degenerate vector %v", e.Vector)
}

// Tuple is a 4-component value: a point when W=1, a vector when W=0.
// Point/vector arithmetic preserves the W discipline (point-point = vector,
// point+vector = point).
type Tuple struct {
	X, Y, Z, W float64
}

// NewPoint creates a point tuple (W=1).
func NewPoint(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1.0}
}

// NewVector creates a vector tuple (W=0).
func NewVector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0.0}
}

// IsPoint reports whether the tuple represents a point.
func (t Tuple) IsPoint() bool {
	return FloatsEqual(t.W, 1.0)
}

// IsVector reports whether the tuple represents a vector.
func (t Tuple) IsVector() bool {
	return FloatsEqual(t.W, 0.0)
}

// Add returns the component-wise sum of two tuples.
func (t Tuple) Add(other Tuple) Tuple {
	return Tuple{t.X + other.X, t.Y + other.Y, t.Z + other.Z, t.W + other.W}
}

// Subtract returns the component-wise difference of two tuples.
func (t Tuple) Subtract(other Tuple) Tuple {
	return Tuple{t.X - other.X, t.Y - other.Y, t.Z - other.Z, t.W - other.W}
}

// Negate returns the tuple with every component negated.
func (t Tuple) Negate() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Multiply returns the tuple scaled by a scalar.
func (t Tuple) Multiply(scalar float64) Tuple {
	return Tuple{t.X * scalar, t.Y * scalar, t.Z * scalar, t.W * scalar}
}

// Divide returns the tuple scaled by 1/scalar.
func (t Tuple) Divide(scalar float64) Tuple {
	return Tuple{t.X / scalar, t.Y / scalar, t.Z / scalar, t.W / scalar}
}

// Dot returns the dot product of two tuples.
func (t Tuple) Dot(other Tuple) float64 {
	return t.X*other.X + t.Y*other.Y + t.Z*other.Z + t.W*other.W
}

// Cross returns the cross product of two vectors. The W components are
// ignored; the result is always a vector.
func (t Tuple) Cross(other Tuple) Tuple {
	return NewVector(
		t.Y*other.Z-t.Z*other.Y,
		t.Z*other.X-t.X*other.Z,
		t.X*other.Y-t.Y*other.X,
	)
}

// Magnitude returns the length of the tuple.
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W)
}

// Normalize returns a unit-length tuple in the same direction. Normalizing a
// zero-length vector returns a DegenerateVectorError.
func (t Tuple) Normalize() (Tuple, error) {
	magnitude := t.Magnitude()
	if magnitude == 0 {
		return Tuple{}, DegenerateVectorError{Vector: t}
	}
	return t.Divide(magnitude), nil
}

// Reflect returns the tuple reflected about the given normal vector.
func (t Tuple) Reflect(normal Tuple) Tuple {
	return t.Subtract(normal.Multiply(2 * t.Dot(normal)))
}

// Equals reports whether two tuples are equal within Epsilon.
func (t Tuple) Equals(other Tuple) bool {
	return FloatsEqual(t.X, other.X) &&
		FloatsEqual(t.Y, other.Y) &&
		FloatsEqual(t.Z, other.Z) &&
		FloatsEqual(t.W, other.W)
}
