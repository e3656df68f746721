package math

// Ray represents a ray with a point origin and a vector direction.
// Rays are immutable once constructed.
type Ray struct {
	Origin    Tuple
	Direction Tuple
}

// NewRay creates a new ray.
func NewRay(origin, direction Tuple) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// Position returns the point at parameter t along the ray.
func (r Ray) Position(t float64) Tuple {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Transform returns a new ray with origin and direction passed through the
// given matrix. The direction is deliberately not renormalized so that t
// values keep their meaning across coordinate spaces.
func (r Ray) Transform(m Matrix) Ray {
	return Ray{
		Origin:    m.MultiplyTuple(r.Origin),
		Direction: m.MultiplyTuple(r.Direction),
	}
}
