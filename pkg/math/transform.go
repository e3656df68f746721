package math

import "math"

// Translation returns a transform that moves points by (x, y, z). Vectors
// are unaffected because their W component is zero.
func Translation(x, y, z float64) Matrix {
	m := Identity()
	m[0][3] = x
	m[1][3] = y
	m[2][3] = z
	return m
}

// Scaling returns a transform that scales each axis independently.
func Scaling(x, y, z float64) Matrix {
	m := Identity()
	m[0][0] = x
	m[1][1] = y
	m[2][2] = z
	return m
}

// RotationX returns a transform that rotates about the x axis by the given
// angle in radians.
func RotationX(radians float64) Matrix {
	sin, cos := math.Sincos(radians)
	m := Identity()
	m[1][1] = cos
	m[1][2] = -sin
	m[2][1] = sin
	m[2][2] = cos
	return m
}

// RotationY returns a transform that rotates about the y axis.
func RotationY(radians float64) Matrix {
	sin, cos := math.Sincos(radians)
	m := Identity()
	m[0][0] = cos
	m[0][2] = sin
	m[2][0] = -sin
	m[2][2] = cos
	return m
}

// RotationZ returns a transform that rotates about the z axis.
func RotationZ(radians float64) Matrix {
	sin, cos := math.Sincos(radians)
	m := Identity()
	m[0][0] = cos
	m[0][1] = -sin
	m[1][0] = sin
	m[1][1] = cos
	return m
}

// Shearing returns a transform that skews each component in proportion to
// the other two.
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	m := Identity()
	m[0][1] = xy
	m[0][2] = xz
	m[1][0] = yx
	m[1][2] = yz
	m[2][0] = zx
	m[2][1] = zy
	return m
}

// Compose combines transforms so they apply in the order given: the first
// argument is applied to a point first, the last argument last.
func Compose(transforms ...Matrix) Matrix {
	result := Identity()
	for _, t := range transforms {
		result = t.Multiply(result)
	}
	return result
}

// ViewTransform returns the world-to-camera transform for an eye at from,
// looking at to, with the given up vector. A zero-length gaze or up vector
// returns a DegenerateVectorError.
func ViewTransform(from, to, up Tuple) (Matrix, error) {
	forward, err := to.Subtract(from).Normalize()
	if err != nil {
		return Matrix{}, err
	}
	upn, err := up.Normalize()
	if err != nil {
		return Matrix{}, err
	}
	left := forward.Cross(upn)
	trueUp := left.Cross(forward)

	orientation := Matrix{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	}
	return orientation.Multiply(Translation(-from.X, -from.Y, -from.Z)), nil
}
