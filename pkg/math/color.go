package math

// Color is an RGB color with unclamped floating-point channels. Values above
// 1.0 are preserved so an external encoder can decide how to quantize them.
type Color struct {
	R, G, B float64
}

// Black is the zero color, used as the default background and the
// contribution of an exhausted recursion.
var Black = Color{0, 0, 0}

// White is full intensity on all three channels.
var White = Color{1, 1, 1}

// NewColor creates a color from its three channels.
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the channel-wise sum of two colors.
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the channel-wise difference of two colors.
func (c Color) Subtract(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Multiply returns the color scaled by a scalar.
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Blend returns the Hadamard product of two colors, used to filter one
// color through another.
func (c Color) Blend(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Equals reports whether two colors are equal within Epsilon.
func (c Color) Equals(other Color) bool {
	return FloatsEqual(c.R, other.R) &&
		FloatsEqual(c.G, other.G) &&
		FloatsEqual(c.B, other.B)
}
