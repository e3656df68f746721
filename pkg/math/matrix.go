package math

import (
	"fmt"
	"math"
)

// SingularMatrixError is returned when a non-invertible matrix is inverted.
// A singular shape or camera transform is a scene-construction error and
// should be rejected before rendering begins.
type SingularMatrixError struct {
	Determinant float64
}

func (e SingularMatrixError) Error() string {
	return fmt.Sprintf("cannot invert singular matrix (determinant %g)", e.Determinant)
}

// Matrix is a 4x4 matrix in row-major order.
type Matrix [4][4]float64

// Identity returns the 4x4 identity matrix.
func Identity() Matrix {
	return Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Multiply returns the matrix product m * other.
func (m Matrix) Multiply(other Matrix) Matrix {
	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[row][col] = m[row][0]*other[0][col] +
				m[row][1]*other[1][col] +
				m[row][2]*other[2][col] +
				m[row][3]*other[3][col]
		}
	}
	return result
}

// MultiplyTuple returns the tuple transformed by the matrix.
func (m Matrix) MultiplyTuple(t Tuple) Tuple {
	return Tuple{
		X: m[0][0]*t.X + m[0][1]*t.Y + m[0][2]*t.Z + m[0][3]*t.W,
		Y: m[1][0]*t.X + m[1][1]*t.Y + m[1][2]*t.Z + m[1][3]*t.W,
		Z: m[2][0]*t.X + m[2][1]*t.Y + m[2][2]*t.Z + m[2][3]*t.W,
		W: m[3][0]*t.X + m[3][1]*t.Y + m[3][2]*t.Z + m[3][3]*t.W,
	}
}

// Transpose returns the matrix flipped about its diagonal.
func (m Matrix) Transpose() Matrix {
	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[col][row] = m[row][col]
		}
	}
	return result
}

// Determinant returns the determinant of the matrix, computed by cofactor
// expansion along the first row.
func (m Matrix) Determinant() float64 {
	det := 0.0
	for col := 0; col < 4; col++ {
		det += m[0][col] * m.cofactor(0, col)
	}
	return det
}

// Inverse returns the inverse of the matrix, or a SingularMatrixError when
// the determinant is within Epsilon of zero.
func (m Matrix) Inverse() (Matrix, error) {
	det := m.Determinant()
	if math.Abs(det) < Epsilon {
		return Matrix{}, SingularMatrixError{Determinant: det}
	}

	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			// Transposed assignment inverts via the adjugate.
			result[col][row] = m.cofactor(row, col) / det
		}
	}
	return result, nil
}

// Equals reports whether two matrices are equal within Epsilon.
func (m Matrix) Equals(other Matrix) bool {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if !FloatsEqual(m[row][col], other[row][col]) {
				return false
			}
		}
	}
	return true
}

// cofactor returns the signed 3x3 minor for the given element.
func (m Matrix) cofactor(row, col int) float64 {
	minor := det3(m.submatrix(row, col))
	if (row+col)%2 != 0 {
		return -minor
	}
	return minor
}

// submatrix returns the 3x3 matrix left after removing a row and column.
func (m Matrix) submatrix(row, col int) [3][3]float64 {
	var sub [3][3]float64
	subRow := 0
	for r := 0; r < 4; r++ {
		if r == row {
			continue
		}
		subCol := 0
		for c := 0; c < 4; c++ {
			if c == col {
				continue
			}
			sub[subRow][subCol] = m[r][c]
			subCol++
		}
		subRow++
	}
	return sub
}

func det3(m [3][3]float64) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}
