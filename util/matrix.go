package util

import (
	"errors"

	"golang.org/x/exp/constraints"
)

var ErrSingularMatrix = errors.New("matrix is singular")

// Matrix3 is a row major 3x3 matrix.
// Note rows are the first index, so m[1][2] is row 1, column 2.
type Matrix3[T constraints.Float] [3][3]T

// NewMatrix3 takes the nine entries in row major order, the way
// published colour matrices are printed.
func NewMatrix3[T constraints.Float](
	m00, m01, m02 T,
	m10, m11, m12 T,
	m20, m21, m22 T) Matrix3[T] {
	return Matrix3[T]{
		{m00, m01, m02},
		{m10, m11, m12},
		{m20, m21, m22},
	}
}

func Identity3[T constraints.Float]() Matrix3[T] {
	return Matrix3[T]{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Diagonal3 builds a matrix with v on the diagonal.
func Diagonal3[T constraints.Float](v Vector3[T]) Matrix3[T] {
	return Matrix3[T]{
		{v.X, 0, 0},
		{0, v.Y, 0},
		{0, 0, v.Z},
	}
}

// MulVector returns m * v.
func (m *Matrix3[T]) MulVector(v Vector3[T]) Vector3[T] {
	return Vector3[T]{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Mul returns m * o.
func (m *Matrix3[T]) Mul(o *Matrix3[T]) Matrix3[T] {
	var res Matrix3[T]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			res[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j] + m[i][2]*o[2][j]
		}
	}
	return res
}

// MatrixMultiply multiplies the matrices left to right.
func MatrixMultiply[T constraints.Float](matrices ...*Matrix3[T]) Matrix3[T] {
	res := Identity3[T]()
	for _, m := range matrices {
		if m == nil {
			continue
		}
		res = res.Mul(m)
	}
	return res
}

func (m *Matrix3[T]) Transpose() Matrix3[T] {
	var res Matrix3[T]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			res[j][i] = m[i][j]
		}
	}
	return res
}

func (m *Matrix3[T]) Determinant() T {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Inverse via the adjugate. Errors with ErrSingularMatrix if det is zero.
func (m *Matrix3[T]) Inverse() (Matrix3[T], error) {
	det := m.Determinant()
	if det == 0 {
		return Matrix3[T]{}, ErrSingularMatrix
	}
	invDet := 1 / det

	var res Matrix3[T]
	res[0][0] = (m[1][1]*m[2][2] - m[1][2]*m[2][1]) * invDet
	res[0][1] = (m[0][2]*m[2][1] - m[0][1]*m[2][2]) * invDet
	res[0][2] = (m[0][1]*m[1][2] - m[0][2]*m[1][1]) * invDet
	res[1][0] = (m[1][2]*m[2][0] - m[1][0]*m[2][2]) * invDet
	res[1][1] = (m[0][0]*m[2][2] - m[0][2]*m[2][0]) * invDet
	res[1][2] = (m[0][2]*m[1][0] - m[0][0]*m[1][2]) * invDet
	res[2][0] = (m[1][0]*m[2][1] - m[1][1]*m[2][0]) * invDet
	res[2][1] = (m[0][1]*m[2][0] - m[0][0]*m[2][1]) * invDet
	res[2][2] = (m[0][0]*m[1][1] - m[0][1]*m[1][0]) * invDet
	return res, nil
}

// Row returns row i as a vector.
func (m *Matrix3[T]) Row(i int) Vector3[T] {
	return Vector3[T]{X: m[i][0], Y: m[i][1], Z: m[i][2]}
}

// Column returns column j as a vector.
func (m *Matrix3[T]) Column(j int) Vector3[T] {
	return Vector3[T]{X: m[0][j], Y: m[1][j], Z: m[2][j]}
}

// ApproxEqual compares element-wise with an absolute tolerance.
func (m *Matrix3[T]) ApproxEqual(o *Matrix3[T], tol T) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if Abs(m[i][j]-o[i][j]) > tol {
				return false
			}
		}
	}
	return true
}

// ToFloat64 widens the matrix, used when deriving matrices in double precision.
func ToFloat64[T constraints.Float](m Matrix3[T]) Matrix3[float64] {
	var res Matrix3[float64]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			res[i][j] = float64(m[i][j])
		}
	}
	return res
}

// ToFloat32 narrows the matrix.
func ToFloat32[T constraints.Float](m Matrix3[T]) Matrix3[float32] {
	var res Matrix3[float32]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			res[i][j] = float32(m[i][j])
		}
	}
	return res
}
