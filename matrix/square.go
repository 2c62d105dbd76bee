package matrix

import (
	"github.com/osuushi/geometry/internal/throw"
	"github.com/osuushi/geometry/vector"
)

// Minor returns the matrix with the given row and column removed.
func (m Matrix[T]) Minor(row, col int) Matrix[T] {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		throw.Fatalf("minor (%d, %d) out of range for %dx%d matrix", row, col, m.rows, m.cols)
	}
	return generate(m.rows-1, m.cols-1, func(r, c int) T {
		if r >= row {
			r++
		}
		if c >= col {
			c++
		}
		return m.At(r, c)
	})
}

// Determinant uses closed forms up to 3×3, and Laplace expansion along the
// first row beyond that. The expansion costs O(n!), which is fine for the
// sizes geometry uses.
func (m Matrix[T]) Determinant() T {
	m.assertSquare("determinant")
	d := m.data
	switch m.rows {
	case 0:
		return 1
	case 1:
		return d[0]
	case 2:
		return d[0]*d[3] - d[1]*d[2]
	case 3:
		return d[0]*(d[4]*d[8]-d[5]*d[7]) -
			d[1]*(d[3]*d[8]-d[5]*d[6]) +
			d[2]*(d[3]*d[7]-d[4]*d[6])
	}

	var det T
	for col := 0; col < m.cols; col++ {
		term := m.At(0, col) * m.Minor(0, col).Determinant()
		if col%2 == 0 {
			det += term
		} else {
			det -= term
		}
	}
	return det
}

// Cofactor is the signed minor determinant for the element at (row, col).
func (m Matrix[T]) Cofactor(row, col int) T {
	m.assertSquare("cofactor")
	minorDet := m.Minor(row, col).Determinant()
	if (row+col)%2 == 1 {
		return -minorDet
	}
	return minorDet
}

// Adjugate is the transpose of the cofactor matrix.
func (m Matrix[T]) Adjugate() Matrix[T] {
	m.assertSquare("adjugate")
	if m.rows == 1 {
		return Identity[T](1)
	}
	return m.generate(func(row, col int) T { return m.Cofactor(col, row) })
}

// Invert returns the inverse of a square matrix, or false if the matrix is
// singular. For integer types the division truncates, so only unimodular
// integer matrices invert exactly.
func (m Matrix[T]) Invert() (Matrix[T], bool) {
	m.assertSquare("inverse")
	det := m.Determinant()
	if det == 0 {
		return Matrix[T]{}, false
	}
	adjugate := m.Adjugate()
	return adjugate.generate(func(row, col int) T { return adjugate.At(row, col) / det }), true
}

// Trace is the sum of the diagonal.
func (m Matrix[T]) Trace() T {
	m.assertSquare("trace")
	var sum T
	for i := 0; i < m.rows; i++ {
		sum += m.At(i, i)
	}
	return sum
}

// Determinant, Invert and Transpose as functions, for symmetry with the vector
// package.

func Determinant[T vector.Scalar](m Matrix[T]) T { return m.Determinant() }

func Invert[T vector.Scalar](m Matrix[T]) (Matrix[T], bool) { return m.Invert() }

func Transpose[T vector.Scalar](m Matrix[T]) Matrix[T] { return m.Transpose() }
