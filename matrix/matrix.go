// Package matrix implements small dense matrices over any scalar type.
//
// Dimensions are fixed when a matrix is constructed. Operations that need
// compatible dimensions check them and panic when they don't, since a
// mismatch is a programming error rather than a runtime condition.
package matrix

import (
	"fmt"
	"strings"

	"github.com/osuushi/geometry/internal/throw"
	"github.com/osuushi/geometry/vector"
)

// Matrix is an immutable row-major grid. The zero value is a 0×0 matrix.
type Matrix[T vector.Scalar] struct {
	rows, cols int
	data       []T
}

// New builds a rows×cols matrix from values given in row-major order.
func New[T vector.Scalar](rows, cols int, values ...T) Matrix[T] {
	if rows < 0 || cols < 0 {
		throw.Fatalf("invalid matrix dimensions %dx%d", rows, cols)
	}
	if len(values) != rows*cols {
		throw.Fatalf("expected %d values for a %dx%d matrix, got %d", rows*cols, rows, cols, len(values))
	}
	data := make([]T, len(values))
	copy(data, values)
	return Matrix[T]{rows, cols, data}
}

// FromRows builds a matrix from a slice of equal length rows.
func FromRows[T vector.Scalar](rows [][]T) Matrix[T] {
	if len(rows) == 0 {
		return Matrix[T]{}
	}
	cols := len(rows[0])
	data := make([]T, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			throw.Fatalf("row %d has %d columns, expected %d", i, len(row), cols)
		}
		data = append(data, row...)
	}
	return Matrix[T]{len(rows), cols, data}
}

func Zero[T vector.Scalar](rows, cols int) Matrix[T] {
	return New(rows, cols, make([]T, rows*cols)...)
}

func Identity[T vector.Scalar](n int) Matrix[T] {
	m := Zero[T](n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m
}

func (m Matrix[T]) Rows() int { return m.rows }
func (m Matrix[T]) Cols() int { return m.cols }

func (m Matrix[T]) IsSquare() bool { return m.rows == m.cols }

func (m Matrix[T]) At(row, col int) T {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		throw.Fatalf("index (%d, %d) out of range for %dx%d matrix", row, col, m.rows, m.cols)
	}
	return m.data[row*m.cols+col]
}

// Row returns a copy of the given row.
func (m Matrix[T]) Row(row int) []T {
	result := make([]T, m.cols)
	for col := range result {
		result[col] = m.At(row, col)
	}
	return result
}

// Build a new matrix of the same shape by computing every element.
func (m Matrix[T]) generate(fn func(row, col int) T) Matrix[T] {
	return generate(m.rows, m.cols, fn)
}

func generate[T vector.Scalar](rows, cols int, fn func(row, col int) T) Matrix[T] {
	data := make([]T, rows*cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			data[row*cols+col] = fn(row, col)
		}
	}
	return Matrix[T]{rows, cols, data}
}

func (m Matrix[T]) assertSameShape(other Matrix[T], op string) {
	if m.rows != other.rows || m.cols != other.cols {
		throw.Fatalf("cannot %s %dx%d and %dx%d matrices", op, m.rows, m.cols, other.rows, other.cols)
	}
}

func (m Matrix[T]) assertSquare(op string) {
	if !m.IsSquare() {
		throw.Fatalf("cannot take %s of non-square %dx%d matrix", op, m.rows, m.cols)
	}
}

func (m Matrix[T]) Add(other Matrix[T]) Matrix[T] {
	m.assertSameShape(other, "add")
	return m.generate(func(row, col int) T { return m.At(row, col) + other.At(row, col) })
}

func (m Matrix[T]) Sub(other Matrix[T]) Matrix[T] {
	m.assertSameShape(other, "subtract")
	return m.generate(func(row, col int) T { return m.At(row, col) - other.At(row, col) })
}

func (m Matrix[T]) Scale(k T) Matrix[T] {
	return m.generate(func(row, col int) T { return m.At(row, col) * k })
}

// Mul computes the matrix product m×other.
func (m Matrix[T]) Mul(other Matrix[T]) Matrix[T] {
	if m.cols != other.rows {
		throw.Fatalf("cannot multiply %dx%d by %dx%d matrix", m.rows, m.cols, other.rows, other.cols)
	}
	return generate(m.rows, other.cols, func(row, col int) T {
		var sum T
		for k := 0; k < m.cols; k++ {
			sum += m.At(row, k) * other.At(k, col)
		}
		return sum
	})
}

func (m Matrix[T]) Transpose() Matrix[T] {
	return generate(m.cols, m.rows, func(row, col int) T { return m.At(col, row) })
}

func (m Matrix[T]) Equal(other Matrix[T]) bool {
	return m.ApproxEqual(other, 0)
}

// ApproxEqual compares elementwise within eps. Matrices of different shapes
// are never equal.
func (m Matrix[T]) ApproxEqual(other Matrix[T], eps T) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := range m.data {
		if !vector.Equal(m.data[i], other.data[i], eps) {
			return false
		}
	}
	return true
}

func (m Matrix[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for row := 0; row < m.rows; row++ {
		if row > 0 {
			sb.WriteString("; ")
		}
		for col := 0; col < m.cols; col++ {
			if col > 0 {
				sb.WriteString(" ")
			}
			fmt.Fprint(&sb, m.At(row, col))
		}
	}
	sb.WriteString("]")
	return sb.String()
}
