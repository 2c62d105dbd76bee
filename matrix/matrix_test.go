package matrix

import (
	"math"
	"testing"

	"github.com/osuushi/geometry/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	m := New(2, 3, 1, 2, 3, 4, 5, 6)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, 6, m.At(1, 2))
	assert.Equal(t, []int{4, 5, 6}, m.Row(1))
	assert.True(t, m.Equal(FromRows([][]int{{1, 2, 3}, {4, 5, 6}})))

	assert.Panics(t, func() { New(2, 2, 1, 2, 3) })
	assert.Panics(t, func() { FromRows([][]int{{1, 2}, {3}}) })
	assert.Panics(t, func() { m.At(2, 0) })

	t.Run("values are copied", func(t *testing.T) {
		values := []float64{1, 2, 3, 4}
		m := New(2, 2, values...)
		values[0] = 100
		assert.Equal(t, 1.0, m.At(0, 0))
	})
}

func TestArithmetic(t *testing.T) {
	a := New(2, 2, 1, 2, 3, 4)
	b := New(2, 2, 5, 6, 7, 8)
	assert.True(t, New(2, 2, 6, 8, 10, 12).Equal(a.Add(b)))
	assert.True(t, New(2, 2, -4, -4, -4, -4).Equal(a.Sub(b)))
	assert.True(t, New(2, 2, 2, 4, 6, 8).Equal(a.Scale(2)))
	assert.True(t, New(2, 2, 19, 22, 43, 50).Equal(a.Mul(b)))

	c := New(2, 3, 1, 0, 2, 0, 1, 3)
	product := a.Mul(c)
	assert.Equal(t, 2, product.Rows())
	assert.Equal(t, 3, product.Cols())
	assert.True(t, New(2, 3, 1, 2, 8, 3, 4, 18).Equal(product))

	assert.Panics(t, func() { c.Mul(a) })
	assert.Panics(t, func() { a.Add(c) })
}

func TestTranspose(t *testing.T) {
	m := New(2, 3, 1, 2, 3, 4, 5, 6)
	transposed := m.Transpose()
	assert.Equal(t, 3, transposed.Rows())
	assert.True(t, New(3, 2, 1, 4, 2, 5, 3, 6).Equal(transposed))

	for _, m := range []Matrix[float64]{
		New(1, 1, 7.0),
		New(2, 3, 1, 2, 3, 4, 5, 6.0),
		New(3, 3, 0.5, -1, 2, 3, 4, 5, 6, 7, 8.25),
	} {
		assert.True(t, m.Equal(Transpose(Transpose(m))), "transpose round trip of %v", m)
	}
}

func TestDeterminant(t *testing.T) {
	assert.Equal(t, 4, New(1, 1, 4).Determinant())
	assert.Equal(t, -2, New(2, 2, 1, 2, 3, 4).Determinant())
	assert.Equal(t, -3, New(3, 3, 1, 2, 3, 4, 5, 6, 7, 8, 10).Determinant())
	assert.Equal(t, 0, New(3, 3, 1, 2, 3, 4, 5, 6, 7, 8, 9).Determinant())

	t.Run("laplace expansion", func(t *testing.T) {
		// Upper triangular, so the determinant is the product of the diagonal
		m := New(4, 4,
			2, 1, 3, 4,
			0, 3, 5, 1,
			0, 0, 4, 7,
			0, 0, 0, 5,
		)
		assert.Equal(t, 120, m.Determinant())

		m = New(4, 4,
			1, 0, 2, -1,
			3, 0, 0, 5,
			2, 1, 4, -3,
			1, 0, 5, 0,
		)
		assert.Equal(t, 30, Determinant(m))

		assert.Equal(t, 120.0, Identity[float64](5).Scale(2).Mul(New(5, 5,
			1, 0, 0, 0, 0,
			0, 1, 0, 0, 0,
			0, 0, 1, 0, 0,
			0, 0, 0, 1, 0,
			0, 0, 0, 0, 3.75,
		)).Determinant())
	})

	assert.Panics(t, func() { New(2, 3, 1, 2, 3, 4, 5, 6).Determinant() })
}

func TestMinor(t *testing.T) {
	m := New(3, 3, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	assert.True(t, New(2, 2, 5, 6, 8, 9).Equal(m.Minor(0, 0)))
	assert.True(t, New(2, 2, 1, 3, 7, 9).Equal(m.Minor(1, 1)))
	assert.True(t, New(2, 2, 1, 2, 4, 5).Equal(m.Minor(2, 2)))
	assert.Panics(t, func() { m.Minor(3, 0) })
}

func TestInvert(t *testing.T) {
	t.Run("singular", func(t *testing.T) {
		_, ok := New(2, 2, 1.0, 2, 2, 4).Invert()
		assert.False(t, ok)
		_, ok = Invert(New(3, 3, 1.0, 2, 3, 4, 5, 6, 7, 8, 9))
		assert.False(t, ok)
	})

	t.Run("2x2", func(t *testing.T) {
		inverse, ok := New(2, 2, 4.0, 7, 2, 6).Invert()
		require.True(t, ok)
		assert.True(t, New(2, 2, 0.6, -0.7, -0.2, 0.4).ApproxEqual(inverse, 1e-12))
	})

	t.Run("1x1", func(t *testing.T) {
		inverse, ok := New(1, 1, 4.0).Invert()
		require.True(t, ok)
		assert.Equal(t, 0.25, inverse.At(0, 0))
	})

	t.Run("round trip", func(t *testing.T) {
		for _, m := range []Matrix[float64]{
			New(2, 2, 4.0, 7, 2, 6),
			New(3, 3, 2.0, -1, 0, -1, 2, -1, 0, -1, 2),
			New(4, 4,
				1, 0, 2, -1,
				3, 0, 0, 5,
				2, 1, 4, -3,
				1, 0, 5, 0.0,
			),
			Rotation2(math.Pi / 7),
		} {
			inverse, ok := m.Invert()
			require.True(t, ok)
			assert.True(t, Identity[float64](m.Rows()).ApproxEqual(m.Mul(inverse), 1e-9), "m*m⁻¹ for %v", m)

			roundTrip, ok := inverse.Invert()
			require.True(t, ok)
			assert.True(t, m.ApproxEqual(roundTrip, 1e-9), "inverse round trip of %v", m)
		}
	})
}

func TestTransform(t *testing.T) {
	rotated := TransformVec2(Rotation2(math.Pi/2), vector.V2(1.0, 0.0))
	assert.True(t, vector.ApproxEqual(vector.V2(0.0, 1.0), rotated, 1e-12))

	translated := TransformVec2(Translation2(vector.V2(3, -2)), vector.V2(1, 1))
	assert.Equal(t, vector.V2(4, -1), translated)

	scale := New(4, 4,
		2, 0, 0, 1,
		0, 2, 0, 0,
		0, 0, 2, 0,
		0, 0, 0, 1,
	)
	assert.Equal(t, vector.V3(3, 2, 2), TransformVec3(scale, vector.V3(1, 1, 1)))
	assert.Equal(t, vector.V3(1, 2, 3), TransformVec3(Identity[int](3), vector.V3(1, 2, 3)))

	assert.Panics(t, func() { TransformVec2(Identity[int](4), vector.V2(1, 1)) })
}

func TestString(t *testing.T) {
	assert.Equal(t, "[1 2; 3 4]", New(2, 2, 1, 2, 3, 4).String())
}
