package matrix

import (
	"math"

	"github.com/osuushi/geometry/internal/throw"
	"github.com/osuushi/geometry/vector"
)

// TransformVec2 applies a 2×2 linear transform, or a 3×3 homogeneous affine
// transform where v is treated as (x, y, 1).
func TransformVec2[T vector.Scalar](m Matrix[T], v vector.Vec2[T]) vector.Vec2[T] {
	switch {
	case m.rows == 2 && m.cols == 2:
		return vector.Vec2[T]{
			X: m.At(0, 0)*v.X + m.At(0, 1)*v.Y,
			Y: m.At(1, 0)*v.X + m.At(1, 1)*v.Y,
		}
	case m.rows == 3 && m.cols == 3:
		x := m.At(0, 0)*v.X + m.At(0, 1)*v.Y + m.At(0, 2)
		y := m.At(1, 0)*v.X + m.At(1, 1)*v.Y + m.At(1, 2)
		w := m.At(2, 0)*v.X + m.At(2, 1)*v.Y + m.At(2, 2)
		if w != 1 && w != 0 {
			x, y = x/w, y/w
		}
		return vector.Vec2[T]{X: x, Y: y}
	}
	throw.Fatalf("cannot transform a 2D vector by a %dx%d matrix", m.rows, m.cols)
	return v
}

// TransformVec3 applies a 3×3 linear transform, or a 4×4 homogeneous transform
// where v is treated as (x, y, z, 1).
func TransformVec3[T vector.Scalar](m Matrix[T], v vector.Vec3[T]) vector.Vec3[T] {
	switch {
	case m.rows == 3 && m.cols == 3:
		return vector.Vec3[T]{
			X: m.At(0, 0)*v.X + m.At(0, 1)*v.Y + m.At(0, 2)*v.Z,
			Y: m.At(1, 0)*v.X + m.At(1, 1)*v.Y + m.At(1, 2)*v.Z,
			Z: m.At(2, 0)*v.X + m.At(2, 1)*v.Y + m.At(2, 2)*v.Z,
		}
	case m.rows == 4 && m.cols == 4:
		h := [4]T{v.X, v.Y, v.Z, 1}
		var out [4]T
		for row := range out {
			for col, value := range h {
				out[row] += m.At(row, col) * value
			}
		}
		if out[3] != 1 && out[3] != 0 {
			for i := 0; i < 3; i++ {
				out[i] /= out[3]
			}
		}
		return vector.Vec3[T]{X: out[0], Y: out[1], Z: out[2]}
	}
	throw.Fatalf("cannot transform a 3D vector by a %dx%d matrix", m.rows, m.cols)
	return v
}

// Rotation2 is the 2×2 counterclockwise rotation by angle radians.
func Rotation2(angle float64) Matrix[float64] {
	sin, cos := math.Sincos(angle)
	return New(2, 2,
		cos, -sin,
		sin, cos,
	)
}

// Translation2 is the 3×3 homogeneous translation by offset.
func Translation2[T vector.Scalar](offset vector.Vec2[T]) Matrix[T] {
	return New[T](3, 3,
		1, 0, offset.X,
		0, 1, offset.Y,
		0, 0, 1,
	)
}
