package vector

import (
	"fmt"
	"math"

	"github.com/osuushi/geometry/internal/throw"
)

type Vec3[T Scalar] struct {
	X, Y, Z T
}

func V3[T Scalar](x, y, z T) Vec3[T] {
	return Vec3[T]{x, y, z}
}

func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3[T]) Scale(k T) Vec3[T]     { return Vec3[T]{v.X * k, v.Y * k, v.Z * k} }
func (v Vec3[T]) Div(k T) Vec3[T]       { return Vec3[T]{v.X / k, v.Y / k, v.Z / k} }
func (v Vec3[T]) Neg() Vec3[T]          { return Vec3[T]{-v.X, -v.Y, -v.Z} }
func (v Vec3[T]) Dot(o Vec3[T]) T       { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3[T]) Dim() int              { return 3 }

func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Angle is the unsigned angle between v and o, in [0, π]. It is NaN if either
// vector is zero.
func (v Vec3[T]) Angle(o Vec3[T]) float64 {
	lengths := math.Sqrt(float64(v.Dot(v))) * math.Sqrt(float64(o.Dot(o)))
	cos := float64(v.Dot(o)) / lengths
	// Rounding can push parallel vectors just outside acos' domain
	return math.Acos(math.Max(-1, math.Min(1, cos)))
}

func (v Vec3[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	throw.Fatalf("component index %d out of range for Vec3", i)
	return 0
}

func (v Vec3[T]) With(i int, value T) Vec3[T] {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	case 2:
		v.Z = value
	default:
		throw.Fatalf("component index %d out of range for Vec3", i)
	}
	return v
}

// Drop the z component.
func (v Vec3[T]) XY() Vec2[T] {
	return Vec2[T]{v.X, v.Y}
}

func (v Vec3[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}
