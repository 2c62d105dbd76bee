package vector

import (
	"fmt"
	"math"

	"github.com/osuushi/geometry/internal/throw"
)

type Vec2[T Scalar] struct {
	X, Y T
}

func V2[T Scalar](x, y T) Vec2[T] {
	return Vec2[T]{x, y}
}

func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X + o.X, v.Y + o.Y} }
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X - o.X, v.Y - o.Y} }
func (v Vec2[T]) Scale(k T) Vec2[T]     { return Vec2[T]{v.X * k, v.Y * k} }
func (v Vec2[T]) Div(k T) Vec2[T]       { return Vec2[T]{v.X / k, v.Y / k} }
func (v Vec2[T]) Neg() Vec2[T]          { return Vec2[T]{-v.X, -v.Y} }
func (v Vec2[T]) Dot(o Vec2[T]) T       { return v.X*o.X + v.Y*o.Y }
func (v Vec2[T]) Dim() int              { return 2 }

// Cross is the z component of the 3D cross product. Its sign gives the
// orientation of o relative to v: positive when o is counterclockwise of v.
func (v Vec2[T]) Cross(o Vec2[T]) T {
	return v.X*o.Y - v.Y*o.X
}

// Perp is v rotated a quarter turn counterclockwise.
func (v Vec2[T]) Perp() Vec2[T] {
	return Vec2[T]{-v.Y, v.X}
}

// Angle is the signed angle from v to o, in (-π, π].
func (v Vec2[T]) Angle(o Vec2[T]) float64 {
	return math.Atan2(float64(v.Cross(o)), float64(v.Dot(o)))
}

func (v Vec2[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	throw.Fatalf("component index %d out of range for Vec2", i)
	return 0
}

func (v Vec2[T]) With(i int, value T) Vec2[T] {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	default:
		throw.Fatalf("component index %d out of range for Vec2", i)
	}
	return v
}

// Lift into 3D with the given z.
func (v Vec2[T]) Vec3(z T) Vec3[T] {
	return Vec3[T]{v.X, v.Y, z}
}

// Float converts the components to float64.
func (v Vec2[T]) Float() Vec2[float64] {
	return Vec2[float64]{float64(v.X), float64(v.Y)}
}

// FromFloat2 converts back from float64 with FromFloat.
func FromFloat2[T Scalar](v Vec2[float64]) Vec2[T] {
	return Vec2[T]{FromFloat[T](v.X), FromFloat[T](v.Y)}
}

func (v Vec2[T]) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}

// Orientation of c relative to the directed line a→b. Positive when c is to
// the left (counterclockwise), negative to the right, zero when collinear.
func Orientation[T Scalar](a, b, c Vec2[T]) T {
	return b.Sub(a).Cross(c.Sub(a))
}
