// Package vector implements fixed-dimension vectors over any integer or
// floating point scalar type.
//
// The dimension is part of the type: Vec2 and Vec3 are distinct types, and
// dimension-generic code is written against the Vector constraint. All
// operations are pure, returning new values.
package vector

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar is the constraint for vector components.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Tolerance is a reasonable epsilon for float64 geometry of unit scale.
const Tolerance = 1e-6

// Vector is satisfied by the fixed-dimension vector types. V is the vector
// type itself, so that arithmetic stays in the same dimension.
type Vector[V any, T Scalar] interface {
	comparable
	Add(V) V
	Sub(V) V
	Scale(T) V
	Div(T) V
	Dot(V) T
	// Number of components
	Dim() int
	At(i int) T
	// Copy of the vector with component i replaced
	With(i int, value T) V
}

func Dot[V Vector[V, T], T Scalar](a, b V) T {
	return a.Dot(b)
}

// Squared length.
func Norm[V Vector[V, T], T Scalar](a V) T {
	return a.Dot(a)
}

func Length[V Vector[V, T], T Scalar](a V) T {
	return FromFloat[T](math.Sqrt(float64(Norm[V, T](a))))
}

// Normalize scales a to unit length. The zero vector has no direction, so it
// is returned unchanged.
func Normalize[V Vector[V, T], T Scalar](a V) V {
	length := Length[V, T](a)
	if length == 0 {
		return a
	}
	return a.Div(length)
}

// Projection of a onto b. The caller must guard against a zero b; see
// ProjectionOk.
func Projection[V Vector[V, T], T Scalar](a, b V) V {
	var zero V
	return LerpFloat[V, T](zero, b, float64(b.Dot(a))/float64(Norm[V, T](b)))
}

// ProjectionOk is Projection, reporting false instead of dividing by zero.
func ProjectionOk[V Vector[V, T], T Scalar](a, b V) (V, bool) {
	if Norm[V, T](b) == 0 {
		var zero V
		return zero, false
	}
	return Projection[V, T](a, b), true
}

// Rejection of a from b: the component of a perpendicular to b.
func Rejection[V Vector[V, T], T Scalar](a, b V) V {
	return a.Sub(Projection[V, T](a, b))
}

func Distance[V Vector[V, T], T Scalar](a, b V) T {
	return Length[V, T](a.Sub(b))
}

func DistanceSquared[V Vector[V, T], T Scalar](a, b V) T {
	return Norm[V, T](a.Sub(b))
}

// Lerp returns a + t*(b-a).
func Lerp[V Vector[V, T], T Scalar](a, b V, t T) V {
	return a.Add(b.Sub(a).Scale(t))
}

// LerpFloat is Lerp with a float64 parameter. Components are interpolated in
// float64, then converted with FromFloat.
func LerpFloat[V Vector[V, T], T Scalar](a, b V, t float64) V {
	result := a
	for i := 0; i < a.Dim(); i++ {
		from, to := float64(a.At(i)), float64(b.At(i))
		result = result.With(i, FromFloat[T](from+t*(to-from)))
	}
	return result
}

// IsInteger reports whether T is one of the integer types.
func IsInteger[T Scalar]() bool {
	half := 0.5
	return T(half) == 0
}

// FromFloat converts x to T. Integer types round to the nearest value rather
// than truncating toward zero.
func FromFloat[T Scalar](x float64) T {
	if IsInteger[T]() {
		return T(math.Round(x))
	}
	return T(x)
}

// ApproxEqual compares componentwise within eps.
func ApproxEqual[V Vector[V, T], T Scalar](a, b V, eps T) bool {
	for i := 0; i < a.Dim(); i++ {
		if Abs(a.At(i)-b.At(i)) > eps {
			return false
		}
	}
	return true
}

// Componentwise minimum.
func Min[V Vector[V, T], T Scalar](a, b V) V {
	for i := 0; i < a.Dim(); i++ {
		if b.At(i) < a.At(i) {
			a = a.With(i, b.At(i))
		}
	}
	return a
}

// Componentwise maximum.
func Max[V Vector[V, T], T Scalar](a, b V) V {
	for i := 0; i < a.Dim(); i++ {
		if b.At(i) > a.At(i) {
			a = a.With(i, b.At(i))
		}
	}
	return a
}

func Abs[T Scalar](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// To compensate for imprecision in floats, equality is tolerance based.
func Equal[T Scalar](a, b, eps T) bool {
	return Abs(a-b) <= eps
}
