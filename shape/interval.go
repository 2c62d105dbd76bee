package shape

import (
	"fmt"

	"github.com/osuushi/geometry/vector"
)

// Interval is the half-open range [Lower, Upper). It is empty when Lower >=
// Upper.
type Interval[T vector.Scalar] struct {
	Lower, Upper T
}

func NewInterval[T vector.Scalar](lower, upper T) Interval[T] {
	return Interval[T]{lower, upper}
}

func (i Interval[T]) Size() T {
	return i.Upper - i.Lower
}

func (i Interval[T]) Empty() bool {
	return i.Lower >= i.Upper
}

func (i Interval[T]) Contains(value T) bool {
	return between(value, i.Lower, i.Upper)
}

// ContainsInterval reports whether every value of other is in i. An empty
// interval is contained by anything.
func (i Interval[T]) ContainsInterval(other Interval[T]) bool {
	if other.Empty() {
		return true
	}
	return i.Lower <= other.Lower && other.Upper <= i.Upper
}

// Intersects reports whether the two intervals share any value.
func (i Interval[T]) Intersects(other Interval[T]) bool {
	return !i.Intersection(other).Empty()
}

// Union is the smallest interval containing both. Empty operands are
// ignored.
func (i Interval[T]) Union(other Interval[T]) Interval[T] {
	if i.Empty() {
		return other
	}
	if other.Empty() {
		return i
	}
	return Interval[T]{min(i.Lower, other.Lower), max(i.Upper, other.Upper)}
}

// Intersection of the two intervals, which may be empty.
func (i Interval[T]) Intersection(other Interval[T]) Interval[T] {
	return Interval[T]{max(i.Lower, other.Lower), min(i.Upper, other.Upper)}
}

func (i Interval[T]) String() string {
	return fmt.Sprintf("[%v, %v)", i.Lower, i.Upper)
}

// Half-open test, lower <= value < upper
func between[T vector.Scalar](value, lower, upper T) bool {
	return lower <= value && value < upper
}
