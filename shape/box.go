package shape

import (
	"fmt"

	"github.com/osuushi/geometry/vector"
)

// BoundingBox is the product of one half-open Interval per axis, stored as
// its two extreme corners.
type BoundingBox[V vector.Vector[V, T], T vector.Scalar] struct {
	Min, Max V
}

func NewBoundingBox[V vector.Vector[V, T], T vector.Scalar](min, max V) BoundingBox[V, T] {
	return BoundingBox[V, T]{min, max}
}

// BoundsOf is the smallest box whose closure contains all the points. Since
// boxes are half-open, points on the maximum faces are not Contained. With no
// points, the result is empty.
func BoundsOf[V vector.Vector[V, T], T vector.Scalar](points ...V) BoundingBox[V, T] {
	if len(points) == 0 {
		return BoundingBox[V, T]{}
	}
	box := BoundingBox[V, T]{points[0], points[0]}
	for _, p := range points[1:] {
		box.Min = vector.Min[V, T](box.Min, p)
		box.Max = vector.Max[V, T](box.Max, p)
	}
	return box
}

// Assemble a box from one interval per axis.
func boxFromAxes[V vector.Vector[V, T], T vector.Scalar](axes func(i int) Interval[T]) BoundingBox[V, T] {
	var box BoundingBox[V, T]
	for i := 0; i < box.Min.Dim(); i++ {
		axis := axes(i)
		box.Min = box.Min.With(i, axis.Lower)
		box.Max = box.Max.With(i, axis.Upper)
	}
	return box
}

func (b BoundingBox[V, T]) Dim() int {
	return b.Min.Dim()
}

// Axis returns the interval spanned along axis i.
func (b BoundingBox[V, T]) Axis(i int) Interval[T] {
	return Interval[T]{b.Min.At(i), b.Max.At(i)}
}

func (b BoundingBox[V, T]) Size() V {
	return b.Max.Sub(b.Min)
}

// Center rounds to the nearest value for integer scalars.
func (b BoundingBox[V, T]) Center() V {
	return vector.LerpFloat[V, T](b.Min, b.Max, 0.5)
}

// Empty if any axis is empty.
func (b BoundingBox[V, T]) Empty() bool {
	for i := 0; i < b.Dim(); i++ {
		if b.Axis(i).Empty() {
			return true
		}
	}
	return false
}

func (b BoundingBox[V, T]) Contains(point V) bool {
	for i := 0; i < b.Dim(); i++ {
		if !b.Axis(i).Contains(point.At(i)) {
			return false
		}
	}
	return true
}

func (b BoundingBox[V, T]) ContainsBox(other BoundingBox[V, T]) bool {
	if other.Empty() {
		return true
	}
	for i := 0; i < b.Dim(); i++ {
		if !b.Axis(i).ContainsInterval(other.Axis(i)) {
			return false
		}
	}
	return true
}

func (b BoundingBox[V, T]) Intersects(other BoundingBox[V, T]) bool {
	for i := 0; i < b.Dim(); i++ {
		if !b.Axis(i).Intersects(other.Axis(i)) {
			return false
		}
	}
	return true
}

// Union is the smallest box containing both. Empty operands are ignored.
func (b BoundingBox[V, T]) Union(other BoundingBox[V, T]) BoundingBox[V, T] {
	if b.Empty() {
		return other
	}
	if other.Empty() {
		return b
	}
	return boxFromAxes[V, T](func(i int) Interval[T] {
		return b.Axis(i).Union(other.Axis(i))
	})
}

// Intersection of the two boxes, which may be empty.
func (b BoundingBox[V, T]) Intersection(other BoundingBox[V, T]) BoundingBox[V, T] {
	return boxFromAxes[V, T](func(i int) Interval[T] {
		return b.Axis(i).Intersection(other.Axis(i))
	})
}

// Corners enumerates the 2^D vertices of the box. Bit i of a corner's index
// selects the maximum along axis i.
func (b BoundingBox[V, T]) Corners() []V {
	dim := b.Dim()
	corners := make([]V, 1<<dim)
	for mask := range corners {
		corner := b.Min
		for i := 0; i < dim; i++ {
			if mask&(1<<i) != 0 {
				corner = corner.With(i, b.Max.At(i))
			}
		}
		corners[mask] = corner
	}
	return corners
}

func (b BoundingBox[V, T]) String() string {
	return fmt.Sprintf("Box{%v, %v}", b.Min, b.Max)
}
