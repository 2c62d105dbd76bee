package shape

import (
	"fmt"
	"math"

	"github.com/osuushi/geometry/vector"
)

// Circular is a circle when V is two dimensional, and a sphere when it is
// three dimensional.
type Circular[V vector.Vector[V, T], T vector.Scalar] struct {
	Center V
	Radius T
}

func NewCircular[V vector.Vector[V, T], T vector.Scalar](center V, radius T) Circular[V, T] {
	return Circular[V, T]{center, radius}
}

func (c Circular[V, T]) Diameter() T {
	return 2 * c.Radius
}

// Contains reports whether p lies inside or on the boundary.
func (c Circular[V, T]) Contains(p V) bool {
	return vector.DistanceSquared[V, T](p, c.Center) <= c.Radius*c.Radius
}

// BoundingBox spans one radius either side of the center on every axis.
func (c Circular[V, T]) BoundingBox() BoundingBox[V, T] {
	box := BoundingBox[V, T]{c.Center, c.Center}
	for i := 0; i < c.Center.Dim(); i++ {
		box.Min = box.Min.With(i, c.Center.At(i)-c.Radius)
		box.Max = box.Max.With(i, c.Center.At(i)+c.Radius)
	}
	return box
}

// Measure is the area of a circle or the volume of a sphere. Other dimensions
// return NaN.
func (c Circular[V, T]) Measure() float64 {
	r := float64(c.Radius)
	switch c.Center.Dim() {
	case 2:
		return math.Pi * r * r
	case 3:
		return 4.0 / 3.0 * math.Pi * r * r * r
	}
	return math.NaN()
}

func (c Circular[V, T]) String() string {
	return fmt.Sprintf("Circular{%v, r=%v}", c.Center, c.Radius)
}
