// Package shape defines the value types of the geometry toolkit: linear
// shapes, bounding intervals and boxes, polygons and polylines, fixed size
// vertex arrays, and circles/spheres.
//
// Shapes are generic over a vector type V of scalar T, so the same shape
// types serve 2D and 3D. Operations that only make sense in the plane take
// vector.Vec2 explicitly.
package shape

import (
	"fmt"

	"github.com/osuushi/geometry/vector"
)

// Kind selects which parameters along a linear shape are on the shape.
type Kind int

const (
	Line Kind = iota
	Ray
	Segment
)

func (k Kind) String() string {
	switch k {
	case Line:
		return "line"
	case Ray:
		return "ray"
	case Segment:
		return "segment"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ContainsParameter reports whether parameter t is on a shape of kind k.
// Segments are open at both ends, rays are closed at their origin.
func ContainsParameter[T vector.Scalar](k Kind, t T) bool {
	switch k {
	case Segment:
		return 0 < t && t < 1
	case Ray:
		return t >= 0
	}
	return true
}

// Linear is a line, ray or segment through P0 and P1. Parameter t maps to the
// point P0 + t*(P1-P0).
type Linear[V vector.Vector[V, T], T vector.Scalar] struct {
	P0, P1 V
	Kind   Kind
}

func NewLine[V vector.Vector[V, T], T vector.Scalar](p0, p1 V) Linear[V, T] {
	return Linear[V, T]{p0, p1, Line}
}

// A ray starting at p0, passing through p1.
func NewRay[V vector.Vector[V, T], T vector.Scalar](p0, p1 V) Linear[V, T] {
	return Linear[V, T]{p0, p1, Ray}
}

func NewSegment[V vector.Vector[V, T], T vector.Scalar](p0, p1 V) Linear[V, T] {
	return Linear[V, T]{p0, p1, Segment}
}

// WithKind copies the shape as another kind through the same two points.
func (l Linear[V, T]) WithKind(kind Kind) Linear[V, T] {
	l.Kind = kind
	return l
}

func (l Linear[V, T]) ContainsParameter(t T) bool {
	return ContainsParameter(l.Kind, t)
}

func (l Linear[V, T]) Direction() V {
	return l.P1.Sub(l.P0)
}

func (l Linear[V, T]) PointAt(t T) V {
	return vector.Lerp[V, T](l.P0, l.P1, t)
}

// Distance between the two defining points.
func (l Linear[V, T]) Length() T {
	return vector.Distance[V, T](l.P0, l.P1)
}

// Degenerate shapes have coincident defining points, and so no direction.
func (l Linear[V, T]) IsDegenerate() bool {
	return l.P0 == l.P1
}

// Reverse swaps the defining points. For a ray, this changes the origin.
func (l Linear[V, T]) Reverse() Linear[V, T] {
	l.P0, l.P1 = l.P1, l.P0
	return l
}

func (l Linear[V, T]) BoundingBox() BoundingBox[V, T] {
	return BoundsOf[V, T](l.P0, l.P1)
}

func (l Linear[V, T]) String() string {
	return fmt.Sprintf("%s{%v, %v}", l.Kind, l.P0, l.P1)
}

// Perpendicular returns the line through the given point perpendicular to l.
func Perpendicular[T vector.Scalar](l Linear[vector.Vec2[T], T], through vector.Vec2[T]) Linear[vector.Vec2[T], T] {
	return NewLine[vector.Vec2[T], T](through, through.Add(l.Direction().Perp()))
}

// PerpendicularBisector is the line through the midpoint of l's defining
// points, perpendicular to l.
func PerpendicularBisector[T vector.Scalar](l Linear[vector.Vec2[T], T]) Linear[vector.Vec2[T], T] {
	return Perpendicular(l, vector.LerpFloat[vector.Vec2[T], T](l.P0, l.P1, 0.5))
}
