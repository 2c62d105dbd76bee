// Package algo implements the geometric algorithms over the shape types:
// projection, intersection and distance for linear shapes, triangle centers
// and circles, Douglas–Peucker simplification, Sutherland–Hodgman clipping,
// and monotone polygon triangulation.
//
// Functions that can meet degenerate input (parallel lines, coincident
// points) take an explicit epsilon and report failure with a false ok value.
// Only precondition violations panic.
//
// Parameters along a shape are float64 for every scalar type. Constructed
// points are computed in float64 and converted back with vector.FromFloat, so
// integer coordinates round to the nearest lattice point.
package algo

import (
	"math"


	"github.com/osuushi/geometry/shape"
	"github.com/osuushi/geometry/vector"
)

// LineIntersectionParameters solves a0 + ta*(a1-a0) = b0 + tb*(b1-b0) for the
// lines through a0,a1 and b0,b1. It fails when the directions are parallel
// within eps. Collinear lines also fail; see Coincident to tell them apart.
func LineIntersectionParameters[T vector.Scalar](a0, a1, b0, b1 vector.Vec2[T], eps T) (ta, tb float64, ok bool) {
	dirA := a1.Sub(a0)
	dirB := b1.Sub(b0)
	denominator := dirA.Cross(dirB)
	if vector.Abs(denominator) <= eps {
		return 0, 0, false
	}
	diff := b0.Sub(a0)
	d := float64(denominator)
	return float64(diff.Cross(dirB)) / d, float64(diff.Cross(dirA)) / d, true
}

// Intersection returns the point where the two shapes cross. Both parameters
// must be on their respective shapes.
func Intersection[T vector.Scalar](s1, s2 shape.Linear[vector.Vec2[T], T], eps T) (vector.Vec2[T], bool) {
	t1, t2, ok := LineIntersectionParameters(s1.P0, s1.P1, s2.P0, s2.P1, eps)
	if !ok || !shape.ContainsParameter(s1.Kind, t1) || !shape.ContainsParameter(s2.Kind, t2) {
		return vector.Vec2[T]{}, false
	}
	return vector.LerpFloat[vector.Vec2[T], T](s1.P0, s1.P1, t1), true
}

// Intersects is Intersection without building the point.
func Intersects[T vector.Scalar](s1, s2 shape.Linear[vector.Vec2[T], T], eps T) bool {
	t1, t2, ok := LineIntersectionParameters(s1.P0, s1.P1, s2.P0, s2.P1, eps)
	return ok && shape.ContainsParameter(s1.Kind, t1) && shape.ContainsParameter(s2.Kind, t2)
}

// Coincident reports whether the supporting lines of the two shapes are the
// same line, within eps. This is the case LineIntersectionParameters cannot
// distinguish from parallel lines.
func Coincident[T vector.Scalar](s1, s2 shape.Linear[vector.Vec2[T], T], eps T) bool {
	if vector.Abs(s1.Direction().Cross(s2.Direction())) > eps {
		return false
	}
	return vector.Abs(vector.Orientation(s1.P0, s1.P1, s2.P0)) <= eps &&
		vector.Abs(vector.Orientation(s1.P0, s1.P1, s2.P1)) <= eps
}

// Parameter of the foot of the perpendicular from point to l's supporting
// line. Fails if l has no direction.
func projectionParameter[V vector.Vector[V, T], T vector.Scalar](point V, l shape.Linear[V, T], eps T) (float64, bool) {
	direction := l.Direction()
	norm := vector.Norm[V, T](direction)
	if norm <= eps {
		return 0, false
	}
	return float64(direction.Dot(point.Sub(l.P0))) / float64(norm), true
}

// Projection returns the foot of the perpendicular from point onto l. It
// fails when the foot is not on the shape, e.g. beyond either end of a
// segment, or when l is degenerate within eps.
func Projection[V vector.Vector[V, T], T vector.Scalar](point V, l shape.Linear[V, T], eps T) (V, bool) {
	t, ok := projectionParameter(point, l, eps)
	if !ok || !shape.ContainsParameter(l.Kind, t) {
		var zero V
		return zero, false
	}
	return vector.LerpFloat[V, T](l.P0, l.P1, t), true
}

// Squared distance from point to the closest point of l. Where there is no
// perpendicular foot on the shape, the nearest end is used instead.
func distanceSquared[V vector.Vector[V, T], T vector.Scalar](point V, l shape.Linear[V, T], eps T) float64 {
	t, ok := projectionParameter(point, l, eps)
	switch {
	case !ok:
		t = 0
	case !shape.ContainsParameter(l.Kind, t):
		t = math.Min(math.Max(t, 0), 1)
	}
	var sum float64
	for i := 0; i < point.Dim(); i++ {
		from, to := float64(l.P0.At(i)), float64(l.P1.At(i))
		d := float64(point.At(i)) - (from + t*(to-from))
		sum += d * d
	}
	return sum
}

// Distance from point to the nearest point of l.
func Distance[V vector.Vector[V, T], T vector.Scalar](point V, l shape.Linear[V, T], eps T) T {
	return vector.FromFloat[T](math.Sqrt(distanceSquared(point, l, eps)))
}

// DistanceSquared is Distance without the square root.
func DistanceSquared[V vector.Vector[V, T], T vector.Scalar](point V, l shape.Linear[V, T], eps T) T {
	return vector.FromFloat[T](distanceSquared(point, l, eps))
}
