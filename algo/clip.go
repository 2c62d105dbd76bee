package algo

import (
	"github.com/osuushi/geometry/internal/throw"
	"github.com/osuushi/geometry/shape"
	"github.com/osuushi/geometry/vector"
)

// ClipPolygon clips subject against a convex clip polygon using
// Sutherland–Hodgman. The clip polygon must wind counterclockwise, so that
// the left of each of its edges is inside. The result is empty if the
// polygons do not overlap. Consecutive vertices equal within eps are merged,
// so a subject vertex lying on a clip edge is not repeated.
//
// Both polygons must have at least three vertices.
func ClipPolygon[T vector.Scalar](subject, clip shape.Polygon[vector.Vec2[T], T], eps T) shape.Polygon[vector.Vec2[T], T] {
	if subject.Len() < 3 {
		throw.Fatalf("cannot clip degenerate subject polygon with point count: %d", subject.Len())
	}
	if clip.Len() < 3 {
		throw.Fatalf("cannot clip against degenerate polygon with point count: %d", clip.Len())
	}

	output := subject.Clone().Vertices
	for i := 0; i < clip.Len() && len(output) > 0; i++ {
		output = clipToHalfPlane(output, clip.Vertex(i), clip.Vertex(i+1), eps)
	}
	return shape.Polygon[vector.Vec2[T], T]{Vertices: output}
}

// One Sutherland–Hodgman pass: keep the part of the polygon left of the line
// from edgeStart to edgeEnd.
func clipToHalfPlane[T vector.Scalar](input []vector.Vec2[T], edgeStart, edgeEnd vector.Vec2[T], eps T) []vector.Vec2[T] {
	inside := func(p vector.Vec2[T]) bool {
		return vector.Orientation(edgeStart, edgeEnd, p) >= 0
	}
	crossing := func(start, end vector.Vec2[T]) (vector.Vec2[T], bool) {
		t, _, ok := LineIntersectionParameters(start, end, edgeStart, edgeEnd, eps)
		if !ok {
			return vector.Vec2[T]{}, false
		}
		return vector.LerpFloat[vector.Vec2[T], T](start, end, t), true
	}

	output := make([]vector.Vec2[T], 0, len(input)+1)
	emit := func(p vector.Vec2[T]) {
		if len(output) > 0 && vector.ApproxEqual[vector.Vec2[T], T](output[len(output)-1], p, eps) {
			return
		}
		output = append(output, p)
	}
	for i, end := range input {
		// Walking edges [start, end] from the closing edge means an untouched
		// polygon comes out in its original order.
		start := input[shape.CircularIndex(i-1, len(input))]
		startInside, endInside := inside(start), inside(end)
		switch {
		case startInside && endInside:
			emit(end)
		case startInside && !endInside:
			if p, ok := crossing(start, end); ok {
				emit(p)
			}
		case !startInside && endInside:
			if p, ok := crossing(start, end); ok {
				emit(p)
			}
			emit(end)
		}
	}
	// The closing edge can repeat the first vertex too
	if len(output) > 1 && vector.ApproxEqual[vector.Vec2[T], T](output[0], output[len(output)-1], eps) {
		output = output[:len(output)-1]
	}
	return output
}
