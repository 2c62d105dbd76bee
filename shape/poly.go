package shape

import (
	"github.com/osuushi/geometry/vector"
)

// Polygon is a closed sequence of vertices: the last vertex connects back to
// the first.
type Polygon[V vector.Vector[V, T], T vector.Scalar] struct {
	Vertices []V
}

// Polyline is an open sequence of vertices. N vertices make N-1 segments.
type Polyline[V vector.Vector[V, T], T vector.Scalar] struct {
	Vertices []V
}

func NewPolygon[V vector.Vector[V, T], T vector.Scalar](vertices ...V) Polygon[V, T] {
	return Polygon[V, T]{Vertices: vertices}
}

func NewPolyline[V vector.Vector[V, T], T vector.Scalar](vertices ...V) Polyline[V, T] {
	return Polyline[V, T]{Vertices: vertices}
}

func (poly Polygon[V, T]) Len() int {
	return len(poly.Vertices)
}

// Vertex returns vertex i, wrapping around in either direction.
func (poly Polygon[V, T]) Vertex(i int) V {
	return poly.Vertices[CircularIndex(i, len(poly.Vertices))]
}

// Edge i runs from vertex i to vertex i+1. The last edge closes the polygon.
func (poly Polygon[V, T]) Edge(i int) Linear[V, T] {
	return NewSegment[V, T](poly.Vertex(i), poly.Vertex(i+1))
}

func (poly Polygon[V, T]) Segments() []Linear[V, T] {
	if len(poly.Vertices) < 2 {
		return nil
	}
	segments := make([]Linear[V, T], len(poly.Vertices))
	for i := range poly.Vertices {
		segments[i] = poly.Edge(i)
	}
	return segments
}

func (poly Polygon[V, T]) Perimeter() T {
	var sum T
	for _, segment := range poly.Segments() {
		sum += segment.Length()
	}
	return sum
}

func (poly Polygon[V, T]) BoundingBox() BoundingBox[V, T] {
	return BoundsOf[V, T](poly.Vertices...)
}

// Append vertices to the end of the polygon.
func (poly *Polygon[V, T]) Append(vertices ...V) {
	poly.Vertices = append(poly.Vertices, vertices...)
}

// Clone copies the vertex storage, so the result can be modified
// independently.
func (poly Polygon[V, T]) Clone() Polygon[V, T] {
	return Polygon[V, T]{Vertices: append([]V(nil), poly.Vertices...)}
}

func (poly Polygon[V, T]) Reverse() Polygon[V, T] {
	return Polygon[V, T]{Vertices: reversed(poly.Vertices)}
}

// Polyline opens the polygon without repeating the first vertex.
func (poly Polygon[V, T]) Polyline() Polyline[V, T] {
	return Polyline[V, T]{Vertices: append([]V(nil), poly.Vertices...)}
}

func (line Polyline[V, T]) Len() int {
	return len(line.Vertices)
}

func (line Polyline[V, T]) Front() V {
	return line.Vertices[0]
}

func (line Polyline[V, T]) Back() V {
	return line.Vertices[len(line.Vertices)-1]
}

func (line Polyline[V, T]) Segments() []Linear[V, T] {
	if len(line.Vertices) < 2 {
		return nil
	}
	segments := make([]Linear[V, T], len(line.Vertices)-1)
	for i := range segments {
		segments[i] = NewSegment[V, T](line.Vertices[i], line.Vertices[i+1])
	}
	return segments
}

// Length is the sum of the segment lengths.
func (line Polyline[V, T]) Length() T {
	var sum T
	for _, segment := range line.Segments() {
		sum += segment.Length()
	}
	return sum
}

func (line Polyline[V, T]) BoundingBox() BoundingBox[V, T] {
	return BoundsOf[V, T](line.Vertices...)
}

func (line *Polyline[V, T]) Append(vertices ...V) {
	line.Vertices = append(line.Vertices, vertices...)
}

func (line Polyline[V, T]) Clone() Polyline[V, T] {
	return Polyline[V, T]{Vertices: append([]V(nil), line.Vertices...)}
}

func (line Polyline[V, T]) Reverse() Polyline[V, T] {
	return Polyline[V, T]{Vertices: reversed(line.Vertices)}
}

// Polygon closes the polyline.
func (line Polyline[V, T]) Polygon() Polygon[V, T] {
	return Polygon[V, T]{Vertices: append([]V(nil), line.Vertices...)}
}

func reversed[V any](vertices []V) []V {
	result := make([]V, 0, len(vertices))
	for i := len(vertices) - 1; i >= 0; i-- {
		result = append(result, vertices[i])
	}
	return result
}
