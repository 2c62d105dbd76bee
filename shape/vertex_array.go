package shape

import (
	"fmt"

	"github.com/osuushi/geometry/vector"
)

// Triangle is a fixed array of three vertices. Like a Polygon, it is closed.
type Triangle[V vector.Vector[V, T], T vector.Scalar] struct {
	A, B, C V
}

// Quad is a fixed array of four vertices.
type Quad[V vector.Vector[V, T], T vector.Scalar] struct {
	A, B, C, D V
}

func NewTriangle[V vector.Vector[V, T], T vector.Scalar](a, b, c V) Triangle[V, T] {
	return Triangle[V, T]{a, b, c}
}

func NewQuad[V vector.Vector[V, T], T vector.Scalar](a, b, c, d V) Quad[V, T] {
	return Quad[V, T]{a, b, c, d}
}

func (tri Triangle[V, T]) Vertices() [3]V {
	return [3]V{tri.A, tri.B, tri.C}
}

// Edges in winding order: AB, BC, CA. Edge i is opposite vertex i+2.
func (tri Triangle[V, T]) Edges() [3]Linear[V, T] {
	return [3]Linear[V, T]{
		NewSegment[V, T](tri.A, tri.B),
		NewSegment[V, T](tri.B, tri.C),
		NewSegment[V, T](tri.C, tri.A),
	}
}

func (tri Triangle[V, T]) Polygon() Polygon[V, T] {
	return NewPolygon[V, T](tri.A, tri.B, tri.C)
}

func (tri Triangle[V, T]) Perimeter() T {
	return tri.Polygon().Perimeter()
}

func (tri Triangle[V, T]) BoundingBox() BoundingBox[V, T] {
	return BoundsOf[V, T](tri.A, tri.B, tri.C)
}

func (tri Triangle[V, T]) String() string {
	return fmt.Sprintf("Triangle{%v, %v, %v}", tri.A, tri.B, tri.C)
}

func (q Quad[V, T]) Vertices() [4]V {
	return [4]V{q.A, q.B, q.C, q.D}
}

func (q Quad[V, T]) Edges() [4]Linear[V, T] {
	return [4]Linear[V, T]{
		NewSegment[V, T](q.A, q.B),
		NewSegment[V, T](q.B, q.C),
		NewSegment[V, T](q.C, q.D),
		NewSegment[V, T](q.D, q.A),
	}
}

func (q Quad[V, T]) Polygon() Polygon[V, T] {
	return NewPolygon[V, T](q.A, q.B, q.C, q.D)
}

// Triangles splits the quad along its AC diagonal. This is only a valid
// decomposition when the diagonal is inside the quad, e.g. when it is convex.
func (q Quad[V, T]) Triangles() [2]Triangle[V, T] {
	return [2]Triangle[V, T]{{q.A, q.B, q.C}, {q.A, q.C, q.D}}
}

func (q Quad[V, T]) BoundingBox() BoundingBox[V, T] {
	return BoundsOf[V, T](q.A, q.B, q.C, q.D)
}

func (q Quad[V, T]) String() string {
	return fmt.Sprintf("Quad{%v, %v, %v, %v}", q.A, q.B, q.C, q.D)
}
