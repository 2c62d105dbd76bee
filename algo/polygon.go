package algo

import (
	"github.com/osuushi/geometry/shape"
	"github.com/osuushi/geometry/vector"
)

// Area helpers are planar. Counterclockwise polygons have positive area.
// Integer areas of half a unit round away from zero, so the sign survives.

// SignedArea by the shoelace formula.
func SignedArea[T vector.Scalar](poly shape.Polygon[vector.Vec2[T], T]) T {
	var sum T
	for i, vertex := range poly.Vertices {
		sum += vertex.Cross(poly.Vertex(i + 1))
	}
	return vector.FromFloat[T](float64(sum) / 2)
}

func Area[T vector.Scalar](poly shape.Polygon[vector.Vec2[T], T]) T {
	return vector.Abs(SignedArea(poly))
}

func TriangleSignedArea[T vector.Scalar](tri shape.Triangle[vector.Vec2[T], T]) T {
	return vector.FromFloat[T](float64(vector.Orientation(tri.A, tri.B, tri.C)) / 2)
}

func IsCCW[T vector.Scalar](poly shape.Polygon[vector.Vec2[T], T]) bool {
	return SignedArea(poly) > 0
}

func IsCW[T vector.Scalar](poly shape.Polygon[vector.Vec2[T], T]) bool {
	return SignedArea(poly) < 0
}

// PolygonCentroid is the area centroid of a simple polygon. Polygons with no
// area fall back to the mean of their vertices.
func PolygonCentroid[T vector.Scalar](poly shape.Polygon[vector.Vec2[T], T]) vector.Vec2[T] {
	var weighted vector.Vec2[T]
	var doubleArea T
	for i, vertex := range poly.Vertices {
		next := poly.Vertex(i + 1)
		cross := vertex.Cross(next)
		doubleArea += cross
		weighted = weighted.Add(vertex.Add(next).Scale(cross))
	}
	if doubleArea == 0 {
		var sum vector.Vec2[T]
		for _, vertex := range poly.Vertices {
			sum = sum.Add(vertex)
		}
		if len(poly.Vertices) == 0 {
			return sum
		}
		return vector.FromFloat2[T](sum.Float().Div(float64(len(poly.Vertices))))
	}
	return vector.FromFloat2[T](weighted.Float().Div(3 * float64(doubleArea)))
}

// Even-odd rule point-in-polygon. Points exactly on an edge may land on either
// side.
func ContainsPointByEvenOdd[T vector.Scalar](poly shape.Polygon[vector.Vec2[T], T], p vector.Vec2[T]) bool {
	return CrossingCount(poly, p)%2 == 1
}

// Crossing count helper for even odd rule: the number of edges crossed by a
// ray from p towards +X.
func CrossingCount[T vector.Scalar](poly shape.Polygon[vector.Vec2[T], T], p vector.Vec2[T]) int {
	crossingCount := 0
	for i, vertex := range poly.Vertices {
		nextVertex := poly.Vertex(i + 1)
		if (vertex.Y > p.Y) == (nextVertex.Y > p.Y) {
			continue
		}
		// The edge straddles the ray's height. It crosses the ray if p is left of
		// the edge taken upwards, which avoids dividing.
		orientation := vector.Orientation(vertex, nextVertex, p)
		if nextVertex.Y < vertex.Y {
			orientation = -orientation
		}
		if orientation > 0 {
			crossingCount++
		}
	}
	return crossingCount
}

// CounterClockwise returns poly, reversed if it winds clockwise.
func CounterClockwise[T vector.Scalar](poly shape.Polygon[vector.Vec2[T], T]) shape.Polygon[vector.Vec2[T], T] {
	if IsCW(poly) {
		return poly.Reverse()
	}
	return poly
}
