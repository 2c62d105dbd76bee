package algo

import (
	"math"

	"github.com/osuushi/geometry/shape"
	"github.com/osuushi/geometry/vector"
)

// Weighted average of the points, accumulated in float64.
func weightedMean[V vector.Vector[V, T], T vector.Scalar](points []V, weights []float64) V {
	var total float64
	sums := make([]float64, points[0].Dim())
	for i, p := range points {
		total += weights[i]
		for j := range sums {
			sums[j] += weights[i] * float64(p.At(j))
		}
	}
	var mean V
	for j, sum := range sums {
		mean = mean.With(j, vector.FromFloat[T](sum/total))
	}
	return mean
}

func floatDistance[V vector.Vector[V, T], T vector.Scalar](a, b V) float64 {
	return math.Sqrt(float64(vector.DistanceSquared[V, T](a, b)))
}

// Centroid is the mean of the three vertices.
func Centroid[V vector.Vector[V, T], T vector.Scalar](tri shape.Triangle[V, T]) V {
	vertices := tri.Vertices()
	return weightedMean[V, T](vertices[:], []float64{1, 1, 1})
}

// Lengths of the sides opposite A, B and C.
func sideLengths[V vector.Vector[V, T], T vector.Scalar](tri shape.Triangle[V, T]) []float64 {
	return []float64{
		floatDistance[V, T](tri.B, tri.C),
		floatDistance[V, T](tri.C, tri.A),
		floatDistance[V, T](tri.A, tri.B),
	}
}

// Incenter is the average of the vertices, each weighted by the length of the
// opposite side. If all three vertices coincide, that vertex is returned.
func Incenter[V vector.Vector[V, T], T vector.Scalar](tri shape.Triangle[V, T]) V {
	sides := sideLengths(tri)
	if sides[0]+sides[1]+sides[2] == 0 {
		return tri.A
	}
	vertices := tri.Vertices()
	return weightedMean[V, T](vertices[:], sides)
}

// Circumcenter intersects the perpendicular bisectors of AB and BC. It fails
// for collinear triangles, where the bisectors are parallel within eps.
func Circumcenter[T vector.Scalar](tri shape.Triangle[vector.Vec2[T], T], eps T) (vector.Vec2[T], bool) {
	center, ok := floatCircumcenter(tri.A.Float(), tri.B.Float(), tri.C.Float(), float64(eps))
	return vector.FromFloat2[T](center), ok
}

func floatCircumcenter(a, b, c vector.Vec2[float64], eps float64) (vector.Vec2[float64], bool) {
	return Intersection(
		shape.PerpendicularBisector(shape.NewSegment[vector.Vec2[float64], float64](a, b)),
		shape.PerpendicularBisector(shape.NewSegment[vector.Vec2[float64], float64](b, c)),
		eps,
	)
}

// Orthocenter intersects the altitudes through A and B. Altitudes are taken
// as lines, so obtuse triangles, whose orthocenter is outside, still work.
func Orthocenter[T vector.Scalar](tri shape.Triangle[vector.Vec2[T], T], eps T) (vector.Vec2[T], bool) {
	a, b, c := tri.A.Float(), tri.B.Float(), tri.C.Float()
	center, ok := Intersection(
		shape.Perpendicular(shape.NewSegment[vector.Vec2[float64], float64](b, c), a),
		shape.Perpendicular(shape.NewSegment[vector.Vec2[float64], float64](c, a), b),
		float64(eps),
	)
	return vector.FromFloat2[T](center), ok
}

// Incircle is centered on the incenter, touching every side. Its radius is
// the area over the semiperimeter. It fails only if A and B coincide within
// eps.
func Incircle[V vector.Vector[V, T], T vector.Scalar](tri shape.Triangle[V, T], eps T) (shape.Circular[V, T], bool) {
	if vector.DistanceSquared[V, T](tri.A, tri.B) <= eps {
		return shape.Circular[V, T]{}, false
	}
	sides := sideLengths(tri)
	s := (sides[0] + sides[1] + sides[2]) / 2
	// Heron's formula, clamped against rounding in flat triangles
	areaSquared := math.Max(s*(s-sides[0])*(s-sides[1])*(s-sides[2]), 0)
	radius := math.Sqrt(areaSquared) / s
	return shape.NewCircular[V, T](Incenter(tri), vector.FromFloat[T](radius)), true
}

// Circumcircle is centered on the circumcenter, passing through every vertex.
func Circumcircle[T vector.Scalar](tri shape.Triangle[vector.Vec2[T], T], eps T) (shape.Circular[vector.Vec2[T], T], bool) {
	a := tri.A.Float()
	center, ok := floatCircumcenter(a, tri.B.Float(), tri.C.Float(), float64(eps))
	if !ok {
		return shape.Circular[vector.Vec2[T], T]{}, false
	}
	radius := vector.Distance[vector.Vec2[float64], float64](center, a)
	return shape.NewCircular[vector.Vec2[T], T](vector.FromFloat2[T](center), vector.FromFloat[T](radius)), true
}
