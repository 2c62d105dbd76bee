// A small 2D/3D computational geometry toolkit for Go.
//
// The generic building blocks live in the vector, matrix, shape and algo
// packages. This package fixes the scalar type to float64, picks a default
// epsilon, and turns the panics that the building blocks use for violated
// preconditions into errors.
package geometry

import (
	"github.com/osuushi/geometry/algo"
	"github.com/osuushi/geometry/internal/throw"
	"github.com/osuushi/geometry/matrix"
	"github.com/osuushi/geometry/shape"
	"github.com/osuushi/geometry/vector"
)

// DefaultEpsilon is the tolerance every function here uses for
// near-degenerate input, such as parallel lines or coincident points.
const DefaultEpsilon = 1e-4

type Point = vector.Vec2[float64]
type Point3 = vector.Vec3[float64]
type Linear = shape.Linear[Point, float64]
type Polygon = shape.Polygon[Point, float64]
type Polyline = shape.Polyline[Point, float64]
type Triangle = shape.Triangle[Point, float64]
type Quad = shape.Quad[Point, float64]
type Circle = shape.Circular[Point, float64]
type Sphere = shape.Circular[Point3, float64]
type Box = shape.BoundingBox[Point, float64]
type Interval = shape.Interval[float64]
type Matrix = matrix.Matrix[float64]

func Segment(p0, p1 Point) Linear { return shape.NewSegment[Point, float64](p0, p1) }
func Ray(p0, p1 Point) Linear     { return shape.NewRay[Point, float64](p0, p1) }
func Line(p0, p1 Point) Linear    { return shape.NewLine[Point, float64](p0, p1) }

// Assign a recovered precondition violation to *err. Must be deferred.
func recoverInto(err *error) {
	if recovered := throw.Recover(recover()); recovered != nil {
		*err = recovered
	}
}

// Toolkit runs the epsilon dependent algorithms with a fixed epsilon. The
// package level functions use Default.
type Toolkit struct {
	Epsilon float64
}

var Default = Toolkit{Epsilon: DefaultEpsilon}

// Intersection is the point where a and b cross, if they do.
func (k Toolkit) Intersection(a, b Linear) (Point, bool) {
	return algo.Intersection(a, b, k.Epsilon)
}

// Projection is the foot of the perpendicular from p onto l, if it lies on l.
func (k Toolkit) Projection(p Point, l Linear) (Point, bool) {
	return algo.Projection(p, l, k.Epsilon)
}

// Distance from p to the nearest point of l.
func (k Toolkit) Distance(p Point, l Linear) float64 {
	return algo.Distance(p, l, k.Epsilon)
}

// TriangleMetrics gathers the centers and circles of a triangle. Circumcenter,
// orthocenter and the circles are only set when the triangle is not degenerate.
type TriangleMetrics struct {
	Centroid     Point
	Incenter     Point
	Circumcenter *Point
	Orthocenter  *Point
	Incircle     *Circle
	Circumcircle *Circle
}

func (k Toolkit) Metrics(tri Triangle) TriangleMetrics {
	metrics := TriangleMetrics{
		Centroid: algo.Centroid(tri),
		Incenter: algo.Incenter(tri),
	}
	if p, ok := algo.Circumcenter(tri, k.Epsilon); ok {
		metrics.Circumcenter = &p
	}
	if p, ok := algo.Orthocenter(tri, k.Epsilon); ok {
		metrics.Orthocenter = &p
	}
	if c, ok := algo.Incircle(tri, k.Epsilon); ok {
		metrics.Incircle = &c
	}
	if c, ok := algo.Circumcircle(tri, k.Epsilon); ok {
		metrics.Circumcircle = &c
	}
	return metrics
}

// Clip subject against the convex polygon clip. Either winding is accepted for
// clip. The result is empty when the polygons do not overlap.
func (k Toolkit) Clip(subject, clip Polygon) (result Polygon, err error) {
	defer recoverInto(&err)
	return algo.ClipPolygon(subject, algo.CounterClockwise(clip), k.Epsilon), nil
}

func Intersection(a, b Linear) (Point, bool)      { return Default.Intersection(a, b) }
func Projection(p Point, l Linear) (Point, bool)  { return Default.Projection(p, l) }
func Distance(p Point, l Linear) float64          { return Default.Distance(p, l) }
func Metrics(tri Triangle) TriangleMetrics        { return Default.Metrics(tri) }
func Clip(subject, clip Polygon) (Polygon, error) { return Default.Clip(subject, clip) }

// Simplify a polyline with Douglas–Peucker, keeping its endpoints.
func Simplify(points []Point, tolerance float64) []Point {
	return algo.Simplify(points, tolerance)
}

// Triangulate a y-monotone polygon, which includes every convex polygon. The
// triangles are counterclockwise whatever the polygon's winding.
//
// The polygon is not checked for monotonicity; other simple polygons may give
// overlapping triangles or an error.
func Triangulate(polygon Polygon) (result []Triangle, err error) {
	defer recoverInto(&err)
	return algo.TriangulateMonotone(algo.CounterClockwise(polygon)), nil
}

// Determinant of a square matrix.
func Determinant(m Matrix) (result float64, err error) {
	defer recoverInto(&err)
	return m.Determinant(), nil
}

// Invert a square matrix. ok is false for singular matrices.
func Invert(m Matrix) (result Matrix, ok bool, err error) {
	defer recoverInto(&err)
	result, ok = m.Invert()
	return result, ok, nil
}

// Multiply a by b, which must have as many rows as a has columns.
func Multiply(a, b Matrix) (result Matrix, err error) {
	defer recoverInto(&err)
	return a.Mul(b), nil
}
