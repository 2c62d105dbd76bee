package algo

// This contains no actual tests. It holds helpers for checking triangulations
// and clipped polygons.

import (
	"math"
	"testing"

	"github.com/kr/pretty"
	"github.com/osuushi/geometry/shape"
	"github.com/osuushi/geometry/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type (
	vec2     = vector.Vec2[float64]
	vec3     = vector.Vec3[float64]
	polygon  = shape.Polygon[vec2, float64]
	triangle = shape.Triangle[vec2, float64]
)

const epsilon = 1e-9

func poly(points ...vec2) polygon {
	return shape.NewPolygon(points...)
}

// Helper to check that a triangulation is valid. The rules are:
// 1. The set of points in the triangles must equal the set of points in the polygon.
// 2. There are n-2 triangles.
// 3. Every triangle is counterclockwise, or degenerate.
// 4. The sum of the areas of all triangles is equal to the area of the polygon.
func AssertValidTriangulation(t *testing.T, polygon polygon, triangles []triangle) {
	t.Helper()
	require.True(t, IsCCW(polygon), "polygon is not counterclockwise")
	require.Len(t, triangles, polygon.Len()-2)

	polyPoints := make(map[vec2]struct{})
	for _, p := range polygon.Vertices {
		polyPoints[p] = struct{}{}
	}
	trianglePoints := make(map[vec2]struct{})
	var triangleArea float64
	for _, tri := range triangles {
		for _, p := range tri.Vertices() {
			trianglePoints[p] = struct{}{}
		}
		require.GreaterOrEqual(t, TriangleSignedArea(tri), 0.0, "clockwise triangle: %s", tri)
		triangleArea += TriangleSignedArea(tri)
	}
	require.Equal(t, polyPoints, trianglePoints, "set of points in the triangles must equal the set of points in the polygon")
	require.InDelta(t, Area(polygon), triangleArea, epsilon, "sum of the areas of all triangles must equal the area of the polygon")
}

// Check that two polygons have the same vertices in the same cyclic order,
// allowing a different starting vertex.
func assertSamePolygon(t *testing.T, expected, actual polygon) {
	t.Helper()
	require.Equal(t, expected.Len(), actual.Len(), "vertex count differs: %s", pretty.Diff(expected.Vertices, actual.Vertices))
	if expected.Len() == 0 {
		return
	}
	for offset := 0; offset < actual.Len(); offset++ {
		matches := true
		for i := range expected.Vertices {
			if !vector.ApproxEqual[vec2, float64](expected.Vertex(i), actual.Vertex(i+offset), epsilon) {
				matches = false
				break
			}
		}
		if matches {
			return
		}
	}
	t.Errorf("polygons differ:\n%s", pretty.Sprint(expected.Vertices, actual.Vertices))
}

// Sample a grid over the polygons and check that each point's membership in
// the actual polygon matches the given predicate. The grid is offset by odd
// amounts so that samples don't fall exactly on edges.
func validatePolygonBySampling(t *testing.T, actual polygon, expected func(vec2) bool, extent shape.BoundingBox[vec2, float64]) {
	t.Helper()
	size := extent.Size()
	step := math.Max(size.X, size.Y) / 57
	for y := extent.Min.Y + step*0.371; y <= extent.Max.Y; y += step {
		for x := extent.Min.X + step*0.529; x <= extent.Max.X; x += step {
			p := vec2{X: x, Y: y}
			if expected(p) {
				assert.True(t, ContainsPointByEvenOdd(actual, p), "point %v should be in the polygon", p)
			} else {
				assert.False(t, ContainsPointByEvenOdd(actual, p), "point %v should not be in the polygon", p)
			}
		}
	}
}
