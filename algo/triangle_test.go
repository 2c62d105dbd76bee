package algo

import (
	"testing"

	"github.com/osuushi/geometry/shape"
	"github.com/osuushi/geometry/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tri(a, b, c vec2) triangle {
	return shape.NewTriangle[vec2, float64](a, b, c)
}

func assertPointNear(t *testing.T, expected, actual vec2) {
	t.Helper()
	assert.True(t, vector.ApproxEqual[vec2, float64](expected, actual, 1e-9), "expected %s, got %s", expected, actual)
}

func TestCircumcenterOfRightIsoscelesTriangle(t *testing.T) {
	center, ok := Circumcenter(tri(v(0, 0), v(4, 0), v(0, 4)), 1e-4)
	require.True(t, ok)
	assertPointNear(t, v(2, 2), center)
}

func TestCircumcircle(t *testing.T) {
	triangle := tri(v(0, 0), v(3, 0), v(0, 4))
	circle, ok := Circumcircle(triangle, 1e-4)
	require.True(t, ok)
	assertPointNear(t, v(1.5, 2), circle.Center)
	assert.InDelta(t, 2.5, circle.Radius, 1e-9)
	for _, vertex := range triangle.Vertices() {
		assert.InDelta(t, circle.Radius, vector.Distance[vec2, float64](circle.Center, vertex), 1e-9)
	}
}

func TestCentroid(t *testing.T) {
	assertPointNear(t, v(1, 1), Centroid(tri(v(0, 0), v(3, 0), v(0, 3))))

	centroid := Centroid(shape.NewTriangle[vec3, float64](vec3{}, vec3{X: 3}, vec3{Z: 6}))
	assert.Equal(t, vec3{X: 1, Z: 2}, centroid)
}

func TestIncenterAndIncircle(t *testing.T) {
	triangle := tri(v(0, 0), v(3, 0), v(0, 4))
	assertPointNear(t, v(1, 1), Incenter(triangle))

	circle, ok := Incircle(triangle, 1e-4)
	require.True(t, ok)
	assertPointNear(t, v(1, 1), circle.Center)
	assert.InDelta(t, 1.0, circle.Radius, 1e-9)

	// The incircle touches all three sides
	for _, edge := range triangle.Edges() {
		assert.InDelta(t, circle.Radius, Distance(circle.Center, edge, 1e-9), 1e-9)
	}
}

func TestIncenterOfCoincidentPoints(t *testing.T) {
	p := v(2, 3)
	assert.Equal(t, p, Incenter(tri(p, p, p)))

	_, ok := Incircle(tri(p, p, p), 1e-4)
	assert.False(t, ok)
}

func TestOrthocenter(t *testing.T) {
	// Right triangles have their orthocenter on the right angle
	center, ok := Orthocenter(tri(v(0, 0), v(3, 0), v(0, 4)), 1e-4)
	require.True(t, ok)
	assertPointNear(t, v(0, 0), center)

	// Obtuse triangles have it outside
	center, ok = Orthocenter(tri(v(0, 0), v(4, 0), v(1, 1)), 1e-4)
	require.True(t, ok)
	assertPointNear(t, v(1, 3), center)
}

func TestTriangleCentersOfEquilateralTriangleCoincide(t *testing.T) {
	triangle := tri(v(0, 0), v(2, 0), v(1, 1.7320508075688772))
	centroid := Centroid(triangle)
	circumcenter, ok := Circumcenter(triangle, 1e-4)
	require.True(t, ok)
	orthocenter, ok := Orthocenter(triangle, 1e-4)
	require.True(t, ok)

	assert.True(t, vector.ApproxEqual[vec2, float64](centroid, circumcenter, 1e-6))
	assert.True(t, vector.ApproxEqual[vec2, float64](centroid, orthocenter, 1e-6))
	assert.True(t, vector.ApproxEqual[vec2, float64](centroid, Incenter(triangle), 1e-6))
}

func TestDegenerateTriangle(t *testing.T) {
	collinear := tri(v(0, 0), v(1, 1), v(2, 2))

	_, ok := Circumcenter(collinear, 1e-4)
	assert.False(t, ok)
	_, ok = Circumcircle(collinear, 1e-4)
	assert.False(t, ok)
	_, ok = Orthocenter(collinear, 1e-4)
	assert.False(t, ok)
}
