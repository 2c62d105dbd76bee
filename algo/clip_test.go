package algo

import (
	"testing"

	"github.com/osuushi/geometry/internal/throw"
	"github.com/osuushi/geometry/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(x0, y0, x1, y1 float64) polygon {
	return poly(v(x0, y0), v(x1, y0), v(x1, y1), v(x0, y1))
}

func TestClipOverlappingSquares(t *testing.T) {
	subject := square(0, 0, 4, 4)
	clip := square(2, -1, 6, 6)
	result := ClipPolygon(subject, clip, 1e-9)
	assertSamePolygon(t, square(2, 0, 4, 4), result)
	assert.InDelta(t, 8.0, Area(result), 1e-9)
}

func TestClipContainedSubjectIsUnchanged(t *testing.T) {
	subject := poly(v(1, 1), v(2, 1), v(1, 2))
	result := ClipPolygon(subject, square(0, 0, 4, 4), 1e-9)
	assert.Equal(t, subject.Vertices, result.Vertices)
}

func TestClipContainingSubjectYieldsClip(t *testing.T) {
	clip := poly(v(1, 1), v(3, 1), v(2, 3))
	result := ClipPolygon(square(0, 0, 4, 4), clip, 1e-9)
	assertSamePolygon(t, clip, result)
}

func TestClipDisjoint(t *testing.T) {
	result := ClipPolygon(square(10, 10, 11, 11), square(0, 0, 4, 4), 1e-9)
	assert.Empty(t, result.Vertices)
}

func TestClipDoesNotModifySubject(t *testing.T) {
	subject := square(0, 0, 4, 4)
	ClipPolygon(subject, square(2, -1, 6, 6), 1e-9)
	assert.Equal(t, square(0, 0, 4, 4), subject)
}

func TestClipDegenerateInputPanics(t *testing.T) {
	line := poly(v(0, 0), v(1, 1))
	assert.PanicsWithError(t, "cannot clip degenerate subject polygon with point count: 2", func() {
		ClipPolygon(line, square(0, 0, 1, 1), 1e-9)
	})
	assert.Panics(t, func() {
		ClipPolygon(square(0, 0, 1, 1), line, 1e-9)
	})

	// The panic is a throw.Error, which the public API turns into an error
	func() {
		defer func() {
			err := throw.Recover(recover())
			require.Error(t, err)
			assert.Contains(t, err.Error(), "point count: 2")
		}()
		ClipPolygon(square(0, 0, 1, 1), line, 1e-9)
	}()
}

func TestClipBySampling(t *testing.T) {
	clip := poly(v(-1, -1), v(5, -1), v(-1, 5))
	subjects := map[string]polygon{
		"hexagon": poly(v(1, 0), v(3, 0), v(4, 2), v(3, 4), v(1, 4), v(0, 2)),
		// Concave subjects can leave zero width slivers along the clip edges, but
		// those contain no area.
		"L": poly(v(0, 0), v(4, 0), v(4, 1), v(1, 1), v(1, 4), v(0, 4)),
		"chevron": poly(v(0, 0), v(10, 10), v(0, 20), v(5, 10)),
	}
	for name, subject := range subjects {
		t.Run(name, func(t *testing.T) {
			result := ClipPolygon(subject, clip, 1e-9)
			extent := subject.BoundingBox().Union(clip.BoundingBox())
			validatePolygonBySampling(t, result, func(p vec2) bool {
				return ContainsPointByEvenOdd(subject, p) && ContainsPointByEvenOdd(clip, p)
			}, extent)
		})
	}
}

func TestClipThenTriangulate(t *testing.T) {
	clipped := ClipPolygon(square(0, 0, 4, 4), shape.NewTriangle[vec2, float64](v(-2, 1), v(6, 1), v(2, 8)).Polygon(), 1e-9)
	require.True(t, IsCCW(clipped))
	AssertValidTriangulation(t, clipped, TriangulateMonotone(clipped))
}

func TestClipMergesVertexOnClipEdge(t *testing.T) {
	// The clip keeps x >= 0, and every subject touches x = 0 at the origin
	clip := square(0, -10, 10, 10)
	subjects := map[string]polygon{
		"crossing before the vertex": poly(v(0, 0), v(4, 0), v(-2, 2)),
		"crossing wraps to the start": poly(v(-2, 2), v(4, 0), v(0, 0)),
	}
	for name, subject := range subjects {
		t.Run(name, func(t *testing.T) {
			result := ClipPolygon(subject, clip, 1e-9)
			require.Len(t, result.Vertices, 3)
			ccw := CounterClockwise(result)
			assertSamePolygon(t, poly(v(0, 0), v(4, 0), v(0, 4.0/3)), ccw)

			triangles := TriangulateMonotone(ccw)
			require.Len(t, triangles, 1)
			assert.InDelta(t, 8.0/3, TriangleSignedArea(triangles[0]), 1e-9)
		})
	}
}
