package algo

import (
	"github.com/osuushi/geometry/shape"
	"github.com/osuushi/geometry/vector"
)

// DouglasPeucker simplifies the polyline through points, calling emit for
// every point kept. Each subrange either collapses to its chord, or is split
// at the point farthest from the chord and both halves are simplified. The
// split point ends one half and begins the next, so it is emitted twice;
// Simplify removes those duplicates.
//
// Degenerate chords (a subrange starting and ending on the same point)
// measure distance to that point.
func DouglasPeucker[V vector.Vector[V, T], T vector.Scalar](points []V, tolerance T, emit func(V)) {
	if len(points) == 0 {
		return
	}
	first := points[0]
	last := points[len(points)-1]
	chord := shape.NewLine[V, T](first, last)

	// Find the first interior point with the greatest distance. The ends are on
	// the chord, so they never need to be considered, and excluding them keeps
	// every split strictly shrinking the range.
	split := -1
	var maxDistance float64
	for i := 1; i < len(points)-1; i++ {
		distance := distanceSquared(points[i], chord, 0)
		if split == -1 || distance > maxDistance {
			split = i
			maxDistance = distance
		}
	}

	if split != -1 && maxDistance > float64(tolerance)*float64(tolerance) {
		DouglasPeucker(points[:split+1], tolerance, emit)
		DouglasPeucker(points[split:], tolerance, emit)
		return
	}

	emit(first)
	emit(last)
}

// Simplify runs DouglasPeucker and collects the kept points, dropping
// consecutive duplicates.
func Simplify[V vector.Vector[V, T], T vector.Scalar](points []V, tolerance T) []V {
	var result []V
	DouglasPeucker(points, tolerance, func(p V) {
		if len(result) > 0 && result[len(result)-1] == p {
			return
		}
		result = append(result, p)
	})
	return result
}

func SimplifyPolyline[V vector.Vector[V, T], T vector.Scalar](line shape.Polyline[V, T], tolerance T) shape.Polyline[V, T] {
	return shape.Polyline[V, T]{Vertices: Simplify(line.Vertices, tolerance)}
}
