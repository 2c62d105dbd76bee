package algo

import (
	"github.com/osuushi/geometry/internal/throw"
	"github.com/osuushi/geometry/shape"
	"github.com/osuushi/geometry/vector"
)

// Facilities for converting a Y-monotone polygon into triangles. A Y monotone
// polygon is a simple polygon such that any horizontal line intersects at most
// two edges. Every convex polygon is Y-monotone, so anything ClipPolygon
// produces can be triangulated here.
//
// The lexicographic below() function is used to simulate a slightly rotated
// coordinate system that eliminates horizontal segments but note that this
// affects where horizontal segments are allowed while maintaining strict
// monotonicity. Specifically, on the left chain, a horizontal edge must sit
// _above_ the inside of the polygon, while on the right chain, it must sit
// _below_.
//
// Note that the polygon must be counterclockwise.

// A common convention in our geometry is that if two points have the same Y
// value, the one with the smaller X value is "lower". This simulates a slightly
// rotated coordinate system, allowing us to assume Y values are never equal.
func below[T vector.Scalar](p, q vector.Vec2[T]) bool {
	if p.Y == q.Y {
		return p.X < q.X
	}
	return p.Y < q.Y
}

func above[T vector.Scalar](p, q vector.Vec2[T]) bool {
	return !below(p, q)
}

// Stack of vertex indices
type indexStack []int

func (s *indexStack) Push(i int) {
	*s = append(*s, i)
}

func (s *indexStack) Pop() int {
	i := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return i
}

func (s *indexStack) Peek() int {
	return (*s)[len(*s)-1]
}

func (s *indexStack) Empty() bool {
	return len(*s) == 0
}

func TriangulateMonotone[T vector.Scalar](polygon shape.Polygon[vector.Vec2[T], T]) []shape.Triangle[vector.Vec2[T], T] {
	points := polygon.Vertices
	n := len(points)
	if n < 3 {
		throw.Fatalf("cannot triangulate degenerate polygon with point count: %d", n)
	}
	if n == 3 {
		return []shape.Triangle[vector.Vec2[T], T]{{A: points[0], B: points[1], C: points[2]}}
	}

	triangles := make([]shape.Triangle[vector.Vec2[T], T], 0, n-2)
	triangle := func(a, b, c int) shape.Triangle[vector.Vec2[T], T] {
		return shape.Triangle[vector.Vec2[T], T]{A: points[a], B: points[b], C: points[c]}
	}

	// Find the top point
	var topPointIndex int
	for i, point := range points {
		if above(point, points[topPointIndex]) {
			topPointIndex = i
		}
	}

	// Indexes sorted from the top down. The bottom point is tracked separately.
	sortedPoints := make([]int, 0, n)
	sortedPoints = append(sortedPoints, topPointIndex)

	// Which points are on the left chain. The top point is on neither.
	isLeft := make([]bool, n)

	// Merge sort points starting from top, noting which are on the left chain
	leftOffset := 1
	rightOffset := 1
	var bottomPoint int
	for {
		leftPoint := shape.CircularIndex(topPointIndex+leftOffset, n)
		rightPoint := shape.CircularIndex(topPointIndex-rightOffset, n)

		// If we've met up, we're done. We don't add the bottom point to the list,
		// as it's handled at the very end.
		if leftPoint == rightPoint {
			bottomPoint = leftPoint
			break
		}

		if above(points[leftPoint], points[rightPoint]) {
			isLeft[leftPoint] = true
			sortedPoints = append(sortedPoints, leftPoint)
			leftOffset++
		} else {
			sortedPoints = append(sortedPoints, rightPoint)
			rightOffset++
		}
	}

	// Create the stack and populate it with the first two points
	stack := make(indexStack, 0, n)
	stack.Push(sortedPoints[0])
	stack.Push(sortedPoints[1])
	for i := 2; i < len(sortedPoints); i++ {
		p := sortedPoints[i]
		left := isLeft[p]
		if left != isLeft[stack.Peek()] { // If switched to opposite side chain
			// Monotonicity guarantees that every stacked point is visible from the
			// current point, so the whole stack becomes a fan of triangles.
			for !stack.Empty() {
				a := stack.Pop()
				if !stack.Empty() {
					b := stack.Peek()
					if left {
						/*
						              b
						             /|
						 diagonal-> / |
						           p--a
						*/
						triangles = appendTriangle(triangles, triangle(p, a, b))
					} else {
						/*
							b
							|\ <- Diagonal
							| \
							a--p
						*/
						triangles = appendTriangle(triangles, triangle(a, p, b))
					}
				}
			}
			// Put the last two points on the stack
			stack.Push(sortedPoints[i-1])
			stack.Push(p)
		} else { // Same side chain
			// Always pop the last point off. If we don't create any triangles this
			// time, we'll put it back
			v := stack.Pop()
			for !stack.Empty() {
				topOfStack := stack.Peek()
				// The easiest way to see if the point "sees" the top of the stack is to
				// try creating the triangle, and see if it's CCW
				var potentialTriangle shape.Triangle[vector.Vec2[T], T]
				if left {
					potentialTriangle = triangle(p, topOfStack, v)
				} else {
					potentialTriangle = triangle(p, v, topOfStack)
				}
				if TriangleSignedArea(potentialTriangle) <= 0 {
					// Stop looping if we can't see the next point
					break
				}
				v = stack.Pop()
				triangles = append(triangles, potentialTriangle)
			}

			// Put the last v back on the stack, and then the current point
			stack.Push(v)
			stack.Push(p)
		}
	}

	// Finally, add triangles for all remaining points on the stack. There are
	// always at least two.
	l := stack.Pop()
	for !stack.Empty() {
		p := stack.Pop()
		if isLeft[l] {
			/*
				   p
				 / |
				l  | <- diagonal
				 \ |
				   b
			*/
			triangles = appendTriangle(triangles, triangle(bottomPoint, p, l))
		} else {
			/*
				            p
				            | \
				diagonal -> |  l
				            | /
				            b
			*/
			triangles = appendTriangle(triangles, triangle(bottomPoint, l, p))
		}
		l = p
	}
	return triangles
}

// This is pulled out so that it's easy to add instrumentation.
func appendTriangle[T vector.Scalar](triangles []shape.Triangle[vector.Vec2[T], T], tri shape.Triangle[vector.Vec2[T], T]) []shape.Triangle[vector.Vec2[T], T] {
	if TriangleSignedArea(tri) < 0 {
		throw.Fatalf("triangle is clockwise: %v", tri)
	}
	return append(triangles, tri)
}
