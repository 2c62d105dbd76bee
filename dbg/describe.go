package dbg

import (
	"fmt"

	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/geometry/shape"
	"github.com/osuushi/geometry/vector"
)

type (
	Point    = vector.Vec2[float64]
	Point3   = vector.Vec3[float64]
	Linear   = shape.Linear[Point, float64]
	Polygon  = shape.Polygon[Point, float64]
	Polyline = shape.Polyline[Point, float64]
	Triangle = shape.Triangle[Point, float64]
	Circle   = shape.Circular[Point, float64]
	Box      = shape.BoundingBox[Point, float64]
)

// Describe names a value and prints it, colored by what sort of shape it is.
func Describe(obj interface{}) string {
	var colored aurora.Value
	switch obj.(type) {
	case Point, Point3:
		colored = aurora.Cyan(obj)
	case Linear:
		colored = aurora.Yellow(obj)
	case Polygon, Polyline:
		colored = aurora.Green(obj)
	case Triangle:
		colored = aurora.Magenta(obj)
	case Circle:
		colored = aurora.Blue(obj)
	case Box:
		colored = aurora.Red(obj)
	default:
		return fmt.Sprintf("%s %v", Name(obj), obj)
	}
	return fmt.Sprintf("%s %s", Name(obj), colored)
}

// Dump pretty prints any value, including unexported fields.
func Dump(obj interface{}) string {
	return pretty.Sprint(obj)
}
