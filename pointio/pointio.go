// Package pointio reads point lists and polygons for the geometry tools, and
// writes them back out.
//
// The text format is newline separated points in the form "x y", with each
// polygon separated by an extra newline. Commas may be used in place of the
// space, and lines starting with '#' are ignored.
package pointio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/osuushi/geometry/shape"
	"github.com/osuushi/geometry/vector"
	"github.com/pkg/errors"
)

type (
	Point   = vector.Vec2[float64]
	Polygon = shape.Polygon[Point, float64]
)

// ReadPolygons reads every polygon from in. Groups of fewer than three points
// are returned as they are; it is up to the caller to decide whether it can
// use them.
func ReadPolygons(in io.Reader) ([]Polygon, error) {
	polygons := []Polygon{}
	scanner := bufio.NewScanner(in)
	var points []Point
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		if strings.HasPrefix(line, "#") {
			continue
		}

		// If it's empty, and we collected any points, this is the end of the polygon
		if line == "" {
			if len(points) > 0 {
				polygons = append(polygons, shape.NewPolygon(points...))
				points = nil
			}
			continue
		}

		point, err := ParsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}

	// Handle trailing polygon if any
	if len(points) > 0 {
		polygons = append(polygons, shape.NewPolygon(points...))
	}
	return polygons, nil
}

// ReadPoints reads every point from in, ignoring polygon boundaries.
func ReadPoints(in io.Reader) ([]Point, error) {
	polygons, err := ReadPolygons(in)
	if err != nil {
		return nil, err
	}
	var points []Point
	for _, polygon := range polygons {
		points = append(points, polygon.Vertices...)
	}
	return points, nil
}

// ParsePoint parses "x y" or "x,y".
func ParsePoint(s string) (Point, error) {
	parts := splitCoordinates(s)
	if len(parts) != 2 {
		return Point{}, errors.Errorf("expected 2 coordinates in %q, got %d", s, len(parts))
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return Point{X: x, Y: y}, nil
}

func splitCoordinates(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// WritePoints writes one point per line, in the format ReadPolygons reads.
func WritePoints(out io.Writer, points []Point) error {
	w := bufio.NewWriter(out)
	for _, p := range points {
		if _, err := fmt.Fprintln(w, FormatPoint(p)); err != nil {
			return errors.Wrap(err, "writing points")
		}
	}
	return errors.Wrap(w.Flush(), "writing points")
}

// WritePolygons writes polygons separated by blank lines.
func WritePolygons(out io.Writer, polygons []Polygon) error {
	for i, polygon := range polygons {
		if i > 0 {
			if _, err := io.WriteString(out, "\n"); err != nil {
				return errors.Wrap(err, "writing polygons")
			}
		}
		if err := WritePoints(out, polygon.Vertices); err != nil {
			return err
		}
	}
	return nil
}

// FormatPoint formats p the way ParsePoint reads it, with the shortest
// representation of each coordinate.
func FormatPoint(p Point) string {
	return FormatFloat(p.X) + " " + FormatFloat(p.Y)
}

func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
