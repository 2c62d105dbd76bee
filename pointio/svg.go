package pointio

import (
	"io"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/geometry/shape"
	"github.com/pkg/errors"
)

// This is not a full (or even correct) svg parser. It finds the polygon and
// polyline elements anywhere in the document and reads their points
// attributes. Transforms and other shape elements are ignored.

// ReadSVGPolygons reads every <polygon> and <polyline> in the document, in
// document order. Winding is left as it is in the file.
func ReadSVGPolygons(in io.Reader) ([]Polygon, error) {
	root, err := svgparser.Parse(in, true)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var polygons []Polygon
	var walk func(el *svgparser.Element) error
	walk = func(el *svgparser.Element) error {
		if el.Name == "polygon" || el.Name == "polyline" {
			points, err := parseSVGPoints(el.Attributes["points"])
			if err != nil {
				return errors.Wrapf(err, "%s element %d", el.Name, len(polygons))
			}
			polygons = append(polygons, shape.NewPolygon(points...))
		}
		for _, child := range el.Children {
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(root); err != nil {
		return nil, err
	}
	if len(polygons) == 0 {
		return nil, errors.New("no polygons found in svg")
	}
	return polygons, nil
}

// The points attribute is a list of numbers separated by whitespace and/or
// commas, taken in x, y pairs.
func parseSVGPoints(attribute string) ([]Point, error) {
	coordinates := splitCoordinates(attribute)
	if len(coordinates)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in points %q", attribute)
	}
	points := make([]Point, 0, len(coordinates)/2)
	for i := 0; i < len(coordinates); i += 2 {
		point, err := ParsePoint(coordinates[i] + " " + coordinates[i+1])
		if err != nil {
			return nil, err
		}
		points = append(points, point)
	}
	return points, nil
}
