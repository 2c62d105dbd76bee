// Command geom runs the geometry algorithms over point lists.
//
// Input on stdin should be newline separated points in the form "x y", with
// each polygon separated by an extra newline. With --svg, the polygons and
// polylines of an SVG file are used instead. Output uses the same format.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/osuushi/geometry"
	"github.com/osuushi/geometry/dbg"
	"github.com/osuushi/geometry/internal/config"
	"github.com/osuushi/geometry/internal/logging"
	"github.com/osuushi/geometry/pointio"
	"github.com/osuushi/geometry/shape"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		os.Exit(1)
	}
}

type app struct {
	config  config.Config
	log     *zap.Logger
	toolkit geometry.Toolkit
	in      io.Reader
	out     io.Writer
	svgPath string
}

func run(args []string, in io.Reader, out io.Writer) error {
	cli := kingpin.New("geom", "Geometry tools for point lists.")
	verbose := cli.Flag("verbose", "Log debug messages.").Short('v').Bool()
	configPath := cli.Flag("config", "YAML configuration file.").String()
	svgPath := cli.Flag("svg", "Read polygons from an SVG file instead of stdin.").String()
	epsilon := cli.Flag("epsilon", "Tolerance for degenerate geometry. Negative uses the configured value.").Default("-1").Float64()

	simplifyCmd := cli.Command("simplify", "Simplify each polyline with Douglas-Peucker.")
	tolerance := simplifyCmd.Flag("tolerance", "Distance tolerance. Negative uses the configured value.").Default("-1").Float64()

	clipCmd := cli.Command("clip", "Clip the first polygon against the second, which must be convex.")
	triangleCmd := cli.Command("triangle", "Centers and circles of the triangle made by the first three points.")
	boundsCmd := cli.Command("bounds", "Bounding box of every point.")
	triangulateCmd := cli.Command("triangulate", "Triangulate each y-monotone polygon.")

	renderCmd := cli.Command("render", "Draw the polygons.")
	renderOut := renderCmd.Flag("out", "PNG file to write.").String()
	renderShow := renderCmd.Flag("show", "Show the image in the terminal.").Bool()
	renderScale := renderCmd.Flag("scale", "Pixels per unit. Non-positive uses the configured value.").Default("0").Float64()

	command, err := cli.Parse(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, "geom:", err)
		return err
	}

	log, err := logging.New(*verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, "geom:", err)
		return err
	}
	defer log.Sync()

	cfg := config.Default()
	if *configPath != "" {
		if cfg, err = config.Load(*configPath); err != nil {
			log.Error("bad configuration", zap.Error(err))
			return err
		}
	}
	if *epsilon >= 0 {
		cfg.Epsilon = *epsilon
	}
	if *tolerance >= 0 {
		cfg.SimplifyTolerance = *tolerance
	}
	if *renderScale > 0 {
		cfg.Render.Scale = *renderScale
	}
	log.Debug("configured",
		zap.Float64("epsilon", cfg.Epsilon),
		zap.Float64("simplify_tolerance", cfg.SimplifyTolerance),
	)

	a := &app{
		config:  cfg,
		log:     log,
		toolkit: geometry.Toolkit{Epsilon: cfg.Epsilon},
		in:      in,
		out:     out,
		svgPath: *svgPath,
	}

	switch command {
	case simplifyCmd.FullCommand():
		err = a.simplify()
	case clipCmd.FullCommand():
		err = a.clip()
	case triangleCmd.FullCommand():
		err = a.triangle()
	case boundsCmd.FullCommand():
		err = a.bounds()
	case triangulateCmd.FullCommand():
		err = a.triangulate()
	case renderCmd.FullCommand():
		err = a.render(*renderOut, *renderShow)
	}
	if err != nil {
		log.Error("command failed", zap.String("command", command), zap.Error(err))
	}
	return err
}

func (a *app) readPolygons() ([]geometry.Polygon, error) {
	var polygons []geometry.Polygon
	var err error
	if a.svgPath != "" {
		file, openErr := os.Open(a.svgPath)
		if openErr != nil {
			return nil, errors.Wrapf(openErr, "opening %s", a.svgPath)
		}
		defer file.Close()
		polygons, err = pointio.ReadSVGPolygons(file)
	} else {
		polygons, err = pointio.ReadPolygons(a.in)
	}
	if err != nil {
		return nil, err
	}
	for _, polygon := range polygons {
		a.log.Debug("read polygon", zap.String("name", dbg.Name(polygon)), zap.Int("vertices", polygon.Len()))
	}
	return polygons, nil
}

func (a *app) readPoints() ([]geometry.Point, error) {
	polygons, err := a.readPolygons()
	if err != nil {
		return nil, err
	}
	var points []geometry.Point
	for _, polygon := range polygons {
		points = append(points, polygon.Vertices...)
	}
	return points, nil
}

func (a *app) simplify() error {
	polygons, err := a.readPolygons()
	if err != nil {
		return err
	}
	result := make([]geometry.Polygon, 0, len(polygons))
	for _, polygon := range polygons {
		simplified := geometry.Simplify(polygon.Vertices, a.config.SimplifyTolerance)
		a.log.Debug("simplified",
			zap.String("name", dbg.Name(polygon)),
			zap.Int("before", polygon.Len()),
			zap.Int("after", len(simplified)),
		)
		result = append(result, geometry.Polygon{Vertices: simplified})
	}
	return pointio.WritePolygons(a.out, result)
}

func (a *app) clip() error {
	polygons, err := a.readPolygons()
	if err != nil {
		return err
	}
	if len(polygons) < 2 {
		return errors.Errorf("clip needs a subject and a clip polygon, got %d polygons", len(polygons))
	}
	result, err := a.toolkit.Clip(polygons[0], polygons[1])
	if err != nil {
		return err
	}
	a.log.Info("clipped", zap.Int("vertices", result.Len()))
	return pointio.WritePoints(a.out, result.Vertices)
}

func (a *app) triangle() error {
	points, err := a.readPoints()
	if err != nil {
		return err
	}
	if len(points) < 3 {
		return errors.Errorf("triangle needs three points, got %d", len(points))
	}
	metrics := a.toolkit.Metrics(geometry.Triangle{A: points[0], B: points[1], C: points[2]})

	lines := []string{
		"centroid " + pointio.FormatPoint(metrics.Centroid),
		"incenter " + pointio.FormatPoint(metrics.Incenter),
		"circumcenter " + formatOptionalPoint(metrics.Circumcenter),
		"orthocenter " + formatOptionalPoint(metrics.Orthocenter),
		"incircle " + formatOptionalCircle(metrics.Incircle),
		"circumcircle " + formatOptionalCircle(metrics.Circumcircle),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(a.out, line); err != nil {
			return errors.Wrap(err, "writing metrics")
		}
	}
	return nil
}

func formatOptionalPoint(p *geometry.Point) string {
	if p == nil {
		return "none"
	}
	return pointio.FormatPoint(*p)
}

func formatOptionalCircle(c *geometry.Circle) string {
	if c == nil {
		return "none"
	}
	return pointio.FormatPoint(c.Center) + " " + pointio.FormatFloat(c.Radius)
}

func (a *app) bounds() error {
	points, err := a.readPoints()
	if err != nil {
		return err
	}
	if len(points) == 0 {
		return errors.New("no points")
	}
	box := shape.BoundsOf[geometry.Point, float64](points...)
	_, err = fmt.Fprintf(a.out, "min %s\nmax %s\n", pointio.FormatPoint(box.Min), pointio.FormatPoint(box.Max))
	return errors.Wrap(err, "writing bounds")
}

func (a *app) triangulate() error {
	polygons, err := a.readPolygons()
	if err != nil {
		return err
	}
	var result []geometry.Polygon
	for i, polygon := range polygons {
		triangles, err := geometry.Triangulate(polygon)
		if err != nil {
			return errors.Wrapf(err, "polygon %d", i)
		}
		for _, tri := range triangles {
			result = append(result, tri.Polygon())
		}
	}
	a.log.Info("triangulated", zap.Int("polygons", len(polygons)), zap.Int("triangles", len(result)))
	return pointio.WritePolygons(a.out, result)
}

func (a *app) render(path string, show bool) error {
	if path == "" && !show {
		return errors.New("render needs --out or --show")
	}
	polygons, err := a.readPolygons()
	if err != nil {
		return err
	}
	scene := dbg.Scene{Polygons: polygons}
	options := dbg.RenderOptions{Scale: a.config.Render.Scale, Padding: a.config.Render.Padding}
	if path != "" {
		if err := dbg.SavePNG(path, scene, options); err != nil {
			return err
		}
		a.log.Info("rendered", zap.String("path", path))
	}
	if show {
		return dbg.Show(a.out, scene, options)
	}
	return nil
}
