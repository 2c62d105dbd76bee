package dbg

import (
	"image"
	"io"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// This is for looking at shapes, not for producing artwork. Polygons are
// filled with the even-odd rule so overlaps and clip results stand out.

type RenderOptions struct {
	// Pixels per unit
	Scale float64
	// Pixels around the shapes
	Padding float64
}

// Scene is everything to draw in one image.
type Scene struct {
	Polygons  []Polygon
	Polylines []Polyline
	Segments  []Linear
	Circles   []Circle
	Points    []Point
}

func (s Scene) bounds() Box {
	var box Box
	for _, poly := range s.Polygons {
		if poly.Len() > 0 {
			box = box.Union(thicken(poly.BoundingBox()))
		}
	}
	for _, line := range s.Polylines {
		if line.Len() > 0 {
			box = box.Union(thicken(line.BoundingBox()))
		}
	}
	for _, segment := range s.Segments {
		box = box.Union(thicken(segment.BoundingBox()))
	}
	for _, circle := range s.Circles {
		box = box.Union(thicken(circle.BoundingBox()))
	}
	for _, p := range s.Points {
		box = box.Union(thicken(Box{Min: p, Max: p}))
	}
	return box
}

// Flat shapes, like horizontal segments or lone points, have empty boxes.
// Grow those by half a unit either way so they still get drawn.
func thicken(box Box) Box {
	if box.Min.X > box.Max.X || box.Min.Y > box.Max.Y {
		return box
	}
	if box.Min.X == box.Max.X {
		box.Min.X -= 0.5
		box.Max.X += 0.5
	}
	if box.Min.Y == box.Max.Y {
		box.Min.Y -= 0.5
		box.Max.Y += 0.5
	}
	return box
}

// Render draws the scene with +Y up.
func Render(scene Scene, options RenderOptions) (image.Image, error) {
	if options.Scale <= 0 {
		return nil, errors.Errorf("render scale must be positive, got %v", options.Scale)
	}
	bounds := scene.bounds()
	if bounds.Empty() {
		return nil, errors.New("nothing to render")
	}
	size := bounds.Size()

	// Set up the context
	width := int(options.Scale*size.X + options.Padding*2)
	height := int(options.Scale*size.Y + options.Padding*2)
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFillRuleEvenOdd()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(options.Padding, options.Padding)
	// Scale
	c.Scale(options.Scale, options.Scale)
	// Translate to min
	c.Translate(-bounds.Min.X, -bounds.Min.Y)

	c.SetLineWidth(2)
	if len(scene.Polygons) > 0 {
		for _, poly := range scene.Polygons {
			if poly.Len() == 0 {
				continue
			}
			c.MoveTo(poly.Vertices[0].X, poly.Vertices[0].Y)
			for _, p := range poly.Vertices[1:] {
				c.LineTo(p.X, p.Y)
			}
			c.ClosePath()
		}
		c.SetRGB(0, 0.5, 0)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}

	c.SetRGB(1, 1, 0)
	for _, line := range scene.Polylines {
		if line.Len() == 0 {
			continue
		}
		c.MoveTo(line.Front().X, line.Front().Y)
		for _, p := range line.Vertices[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.Stroke()
	}
	for _, segment := range scene.Segments {
		c.DrawLine(segment.P0.X, segment.P0.Y, segment.P1.X, segment.P1.Y)
		c.Stroke()
	}

	c.SetRGB(1, 0, 1)
	for _, circle := range scene.Circles {
		c.DrawCircle(circle.Center.X, circle.Center.Y, circle.Radius)
		c.Stroke()
	}

	c.SetRGB(1, 0, 0)
	for _, p := range scene.Points {
		c.DrawCircle(p.X, p.Y, 3/options.Scale)
		c.Fill()
	}

	return c.Image(), nil
}

// SavePNG renders the scene to a PNG file at path.
func SavePNG(path string, scene Scene, options RenderOptions) error {
	img, err := Render(scene, options)
	if err != nil {
		return err
	}
	return errors.Wrapf(gg.SavePNG(path, img), "saving %s", path)
}

// Show renders the scene and writes it to out as an inline terminal image.
func Show(out io.Writer, scene Scene, options RenderOptions) error {
	file, err := os.CreateTemp("", "geometry-*.png")
	if err != nil {
		return errors.Wrap(err, "creating image file")
	}
	path := file.Name()
	file.Close()
	defer os.Remove(path)

	if err := SavePNG(path, scene, options); err != nil {
		return err
	}
	return errors.Wrap(imgcat.CatFile(path, out), "showing image")
}
