package export

import (
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// SVGOptions controls the drawing of zonogons. The origin of the generator space is
// drawn at the center of the canvas and the y axis points up.
type SVGOptions struct {
	Width, Height int
	Scale         float64 // pixels per unit
	PolygonStyle  string
	ArrowStyle    string
}

// DefaultSVGOptions matches the look of a single filled zonogon with black arrows.
var DefaultSVGOptions = SVGOptions{
	Width:        800,
	Height:       600,
	Scale:        1,
	PolygonStyle: "fill:green;fill-opacity:1;stroke:black;stroke-width:2",
	ArrowStyle:   "stroke:black;stroke-width:3",
}

// errWriter keeps the first write error; svgo drops the errors of its writer.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// Close returns the first write error.
func (e *errWriter) Close() error {
	return e.err
}

// WriteZonogonSVG draws the closed polygons (as returned by zonogon.Build) and one
// segment from the origin per generator.
func WriteZonogonSVG(w io.Writer, polygons [][]mgl64.Vec2, generators []mgl64.Vec2, opts SVGOptions) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(opts.Width, opts.Height)

	canvas.Gid("zonogons")
	for _, polygon := range polygons {
		xs, ys := opts.pixels(polygon)
		canvas.Polygon(xs, ys, opts.PolygonStyle)
	}
	canvas.Gend()

	canvas.Gid("generators")
	ox, oy := opts.pixel(mgl64.Vec2{})
	for _, g := range generators {
		x, y := opts.pixel(g)
		canvas.Line(ox, oy, x, y, opts.ArrowStyle)
	}
	canvas.Gend()

	canvas.End()

	return errors.Wrap(ew.Close(), "writing svg")
}

func (o SVGOptions) pixel(v mgl64.Vec2) (int, int) {
	x := float64(o.Width)/2 + v[0]*o.Scale
	y := float64(o.Height)/2 - v[1]*o.Scale
	return int(math.Round(x)), int(math.Round(y))
}

func (o SVGOptions) pixels(polygon []mgl64.Vec2) ([]int, []int) {
	xs := make([]int, len(polygon))
	ys := make([]int, len(polygon))
	for i, v := range polygon {
		xs[i], ys[i] = o.pixel(v)
	}
	return xs, ys
}
