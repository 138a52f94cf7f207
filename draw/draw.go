// Package draw renders vectors and triangles to PNG files. It is meant for
// looking at inputs while debugging, so everything is converted to floats.
package draw

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/rattrig/advanced"
	"github.com/osuushi/rattrig/numeric"
	"github.com/pkg/errors"
)

const padding = 20

// MaxExtent is the largest width or height, in pixels, that will be drawn.
const MaxExtent = 1 << 14

// Any domain can be drawn, since they all convert to float64.
type Drawable[T any] interface {
	numeric.Ring[T]
	numeric.Float64er
}

type point struct {
	X, Y float64
}

type path struct {
	points []point
	closed bool
	label  string
}

func toPoint[T Drawable[T]](v advanced.Vector[T]) point {
	return point{v.X.Float64(), v.Y.Float64()}
}

// Vectors draws each vector as a segment from the origin, labelled with its
// quadrance.
func Vectors[T Drawable[T]](filename string, scale float64, vectors ...advanced.Vector[T]) error {
	paths := make([]path, len(vectors))
	for i, v := range vectors {
		paths[i] = path{
			points: []point{{0, 0}, toPoint(v)},
			label:  "Q=" + advanced.Quad(v).String(),
		}
	}
	return render(filename, scale, paths)
}

// Triangle draws the triangle's outline, with each side labelled with its
// quadrance.
func Triangle[T Drawable[T]](filename string, scale float64, tri advanced.Triangle[T]) error {
	qa, qb, qc := tri.Quadrances()
	a, b, c := toPoint(tri.A), toPoint(tri.B), toPoint(tri.C)
	paths := []path{
		{points: []point{a, b, c}, closed: true},
		{points: []point{b, c}, label: "Qa=" + qa.String()},
		{points: []point{a, c}, label: "Qb=" + qb.String()},
		{points: []point{a, b}, label: "Qc=" + qc.String()},
	}
	return render(filename, scale, paths)
}

// Cat prints a PNG inline, for terminals that support it.
func Cat(filename string, w io.Writer) error {
	return errors.Wrapf(imgcat.CatFile(filename, w), "displaying %s", filename)
}

func render(filename string, scale float64, paths []path) error {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, p := range paths {
		for _, pt := range p.points {
			minX = math.Min(minX, pt.X)
			minY = math.Min(minY, pt.Y)
			maxX = math.Max(maxX, pt.X)
			maxY = math.Max(maxY, pt.Y)
		}
	}
	if math.IsInf(minX, 0) || math.IsInf(maxX, 0) || math.IsInf(minY, 0) || math.IsInf(maxY, 0) {
		return errors.New("nothing to draw")
	}

	// Set up the context
	// Bounds are checked in float space, before anything can overflow an int
	extentX := scale * (maxX - minX)
	extentY := scale * (maxY - minY)
	if !(extentX >= 0 && extentX <= MaxExtent && extentY >= 0 && extentY <= MaxExtent) {
		return errors.Errorf("drawing too large: %gx%g", extentX, extentY)
	}
	width := int(extentX) + padding*2
	height := int(extentY) + padding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	c.Push()
	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	// Translate for padding
	c.Translate(padding, padding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	type anchor struct {
		x, y  float64
		label string
	}
	var labels []anchor

	c.SetLineWidth(2)
	for _, p := range paths {
		if len(p.points) == 0 {
			continue
		}
		if p.label != "" {
			// Labels go at the midpoint, converted to unflipped device space so
			// the text reads the right way up.
			first, last := p.points[0], p.points[len(p.points)-1]
			x, y := c.TransformPoint((first.X+last.X)/2, (first.Y+last.Y)/2)
			labels = append(labels, anchor{x, y, p.label})
			continue
		}
		c.MoveTo(p.points[0].X, p.points[0].Y)
		for _, pt := range p.points[1:] {
			c.LineTo(pt.X, pt.Y)
		}
		if p.closed {
			c.ClosePath()
		}
	}
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	// Labelled paths are open segments, stroked in their own color
	c.SetRGB(1, 1, 0)
	for _, p := range paths {
		if p.label == "" || len(p.points) < 2 {
			continue
		}
		c.MoveTo(p.points[0].X, p.points[0].Y)
		for _, pt := range p.points[1:] {
			c.LineTo(pt.X, pt.Y)
		}
	}
	c.Stroke()
	c.Pop()

	c.SetRGB(1, 1, 1)
	for _, l := range labels {
		c.DrawStringAnchored(l.label, l.x, l.y, 0.5, 0.5)
	}

	return errors.Wrapf(c.SavePNG(filename), "saving %s", filename)
}
