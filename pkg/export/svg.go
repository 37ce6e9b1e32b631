package export

import (
	"os"

	svg "github.com/ajstarks/svgo/float"

	"github.com/matzehuels/meshslice/pkg/errors"
	"github.com/matzehuels/meshslice/pkg/geom"
	"github.com/matzehuels/meshslice/pkg/slicer"
)

const (
	// svgMargin pads the canvas around the slice geometry.
	svgMargin = 5.0
	svgStyle  = "fill:none;stroke:black;stroke-width:0.2"
)

// SVGWriter writes each slice as an SVG document with one polygon (or
// polyline, for open contours) per contour. Slice coordinates are
// shifted into the positive quadrant and the Y axis is flipped into SVG
// screen space.
type SVGWriter struct {
	dir string
}

// NewSVG creates an SVG writer emitting into dir.
func NewSVG(dir string) *SVGWriter {
	return &SVGWriter{dir: dir}
}

// WriteSlice implements slicer.SliceWriter.
func (w *SVGWriter) WriteSlice(contours []slicer.Contour, dest string) error {
	bounds := geom.NewBox()
	for _, c := range contours {
		for _, p := range c.Points {
			bounds.Extend(p)
		}
	}
	if bounds.IsEmpty() {
		return errors.New(errors.ErrCodeWriterFailure, "no points to render for %s", dest)
	}

	path := destPath(w.dir, dest, FormatSVG)
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeWriterFailure, err, "create %s", path)
	}
	defer f.Close()

	size := bounds.Size()
	canvas := svg.New(f)
	canvas.Start(size.X+2*svgMargin, size.Y+2*svgMargin)

	for _, c := range contours {
		xs := make([]float64, len(c.Points))
		ys := make([]float64, len(c.Points))
		for i, p := range c.Points {
			xs[i] = p.X - bounds.Min.X + svgMargin
			ys[i] = bounds.Max.Y - p.Y + svgMargin
		}
		if c.Closed {
			canvas.Polygon(xs, ys, svgStyle)
		} else {
			canvas.Polyline(xs, ys, svgStyle)
		}
	}

	canvas.End()
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeWriterFailure, err, "close %s", path)
	}
	return nil
}
