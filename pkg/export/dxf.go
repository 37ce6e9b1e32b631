package export

import (
	"github.com/yofu/dxf"

	"github.com/matzehuels/meshslice/pkg/errors"
	"github.com/matzehuels/meshslice/pkg/slicer"
)

// sliceLayer is the DXF layer all contour polylines are placed on.
const sliceLayer = "SLICE"

// DXFWriter writes each slice as a DXF drawing with one LWPOLYLINE per
// contour. Only the X and Y coordinates are emitted; the slice height
// lives in the file name sequence, not in the geometry.
type DXFWriter struct {
	dir string
}

// NewDXF creates a DXF writer emitting into dir.
func NewDXF(dir string) *DXFWriter {
	return &DXFWriter{dir: dir}
}

// WriteSlice implements slicer.SliceWriter.
func (w *DXFWriter) WriteSlice(contours []slicer.Contour, dest string) error {
	d := dxf.NewDrawing()
	if _, err := d.AddLayer(sliceLayer, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return errors.Wrap(errors.ErrCodeWriterFailure, err, "add layer for %s", dest)
	}

	for _, c := range contours {
		verts := make([][]float64, len(c.Points))
		for i, p := range c.Points {
			verts[i] = []float64{p.X, p.Y}
		}
		if _, err := d.LwPolyline(c.Closed, verts...); err != nil {
			return errors.Wrap(errors.ErrCodeWriterFailure, err, "polyline for %s", dest)
		}
	}

	path := destPath(w.dir, dest, FormatDXF)
	if err := d.SaveAs(path); err != nil {
		return errors.Wrap(errors.ErrCodeWriterFailure, err, "save %s", path)
	}
	return nil
}
