package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/meshslice/pkg/errors"
	"github.com/matzehuels/meshslice/pkg/slicer"
)

// sliceDoc is the JSON document written per slice.
type sliceDoc struct {
	Dest     string       `json:"dest"`
	Height   float64      `json:"height"`
	Contours []contourDoc `json:"contours"`
}

type contourDoc struct {
	Closed bool         `json:"closed"`
	Points [][2]float64 `json:"points"`
}

// JSONWriter writes each slice as a JSON document of 2D contours, for
// downstream tools that consume polygons programmatically instead of as
// drawings.
type JSONWriter struct {
	dir string
}

// NewJSON creates a JSON writer emitting into dir.
func NewJSON(dir string) *JSONWriter {
	return &JSONWriter{dir: dir}
}

// WriteSlice implements slicer.SliceWriter.
func (w *JSONWriter) WriteSlice(contours []slicer.Contour, dest string) error {
	path := destPath(w.dir, dest, FormatJSON)
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeWriterFailure, err, "create %s", path)
	}
	defer f.Close()

	if err := writeSliceJSON(f, contours, dest); err != nil {
		return errors.Wrap(errors.ErrCodeWriterFailure, err, "encode %s", path)
	}
	return nil
}

// writeSliceJSON encodes a contour set for one destination to wr.
func writeSliceJSON(wr io.Writer, contours []slicer.Contour, dest string) error {
	doc := sliceDoc{Dest: dest, Contours: make([]contourDoc, len(contours))}
	if len(contours) > 0 {
		doc.Height = contours[0].Height
	}
	for i, c := range contours {
		cd := contourDoc{Closed: c.Closed, Points: make([][2]float64, len(c.Points))}
		for j, p := range c.Points {
			cd.Points[j] = [2]float64{p.X, p.Y}
		}
		doc.Contours[i] = cd
	}

	enc := json.NewEncoder(wr)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
