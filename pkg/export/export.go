// Package export writes finished slice contour sets to disk as 2D
// vector-polygon files. Writers implement [slicer.SliceWriter] and own
// the mapping from a destination identifier (e.g. "slice_3") to a file
// inside their output directory.
package export

import (
	"path/filepath"

	"github.com/matzehuels/meshslice/pkg/errors"
	"github.com/matzehuels/meshslice/pkg/slicer"
)

// Supported output formats.
const (
	FormatDXF  = "dxf"
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// Formats lists the supported output formats.
func Formats() []string {
	return []string{FormatDXF, FormatSVG, FormatJSON}
}

// NewWriter creates a slice writer for the given format writing into
// dir. Unknown formats yield an INVALID_FORMAT error.
func NewWriter(format, dir string) (slicer.SliceWriter, error) {
	switch format {
	case FormatDXF:
		return &DXFWriter{dir: dir}, nil
	case FormatSVG:
		return &SVGWriter{dir: dir}, nil
	case FormatJSON:
		return &JSONWriter{dir: dir}, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %s (must be 'dxf', 'svg', or 'json')", format)
	}
}

// destPath joins an output directory, destination identifier, and
// extension into a file path.
func destPath(dir, dest, ext string) string {
	return filepath.Join(dir, dest+"."+ext)
}
