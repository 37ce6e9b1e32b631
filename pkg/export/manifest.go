package export

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/matzehuels/meshslice/pkg/errors"
	"github.com/matzehuels/meshslice/pkg/slicer"
)

// ManifestName is the file the run manifest is written to inside the
// output directory.
const ManifestName = "manifest.json"

// WriteManifest writes the run summary as a machine-readable manifest
// next to the exported slices, so downstream tooling can map slice
// files back to heights and contour counts without re-parsing logs.
func WriteManifest(dir string, sum *slicer.Summary) error {
	path := filepath.Join(dir, ManifestName)
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeWriterFailure, err, "create %s", path)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(sum); err != nil {
		return errors.Wrap(errors.ErrCodeWriterFailure, err, "encode %s", path)
	}
	return nil
}
