package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/meshslice/pkg/errors"
	"github.com/matzehuels/meshslice/pkg/geom"
	"github.com/matzehuels/meshslice/pkg/slicer"
)

func testContours() []slicer.Contour {
	return []slicer.Contour{
		{
			Points: []geom.Vec3{
				{X: 0, Y: 0, Z: 0.5},
				{X: 2, Y: 0, Z: 0.5},
				{X: 2, Y: 2, Z: 0.5},
				{X: 0, Y: 2, Z: 0.5},
			},
			Height: 0.5,
			Closed: true,
		},
		{
			Points: []geom.Vec3{
				{X: 3, Y: 0, Z: 0.5},
				{X: 4, Y: 1, Z: 0.5},
				{X: 3, Y: 2, Z: 0.5},
			},
			Height: 0.5,
			Closed: false,
		},
	}
}

func TestNewWriter(t *testing.T) {
	dir := t.TempDir()
	for _, format := range Formats() {
		if _, err := NewWriter(format, dir); err != nil {
			t.Errorf("NewWriter(%q) error = %v", format, err)
		}
	}
	if _, err := NewWriter("pdf", dir); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("NewWriter(pdf) error = %v, want INVALID_FORMAT", err)
	}
}

func TestJSONWriter(t *testing.T) {
	dir := t.TempDir()
	if err := NewJSON(dir).WriteSlice(testContours(), "slice_1"); err != nil {
		t.Fatalf("WriteSlice() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "slice_1.json"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	var doc sliceDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if doc.Dest != "slice_1" {
		t.Errorf("dest = %q, want %q", doc.Dest, "slice_1")
	}
	if doc.Height != 0.5 {
		t.Errorf("height = %v, want 0.5", doc.Height)
	}
	if len(doc.Contours) != 2 {
		t.Fatalf("got %d contours, want 2", len(doc.Contours))
	}
	if !doc.Contours[0].Closed || doc.Contours[1].Closed {
		t.Error("closed flags not preserved")
	}
	if got := doc.Contours[0].Points[2]; got != ([2]float64{2, 2}) {
		t.Errorf("point = %v, want [2 2]", got)
	}
}

func TestDXFWriter(t *testing.T) {
	dir := t.TempDir()
	if err := NewDXF(dir).WriteSlice(testContours(), "slice_1"); err != nil {
		t.Fatalf("WriteSlice() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "slice_1.dxf"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "LWPOLYLINE") {
		t.Error("DXF output contains no LWPOLYLINE entity")
	}
	if !strings.Contains(content, sliceLayer) {
		t.Errorf("DXF output does not mention layer %q", sliceLayer)
	}
}

func TestSVGWriter(t *testing.T) {
	dir := t.TempDir()
	if err := NewSVG(dir).WriteSlice(testContours(), "slice_1"); err != nil {
		t.Fatalf("WriteSlice() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "slice_1.svg"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "<polygon") {
		t.Error("SVG output contains no polygon for the closed contour")
	}
	if !strings.Contains(content, "<polyline") {
		t.Error("SVG output contains no polyline for the open contour")
	}
}

func TestSVGWriter_NoPoints(t *testing.T) {
	err := NewSVG(t.TempDir()).WriteSlice(nil, "slice_1")
	if !errors.Is(err, errors.ErrCodeWriterFailure) {
		t.Errorf("WriteSlice(nil) error = %v, want WRITER_FAILURE", err)
	}
}

func TestWriters_UnwritableDir(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist")
	for _, format := range Formats() {
		w, err := NewWriter(format, missing)
		if err != nil {
			t.Fatalf("NewWriter(%q) error = %v", format, err)
		}
		if err := w.WriteSlice(testContours(), "slice_1"); !errors.Is(err, errors.ErrCodeWriterFailure) {
			t.Errorf("%s WriteSlice() into missing dir: error = %v, want WRITER_FAILURE", format, err)
		}
	}
}

func TestWriteManifest(t *testing.T) {
	dir := t.TempDir()
	sum := &slicer.Summary{
		RunID:        "test-run",
		Layers:       3,
		Direction:    "bottom_to_top",
		ZMin:         0,
		ZMax:         3,
		LayerHeight:  1,
		UnitsWritten: 3,
		Slices: []slicer.SliceReport{
			{Index: 1, Height: 0, Contours: 1, Dest: "slice_1", Written: true},
		},
	}
	if err := WriteManifest(dir, sum); err != nil {
		t.Fatalf("WriteManifest() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, ManifestName))
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	var got slicer.Summary
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("decode manifest: %v", err)
	}
	if got.RunID != "test-run" || got.Layers != 3 || got.UnitsWritten != 3 {
		t.Errorf("manifest round-trip = %+v, want original summary", got)
	}
	if len(got.Slices) != 1 || got.Slices[0].Dest != "slice_1" {
		t.Errorf("manifest slices = %+v, want the original report", got.Slices)
	}
}

func TestDestPath(t *testing.T) {
	got := destPath("out", "slice_3", "dxf")
	want := filepath.Join("out", "slice_3.dxf")
	if got != want {
		t.Errorf("destPath() = %q, want %q", got, want)
	}
}
