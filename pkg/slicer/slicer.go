package slicer

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/meshslice/pkg/errors"
	"github.com/matzehuels/meshslice/pkg/geom"
	"github.com/matzehuels/meshslice/pkg/mesh"
	"github.com/matzehuels/meshslice/pkg/outline"
)

// vertexClearance lifts the lowest slice height off the lowest vertex in
// contour-outline mode, so the reference trace does not graze a vertex
// exactly.
const vertexClearance = 0.1

// OutlineDest is the destination identifier reserved for the standalone
// outline export in OutlineContour mode.
const OutlineDest = "outline"

// SliceWriter receives finished contour sets. Every contour passed has
// more than two points; the writer owns the on-disk representation and
// the mapping from destination identifier to file.
type SliceWriter interface {
	WriteSlice(contours []Contour, dest string) error
}

// SliceReport records what happened at one slice height.
type SliceReport struct {
	Index    int     `json:"index"`
	Height   float64 `json:"height"`
	Contours int     `json:"contours"`
	Dest     string  `json:"dest,omitempty"`
	Written  bool    `json:"written"`
	Error    string  `json:"error,omitempty"`
}

// Summary is the final report of a slicing run.
type Summary struct {
	RunID           string        `json:"run_id"`
	Layers          int           `json:"layers"`
	Direction       string        `json:"direction"`
	ZMin            float64       `json:"z_min"`
	ZMax            float64       `json:"z_max"`
	LayerHeight     float64       `json:"layer_height"`
	Slices          []SliceReport `json:"slices"`
	UnitsWritten    int           `json:"units_written"`
	WriterFailures  int           `json:"writer_failures"`
	OutlineExported bool          `json:"outline_exported,omitempty"`
}

// Slicer drives a slicing run: it iterates slice heights, invokes the
// intersector and tracer per height, attaches the optional outline, and
// forwards finished contour sets to the writer. It owns no geometry
// state of its own; all per-slice computation is a pure function of the
// snapshot and the height.
type Slicer struct {
	opts   Options
	logger *log.Logger
}

// New creates a slicer with validated options. A nil logger falls back
// to log.Default.
func New(opts Options, logger *log.Logger) (*Slicer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Slicer{opts: opts, logger: logger}, nil
}

// Run slices the snapshot and writes one output unit per non-empty
// slice. The snapshot is treated as read-only throughout; slices run on
// up to Options.Workers goroutines with distinct destinations, so no
// two slices ever write the same output unit.
//
// Per-slice writer failures are caught, logged, and counted; later
// slices still run and previously written units are left intact. Run
// returns an error if setup fails or if at least one slice write failed.
func (s *Slicer) Run(ctx context.Context, snap *mesh.Snapshot, w SliceWriter) (*Summary, error) {
	if snap == nil || snap.VertexCount() == 0 || snap.FaceCount() == 0 {
		return nil, errors.New(errors.ErrCodeDegenerateMesh, "nothing to slice")
	}

	sum := &Summary{
		RunID:     uuid.NewString(),
		Layers:    s.opts.NumLayers,
		Direction: s.opts.Direction.String(),
	}

	bounds := snap.Bounds()
	sum.ZMin, sum.ZMax = bounds.Min.Z, bounds.Max.Z
	if s.opts.Outline == OutlineContour {
		// Tracing exactly at the lowest vertex would graze it; lift the
		// reference height by a small clearance.
		sum.ZMin = snap.LowestZ() + vertexClearance
	}
	if sum.ZMax <= sum.ZMin {
		return nil, errors.New(errors.ErrCodeDegenerateMesh,
			"mesh has no sliceable height (z range %g to %g)", sum.ZMin, sum.ZMax)
	}
	sum.LayerHeight = (sum.ZMax - sum.ZMin) / float64(s.opts.NumLayers)

	s.logger.Info("slicing",
		"run", sum.RunID,
		"layers", sum.Layers,
		"direction", sum.Direction,
		"z_min", fmt.Sprintf("%.4f", sum.ZMin),
		"z_max", fmt.Sprintf("%.4f", sum.ZMax),
		"layer_height", fmt.Sprintf("%.4f", sum.LayerHeight))

	// The shared outline is computed once, before any parallel work, and
	// only read afterwards.
	shared, err := s.buildSharedOutline(snap, sum, w)
	if err != nil {
		return nil, err
	}

	sum.Slices = make([]SliceReport, s.opts.NumLayers)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Workers)
	for i := 0; i < s.opts.NumLayers; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sum.Slices[i] = s.runSlice(snap, w, shared, sum, i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return sum, err
	}

	for _, r := range sum.Slices {
		if r.Written {
			sum.UnitsWritten++
		}
		if r.Error != "" {
			sum.WriterFailures++
		}
	}
	s.logger.Info("finished",
		"run", sum.RunID,
		"heights", len(sum.Slices),
		"written", sum.UnitsWritten,
		"failures", sum.WriterFailures)

	if sum.WriterFailures > 0 {
		return sum, errors.New(errors.ErrCodeWriterFailure,
			"%d of %d slices failed to write", sum.WriterFailures, sum.Layers)
	}
	return sum, nil
}

// height returns the slice height for layer i under the configured
// direction.
func (s *Slicer) height(sum *Summary, i int) float64 {
	if s.opts.Direction == TopToBottom {
		return sum.ZMax - float64(i)*sum.LayerHeight
	}
	return sum.ZMin + float64(i)*sum.LayerHeight
}

// runSlice computes and writes one slice. Writer errors are captured in
// the report, never propagated.
func (s *Slicer) runSlice(snap *mesh.Snapshot, w SliceWriter, shared *Contour, sum *Summary, i int) SliceReport {
	h := s.height(sum, i)
	contours := TraceContours(snap, h)
	rep := SliceReport{Index: i + 1, Height: h, Contours: len(contours)}

	if len(contours) == 0 {
		s.logger.Info("empty slice, no output", "slice", i+1, "height", fmt.Sprintf("%.4f", h))
		return rep
	}
	s.logger.Debug("traced slice", "slice", i+1, "height", fmt.Sprintf("%.4f", h), "contours", len(contours))

	switch s.opts.Outline {
	case OutlineBBox:
		rect, err := outline.BoundingRect(pointSets(contours), s.opts.OutlineOffset)
		if err == nil {
			contours = append(contours, Contour{Points: rect, Height: h, Closed: true})
		}
	case OutlineContour:
		if shared != nil {
			contours = append(contours, shared.AtHeight(h))
		}
	}

	rep.Dest = fmt.Sprintf("slice_%d", i+1)
	if err := w.WriteSlice(contours, rep.Dest); err != nil {
		rep.Error = err.Error()
		s.logger.Error("slice write failed", "slice", i+1, "dest", rep.Dest, "err", err)
		return rep
	}
	rep.Written = true
	return rep
}

// buildSharedOutline traces the mesh at the lowest slice height and
// offsets the selected contour. A failure to build the outline is
// reported and skipped for the whole run, never fatal. The outline is
// also exported standalone to the reserved destination.
func (s *Slicer) buildSharedOutline(snap *mesh.Snapshot, sum *Summary, w SliceWriter) (*Contour, error) {
	if s.opts.Outline != OutlineContour {
		return nil, nil
	}

	base := TraceContours(snap, sum.ZMin)
	s.logger.Info("contours at lowest level", "height", fmt.Sprintf("%.4f", sum.ZMin), "contours", len(base))
	if len(base) == 0 {
		s.logger.Warn("no contours at the lowest level, skipping outline")
		return nil, nil
	}

	sets := pointSets(base)
	idx, ok := s.opts.Selector.Select(sets)
	if !ok {
		s.logger.Warn("no contour selected for outline, skipping outline")
		return nil, nil
	}

	pts, err := outline.Offset(sets[idx], s.opts.OutlineOffset)
	if err != nil {
		s.logger.Warn("failed to create offset outline, skipping", "err", err)
		return nil, nil
	}
	c := &Contour{Points: pts, Height: sum.ZMin, Closed: base[idx].Closed}
	s.logger.Info("outline contour created",
		"points", len(pts), "offset", s.opts.OutlineOffset)

	if err := w.WriteSlice([]Contour{*c}, OutlineDest); err != nil {
		s.logger.Error("outline export failed", "err", err)
	} else {
		sum.OutlineExported = true
	}
	return c, nil
}

// pointSets extracts the raw point slices for the outline engine.
func pointSets(contours []Contour) [][]geom.Vec3 {
	sets := make([][]geom.Vec3, len(contours))
	for i, c := range contours {
		sets[i] = c.Points
	}
	return sets
}
