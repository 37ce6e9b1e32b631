package slicer

import (
	"github.com/matzehuels/meshslice/pkg/errors"
	"github.com/matzehuels/meshslice/pkg/outline"
)

// Direction controls the order slice heights are visited in.
type Direction int

const (
	// BottomToTop slices from z_min upward.
	BottomToTop Direction = iota
	// TopToBottom slices from z_max downward.
	TopToBottom
)

// String returns the configuration-surface name of the direction.
func (d Direction) String() string {
	if d == TopToBottom {
		return "top_to_bottom"
	}
	return "bottom_to_top"
}

// ParseDirection parses a configuration-surface direction name.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "bottom_to_top":
		return BottomToTop, nil
	case "top_to_bottom":
		return TopToBottom, nil
	default:
		return 0, errors.New(errors.ErrCodeInvalidDirection,
			"invalid slice direction: %s (must be 'bottom_to_top' or 'top_to_bottom')", s)
	}
}

// OutlineMode selects how the protective outline is produced.
type OutlineMode int

const (
	// OutlineNone disables the outline.
	OutlineNone OutlineMode = iota
	// OutlineBBox computes a fresh bounding rectangle for every slice.
	OutlineBBox
	// OutlineContour offsets the largest contour found at the lowest
	// slice height and reuses it, Z-adjusted, for every slice.
	OutlineContour
)

// String returns the configuration-surface name of the mode.
func (m OutlineMode) String() string {
	switch m {
	case OutlineBBox:
		return "bbox"
	case OutlineContour:
		return "contour"
	default:
		return "none"
	}
}

// ParseOutlineMode parses a configuration-surface outline mode name.
func ParseOutlineMode(s string) (OutlineMode, error) {
	switch s {
	case "none", "":
		return OutlineNone, nil
	case "bbox":
		return OutlineBBox, nil
	case "contour":
		return OutlineContour, nil
	default:
		return 0, errors.New(errors.ErrCodeInvalidOutline,
			"invalid outline mode: %s (must be 'none', 'bbox', or 'contour')", s)
	}
}

// Options configures a slicing run.
type Options struct {
	// NumLayers is the number of horizontal slices, at least 1.
	NumLayers int

	// Direction is the order heights are visited in.
	Direction Direction

	// Outline selects the protective outline mode.
	Outline OutlineMode

	// OutlineOffset is the outline displacement distance, within
	// [errors.MinOutlineOffset, errors.MaxOutlineOffset]. Ignored when
	// Outline is OutlineNone.
	OutlineOffset float64

	// Selector picks the source contour in OutlineContour mode.
	// Defaults to outline.MostPoints.
	Selector outline.Selector

	// Workers bounds concurrent slice computations. Values below 1 are
	// treated as 1 (fully sequential).
	Workers int
}

// Validate checks the option surface and fills defaults.
func (o *Options) Validate() error {
	if err := errors.ValidateLayers(o.NumLayers); err != nil {
		return err
	}
	if o.Outline != OutlineNone {
		if err := errors.ValidateOutlineOffset(o.OutlineOffset); err != nil {
			return err
		}
	}
	if o.Selector == nil {
		o.Selector = outline.MostPoints{}
	}
	if o.Workers < 1 {
		o.Workers = 1
	}
	return nil
}
